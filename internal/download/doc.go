// Package download runs a single download request on a worker goroutine:
// it resolves the best stream with the media fetcher, saves it under a
// title-derived name, optionally extracts mp3 audio, and reports exactly one
// model.Outcome per request. Playlist URLs are expanded and downloaded entry
// by entry inside the same request.
package download
