// Package transcode extracts audio tracks from downloaded containers by
// running ffmpeg as a subprocess.
package transcode
