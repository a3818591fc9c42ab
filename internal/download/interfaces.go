package download

import (
	"context"

	"github.com/ytget/yt-assistant/internal/model"
)

// Downloader defines the interface for the download service.
type Downloader interface {
	// Start runs req in the background. The returned channel yields exactly
	// one Outcome and is then closed.
	Start(req model.DownloadRequest) (<-chan model.Outcome, error)

	// Busy reports whether a request is in flight
	Busy() bool
}

// MediaFetcher resolves and saves media streams.
type MediaFetcher interface {
	Resolve(ctx context.Context, url string, format model.Format) (*Stream, error)
	Save(ctx context.Context, stream *Stream, path string) (int64, error)
}

// PlaylistResolver expands playlist URLs.
type PlaylistResolver interface {
	IsPlaylist(url string) bool
	Resolve(ctx context.Context, url string) (*model.Playlist, error)
}
