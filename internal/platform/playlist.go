package platform

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ytget/yt-assistant/internal/model"
	"github.com/ytget/ytdlp/v2"
)

// Timeout constants
const (
	DefaultParseTimeout = 60 * time.Second
)

// ErrNotPlaylist is returned for URLs without a playlist ID.
var ErrNotPlaylist = errors.New("not a playlist URL")

// PlaylistResolver expands playlist URLs into their video URLs.
type PlaylistResolver struct {
	timeout time.Duration
	list    func(ctx context.Context, playlistID string) ([]model.PlaylistEntry, error)
}

// NewPlaylistResolver creates a resolver backed by github.com/ytget/ytdlp/v2.
func NewPlaylistResolver() *PlaylistResolver {
	return &PlaylistResolver{
		timeout: DefaultParseTimeout,
		list:    listWithYTDLP,
	}
}

// SetTimeout sets the timeout for a single Resolve call; zero disables it.
func (p *PlaylistResolver) SetTimeout(timeout time.Duration) {
	p.timeout = timeout
}

// IsPlaylist reports whether rawURL should be expanded.
func (p *PlaylistResolver) IsPlaylist(rawURL string) bool {
	return IsPlaylistURL(rawURL)
}

// Resolve returns the playlist entries behind rawURL.
func (p *PlaylistResolver) Resolve(ctx context.Context, rawURL string) (*model.Playlist, error) {
	playlistID := ExtractPlaylistID(rawURL)
	if playlistID == "" {
		return nil, fmt.Errorf("%w: %s", ErrNotPlaylist, rawURL)
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	entries, err := p.list(ctx, playlistID)
	if err != nil {
		return nil, fmt.Errorf("failed to get playlist items: %w", err)
	}

	return &model.Playlist{
		ID:      playlistID,
		URL:     rawURL,
		Entries: entries,
	}, nil
}

func listWithYTDLP(ctx context.Context, playlistID string) ([]model.PlaylistEntry, error) {
	items, err := ytdlp.New().GetPlaylistItemsAll(ctx, playlistID, 0)
	if err != nil {
		return nil, err
	}

	entries := make([]model.PlaylistEntry, 0, len(items))
	for _, it := range items {
		if it.VideoID == "" {
			continue
		}
		entries = append(entries, model.PlaylistEntry{
			VideoID: it.VideoID,
			Title:   it.Title,
			URL:     fmt.Sprintf(YouTubeVideoURLTemplate, it.VideoID),
		})
	}
	return entries, nil
}
