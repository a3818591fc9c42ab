package download

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/kkdai/youtube/v2"
	"github.com/rs/zerolog"

	"github.com/ytget/yt-assistant/internal/model"
	"github.com/ytget/yt-assistant/internal/platform"
)

// MIME types used when picking streams. Video requires mp4; audio prefers
// it.
const (
	PreferredVideoMime = "video/mp4"
	PreferredAudioMime = "audio/mp4"
)

var (
	// ErrNoStream is returned when a video has no stream usable for the format
	ErrNoStream = errors.New("no suitable stream available")

	// ErrStreamNotResolved is returned by Save for streams not produced by Resolve
	ErrStreamNotResolved = errors.New("stream was not resolved")

	// ErrIncompleteDownload is returned when fewer bytes arrive than announced
	ErrIncompleteDownload = errors.New("incomplete download")
)

// Stream is a resolved, downloadable track of one video
type Stream struct {
	VideoID       string
	Title         string
	MimeType      string
	Extension     string // container extension without the dot
	ContentLength int64

	video  *youtube.Video
	format *youtube.Format
}

// YouTubeFetcher implements MediaFetcher with github.com/kkdai/youtube/v2
type YouTubeFetcher struct {
	client *youtube.Client
	log    zerolog.Logger
}

// NewYouTubeFetcher creates a fetcher. A nil httpClient uses http.DefaultClient.
func NewYouTubeFetcher(httpClient *http.Client, log zerolog.Logger) *YouTubeFetcher {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &YouTubeFetcher{
		client: &youtube.Client{HTTPClient: httpClient},
		log:    log.With().Str("component", "fetcher").Logger(),
	}
}

// Resolve fetches video metadata and selects the stream for format
func (f *YouTubeFetcher) Resolve(ctx context.Context, url string, format model.Format) (*Stream, error) {
	video, err := f.client.GetVideoContext(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch video metadata: %w", err)
	}

	var selected *youtube.Format
	if format.IsAudio() {
		selected = selectAudioFormat(video.Formats)
	} else {
		selected = selectVideoFormat(video.Formats)
	}
	if selected == nil {
		return nil, fmt.Errorf("%w for %s (%s)", ErrNoStream, video.ID, format)
	}

	f.log.Debug().
		Str("video_id", video.ID).
		Str("mime", selected.MimeType).
		Int("height", selected.Height).
		Int("bitrate", bitrateOf(selected)).
		Msg("Selected stream")

	return &Stream{
		VideoID:       video.ID,
		Title:         video.Title,
		MimeType:      selected.MimeType,
		Extension:     mimeToExt(selected.MimeType),
		ContentLength: selected.ContentLength,
		video:         video,
		format:        selected,
	}, nil
}

// Save downloads stream to path. The file only appears at path once the
// whole stream has been written.
func (f *YouTubeFetcher) Save(ctx context.Context, stream *Stream, path string) (int64, error) {
	if stream == nil || stream.video == nil || stream.format == nil {
		return 0, ErrStreamNotResolved
	}

	reader, size, err := f.client.GetStreamContext(ctx, stream.video, stream.format)
	if err != nil {
		return 0, fmt.Errorf("starting stream: %w", err)
	}
	defer reader.Close()

	writer, err := platform.NewAtomicWriter(path)
	if err != nil {
		return 0, err
	}

	written, err := io.Copy(writer, &contextReader{ctx: ctx, r: reader})
	if err != nil {
		writer.Abort()
		return written, fmt.Errorf("download failed: %w", err)
	}
	if size > 0 && written < size {
		writer.Abort()
		return written, fmt.Errorf("%w: got %d of %d bytes", ErrIncompleteDownload, written, size)
	}
	if err := writer.Commit(); err != nil {
		return written, fmt.Errorf("save %s: %w", path, err)
	}
	return written, nil
}

// selectVideoFormat picks the tallest progressive mp4 stream, ties going to
// the higher bitrate. Video output is always an mp4 container, so other
// progressive containers are not considered.
func selectVideoFormat(formats youtube.FormatList) *youtube.Format {
	var best *youtube.Format
	for i := range formats {
		candidate := &formats[i]
		if candidate.AudioChannels == 0 || candidate.Width == 0 || candidate.Height == 0 {
			continue
		}
		if !hasMime(candidate, PreferredVideoMime) {
			continue
		}
		if best == nil || betterVideoFormat(candidate, best) {
			best = candidate
		}
	}
	return best
}

func betterVideoFormat(candidate, current *youtube.Format) bool {
	if candidate.Height != current.Height {
		return candidate.Height > current.Height
	}
	return bitrateOf(candidate) > bitrateOf(current)
}

// selectAudioFormat picks the audio-only stream with the highest bitrate,
// preferring mp4 audio.
func selectAudioFormat(formats youtube.FormatList) *youtube.Format {
	var best *youtube.Format
	for i := range formats {
		candidate := &formats[i]
		if candidate.AudioChannels == 0 || candidate.Width != 0 || candidate.Height != 0 {
			continue
		}
		if best == nil || betterAudioFormat(candidate, best) {
			best = candidate
		}
	}
	return best
}

func betterAudioFormat(candidate, current *youtube.Format) bool {
	if cm, bm := hasMime(candidate, PreferredAudioMime), hasMime(current, PreferredAudioMime); cm != bm {
		return cm
	}
	return bitrateOf(candidate) > bitrateOf(current)
}

func hasMime(f *youtube.Format, mime string) bool {
	return strings.HasPrefix(strings.ToLower(f.MimeType), mime)
}

func bitrateOf(f *youtube.Format) int {
	if f.Bitrate > 0 {
		return f.Bitrate
	}
	return f.AverageBitrate
}

// mimeToExt maps a MIME type such as `audio/mp4; codecs="mp4a.40.2"` to a
// file extension.
func mimeToExt(mime string) string {
	if i := strings.Index(mime, ";"); i >= 0 {
		mime = mime[:i]
	}
	mime = strings.ToLower(strings.TrimSpace(mime))
	switch mime {
	case "audio/mp4":
		return "m4a"
	case "video/3gpp":
		return "3gp"
	}
	if _, sub, ok := strings.Cut(mime, "/"); ok && sub != "" {
		return sub
	}
	return "bin"
}

// contextReader stops a copy once ctx is done
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
