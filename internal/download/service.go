package download

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ytget/yt-assistant/internal/model"
	"github.com/ytget/yt-assistant/internal/platform"
	"github.com/ytget/yt-assistant/internal/transcode"
)

// RequestIDPrefix prefixes every generated request ID
const RequestIDPrefix = "dl-"

var (
	// ErrEmptyURL is returned by Start for blank links
	ErrEmptyURL = errors.New("download URL is empty")

	// ErrBusy is returned by Start while another request is in flight
	ErrBusy = errors.New("a download is already in progress")

	// ErrPanic wraps a panic recovered inside a download task
	ErrPanic = errors.New("download task panicked")

	// ErrEmptyPlaylist is returned for playlists without entries
	ErrEmptyPlaylist = errors.New("playlist has no entries")
)

// Service runs one download request at a time
type Service struct {
	fetcher    MediaFetcher
	transcoder transcode.AudioTranscoder
	playlists  PlaylistResolver
	timeout    time.Duration
	log        zerolog.Logger

	mu     sync.Mutex
	active string // ID of the request in flight
}

// NewService creates a new download service. playlists may be nil, in which
// case every URL is treated as a single video.
func NewService(fetcher MediaFetcher, transcoder transcode.AudioTranscoder, playlists PlaylistResolver, log zerolog.Logger) *Service {
	return &Service{
		fetcher:    fetcher,
		transcoder: transcoder,
		playlists:  playlists,
		log:        log.With().Str("component", "download").Logger(),
	}
}

// SetTimeout bounds a whole request; zero means no limit
func (s *Service) SetTimeout(timeout time.Duration) {
	s.timeout = timeout
}

// NewRequest snapshots the user's inputs into a request with a fresh ID
func NewRequest(url string, format model.Format, folder string) model.DownloadRequest {
	return model.DownloadRequest{
		ID:        generateRequestID(),
		URL:       strings.TrimSpace(url),
		Format:    format,
		Folder:    folder,
		CreatedAt: time.Now(),
	}
}

// Busy reports whether a request is in flight
func (s *Service) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active != ""
}

// Start runs req on a new goroutine. The returned channel receives exactly
// one Outcome and is then closed; the service is idle again before the
// Outcome is sent.
func (s *Service) Start(req model.DownloadRequest) (<-chan model.Outcome, error) {
	req.URL = strings.TrimSpace(req.URL)
	if req.URL == "" {
		return nil, ErrEmptyURL
	}
	if req.ID == "" {
		req.ID = generateRequestID()
	}

	s.mu.Lock()
	if s.active != "" {
		active := s.active
		s.mu.Unlock()
		s.log.Info().Str("request_id", req.ID).Str("active_id", active).Msg("Download already in progress, ignoring request")
		return nil, ErrBusy
	}
	s.active = req.ID
	s.mu.Unlock()

	done := make(chan model.Outcome, 1)
	go func() {
		outcome := s.Run(context.Background(), req)

		s.mu.Lock()
		s.active = ""
		s.mu.Unlock()

		done <- outcome
		close(done)
	}()

	return done, nil
}

// Run executes req synchronously. Failures, panics included, are reported in
// the returned Outcome.
func (s *Service) Run(ctx context.Context, req model.DownloadRequest) (outcome model.Outcome) {
	outcome = model.Outcome{
		RequestID: req.ID,
		Status:    model.TaskStatusRunning,
		StartedAt: time.Now(),
	}
	log := s.log.With().Str("request_id", req.ID).Str("url", req.URL).Str("format", string(req.Format)).Logger()

	defer func() {
		if r := recover(); r != nil {
			outcome.Err = fmt.Errorf("%w: %v", ErrPanic, r)
		}
		outcome.FinishedAt = time.Now()
		if outcome.Err != nil {
			outcome.Status = model.TaskStatusError
			log.Error().Err(outcome.Err).Dur("duration", outcome.Duration()).Msg("Download failed")
			return
		}
		outcome.Status = model.TaskStatusCompleted
		log.Info().
			Str("title", outcome.GetDisplayTitle()).
			Str("path", outcome.OutputPath).
			Int("files", outcome.Files).
			Str("size", humanize.Bytes(uint64(outcome.Bytes))).
			Dur("duration", outcome.Duration()).
			Msg("Download complete")
	}()

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	if err := platform.CreateDirectoryIfNotExists(req.Folder); err != nil {
		outcome.Err = fmt.Errorf("prepare download folder: %w", err)
		return outcome
	}

	if s.playlists != nil && s.playlists.IsPlaylist(req.URL) {
		outcome.Err = s.runPlaylist(ctx, req, &outcome, log)
		return outcome
	}

	item, err := s.fetchOne(ctx, req.URL, req.Format, req.Folder, log)
	outcome.Bytes += item.bytes
	if err != nil {
		outcome.Err = err
		return outcome
	}
	outcome.Title = item.title
	outcome.OutputPath = item.path
	outcome.Files = 1
	return outcome
}

// runPlaylist downloads every entry in order. It keeps going after a failed
// entry and reports all failures together.
func (s *Service) runPlaylist(ctx context.Context, req model.DownloadRequest, outcome *model.Outcome, log zerolog.Logger) error {
	playlist, err := s.playlists.Resolve(ctx, req.URL)
	if err != nil {
		return fmt.Errorf("resolve playlist: %w", err)
	}
	if len(playlist.Entries) == 0 {
		return fmt.Errorf("%w: %s", ErrEmptyPlaylist, playlist.ID)
	}

	log.Info().Str("playlist_id", playlist.ID).Int("entries", len(playlist.Entries)).Msg("Downloading playlist")

	var errs []error
	for i, entry := range playlist.Entries {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		item, err := s.fetchOne(ctx, entry.URL, req.Format, req.Folder, log.With().Int("entry", i+1).Logger())
		outcome.Bytes += item.bytes
		if err != nil {
			errs = append(errs, fmt.Errorf("entry %d (%s): %w", i+1, entry.VideoID, err))
			continue
		}
		outcome.Files++
		outcome.OutputPath = item.path
	}

	outcome.Title = playlist.ID
	if len(errs) > 0 {
		return fmt.Errorf("%d of %d playlist entries failed: %w", len(errs), len(playlist.Entries), errors.Join(errs...))
	}
	return nil
}

type fetchedItem struct {
	title string
	path  string
	bytes int64
}

// fetchOne downloads one video and, for audio requests, converts it to mp3.
// A failure leaves no new file behind and never removes files that existed
// before the request.
func (s *Service) fetchOne(ctx context.Context, url string, format model.Format, folder string, log zerolog.Logger) (fetchedItem, error) {
	var item fetchedItem

	stream, err := s.fetcher.Resolve(ctx, url, format)
	if err != nil {
		return item, fmt.Errorf("resolve stream: %w", err)
	}
	item.title = stream.Title

	base := baseName(stream)
	containerPath := outputPath(folder, base, stream.Extension)

	// Save writes atomically: a failed save leaves containerPath as it was.
	n, err := s.fetcher.Save(ctx, stream, containerPath)
	item.bytes = n
	if err != nil {
		return item, fmt.Errorf("save stream: %w", err)
	}
	log.Debug().Str("path", containerPath).Str("size", humanize.Bytes(uint64(n))).Msg("Stream saved")

	if !format.IsAudio() || stream.Extension == format.Extension() {
		item.path = containerPath
		return item, nil
	}

	audioPath := outputPath(folder, base, format.Extension())
	log.Debug().Str("status", model.TaskStatusConverting.String()).Str("path", audioPath).Msg("Extracting audio")
	if err := s.transcoder.ExtractAudio(ctx, containerPath, audioPath); err != nil {
		// The container is this request's own download; audioPath is left to
		// the transcoder, which only replaces it on success.
		s.cleanup(containerPath, log)
		return item, fmt.Errorf("extract audio: %w", err)
	}

	item.path = audioPath
	return item, nil
}

func (s *Service) cleanup(path string, log zerolog.Logger) {
	if err := platform.RemoveIfExists(path); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Failed to remove intermediate file")
	}
}

// generateRequestID generates a unique request ID using UUID v7
func generateRequestID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf("%s%d", RequestIDPrefix, time.Now().UnixNano())
	}
	return RequestIDPrefix + id.String()
}
