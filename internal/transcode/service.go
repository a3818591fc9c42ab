package transcode

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ytget/yt-assistant/internal/platform"
)

// FFmpeg constants for mp3 extraction
const (
	FFmpegCommand = "ffmpeg"

	// LAME VBR quality 2 averages around 190 kbit/s
	AudioCodec   = "libmp3lame"
	AudioQuality = "2"

	FFmpegLogLevel = "error"
)

// ErrInputMissing is returned when the container to transcode does not exist.
var ErrInputMissing = errors.New("input file does not exist")

// runFunc executes a command and returns its combined output.
type runFunc func(ctx context.Context, name string, args ...string) ([]byte, error)

// Service runs ffmpeg to turn containers into mp3 files
type Service struct {
	ffmpegPath string
	run        runFunc
	log        zerolog.Logger
}

// NewService creates a transcoder using the given ffmpeg executable
func NewService(ffmpegPath string, log zerolog.Logger) *Service {
	if ffmpegPath == "" {
		ffmpegPath = FFmpegCommand
	}
	return &Service{
		ffmpegPath: ffmpegPath,
		run:        runCommand,
		log:        log.With().Str("component", "transcode").Logger(),
	}
}

// Available reports whether the ffmpeg executable can be found
func (s *Service) Available() error {
	if _, err := exec.LookPath(s.ffmpegPath); err != nil {
		return fmt.Errorf("ffmpeg not found at %q: %w", s.ffmpegPath, err)
	}
	return nil
}

// BuildFFmpegArgs builds the ffmpeg command arguments
func (s *Service) BuildFFmpegArgs(inputPath, outputPath string) []string {
	return []string{
		"-y",
		"-hide_banner",
		"-loglevel", FFmpegLogLevel,
		"-i", inputPath,
		"-vn", // Drop any video stream
		"-c:a", AudioCodec,
		"-q:a", AudioQuality,
		outputPath,
	}
}

// ExtractAudio implements AudioTranscoder. ffmpeg writes to a temp file next
// to outputPath which is renamed over it on success, so a failed run leaves
// an existing outputPath untouched. The input is removed only on success.
func (s *Service) ExtractAudio(ctx context.Context, inputPath, outputPath string) error {
	if _, err := os.Stat(inputPath); err != nil {
		return fmt.Errorf("%w: %s", ErrInputMissing, inputPath)
	}

	tmpPath, err := tempOutputPath(outputPath)
	if err != nil {
		return err
	}

	s.log.Debug().Str("input", inputPath).Str("output", outputPath).Str("tmp", tmpPath).Msg("Extracting audio")

	output, err := s.run(ctx, s.ffmpegPath, s.BuildFFmpegArgs(inputPath, tmpPath)...)
	if err != nil {
		s.removeTemp(tmpPath)
		if detail := lastLine(output); detail != "" {
			return fmt.Errorf("ffmpeg failed: %w: %s", err, detail)
		}
		return fmt.Errorf("ffmpeg failed: %w", err)
	}

	if err := os.Rename(tmpPath, outputPath); err != nil {
		s.removeTemp(tmpPath)
		return fmt.Errorf("move audio into place: %w", err)
	}

	if err := platform.RemoveIfExists(inputPath); err != nil {
		return fmt.Errorf("remove intermediate file: %w", err)
	}
	return nil
}

// tempOutputPath reserves a hidden file beside outputPath. It keeps the
// extension because ffmpeg picks the muxer from it.
func tempOutputPath(outputPath string) (string, error) {
	dir := filepath.Dir(outputPath)
	ext := filepath.Ext(outputPath)
	stem := strings.TrimSuffix(filepath.Base(outputPath), ext)

	tmp, err := os.CreateTemp(dir, "."+stem+"-*.tmp"+ext)
	if err != nil {
		return "", fmt.Errorf("create temp output: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("create temp output: %w", err)
	}
	return tmp.Name(), nil
}

func (s *Service) removeTemp(path string) {
	if err := platform.RemoveIfExists(path); err != nil {
		s.log.Warn().Err(err).Str("path", path).Msg("Failed to remove temp output")
	}
}

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &out
	cmd.Stderr = &out
	err := cmd.Run()
	return out.Bytes(), err
}

// lastLine returns the last non-empty line of ffmpeg's output
func lastLine(output []byte) string {
	lines := strings.Split(strings.TrimSpace(string(output)), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return ""
}
