package transcode

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewService(t *testing.T) {
	service := NewService("", zerolog.Nop())
	if service.ffmpegPath != FFmpegCommand {
		t.Errorf("Expected default ffmpeg path %q, got %q", FFmpegCommand, service.ffmpegPath)
	}

	service = NewService("/opt/bin/ffmpeg", zerolog.Nop())
	if service.ffmpegPath != "/opt/bin/ffmpeg" {
		t.Errorf("Expected custom ffmpeg path, got %q", service.ffmpegPath)
	}
}

func TestBuildFFmpegArgs(t *testing.T) {
	service := NewService("", zerolog.Nop())
	args := service.BuildFFmpegArgs("/in/song.m4a", "/in/song.mp3")

	expectedArgs := []string{
		"-y",
		"-hide_banner",
		"-loglevel", FFmpegLogLevel,
		"-i", "/in/song.m4a",
		"-vn",
		"-c:a", AudioCodec,
		"-q:a", AudioQuality,
		"/in/song.mp3",
	}

	if len(args) != len(expectedArgs) {
		t.Fatalf("Expected %d args, got %d", len(expectedArgs), len(args))
	}

	for i, expected := range expectedArgs {
		if args[i] != expected {
			t.Errorf("Arg %d: expected %s, got %s", i, expected, args[i])
		}
	}
}

func TestExtractAudio_RemovesInputOnSuccess(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "song.m4a")
	output := filepath.Join(dir, "song.mp3")
	if err := os.WriteFile(input, []byte("container"), 0644); err != nil {
		t.Fatal(err)
	}

	service := NewService("ffmpeg", zerolog.Nop())
	var gotName string
	service.run = func(ctx context.Context, name string, args ...string) ([]byte, error) {
		gotName = name
		return nil, os.WriteFile(args[len(args)-1], []byte("mp3"), 0644)
	}

	if err := service.ExtractAudio(context.Background(), input, output); err != nil {
		t.Fatalf("ExtractAudio() error = %v", err)
	}

	if gotName != "ffmpeg" {
		t.Errorf("Expected ffmpeg to run, got %q", gotName)
	}
	if _, err := os.Stat(input); !os.IsNotExist(err) {
		t.Error("Intermediate container should be deleted")
	}
	if _, err := os.Stat(output); err != nil {
		t.Errorf("Output should exist: %v", err)
	}
}

func TestExtractAudio_FailureKeepsInput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "song.webm")
	output := filepath.Join(dir, "song.mp3")
	if err := os.WriteFile(input, []byte("container"), 0644); err != nil {
		t.Fatal(err)
	}

	service := NewService("ffmpeg", zerolog.Nop())
	service.run = func(ctx context.Context, name string, args ...string) ([]byte, error) {
		_ = os.WriteFile(args[len(args)-1], []byte("partial"), 0644)
		return []byte("Stream map '' matches no streams.\nInvalid data found when processing input\n"), errors.New("exit status 1")
	}

	err := service.ExtractAudio(context.Background(), input, output)
	if err == nil {
		t.Fatal("Expected error from failing ffmpeg")
	}
	if !strings.Contains(err.Error(), "Invalid data found when processing input") {
		t.Errorf("Expected ffmpeg detail in error, got: %v", err)
	}
	if _, err := os.Stat(input); err != nil {
		t.Error("Input must be kept when transcoding fails")
	}
	if _, err := os.Stat(output); !os.IsNotExist(err) {
		t.Error("No output should appear when transcoding fails")
	}
	assertOnlyFiles(t, dir, "song.webm")
}

func TestExtractAudio_FailureKeepsExistingOutput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "Song.m4a")
	output := filepath.Join(dir, "Song.mp3")
	if err := os.WriteFile(input, []byte("container"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(output, []byte("earlier download"), 0644); err != nil {
		t.Fatal(err)
	}

	service := NewService("ffmpeg", zerolog.Nop())
	var target string
	service.run = func(ctx context.Context, name string, args ...string) ([]byte, error) {
		target = args[len(args)-1]
		_ = os.WriteFile(target, []byte("partial"), 0644)
		return nil, errors.New("exit status 1")
	}

	if err := service.ExtractAudio(context.Background(), input, output); err == nil {
		t.Fatal("Expected error from failing ffmpeg")
	}

	if target == output {
		t.Error("ffmpeg must not write over the final output directly")
	}
	if !strings.HasSuffix(target, ".mp3") {
		t.Errorf("Temp output %q should keep the .mp3 extension", target)
	}
	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("Existing output was removed: %v", err)
	}
	if string(data) != "earlier download" {
		t.Errorf("Existing output was modified: %q", data)
	}
	assertOnlyFiles(t, dir, "Song.m4a", "Song.mp3")
}

func TestExtractAudio_ReplacesExistingOutputOnSuccess(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "Song.m4a")
	output := filepath.Join(dir, "Song.mp3")
	if err := os.WriteFile(input, []byte("container"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(output, []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}

	service := NewService("ffmpeg", zerolog.Nop())
	service.run = func(ctx context.Context, name string, args ...string) ([]byte, error) {
		return nil, os.WriteFile(args[len(args)-1], []byte("new"), 0644)
	}

	if err := service.ExtractAudio(context.Background(), input, output); err != nil {
		t.Fatalf("ExtractAudio() error = %v", err)
	}
	data, _ := os.ReadFile(output)
	if string(data) != "new" {
		t.Errorf("Expected output to be replaced, got %q", data)
	}
	assertOnlyFiles(t, dir, "Song.mp3")
}

// assertOnlyFiles fails if dir holds anything but names
func assertOnlyFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for _, e := range entries {
		got = append(got, e.Name())
	}
	if strings.Join(got, ",") != strings.Join(names, ",") {
		t.Errorf("Expected files %v, got %v", names, got)
	}
}

func TestExtractAudio_MissingInput(t *testing.T) {
	service := NewService("ffmpeg", zerolog.Nop())
	service.run = func(context.Context, string, ...string) ([]byte, error) {
		t.Fatal("ffmpeg must not run without input")
		return nil, nil
	}

	err := service.ExtractAudio(context.Background(), "/path/to/nonexistent/file.m4a", "/tmp/out.mp3")
	if !errors.Is(err, ErrInputMissing) {
		t.Errorf("Expected ErrInputMissing, got: %v", err)
	}
}

func TestLastLine(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"one line", "one line"},
		{"first\nsecond\n\n", "second"},
	}
	for _, test := range tests {
		if got := lastLine([]byte(test.input)); got != test.expected {
			t.Errorf("lastLine(%q) = %q, expected %q", test.input, got, test.expected)
		}
	}
}
