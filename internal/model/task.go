package model

import (
	"fmt"
	"strings"
	"time"
)

// Format is the output format chosen by the user
type Format string

const (
	// FormatVideo saves the progressive video stream as an mp4 container
	FormatVideo Format = "mp4"

	// FormatAudio extracts the audio track and encodes it to mp3
	FormatAudio Format = "mp3"
)

// ParseFormat maps a radio label or preference value onto a Format
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatVideo:
		return FormatVideo, nil
	case FormatAudio:
		return FormatAudio, nil
	default:
		return "", fmt.Errorf("unknown format: %q", s)
	}
}

// IsAudio reports whether the format needs an audio-only stream
func (f Format) IsAudio() bool {
	return f == FormatAudio
}

// Extension returns the file extension of the final output, without the dot
func (f Format) Extension() string {
	return string(f)
}

// DownloadRequest is a snapshot of the user's inputs for a single download.
// It is created on the UI thread and handed to a worker by value.
type DownloadRequest struct {
	ID        string
	URL       string
	Format    Format
	Folder    string
	CreatedAt time.Time
}

// Outcome is the single result of a download task
type Outcome struct {
	RequestID  string
	Status     TaskStatus
	Title      string
	OutputPath string // last file written
	Files      int    // files written, more than one for playlists
	Bytes      int64  // bytes fetched from the network
	Err        error
	StartedAt  time.Time
	FinishedAt time.Time
}

// Succeeded reports whether the task completed without error
func (o Outcome) Succeeded() bool {
	return o.Status == TaskStatusCompleted && o.Err == nil
}

// Duration returns how long the task ran
func (o Outcome) Duration() time.Duration {
	if o.StartedAt.IsZero() || o.FinishedAt.IsZero() {
		return 0
	}
	return o.FinishedAt.Sub(o.StartedAt)
}

// GetDisplayTitle returns title, filename, or request ID in order of preference
func (o Outcome) GetDisplayTitle() string {
	if o.Title != "" && !strings.HasPrefix(o.Title, "http") {
		return o.Title
	}

	if o.OutputPath != "" {
		// Support both / and \ separators regardless of the host OS
		parts := strings.FieldsFunc(o.OutputPath, func(r rune) bool {
			return r == '/' || r == '\\'
		})
		if len(parts) > 0 {
			filename := parts[len(parts)-1]
			if idx := strings.LastIndex(filename, "."); idx > 0 {
				filename = filename[:idx]
			}
			return filename
		}
	}

	return o.RequestID
}

// PlaylistEntry is one video of an expanded playlist
type PlaylistEntry struct {
	VideoID string
	Title   string
	URL     string
}

// Playlist is the list of videos behind a playlist URL
type Playlist struct {
	ID      string
	URL     string
	Entries []PlaylistEntry
}
