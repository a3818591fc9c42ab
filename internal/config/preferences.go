// Package config holds the user's persisted preferences and the process-level
// application configuration.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ytget/yt-assistant/internal/hotkey"
	"github.com/ytget/yt-assistant/internal/platform"
)

// Default values
const (
	DefaultPreferencesFile = "preferences.json"
	DefaultDownloadsSubdir = "downloads"
	DefaultHotkey          = hotkey.DefaultCombo
	DefaultDarkTheme       = false
)

// Preferences is the user-editable state persisted across restarts.
type Preferences struct {
	DownloadPath string `json:"default_download_path"`
	Hotkey       string `json:"hotkey"`
	DarkTheme    bool   `json:"dark_theme_enabled"`
}

// filePreferences mirrors Preferences with pointers so missing keys can be told
// apart from zero values.
type filePreferences struct {
	DownloadPath *string `json:"default_download_path"`
	Hotkey       *string `json:"hotkey"`
	DarkTheme    *bool   `json:"dark_theme_enabled"`
}

// PreferenceStore loads and saves Preferences as a JSON document.
type PreferenceStore struct {
	path string
	mu   sync.Mutex
}

// NewPreferenceStore creates a store for the given file. An empty path uses
// preferences.json in the working directory.
func NewPreferenceStore(path string) *PreferenceStore {
	if path == "" {
		path = DefaultPreferencesFile
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return &PreferenceStore{path: path}
}

// Path returns the absolute location of the preferences file.
func (s *PreferenceStore) Path() string {
	return s.path
}

// Defaults returns the first-run preferences.
func (s *PreferenceStore) Defaults() Preferences {
	return Preferences{
		DownloadPath: filepath.Join(filepath.Dir(s.path), DefaultDownloadsSubdir),
		Hotkey:       DefaultHotkey,
		DarkTheme:    DefaultDarkTheme,
	}
}

// Load reads the preferences, writing a default file on first run. Missing
// keys and unparseable hotkeys fall back to defaults. The download folder is
// created if it does not exist.
func (s *PreferenceStore) Load() (Preferences, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		prefs := s.Defaults()
		if err := s.saveLocked(prefs); err != nil {
			return prefs, err
		}
		return prefs, nil
	}
	if err != nil {
		return Preferences{}, fmt.Errorf("read preferences: %w", err)
	}

	var raw filePreferences
	if err := json.Unmarshal(data, &raw); err != nil {
		return Preferences{}, fmt.Errorf("parse preferences %s: %w", s.path, err)
	}

	prefs := s.Defaults()
	if raw.DownloadPath != nil && strings.TrimSpace(*raw.DownloadPath) != "" {
		prefs.DownloadPath = *raw.DownloadPath
	}
	if raw.Hotkey != nil {
		if combo, err := hotkey.Canonical(*raw.Hotkey); err == nil {
			prefs.Hotkey = combo
		}
	}
	if raw.DarkTheme != nil {
		prefs.DarkTheme = *raw.DarkTheme
	}

	if err := platform.CreateDirectoryIfNotExists(prefs.DownloadPath); err != nil {
		return prefs, fmt.Errorf("create download folder: %w", err)
	}
	return prefs, nil
}

// Save overwrites the preferences file and ensures the download folder exists.
func (s *PreferenceStore) Save(prefs Preferences) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked(prefs)
}

func (s *PreferenceStore) saveLocked(prefs Preferences) error {
	if strings.TrimSpace(prefs.DownloadPath) == "" {
		return errors.New("save preferences: empty download path")
	}
	if _, err := hotkey.ParseCombo(prefs.Hotkey); err != nil {
		return fmt.Errorf("save preferences: %w", err)
	}
	if err := platform.CreateDirectoryIfNotExists(prefs.DownloadPath); err != nil {
		return fmt.Errorf("create download folder: %w", err)
	}

	data, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}
	if err := platform.WriteFileAtomic(s.path, data); err != nil {
		return fmt.Errorf("write preferences: %w", err)
	}
	return nil
}
