package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2/app"

	"github.com/ytget/yt-assistant/internal/config"
	"github.com/ytget/yt-assistant/internal/download"
	"github.com/ytget/yt-assistant/internal/hotkey"
	"github.com/ytget/yt-assistant/internal/hotkey/desktop"
	"github.com/ytget/yt-assistant/internal/logger"
	"github.com/ytget/yt-assistant/internal/platform"
	"github.com/ytget/yt-assistant/internal/transcode"
	"github.com/ytget/yt-assistant/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID = "com.ytget.yt-assistant"

	// ConfigFileEnv points at an explicit config file
	ConfigFileEnv = "YTASSISTANT_CONFIG"
)

func main() {
	cfg, err := config.Load(os.Getenv(ConfigFileEnv))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Path:   cfg.Log.Path,
	})
	defer log.Close()
	mainLog := log.WithComponent("main")

	mainLog.Info().Str("version", version).Msg("YT Assistant starting")

	store := config.NewPreferenceStore(cfg.Preferences.Path)
	prefs, err := store.Load()
	if err != nil {
		mainLog.Error().Err(err).Str("path", store.Path()).Msg("Failed to load preferences, using defaults")
		prefs = store.Defaults()
		if err := platform.CreateDirectoryIfNotExists(prefs.DownloadPath); err != nil {
			mainLog.Error().Err(err).Str("path", prefs.DownloadPath).Msg("Failed to create download folder")
		}
	}

	transcoder := transcode.NewService(cfg.FFmpeg.Path, log.Logger)
	if err := transcoder.Available(); err != nil {
		mainLog.Warn().Err(err).Msg("mp3 downloads will fail until ffmpeg is installed")
	}

	resolver := platform.NewPlaylistResolver()
	downloads := download.NewService(
		download.NewYouTubeFetcher(nil, log.Logger),
		transcoder,
		resolver,
		log.Logger,
	)
	downloads.SetTimeout(cfg.Fetch.Timeout)

	hotkeys := hotkey.NewManager(desktop.NewBackend(), log.Logger)
	defer func() {
		if err := hotkeys.Close(); err != nil {
			mainLog.Warn().Err(err).Msg("Failed to release hotkeys")
		}
	}()

	myApp := app.NewWithID(AppID)
	myWindow := myApp.NewWindow(ui.AppTitle)

	ui.NewRootUI(myWindow, myApp, prefs, ui.Services{
		Downloads:   downloads,
		Preferences: store,
		Hotkeys:     hotkeys,
		Clipboard:   platform.NewSystemClipboard(),
		Log:         log.Logger,
	})

	myWindow.ShowAndRun()
	mainLog.Info().Msg("YT Assistant stopped")
}
