package ui

import (
	"errors"
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/ytget/yt-assistant/internal/config"
	"github.com/ytget/yt-assistant/internal/download"
	"github.com/ytget/yt-assistant/internal/hotkey"
	"github.com/ytget/yt-assistant/internal/model"
	"github.com/ytget/yt-assistant/internal/platform"
)

// Services are the collaborators of the main window
type Services struct {
	Downloads   download.Downloader
	Preferences *config.PreferenceStore
	Hotkeys     *hotkey.Manager
	Clipboard   platform.ClipboardReader
	Log         zerolog.Logger

	// OpenFolder reveals a folder in the file manager; defaults to platform.OpenFolder
	OpenFolder func(dir string) error
}

// RootUI represents the main window. Its fields are owned by the UI thread.
type RootUI struct {
	window fyne.Window
	app    fyne.App
	svc    Services
	prefs  config.Preferences
	log    zerolog.Logger

	linkEntry    *widget.Entry
	formatRadio  *widget.RadioGroup
	downloadBtn  *widget.Button
	darkCheck    *widget.Check
	statusLabel  *widget.Label
	hotkeyDialog *HotkeyDialog
}

// NewRootUI builds the main window content and registers the saved hotkey
func NewRootUI(window fyne.Window, app fyne.App, prefs config.Preferences, svc Services) *RootUI {
	if svc.OpenFolder == nil {
		svc.OpenFolder = platform.OpenFolder
	}

	ui := &RootUI{
		window: window,
		app:    app,
		svc:    svc,
		prefs:  prefs,
		log:    svc.Log.With().Str("component", "ui").Logger(),
	}

	window.SetTitle(AppTitle)
	app.Settings().SetTheme(NewAppTheme(prefs.DarkTheme))

	ui.setupUI()
	ui.registerHotkey()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.linkEntry = widget.NewEntry()
	ui.linkEntry.SetPlaceHolder(LinkPlaceholder)
	ui.linkEntry.OnSubmitted = func(string) {
		ui.startDownload()
	}

	ui.formatRadio = widget.NewRadioGroup([]string{string(model.FormatVideo), string(model.FormatAudio)}, nil)
	ui.formatRadio.Horizontal = true
	ui.formatRadio.Required = true
	ui.formatRadio.SetSelected(string(model.FormatVideo))

	ui.downloadBtn = widget.NewButton(LabelDownload, ui.startDownload)
	ui.downloadBtn.Importance = widget.HighImportance

	setPathBtn := widget.NewButton(LabelSetDownloadPath, ui.onSetDownloadPath)
	hotkeyBtn := widget.NewButton(LabelConfigureHotkey, ui.onConfigureHotkey)
	openFolderBtn := widget.NewButton(LabelOpenFolder, ui.onOpenFolder)

	ui.darkCheck = widget.NewCheck(LabelDarkTheme, nil)
	ui.darkCheck.SetChecked(ui.prefs.DarkTheme)
	ui.darkCheck.OnChanged = ui.onDarkThemeChanged

	ui.statusLabel = widget.NewLabel(StatusReady)
	ui.statusLabel.Wrapping = fyne.TextWrapWord

	ui.hotkeyDialog = NewHotkeyDialog(ui.window, ui.applyHotkey)

	linkRow := container.NewBorder(nil, nil, nil, ui.downloadBtn, ui.linkEntry)
	formatRow := container.NewHBox(widget.NewLabel(LabelFormat), ui.formatRadio)
	settingsRow := container.NewHBox(setPathBtn, hotkeyBtn, openFolderBtn, ui.darkCheck)

	content := container.NewVBox(
		linkRow,
		formatRow,
		settingsRow,
		widget.NewSeparator(),
		ui.statusLabel,
	)

	ui.window.SetContent(container.NewPadded(content))
	ui.window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
}

// setStatus replaces the status line; UI thread only
func (ui *RootUI) setStatus(message string) {
	ui.statusLabel.SetText(message)
}

// selectedFormat returns the format picked in the radio group
func (ui *RootUI) selectedFormat() model.Format {
	format, err := model.ParseFormat(ui.formatRadio.Selected)
	if err != nil {
		return model.FormatVideo
	}
	return format
}

// startDownload snapshots the inputs and hands them to the download service.
// It must run on the UI thread.
func (ui *RootUI) startDownload() {
	link := strings.TrimSpace(ui.linkEntry.Text)
	if link == "" {
		return
	}

	req := download.NewRequest(link, ui.selectedFormat(), ui.prefs.DownloadPath)
	done, err := ui.svc.Downloads.Start(req)
	if err != nil {
		if errors.Is(err, download.ErrBusy) {
			ui.log.Info().Str("url", link).Msg("Download in progress, trigger ignored")
		} else {
			ui.log.Warn().Err(err).Str("url", link).Msg("Download not started")
		}
		return
	}

	ui.log.Info().Str("request_id", req.ID).Str("url", req.URL).Str("format", string(req.Format)).Msg("Download started")
	ui.downloadBtn.Disable()

	go func() {
		outcome := <-done
		fyne.Do(func() {
			ui.onDownloadFinished(outcome)
		})
	}()
}

// onDownloadFinished reflects a finished request; UI thread only
func (ui *RootUI) onDownloadFinished(outcome model.Outcome) {
	ui.downloadBtn.Enable()
	if outcome.Succeeded() {
		ui.setStatus(StatusDownloadComplete)
		return
	}
	reason := "unknown error"
	if outcome.Err != nil {
		reason = outcome.Err.Error()
	}
	ui.setStatus(fmt.Sprintf(StatusDownloadFailedFormat, reason))
}

// onHotkey runs on the hotkey goroutine. The clipboard is read here and only
// the widget updates move to the UI thread.
func (ui *RootUI) onHotkey() {
	if ui.svc.Downloads.Busy() {
		ui.log.Info().Msg("Download in progress, hotkey ignored")
		return
	}

	text, err := ui.svc.Clipboard.ReadText()
	if err != nil {
		ui.log.Warn().Err(err).Msg("Failed to read clipboard")
		return
	}

	link := strings.TrimSpace(text)
	if !platform.IsYouTubeURL(link) {
		ui.log.Debug().Int("length", len(link)).Msg("Clipboard does not hold a YouTube link")
		return
	}

	fyne.Do(func() {
		ui.linkEntry.SetText(link)
		ui.startDownload()
	})
}

// registerHotkey binds the saved combo at startup
func (ui *RootUI) registerHotkey() {
	if ui.svc.Hotkeys == nil {
		return
	}
	combo, err := ui.svc.Hotkeys.Rebind("", ui.prefs.Hotkey, ui.onHotkey)
	if err != nil {
		ui.log.Error().Err(err).Str("combo", ui.prefs.Hotkey).Msg("Hotkey registration failed")
		ui.setStatus(fmt.Sprintf(StatusHotkeyFailedFormat, err))
		return
	}
	ui.log.Info().Str("combo", combo).Msg("Hotkey registered")
}

func (ui *RootUI) onConfigureHotkey() {
	ui.hotkeyDialog.Show(ui.prefs.Hotkey)
}

// applyHotkey moves the trigger action to combo and persists it. Backends
// may block while registering, so the rebind runs off the UI thread and the
// result is applied back on it.
func (ui *RootUI) applyHotkey(combo string) {
	if ui.svc.Hotkeys == nil {
		return
	}
	previous := ui.prefs.Hotkey

	go func() {
		canonical, err := ui.svc.Hotkeys.Rebind(previous, combo, ui.onHotkey)
		fyne.Do(func() {
			ui.onHotkeyApplied(canonical, err)
		})
	}()
}

// onHotkeyApplied records the result of a rebind; UI thread only
func (ui *RootUI) onHotkeyApplied(canonical string, err error) {
	if err != nil {
		ui.log.Error().Err(err).Msg("Hotkey registration failed")
		ui.setStatus(fmt.Sprintf(StatusHotkeyFailedFormat, err))
		return
	}

	ui.prefs.Hotkey = canonical
	ui.savePreferences()
	ui.setStatus(fmt.Sprintf(StatusHotkeyUpdatedFormat, canonical))
}

func (ui *RootUI) onSetDownloadPath() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			dialog.ShowError(err, ui.window)
			return
		}
		if uri == nil {
			return
		}
		ui.setDownloadPath(uri.Path())
	}, ui.window)
}

// setDownloadPath stores path as the download folder
func (ui *RootUI) setDownloadPath(path string) {
	previous := ui.prefs.DownloadPath
	ui.prefs.DownloadPath = path
	if !ui.savePreferences() {
		ui.prefs.DownloadPath = previous
		return
	}
	ui.setStatus(fmt.Sprintf(StatusPathSetFormat, path))
}

func (ui *RootUI) onOpenFolder() {
	if err := ui.svc.OpenFolder(ui.prefs.DownloadPath); err != nil {
		ui.log.Warn().Err(err).Str("path", ui.prefs.DownloadPath).Msg("Failed to open download folder")
		dialog.ShowError(err, ui.window)
	}
}

func (ui *RootUI) onDarkThemeChanged(dark bool) {
	ui.prefs.DarkTheme = dark
	ui.app.Settings().SetTheme(NewAppTheme(dark))
	ui.savePreferences()
}

// savePreferences writes the current preferences and reports failures in a
// dialog
func (ui *RootUI) savePreferences() bool {
	if ui.svc.Preferences == nil {
		return true
	}
	if err := ui.svc.Preferences.Save(ui.prefs); err != nil {
		ui.log.Error().Err(err).Str("path", ui.svc.Preferences.Path()).Msg("Failed to save preferences")
		dialog.ShowError(err, ui.window)
		return false
	}
	return true
}

// Preferences returns a copy of the window's current preferences
func (ui *RootUI) Preferences() config.Preferences {
	return ui.prefs
}
