package ui

// Status line messages
const (
	StatusReady                = "Ready"
	StatusPathSetFormat        = "Default download path set: %s"
	StatusDownloadComplete     = "Download complete!"
	StatusDownloadFailedFormat = "Download failed: %s"
	StatusHotkeyUpdatedFormat  = "Hotkey updated: %s"
	StatusHotkeyFailedFormat   = "Hotkey registration failed: %s"
)

// Widget texts
const (
	AppTitle             = "YT Assistant"
	LinkPlaceholder      = "Paste a YouTube link (https://youtube.com/watch?v=...)"
	LabelDownload        = "Download"
	LabelSetDownloadPath = "Set Download Path"
	LabelConfigureHotkey = "Configure Hotkey"
	LabelOpenFolder      = "Open Folder"
	LabelDarkTheme       = "Dark Theme"
	LabelFormat          = "Format:"
)

// Hotkey dialog texts
const (
	HotkeyDialogTitle      = "Configure Hotkey"
	HotkeyCurrentFormat    = "Current hotkey: %s"
	HotkeyEntryPlaceholder = "e.g. ctrl+shift+d"
	HotkeyHint             = "Modifiers: ctrl, alt, shift, super. One key: a-z, 0-9, f1-f12, space, enter, esc, tab, delete, arrows."
	LabelSave              = "Save"
	LabelCancel            = "Cancel"
)

// Layout sizing
const (
	WindowWidth  float32 = 560
	WindowHeight float32 = 240

	HotkeyDialogWidth  float32 = 420
	HotkeyDialogHeight float32 = 220
)
