package ui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/yt-assistant/internal/hotkey"
)

// HotkeyDialog asks the user for a new global shortcut
type HotkeyDialog struct {
	window   fyne.Window
	dialog   *dialog.ConfirmDialog
	onSubmit func(combo string)

	currentLabel *widget.Label
	comboEntry   *widget.Entry
}

// NewHotkeyDialog creates the dialog. onSubmit receives the entered combo
// after it passed validation.
func NewHotkeyDialog(window fyne.Window, onSubmit func(combo string)) *HotkeyDialog {
	hd := &HotkeyDialog{
		window:   window,
		onSubmit: onSubmit,
	}

	hd.createUI()
	return hd
}

// Show displays the dialog for the currently bound combo
func (hd *HotkeyDialog) Show(current string) {
	hd.currentLabel.SetText(fmt.Sprintf(HotkeyCurrentFormat, current))
	hd.comboEntry.SetText(current)
	hd.dialog.Show()
}

func (hd *HotkeyDialog) createUI() {
	hd.currentLabel = widget.NewLabel("")

	hd.comboEntry = widget.NewEntry()
	hd.comboEntry.SetPlaceHolder(HotkeyEntryPlaceholder)
	hd.comboEntry.Validator = hotkey.Validate

	hint := widget.NewLabel(HotkeyHint)
	hint.Wrapping = fyne.TextWrapWord

	form := container.NewVBox(
		hd.currentLabel,
		hd.comboEntry,
		hint,
	)

	hd.dialog = dialog.NewCustomConfirm(
		HotkeyDialogTitle,
		LabelSave,
		LabelCancel,
		form,
		hd.onConfirm,
		hd.window,
	)

	hd.dialog.Resize(fyne.NewSize(HotkeyDialogWidth, HotkeyDialogHeight))
}

func (hd *HotkeyDialog) onConfirm(confirmed bool) {
	if !confirmed {
		return
	}
	combo := strings.TrimSpace(hd.comboEntry.Text)
	if err := hotkey.Validate(combo); err != nil {
		dialog.ShowError(err, hd.window)
		return
	}
	hd.onSubmit(combo)
}
