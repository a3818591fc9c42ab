package platform

import (
	"errors"

	"github.com/atotto/clipboard"
)

// ErrClipboardUnsupported is returned when no clipboard utility is available,
// e.g. xclip/xsel missing on Linux.
var ErrClipboardUnsupported = errors.New("clipboard: no clipboard utility available")

// ClipboardReader reads the current clipboard text.
type ClipboardReader interface {
	ReadText() (string, error)
}

// SystemClipboard reads the OS clipboard. It is safe to call from any
// goroutine, which the hotkey listener relies on.
type SystemClipboard struct{}

// NewSystemClipboard returns a reader for the OS clipboard.
func NewSystemClipboard() SystemClipboard {
	return SystemClipboard{}
}

// ReadText implements ClipboardReader.
func (SystemClipboard) ReadText() (string, error) {
	if clipboard.Unsupported {
		return "", ErrClipboardUnsupported
	}
	return clipboard.ReadAll()
}
