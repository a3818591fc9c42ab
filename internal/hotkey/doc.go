// Package hotkey owns the process-wide keyboard shortcut registrations. A
// Manager maps human-readable combos such as "ctrl+shift+d" to actions and
// delegates the OS work to a Backend; the desktop backend lives in the
// desktop subpackage. Actions run on the backend's listener goroutine, so
// anything touching the UI must be marshaled by the caller.
package hotkey
