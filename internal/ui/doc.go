// Package ui contains the Fyne main window: link entry, format choice,
// download button, folder and hotkey settings, theme toggle and a single
// status line. Widgets are only touched on the Fyne UI thread; results from
// download workers and hotkey goroutines are handed over with fyne.Do.
package ui
