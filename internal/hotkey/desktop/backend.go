//go:build darwin || linux || windows

// Package desktop registers system-wide shortcuts through
// golang.design/x/hotkey. It is kept apart from package hotkey because the
// native library connects to the display server when it is loaded, and only
// the application binary should pay for that.
package desktop

import (
	"fmt"
	"sync"

	xhotkey "golang.design/x/hotkey"

	"github.com/ytget/yt-assistant/internal/hotkey"
)

// Backend implements hotkey.Backend for the current OS.
type Backend struct{}

// NewBackend returns the backend for the current OS.
func NewBackend() *Backend {
	return &Backend{}
}

var nativeKeys = map[string]xhotkey.Key{
	"a": xhotkey.KeyA, "b": xhotkey.KeyB, "c": xhotkey.KeyC, "d": xhotkey.KeyD,
	"e": xhotkey.KeyE, "f": xhotkey.KeyF, "g": xhotkey.KeyG, "h": xhotkey.KeyH,
	"i": xhotkey.KeyI, "j": xhotkey.KeyJ, "k": xhotkey.KeyK, "l": xhotkey.KeyL,
	"m": xhotkey.KeyM, "n": xhotkey.KeyN, "o": xhotkey.KeyO, "p": xhotkey.KeyP,
	"q": xhotkey.KeyQ, "r": xhotkey.KeyR, "s": xhotkey.KeyS, "t": xhotkey.KeyT,
	"u": xhotkey.KeyU, "v": xhotkey.KeyV, "w": xhotkey.KeyW, "x": xhotkey.KeyX,
	"y": xhotkey.KeyY, "z": xhotkey.KeyZ,
	"0": xhotkey.Key0, "1": xhotkey.Key1, "2": xhotkey.Key2, "3": xhotkey.Key3,
	"4": xhotkey.Key4, "5": xhotkey.Key5, "6": xhotkey.Key6, "7": xhotkey.Key7,
	"8": xhotkey.Key8, "9": xhotkey.Key9,
	"f1": xhotkey.KeyF1, "f2": xhotkey.KeyF2, "f3": xhotkey.KeyF3, "f4": xhotkey.KeyF4,
	"f5": xhotkey.KeyF5, "f6": xhotkey.KeyF6, "f7": xhotkey.KeyF7, "f8": xhotkey.KeyF8,
	"f9": xhotkey.KeyF9, "f10": xhotkey.KeyF10, "f11": xhotkey.KeyF11, "f12": xhotkey.KeyF12,
	"space":  xhotkey.KeySpace,
	"enter":  xhotkey.KeyReturn,
	"esc":    xhotkey.KeyEscape,
	"tab":    keyTab,
	"delete": xhotkey.KeyDelete,
	"left":   xhotkey.KeyLeft,
	"right":  xhotkey.KeyRight,
	"up":     xhotkey.KeyUp,
	"down":   xhotkey.KeyDown,
}

// Register implements hotkey.Backend.
func (b *Backend) Register(c hotkey.Combo, fire func()) (hotkey.Binding, error) {
	key, ok := nativeKeys[c.Key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", hotkey.ErrUnknownToken, c.Key)
	}
	mods := make([]xhotkey.Modifier, 0, len(c.Mods))
	for _, m := range c.Mods {
		native, ok := nativeModifiers[m]
		if !ok {
			return nil, fmt.Errorf("%w: modifier %s", hotkey.ErrUnknownToken, m)
		}
		mods = append(mods, native)
	}

	hk := xhotkey.New(mods, key)
	if err := hk.Register(); err != nil {
		return nil, err
	}

	bound := &binding{hk: hk, done: make(chan struct{})}
	go bound.listen(fire)
	return bound, nil
}

type binding struct {
	hk   *xhotkey.Hotkey
	done chan struct{}
	once sync.Once
}

func (d *binding) listen(fire func()) {
	keydown := d.hk.Keydown()
	for {
		select {
		case <-d.done:
			return
		case _, ok := <-keydown:
			if !ok {
				return
			}
			fire()
		}
	}
}

// Unregister stops the listener and releases the OS registration. On X11 the
// release completes only after the combo's next key release.
func (d *binding) Unregister() error {
	d.once.Do(func() { close(d.done) })
	return d.hk.Unregister()
}
