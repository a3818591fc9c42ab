package desktop

import (
	xhotkey "golang.design/x/hotkey"

	"github.com/ytget/yt-assistant/internal/hotkey"
)

// On X11 Mod1 is Alt and Mod4 is the Super key.
var nativeModifiers = map[hotkey.Modifier]xhotkey.Modifier{
	hotkey.ModCtrl:  xhotkey.ModCtrl,
	hotkey.ModShift: xhotkey.ModShift,
	hotkey.ModAlt:   xhotkey.Mod1,
	hotkey.ModSuper: xhotkey.Mod4,
}

// XK_Tab. The library's KeyTab carries the Escape keysym on Linux.
var keyTab = xhotkey.Key(0xff09)
