package desktop

import (
	xhotkey "golang.design/x/hotkey"

	"github.com/ytget/yt-assistant/internal/hotkey"
)

var nativeModifiers = map[hotkey.Modifier]xhotkey.Modifier{
	hotkey.ModCtrl:  xhotkey.ModCtrl,
	hotkey.ModShift: xhotkey.ModShift,
	hotkey.ModAlt:   xhotkey.ModOption,
	hotkey.ModSuper: xhotkey.ModCmd,
}

var keyTab = xhotkey.KeyTab
