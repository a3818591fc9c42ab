package hotkey

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// DefaultCombo is the shortcut registered on first run.
const DefaultCombo = "ctrl+shift+d"

// ComboSeparator joins modifiers and key in a combo string.
const ComboSeparator = "+"

var (
	ErrEmptyCombo   = errors.New("hotkey: empty combo")
	ErrNoKey        = errors.New("hotkey: combo has no key")
	ErrMultipleKeys = errors.New("hotkey: combo has more than one key")
	ErrUnknownToken = errors.New("hotkey: unknown key or modifier")
)

// Modifier is a platform-independent modifier key.
type Modifier int

const (
	ModCtrl Modifier = iota + 1
	ModAlt
	ModShift
	ModSuper
)

func (m Modifier) String() string {
	switch m {
	case ModCtrl:
		return "ctrl"
	case ModAlt:
		return "alt"
	case ModShift:
		return "shift"
	case ModSuper:
		return "super"
	default:
		return "unknown"
	}
}

var modifierAliases = map[string]Modifier{
	"ctrl":    ModCtrl,
	"control": ModCtrl,
	"alt":     ModAlt,
	"option":  ModAlt,
	"shift":   ModShift,
	"super":   ModSuper,
	"meta":    ModSuper,
	"win":     ModSuper,
	"cmd":     ModSuper,
	"command": ModSuper,
}

var keyAliases = map[string]string{
	"return": "enter",
	"escape": "esc",
	"del":    "delete",
}

// namedKeys lists the non-alphanumeric keys a combo may end with.
var namedKeys = map[string]bool{
	"space": true, "enter": true, "esc": true, "tab": true, "delete": true,
	"left": true, "right": true, "up": true, "down": true,
	"f1": true, "f2": true, "f3": true, "f4": true, "f5": true, "f6": true,
	"f7": true, "f8": true, "f9": true, "f10": true, "f11": true, "f12": true,
}

// Combo is a parsed shortcut: a set of modifiers plus exactly one key.
type Combo struct {
	Mods []Modifier
	Key  string
}

// String returns the canonical form, modifiers in ctrl, alt, shift, super order.
func (c Combo) String() string {
	parts := make([]string, 0, len(c.Mods)+1)
	for _, m := range c.Mods {
		parts = append(parts, m.String())
	}
	parts = append(parts, c.Key)
	return strings.Join(parts, ComboSeparator)
}

// ParseCombo parses strings like "ctrl+shift+d" or "Ctrl+Shift+D".
func ParseCombo(s string) (Combo, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Combo{}, ErrEmptyCombo
	}

	seen := make(map[Modifier]bool)
	var combo Combo
	for _, raw := range strings.Split(s, ComboSeparator) {
		token := strings.ToLower(strings.TrimSpace(raw))
		if token == "" {
			return Combo{}, fmt.Errorf("%w: empty token in %q", ErrUnknownToken, s)
		}
		if mod, ok := modifierAliases[token]; ok {
			if !seen[mod] {
				seen[mod] = true
				combo.Mods = append(combo.Mods, mod)
			}
			continue
		}
		key, ok := normalizeKey(token)
		if !ok {
			return Combo{}, fmt.Errorf("%w: %q", ErrUnknownToken, raw)
		}
		if combo.Key != "" {
			return Combo{}, fmt.Errorf("%w: %q", ErrMultipleKeys, s)
		}
		combo.Key = key
	}

	if combo.Key == "" {
		return Combo{}, fmt.Errorf("%w: %q", ErrNoKey, s)
	}
	sort.Slice(combo.Mods, func(i, j int) bool { return combo.Mods[i] < combo.Mods[j] })
	return combo, nil
}

// Canonical parses s and returns its canonical string.
func Canonical(s string) (string, error) {
	c, err := ParseCombo(s)
	if err != nil {
		return "", err
	}
	return c.String(), nil
}

// Validate is a fyne-compatible validator for combo entries.
func Validate(s string) error {
	_, err := ParseCombo(s)
	return err
}

func normalizeKey(token string) (string, bool) {
	if alias, ok := keyAliases[token]; ok {
		token = alias
	}
	if len(token) == 1 {
		ch := token[0]
		if (ch >= 'a' && ch <= 'z') || (ch >= '0' && ch <= '9') {
			return token, true
		}
		return "", false
	}
	return token, namedKeys[token]
}
