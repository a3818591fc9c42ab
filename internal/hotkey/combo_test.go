package hotkey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCombo(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"ctrl+shift+d", "ctrl+shift+d"},
		{"Ctrl+Shift+D", "ctrl+shift+d"},
		{"shift+ctrl+d", "ctrl+shift+d"},
		{" ctrl + alt + F5 ", "ctrl+alt+f5"},
		{"control+option+x", "ctrl+alt+x"},
		{"cmd+shift+1", "shift+super+1"},
		{"ctrl+ctrl+k", "ctrl+k"},
		{"alt+Return", "alt+enter"},
		{"Escape", "esc"},
	}

	for _, test := range tests {
		combo, err := ParseCombo(test.input)
		require.NoError(t, err, "input %q", test.input)
		assert.Equal(t, test.expected, combo.String(), "input %q", test.input)
	}
}

func TestParseCombo_Errors(t *testing.T) {
	tests := []struct {
		input string
		err   error
	}{
		{"", ErrEmptyCombo},
		{"   ", ErrEmptyCombo},
		{"ctrl+shift", ErrNoKey},
		{"ctrl+a+b", ErrMultipleKeys},
		{"ctrl+hyper+a", ErrUnknownToken},
		{"ctrl++a", ErrUnknownToken},
		{"ctrl+é", ErrUnknownToken},
	}

	for _, test := range tests {
		_, err := ParseCombo(test.input)
		assert.ErrorIs(t, err, test.err, "input %q", test.input)
	}
}

func TestParseCombo_Fields(t *testing.T) {
	combo, err := ParseCombo(DefaultCombo)
	require.NoError(t, err)

	assert.Equal(t, []Modifier{ModCtrl, ModShift}, combo.Mods)
	assert.Equal(t, "d", combo.Key)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate("ctrl+shift+d"))
	assert.Error(t, Validate("shift"))
}
