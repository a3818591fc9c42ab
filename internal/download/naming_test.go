package download

import (
	"strings"
	"testing"
)

func TestSanitizeTitle(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "Simple Title", "Simple Title"},
		{"forward slash", "AC/DC - Thunderstruck", "AC-DC - Thunderstruck"},
		{"backslash", `path\to\video`, "path-to-video"},
		{"mixed", `a/b\c/d`, "a-b-c-d"},
		{"other characters kept", `What? "Yes": <no>*|`, `What? "Yes": <no>*|`},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SanitizeTitle(tt.input)
			if got != tt.expected {
				t.Errorf("SanitizeTitle(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
			if strings.ContainsAny(got, `/\`) {
				t.Errorf("SanitizeTitle(%q) still contains a separator: %q", tt.input, got)
			}
		})
	}
}

func TestBaseName(t *testing.T) {
	tests := []struct {
		stream   Stream
		expected string
	}{
		{Stream{Title: "Title", VideoID: "id"}, "Title"},
		{Stream{Title: "  ", VideoID: "id"}, "id"},
		{Stream{}, DefaultBaseName},
	}

	for _, tt := range tests {
		if got := baseName(&tt.stream); got != tt.expected {
			t.Errorf("baseName(%+v) = %q, expected %q", tt.stream, got, tt.expected)
		}
	}
}
