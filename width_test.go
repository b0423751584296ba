package unisegp

import (
	"testing"
)

func TestStringWidth(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"hello", 5},
		{"Hello, 世界", 11},
		{"Ａ", 2},      // fullwidth A
		{"ｶ", 1},      // halfwidth katakana
		{"🇩🇪", 2},
		{"😀", 2},
		{"🏳️‍🌈", 2},
		{"🏳", 1}, // text presentation without VS16
		{"é", 1},
		{"a\nb", 2},
		{"⸺", 3}, // two-em dash
		{"⸻", 4}, // three-em dash
		{"​", 0}, // zero-width space
	}
	for _, tt := range tests {
		if got := StringWidth(tt.input); got != tt.want {
			t.Errorf("StringWidth(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

// TestVariationSelectors checks that VS15 and VS16 override the default
// presentation of the preceding pictograph.
func TestVariationSelectors(t *testing.T) {
	if got := StringWidth("⌚"); got != 2 {
		t.Errorf("emoji presentation by default: got %d, want 2", got)
	}
	if got := StringWidth("⌚︎"); got != 1 {
		t.Errorf("VS15 forces text presentation: got %d, want 1", got)
	}
	if got := StringWidth("☂"); got != 1 {
		t.Errorf("text presentation by default: got %d, want 1", got)
	}
	if got := StringWidth("☂️"); got != 2 {
		t.Errorf("VS16 forces emoji presentation: got %d, want 2", got)
	}
}

func TestEastAsianAmbiguousWidth(t *testing.T) {
	defer func() { EastAsianAmbiguousWidth = 1 }()

	if got := StringWidth("§"); got != 1 {
		t.Errorf("ambiguous width default: got %d, want 1", got)
	}
	EastAsianAmbiguousWidth = 2
	if got := StringWidth("§"); got != 2 {
		t.Errorf("ambiguous width 2: got %d, want 2", got)
	}
}
