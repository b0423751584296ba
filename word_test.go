package unisegp

import (
	"testing"
)

// wordSegments splits str into its words, including the whitespace and
// punctuation tokens between them.
func wordSegments(str string) (segments []string) {
	state := -1
	for len(str) > 0 {
		var word string
		word, str, state = FirstWordInString(str, state)
		segments = append(segments, word)
	}
	return
}

func TestFirstWordInString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"empty", "", nil},
		{"simple", "Hello, world!", []string{"Hello", ",", " ", "world", "!"}},
		{"apostrophe", "can't", []string{"can't"}},
		{"decimal", "3.14", []string{"3.14"}},
		{"thousands", "1,000", []string{"1,000"}},
		{"colon", "o'clock", []string{"o'clock"}},
		{"underscore", "foo_bar", []string{"foo_bar"}},
		{"trailing period", "end.", []string{"end", "."}},
		{"crlf", "a\r\nb", []string{"a", "\r\n", "b"}},
		{"hebrew gershayim", "אב\"ג", []string{"אב\"ג"}},
		{"hebrew geresh", "א'", []string{"א'"}},
		{"katakana", "テスト です", []string{"テスト", " ", "で", "す"}},
		{"flags", "🇩🇪🇫🇷", []string{"🇩🇪", "🇫🇷"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segments := wordSegments(tt.input)
			if len(segments) != len(tt.expected) {
				t.Fatalf("got %d words, want %d: %q vs %q", len(segments), len(tt.expected), segments, tt.expected)
			}
			for i, seg := range segments {
				if seg != tt.expected[i] {
					t.Errorf("word %d: got %q, want %q", i, seg, tt.expected[i])
				}
			}
		})
	}
}

// TestFirstWordBytes checks that the byte variant agrees with the string
// variant.
func TestFirstWordBytes(t *testing.T) {
	input := "It's 25.5°C, d'accord?"
	b := []byte(input)
	str := input
	bState, sState := -1, -1
	for len(b) > 0 {
		var bw []byte
		var sw string
		bw, b, bState = FirstWord(b, bState)
		sw, str, sState = FirstWordInString(str, sState)
		if string(bw) != sw {
			t.Errorf("word mismatch: %q vs %q", bw, sw)
		}
	}
	if len(str) != 0 {
		t.Errorf("string variant has %q left over", str)
	}
}

func TestIsWordBoundaryInString(t *testing.T) {
	tests := []struct {
		input string
		pos   int
		want  bool
	}{
		{"ab cd", 0, true},
		{"ab cd", 2, true},
		{"ab cd", 3, true},
		{"ab cd", 1, false},
		{"can't", 3, false},
		{"can't", 5, true},
	}
	for _, tt := range tests {
		if got := IsWordBoundaryInString(tt.input, tt.pos); got != tt.want {
			t.Errorf("IsWordBoundaryInString(%q, %d) = %v, want %v", tt.input, tt.pos, got, tt.want)
		}
	}
}
