package unisegp

import (
	"testing"
)

// sentenceSegments splits str into its sentences.
func sentenceSegments(str string) (segments []string) {
	state := -1
	for len(str) > 0 {
		var sentence string
		sentence, str, state = FirstSentenceInString(str, state)
		segments = append(segments, sentence)
	}
	return
}

func TestFirstSentenceInString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"empty", "", nil},
		{"single", "Hello.", []string{"Hello."}},
		{"two", "One. Two.", []string{"One. ", "Two."}},
		{"exclamation", "Hello! How are you?", []string{"Hello! ", "How are you?"}},
		{"abbreviation", "Mr. Smith went.", []string{"Mr. ", "Smith went."}},
		{"lowercase continues", "This works, etc. the sequence stays.", []string{"This works, etc. the sequence stays."}},
		{"quoted question", "He said, “Are you going?” John shook his head.",
			[]string{"He said, “Are you going?” ", "John shook his head."}},
		{"quoted statement", "He said “No.” and left.", []string{"He said “No.” and left."}},
		{"decimal", "It costs 3.4 dollars.", []string{"It costs 3.4 dollars."}},
		{"initials", "U.S.A. is short.", []string{"U.S.A. is short."}},
		{"newline", "One.\nTwo.", []string{"One.\n", "Two."}},
		{"crlf", "One.\r\nTwo.", []string{"One.\r\n", "Two."}},
		{"no terminator", "No terminator here", []string{"No terminator here"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segments := sentenceSegments(tt.input)
			if len(segments) != len(tt.expected) {
				t.Fatalf("got %d sentences, want %d: %q vs %q", len(segments), len(tt.expected), segments, tt.expected)
			}
			for i, seg := range segments {
				if seg != tt.expected[i] {
					t.Errorf("sentence %d: got %q, want %q", i, seg, tt.expected[i])
				}
			}
		})
	}
}

// TestFirstSentenceBytes checks that the byte variant agrees with the string
// variant.
func TestFirstSentenceBytes(t *testing.T) {
	input := "First one. Second one! Third?"
	b := []byte(input)
	str := input
	bState, sState := -1, -1
	for len(b) > 0 {
		var bs []byte
		var ss string
		bs, b, bState = FirstSentence(b, bState)
		ss, str, sState = FirstSentenceInString(str, sState)
		if string(bs) != ss {
			t.Errorf("sentence mismatch: %q vs %q", bs, ss)
		}
	}
	if len(str) != 0 {
		t.Errorf("string variant has %q left over", str)
	}
}

func TestIsSentenceBoundaryInString(t *testing.T) {
	tests := []struct {
		input string
		pos   int
		want  bool
	}{
		{"One. Two.", 0, true},
		{"One. Two.", 5, true},
		{"One. Two.", 4, false},
		{"One. Two.", 9, true},
	}
	for _, tt := range tests {
		if got := IsSentenceBoundaryInString(tt.input, tt.pos); got != tt.want {
			t.Errorf("IsSentenceBoundaryInString(%q, %d) = %v, want %v", tt.input, tt.pos, got, tt.want)
		}
	}
}
