package unisegp

import (
	"testing"
)

// lineSegments splits str into its line segments under the default tailoring.
func lineSegments(str string) (segments []string) {
	state := -1
	for len(str) > 0 {
		var segment string
		segment, str, _, state = FirstLineSegmentInString(str, state)
		segments = append(segments, segment)
	}
	return
}

func TestFirstLineSegmentInString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"simple", "hello world", []string{"hello ", "world"}},
		{"hyphen", "well-known", []string{"well-", "known"}},
		{"hebrew hyphen", "א-b", []string{"א-b"}},
		{"hebrew hyphen hebrew", "א-ב", []string{"א-", "ב"}},
		{"hebrew soft hyphen", "א­b", []string{"א­b"}},
		{"hebrew ideographic space", "א　b", []string{"א　", "b"}},
		{"leading hyphen", "-known", []string{"-known"}},
		{"numbers", "100.50", []string{"100.50"}},
		{"currency", "$100.50!", []string{"$100.50!"}},
		{"percent", "100%", []string{"100%"}},
		{"crlf", "a\r\nb", []string{"a\r\n", "b"}},
		{"newline", "First line.\nSecond line.", []string{"First ", "line.\n", "Second ", "line."}},
		{"punctuation", "Hello, world!", []string{"Hello, ", "world!"}},
		{"quotes", "say \"hi\" now", []string{"say ", "\"hi\" ", "now"}},
		{"ideographs", "日本語", []string{"日", "本", "語"}},
		{"kana small", "カード", []string{"カー", "ド"}},
		{"nbsp", "a b", []string{"a b"}},
		{"zwsp", "a​b", []string{"a​", "b"}},
		{"flags", "🇩🇪🇫🇷", []string{"🇩🇪", "🇫🇷"}},
		{"korean", "각", []string{"각"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segments := lineSegments(tt.input)
			if len(segments) != len(tt.expected) {
				t.Fatalf("got %d segments, want %d: %q vs %q", len(segments), len(tt.expected), segments, tt.expected)
			}
			for i, seg := range segments {
				if seg != tt.expected[i] {
					t.Errorf("segment %d: got %q, want %q", i, seg, tt.expected[i])
				}
			}
		})
	}
}

func TestFirstLineSegmentBreakType(t *testing.T) {
	// LB3: the last segment always reports a mandatory break.
	segment, rest, breakType, _ := FirstLineSegmentInString("word", -1)
	if segment != "word" || rest != "" || breakType != LineMustBreak {
		t.Errorf("got (%q, %q, %d), want (%q, %q, %d)", segment, rest, breakType, "word", "", LineMustBreak)
	}

	segment, rest, breakType, _ = FirstLineSegmentInString("two words", -1)
	if segment != "two " || rest != "words" || breakType != LineCanBreak {
		t.Errorf("got (%q, %q, %d), want (%q, %q, %d)", segment, rest, breakType, "two ", "words", LineCanBreak)
	}

	segment, _, breakType, _ = FirstLineSegmentInString("line\nnext", -1)
	if segment != "line\n" || breakType != LineMustBreak {
		t.Errorf("got (%q, %d), want (%q, %d)", segment, breakType, "line\n", LineMustBreak)
	}
}

// TestFirstLineSegmentBytes checks that the byte variant agrees with the
// string variant.
func TestFirstLineSegmentBytes(t *testing.T) {
	input := "The quick (\"brown\") fox can't jump 32.3 feet, right?\nNo way!"
	b := []byte(input)
	str := input
	bState, sState := -1, -1
	for len(b) > 0 {
		var bs []byte
		var ss string
		var bt, st int
		bs, b, bt, bState = FirstLineSegment(b, bState)
		ss, str, st, sState = FirstLineSegmentInString(str, sState)
		if string(bs) != ss {
			t.Errorf("segment mismatch: %q vs %q", bs, ss)
		}
		if bt != st {
			t.Errorf("break type mismatch for %q: %d vs %d", bs, bt, st)
		}
	}
	if len(str) != 0 {
		t.Errorf("string variant has %q left over", str)
	}
}

func TestFirstLineSegmentTailored(t *testing.T) {
	segments := func(str string, tb Tailoring) (out []string) {
		state := -1
		for len(str) > 0 {
			var segment string
			segment, str, _, state = FirstLineSegmentInStringTailored(str, tb, state)
			out = append(out, segment)
		}
		return
	}

	// CJ resolves to NS by default, so the prolonged sound mark glues to the
	// preceding katakana. The loose tailoring resolves CJ to ID instead.
	got := segments("カード", TailoringDefault)
	want := []string{"カー", "ド"}
	if len(got) != len(want) || got[0] != want[0] {
		t.Errorf("default tailoring: got %q, want %q", got, want)
	}

	got = segments("カード", TailoringLooseKana)
	want = []string{"カ", "ー", "ド"}
	if len(got) != len(want) {
		t.Errorf("loose-kana tailoring: got %q, want %q", got, want)
	}

	// AI resolves to AL by default but to ID for East Asian contexts.
	if got := resolveLineProperty('§', TailoringEastAsian); got != prID {
		t.Errorf("east-asian tailoring: resolved § to %d, want %d", got, prID)
	}
}

func TestHasTrailingLineBreak(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"word\n", true},
		{"word\r\n", true},
		{"word ", true},
		{"word", false},
		{"word ", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := HasTrailingLineBreak([]byte(tt.input)); got != tt.want {
			t.Errorf("HasTrailingLineBreak(%q) = %v, want %v", tt.input, got, tt.want)
		}
		if got := HasTrailingLineBreakInString(tt.input); got != tt.want {
			t.Errorf("HasTrailingLineBreakInString(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
