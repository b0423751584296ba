package unisegp

import (
	"testing"
)

// graphemeSegments splits str into its grapheme clusters.
func graphemeSegments(str string) (segments []string) {
	state := -1
	for len(str) > 0 {
		var cluster string
		cluster, str, _, state = FirstGraphemeClusterInString(str, state)
		segments = append(segments, cluster)
	}
	return
}

func TestFirstGraphemeClusterInString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"empty", "", nil},
		{"ascii", "abc", []string{"a", "b", "c"}},
		{"crlf", "a\r\nb", []string{"a", "\r\n", "b"}},
		{"combining", "é!", []string{"é", "!"}},
		{"flags", "🇩🇪🇫🇷", []string{"🇩🇪", "🇫🇷"}},
		{"three flags", "🇩🇪🇫🇷🇯🇵", []string{"🇩🇪", "🇫🇷", "🇯🇵"}},
		{"family", "👨‍👩‍👧‍👦", []string{"👨‍👩‍👧‍👦"}},
		{"rainbow flag", "🏳️‍🌈!", []string{"🏳️‍🌈", "!"}},
		{"skin tone", "👋🏽", []string{"👋🏽"}},
		{"hangul composed", "한국", []string{"한", "국"}},
		{"hangul jamo", "한", []string{"한"}},
		{"devanagari conjunct", "क्षि", []string{"क्षि"}},
		{"devanagari word", "क्षत्रिय", []string{"क्ष", "त्रि", "य"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segments := graphemeSegments(tt.input)
			if len(segments) != len(tt.expected) {
				t.Fatalf("got %d clusters, want %d: %q vs %q", len(segments), len(tt.expected), segments, tt.expected)
			}
			for i, seg := range segments {
				if seg != tt.expected[i] {
					t.Errorf("cluster %d: got %q, want %q", i, seg, tt.expected[i])
				}
			}
		})
	}
}

// TestFirstGraphemeClusterBytes checks that the byte variant agrees with the
// string variant.
func TestFirstGraphemeClusterBytes(t *testing.T) {
	input := "a\r\n🇩🇪🏳️‍🌈é"
	b := []byte(input)
	str := input
	bState, sState := -1, -1
	for len(b) > 0 {
		var bc []byte
		var sc string
		var bw, sw int
		bc, b, bw, bState = FirstGraphemeCluster(b, bState)
		sc, str, sw, sState = FirstGraphemeClusterInString(str, sState)
		if string(bc) != sc {
			t.Errorf("cluster mismatch: %q vs %q", bc, sc)
		}
		if bw != sw {
			t.Errorf("width mismatch for %q: %d vs %d", bc, bw, sw)
		}
	}
	if len(str) != 0 {
		t.Errorf("string variant has %q left over", str)
	}
}

func TestGraphemeClusterCount(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"hello", 5},
		{"🇩🇪🏳️‍🌈", 2},
		{"👨‍👩‍👧‍👦", 1},
		{"é", 1},
		{"a\r\nb", 3},
	}
	for _, tt := range tests {
		if got := GraphemeClusterCount(tt.input); got != tt.want {
			t.Errorf("GraphemeClusterCount(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestGraphemesIterator(t *testing.T) {
	g := NewGraphemes("a🇩🇪b")

	if from, to := g.Positions(); from != 0 || to != 0 {
		t.Errorf("positions before Next: got (%d, %d), want (0, 0)", from, to)
	}

	want := []struct {
		str      string
		from, to int
	}{
		{"a", 0, 1},
		{"🇩🇪", 1, 9},
		{"b", 9, 10},
	}
	for i := 0; g.Next(); i++ {
		if i >= len(want) {
			t.Fatalf("too many clusters, got extra %q", g.Str())
		}
		if g.Str() != want[i].str {
			t.Errorf("cluster %d: got %q, want %q", i, g.Str(), want[i].str)
		}
		if string(g.Bytes()) != want[i].str {
			t.Errorf("cluster %d: Bytes() = %q, want %q", i, g.Bytes(), want[i].str)
		}
		if string(g.Runes()) != want[i].str {
			t.Errorf("cluster %d: Runes() = %q, want %q", i, string(g.Runes()), want[i].str)
		}
		from, to := g.Positions()
		if from != want[i].from || to != want[i].to {
			t.Errorf("cluster %d: positions (%d, %d), want (%d, %d)", i, from, to, want[i].from, want[i].to)
		}
	}

	if from, to := g.Positions(); from != 10 || to != 10 {
		t.Errorf("positions past the end: got (%d, %d), want (10, 10)", from, to)
	}

	g.Reset()
	if !g.Next() || g.Str() != "a" {
		t.Errorf("after Reset: got %q, want %q", g.Str(), "a")
	}
}

func TestGraphemesWidth(t *testing.T) {
	g := NewGraphemes("世a🇩🇪")
	want := []int{2, 1, 2}
	for i := 0; g.Next(); i++ {
		if g.Width() != want[i] {
			t.Errorf("cluster %d (%q): width %d, want %d", i, g.Str(), g.Width(), want[i])
		}
	}
}

func TestIsGraphemeClusterBoundaryInString(t *testing.T) {
	tests := []struct {
		input string
		pos   int
		want  bool
	}{
		{"ab", 0, true},
		{"ab", 1, true},
		{"ab", 2, true},
		{"🇩🇪🇫🇷", 4, false}, // between the two RIs of one flag
		{"🇩🇪🇫🇷", 8, true},
		{"é", 1, false},
		{"a\r\nb", 2, false}, // inside CR LF
	}
	for _, tt := range tests {
		if got := IsGraphemeClusterBoundaryInString(tt.input, tt.pos); got != tt.want {
			t.Errorf("IsGraphemeClusterBoundaryInString(%q, %d) = %v, want %v", tt.input, tt.pos, got, tt.want)
		}
	}
}
