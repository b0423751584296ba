package unisegp

import (
	"testing"
)

// TestStepString walks a small string and checks the complete boundary
// information for every grapheme cluster.
func TestStepString(t *testing.T) {
	type boundary struct {
		cluster  string
		word     bool
		sentence bool
		line     int
		width    int
	}
	want := []boundary{
		{"a", false, false, LineDontBreak, 1},
		{"b", true, false, LineDontBreak, 1},
		{" ", true, false, LineCanBreak, 1},
		{"c", false, false, LineDontBreak, 1},
		{"d", true, true, LineMustBreak, 1},
	}

	str := "ab cd"
	state := -1
	var got []boundary
	for len(str) > 0 {
		var cluster string
		var boundaries int
		cluster, str, boundaries, state = StepString(str, state)
		got = append(got, boundary{
			cluster:  cluster,
			word:     boundaries&MaskWord != 0,
			sentence: boundaries&MaskSentence != 0,
			line:     boundaries & MaskLine,
			width:    boundaries >> ShiftWidth,
		})
	}

	if len(got) != len(want) {
		t.Fatalf("got %d clusters, want %d: %v", len(got), len(want), got)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("cluster %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

// TestStepWidths checks the monospace widths reported for multi-rune
// clusters.
func TestStepWidths(t *testing.T) {
	tests := []struct {
		input string
		want  []int
	}{
		{"世界", []int{2, 2}},
		{"🇩🇪!", []int{2, 1}},
		{"👨‍👩‍👧‍👦", []int{2}},
		{"é", []int{1}},
		{"a\nb", []int{1, 0, 1}},
	}
	for _, tt := range tests {
		str := tt.input
		state := -1
		var widths []int
		for len(str) > 0 {
			var boundaries int
			_, str, boundaries, state = StepString(str, state)
			widths = append(widths, boundaries>>ShiftWidth)
		}
		if len(widths) != len(tt.want) {
			t.Errorf("%q: got %d clusters, want %d", tt.input, len(widths), len(tt.want))
			continue
		}
		for i := range widths {
			if widths[i] != tt.want[i] {
				t.Errorf("%q cluster %d: width %d, want %d", tt.input, i, widths[i], tt.want[i])
			}
		}
	}
}

// TestStepBytes checks that the byte variant agrees with the string variant.
func TestStepBytes(t *testing.T) {
	input := "One two. Three 世界!\nFour."
	b := []byte(input)
	str := input
	bState, sState := -1, -1
	for len(b) > 0 {
		var bc []byte
		var sc string
		var bb, sb int
		bc, b, bb, bState = Step(b, bState)
		sc, str, sb, sState = StepString(str, sState)
		if string(bc) != sc {
			t.Errorf("cluster mismatch: %q vs %q", bc, sc)
		}
		if bb != sb {
			t.Errorf("boundaries mismatch for %q: %b vs %b", bc, bb, sb)
		}
	}
	if len(str) != 0 {
		t.Errorf("string variant has %q left over", str)
	}
}

// TestStepEmpty checks the zero value returns for empty input.
func TestStepEmpty(t *testing.T) {
	cluster, rest, boundaries, state := StepString("", -1)
	if cluster != "" || rest != "" || boundaries != 0 || state != 0 {
		t.Errorf("got (%q, %q, %d, %d), want zero values", cluster, rest, boundaries, state)
	}
}
