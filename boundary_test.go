package unisegp

import (
	"strings"
	"testing"
)

var boundaryInputs = []struct {
	name  string
	input string
}{
	{"ascii", "Hello, world! Second sentence."},
	{"emoji crlf", "a🇩🇪🏳️‍🌈b\r\nc"},
	{"indic conjuncts", "क्षत्रिय गया। 👍🏼 done."},
	{"mixed", "Mr. Smith went.\nNew line 3.14 क्षि"},
}

// TestBoundaryContainment checks that every word, sentence, and line break
// opportunity falls on a grapheme cluster boundary.
func TestBoundaryContainment(t *testing.T) {
	for _, tt := range boundaryInputs {
		t.Run(tt.name, func(t *testing.T) {
			graphemes := map[int]bool{0: true}
			pos := 0
			for _, cluster := range graphemeSegments(tt.input) {
				pos += len(cluster)
				graphemes[pos] = true
			}
			check := func(kind string, segments []string) {
				pos := 0
				for _, segment := range segments {
					pos += len(segment)
					if !graphemes[pos] {
						t.Errorf("%s boundary at byte %d splits a grapheme cluster", kind, pos)
					}
				}
			}
			check("word", wordSegments(tt.input))
			check("sentence", sentenceSegments(tt.input))
			check("line", lineSegments(tt.input))
		})
	}
}

// TestSegmentReconstruction checks that the segments of each boundary type
// concatenate back to the input, with nothing lost or duplicated.
func TestSegmentReconstruction(t *testing.T) {
	for _, tt := range boundaryInputs {
		t.Run(tt.name, func(t *testing.T) {
			for kind, segments := range map[string][]string{
				"grapheme": graphemeSegments(tt.input),
				"word":     wordSegments(tt.input),
				"sentence": sentenceSegments(tt.input),
				"line":     lineSegments(tt.input),
			} {
				if got := strings.Join(segments, ""); got != tt.input {
					t.Errorf("%s segments reconstruct %q, want %q", kind, got, tt.input)
				}
			}
		})
	}
}
