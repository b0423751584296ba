package unisegp

import (
	"bufio"
	"strings"
	"testing"
)

func scanAll(t *testing.T, input string, split bufio.SplitFunc) (tokens []string) {
	t.Helper()
	scanner := bufio.NewScanner(strings.NewReader(input))
	scanner.Split(split)
	for scanner.Scan() {
		tokens = append(tokens, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("scanner error: %v", err)
	}
	return
}

func TestScanGraphemes(t *testing.T) {
	got := scanAll(t, "a🇩🇪🏳️‍🌈!", ScanGraphemes)
	want := []string{"a", "🇩🇪", "🏳️‍🌈", "!"}
	if len(got) != len(want) {
		t.Fatalf("got %q, want %q", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("token %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestScanWords(t *testing.T) {
	got := scanAll(t, "Hello, world!", ScanWords)
	want := []string{"Hello", ",", " ", "world", "!"}
	if len(got) != len(want) {
		t.Fatalf("got %q, want %q", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("token %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestScanSentences(t *testing.T) {
	got := scanAll(t, "One sentence. And two!", ScanSentences)
	want := []string{"One sentence. ", "And two!"}
	if len(got) != len(want) {
		t.Fatalf("got %q, want %q", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("token %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestScanLineSegments(t *testing.T) {
	got := scanAll(t, "foo bar-baz", ScanLineSegments)
	want := []string{"foo ", "bar-", "baz"}
	if len(got) != len(want) {
		t.Fatalf("got %q, want %q", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("token %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestScanEmpty(t *testing.T) {
	for name, split := range map[string]bufio.SplitFunc{
		"graphemes": ScanGraphemes,
		"words":     ScanWords,
		"sentences": ScanSentences,
		"lines":     ScanLineSegments,
	} {
		if got := scanAll(t, "", split); len(got) != 0 {
			t.Errorf("%s: got %q for empty input", name, got)
		}
	}
}
