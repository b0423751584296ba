package unisegp

import (
	"testing"
)

// TestPropertyTablesSorted checks the invariants the binary search relies on:
// every table is sorted by start code point, ranges are well-formed, and no
// two ranges overlap.
func TestPropertyTablesSorted(t *testing.T) {
	tables := map[string][][3]int{
		"graphemeCodePoints":      graphemeCodePoints,
		"wordBreakCodePoints":     wordBreakCodePoints,
		"sentenceBreakCodePoints": sentenceBreakCodePoints,
		"lineBreakCodePoints":     lineBreakCodePoints,
		"extendedPictographic":    extendedPictographic,
		"emojiPresentation":       emojiPresentation,
		"incbCodePoints":          incbCodePoints,
	}
	for name, table := range tables {
		for i, entry := range table {
			if entry[0] > entry[1] {
				t.Errorf("%s[%d]: range %#x..%#x is inverted", name, i, entry[0], entry[1])
			}
			if i > 0 && table[i-1][1] >= entry[0] {
				t.Errorf("%s[%d]: range %#x..%#x overlaps or is out of order with %#x..%#x",
					name, i, entry[0], entry[1], table[i-1][0], table[i-1][1])
			}
		}
	}
}

func TestPropertyGraphemes(t *testing.T) {
	tests := []struct {
		r    rune
		want int
	}{
		{'a', prAny},
		{'\r', prCR},
		{'\n', prLF},
		{0x00, prControl},
		{0x200d, prZWJ},
		{0x1f1e6, prRegionalIndicator},
		{0x1100, prL},
		{0x1161, prV},
		{0x11a8, prT},
		{0xac00, prLV},  // 가
		{0xac01, prLVT}, // 각
		{0x094d, prExtend},
		{0x0903, prSpacingMark},
		{0x1f600, prExtendedPictographic},
	}
	for _, tt := range tests {
		if got := propertyGraphemes(tt.r); got != tt.want {
			t.Errorf("propertyGraphemes(%#x) = %d, want %d", tt.r, got, tt.want)
		}
	}
}

func TestPropertyWords(t *testing.T) {
	tests := []struct {
		r    rune
		want int
	}{
		{'a', prALetter},
		{'5', prNumeric},
		{'.', prMidNumLet},
		{':', prMidLetter},
		{',', prMidNum},
		{'\'', prSingleQuote},
		{'"', prDoubleQuote},
		{'_', prExtendNumLet},
		{' ', prWSegSpace},
		{'\r', prCR},
		{0x05d0, prHebrewLetter},
		{0x30a2, prKatakana},
		{0x1f1e6, prRegionalIndicator},
	}
	for _, tt := range tests {
		if got := propertyWords(tt.r); got != tt.want {
			t.Errorf("propertyWords(%#x) = %d, want %d", tt.r, got, tt.want)
		}
	}
}

func TestPropertySentences(t *testing.T) {
	tests := []struct {
		r    rune
		want int
	}{
		{'a', prLower},
		{'A', prUpper},
		{'.', prATerm},
		{'!', prSTerm},
		{'?', prSTerm},
		{',', prSContinue},
		{' ', prSp},
		{')', prClose},
		{0x201d, prClose}, // ”
		{0x2028, prSep},
	}
	for _, tt := range tests {
		if got := propertySentences(tt.r); got != tt.want {
			t.Errorf("propertySentences(%#x) = %d, want %d", tt.r, got, tt.want)
		}
	}
}

func TestPropertyLineBreak(t *testing.T) {
	tests := []struct {
		r    rune
		want int
	}{
		{'a', prAL},
		{'0', prNU},
		{' ', prSP},
		{'-', prHY},
		{'(', prOP},
		{')', prCP},
		{'!', prEX},
		{',', prIS},
		{'"', prQU},
		{'$', prPR},
		{'%', prPO},
		{'\t', prBA},
		{0x00a0, prGL},
		{0x200b, prZW},
		{0x2060, prWJ},
		{0x05d0, prHL},
		{0x3041, prCJ}, // ぁ
		{0x3042, prID}, // あ
		{0x4e16, prID}, // 世
		{0x1f1e6, prRI},
	}
	for _, tt := range tests {
		if got := propertyLineBreak(tt.r); got != tt.want {
			t.Errorf("propertyLineBreak(%#x) = %d, want %d", tt.r, got, tt.want)
		}
	}
}

// TestResolveLineProperty exercises the LB1 resolution of the ambiguous
// classes under the different tailorings.
func TestResolveLineProperty(t *testing.T) {
	tests := []struct {
		r    rune
		t    Tailoring
		want int
	}{
		{'§', TailoringDefault, prAL},   // AI
		{'§', TailoringEastAsian, prID}, // AI
		{0x30fc, TailoringDefault, prNS},   // CJ: ー
		{0x30fc, TailoringLooseKana, prID}, // CJ
		{0x0e01, TailoringDefault, prAL}, // SA, not a combining mark
		{0x0e31, TailoringDefault, prCM}, // SA, Mn
		{'a', TailoringDefault, prAL},
	}
	for _, tt := range tests {
		if got := resolveLineProperty(tt.r, tt.t); got != tt.want {
			t.Errorf("resolveLineProperty(%#x, %v) = %d, want %d", tt.r, tt.t, got, tt.want)
		}
	}
}

func TestTailoringByName(t *testing.T) {
	for name, want := range map[string]Tailoring{
		"":           TailoringDefault,
		"default":    TailoringDefault,
		"east-asian": TailoringEastAsian,
		"loose-kana": TailoringLooseKana,
	} {
		got, err := TailoringByName(name)
		if err != nil {
			t.Errorf("TailoringByName(%q): %v", name, err)
			continue
		}
		if got != want {
			t.Errorf("TailoringByName(%q) = %v, want %v", name, got, want)
		}
	}

	if _, err := TailoringByName("bogus"); err == nil {
		t.Error("TailoringByName(\"bogus\") should fail")
	}
}

func TestQuoteCategories(t *testing.T) {
	if !isInitialQuote('“') {
		t.Error("“ should be an initial quote")
	}
	if !isFinalQuote('”') {
		t.Error("” should be a final quote")
	}
	if isInitialQuote('"') || isFinalQuote('"') {
		t.Error("\" should be neither an initial nor a final quote")
	}
}

func TestEastAsianFWH(t *testing.T) {
	tests := []struct {
		r    rune
		want bool
	}{
		{'a', false},
		{'世', true},
		{0xff21, true}, // Ａ
		{0xff76, true}, // ｶ, halfwidth
	}
	for _, tt := range tests {
		if got := isEastAsianFWH(tt.r); got != tt.want {
			t.Errorf("isEastAsianFWH(%#x) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestEmojiPresentation(t *testing.T) {
	tests := []struct {
		r    rune
		want bool
	}{
		{0x231a, true},  // ⌚
		{0x2602, false}, // ☂, text presentation by default
		{0x1f600, true}, // 😀
		{0x1f3f3, false}, // 🏳, needs VS16 for emoji presentation
		{'a', false},
	}
	for _, tt := range tests {
		if got := hasEmojiPresentation(tt.r); got != tt.want {
			t.Errorf("hasEmojiPresentation(%#x) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestPropertyInCB(t *testing.T) {
	tests := []struct {
		r    rune
		want int
	}{
		{0x0915, incbConsonant}, // क
		{0x094d, incbLinker},    // ्
		{0x200d, incbExtend},
		{'a', incbNone},
	}
	for _, tt := range tests {
		if got := propertyInCB(tt.r); got != tt.want {
			t.Errorf("propertyInCB(%#x) = %d, want %d", tt.r, got, tt.want)
		}
	}
}
