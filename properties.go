package unisegp

import (
	"unicode"

	"golang.org/x/text/width"
)

// Break classes assigned to code points by the property tables. One shared
// value space covers all four boundary types so the tables can share the
// lookup machinery; each engine only ever sees the classes of its own table.
//
// Note: prAny is the default for every boundary type and must be 0.
const (
	prAny = iota

	// Grapheme_Cluster_Break (UAX #29)
	prPrepend
	prCR
	prLF
	prControl
	prExtend
	prRegionalIndicator
	prSpacingMark
	prL
	prV
	prT
	prLV
	prLVT
	prZWJ
	prExtendedPictographic

	// Word_Break (UAX #29)
	prNewline
	prWSegSpace
	prDoubleQuote
	prSingleQuote
	prMidNumLet
	prNumeric
	prMidLetter
	prMidNum
	prExtendNumLet
	prALetter
	prFormat
	prHebrewLetter
	prKatakana

	// Sentence_Break (UAX #29)
	prSp
	prSTerm
	prClose
	prSContinue
	prATerm
	prUpper
	prLower
	prSep
	prOLetter

	// Line_Break (UAX #14)
	prBK
	prNL
	prSP
	prZW
	prWJ
	prGL
	prBA
	prHY
	prB2
	prBB
	prCB
	prCL
	prCP
	prEX
	prIN
	prNS
	prOP
	prQU
	prIS
	prNU
	prPO
	prPR
	prSY
	prAI
	prAL
	prCJ
	prCM
	prEB
	prEM
	prH2
	prH3
	prHL
	prID
	prJL
	prJV
	prJT
	prRI
	prSA
	prSG
	prXX
)

// Indic_Conjunct_Break property values for grapheme rule GB9c. These live in
// their own table and value space.
const (
	incbNone = iota
	incbLinker
	incbConsonant
	incbExtend
)

// Variation Selectors for emoji presentation control.
const (
	vs15 = 0xfe0e // force text presentation (width 1)
	vs16 = 0xfe0f // force emoji presentation (width 2)
)

// propertySearch performs a binary search on a sorted property table. Each
// entry is [startCodePoint, endCodePoint, class]. Returns the table's default
// (prAny == 0) if the code point is not covered.
func propertySearch(dictionary [][3]int, r rune) int {
	from := 0
	to := len(dictionary)
	for to > from {
		middle := (from + to) / 2
		cpRange := dictionary[middle]
		if int(r) < cpRange[0] {
			to = middle
			continue
		}
		if int(r) > cpRange[1] {
			from = middle + 1
			continue
		}
		return cpRange[2]
	}
	return prAny
}

// hangulSyllableClass returns prLV or prLVT for precomposed Hangul syllables
// (U+AC00..U+D7A3), or prAny for anything else. The syllable block repeats in
// runs of 28: the first of each run is an LV syllable, the rest are LVT. The
// tables don't carry these 11172 code points; arithmetic is cheaper.
func hangulSyllableClass(r rune) int {
	if r < 0xac00 || r > 0xd7a3 {
		return prAny
	}
	if (r-0xac00)%28 == 0 {
		return prLV
	}
	return prLVT
}

// propertyGraphemes returns the Grapheme_Cluster_Break class of the given
// code point while fast tracking ASCII characters.
func propertyGraphemes(r rune) int {
	if r >= 0x20 && r <= 0x7e {
		return prAny
	}
	if r == 0x0a {
		return prLF
	}
	if r == 0x0d {
		return prCR
	}
	if r >= 0 && r <= 0x1f || r == 0x7f {
		return prControl
	}
	if cls := hangulSyllableClass(r); cls != prAny {
		return cls
	}
	if cls := propertySearch(graphemeCodePoints, r); cls != prAny {
		return cls
	}
	if isExtendedPictographic(r) {
		return prExtendedPictographic
	}
	return prAny
}

// propertyWords returns the Word_Break class of the given code point while
// fast tracking ASCII characters.
func propertyWords(r rune) int {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return prALetter
	case r >= '0' && r <= '9':
		return prNumeric
	}
	switch r {
	case 0x0a:
		return prLF
	case 0x0d:
		return prCR
	case 0x0b, 0x0c:
		return prNewline
	case 0x20:
		return prWSegSpace
	case '"':
		return prDoubleQuote
	case '\'':
		return prSingleQuote
	case '.':
		return prMidNumLet
	case ':':
		return prMidLetter
	case ',', ';':
		return prMidNum
	case '_':
		return prExtendNumLet
	}
	if r <= 0x7f {
		return prAny
	}
	return propertySearch(wordBreakCodePoints, r)
}

// propertySentences returns the Sentence_Break class of the given code point
// while fast tracking ASCII characters.
func propertySentences(r rune) int {
	switch {
	case r >= 'a' && r <= 'z':
		return prLower
	case r >= 'A' && r <= 'Z':
		return prUpper
	case r >= '0' && r <= '9':
		return prNumeric
	}
	switch r {
	case 0x0a:
		return prLF
	case 0x0d:
		return prCR
	case 0x09, 0x0b, 0x0c, 0x20:
		return prSp
	case '!', '?':
		return prSTerm
	case '.':
		return prATerm
	case ',', '-', ':':
		return prSContinue
	case '"', '\'', '(', ')', '[', ']', '{', '}':
		return prClose
	}
	if r <= 0x7f {
		return prAny
	}
	return propertySearch(sentenceBreakCodePoints, r)
}

// propertyLineBreak returns the raw (unresolved) Line_Break class of the
// given code point while fast tracking ASCII letters and digits. Callers that
// drive the line break rules want [resolveLineProperty] instead.
func propertyLineBreak(r rune) int {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return prAL
	case r >= '0' && r <= '9':
		return prNU
	}
	if cls := hangulSyllableClass(r); cls != prAny {
		if cls == prLV {
			return prH2
		}
		return prH3
	}
	if cls := propertySearch(lineBreakCodePoints, r); cls != prAny {
		return cls
	}
	return prXX
}

// resolveLineProperty returns the resolved Line_Break class of the given code
// point: rule LB1 (and the configured tailoring) folded into classification,
// so the decision phase only ever sees concrete classes.
func resolveLineProperty(r rune, t Tailoring) int {
	cls := propertyLineBreak(r)
	switch cls {
	case prAI:
		if t == TailoringEastAsian {
			return prID
		}
		return prAL
	case prSG, prXX:
		return prAL
	case prSA:
		if unicode.In(r, unicode.Mn, unicode.Mc) {
			return prCM
		}
		return prAL
	case prCJ:
		if t == TailoringLooseKana {
			return prID
		}
		return prNS
	}
	return cls
}

// propertyInCB returns the Indic_Conjunct_Break property value for the given
// code point, used by grapheme cluster rule GB9c.
func propertyInCB(r rune) int {
	// Fast track: nothing below U+0300 participates in conjuncts.
	if r < 0x0300 {
		return incbNone
	}
	return propertySearch(incbCodePoints, r)
}

// isExtendedPictographic reports whether the code point has the
// Extended_Pictographic emoji property.
func isExtendedPictographic(r rune) bool {
	if r < 0xa9 {
		return false
	}
	return propertySearch(extendedPictographic, r) != prAny
}

// isInitialQuote and isFinalQuote report the Pi and Pf general categories,
// used by the quotation line break rules. The general category oracle is the
// standard library's unicode tables.
func isInitialQuote(r rune) bool { return unicode.Is(unicode.Pi, r) }

func isFinalQuote(r rune) bool { return unicode.Is(unicode.Pf, r) }

// isUnassigned reports general category Cn: the code point belongs to no
// assigned category. The unicode package has no Cn table, so test the
// complement.
func isUnassigned(r rune) bool {
	return !unicode.In(r,
		unicode.L, unicode.M, unicode.N, unicode.P, unicode.S, unicode.Z, unicode.C)
}

// isEastAsianFWH reports whether the code point's East_Asian_Width is
// Fullwidth, Wide, or Halfwidth, per the x/text width tables. Rule LB30 only
// glues parentheses whose width is outside this set.
func isEastAsianFWH(r rune) bool {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianFullwidth, width.EastAsianWide, width.EastAsianHalfwidth:
		return true
	}
	return false
}
