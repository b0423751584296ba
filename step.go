package unisegp

import "unicode/utf8"

// Masks for the boundaries value returned by [Step] and [StepString]. Bits
// 0-1 hold the line break decision, bit 2 the word boundary flag, bit 3 the
// sentence boundary flag, and the bits from [ShiftWidth] up the monospace
// width of the cluster.
const (
	MaskLine     = 3
	MaskWord     = 4
	MaskSentence = 8
)

// ShiftWidth is the number of bits to shift the boundaries value to the right
// to obtain the monospace width of the grapheme cluster.
const ShiftWidth = 4

// Bit positions of the word and sentence flags within the boundaries value.
const (
	shiftWord     = 2
	shiftSentence = 3
)

// The four parser states share one int. Grapheme state (with its InCB
// tracking) sits in the low 12 bits, then word, sentence, and the packed
// line context, with the grapheme property of the next rune cached on top.
const (
	shiftWordState     = 12
	shiftSentenceState = 17
	shiftLineState     = 21
	shiftPropState     = 37
)

const (
	maskGraphemeState = 0xfff
	maskWordState     = 0x1f
	maskSentenceState = 0xf
	maskLineState     = 0xffff
)

// Step returns the first grapheme cluster found in the given byte slice,
// together with the complete boundary information for the position after it:
// whether it ends a word, whether it ends a sentence, the line break decision
// at that position, and the monospace width of the cluster. It combines
// [FirstGraphemeCluster], [FirstWord], [FirstSentence], and
// [FirstLineSegment] in a single pass over the input.
//
// The boundaries value is read with the masks defined above:
//
//   - boundaries&MaskWord != 0 when the cluster ends a word,
//   - boundaries&MaskSentence != 0 when it ends a sentence,
//   - boundaries&MaskLine is LineDontBreak, LineCanBreak, or LineMustBreak,
//   - boundaries >> ShiftWidth is the cluster's width in character cells.
//
// Pass -1 as the state on the first call; on consecutive calls, pass the
// state and rest slice returned by the previous call. An empty byte slice
// returns nil values. Like [FirstLineSegment], the final cluster always
// reports LineMustBreak per rule LB3; [HasTrailingLineBreak] distinguishes
// an actual trailing line break from plain end of text.
//
// The function makes no allocations. For iterating a string with less
// bookkeeping, see [Graphemes], which wraps [StepString].
func Step(b []byte, state int) (cluster, rest []byte, boundaries int, newState int) {
	if len(b) == 0 {
		return
	}

	r, length := utf8.DecodeRune(b)
	if len(b) <= length { // Single rune, end of text.
		var prop int
		if state < 0 {
			prop = propertyGraphemes(r)
		} else {
			prop = state >> shiftPropState
		}
		return b, nil, LineMustBreak | (1 << shiftWord) | (1 << shiftSentence) | (runeWidth(r, prop) << ShiftWidth), grAny | (wbAny << shiftWordState) | (sbAny << shiftSentenceState) | (packLineContext(LineContext{State: lbcAny}) << shiftLineState) | (prop << shiftPropState)
	}

	// A fresh state needs one transition to establish the first rune's
	// context before the loop looks at the rune after it.
	var graphemeState, wordState, sentenceState, lineState, firstProp int
	remainder := b[length:]
	if state < 0 {
		graphemeState, firstProp, _ = transitionGraphemeState(state, r)
		wordState, _ = transitionWordBreakState(state, r, remainder, "")
		sentenceState, _ = transitionSentenceBreakState(state, r, remainder, "")
		lineState, _ = transitionLineBreakState(state, r, remainder, "")
	} else {
		graphemeState = state & maskGraphemeState
		wordState = (state >> shiftWordState) & maskWordState
		sentenceState = (state >> shiftSentenceState) & maskSentenceState
		lineState = (state >> shiftLineState) & maskLineState
		firstProp = state >> shiftPropState
	}

	// Advance all four parsers until the grapheme parser reports a boundary.
	width := runeWidth(r, firstProp)
	for {
		var (
			graphemeBoundary, wordBoundary, sentenceBoundary bool
			lineBreak, prop                                  int
		)

		r, l := utf8.DecodeRune(remainder)
		remainder = b[length+l:]

		graphemeState, prop, graphemeBoundary = transitionGraphemeState(graphemeState, r)
		wordState, wordBoundary = transitionWordBreakState(wordState, r, remainder, "")
		sentenceState, sentenceBoundary = transitionSentenceBreakState(sentenceState, r, remainder, "")
		lineState, lineBreak = transitionLineBreakState(lineState, r, remainder, "")

		if graphemeBoundary {
			boundary := lineBreak | (width << ShiftWidth)
			if wordBoundary {
				boundary |= 1 << shiftWord
			}
			if sentenceBoundary {
				boundary |= 1 << shiftSentence
			}
			return b[:length], b[length:], boundary, graphemeState | (wordState << shiftWordState) | (sentenceState << shiftSentenceState) | (lineState << shiftLineState) | (prop << shiftPropState)
		}

		if firstProp == prExtendedPictographic {
			switch r {
			case vs15:
				width = 1
			case vs16:
				width = 2
			}
		} else if firstProp != prRegionalIndicator && firstProp != prL {
			width += runeWidth(r, prop)
		}

		length += l
		if len(b) <= length {
			return b, nil, LineMustBreak | (1 << shiftWord) | (1 << shiftSentence) | (width << ShiftWidth), grAny | (wbAny << shiftWordState) | (sbAny << shiftSentenceState) | (packLineContext(LineContext{State: lbcAny}) << shiftLineState) | (prop << shiftPropState)
		}
	}
}

// StepString is like [Step] but its input and outputs are strings.
func StepString(str string, state int) (cluster, rest string, boundaries int, newState int) {
	if len(str) == 0 {
		return
	}

	r, length := utf8.DecodeRuneInString(str)
	if len(str) <= length { // Single rune, end of text.
		prop := propertyGraphemes(r)
		return str, "", LineMustBreak | (1 << shiftWord) | (1 << shiftSentence) | (runeWidth(r, prop) << ShiftWidth), grAny | (wbAny << shiftWordState) | (sbAny << shiftSentenceState) | (packLineContext(LineContext{State: lbcAny}) << shiftLineState) | (prop << shiftPropState)
	}

	// A fresh state needs one transition to establish the first rune's
	// context before the loop looks at the rune after it.
	var graphemeState, wordState, sentenceState, lineState, firstProp int
	remainder := str[length:]
	if state < 0 {
		graphemeState, firstProp, _ = transitionGraphemeState(state, r)
		wordState, _ = transitionWordBreakState(state, r, nil, remainder)
		sentenceState, _ = transitionSentenceBreakState(state, r, nil, remainder)
		lineState, _ = transitionLineBreakState(state, r, nil, remainder)
	} else {
		graphemeState = state & maskGraphemeState
		wordState = (state >> shiftWordState) & maskWordState
		sentenceState = (state >> shiftSentenceState) & maskSentenceState
		lineState = (state >> shiftLineState) & maskLineState
		firstProp = state >> shiftPropState
	}

	// Advance all four parsers until the grapheme parser reports a boundary.
	width := runeWidth(r, firstProp)
	for {
		var (
			graphemeBoundary, wordBoundary, sentenceBoundary bool
			lineBreak, prop                                  int
		)

		r, l := utf8.DecodeRuneInString(remainder)
		remainder = str[length+l:]

		graphemeState, prop, graphemeBoundary = transitionGraphemeState(graphemeState, r)
		wordState, wordBoundary = transitionWordBreakState(wordState, r, nil, remainder)
		sentenceState, sentenceBoundary = transitionSentenceBreakState(sentenceState, r, nil, remainder)
		lineState, lineBreak = transitionLineBreakState(lineState, r, nil, remainder)

		if graphemeBoundary {
			boundary := lineBreak | (width << ShiftWidth)
			if wordBoundary {
				boundary |= 1 << shiftWord
			}
			if sentenceBoundary {
				boundary |= 1 << shiftSentence
			}
			return str[:length], str[length:], boundary, graphemeState | (wordState << shiftWordState) | (sentenceState << shiftSentenceState) | (lineState << shiftLineState) | (prop << shiftPropState)
		}

		if firstProp == prExtendedPictographic {
			switch r {
			case vs15:
				width = 1
			case vs16:
				width = 2
			}
		} else if firstProp != prRegionalIndicator && firstProp != prL {
			width += runeWidth(r, prop)
		}

		length += l
		if len(str) <= length {
			return str, "", LineMustBreak | (1 << shiftWord) | (1 << shiftSentence) | (width << ShiftWidth), grAny | (wbAny << shiftWordState) | (sbAny << shiftSentenceState) | (packLineContext(LineContext{State: lbcAny}) << shiftLineState) | (prop << shiftPropState)
		}
	}
}
