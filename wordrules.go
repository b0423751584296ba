package unisegp

import "unicode/utf8"

// The states of the word break parser. The base state occupies the low four
// bits, wbZWJBit rides on top of it.
const (
	wbAny = iota
	wbCR
	wbLF
	wbNewline
	wbWSegSpace
	wbALetter
	wbHebrewLetter
	wbNumeric
	wbKatakana
	wbExtendNumLet
	wbOddRI
	wbEvenRI

	// wbZWJBit is set when the previous significant code point was a ZWJ, so
	// rule WB3c can glue a following extended pictographic.
	wbZWJBit = 0x10
)

// transitionWordBreakState determines the new state of the word break parser
// given the current state and the next code point. It also reports whether a
// word boundary was detected between the previous code point and this one.
//
// Rules WB6, WB7b, and WB12 need to see one code point past the current one.
// That lookahead is taken from b or str, whichever is not empty, both starting
// after the current code point.
func transitionWordBreakState(state int, r rune, b []byte, str string) (newState int, wordBreak bool) {
	prop := propertyWords(r)

	zwj := false
	if state < 0 {
		state = wbAny
	} else {
		zwj = state&wbZWJBit != 0
		state &= 0xf
	}

	// WB3: CR x LF.
	if state == wbCR && prop == prLF {
		return wbLF, false
	}

	// WB3a: break after newlines.
	if state == wbCR || state == wbLF || state == wbNewline {
		return enterWordState(prop), true
	}

	// WB3b: break before newlines.
	switch prop {
	case prCR:
		return wbCR, true
	case prLF:
		return wbLF, true
	case prNewline:
		return wbNewline, true
	}

	// WB3c: ZWJ x \p{Extended_Pictographic}.
	if zwj && isExtendedPictographic(r) {
		return wbAny, false
	}

	// WB3d: keep horizontal whitespace together.
	if state == wbWSegSpace && prop == prWSegSpace {
		return wbWSegSpace, false
	}

	// WB4: ignore Extend, Format, and ZWJ, keeping the current state. They
	// attach to whatever came before; the after-newline cases broke above.
	switch prop {
	case prZWJ:
		return state | wbZWJBit, false
	case prExtend, prFormat:
		return state, false
	}

	switch state {
	case wbALetter, wbHebrewLetter:
		switch prop {
		case prALetter:
			return wbALetter, false // WB5
		case prHebrewLetter:
			return wbHebrewLetter, false // WB5
		case prNumeric:
			return wbNumeric, false // WB9
		case prExtendNumLet:
			return wbExtendNumLet, false // WB13a
		case prMidLetter, prMidNumLet:
			// WB6, WB7: letter (MidLetter | MidNumLetQ) letter.
			if p := nextWordProperty(b, str); p == prALetter || p == prHebrewLetter {
				return state, false
			}
		case prSingleQuote:
			if state == wbHebrewLetter {
				// WB7a: no break after the quote; only stay in the letter
				// run if WB6/WB7 glue it to a following letter.
				if p := nextWordProperty(b, str); p == prALetter || p == prHebrewLetter {
					return state, false
				}
				return wbAny, false
			}
			if p := nextWordProperty(b, str); p == prALetter || p == prHebrewLetter {
				return state, false // WB6, WB7
			}
		case prDoubleQuote:
			// WB7b, WB7c: Hebrew letters around a double quote.
			if state == wbHebrewLetter {
				if p := nextWordProperty(b, str); p == prHebrewLetter {
					return state, false
				}
			}
		}

	case wbNumeric:
		switch prop {
		case prNumeric:
			return wbNumeric, false // WB8
		case prALetter:
			return wbALetter, false // WB10
		case prHebrewLetter:
			return wbHebrewLetter, false // WB10
		case prExtendNumLet:
			return wbExtendNumLet, false // WB13a
		case prMidNum, prMidNumLet, prSingleQuote:
			// WB11, WB12: numbers around medial punctuation.
			if nextWordProperty(b, str) == prNumeric {
				return wbNumeric, false
			}
		}

	case wbKatakana:
		switch prop {
		case prKatakana:
			return wbKatakana, false // WB13
		case prExtendNumLet:
			return wbExtendNumLet, false // WB13a
		}

	case wbExtendNumLet:
		switch prop {
		case prExtendNumLet:
			return wbExtendNumLet, false // WB13a
		case prALetter:
			return wbALetter, false // WB13b
		case prHebrewLetter:
			return wbHebrewLetter, false // WB13b
		case prNumeric:
			return wbNumeric, false // WB13b
		case prKatakana:
			return wbKatakana, false // WB13b
		}

	case wbOddRI:
		// WB15, WB16: regional indicators join in pairs.
		if prop == prRegionalIndicator {
			return wbEvenRI, false
		}
	}

	// WB999.
	return enterWordState(prop), true
}

// enterWordState returns the parser state for a code point that starts a new
// word.
func enterWordState(prop int) int {
	switch prop {
	case prCR:
		return wbCR
	case prLF:
		return wbLF
	case prNewline:
		return wbNewline
	case prWSegSpace:
		return wbWSegSpace
	case prALetter:
		return wbALetter
	case prHebrewLetter:
		return wbHebrewLetter
	case prNumeric:
		return wbNumeric
	case prKatakana:
		return wbKatakana
	case prExtendNumLet:
		return wbExtendNumLet
	case prRegionalIndicator:
		return wbOddRI
	}
	return wbAny
}

// nextWordProperty returns the Word_Break class of the next significant code
// point in the remainder, skipping over Extend, Format, and ZWJ as mandated
// by rule WB4. It returns prAny at the end of the text.
func nextWordProperty(b []byte, str string) int {
	for len(b) > 0 || len(str) > 0 {
		var (
			r      rune
			length int
		)
		if b != nil {
			r, length = utf8.DecodeRune(b)
			b = b[length:]
		} else {
			r, length = utf8.DecodeRuneInString(str)
			str = str[length:]
		}
		prop := propertyWords(r)
		if prop == prExtend || prop == prFormat || prop == prZWJ {
			continue
		}
		return prop
	}
	return prAny
}
