package unisegp

import "unicode/utf8"

// The states of the sentence break parser.
const (
	sbAny = iota
	sbCR
	sbParaSep
	sbUpper
	sbLower
	sbATerm
	sbATermUL // ATerm directly after Upper or Lower, for SB7
	sbATermClose
	sbATermSp
	sbSTerm
	sbSTermClose
	sbSTermSp
)

// transitionSentenceBreakState determines the new state of the sentence break
// parser given the current state and the next code point. It also reports
// whether a sentence boundary was detected between the previous code point
// and this one.
//
// Sentences break only after paragraph separators (SB4) and after a completed
// terminator sequence (SB11); everything else stays glued (SB998). Rule SB8
// scans ahead in b or str, whichever is not empty, both starting after the
// current code point.
func transitionSentenceBreakState(state int, r rune, b []byte, str string) (newState int, sentenceBreak bool) {
	prop := propertySentences(r)

	if state < 0 {
		state = sbAny
	}

	// SB3: CR x LF.
	if state == sbCR && prop == prLF {
		return sbParaSep, false
	}

	// SB4: break after paragraph separators.
	if state == sbCR || state == sbParaSep {
		return enterSentenceState(prop), true
	}

	// SB9, SB10: separators extend a terminator sequence without breaking;
	// the break then follows the separator via SB4.
	switch prop {
	case prCR:
		return sbCR, false
	case prLF, prSep:
		return sbParaSep, false
	}

	// SB5: ignore Extend and Format, keeping the current state.
	if prop == prExtend || prop == prFormat {
		return state, false
	}

	switch state {
	case sbATerm, sbATermUL, sbATermClose, sbATermSp,
		sbSTerm, sbSTermClose, sbSTermSp:
		aterm := state == sbATerm || state == sbATermUL || state == sbATermClose || state == sbATermSp

		switch prop {
		case prNumeric:
			if state == sbATerm || state == sbATermUL {
				return sbAny, false // SB6
			}
		case prUpper:
			if state == sbATermUL {
				return sbUpper, false // SB7
			}
		case prClose:
			// SB9: Close only continues the sequence before any space.
			switch state {
			case sbATerm, sbATermUL, sbATermClose:
				return sbATermClose, false
			case sbSTerm, sbSTermClose:
				return sbSTermClose, false
			}
		case prSp:
			if aterm {
				return sbATermSp, false // SB9, SB10
			}
			return sbSTermSp, false
		case prSContinue:
			return sbAny, false // SB8a
		case prATerm:
			return sbATerm, false // SB8a
		case prSTerm:
			return sbSTerm, false // SB8a
		case prLower:
			if aterm {
				return sbLower, false // SB8
			}
		}

		// SB8: ATerm Close* Sp* stays glued when a lowercase letter follows
		// before the next sentence-starting character.
		if aterm && prop != prOLetter && prop != prUpper && sentenceLowerAhead(b, str) {
			return state, false
		}

		// SB11.
		return enterSentenceState(prop), true
	}

	// Entering a terminator sequence: remember a directly preceding Upper or
	// Lower so SB7 can keep abbreviations like "U.S." together.
	if prop == prATerm && (state == sbUpper || state == sbLower) {
		return sbATermUL, false
	}

	// SB998.
	return enterSentenceState(prop), false
}

// enterSentenceState returns the parser state for a code point outside any
// terminator sequence.
func enterSentenceState(prop int) int {
	switch prop {
	case prCR:
		return sbCR
	case prLF, prSep:
		return sbParaSep
	case prUpper:
		return sbUpper
	case prLower:
		return sbLower
	case prATerm:
		return sbATerm
	case prSTerm:
		return sbSTerm
	}
	return sbAny
}

// sentenceLowerAhead reports whether a Lower code point follows in the
// remainder before any OLetter, Upper, paragraph separator, or sentence
// terminator, per the lookahead in rule SB8.
func sentenceLowerAhead(b []byte, str string) bool {
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
		switch propertySentences(r) {
		case prLower:
			return true
		case prOLetter, prUpper, prSep, prCR, prLF, prATerm, prSTerm:
			return false
		}
	}
	return false
}
