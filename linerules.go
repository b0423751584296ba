package unisegp

import "unicode/utf8"

// Context flags for line breaking. They carry the information that
// context-sensitive rules need beyond the class of the previous character.
const (
	// Start of text. Set initially, cleared after the first break.
	lbCtxSot = 1 << 0

	// The previous significant character was an initial quotation mark
	// (QU with general category Pi).
	lbCtxAfterQUPi = 1 << 1

	// Spaces followed an initial quotation mark, for sot (QU_Pi SP*)+ x OP.
	lbCtxQUPiSP = 1 << 2

	// The previous character was a ZWJ, for LB8a.
	lbCtxAfterZWJ = 1 << 3

	// The pending CP has East Asian width F, W, or H, disabling LB30.
	lbCtxCPeaFWH = 1 << 4

	// The pending HY is the first character of the text, for LB20a.
	lbCtxHYSot = 1 << 5
)

// Base line break states: the resolved class of the previous character, plus
// a handful of composite states for sequences the rules need to remember.
const (
	lbcAny = iota
	lbcBK
	lbcCR
	lbcLF
	lbcNL
	lbcSP
	lbcZW
	lbcZWSP // ZW SP*, for LB8
	lbcWJ
	lbcGL
	lbcOP
	lbcOPSP // OP SP*, for LB14
	lbcQU
	lbcQUPi   // QU with general category Pi
	lbcQUPiSP // QU_Pi SP*, for LB15
	lbcCL
	lbcCP
	lbcCLCP // (CL|CP) SP*, for LB16
	lbcEX
	lbcIS
	lbcSY
	lbcNU
	lbcPR
	lbcPO
	lbcAL
	lbcHL
	lbcHLHY // HL (HY|BA), for LB21a
	lbcID
	lbcIN
	lbcHY
	lbcBA
	lbcBB
	lbcB2
	lbcB2SP // B2 SP*, for LB17
	lbcCB
	lbcJL
	lbcJV
	lbcJT
	lbcH2
	lbcH3
	lbcEB
	lbcEM
	lbcRIOdd
	lbcRIEven
	lbcExtPicCn // unassigned code point with Extended_Pictographic, for LB30b
	lbcCM
	lbcNS
)

// LineContext holds the complete line breaking state: the base state and the
// context flags.
type LineContext struct {
	State int
	Flags int
}

// packLineContext packs a LineContext into an int for storage in the [Step]
// state. Layout: flags in bits 8-15, state in bits 0-7.
func packLineContext(ctx LineContext) int {
	return (ctx.Flags << 8) | (ctx.State & 0xff)
}

// unpackLineContext is the inverse of packLineContext. Negative values unpack
// to the initial context.
func unpackLineContext(packed int) LineContext {
	if packed < 0 {
		return LineContext{State: lbcAny, Flags: lbCtxSot}
	}
	return LineContext{
		State: packed & 0xff,
		Flags: (packed >> 8) & 0xff,
	}
}

// transitionLineBreakState determines the new state of the line break parser
// under the default tailoring, packed as by packLineContext. The second
// return value is one of LineDontBreak, LineCanBreak, or LineMustBreak,
// describing the position before r.
func transitionLineBreakState(state int, r rune, b []byte, str string) (int, int) {
	newCtx, lineBreak := transitionLineBreakContext(unpackLineContext(state), r, TailoringDefault, b, str)
	return packLineContext(newCtx), lineBreak
}

// transitionLineBreakContext runs the context-sensitive line break rules, in
// rule order, for the boundary before r. Rules that depend only on the two
// adjacent classes fall through to the pair table. The lookahead data in b or
// str starts after r; rule LB15 peeks at most one code point into it.
func transitionLineBreakContext(ctx LineContext, r rune, t Tailoring, b []byte, str string) (LineContext, int) {
	prop := resolveLineProperty(r, t)

	// LB9, LB10: combining marks and ZWJ stick to their base, or count as AL
	// when there is no base to stick to.
	if prop == prCM || prop == prZWJ {
		spaceLike := lineStateSpaceLike(ctx.State) || ctx.State == lbcZW
		mandatory := ctx.State == lbcBK || ctx.State == lbcCR || ctx.State == lbcLF || ctx.State == lbcNL
		if !spaceLike && !mandatory && ctx.State != lbcAny {
			newCtx := ctx
			if prop == prZWJ {
				newCtx.Flags |= lbCtxAfterZWJ
			} else {
				newCtx.Flags &^= lbCtxAfterZWJ
			}
			return newCtx, LineDontBreak
		}
		newCtx := nextLineContext(ctx, lbcAL, prAL, r)
		if prop == prZWJ {
			newCtx.Flags |= lbCtxAfterZWJ
		}
		if mandatory {
			return lineBreakAt(newCtx, LineMustBreak)
		}
		if spaceLike {
			return lineBreakAt(newCtx, LineCanBreak)
		}
		return newCtx, LineDontBreak
	}

	// LB4, LB5: mandatory breaks after BK, CR, LF, NL, with CR x LF.
	if ctx.State == lbcCR && prop == prLF {
		return nextLineContext(ctx, lbcLF, prop, r), LineDontBreak
	}
	if ctx.State == lbcBK || ctx.State == lbcCR || ctx.State == lbcLF || ctx.State == lbcNL {
		return lineBreakAt(nextLineContext(ctx, lineEnterState(prop), prop, r), LineMustBreak)
	}

	// LB6: no break before hard line breaks.
	if prop == prBK || prop == prCR || prop == prLF || prop == prNL {
		return nextLineContext(ctx, lineEnterState(prop), prop, r), LineDontBreak
	}

	// LB7: no break before spaces or zero-width space. Spaces extend the
	// pending OP, CL/CP, B2, ZW, and QU_Pi sequences.
	if prop == prSP || prop == prZW {
		newState := lbcSP
		switch {
		case prop == prZW:
			newState = lbcZW
		case ctx.State == lbcZW || ctx.State == lbcZWSP:
			newState = lbcZWSP
		case ctx.State == lbcB2 || ctx.State == lbcB2SP:
			newState = lbcB2SP
		case ctx.State == lbcCL || ctx.State == lbcCP || ctx.State == lbcCLCP:
			newState = lbcCLCP
		case ctx.State == lbcOP || ctx.State == lbcOPSP:
			newState = lbcOPSP
		case ctx.State == lbcQUPi || ctx.State == lbcQUPiSP:
			newState = lbcQUPiSP
		}
		newCtx := nextLineContext(ctx, newState, prop, r)
		newCtx.Flags &^= lbCtxAfterZWJ
		return newCtx, LineDontBreak
	}

	// LB8: break after ZW SP*.
	if ctx.State == lbcZW || ctx.State == lbcZWSP {
		return lineBreakAt(nextLineContext(ctx, lineEnterState(prop), prop, r), LineCanBreak)
	}

	// LB8a: no break after ZWJ.
	if ctx.Flags&lbCtxAfterZWJ != 0 {
		newCtx := nextLineContext(ctx, lineEnterState(prop), prop, r)
		newCtx.Flags &^= lbCtxAfterZWJ
		return newCtx, LineDontBreak
	}

	// LB11: word joiner glues both ways.
	if prop == prWJ || ctx.State == lbcWJ {
		return nextLineContext(ctx, lineEnterState(prop), prop, r), LineDontBreak
	}

	// LB12: no break after glue.
	if ctx.State == lbcGL {
		return nextLineContext(ctx, lineEnterState(prop), prop, r), LineDontBreak
	}

	// LB12a: no break before glue except after spaces and hyphens.
	if prop == prGL {
		if !lineStateSpaceLike(ctx.State) && ctx.State != lbcBA && ctx.State != lbcHY && ctx.State != lbcHLHY {
			return nextLineContext(ctx, lbcGL, prop, r), LineDontBreak
		}
	}

	// LB13: no break before closing punctuation, even after spaces.
	if prop == prCL || prop == prCP || prop == prEX || prop == prIS || prop == prSY {
		return nextLineContext(ctx, lineEnterState(prop), prop, r), LineDontBreak
	}

	// LB14: no break after OP SP*.
	if ctx.State == lbcOP || ctx.State == lbcOPSP {
		return nextLineContext(ctx, lineEnterState(prop), prop, r), LineDontBreak
	}

	// LB15: no break in sot (QU_Pi SP*)+ x OP, and no break before a final
	// quote that closes off the text after a space.
	if ctx.Flags&lbCtxSot != 0 && ctx.Flags&lbCtxQUPiSP != 0 && prop == prOP {
		return nextLineContext(ctx, lbcOP, prop, r), LineDontBreak
	}
	if lineStateSpaceLike(ctx.State) && prop == prQU && isFinalQuote(r) {
		switch nextLineProperty(b, str, t) {
		case -1, prSP, prGL, prWJ, prCL, prQU, prCP, prEX, prIS, prSY, prBK, prCR, prLF, prNL, prZW:
			return nextLineContext(ctx, lbcQU, prop, r), LineDontBreak
		}
	}

	// LB16: no break between closing punctuation and non-starters, even with
	// spaces in between.
	if (ctx.State == lbcCL || ctx.State == lbcCP || ctx.State == lbcCLCP) && prop == prNS {
		return nextLineContext(ctx, lbcNS, prop, r), LineDontBreak
	}

	// LB17: no break within B2 SP* B2.
	if (ctx.State == lbcB2 || ctx.State == lbcB2SP) && prop == prB2 {
		return nextLineContext(ctx, lbcB2, prop, r), LineDontBreak
	}

	// LB18: break after spaces.
	if lineStateSpaceLike(ctx.State) {
		return lineBreakAt(nextLineContext(ctx, lineEnterState(prop), prop, r), LineCanBreak)
	}

	// LB19: no break before or after quotation marks.
	if prop == prQU {
		newState := lbcQU
		if isInitialQuote(r) {
			newState = lbcQUPi
		}
		return nextLineContext(ctx, newState, prop, r), LineDontBreak
	}
	if ctx.State == lbcQU || ctx.State == lbcQUPi || ctx.State == lbcQUPiSP {
		return nextLineContext(ctx, lineEnterState(prop), prop, r), LineDontBreak
	}

	// LB20a: no break after a hyphen that starts the text.
	if ctx.Flags&lbCtxHYSot != 0 && (prop == prAL || prop == prHL) {
		return nextLineContext(ctx, lineEnterState(prop), prop, r), LineDontBreak
	}

	// LB20: break before and after contingent breaks.
	if prop == prCB {
		return lineBreakAt(nextLineContext(ctx, lbcCB, prop, r), LineCanBreak)
	}
	if ctx.State == lbcCB {
		return lineBreakAt(nextLineContext(ctx, lineEnterState(prop), prop, r), LineCanBreak)
	}

	// LB21a: no break after HL (HY|non-East-Asian BA), except before HL.
	if ctx.State == lbcHLHY && prop != prHL {
		return nextLineContext(ctx, lineEnterState(prop), prop, r), LineDontBreak
	}
	if ctx.State == lbcHL && (prop == prHY || (prop == prBA && !isEastAsianFWH(r))) {
		// LB21 glues the hyphen, LB21a then glues what follows it.
		return LineContext{State: lbcHLHY, Flags: ctx.Flags}, LineDontBreak
	}

	// LB30: no break between letters or digits and opposite-facing narrow
	// parentheses.
	if (ctx.State == lbcAL || ctx.State == lbcHL || ctx.State == lbcNU || ctx.State == lbcExtPicCn) && prop == prOP {
		if !isEastAsianFWH(r) {
			return nextLineContext(ctx, lbcOP, prop, r), LineDontBreak
		}
	}
	if ctx.State == lbcCP && ctx.Flags&lbCtxCPeaFWH == 0 {
		if prop == prAL || prop == prHL || prop == prNU {
			return nextLineContext(ctx, lineEnterState(prop), prop, r), LineDontBreak
		}
	}

	// LB30a: break between regional indicator pairs, not within them.
	if prop == prRI {
		if ctx.State == lbcRIOdd {
			return nextLineContext(ctx, lbcRIEven, prop, r), LineDontBreak
		}
		return lineBreakAt(nextLineContext(ctx, lbcRIOdd, prop, r), LineCanBreak)
	}

	// LB30b: an unassigned pictograph bonds with a following emoji modifier.
	// Assigned emoji bases are class EB and covered by the pair table.
	if ctx.State == lbcExtPicCn && prop == prEM {
		return nextLineContext(ctx, lbcEM, prop, r), LineDontBreak
	}

	// Everything left is a plain two-class decision: LB21 through LB31 via
	// the pair table.
	bc := linePairClass(ctx.State)
	ac := pairClass(prop)
	decision := LineCanBreak
	if bc >= 0 && ac >= 0 && pairTable[bc][ac] == pbNoBreak {
		decision = LineDontBreak
	}
	newState := lineEnterState(prop)
	if prop == prAL && isExtendedPictographic(r) && isUnassigned(r) {
		newState = lbcExtPicCn
	}
	newCtx := nextLineContext(ctx, newState, prop, r)
	if prop == prHY && ctx.State == lbcAny {
		newCtx.Flags |= lbCtxHYSot
	}
	if decision == LineDontBreak {
		return newCtx, LineDontBreak
	}
	return lineBreakAt(newCtx, LineCanBreak)
}

// lineStateSpaceLike reports whether the state represents a sequence ending
// in spaces, after which LB18 permits a break. Spaces extending an initial
// quotation mark are not included: LB15 keeps those glued to what follows.
func lineStateSpaceLike(state int) bool {
	return state == lbcSP || state == lbcB2SP || state == lbcCLCP || state == lbcZWSP
}

// lineBreakAt finalizes a break decision: the start-of-text context ends at
// the first break.
func lineBreakAt(ctx LineContext, breakType int) (LineContext, int) {
	ctx.Flags &^= lbCtxSot | lbCtxQUPiSP | lbCtxAfterQUPi
	return ctx, breakType
}

// nextLineContext advances the context past r, updating the flags the
// context-sensitive rules feed on.
func nextLineContext(ctx LineContext, newState, prop int, r rune) LineContext {
	newCtx := LineContext{State: newState, Flags: ctx.Flags}
	newCtx.Flags &^= lbCtxAfterQUPi | lbCtxQUPiSP | lbCtxHYSot
	// The (QU_Pi SP*)+ chain for LB15 only starts at the very beginning of
	// the text; anything else breaks it.
	if prop == prQU && isInitialQuote(r) &&
		(ctx.State == lbcAny || ctx.State == lbcQUPi || ctx.State == lbcQUPiSP) {
		newCtx.Flags |= lbCtxAfterQUPi
	}
	if prop == prSP && ctx.Flags&(lbCtxAfterQUPi|lbCtxQUPiSP) != 0 {
		newCtx.Flags |= lbCtxAfterQUPi | lbCtxQUPiSP
	}
	if prop == prCP {
		if isEastAsianFWH(r) {
			newCtx.Flags |= lbCtxCPeaFWH
		} else {
			newCtx.Flags &^= lbCtxCPeaFWH
		}
	}
	return newCtx
}

// lineEnterState maps a resolved class to its base state.
func lineEnterState(prop int) int {
	switch prop {
	case prBK:
		return lbcBK
	case prCR:
		return lbcCR
	case prLF:
		return lbcLF
	case prNL:
		return lbcNL
	case prSP:
		return lbcSP
	case prZW:
		return lbcZW
	case prWJ:
		return lbcWJ
	case prGL:
		return lbcGL
	case prOP:
		return lbcOP
	case prQU:
		return lbcQU
	case prCL:
		return lbcCL
	case prCP:
		return lbcCP
	case prEX:
		return lbcEX
	case prIS:
		return lbcIS
	case prSY:
		return lbcSY
	case prNU:
		return lbcNU
	case prPR:
		return lbcPR
	case prPO:
		return lbcPO
	case prAL:
		return lbcAL
	case prHL:
		return lbcHL
	case prID:
		return lbcID
	case prIN:
		return lbcIN
	case prHY:
		return lbcHY
	case prBA:
		return lbcBA
	case prBB:
		return lbcBB
	case prB2:
		return lbcB2
	case prCB:
		return lbcCB
	case prJL:
		return lbcJL
	case prJV:
		return lbcJV
	case prJT:
		return lbcJT
	case prH2:
		return lbcH2
	case prH3:
		return lbcH3
	case prEB:
		return lbcEB
	case prEM:
		return lbcEM
	case prRI:
		return lbcRIOdd
	case prCM:
		return lbcCM
	case prNS:
		return lbcNS
	}
	return lbcAL
}

// linePairClass maps a base state to its pair table row, or -1 for states the
// cascade fully consumes.
func linePairClass(state int) int {
	switch state {
	case lbcOP, lbcOPSP:
		return clOP
	case lbcCL:
		return clCL
	case lbcCP:
		return clCP
	case lbcQU, lbcQUPi:
		return clQU
	case lbcGL:
		return clGL
	case lbcEX:
		return clEX
	case lbcSY:
		return clSY
	case lbcIS:
		return clIS
	case lbcNU:
		return clNU
	case lbcPR:
		return clPR
	case lbcPO:
		return clPO
	case lbcAL, lbcAny, lbcExtPicCn:
		return clAL
	case lbcHL:
		return clHL
	case lbcHLHY:
		return clHY
	case lbcID:
		return clID
	case lbcIN:
		return clIN
	case lbcHY:
		return clHY
	case lbcBA:
		return clBA
	case lbcBB:
		return clBB
	case lbcB2:
		return clB2
	case lbcCB:
		return clCB
	case lbcJL:
		return clJL
	case lbcJV:
		return clJV
	case lbcJT:
		return clJT
	case lbcH2:
		return clH2
	case lbcH3:
		return clH3
	case lbcEB:
		return clEB
	case lbcEM:
		return clEM
	case lbcRIOdd, lbcRIEven:
		return clRI
	case lbcCM:
		return clCM
	case lbcNS:
		return clNS
	}
	return -1
}

// nextLineProperty resolves the class of the next code point in the
// remainder, or -1 at the end of the text.
func nextLineProperty(b []byte, str string, t Tailoring) int {
	if len(b) > 0 {
		r, _ := utf8.DecodeRune(b)
		return resolveLineProperty(r, t)
	}
	if len(str) > 0 {
		r, _ := utf8.DecodeRuneInString(str)
		return resolveLineProperty(r, t)
	}
	return -1
}
