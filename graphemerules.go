package unisegp

// The states of the grapheme cluster parser.
const (
	grAny = iota
	grCR
	grControlLF
	grL
	grLVV
	grLVTT
	grPrepend
	grExtPic
	grExtPicZWJ
	grRIOdd
	grRIEven
)

// GB9c conjunct tracking, stored in the upper bits of the state next to the
// base state above. The conjunct sequence advances independently of the base
// rules because InCB values overlap several grapheme classes.
const (
	grInCBNone      = 0x000
	grInCBConsonant = 0x100 // seen InCB=Consonant
	grInCBExtend    = 0x200 // consonant followed by InCB=Extend, no linker yet
	grInCBLinker    = 0x300 // consonant followed by a sequence containing a linker
	grInCBMask      = 0xf00
)

// transitionGraphemeState determines the new state of the grapheme cluster
// parser given the current state and the next code point. It also returns the
// code point's grapheme property and whether a cluster boundary was detected
// between the previous code point and this one.
func transitionGraphemeState(state int, r rune) (newState, prop int, boundary bool) {
	prop = propertyGraphemes(r)

	incbState := grInCBNone
	if state < 0 {
		state = grAny
	} else {
		incbState = state & grInCBMask
		state &= 0xff
	}

	newState, boundary = applyGraphemeRules(state, prop)

	// GB9c: a consonant attaches to a preceding consonant-plus-linker
	// sequence, forming an Indic conjunct cluster.
	switch propertyInCB(r) {
	case incbConsonant:
		if incbState == grInCBLinker {
			boundary = false
		}
		newState |= grInCBConsonant
	case incbLinker:
		if incbState != grInCBNone {
			newState |= grInCBLinker
		}
	case incbExtend:
		switch incbState {
		case grInCBConsonant, grInCBExtend:
			newState |= grInCBExtend
		case grInCBLinker:
			newState |= grInCBLinker
		}
	}

	return
}

// applyGraphemeRules runs the UAX #29 grapheme boundary rules in order. Each
// rule either decides the boundary and the new base state or passes the code
// point on to the next rule. GB999 breaks everywhere no earlier rule applied.
func applyGraphemeRules(state, prop int) (int, bool) {
	// GB3: CR x LF.
	if state == grCR && prop == prLF {
		return grControlLF, false
	}

	// GB4: break after controls.
	if state == grCR || state == grControlLF {
		return enterGraphemeState(prop), true
	}

	// GB5: break before controls.
	switch prop {
	case prCR:
		return grCR, true
	case prLF, prControl:
		return grControlLF, true
	}

	// GB9b: no break after Prepend.
	if state == grPrepend {
		return enterGraphemeState(prop), false
	}

	// GB6, GB7, GB8: keep Hangul syllables together.
	switch state {
	case grL:
		switch prop {
		case prL:
			return grL, false
		case prV, prLV:
			return grLVV, false
		case prLVT:
			return grLVTT, false
		}
	case grLVV:
		switch prop {
		case prV:
			return grLVV, false
		case prT:
			return grLVTT, false
		}
	case grLVTT:
		if prop == prT {
			return grLVTT, false
		}
	}

	// GB9: no break before Extend and ZWJ. An emoji run survives so GB11 can
	// see the ZWJ, everything else collapses to grAny.
	if prop == prExtend || prop == prZWJ {
		if state == grExtPic {
			if prop == prZWJ {
				return grExtPicZWJ, false
			}
			return grExtPic, false
		}
		return grAny, false
	}

	// GB9a: no break before SpacingMark.
	if prop == prSpacingMark {
		return grAny, false
	}

	// GB11: emoji joined by ZWJ stay in one cluster.
	if state == grExtPicZWJ && prop == prExtendedPictographic {
		return grExtPic, false
	}

	// GB12, GB13: regional indicators join in pairs.
	if prop == prRegionalIndicator {
		if state == grRIOdd {
			return grRIEven, false
		}
		return grRIOdd, true
	}

	// GB999.
	return enterGraphemeState(prop), true
}

// enterGraphemeState returns the parser state for a code point that starts a
// new cluster.
func enterGraphemeState(prop int) int {
	switch prop {
	case prCR:
		return grCR
	case prLF, prControl:
		return grControlLF
	case prL:
		return grL
	case prV, prLV:
		return grLVV
	case prT, prLVT:
		return grLVTT
	case prPrepend:
		return grPrepend
	case prExtendedPictographic:
		return grExtPic
	case prRegionalIndicator:
		return grRIOdd
	}
	return grAny
}
