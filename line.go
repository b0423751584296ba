package unisegp

import "unicode/utf8"

// These constants define whether a given text may be broken into the next
// line. If the break is optional (LineCanBreak), you may choose to break or
// not based on your own criteria, for example, if the text has reached the
// available width.
//
// These are the return values from line breaking functions like
// [FirstLineSegment], [FirstLineSegmentInString], and [Step].
const (
	LineDontBreak = iota // You may not break the line here.
	LineCanBreak         // You may or may not break the line here.
	LineMustBreak        // You must break the line here.
)

// FirstLineSegment returns the prefix of the given byte slice after which a
// line break is allowed or mandated, according to the rules of [UAX #14]
// under the default tailoring. It also returns the remainder of the byte
// slice, the type of the break after the segment (LineCanBreak or
// LineMustBreak), and the new parser state.
//
// This function can be called continuously to extract all line segments from
// a byte slice, as illustrated in the example below.
//
// If you don't know the current state, for example when calling the function
// for the first time, you must pass -1. For consecutive calls, pass the state
// and rest slice returned by the previous call.
//
// The "rest" slice is the sub-slice of the original byte slice "b" starting
// after the last byte of the identified line segment. If the length of the
// "rest" slice is 0, the entire byte slice "b" has been processed. The
// "segment" byte slice is the sub-slice of the input slice containing the
// identified line segment.
//
// Given an empty byte slice "b", the function returns nil values.
//
// Note that in accordance with [UAX #14 LB3], the last segment of the text
// always reports a mandatory break after it. You can use
// [HasTrailingLineBreak] on the input to tell whether that break corresponds
// to an actual trailing line break character.
//
// [UAX #14]: https://www.unicode.org/reports/tr14/
// [UAX #14 LB3]: https://www.unicode.org/reports/tr14/#Algorithm
func FirstLineSegment(b []byte, state int) (segment, rest []byte, breakType int, newState int) {
	return FirstLineSegmentTailored(b, TailoringDefault, state)
}

// FirstLineSegmentTailored is like [FirstLineSegment] but resolves the
// ambiguous line break classes according to the given tailoring.
func FirstLineSegmentTailored(b []byte, t Tailoring, state int) (segment, rest []byte, breakType int, newState int) {
	// An empty byte slice returns nothing.
	if len(b) == 0 {
		return nil, nil, LineDontBreak, -1
	}

	// Extract the first rune.
	r, length := utf8.DecodeRune(b)
	if len(b) <= length { // LB3: break at the end of the text.
		return b, nil, LineMustBreak, packLineContext(LineContext{State: lbcAny})
	}

	// Process the first rune to establish the state.
	ctx := unpackLineContext(state)
	ctx, _ = transitionLineBreakContext(ctx, r, t, b[length:], "")

	// Transition until we find a break opportunity.
	for {
		r, l := utf8.DecodeRune(b[length:])
		newCtx, lineBreak := transitionLineBreakContext(ctx, r, t, b[length+l:], "")

		if lineBreak != LineDontBreak {
			return b[:length], b[length:], lineBreak, packLineContext(ctx)
		}

		ctx = newCtx
		length += l

		if len(b) <= length { // LB3 again.
			return b, nil, LineMustBreak, packLineContext(ctx)
		}
	}
}

// FirstLineSegmentInString is like [FirstLineSegment] but its input and
// outputs are strings.
func FirstLineSegmentInString(str string, state int) (segment, rest string, breakType int, newState int) {
	return FirstLineSegmentInStringTailored(str, TailoringDefault, state)
}

// FirstLineSegmentInStringTailored is like [FirstLineSegmentTailored] but its
// input and outputs are strings.
func FirstLineSegmentInStringTailored(str string, t Tailoring, state int) (segment, rest string, breakType int, newState int) {
	// An empty string returns nothing.
	if len(str) == 0 {
		return "", "", LineDontBreak, -1
	}

	// Extract the first rune.
	r, length := utf8.DecodeRuneInString(str)
	if len(str) <= length { // LB3: break at the end of the text.
		return str, "", LineMustBreak, packLineContext(LineContext{State: lbcAny})
	}

	// Process the first rune to establish the state.
	ctx := unpackLineContext(state)
	ctx, _ = transitionLineBreakContext(ctx, r, t, nil, str[length:])

	// Transition until we find a break opportunity.
	for {
		r, l := utf8.DecodeRuneInString(str[length:])
		newCtx, lineBreak := transitionLineBreakContext(ctx, r, t, nil, str[length+l:])

		if lineBreak != LineDontBreak {
			return str[:length], str[length:], lineBreak, packLineContext(ctx)
		}

		ctx = newCtx
		length += l

		if len(str) <= length { // LB3 again.
			return str, "", LineMustBreak, packLineContext(ctx)
		}
	}
}

// HasTrailingLineBreak returns true if the last rune in the given byte slice
// is one of the hard line break code points as defined in LB4 and LB5 of
// [UAX #14].
//
// [UAX #14]: https://www.unicode.org/reports/tr14/
func HasTrailingLineBreak(b []byte) bool {
	r, _ := utf8.DecodeLastRune(b)
	prop := propertyLineBreak(r)
	return prop == prBK || prop == prCR || prop == prLF || prop == prNL
}

// HasTrailingLineBreakInString is like [HasTrailingLineBreak] but its input
// is a string.
func HasTrailingLineBreakInString(str string) bool {
	r, _ := utf8.DecodeLastRuneInString(str)
	prop := propertyLineBreak(r)
	return prop == prBK || prop == prCR || prop == prLF || prop == prNL
}
