package unisegp

// extendedPictographic maps code point ranges carrying the
// Extended_Pictographic property (UTS #51 emoji-data.txt). The property
// deliberately covers unassigned code points reserved for future emoji, which
// is why several ranges run past the currently assigned blocks.
//
// Regenerate with internal/gen.
var extendedPictographic = [][3]int{
	{0x00A9, 0x00A9, prExtendedPictographic},
	{0x00AE, 0x00AE, prExtendedPictographic},
	{0x203C, 0x203C, prExtendedPictographic},
	{0x2049, 0x2049, prExtendedPictographic},
	{0x2122, 0x2122, prExtendedPictographic},
	{0x2139, 0x2139, prExtendedPictographic},
	{0x2194, 0x2199, prExtendedPictographic},
	{0x21A9, 0x21AA, prExtendedPictographic},
	{0x231A, 0x231B, prExtendedPictographic},
	{0x2328, 0x2328, prExtendedPictographic},
	{0x2388, 0x2388, prExtendedPictographic},
	{0x23CF, 0x23CF, prExtendedPictographic},
	{0x23E9, 0x23F3, prExtendedPictographic},
	{0x23F8, 0x23FA, prExtendedPictographic},
	{0x24C2, 0x24C2, prExtendedPictographic},
	{0x25AA, 0x25AB, prExtendedPictographic},
	{0x25B6, 0x25B6, prExtendedPictographic},
	{0x25C0, 0x25C0, prExtendedPictographic},
	{0x25FB, 0x25FE, prExtendedPictographic},
	{0x2600, 0x2605, prExtendedPictographic},
	{0x2607, 0x2612, prExtendedPictographic},
	{0x2614, 0x2685, prExtendedPictographic},
	{0x2690, 0x2705, prExtendedPictographic},
	{0x2708, 0x2712, prExtendedPictographic},
	{0x2714, 0x2714, prExtendedPictographic},
	{0x2716, 0x2716, prExtendedPictographic},
	{0x271D, 0x271D, prExtendedPictographic},
	{0x2721, 0x2721, prExtendedPictographic},
	{0x2728, 0x2728, prExtendedPictographic},
	{0x2733, 0x2734, prExtendedPictographic},
	{0x2744, 0x2744, prExtendedPictographic},
	{0x2747, 0x2747, prExtendedPictographic},
	{0x274C, 0x274C, prExtendedPictographic},
	{0x274E, 0x274E, prExtendedPictographic},
	{0x2753, 0x2755, prExtendedPictographic},
	{0x2757, 0x2757, prExtendedPictographic},
	{0x2763, 0x2767, prExtendedPictographic},
	{0x2795, 0x2797, prExtendedPictographic},
	{0x27A1, 0x27A1, prExtendedPictographic},
	{0x27B0, 0x27B0, prExtendedPictographic},
	{0x27BF, 0x27BF, prExtendedPictographic},
	{0x2934, 0x2935, prExtendedPictographic},
	{0x2B05, 0x2B07, prExtendedPictographic},
	{0x2B1B, 0x2B1C, prExtendedPictographic},
	{0x2B50, 0x2B50, prExtendedPictographic},
	{0x2B55, 0x2B55, prExtendedPictographic},
	{0x3030, 0x3030, prExtendedPictographic},
	{0x303D, 0x303D, prExtendedPictographic},
	{0x3297, 0x3297, prExtendedPictographic},
	{0x3299, 0x3299, prExtendedPictographic},
	{0x1F000, 0x1F0FF, prExtendedPictographic},
	{0x1F10D, 0x1F10F, prExtendedPictographic},
	{0x1F12F, 0x1F12F, prExtendedPictographic},
	{0x1F16C, 0x1F171, prExtendedPictographic},
	{0x1F17E, 0x1F17F, prExtendedPictographic},
	{0x1F18E, 0x1F18E, prExtendedPictographic},
	{0x1F191, 0x1F19A, prExtendedPictographic},
	{0x1F1AD, 0x1F1E5, prExtendedPictographic},
	{0x1F201, 0x1F20F, prExtendedPictographic},
	{0x1F21A, 0x1F21A, prExtendedPictographic},
	{0x1F22F, 0x1F22F, prExtendedPictographic},
	{0x1F232, 0x1F23A, prExtendedPictographic},
	{0x1F23C, 0x1F23F, prExtendedPictographic},
	{0x1F249, 0x1F3FA, prExtendedPictographic},
	{0x1F400, 0x1F53D, prExtendedPictographic},
	{0x1F546, 0x1F64F, prExtendedPictographic},
	{0x1F680, 0x1F6FF, prExtendedPictographic},
	{0x1F774, 0x1F77F, prExtendedPictographic},
	{0x1F7D5, 0x1F7FF, prExtendedPictographic},
	{0x1F80C, 0x1F80F, prExtendedPictographic},
	{0x1F848, 0x1F84F, prExtendedPictographic},
	{0x1F85A, 0x1F85F, prExtendedPictographic},
	{0x1F888, 0x1F88F, prExtendedPictographic},
	{0x1F8AE, 0x1F8FF, prExtendedPictographic},
	{0x1F90C, 0x1F93A, prExtendedPictographic},
	{0x1F93C, 0x1F945, prExtendedPictographic},
	{0x1F947, 0x1FAFF, prExtendedPictographic},
	{0x1FC00, 0x1FFFD, prExtendedPictographic},
}

// emojiPresentation maps code point ranges whose default presentation is
// emoji (width 2 in monospace contexts) rather than text. A subset of
// Extended_Pictographic; VS15/VS16 override it either way.
//
// Regenerate with internal/gen.
var emojiPresentation = [][3]int{
	{0x231A, 0x231B, prExtendedPictographic},
	{0x23E9, 0x23EC, prExtendedPictographic},
	{0x23F0, 0x23F0, prExtendedPictographic},
	{0x23F3, 0x23F3, prExtendedPictographic},
	{0x25FD, 0x25FE, prExtendedPictographic},
	{0x2614, 0x2615, prExtendedPictographic},
	{0x2648, 0x2653, prExtendedPictographic},
	{0x267F, 0x267F, prExtendedPictographic},
	{0x2693, 0x2693, prExtendedPictographic},
	{0x26A1, 0x26A1, prExtendedPictographic},
	{0x26AA, 0x26AB, prExtendedPictographic},
	{0x26BD, 0x26BE, prExtendedPictographic},
	{0x26C4, 0x26C5, prExtendedPictographic},
	{0x26CE, 0x26CE, prExtendedPictographic},
	{0x26D4, 0x26D4, prExtendedPictographic},
	{0x26EA, 0x26EA, prExtendedPictographic},
	{0x26F2, 0x26F3, prExtendedPictographic},
	{0x26F5, 0x26F5, prExtendedPictographic},
	{0x26FA, 0x26FA, prExtendedPictographic},
	{0x26FD, 0x26FD, prExtendedPictographic},
	{0x2705, 0x2705, prExtendedPictographic},
	{0x270A, 0x270B, prExtendedPictographic},
	{0x2728, 0x2728, prExtendedPictographic},
	{0x274C, 0x274C, prExtendedPictographic},
	{0x274E, 0x274E, prExtendedPictographic},
	{0x2753, 0x2755, prExtendedPictographic},
	{0x2757, 0x2757, prExtendedPictographic},
	{0x2795, 0x2797, prExtendedPictographic},
	{0x27B0, 0x27B0, prExtendedPictographic},
	{0x27BF, 0x27BF, prExtendedPictographic},
	{0x2B1B, 0x2B1C, prExtendedPictographic},
	{0x2B50, 0x2B50, prExtendedPictographic},
	{0x2B55, 0x2B55, prExtendedPictographic},
	{0x1F004, 0x1F004, prExtendedPictographic},
	{0x1F0CF, 0x1F0CF, prExtendedPictographic},
	{0x1F18E, 0x1F18E, prExtendedPictographic},
	{0x1F191, 0x1F19A, prExtendedPictographic},
	{0x1F1E6, 0x1F1FF, prExtendedPictographic},
	{0x1F201, 0x1F201, prExtendedPictographic},
	{0x1F21A, 0x1F21A, prExtendedPictographic},
	{0x1F22F, 0x1F22F, prExtendedPictographic},
	{0x1F232, 0x1F236, prExtendedPictographic},
	{0x1F238, 0x1F23A, prExtendedPictographic},
	{0x1F250, 0x1F251, prExtendedPictographic},
	{0x1F300, 0x1F320, prExtendedPictographic},
	{0x1F32D, 0x1F335, prExtendedPictographic},
	{0x1F337, 0x1F37C, prExtendedPictographic},
	{0x1F37E, 0x1F393, prExtendedPictographic},
	{0x1F3A0, 0x1F3CA, prExtendedPictographic},
	{0x1F3CF, 0x1F3D3, prExtendedPictographic},
	{0x1F3E0, 0x1F3F0, prExtendedPictographic},
	{0x1F3F4, 0x1F3F4, prExtendedPictographic},
	{0x1F3F8, 0x1F43E, prExtendedPictographic},
	{0x1F440, 0x1F440, prExtendedPictographic},
	{0x1F442, 0x1F4FC, prExtendedPictographic},
	{0x1F4FF, 0x1F53D, prExtendedPictographic},
	{0x1F54B, 0x1F54E, prExtendedPictographic},
	{0x1F550, 0x1F567, prExtendedPictographic},
	{0x1F57A, 0x1F57A, prExtendedPictographic},
	{0x1F595, 0x1F596, prExtendedPictographic},
	{0x1F5A4, 0x1F5A4, prExtendedPictographic},
	{0x1F5FB, 0x1F64F, prExtendedPictographic},
	{0x1F680, 0x1F6C5, prExtendedPictographic},
	{0x1F6CC, 0x1F6CC, prExtendedPictographic},
	{0x1F6D0, 0x1F6D2, prExtendedPictographic},
	{0x1F6D5, 0x1F6DF, prExtendedPictographic},
	{0x1F6EB, 0x1F6EC, prExtendedPictographic},
	{0x1F6F4, 0x1F6FC, prExtendedPictographic},
	{0x1F7E0, 0x1F7EB, prExtendedPictographic},
	{0x1F7F0, 0x1F7F0, prExtendedPictographic},
	{0x1F90C, 0x1F93A, prExtendedPictographic},
	{0x1F93C, 0x1F945, prExtendedPictographic},
	{0x1F947, 0x1F9FF, prExtendedPictographic},
	{0x1FA70, 0x1FAFF, prExtendedPictographic},
}

// hasEmojiPresentation reports whether the code point renders as emoji by
// default.
func hasEmojiPresentation(r rune) bool {
	if r < 0x231a {
		return false
	}
	return propertySearch(emojiPresentation, r) != prAny
}
