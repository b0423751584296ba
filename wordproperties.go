package unisegp

// wordBreakCodePoints maps non-ASCII code point ranges to their Word_Break
// class (UAX #29, WordBreakProperty.txt). ASCII is handled by the fast path
// in [propertyWords]. Southeast Asian scripts that require dictionary
// segmentation (Thai, Lao, Khmer, Myanmar letters) deliberately carry no
// class, matching the property file.
//
// Regenerate with internal/gen.
var wordBreakCodePoints = [][3]int{
	{0x0085, 0x0085, prNewline},
	{0x00AA, 0x00AA, prALetter},
	{0x00AD, 0x00AD, prFormat},
	{0x00B5, 0x00B5, prALetter},
	{0x00B7, 0x00B7, prMidLetter},
	{0x00BA, 0x00BA, prALetter},
	{0x00C0, 0x00D6, prALetter},
	{0x00D8, 0x00F6, prALetter},
	{0x00F8, 0x02FF, prALetter},
	{0x0300, 0x036F, prExtend},
	{0x0370, 0x0373, prALetter},
	{0x0376, 0x0377, prALetter},
	{0x037A, 0x037D, prALetter},
	{0x037E, 0x037E, prMidNum},
	{0x037F, 0x037F, prALetter},
	{0x0386, 0x0386, prALetter},
	{0x0387, 0x0387, prMidLetter},
	{0x0388, 0x03F5, prALetter},
	{0x03F7, 0x0481, prALetter},
	{0x0483, 0x0489, prExtend},
	{0x048A, 0x052F, prALetter},
	{0x0531, 0x0556, prALetter},
	{0x0559, 0x055C, prALetter},
	{0x055E, 0x055E, prALetter},
	{0x0560, 0x0588, prALetter},
	{0x0591, 0x05BD, prExtend},
	{0x05BF, 0x05BF, prExtend},
	{0x05C1, 0x05C2, prExtend},
	{0x05C4, 0x05C5, prExtend},
	{0x05C7, 0x05C7, prExtend},
	{0x05D0, 0x05EA, prHebrewLetter},
	{0x05EF, 0x05F2, prHebrewLetter},
	{0x05F3, 0x05F3, prALetter},
	{0x05F4, 0x05F4, prMidLetter},
	{0x0600, 0x0605, prFormat},
	{0x060C, 0x060D, prMidNum},
	{0x0610, 0x061A, prExtend},
	{0x061C, 0x061C, prFormat},
	{0x0620, 0x064A, prALetter},
	{0x064B, 0x065F, prExtend},
	{0x0660, 0x0669, prNumeric},
	{0x066B, 0x066B, prMidNum},
	{0x066C, 0x066C, prNumeric},
	{0x066E, 0x066F, prALetter},
	{0x0670, 0x0670, prExtend},
	{0x0671, 0x06D3, prALetter},
	{0x06D5, 0x06D5, prALetter},
	{0x06D6, 0x06DC, prExtend},
	{0x06DD, 0x06DD, prFormat},
	{0x06DF, 0x06E4, prExtend},
	{0x06E5, 0x06E6, prALetter},
	{0x06E7, 0x06E8, prExtend},
	{0x06EA, 0x06ED, prExtend},
	{0x06EE, 0x06EF, prALetter},
	{0x06F0, 0x06F9, prNumeric},
	{0x06FA, 0x06FF, prALetter},
	{0x070F, 0x070F, prFormat},
	{0x0710, 0x0710, prALetter},
	{0x0711, 0x0711, prExtend},
	{0x0712, 0x072F, prALetter},
	{0x0730, 0x074A, prExtend},
	{0x074D, 0x07A5, prALetter},
	{0x07A6, 0x07B0, prExtend},
	{0x07B1, 0x07B1, prALetter},
	{0x07C0, 0x07C9, prNumeric},
	{0x07CA, 0x07EA, prALetter},
	{0x07EB, 0x07F3, prExtend},
	{0x07F4, 0x07F5, prALetter},
	{0x07F8, 0x07F8, prMidNum},
	{0x07FA, 0x07FA, prALetter},
	{0x0800, 0x0815, prALetter},
	{0x0816, 0x0819, prExtend},
	{0x081A, 0x081A, prALetter},
	{0x081B, 0x0823, prExtend},
	{0x0824, 0x0824, prALetter},
	{0x0825, 0x0827, prExtend},
	{0x0828, 0x0828, prALetter},
	{0x0829, 0x082D, prExtend},
	{0x0840, 0x0858, prALetter},
	{0x0859, 0x085B, prExtend},
	{0x08A0, 0x08C9, prALetter},
	{0x08CA, 0x08E1, prExtend},
	{0x08E2, 0x08E2, prFormat},
	{0x08E3, 0x0903, prExtend},
	{0x0904, 0x0939, prALetter},
	{0x093A, 0x093C, prExtend},
	{0x093D, 0x093D, prALetter},
	{0x093E, 0x094F, prExtend},
	{0x0950, 0x0950, prALetter},
	{0x0951, 0x0957, prExtend},
	{0x0958, 0x0961, prALetter},
	{0x0962, 0x0963, prExtend},
	{0x0966, 0x096F, prNumeric},
	{0x0971, 0x0980, prALetter},
	{0x0981, 0x0983, prExtend},
	{0x0985, 0x098C, prALetter},
	{0x098F, 0x0990, prALetter},
	{0x0993, 0x09B9, prALetter},
	{0x09BC, 0x09BC, prExtend},
	{0x09BD, 0x09BD, prALetter},
	{0x09BE, 0x09CD, prExtend},
	{0x09CE, 0x09CE, prALetter},
	{0x09D7, 0x09D7, prExtend},
	{0x09DC, 0x09E1, prALetter},
	{0x09E2, 0x09E3, prExtend},
	{0x09E6, 0x09EF, prNumeric},
	{0x09F0, 0x09F1, prALetter},
	{0x0A66, 0x0A6F, prNumeric},
	{0x0AE6, 0x0AEF, prNumeric},
	{0x0B66, 0x0B6F, prNumeric},
	{0x0C66, 0x0C6F, prNumeric},
	{0x0CE6, 0x0CEF, prNumeric},
	{0x0D66, 0x0D6F, prNumeric},
	{0x0E31, 0x0E31, prExtend},
	{0x0E34, 0x0E3A, prExtend},
	{0x0E47, 0x0E4E, prExtend},
	{0x0E50, 0x0E59, prNumeric},
	{0x1100, 0x11FF, prALetter},
	{0x1680, 0x1680, prWSegSpace},
	{0x16A0, 0x16EA, prALetter},
	{0x1E00, 0x1F15, prALetter},
	{0x1F18, 0x1F1D, prALetter},
	{0x1F20, 0x1F45, prALetter},
	{0x1F48, 0x1F4D, prALetter},
	{0x1F50, 0x1FBC, prALetter},
	{0x1FBE, 0x1FBE, prALetter},
	{0x1FC2, 0x1FCC, prALetter},
	{0x1FD0, 0x1FDB, prALetter},
	{0x1FE0, 0x1FEC, prALetter},
	{0x1FF2, 0x1FFC, prALetter},
	{0x2000, 0x2006, prWSegSpace},
	{0x2008, 0x200A, prWSegSpace},
	{0x200C, 0x200C, prExtend},
	{0x200D, 0x200D, prZWJ},
	{0x200E, 0x200F, prFormat},
	{0x2019, 0x2019, prMidNumLet},
	{0x2024, 0x2024, prMidNumLet},
	{0x2027, 0x2027, prMidLetter},
	{0x2028, 0x2029, prNewline},
	{0x202A, 0x202E, prFormat},
	{0x202F, 0x202F, prExtendNumLet},
	{0x203F, 0x2040, prExtendNumLet},
	{0x2044, 0x2044, prMidNum},
	{0x2054, 0x2054, prExtendNumLet},
	{0x205F, 0x205F, prWSegSpace},
	{0x2060, 0x2064, prFormat},
	{0x206A, 0x206F, prFormat},
	{0x2071, 0x2071, prALetter},
	{0x207F, 0x207F, prALetter},
	{0x2090, 0x209C, prALetter},
	{0x20D0, 0x20F0, prExtend},
	{0x2C00, 0x2CE4, prALetter},
	{0x2CEB, 0x2CEE, prALetter},
	{0x2CEF, 0x2CF1, prExtend},
	{0x2CF2, 0x2CF3, prALetter},
	{0x2D00, 0x2D25, prALetter},
	{0x2D27, 0x2D27, prALetter},
	{0x2D2D, 0x2D2D, prALetter},
	{0x2D7F, 0x2D7F, prExtend},
	{0x2DE0, 0x2DFF, prExtend},
	{0x3000, 0x3000, prWSegSpace},
	{0x3005, 0x3005, prALetter},
	{0x302A, 0x302F, prExtend},
	{0x3031, 0x3035, prKatakana},
	{0x3099, 0x309A, prExtend},
	{0x309B, 0x309C, prKatakana},
	{0x30A0, 0x30FA, prKatakana},
	{0x30FC, 0x30FF, prKatakana},
	{0x31F0, 0x31FF, prKatakana},
	{0x32D0, 0x32FE, prKatakana},
	{0x3300, 0x3357, prKatakana},
	{0xA640, 0xA66E, prALetter},
	{0xA66F, 0xA672, prExtend},
	{0xA674, 0xA67D, prExtend},
	{0xA67F, 0xA69D, prALetter},
	{0xA69E, 0xA69F, prExtend},
	{0xA960, 0xA97C, prALetter},
	{0xAC00, 0xD7A3, prALetter},
	{0xD7B0, 0xD7C6, prALetter},
	{0xD7CB, 0xD7FB, prALetter},
	{0xFB00, 0xFB06, prALetter},
	{0xFB13, 0xFB17, prALetter},
	{0xFB1D, 0xFB1D, prHebrewLetter},
	{0xFB1E, 0xFB1E, prExtend},
	{0xFB1F, 0xFB28, prHebrewLetter},
	{0xFB2A, 0xFB36, prHebrewLetter},
	{0xFB38, 0xFB3C, prHebrewLetter},
	{0xFB3E, 0xFB3E, prHebrewLetter},
	{0xFB40, 0xFB41, prHebrewLetter},
	{0xFB43, 0xFB44, prHebrewLetter},
	{0xFB46, 0xFB4F, prHebrewLetter},
	{0xFE00, 0xFE0F, prExtend},
	{0xFE10, 0xFE10, prMidNum},
	{0xFE13, 0xFE13, prMidLetter},
	{0xFE14, 0xFE14, prMidNum},
	{0xFE20, 0xFE2F, prExtend},
	{0xFE33, 0xFE34, prExtendNumLet},
	{0xFE4D, 0xFE4F, prExtendNumLet},
	{0xFE50, 0xFE50, prMidNum},
	{0xFE52, 0xFE52, prMidNumLet},
	{0xFE54, 0xFE54, prMidNum},
	{0xFE55, 0xFE55, prMidLetter},
	{0xFEFF, 0xFEFF, prFormat},
	{0xFF07, 0xFF07, prMidNumLet},
	{0xFF0C, 0xFF0C, prMidNum},
	{0xFF0E, 0xFF0E, prMidNumLet},
	{0xFF10, 0xFF19, prNumeric},
	{0xFF1A, 0xFF1A, prMidLetter},
	{0xFF1B, 0xFF1B, prMidNum},
	{0xFF21, 0xFF3A, prALetter},
	{0xFF3F, 0xFF3F, prExtendNumLet},
	{0xFF41, 0xFF5A, prALetter},
	{0xFF66, 0xFF9D, prKatakana},
	{0xFF9E, 0xFF9F, prExtend},
	{0xFFA0, 0xFFDC, prALetter},
	{0x1F1E6, 0x1F1FF, prRegionalIndicator},
	{0x1F3FB, 0x1F3FF, prExtend},
	{0xE0001, 0xE0001, prFormat},
	{0xE0020, 0xE007F, prExtend},
	{0xE0100, 0xE01EF, prExtend},
}
