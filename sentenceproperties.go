package unisegp

// sentenceBreakCodePoints maps non-ASCII code point ranges to their
// Sentence_Break class (UAX #29, SentenceBreakProperty.txt). ASCII is handled
// by the fast path in [propertySentences].
//
// Regenerate with internal/gen.
var sentenceBreakCodePoints = [][3]int{
	{0x0085, 0x0085, prSep},
	{0x00A0, 0x00A0, prSp},
	{0x00AA, 0x00AA, prLower},
	{0x00AB, 0x00AB, prClose},
	{0x00AD, 0x00AD, prFormat},
	{0x00B5, 0x00B5, prLower},
	{0x00BA, 0x00BA, prLower},
	{0x00BB, 0x00BB, prClose},
	{0x00C0, 0x00D6, prUpper},
	{0x00D8, 0x00DE, prUpper},
	{0x00DF, 0x00F6, prLower},
	{0x00F8, 0x00FF, prLower},
	{0x0100, 0x0100, prUpper},
	{0x0101, 0x0101, prLower},
	{0x0102, 0x0102, prUpper},
	{0x0103, 0x0103, prLower},
	{0x0104, 0x0104, prUpper},
	{0x0105, 0x0105, prLower},
	{0x0106, 0x0106, prUpper},
	{0x0107, 0x0107, prLower},
	{0x0108, 0x017F, prOLetter},
	{0x0180, 0x0180, prLower},
	{0x0181, 0x0182, prUpper},
	{0x0183, 0x0183, prLower},
	{0x0184, 0x0184, prUpper},
	{0x0185, 0x0185, prLower},
	{0x0186, 0x0187, prUpper},
	{0x0188, 0x0188, prLower},
	{0x0189, 0x02FF, prOLetter},
	{0x0300, 0x036F, prExtend},
	{0x0370, 0x0370, prUpper},
	{0x0371, 0x0371, prLower},
	{0x0372, 0x0372, prUpper},
	{0x0373, 0x0373, prLower},
	{0x0376, 0x0376, prUpper},
	{0x0377, 0x0377, prLower},
	{0x037A, 0x037D, prLower},
	{0x037F, 0x037F, prUpper},
	{0x0386, 0x0386, prUpper},
	{0x0388, 0x038F, prUpper},
	{0x0390, 0x0390, prLower},
	{0x0391, 0x03A1, prUpper},
	{0x03A3, 0x03AB, prUpper},
	{0x03AC, 0x03CE, prLower},
	{0x03CF, 0x03CF, prUpper},
	{0x03D0, 0x03D1, prLower},
	{0x03D2, 0x03D4, prUpper},
	{0x03D5, 0x03D7, prLower},
	{0x03D8, 0x03EF, prOLetter},
	{0x03F0, 0x03F3, prLower},
	{0x03F4, 0x03F4, prUpper},
	{0x03F5, 0x03F5, prLower},
	{0x03F7, 0x03F7, prUpper},
	{0x03F8, 0x03F8, prLower},
	{0x03F9, 0x03FA, prUpper},
	{0x03FB, 0x03FC, prLower},
	{0x03FD, 0x042F, prUpper},
	{0x0430, 0x045F, prLower},
	{0x0460, 0x0481, prOLetter},
	{0x0483, 0x0489, prExtend},
	{0x048A, 0x04FF, prOLetter},
	{0x0500, 0x052F, prOLetter},
	{0x0531, 0x0556, prUpper},
	{0x0559, 0x0559, prOLetter},
	{0x055D, 0x055D, prSContinue},
	{0x0560, 0x0588, prLower},
	{0x0589, 0x0589, prSTerm},
	{0x0591, 0x05BD, prExtend},
	{0x05BF, 0x05BF, prExtend},
	{0x05C1, 0x05C2, prExtend},
	{0x05C4, 0x05C5, prExtend},
	{0x05C7, 0x05C7, prExtend},
	{0x05D0, 0x05EA, prOLetter},
	{0x05EF, 0x05F3, prOLetter},
	{0x0600, 0x0605, prFormat},
	{0x060C, 0x060D, prSContinue},
	{0x0610, 0x061A, prExtend},
	{0x061C, 0x061C, prFormat},
	{0x061D, 0x061F, prSTerm},
	{0x0620, 0x064A, prOLetter},
	{0x064B, 0x065F, prExtend},
	{0x0660, 0x0669, prNumeric},
	{0x066E, 0x066F, prOLetter},
	{0x0670, 0x0670, prExtend},
	{0x0671, 0x06D3, prOLetter},
	{0x06D4, 0x06D4, prSTerm},
	{0x06D5, 0x06D5, prOLetter},
	{0x06D6, 0x06DC, prExtend},
	{0x06DD, 0x06DD, prFormat},
	{0x06DF, 0x06E4, prExtend},
	{0x06E5, 0x06E6, prOLetter},
	{0x06E7, 0x06E8, prExtend},
	{0x06EA, 0x06ED, prExtend},
	{0x06EE, 0x06EF, prOLetter},
	{0x06F0, 0x06F9, prNumeric},
	{0x06FA, 0x06FF, prOLetter},
	{0x0700, 0x0702, prSTerm},
	{0x070F, 0x070F, prFormat},
	{0x0710, 0x0710, prOLetter},
	{0x0711, 0x0711, prExtend},
	{0x0712, 0x072F, prOLetter},
	{0x0730, 0x074A, prExtend},
	{0x074D, 0x07A5, prOLetter},
	{0x07A6, 0x07B0, prExtend},
	{0x07B1, 0x07B1, prOLetter},
	{0x07C0, 0x07C9, prNumeric},
	{0x07CA, 0x07EA, prOLetter},
	{0x07EB, 0x07F3, prExtend},
	{0x07F4, 0x07F5, prOLetter},
	{0x07F9, 0x07F9, prSTerm},
	{0x07FA, 0x07FA, prOLetter},
	{0x0800, 0x0815, prOLetter},
	{0x0816, 0x0819, prExtend},
	{0x0837, 0x0837, prSTerm},
	{0x0839, 0x0839, prSTerm},
	{0x083D, 0x083E, prSTerm},
	{0x08A0, 0x08C9, prOLetter},
	{0x08E3, 0x0903, prExtend},
	{0x0904, 0x0939, prOLetter},
	{0x093A, 0x093C, prExtend},
	{0x093D, 0x093D, prOLetter},
	{0x093E, 0x094F, prExtend},
	{0x0950, 0x0950, prOLetter},
	{0x0951, 0x0957, prExtend},
	{0x0958, 0x0961, prOLetter},
	{0x0962, 0x0963, prExtend},
	{0x0964, 0x0965, prSTerm},
	{0x0966, 0x096F, prNumeric},
	{0x0971, 0x0980, prOLetter},
	{0x0981, 0x0983, prExtend},
	{0x0985, 0x098C, prOLetter},
	{0x098F, 0x0990, prOLetter},
	{0x0993, 0x09B9, prOLetter},
	{0x09BC, 0x09BC, prExtend},
	{0x09BD, 0x09BD, prOLetter},
	{0x09BE, 0x09CD, prExtend},
	{0x09CE, 0x09CE, prOLetter},
	{0x09D7, 0x09D7, prExtend},
	{0x09DC, 0x09E1, prOLetter},
	{0x09E2, 0x09E3, prExtend},
	{0x09E6, 0x09EF, prNumeric},
	{0x09F0, 0x09F1, prOLetter},
	{0x0E01, 0x0E30, prOLetter},
	{0x0E31, 0x0E31, prExtend},
	{0x0E32, 0x0E33, prOLetter},
	{0x0E34, 0x0E3A, prExtend},
	{0x0E40, 0x0E46, prOLetter},
	{0x0E47, 0x0E4E, prExtend},
	{0x0E50, 0x0E59, prNumeric},
	{0x1100, 0x11FF, prOLetter},
	{0x1680, 0x1680, prSp},
	{0x17D4, 0x17D5, prSTerm},
	{0x1E00, 0x1E95, prOLetter},
	{0x1E96, 0x1E9D, prLower},
	{0x1E9E, 0x1E9E, prUpper},
	{0x1E9F, 0x1EFF, prOLetter},
	{0x1F00, 0x1F07, prLower},
	{0x1F08, 0x1F0F, prUpper},
	{0x1F10, 0x1F15, prLower},
	{0x1F18, 0x1F1D, prUpper},
	{0x1F20, 0x1F27, prLower},
	{0x1F28, 0x1F2F, prUpper},
	{0x1F30, 0x1F37, prLower},
	{0x1F38, 0x1F3F, prUpper},
	{0x1F40, 0x1F45, prLower},
	{0x1F48, 0x1F4D, prUpper},
	{0x1F50, 0x1F57, prLower},
	{0x1F59, 0x1F5F, prUpper},
	{0x1F60, 0x1F67, prLower},
	{0x1F68, 0x1F6F, prUpper},
	{0x1F70, 0x1F7D, prLower},
	{0x1F80, 0x1FFC, prOLetter},
	{0x2000, 0x200A, prSp},
	{0x200C, 0x200D, prExtend},
	{0x200E, 0x200F, prFormat},
	{0x2013, 0x2014, prSContinue},
	{0x2018, 0x201F, prClose},
	{0x2024, 0x2024, prATerm},
	{0x2028, 0x2029, prSep},
	{0x202A, 0x202E, prFormat},
	{0x202F, 0x202F, prSp},
	{0x2039, 0x203A, prClose},
	{0x203C, 0x203D, prSTerm},
	{0x2045, 0x2046, prClose},
	{0x2047, 0x2049, prSTerm},
	{0x205F, 0x205F, prSp},
	{0x2060, 0x2064, prFormat},
	{0x206A, 0x206F, prFormat},
	{0x207D, 0x207E, prClose},
	{0x208D, 0x208E, prClose},
	{0x20D0, 0x20F0, prExtend},
	{0x2329, 0x232A, prClose},
	{0x275B, 0x2760, prClose},
	{0x2768, 0x2775, prClose},
	{0x27E6, 0x27EF, prClose},
	{0x2983, 0x2998, prClose},
	{0x29D8, 0x29DB, prClose},
	{0x29FC, 0x29FD, prClose},
	{0x2E00, 0x2E0D, prClose},
	{0x2E1C, 0x2E1D, prClose},
	{0x2E20, 0x2E29, prClose},
	{0x2E2E, 0x2E2E, prSTerm},
	{0x2E3C, 0x2E3C, prSTerm},
	{0x3000, 0x3000, prSp},
	{0x3001, 0x3001, prSContinue},
	{0x3002, 0x3002, prSTerm},
	{0x3005, 0x3005, prOLetter},
	{0x3008, 0x3011, prClose},
	{0x3014, 0x301B, prClose},
	{0x301D, 0x301F, prClose},
	{0x302A, 0x302F, prExtend},
	{0x3031, 0x3035, prOLetter},
	{0x3041, 0x3096, prOLetter},
	{0x3099, 0x309A, prExtend},
	{0x309D, 0x309F, prOLetter},
	{0x30A1, 0x30FA, prOLetter},
	{0x30FC, 0x30FF, prOLetter},
	{0x3105, 0x312F, prOLetter},
	{0x31F0, 0x31FF, prOLetter},
	{0x3400, 0x4DBF, prOLetter},
	{0x4E00, 0x9FFF, prOLetter},
	{0xA000, 0xA48C, prOLetter},
	{0xA4FF, 0xA4FF, prSTerm},
	{0xAC00, 0xD7A3, prOLetter},
	{0xFB00, 0xFB06, prLower},
	{0xFB13, 0xFB17, prLower},
	{0xFB1D, 0xFB1D, prOLetter},
	{0xFB1E, 0xFB1E, prExtend},
	{0xFB1F, 0xFB28, prOLetter},
	{0xFB2A, 0xFB4F, prOLetter},
	{0xFD3E, 0xFD3F, prClose},
	{0xFE00, 0xFE0F, prExtend},
	{0xFE10, 0xFE11, prSContinue},
	{0xFE13, 0xFE13, prSContinue},
	{0xFE17, 0xFE18, prClose},
	{0xFE20, 0xFE2F, prExtend},
	{0xFE31, 0xFE32, prSContinue},
	{0xFE35, 0xFE44, prClose},
	{0xFE47, 0xFE48, prClose},
	{0xFE50, 0xFE51, prSContinue},
	{0xFE52, 0xFE52, prATerm},
	{0xFE55, 0xFE55, prSContinue},
	{0xFE56, 0xFE57, prSTerm},
	{0xFE58, 0xFE58, prSContinue},
	{0xFE59, 0xFE5E, prClose},
	{0xFE63, 0xFE63, prSContinue},
	{0xFEFF, 0xFEFF, prFormat},
	{0xFF01, 0xFF01, prSTerm},
	{0xFF08, 0xFF09, prClose},
	{0xFF0C, 0xFF0D, prSContinue},
	{0xFF0E, 0xFF0E, prATerm},
	{0xFF10, 0xFF19, prNumeric},
	{0xFF1A, 0xFF1A, prSContinue},
	{0xFF1F, 0xFF1F, prSTerm},
	{0xFF21, 0xFF3A, prUpper},
	{0xFF3B, 0xFF3B, prClose},
	{0xFF3D, 0xFF3D, prClose},
	{0xFF41, 0xFF5A, prLower},
	{0xFF5B, 0xFF5B, prClose},
	{0xFF5D, 0xFF5D, prClose},
	{0xFF5F, 0xFF60, prClose},
	{0xFF61, 0xFF61, prSTerm},
	{0xFF62, 0xFF63, prClose},
	{0xFF64, 0xFF64, prSContinue},
	{0xFF66, 0xFF9D, prOLetter},
	{0xFF9E, 0xFF9F, prExtend},
	{0xFFA0, 0xFFDC, prOLetter},
	{0xE0001, 0xE0001, prFormat},
	{0xE0020, 0xE007F, prExtend},
	{0xE0100, 0xE01EF, prExtend},
}
