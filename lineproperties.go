package unisegp

// lineBreakCodePoints maps code point ranges to their raw Line_Break class
// (UAX #14, LineBreak.txt). Letters and digits in the ASCII range are handled
// by the fast path in [propertyLineBreak]; code points missing from the table
// report prXX, which rule LB1 resolves to prAL. Precomposed Hangul syllables
// (H2, H3) are computed arithmetically and don't appear here.
//
// Regenerate with internal/gen.
var lineBreakCodePoints = [][3]int{
	{0x0000, 0x0008, prCM},
	{0x0009, 0x0009, prBA},
	{0x000A, 0x000A, prLF},
	{0x000B, 0x000C, prBK},
	{0x000D, 0x000D, prCR},
	{0x000E, 0x001F, prCM},
	{0x0020, 0x0020, prSP},
	{0x0021, 0x0021, prEX},
	{0x0022, 0x0022, prQU},
	{0x0024, 0x0024, prPR},
	{0x0025, 0x0025, prPO},
	{0x0027, 0x0027, prQU},
	{0x0028, 0x0028, prOP},
	{0x0029, 0x0029, prCP},
	{0x002B, 0x002B, prPR},
	{0x002C, 0x002C, prIS},
	{0x002D, 0x002D, prHY},
	{0x002E, 0x002E, prIS},
	{0x002F, 0x002F, prSY},
	{0x003A, 0x003B, prIS},
	{0x003F, 0x003F, prEX},
	{0x005B, 0x005B, prOP},
	{0x005C, 0x005C, prPR},
	{0x005D, 0x005D, prCP},
	{0x007B, 0x007B, prOP},
	{0x007C, 0x007C, prBA},
	{0x007D, 0x007D, prCL},
	{0x007F, 0x0084, prCM},
	{0x0085, 0x0085, prNL},
	{0x0086, 0x009F, prCM},
	{0x00A0, 0x00A0, prGL},
	{0x00A1, 0x00A1, prOP},
	{0x00A2, 0x00A2, prPO},
	{0x00A3, 0x00A5, prPR},
	{0x00A7, 0x00A8, prAI},
	{0x00AA, 0x00AA, prAI},
	{0x00AB, 0x00AB, prQU},
	{0x00AD, 0x00AD, prBA},
	{0x00B0, 0x00B0, prPO},
	{0x00B1, 0x00B1, prPR},
	{0x00B2, 0x00B3, prAI},
	{0x00B4, 0x00B4, prBB},
	{0x00B6, 0x00B9, prAI},
	{0x00BA, 0x00BA, prAI},
	{0x00BB, 0x00BB, prQU},
	{0x00BC, 0x00BE, prAI},
	{0x00BF, 0x00BF, prOP},
	{0x00D7, 0x00D7, prAI},
	{0x00F7, 0x00F7, prAI},
	{0x0300, 0x036F, prCM},
	{0x037E, 0x037E, prIS},
	{0x0387, 0x0387, prAI},
	{0x0483, 0x0489, prCM},
	{0x0589, 0x0589, prIS},
	{0x058A, 0x058A, prBA},
	{0x058F, 0x058F, prPR},
	{0x0591, 0x05BD, prCM},
	{0x05BF, 0x05BF, prCM},
	{0x05C1, 0x05C2, prCM},
	{0x05C4, 0x05C5, prCM},
	{0x05C7, 0x05C7, prCM},
	{0x05D0, 0x05EA, prHL},
	{0x05EF, 0x05F2, prHL},
	{0x0609, 0x060A, prPO},
	{0x060C, 0x060D, prIS},
	{0x0610, 0x061A, prCM},
	{0x061B, 0x061B, prEX},
	{0x061C, 0x061C, prCM},
	{0x061D, 0x061F, prEX},
	{0x064B, 0x065F, prCM},
	{0x0660, 0x0669, prNU},
	{0x066A, 0x066A, prPO},
	{0x066B, 0x066C, prNU},
	{0x0670, 0x0670, prCM},
	{0x06D4, 0x06D4, prEX},
	{0x06D6, 0x06DC, prCM},
	{0x06DF, 0x06E4, prCM},
	{0x06E7, 0x06E8, prCM},
	{0x06EA, 0x06ED, prCM},
	{0x06F0, 0x06F9, prNU},
	{0x0711, 0x0711, prCM},
	{0x0730, 0x074A, prCM},
	{0x07A6, 0x07B0, prCM},
	{0x07C0, 0x07C9, prNU},
	{0x07EB, 0x07F3, prCM},
	{0x07F8, 0x07F8, prIS},
	{0x07F9, 0x07F9, prEX},
	{0x0900, 0x0903, prCM},
	{0x093A, 0x093C, prCM},
	{0x093E, 0x094F, prCM},
	{0x0951, 0x0957, prCM},
	{0x0962, 0x0963, prCM},
	{0x0964, 0x0965, prBA},
	{0x0966, 0x096F, prNU},
	{0x0981, 0x0983, prCM},
	{0x09BC, 0x09BC, prCM},
	{0x09BE, 0x09CD, prCM},
	{0x09D7, 0x09D7, prCM},
	{0x09E2, 0x09E3, prCM},
	{0x09E6, 0x09EF, prNU},
	{0x09F2, 0x09F3, prPO},
	{0x0A66, 0x0A6F, prNU},
	{0x0AE6, 0x0AEF, prNU},
	{0x0B66, 0x0B6F, prNU},
	{0x0C66, 0x0C6F, prNU},
	{0x0CE6, 0x0CEF, prNU},
	{0x0D66, 0x0D6F, prNU},
	{0x0E01, 0x0E3A, prSA},
	{0x0E3F, 0x0E3F, prPR},
	{0x0E40, 0x0E4E, prSA},
	{0x0E50, 0x0E59, prNU},
	{0x0E5A, 0x0E5B, prBA},
	{0x0E81, 0x0ECE, prSA},
	{0x0ED0, 0x0ED9, prNU},
	{0x0EDC, 0x0EDF, prSA},
	{0x1000, 0x103F, prSA},
	{0x1040, 0x1049, prNU},
	{0x104A, 0x104B, prBA},
	{0x104C, 0x109F, prSA},
	{0x1100, 0x115F, prJL},
	{0x1160, 0x11A7, prJV},
	{0x11A8, 0x11FF, prJT},
	{0x1680, 0x1680, prBA},
	{0x16EB, 0x16ED, prBA},
	{0x1780, 0x17D3, prSA},
	{0x17D4, 0x17D5, prBA},
	{0x17D6, 0x17D6, prNS},
	{0x17D8, 0x17D8, prBA},
	{0x17DB, 0x17DB, prPR},
	{0x17E0, 0x17E9, prNU},
	{0x2000, 0x2006, prBA},
	{0x2007, 0x2007, prGL},
	{0x2008, 0x200A, prBA},
	{0x200B, 0x200B, prZW},
	{0x200C, 0x200C, prCM},
	{0x200D, 0x200D, prZWJ},
	{0x200E, 0x200F, prCM},
	{0x2010, 0x2010, prBA},
	{0x2011, 0x2011, prGL},
	{0x2012, 0x2013, prBA},
	{0x2014, 0x2014, prB2},
	{0x2015, 0x2016, prAI},
	{0x2018, 0x2019, prQU},
	{0x201A, 0x201A, prOP},
	{0x201B, 0x201D, prQU},
	{0x201E, 0x201E, prOP},
	{0x201F, 0x201F, prQU},
	{0x2020, 0x2021, prAI},
	{0x2024, 0x2026, prIN},
	{0x2027, 0x2027, prBA},
	{0x2028, 0x2029, prBK},
	{0x202A, 0x202E, prCM},
	{0x202F, 0x202F, prGL},
	{0x2030, 0x2037, prPO},
	{0x2039, 0x203A, prQU},
	{0x203B, 0x203B, prAI},
	{0x203C, 0x203D, prNS},
	{0x2044, 0x2044, prIS},
	{0x2045, 0x2045, prOP},
	{0x2046, 0x2046, prCL},
	{0x2047, 0x2049, prNS},
	{0x205F, 0x205F, prBA},
	{0x2060, 0x2060, prWJ},
	{0x206A, 0x206F, prCM},
	{0x20A0, 0x20BF, prPR},
	{0x20D0, 0x20F0, prCM},
	{0x2103, 0x2103, prPO},
	{0x2109, 0x2109, prPO},
	{0x2116, 0x2116, prPR},
	{0x2212, 0x2213, prPR},
	{0x2329, 0x2329, prOP},
	{0x232A, 0x232A, prCL},
	{0x2460, 0x24FF, prAI},
	{0x2500, 0x25FF, prAI},
	{0x2600, 0x261C, prID},
	{0x261D, 0x261D, prEB},
	{0x261E, 0x26F8, prID},
	{0x26F9, 0x26F9, prEB},
	{0x26FA, 0x26FF, prID},
	{0x2700, 0x2709, prID},
	{0x270A, 0x270D, prEB},
	{0x270E, 0x27BF, prID},
	{0x2B1B, 0x2B1C, prID},
	{0x2B50, 0x2B50, prID},
	{0x2B55, 0x2B55, prID},
	{0x2CEF, 0x2CF1, prCM},
	{0x2E3A, 0x2E3B, prB2},
	{0x3000, 0x3000, prBA},
	{0x3001, 0x3002, prCL},
	{0x3005, 0x3005, prNS},
	{0x3006, 0x3007, prID},
	{0x3008, 0x3008, prOP},
	{0x3009, 0x3009, prCL},
	{0x300A, 0x300A, prOP},
	{0x300B, 0x300B, prCL},
	{0x300C, 0x300C, prOP},
	{0x300D, 0x300D, prCL},
	{0x300E, 0x300E, prOP},
	{0x300F, 0x300F, prCL},
	{0x3010, 0x3010, prOP},
	{0x3011, 0x3011, prCL},
	{0x3012, 0x3013, prID},
	{0x3014, 0x3014, prOP},
	{0x3015, 0x3015, prCL},
	{0x3016, 0x3016, prOP},
	{0x3017, 0x3017, prCL},
	{0x3018, 0x3018, prOP},
	{0x3019, 0x3019, prCL},
	{0x301A, 0x301A, prOP},
	{0x301B, 0x301B, prCL},
	{0x301C, 0x301C, prNS},
	{0x301D, 0x301D, prOP},
	{0x301E, 0x301F, prCL},
	{0x3020, 0x3029, prID},
	{0x302A, 0x302F, prCM},
	{0x3030, 0x3040, prID},
	{0x3041, 0x3041, prCJ},
	{0x3042, 0x3042, prID},
	{0x3043, 0x3043, prCJ},
	{0x3044, 0x3044, prID},
	{0x3045, 0x3045, prCJ},
	{0x3046, 0x3046, prID},
	{0x3047, 0x3047, prCJ},
	{0x3048, 0x3048, prID},
	{0x3049, 0x3049, prCJ},
	{0x304A, 0x3062, prID},
	{0x3063, 0x3063, prCJ},
	{0x3064, 0x3082, prID},
	{0x3083, 0x3083, prCJ},
	{0x3084, 0x3084, prID},
	{0x3085, 0x3085, prCJ},
	{0x3086, 0x3086, prID},
	{0x3087, 0x3087, prCJ},
	{0x3088, 0x308D, prID},
	{0x308E, 0x308E, prCJ},
	{0x308F, 0x3094, prID},
	{0x3095, 0x3096, prCJ},
	{0x3099, 0x309A, prCM},
	{0x309B, 0x309E, prNS},
	{0x309F, 0x309F, prID},
	{0x30A0, 0x30A0, prNS},
	{0x30A1, 0x30A1, prCJ},
	{0x30A2, 0x30A2, prID},
	{0x30A3, 0x30A3, prCJ},
	{0x30A4, 0x30A4, prID},
	{0x30A5, 0x30A5, prCJ},
	{0x30A6, 0x30A6, prID},
	{0x30A7, 0x30A7, prCJ},
	{0x30A8, 0x30A8, prID},
	{0x30A9, 0x30A9, prCJ},
	{0x30AA, 0x30C2, prID},
	{0x30C3, 0x30C3, prCJ},
	{0x30C4, 0x30E2, prID},
	{0x30E3, 0x30E3, prCJ},
	{0x30E4, 0x30E4, prID},
	{0x30E5, 0x30E5, prCJ},
	{0x30E6, 0x30E6, prID},
	{0x30E7, 0x30E7, prCJ},
	{0x30E8, 0x30ED, prID},
	{0x30EE, 0x30EE, prCJ},
	{0x30EF, 0x30F4, prID},
	{0x30F5, 0x30F6, prCJ},
	{0x30F7, 0x30FA, prID},
	{0x30FB, 0x30FB, prNS},
	{0x30FC, 0x30FC, prCJ},
	{0x30FD, 0x30FE, prNS},
	{0x30FF, 0x30FF, prID},
	{0x3105, 0x312F, prID},
	{0x3130, 0x318F, prID},
	{0x31F0, 0x31FF, prCJ},
	{0x3200, 0x33FF, prID},
	{0x3400, 0x4DBF, prID},
	{0x4E00, 0x9FFF, prID},
	{0xA000, 0xA48F, prID},
	{0xA490, 0xA4CF, prID},
	{0xA66F, 0xA672, prCM},
	{0xA674, 0xA67D, prCM},
	{0xA69E, 0xA69F, prCM},
	{0xA960, 0xA97C, prJL},
	{0xD7B0, 0xD7C6, prJV},
	{0xD7CB, 0xD7FB, prJT},
	{0xF900, 0xFAFF, prID},
	{0xFB1D, 0xFB1D, prHL},
	{0xFB1E, 0xFB1E, prCM},
	{0xFB1F, 0xFB28, prHL},
	{0xFB2A, 0xFB4F, prHL},
	{0xFD3E, 0xFD3E, prCL},
	{0xFD3F, 0xFD3F, prOP},
	{0xFDFC, 0xFDFC, prPO},
	{0xFE00, 0xFE0F, prCM},
	{0xFE10, 0xFE10, prIS},
	{0xFE11, 0xFE12, prCL},
	{0xFE13, 0xFE14, prIS},
	{0xFE15, 0xFE16, prEX},
	{0xFE17, 0xFE17, prOP},
	{0xFE18, 0xFE18, prCL},
	{0xFE19, 0xFE19, prIN},
	{0xFE20, 0xFE2F, prCM},
	{0xFE30, 0xFE34, prID},
	{0xFE35, 0xFE35, prOP},
	{0xFE36, 0xFE36, prCL},
	{0xFE37, 0xFE37, prOP},
	{0xFE38, 0xFE38, prCL},
	{0xFE39, 0xFE39, prOP},
	{0xFE3A, 0xFE3A, prCL},
	{0xFE3B, 0xFE3B, prOP},
	{0xFE3C, 0xFE3C, prCL},
	{0xFE3D, 0xFE3D, prOP},
	{0xFE3E, 0xFE3E, prCL},
	{0xFE3F, 0xFE3F, prOP},
	{0xFE40, 0xFE40, prCL},
	{0xFE41, 0xFE41, prOP},
	{0xFE42, 0xFE42, prCL},
	{0xFE43, 0xFE43, prOP},
	{0xFE44, 0xFE44, prCL},
	{0xFE45, 0xFE46, prID},
	{0xFE47, 0xFE47, prOP},
	{0xFE48, 0xFE48, prCL},
	{0xFE49, 0xFE4F, prID},
	{0xFE50, 0xFE50, prCL},
	{0xFE51, 0xFE51, prID},
	{0xFE52, 0xFE52, prCL},
	{0xFE54, 0xFE55, prNS},
	{0xFE56, 0xFE57, prEX},
	{0xFE58, 0xFE58, prID},
	{0xFE59, 0xFE59, prOP},
	{0xFE5A, 0xFE5A, prCL},
	{0xFE5B, 0xFE5B, prOP},
	{0xFE5C, 0xFE5C, prCL},
	{0xFE5D, 0xFE5D, prOP},
	{0xFE5E, 0xFE5E, prCL},
	{0xFE5F, 0xFE68, prID},
	{0xFE69, 0xFE69, prPR},
	{0xFE6A, 0xFE6A, prPO},
	{0xFE6B, 0xFE6B, prID},
	{0xFEFF, 0xFEFF, prWJ},
	{0xFF01, 0xFF01, prEX},
	{0xFF02, 0xFF03, prID},
	{0xFF04, 0xFF04, prPR},
	{0xFF05, 0xFF05, prPO},
	{0xFF06, 0xFF07, prID},
	{0xFF08, 0xFF08, prOP},
	{0xFF09, 0xFF09, prCL},
	{0xFF0A, 0xFF0B, prID},
	{0xFF0C, 0xFF0C, prCL},
	{0xFF0D, 0xFF0D, prID},
	{0xFF0E, 0xFF0E, prCL},
	{0xFF0F, 0xFF19, prID},
	{0xFF1A, 0xFF1B, prNS},
	{0xFF1C, 0xFF1E, prID},
	{0xFF1F, 0xFF1F, prEX},
	{0xFF20, 0xFF3A, prID},
	{0xFF3B, 0xFF3B, prOP},
	{0xFF3C, 0xFF3C, prID},
	{0xFF3D, 0xFF3D, prCL},
	{0xFF3E, 0xFF5A, prID},
	{0xFF5B, 0xFF5B, prOP},
	{0xFF5C, 0xFF5C, prID},
	{0xFF5D, 0xFF5D, prCL},
	{0xFF5E, 0xFF5E, prID},
	{0xFF5F, 0xFF5F, prOP},
	{0xFF60, 0xFF61, prCL},
	{0xFF62, 0xFF62, prOP},
	{0xFF63, 0xFF64, prCL},
	{0xFF65, 0xFF65, prNS},
	{0xFF66, 0xFF9F, prAL},
	{0xFFE0, 0xFFE0, prPO},
	{0xFFE1, 0xFFE1, prPR},
	{0xFFE5, 0xFFE6, prPR},
	{0xFFFC, 0xFFFC, prCB},
	{0x1F000, 0x1F0FF, prID},
	{0x1F1E6, 0x1F1FF, prRI},
	{0x1F200, 0x1F2FF, prID},
	{0x1F300, 0x1F384, prID},
	{0x1F385, 0x1F385, prEB},
	{0x1F386, 0x1F3C1, prID},
	{0x1F3C2, 0x1F3C4, prEB},
	{0x1F3C5, 0x1F3C6, prID},
	{0x1F3C7, 0x1F3C7, prEB},
	{0x1F3C8, 0x1F3C9, prID},
	{0x1F3CA, 0x1F3CC, prEB},
	{0x1F3CD, 0x1F3FA, prID},
	{0x1F3FB, 0x1F3FF, prEM},
	{0x1F400, 0x1F441, prID},
	{0x1F442, 0x1F443, prEB},
	{0x1F444, 0x1F445, prID},
	{0x1F446, 0x1F450, prEB},
	{0x1F451, 0x1F465, prID},
	{0x1F466, 0x1F478, prEB},
	{0x1F479, 0x1F47B, prID},
	{0x1F47C, 0x1F47C, prEB},
	{0x1F47D, 0x1F480, prID},
	{0x1F481, 0x1F483, prEB},
	{0x1F484, 0x1F484, prID},
	{0x1F485, 0x1F487, prEB},
	{0x1F488, 0x1F4A9, prID},
	{0x1F4AA, 0x1F4AA, prEB},
	{0x1F4AB, 0x1F574, prID},
	{0x1F575, 0x1F575, prEB},
	{0x1F576, 0x1F579, prID},
	{0x1F57A, 0x1F57A, prEB},
	{0x1F57B, 0x1F58F, prID},
	{0x1F590, 0x1F590, prEB},
	{0x1F591, 0x1F594, prID},
	{0x1F595, 0x1F596, prEB},
	{0x1F597, 0x1F644, prID},
	{0x1F645, 0x1F647, prEB},
	{0x1F648, 0x1F64A, prID},
	{0x1F64B, 0x1F64F, prEB},
	{0x1F650, 0x1F6A2, prID},
	{0x1F6A3, 0x1F6A3, prEB},
	{0x1F6A4, 0x1F6B3, prID},
	{0x1F6B4, 0x1F6B6, prEB},
	{0x1F6B7, 0x1F6BF, prID},
	{0x1F6C0, 0x1F6C0, prEB},
	{0x1F6C1, 0x1F6CB, prID},
	{0x1F6CC, 0x1F6CC, prEB},
	{0x1F6CD, 0x1F6FF, prID},
	{0x1F700, 0x1F8FF, prID},
	{0x1F900, 0x1F917, prID},
	{0x1F918, 0x1F91F, prEB},
	{0x1F920, 0x1F925, prID},
	{0x1F926, 0x1F926, prEB},
	{0x1F927, 0x1F92F, prID},
	{0x1F930, 0x1F939, prEB},
	{0x1F93A, 0x1F93B, prID},
	{0x1F93C, 0x1F93E, prEB},
	{0x1F93F, 0x1F9B4, prID},
	{0x1F9B5, 0x1F9B6, prEB},
	{0x1F9B7, 0x1F9B7, prID},
	{0x1F9B8, 0x1F9B9, prEB},
	{0x1F9BA, 0x1F9BA, prID},
	{0x1F9BB, 0x1F9BB, prEB},
	{0x1F9BC, 0x1F9CC, prID},
	{0x1F9CD, 0x1F9CF, prEB},
	{0x1F9D0, 0x1F9D0, prID},
	{0x1F9D1, 0x1F9DD, prEB},
	{0x1F9DE, 0x1F9FF, prID},
	{0x1FA00, 0x1FAFF, prID},
	{0x1FC00, 0x1FFFD, prID},
}
