package unisegp

// graphemeCodePoints maps code point ranges to their Grapheme_Cluster_Break
// class, derived from the Unicode Character Database file
// auxiliary/GraphemeBreakProperty.txt. Entries are sorted and disjoint; code
// points not covered default to Other (prAny). Hangul syllables U+AC00..D7A3
// are classified arithmetically and precomposed Extended_Pictographic runes
// through the separate emoji table, so neither appears here.
//
// Regenerate with internal/gen.
var graphemeCodePoints = [][3]int{
	{0x0080, 0x009F, prControl},
	{0x00AD, 0x00AD, prControl},
	{0x0300, 0x036F, prExtend},
	{0x0483, 0x0489, prExtend},
	{0x0591, 0x05BD, prExtend},
	{0x05BF, 0x05BF, prExtend},
	{0x05C1, 0x05C2, prExtend},
	{0x05C4, 0x05C5, prExtend},
	{0x05C7, 0x05C7, prExtend},
	{0x0600, 0x0605, prPrepend},
	{0x0610, 0x061A, prExtend},
	{0x061C, 0x061C, prControl},
	{0x064B, 0x065F, prExtend},
	{0x0670, 0x0670, prExtend},
	{0x06D6, 0x06DC, prExtend},
	{0x06DD, 0x06DD, prPrepend},
	{0x06DF, 0x06E4, prExtend},
	{0x06E7, 0x06E8, prExtend},
	{0x06EA, 0x06ED, prExtend},
	{0x070F, 0x070F, prPrepend},
	{0x0711, 0x0711, prExtend},
	{0x0730, 0x074A, prExtend},
	{0x07A6, 0x07B0, prExtend},
	{0x07EB, 0x07F3, prExtend},
	{0x07FD, 0x07FD, prExtend},
	{0x0816, 0x0819, prExtend},
	{0x081B, 0x0823, prExtend},
	{0x0825, 0x0827, prExtend},
	{0x0829, 0x082D, prExtend},
	{0x0859, 0x085B, prExtend},
	{0x08D3, 0x08E1, prExtend},
	{0x08E2, 0x08E2, prPrepend},
	{0x08E3, 0x0902, prExtend},
	{0x0903, 0x0903, prSpacingMark},
	{0x093A, 0x093A, prExtend},
	{0x093B, 0x093B, prSpacingMark},
	{0x093C, 0x093C, prExtend},
	{0x093E, 0x0940, prSpacingMark},
	{0x0941, 0x0948, prExtend},
	{0x0949, 0x094C, prSpacingMark},
	{0x094D, 0x094D, prExtend},
	{0x094E, 0x094F, prSpacingMark},
	{0x0951, 0x0957, prExtend},
	{0x0962, 0x0963, prExtend},
	{0x0981, 0x0981, prExtend},
	{0x0982, 0x0983, prSpacingMark},
	{0x09BC, 0x09BC, prExtend},
	{0x09BE, 0x09BE, prExtend},
	{0x09BF, 0x09C0, prSpacingMark},
	{0x09C1, 0x09C4, prExtend},
	{0x09C7, 0x09C8, prSpacingMark},
	{0x09CB, 0x09CC, prSpacingMark},
	{0x09CD, 0x09CD, prExtend},
	{0x09D7, 0x09D7, prExtend},
	{0x09E2, 0x09E3, prExtend},
	{0x09FE, 0x09FE, prExtend},
	{0x0A01, 0x0A02, prExtend},
	{0x0A03, 0x0A03, prSpacingMark},
	{0x0A3C, 0x0A3C, prExtend},
	{0x0A3E, 0x0A40, prSpacingMark},
	{0x0A41, 0x0A42, prExtend},
	{0x0A47, 0x0A48, prExtend},
	{0x0A4B, 0x0A4D, prExtend},
	{0x0A51, 0x0A51, prExtend},
	{0x0A70, 0x0A71, prExtend},
	{0x0A75, 0x0A75, prExtend},
	{0x0A81, 0x0A82, prExtend},
	{0x0A83, 0x0A83, prSpacingMark},
	{0x0ABC, 0x0ABC, prExtend},
	{0x0ABE, 0x0AC0, prSpacingMark},
	{0x0AC1, 0x0AC5, prExtend},
	{0x0AC7, 0x0AC8, prExtend},
	{0x0AC9, 0x0AC9, prSpacingMark},
	{0x0ACB, 0x0ACC, prSpacingMark},
	{0x0ACD, 0x0ACD, prExtend},
	{0x0AE2, 0x0AE3, prExtend},
	{0x0AFA, 0x0AFF, prExtend},
	{0x0B01, 0x0B01, prExtend},
	{0x0B02, 0x0B03, prSpacingMark},
	{0x0B3C, 0x0B3C, prExtend},
	{0x0B3E, 0x0B3F, prExtend},
	{0x0B40, 0x0B40, prSpacingMark},
	{0x0B41, 0x0B44, prExtend},
	{0x0B47, 0x0B48, prSpacingMark},
	{0x0B4B, 0x0B4C, prSpacingMark},
	{0x0B4D, 0x0B4D, prExtend},
	{0x0B56, 0x0B57, prExtend},
	{0x0B62, 0x0B63, prExtend},
	{0x0B82, 0x0B82, prExtend},
	{0x0BBE, 0x0BBE, prExtend},
	{0x0BBF, 0x0BBF, prSpacingMark},
	{0x0BC0, 0x0BC0, prExtend},
	{0x0BC1, 0x0BC2, prSpacingMark},
	{0x0BC6, 0x0BC8, prSpacingMark},
	{0x0BCA, 0x0BCC, prSpacingMark},
	{0x0BCD, 0x0BCD, prExtend},
	{0x0BD7, 0x0BD7, prExtend},
	{0x0C00, 0x0C00, prExtend},
	{0x0C01, 0x0C03, prSpacingMark},
	{0x0C04, 0x0C04, prExtend},
	{0x0C3E, 0x0C40, prExtend},
	{0x0C41, 0x0C44, prSpacingMark},
	{0x0C46, 0x0C48, prExtend},
	{0x0C4A, 0x0C4D, prExtend},
	{0x0C55, 0x0C56, prExtend},
	{0x0C62, 0x0C63, prExtend},
	{0x0C81, 0x0C81, prExtend},
	{0x0C82, 0x0C83, prSpacingMark},
	{0x0CBC, 0x0CBC, prExtend},
	{0x0CBE, 0x0CBE, prSpacingMark},
	{0x0CBF, 0x0CBF, prExtend},
	{0x0CC0, 0x0CC4, prSpacingMark},
	{0x0CC6, 0x0CC6, prExtend},
	{0x0CC7, 0x0CC8, prSpacingMark},
	{0x0CCA, 0x0CCB, prSpacingMark},
	{0x0CCC, 0x0CCD, prExtend},
	{0x0CD5, 0x0CD6, prExtend},
	{0x0CE2, 0x0CE3, prExtend},
	{0x0D00, 0x0D01, prExtend},
	{0x0D02, 0x0D03, prSpacingMark},
	{0x0D3B, 0x0D3C, prExtend},
	{0x0D3E, 0x0D3E, prExtend},
	{0x0D3F, 0x0D40, prSpacingMark},
	{0x0D41, 0x0D44, prExtend},
	{0x0D46, 0x0D48, prSpacingMark},
	{0x0D4A, 0x0D4C, prSpacingMark},
	{0x0D4D, 0x0D4D, prExtend},
	{0x0D4E, 0x0D4E, prPrepend},
	{0x0D57, 0x0D57, prExtend},
	{0x0D62, 0x0D63, prExtend},
	{0x0D81, 0x0D81, prExtend},
	{0x0D82, 0x0D83, prSpacingMark},
	{0x0DCA, 0x0DCA, prExtend},
	{0x0DCF, 0x0DCF, prExtend},
	{0x0DD0, 0x0DD1, prSpacingMark},
	{0x0DD2, 0x0DD4, prExtend},
	{0x0DD6, 0x0DD6, prExtend},
	{0x0DD8, 0x0DDE, prSpacingMark},
	{0x0DDF, 0x0DDF, prExtend},
	{0x0DF2, 0x0DF3, prSpacingMark},
	{0x0E31, 0x0E31, prExtend},
	{0x0E33, 0x0E33, prSpacingMark},
	{0x0E34, 0x0E3A, prExtend},
	{0x0E47, 0x0E4E, prExtend},
	{0x0EB1, 0x0EB1, prExtend},
	{0x0EB3, 0x0EB3, prSpacingMark},
	{0x0EB4, 0x0EBC, prExtend},
	{0x0EC8, 0x0ECD, prExtend},
	{0x0F18, 0x0F19, prExtend},
	{0x0F35, 0x0F35, prExtend},
	{0x0F37, 0x0F37, prExtend},
	{0x0F39, 0x0F39, prExtend},
	{0x0F3E, 0x0F3F, prSpacingMark},
	{0x0F71, 0x0F7E, prExtend},
	{0x0F7F, 0x0F7F, prSpacingMark},
	{0x0F80, 0x0F84, prExtend},
	{0x0F86, 0x0F87, prExtend},
	{0x0F8D, 0x0F97, prExtend},
	{0x0F99, 0x0FBC, prExtend},
	{0x0FC6, 0x0FC6, prExtend},
	{0x102D, 0x1030, prExtend},
	{0x1031, 0x1031, prSpacingMark},
	{0x1032, 0x1037, prExtend},
	{0x1039, 0x103A, prExtend},
	{0x103B, 0x103C, prSpacingMark},
	{0x103D, 0x103E, prExtend},
	{0x1056, 0x1057, prSpacingMark},
	{0x1058, 0x1059, prExtend},
	{0x105E, 0x1060, prExtend},
	{0x1071, 0x1074, prExtend},
	{0x1082, 0x1082, prExtend},
	{0x1084, 0x1084, prSpacingMark},
	{0x1085, 0x1086, prExtend},
	{0x108D, 0x108D, prExtend},
	{0x109D, 0x109D, prExtend},
	{0x1100, 0x115F, prL},
	{0x1160, 0x11A7, prV},
	{0x11A8, 0x11FF, prT},
	{0x135D, 0x135F, prExtend},
	{0x1712, 0x1714, prExtend},
	{0x1732, 0x1734, prExtend},
	{0x1752, 0x1753, prExtend},
	{0x1772, 0x1773, prExtend},
	{0x17B4, 0x17B5, prExtend},
	{0x17B6, 0x17B6, prSpacingMark},
	{0x17B7, 0x17BD, prExtend},
	{0x17BE, 0x17C5, prSpacingMark},
	{0x17C6, 0x17C6, prExtend},
	{0x17C7, 0x17C8, prSpacingMark},
	{0x17C9, 0x17D3, prExtend},
	{0x17DD, 0x17DD, prExtend},
	{0x180B, 0x180D, prExtend},
	{0x180E, 0x180E, prControl},
	{0x1885, 0x1886, prExtend},
	{0x18A9, 0x18A9, prExtend},
	{0x1920, 0x1922, prExtend},
	{0x1923, 0x1926, prSpacingMark},
	{0x1927, 0x1928, prExtend},
	{0x1929, 0x192B, prSpacingMark},
	{0x1930, 0x1931, prSpacingMark},
	{0x1932, 0x1932, prExtend},
	{0x1933, 0x1938, prSpacingMark},
	{0x1939, 0x193B, prExtend},
	{0x1A17, 0x1A18, prExtend},
	{0x1A19, 0x1A1A, prSpacingMark},
	{0x1A1B, 0x1A1B, prExtend},
	{0x1A55, 0x1A55, prSpacingMark},
	{0x1A56, 0x1A56, prExtend},
	{0x1A57, 0x1A57, prSpacingMark},
	{0x1A58, 0x1A5E, prExtend},
	{0x1A60, 0x1A60, prExtend},
	{0x1A62, 0x1A62, prExtend},
	{0x1A65, 0x1A6C, prExtend},
	{0x1A6D, 0x1A72, prSpacingMark},
	{0x1A73, 0x1A7C, prExtend},
	{0x1A7F, 0x1A7F, prExtend},
	{0x1AB0, 0x1ACE, prExtend},
	{0x1B00, 0x1B03, prExtend},
	{0x1B04, 0x1B04, prSpacingMark},
	{0x1B34, 0x1B3A, prExtend},
	{0x1B3B, 0x1B3B, prSpacingMark},
	{0x1B3C, 0x1B3C, prExtend},
	{0x1B3D, 0x1B41, prSpacingMark},
	{0x1B42, 0x1B42, prExtend},
	{0x1B43, 0x1B44, prSpacingMark},
	{0x1B6B, 0x1B73, prExtend},
	{0x1B80, 0x1B81, prExtend},
	{0x1B82, 0x1B82, prSpacingMark},
	{0x1BA1, 0x1BA1, prSpacingMark},
	{0x1BA2, 0x1BA5, prExtend},
	{0x1BA6, 0x1BA7, prSpacingMark},
	{0x1BA8, 0x1BAD, prExtend},
	{0x1BE6, 0x1BE6, prExtend},
	{0x1BE7, 0x1BE7, prSpacingMark},
	{0x1BE8, 0x1BE9, prExtend},
	{0x1BEA, 0x1BEC, prSpacingMark},
	{0x1BED, 0x1BED, prExtend},
	{0x1BEE, 0x1BEE, prSpacingMark},
	{0x1BEF, 0x1BF1, prExtend},
	{0x1BF2, 0x1BF3, prSpacingMark},
	{0x1C24, 0x1C2B, prSpacingMark},
	{0x1C2C, 0x1C33, prExtend},
	{0x1C34, 0x1C35, prSpacingMark},
	{0x1C36, 0x1C37, prExtend},
	{0x1CD0, 0x1CD2, prExtend},
	{0x1CD4, 0x1CE0, prExtend},
	{0x1CE1, 0x1CE1, prSpacingMark},
	{0x1CE2, 0x1CE8, prExtend},
	{0x1CED, 0x1CED, prExtend},
	{0x1CF4, 0x1CF4, prExtend},
	{0x1CF7, 0x1CF7, prSpacingMark},
	{0x1CF8, 0x1CF9, prExtend},
	{0x1DC0, 0x1DFF, prExtend},
	{0x200B, 0x200B, prControl},
	{0x200C, 0x200C, prExtend},
	{0x200D, 0x200D, prZWJ},
	{0x200E, 0x200F, prControl},
	{0x2028, 0x202E, prControl},
	{0x2060, 0x206F, prControl},
	{0x20D0, 0x20F0, prExtend},
	{0x2CEF, 0x2CF1, prExtend},
	{0x2D7F, 0x2D7F, prExtend},
	{0x2DE0, 0x2DFF, prExtend},
	{0x302A, 0x302D, prExtend},
	{0x302E, 0x302F, prExtend},
	{0x3099, 0x309A, prExtend},
	{0xA66F, 0xA672, prExtend},
	{0xA674, 0xA67D, prExtend},
	{0xA69E, 0xA69F, prExtend},
	{0xA6F0, 0xA6F1, prExtend},
	{0xA802, 0xA802, prExtend},
	{0xA806, 0xA806, prExtend},
	{0xA80B, 0xA80B, prExtend},
	{0xA823, 0xA824, prSpacingMark},
	{0xA825, 0xA826, prExtend},
	{0xA827, 0xA827, prSpacingMark},
	{0xA880, 0xA881, prSpacingMark},
	{0xA8B4, 0xA8C3, prSpacingMark},
	{0xA8C4, 0xA8C5, prExtend},
	{0xA8E0, 0xA8F1, prExtend},
	{0xA8FF, 0xA8FF, prExtend},
	{0xA926, 0xA92D, prExtend},
	{0xA947, 0xA951, prExtend},
	{0xA952, 0xA953, prSpacingMark},
	{0xA960, 0xA97C, prL},
	{0xA980, 0xA982, prExtend},
	{0xA983, 0xA983, prSpacingMark},
	{0xA9B3, 0xA9B3, prExtend},
	{0xA9B4, 0xA9B5, prSpacingMark},
	{0xA9B6, 0xA9B9, prExtend},
	{0xA9BA, 0xA9BB, prSpacingMark},
	{0xA9BC, 0xA9BD, prExtend},
	{0xA9BE, 0xA9C0, prSpacingMark},
	{0xA9E5, 0xA9E5, prExtend},
	{0xAA29, 0xAA2E, prExtend},
	{0xAA2F, 0xAA30, prSpacingMark},
	{0xAA31, 0xAA32, prExtend},
	{0xAA33, 0xAA34, prSpacingMark},
	{0xAA35, 0xAA36, prExtend},
	{0xAA43, 0xAA43, prExtend},
	{0xAA4C, 0xAA4C, prExtend},
	{0xAA4D, 0xAA4D, prSpacingMark},
	{0xAAB0, 0xAAB0, prExtend},
	{0xAAB2, 0xAAB4, prExtend},
	{0xAAB7, 0xAAB8, prExtend},
	{0xAABE, 0xAABF, prExtend},
	{0xAAC1, 0xAAC1, prExtend},
	{0xAAEB, 0xAAEB, prSpacingMark},
	{0xAAEC, 0xAAED, prExtend},
	{0xAAEE, 0xAAEF, prSpacingMark},
	{0xAAF5, 0xAAF5, prSpacingMark},
	{0xAAF6, 0xAAF6, prExtend},
	{0xABE3, 0xABE4, prSpacingMark},
	{0xABE5, 0xABE5, prExtend},
	{0xABE6, 0xABE7, prSpacingMark},
	{0xABE8, 0xABE8, prExtend},
	{0xABE9, 0xABEA, prSpacingMark},
	{0xABEC, 0xABEC, prSpacingMark},
	{0xABED, 0xABED, prExtend},
	{0xD7B0, 0xD7C6, prV},
	{0xD7CB, 0xD7FB, prT},
	{0xFB1E, 0xFB1E, prExtend},
	{0xFE00, 0xFE0F, prExtend},
	{0xFE20, 0xFE2F, prExtend},
	{0xFEFF, 0xFEFF, prControl},
	{0xFF9E, 0xFF9F, prExtend},
	{0xFFF0, 0xFFFB, prControl},
	{0x101FD, 0x101FD, prExtend},
	{0x102E0, 0x102E0, prExtend},
	{0x10376, 0x1037A, prExtend},
	{0x10A01, 0x10A03, prExtend},
	{0x10A05, 0x10A06, prExtend},
	{0x10A0C, 0x10A0F, prExtend},
	{0x10A38, 0x10A3A, prExtend},
	{0x10A3F, 0x10A3F, prExtend},
	{0x11000, 0x11000, prSpacingMark},
	{0x11001, 0x11001, prExtend},
	{0x11002, 0x11002, prSpacingMark},
	{0x11038, 0x11046, prExtend},
	{0x11082, 0x11082, prSpacingMark},
	{0x110B0, 0x110B2, prSpacingMark},
	{0x110B3, 0x110B6, prExtend},
	{0x110B7, 0x110B8, prSpacingMark},
	{0x110B9, 0x110BA, prExtend},
	{0x110BD, 0x110BD, prPrepend},
	{0x11100, 0x11102, prExtend},
	{0x11127, 0x1112B, prExtend},
	{0x1112C, 0x1112C, prSpacingMark},
	{0x1112D, 0x11134, prExtend},
	{0x11145, 0x11146, prSpacingMark},
	{0x11173, 0x11173, prExtend},
	{0x11180, 0x11181, prExtend},
	{0x11182, 0x11182, prSpacingMark},
	{0x111B3, 0x111B5, prSpacingMark},
	{0x111B6, 0x111BE, prExtend},
	{0x111BF, 0x111C0, prSpacingMark},
	{0x111C2, 0x111C3, prPrepend},
	{0x1D165, 0x1D165, prExtend},
	{0x1D166, 0x1D166, prSpacingMark},
	{0x1D167, 0x1D169, prExtend},
	{0x1D16D, 0x1D16D, prSpacingMark},
	{0x1D16E, 0x1D172, prExtend},
	{0x1D17B, 0x1D182, prExtend},
	{0x1D185, 0x1D18B, prExtend},
	{0x1D1AA, 0x1D1AD, prExtend},
	{0x1D242, 0x1D244, prExtend},
	{0x1DA00, 0x1DA36, prExtend},
	{0x1DA3B, 0x1DA6C, prExtend},
	{0x1DA75, 0x1DA75, prExtend},
	{0x1DA84, 0x1DA84, prExtend},
	{0x1DA9B, 0x1DA9F, prExtend},
	{0x1DAA1, 0x1DAAF, prExtend},
	{0x1E000, 0x1E006, prExtend},
	{0x1E008, 0x1E018, prExtend},
	{0x1E01B, 0x1E021, prExtend},
	{0x1E023, 0x1E024, prExtend},
	{0x1E026, 0x1E02A, prExtend},
	{0x1E8D0, 0x1E8D6, prExtend},
	{0x1E944, 0x1E94A, prExtend},
	{0x1F1E6, 0x1F1FF, prRegionalIndicator},
	{0x1F3FB, 0x1F3FF, prExtend},
	{0xE0001, 0xE0001, prControl},
	{0xE0020, 0xE007F, prExtend},
	{0xE0100, 0xE01EF, prExtend},
}
