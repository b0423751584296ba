package unisegp

// incbCodePoints maps code point ranges to their Indic_Conjunct_Break
// property value (DerivedCoreProperties.txt), driving grapheme cluster rule
// GB9c. Only the scripts that form conjuncts carry Consonant and Linker
// values; InCB=Extend is the shared set of combining marks plus ZWJ.
//
// Regenerate with internal/gen.
var incbCodePoints = [][3]int{
	{0x0300, 0x036F, incbExtend},
	{0x0483, 0x0489, incbExtend},
	{0x0591, 0x05BD, incbExtend},
	{0x05BF, 0x05BF, incbExtend},
	{0x05C1, 0x05C2, incbExtend},
	{0x05C4, 0x05C5, incbExtend},
	{0x05C7, 0x05C7, incbExtend},
	{0x0610, 0x061A, incbExtend},
	{0x064B, 0x065F, incbExtend},
	{0x0670, 0x0670, incbExtend},
	{0x06D6, 0x06DC, incbExtend},
	{0x06DF, 0x06E4, incbExtend},
	{0x06E7, 0x06E8, incbExtend},
	{0x06EA, 0x06ED, incbExtend},
	{0x0711, 0x0711, incbExtend},
	{0x0730, 0x074A, incbExtend},
	{0x07A6, 0x07B0, incbExtend},
	{0x07EB, 0x07F3, incbExtend},
	{0x0900, 0x0902, incbExtend},
	{0x0915, 0x0939, incbConsonant},
	{0x093C, 0x093C, incbExtend},
	{0x094D, 0x094D, incbLinker},
	{0x0951, 0x0957, incbExtend},
	{0x0958, 0x095F, incbConsonant},
	{0x0962, 0x0963, incbExtend},
	{0x0981, 0x0981, incbExtend},
	{0x0995, 0x09B0, incbConsonant},
	{0x09B2, 0x09B2, incbConsonant},
	{0x09B6, 0x09B9, incbConsonant},
	{0x09BC, 0x09BC, incbExtend},
	{0x09CD, 0x09CD, incbLinker},
	{0x09DC, 0x09DD, incbConsonant},
	{0x09DF, 0x09DF, incbConsonant},
	{0x09E2, 0x09E3, incbExtend},
	{0x09F0, 0x09F1, incbConsonant},
	{0x0A41, 0x0A42, incbExtend},
	{0x0A47, 0x0A48, incbExtend},
	{0x0A4B, 0x0A4C, incbExtend},
	{0x0A51, 0x0A51, incbExtend},
	{0x0A70, 0x0A71, incbExtend},
	{0x0A75, 0x0A75, incbExtend},
	{0x0A95, 0x0AB9, incbConsonant},
	{0x0ABC, 0x0ABC, incbExtend},
	{0x0AC1, 0x0AC5, incbExtend},
	{0x0AC7, 0x0AC8, incbExtend},
	{0x0ACD, 0x0ACD, incbLinker},
	{0x0AE2, 0x0AE3, incbExtend},
	{0x0B15, 0x0B39, incbConsonant},
	{0x0B3C, 0x0B3C, incbExtend},
	{0x0B3F, 0x0B3F, incbExtend},
	{0x0B41, 0x0B44, incbExtend},
	{0x0B4D, 0x0B4D, incbLinker},
	{0x0B55, 0x0B56, incbExtend},
	{0x0B5C, 0x0B5D, incbConsonant},
	{0x0B5F, 0x0B5F, incbConsonant},
	{0x0B62, 0x0B63, incbExtend},
	{0x0B71, 0x0B71, incbConsonant},
	{0x0C15, 0x0C39, incbConsonant},
	{0x0C3C, 0x0C3C, incbExtend},
	{0x0C3E, 0x0C40, incbExtend},
	{0x0C46, 0x0C48, incbExtend},
	{0x0C4A, 0x0C4C, incbExtend},
	{0x0C4D, 0x0C4D, incbLinker},
	{0x0C55, 0x0C56, incbExtend},
	{0x0C58, 0x0C5A, incbConsonant},
	{0x0C62, 0x0C63, incbExtend},
	{0x0D15, 0x0D3A, incbConsonant},
	{0x0D41, 0x0D44, incbExtend},
	{0x0D4D, 0x0D4D, incbLinker},
	{0x0D62, 0x0D63, incbExtend},
	{0x200D, 0x200D, incbExtend},
	{0x20D0, 0x20F0, incbExtend},
	{0xFE00, 0xFE0F, incbExtend},
	{0xFE20, 0xFE2F, incbExtend},
	{0x1D165, 0x1D169, incbExtend},
	{0x1D16D, 0x1D172, incbExtend},
	{0xE0100, 0xE01EF, incbExtend},
}
