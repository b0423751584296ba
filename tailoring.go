package unisegp

import "fmt"

// Tailoring selects how rule LB1 resolves the ambiguous line break classes.
// The zero value is the default resolution recommended by UAX #14.
type Tailoring int

const (
	// TailoringDefault resolves ambiguous characters (AI) to alphabetic and
	// small kana (CJ) to non-starters, suiting non-East-Asian contexts.
	TailoringDefault Tailoring = iota

	// TailoringEastAsian resolves ambiguous characters to ideographs, which
	// allows breaks next to them the way East Asian typography expects.
	TailoringEastAsian

	// TailoringLooseKana additionally resolves small kana to ideographs,
	// permitting breaks before them. Used for narrow columns of Japanese
	// text.
	TailoringLooseKana
)

// TailoringByName returns the tailoring identified by name: "default" (or the
// empty string), "east-asian", or "loose-kana". Unknown names are an error.
func TailoringByName(name string) (Tailoring, error) {
	switch name {
	case "", "default":
		return TailoringDefault, nil
	case "east-asian":
		return TailoringEastAsian, nil
	case "loose-kana":
		return TailoringLooseKana, nil
	}
	return 0, fmt.Errorf("unknown line break tailoring %q", name)
}

// String returns the name accepted by [TailoringByName].
func (t Tailoring) String() string {
	switch t {
	case TailoringEastAsian:
		return "east-asian"
	case TailoringLooseKana:
		return "loose-kana"
	}
	return "default"
}
