package unisegp

// The pair table covers the purely pairwise line break rules (LB19 through
// LB31): those whose decision depends only on the resolved classes of the two
// adjacent characters. Everything context-sensitive, from mandatory breaks
// through the space rules to regional indicators, is handled by the rule
// cascade in linerules.go before the table is consulted.

// Compact class indices for the pair table axes. Only classes that can reach
// the table appear; classes fully consumed by the cascade (BK, CR, LF, NL,
// SP, ZW, WJ, ZWJ) have no index.
const (
	clOP = iota
	clCL
	clCP
	clQU
	clGL
	clNS
	clEX
	clSY
	clIS
	clPR
	clPO
	clNU
	clAL
	clHL
	clID
	clIN
	clHY
	clBA
	clBB
	clB2
	clCM
	clJL
	clJV
	clJT
	clH2
	clH3
	clEB
	clEM
	clRI
	clCB
	clCount
)

// Pair table cell values.
const (
	pbBreak   = iota // break allowed between the two classes
	pbNoBreak        // the two classes stay glued
)

// pairRule is one pairwise rule: all (before, after) combinations it covers
// and the decision it assigns to them.
type pairRule struct {
	rule   string
	before []int
	after  []int
	brk    int
}

// clAll marks a rule side that covers every class.
var clAll []int

// pairRules lists the pairwise rules in rule order. The table builder writes
// each cell at most once, so an earlier rule always wins over a later one.
// LB31, the unconditional break, fills whatever is left.
var pairRules = []pairRule{
	{"LB19", clAll, []int{clQU}, pbNoBreak},
	{"LB19", []int{clQU}, clAll, pbNoBreak},
	{"LB21", clAll, []int{clBA, clHY, clNS}, pbNoBreak},
	{"LB21", []int{clBB}, clAll, pbNoBreak},
	{"LB21b", []int{clSY}, []int{clHL}, pbNoBreak},
	{"LB22", clAll, []int{clIN}, pbNoBreak},
	{"LB23", []int{clAL, clHL, clCM}, []int{clNU}, pbNoBreak},
	{"LB23", []int{clNU}, []int{clAL, clHL}, pbNoBreak},
	{"LB23a", []int{clPR}, []int{clID, clEB, clEM}, pbNoBreak},
	{"LB23a", []int{clID, clEB, clEM}, []int{clPO}, pbNoBreak},
	{"LB24", []int{clPR, clPO}, []int{clAL, clHL}, pbNoBreak},
	{"LB24", []int{clAL, clHL, clCM}, []int{clPR, clPO}, pbNoBreak},
	{"LB25", []int{clCL, clCP, clNU}, []int{clPO, clPR}, pbNoBreak},
	{"LB25", []int{clPO, clPR}, []int{clOP}, pbNoBreak},
	{"LB25", []int{clPO, clPR, clHY, clIS, clNU, clSY}, []int{clNU}, pbNoBreak},
	{"LB26", []int{clJL}, []int{clJL, clJV, clH2, clH3}, pbNoBreak},
	{"LB26", []int{clJV, clH2}, []int{clJV, clJT}, pbNoBreak},
	{"LB26", []int{clJT, clH3}, []int{clJT}, pbNoBreak},
	{"LB27", []int{clJL, clJV, clJT, clH2, clH3}, []int{clPO}, pbNoBreak},
	{"LB27", []int{clPR}, []int{clJL, clJV, clJT, clH2, clH3}, pbNoBreak},
	{"LB28", []int{clAL, clHL, clCM}, []int{clAL, clHL}, pbNoBreak},
	{"LB29", []int{clIS}, []int{clAL, clHL}, pbNoBreak},
	{"LB30b", []int{clEB}, []int{clEM}, pbNoBreak},
	{"LB31", clAll, clAll, pbBreak},
}

// pairTable is indexed as pairTable[before][after].
var pairTable = buildPairTable()

func buildPairTable() [clCount][clCount]int8 {
	var table [clCount][clCount]int8
	for i := range table {
		for j := range table[i] {
			table[i][j] = -1
		}
	}
	every := make([]int, clCount)
	for i := range every {
		every[i] = i
	}
	for _, rule := range pairRules {
		before, after := rule.before, rule.after
		if before == nil {
			before = every
		}
		if after == nil {
			after = every
		}
		for _, bc := range before {
			for _, ac := range after {
				if table[bc][ac] < 0 {
					table[bc][ac] = int8(rule.brk)
				}
			}
		}
	}
	return table
}

// pairClass maps a resolved line break property to its pair table index, or
// -1 for classes the cascade never lets through.
func pairClass(prop int) int {
	switch prop {
	case prOP:
		return clOP
	case prCL:
		return clCL
	case prCP:
		return clCP
	case prQU:
		return clQU
	case prGL:
		return clGL
	case prNS:
		return clNS
	case prEX:
		return clEX
	case prSY:
		return clSY
	case prIS:
		return clIS
	case prPR:
		return clPR
	case prPO:
		return clPO
	case prNU:
		return clNU
	case prAL:
		return clAL
	case prHL:
		return clHL
	case prID:
		return clID
	case prIN:
		return clIN
	case prHY:
		return clHY
	case prBA:
		return clBA
	case prBB:
		return clBB
	case prB2:
		return clB2
	case prCM:
		return clCM
	case prJL:
		return clJL
	case prJV:
		return clJV
	case prJT:
		return clJT
	case prH2:
		return clH2
	case prH3:
		return clH3
	case prEB:
		return clEB
	case prEM:
		return clEM
	case prRI:
		return clRI
	case prCB:
		return clCB
	}
	return -1
}
