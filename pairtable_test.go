package unisegp

import (
	"testing"
)

// TestPairTableComplete checks that the rule list covers every cell: LB31
// fills whatever the earlier rules left open.
func TestPairTableComplete(t *testing.T) {
	for bc := 0; bc < clCount; bc++ {
		for ac := 0; ac < clCount; ac++ {
			if pairTable[bc][ac] < 0 {
				t.Errorf("cell [%d][%d] was never written", bc, ac)
			}
		}
	}
}

// TestPairTableCells spot-checks cells against the rule that should own them.
func TestPairTableCells(t *testing.T) {
	tests := []struct {
		rule    string
		before  int
		after   int
		want    int8
	}{
		{"LB19", clID, clQU, pbNoBreak},
		{"LB19", clQU, clID, pbNoBreak},
		{"LB21", clID, clBA, pbNoBreak},
		{"LB21", clAL, clHY, pbNoBreak},
		{"LB21", clBB, clID, pbNoBreak},
		{"LB21b", clSY, clHL, pbNoBreak},
		{"LB22", clAL, clIN, pbNoBreak},
		{"LB23", clAL, clNU, pbNoBreak},
		{"LB23", clNU, clHL, pbNoBreak},
		{"LB23a", clPR, clID, pbNoBreak},
		{"LB23a", clEB, clPO, pbNoBreak},
		{"LB24", clPO, clAL, pbNoBreak},
		{"LB25", clNU, clPO, pbNoBreak},
		{"LB25", clPR, clOP, pbNoBreak},
		{"LB25", clHY, clNU, pbNoBreak},
		{"LB25", clIS, clNU, pbNoBreak},
		{"LB26", clJL, clJV, pbNoBreak},
		{"LB26", clJV, clJT, pbNoBreak},
		{"LB26", clH2, clJT, pbNoBreak},
		{"LB27", clH3, clPO, pbNoBreak},
		{"LB27", clPR, clJL, pbNoBreak},
		{"LB28", clAL, clAL, pbNoBreak},
		{"LB28", clHL, clAL, pbNoBreak},
		{"LB29", clIS, clAL, pbNoBreak},
		{"LB30b", clEB, clEM, pbNoBreak},
		{"LB31", clID, clID, pbBreak},
		{"LB31", clID, clAL, pbBreak},
		{"LB31", clAL, clID, pbBreak},
		{"LB31", clNU, clJL, pbBreak},
		{"LB31", clHY, clAL, pbBreak},
	}
	for _, tt := range tests {
		if got := pairTable[tt.before][tt.after]; got != tt.want {
			t.Errorf("%s: cell [%d][%d] = %d, want %d", tt.rule, tt.before, tt.after, got, tt.want)
		}
	}
}

// TestPairTableFirstWriteWins checks rule precedence: a cell covered by two
// rules belongs to the earlier one.
func TestPairTableFirstWriteWins(t *testing.T) {
	// LB21 (x HY, no break) runs before LB31 would break AL x HY.
	if pairTable[clAL][clHY] != pbNoBreak {
		t.Error("AL x HY should be owned by LB21, not LB31")
	}
	// LB25 glues HY x NU even though LB31 would break it.
	if pairTable[clHY][clNU] != pbNoBreak {
		t.Error("HY x NU should be owned by LB25, not LB31")
	}
	// The QU column is fully owned by LB19.
	for bc := 0; bc < clCount; bc++ {
		if pairTable[bc][clQU] != pbNoBreak {
			t.Errorf("cell [%d][QU] should be owned by LB19", bc)
		}
	}
}

func TestPairClass(t *testing.T) {
	tests := []struct {
		prop int
		want int
	}{
		{prOP, clOP},
		{prAL, clAL},
		{prID, clID},
		{prRI, clRI},
		{prCB, clCB},
		{prSP, -1}, // consumed by the cascade
		{prBK, -1},
		{prZW, -1},
	}
	for _, tt := range tests {
		if got := pairClass(tt.prop); got != tt.want {
			t.Errorf("pairClass(%d) = %d, want %d", tt.prop, got, tt.want)
		}
	}
}
