package blockchain

import "testing"

func TestCalcBlockSubsidyPremine(t *testing.T) {
	for _, h := range []int32{0, 1} {
		if got := CalcBlockSubsidy(h); got != premineReward {
			t.Errorf("CalcBlockSubsidy(%d) = %d, want premine %d", h, got, premineReward)
		}
	}
}

func TestCalcBlockSubsidyKnownHeights(t *testing.T) {
	tests := []struct {
		height int32
		coins  int64
	}{
		{2, 1},
		{6765, 1},
		{6766, 1},
		{46368, 5},
		{514229, 55},
		{514230, 34},
		{24157817, 1},
	}

	for _, tc := range tests {
		want := tc.coins * CCoin
		if got := CalcBlockSubsidy(tc.height); got != want {
			t.Errorf("CalcBlockSubsidy(%d) = %d, want %d", tc.height, got, want)
		}
	}
}

func TestCalcBlockSubsidyExhausted(t *testing.T) {
	if got := CalcBlockSubsidy(24157818); got != 0 {
		t.Errorf("CalcBlockSubsidy(24157818) = %d, want 0", got)
	}
}

func TestCalcBlockSubsidyPanicsOnNegativeHeight(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("CalcBlockSubsidy(-1) did not panic")
		}
	}()
	CalcBlockSubsidy(-1)
}
