package giltladder

import "testing"

func TestGiltFor(t *testing.T) {
	g := GiltFor(2030)
	if g.Name != "UK Treasury 0.375% 2030" {
		t.Errorf("Name = %q, want UK Treasury 0.375%% 2030", g.Name)
	}
	if g.ISIN != "GB00BKPWFW93" {
		t.Errorf("ISIN = %q, want GB00BKPWFW93", g.ISIN)
	}

	// Outside the reference table a generic placeholder is returned.
	g = GiltFor(2045)
	if g.Name != "UK Treasury Gilt 2045" {
		t.Errorf("Name = %q, want UK Treasury Gilt 2045", g.Name)
	}
	if g.ISIN != "TBD" {
		t.Errorf("ISIN = %q, want TBD", g.ISIN)
	}
}

func TestRecommendGilts(t *testing.T) {
	result, err := ComputeLadder(baseInput(), baseSpec())
	if err != nil {
		t.Fatalf("ComputeLadder() error = %v", err)
	}

	gilts := RecommendGilts(result.Rungs)
	if len(gilts) != len(result.Rungs) {
		t.Fatalf("got %d gilts, want %d", len(gilts), len(result.Rungs))
	}
	for i, g := range gilts {
		if g.MaturityYear != result.Rungs[i].MaturityYear {
			t.Errorf("gilt %d maturity = %d, want %d", i, g.MaturityYear, result.Rungs[i].MaturityYear)
		}
	}
}
