package main

import (
	"math"
	"testing"
)

func TestEloUpdateConservesMass(t *testing.T) {
	tab := newEloTable(eloStart, eloK, []string{"A", "B", "C"})
	tab.update("A", "B")
	tab.update("C", "A")
	tab.update("B", "C")

	total := 0.0
	for _, l := range tab.order {
		total += tab.rating[l]
	}
	if want := 3 * eloStart; math.Abs(total-want) > 1e-9 {
		t.Errorf("rating mass %g, want %g", total, want)
	}
}

func TestEloWinnerGains(t *testing.T) {
	tab := newEloTable(eloStart, eloK, []string{"A", "B"})
	tab.update("A", "B")
	if tab.rating["A"] <= eloStart {
		t.Errorf("winner at %g, should exceed %g", tab.rating["A"], eloStart)
	}
	if tab.rating["B"] >= eloStart {
		t.Errorf("loser at %g, should be below %g", tab.rating["B"], eloStart)
	}
	// Even peers: the first game moves the winner by exactly k/2.
	if want := eloStart + eloK/2; math.Abs(tab.rating["A"]-want) > 1e-9 {
		t.Errorf("winner at %g, want %g", tab.rating["A"], want)
	}
	if tab.games["A"] != 1 || tab.games["B"] != 1 {
		t.Errorf("game counts %d/%d, want 1/1", tab.games["A"], tab.games["B"])
	}
}

func TestEloUpsetMovesMore(t *testing.T) {
	tab := newEloTable(eloStart, eloK, []string{"strong", "weak"})
	// Build a gap, then let the underdog win once.
	for i := 0; i < 50; i++ {
		tab.update("strong", "weak")
	}
	before := tab.rating["weak"]
	expected := tab.expect("weak", "strong")
	tab.update("weak", "strong")
	gain := tab.rating["weak"] - before
	if gain <= eloK/2 {
		t.Errorf("upset gain %g, want more than the even-match gain %g", gain, eloK/2)
	}
	if want := eloK * (1 - expected); math.Abs(gain-want) > 1e-9 {
		t.Errorf("upset gain %g, want %g", gain, want)
	}
}

func TestEloExpectSymmetry(t *testing.T) {
	tab := newEloTable(eloStart, eloK, []string{"A", "B"})
	tab.rating["A"] = 1600
	tab.rating["B"] = 1400
	ea, eb := tab.expect("A", "B"), tab.expect("B", "A")
	if math.Abs(ea+eb-1) > 1e-12 {
		t.Errorf("expectations %g + %g != 1", ea, eb)
	}
	if ea <= 0.5 {
		t.Errorf("higher-rated expectation %g, want > 0.5", ea)
	}
}
