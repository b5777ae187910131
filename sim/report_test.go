package main

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
)

func sampleResult() *TournamentResult {
	res := &TournamentResult{
		Order: []string{"A", "B"},
		Bots: map[string]*BotRecord{
			"A": {Label: "A", Games: 4, Wins: 3, PointDiffs: []int{10, -5, 20, 7}},
			"B": {Label: "B", Games: 4, Wins: 1, PointDiffs: []int{-10, 5, -20, -7}},
		},
		Pairings: []*PairingRecord{
			{ID: "A_vs_B", BotA: "A", BotB: "B", WinsA: 3, WinsB: 1, PointDiffs: []int{10, -5, 20, 7}},
		},
		Elo: newEloTable(eloStart, eloK, []string{"A", "B"}),
	}
	return res
}

func TestSummarize(t *testing.T) {
	pairings, botRows, pvalues := summarize(sampleResult())

	if len(pairings) != 1 || len(pvalues) != 1 {
		t.Fatalf("got %d pairings, %d pvalue rows, want 1 each", len(pairings), len(pvalues))
	}
	p := pairings[0]
	if p.Games != 4 || p.WinRateA != 0.75 {
		t.Errorf("pairing: games %d rate %g, want 4 and 0.75", p.Games, p.WinRateA)
	}
	if p.AvgDiffA != 8 {
		t.Errorf("avg diff %g, want 8", p.AvgDiffA)
	}

	pv := pvalues[0]
	if pv.WinsA != 3 || pv.LossesA != 1 {
		t.Errorf("pvalue row wins/losses %d/%d, want 3/1", pv.WinsA, pv.LossesA)
	}
	// 3-of-4 is unremarkable for a fair coin.
	if pv.Significant {
		t.Errorf("p = %g flagged significant at alpha %g", pv.PValue, pv.Alpha)
	}

	if len(botRows) != 2 || botRows[0].Label != "A" || botRows[1].Label != "B" {
		t.Fatalf("bot rows out of declaration order: %+v", botRows)
	}
	if botRows[1].AvgDiff != -8 {
		t.Errorf("bot B avg diff %g, want -8", botRows[1].AvgDiff)
	}
}

func TestSummarizeZeroGames(t *testing.T) {
	res := &TournamentResult{
		Order:    []string{"A", "B"},
		Bots:     map[string]*BotRecord{"A": {Label: "A"}, "B": {Label: "B"}},
		Pairings: []*PairingRecord{{ID: "A_vs_B", BotA: "A", BotB: "B"}},
		Elo:      newEloTable(eloStart, eloK, []string{"A", "B"}),
	}
	pairings, botRows, pvalues := summarize(res)
	if pairings[0].WinRateA != 0 || pairings[0].AvgDiffA != 0 {
		t.Errorf("zero games: rate %g diff %g, want zeros", pairings[0].WinRateA, pairings[0].AvgDiffA)
	}
	if botRows[0].WinRate != 0 {
		t.Errorf("zero games: bot win rate %g, want 0", botRows[0].WinRate)
	}
	if pvalues[0].Significant {
		t.Error("zero games must not be significant")
	}
}

func TestWriteReports(t *testing.T) {
	dir := t.TempDir()
	res := sampleResult()
	res.Games = []GameResult{{
		PairingID: "A_vs_B", GameIndex: 0, DeckSeed: 42,
		Leader: "A", Follower: "B", Winner: "A",
		WinnerMatchPoints: 2, PointsA: 70, PointsB: 30, PointDiff: 40,
	}}
	pairings, botRows, pvalues := summarize(res)

	if err := writeReports(dir, res, pairings, botRows, pvalues); err != nil {
		t.Fatalf("writeReports: %v", err)
	}

	for _, name := range []string{
		"tournament_games.csv", "pairing_summary.csv", "bot_summary.csv",
		"pvalues_headtohead.csv", "elo_ratings.csv", "metadata.txt",
	} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing artifact %s: %v", name, err)
		}
	}

	f, err := os.Open(filepath.Join(dir, "tournament_games.csv"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("reading games csv: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("games csv has %d rows, want header + 1", len(records))
	}
	wantHeader := []string{
		"pairing_id", "game_index", "deck_seed", "leader", "follower",
		"winner", "winner_match_points", "points_a", "points_b", "point_diff",
	}
	for i, col := range wantHeader {
		if records[0][i] != col {
			t.Errorf("header column %d is %q, want %q", i, records[0][i], col)
		}
	}
	if records[1][5] != "A" || records[1][9] != "40" {
		t.Errorf("data row %v does not match the logged game", records[1])
	}
}
