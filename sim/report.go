package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

//
// ===== summaries =====
//

type PairingSummary struct {
	ID         string
	BotA, BotB string
	Games      int
	WinsA      int
	WinsB      int
	WinRateA   float64
	AvgDiffA   float64
	StdDiffA   float64
}

type BotSummary struct {
	Label   string
	Games   int
	Wins    int
	WinRate float64
	AvgDiff float64
	StdDiff float64
}

type PValueRow struct {
	ID          string
	BotA, BotB  string
	WinsA       int
	LossesA     int
	Games       int
	PValue      float64
	Alpha       float64
	Significant bool
}

// summarize reduces the raw aggregates to the tabular summaries. Zero
// games default win rate and mean to 0 rather than failing.
func summarize(res *TournamentResult) ([]PairingSummary, []BotSummary, []PValueRow) {
	pairings := make([]PairingSummary, 0, len(res.Pairings))
	pvalues := make([]PValueRow, 0, len(res.Pairings))
	for _, p := range res.Pairings {
		games := p.Games()
		winRate := 0.0
		if games > 0 {
			winRate = float64(p.WinsA) / float64(games)
		}
		avg, std := meanStd(p.PointDiffs)
		pairings = append(pairings, PairingSummary{
			ID: p.ID, BotA: p.BotA, BotB: p.BotB,
			Games: games, WinsA: p.WinsA, WinsB: p.WinsB,
			WinRateA: winRate, AvgDiffA: avg, StdDiffA: std,
		})
		pv := binomTestTwoSided(p.WinsA, games, 0.5)
		pvalues = append(pvalues, PValueRow{
			ID: p.ID, BotA: p.BotA, BotB: p.BotB,
			WinsA: p.WinsA, LossesA: p.WinsB, Games: games,
			PValue: pv, Alpha: alpha, Significant: pv < alpha,
		})
	}

	bots := make([]BotSummary, 0, len(res.Order))
	for _, label := range res.Order {
		rec := res.Bots[label]
		winRate := 0.0
		if rec.Games > 0 {
			winRate = float64(rec.Wins) / float64(rec.Games)
		}
		avg, std := meanStd(rec.PointDiffs)
		bots = append(bots, BotSummary{
			Label: label, Games: rec.Games, Wins: rec.Wins,
			WinRate: winRate, AvgDiff: avg, StdDiff: std,
		})
	}
	return pairings, bots, pvalues
}

//
// ===== csv writers =====
//

func writeCSV(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close()
		return err
	}
	if err := w.WriteAll(rows); err != nil {
		f.Close()
		return err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func ff(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

func writeGamesCSV(path string, games []GameResult) error {
	rows := make([][]string, len(games))
	for i, g := range games {
		rows[i] = []string{
			g.PairingID,
			strconv.Itoa(g.GameIndex),
			strconv.FormatUint(g.DeckSeed, 10),
			g.Leader,
			g.Follower,
			g.Winner,
			strconv.Itoa(g.WinnerMatchPoints),
			strconv.Itoa(g.PointsA),
			strconv.Itoa(g.PointsB),
			strconv.Itoa(g.PointDiff),
		}
	}
	return writeCSV(path, []string{
		"pairing_id", "game_index", "deck_seed", "leader", "follower",
		"winner", "winner_match_points", "points_a", "points_b", "point_diff",
	}, rows)
}

func writePairingSummaryCSV(path string, summaries []PairingSummary) error {
	rows := make([][]string, len(summaries))
	for i, s := range summaries {
		rows[i] = []string{
			s.ID, s.BotA, s.BotB,
			strconv.Itoa(s.Games), strconv.Itoa(s.WinsA), strconv.Itoa(s.WinsB),
			ff(s.WinRateA), ff(s.AvgDiffA), ff(s.StdDiffA),
		}
	}
	return writeCSV(path, []string{
		"pairing_id", "bot_a", "bot_b", "games", "wins_a", "wins_b",
		"win_rate_a", "avg_point_diff_a", "std_point_diff_a",
	}, rows)
}

func writeBotSummaryCSV(path string, summaries []BotSummary) error {
	rows := make([][]string, len(summaries))
	for i, s := range summaries {
		rows[i] = []string{
			s.Label, strconv.Itoa(s.Games), strconv.Itoa(s.Wins),
			ff(s.WinRate), ff(s.AvgDiff), ff(s.StdDiff),
		}
	}
	return writeCSV(path, []string{
		"bot", "games", "wins", "win_rate", "avg_point_diff", "std_point_diff",
	}, rows)
}

func writePValuesCSV(path string, rows []PValueRow) error {
	out := make([][]string, len(rows))
	for i, r := range rows {
		out[i] = []string{
			r.ID, r.BotA, r.BotB,
			strconv.Itoa(r.WinsA), strconv.Itoa(r.LossesA), strconv.Itoa(r.Games),
			ff(r.PValue), ff(r.Alpha), strconv.FormatBool(r.Significant),
		}
	}
	return writeCSV(path, []string{
		"pairing_id", "bot_a", "bot_b", "wins_a", "losses_a", "games",
		"p_value", "alpha", "significant",
	}, out)
}

func writeEloCSV(path string, elo *eloTable) error {
	rows := make([][]string, 0, len(elo.order))
	for _, label := range elo.order {
		rows = append(rows, []string{
			label,
			strconv.FormatFloat(elo.rating[label], 'f', 1, 64),
			strconv.Itoa(elo.games[label]),
		})
	}
	return writeCSV(path, []string{"bot", "elo", "games"}, rows)
}

func writeMetadata(path string, labels []string, seedCount int) error {
	var b strings.Builder
	fmt.Fprintf(&b, "GAMES_PER_PAIRING=%d\n", gamesPerPairing)
	fmt.Fprintf(&b, "BASE_SEED=%d\n", baseSeed)
	fmt.Fprintf(&b, "ALPHA=%g\n", alpha)
	fmt.Fprintf(&b, "BOTS=%s\n", strings.Join(labels, ", "))
	fmt.Fprintf(&b, "DECK_SEEDS=%d\n", seedCount)
	return os.WriteFile(path, []byte(b.String()), 0o644)
}

// writeReports writes every file artifact of a completed run into dir.
func writeReports(dir string, res *TournamentResult, pairings []PairingSummary, bots []BotSummary, pvalues []PValueRow) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	steps := []struct {
		name string
		fn   func() error
	}{
		{"tournament_games.csv", func() error { return writeGamesCSV(filepath.Join(dir, "tournament_games.csv"), res.Games) }},
		{"pairing_summary.csv", func() error { return writePairingSummaryCSV(filepath.Join(dir, "pairing_summary.csv"), pairings) }},
		{"bot_summary.csv", func() error { return writeBotSummaryCSV(filepath.Join(dir, "bot_summary.csv"), bots) }},
		{"pvalues_headtohead.csv", func() error { return writePValuesCSV(filepath.Join(dir, "pvalues_headtohead.csv"), pvalues) }},
		{"elo_ratings.csv", func() error { return writeEloCSV(filepath.Join(dir, "elo_ratings.csv"), res.Elo) }},
		{"metadata.txt", func() error { return writeMetadata(filepath.Join(dir, "metadata.txt"), res.Order, gamesPerPairing) }},
	}
	for _, s := range steps {
		if err := s.fn(); err != nil {
			return fmt.Errorf("write %s: %w", s.name, err)
		}
	}
	return nil
}
