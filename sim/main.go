package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"schnapsen-arena/sim/bots"
	"schnapsen-arena/sim/store"
)

//
// ===== experiment constants =====
//

// Fixed by design: the run takes no arguments, and these values are
// recorded in metadata.txt so every artifact names the parameters that
// produced it.
const (
	gamesPerPairing = 1000
	baseSeed        = 20240229
	alpha           = 0.05

	eloStart = 1500.0
	eloK     = 16.0
)

// botSpecs in declaration order; pairing enumeration and report rows
// follow this order.
var botSpecs = []BotSpec{
	{"Bot1", bots.Bot1},
	{"Bot2", bots.Bot2},
	{"Bot3", bots.Bot3},
	{"Bot4", bots.Bot4},
	{"Bot5", bots.Bot5},
	{"Bot6", bots.Bot6},
	{"Bot7old", bots.Bot7old},
	{"Bot7", bots.Bot7},
	{"Bot8", bots.Bot8},
	{"RandBot", bots.RandBot},
	{"BullyBot", bots.BullyBot},
}

// complexityOrder is the hand-declared display ordering for the third
// chart. It ranks nothing; it only fixes the x axis.
var complexityOrder = []string{
	"Bot1", "Bot2", "Bot3", "Bot4", "Bot5", "Bot6", "Bot7old", "Bot7", "Bot8",
}

//
// ===== bootstrap =====
//

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	_ = godotenv.Load()

	outputDir := getenv("OUTPUT_DIR", "experiment_output")

	seeds := deckSeeds(baseSeed, gamesPerPairing)
	log.Printf("tournament: %d bots, %d games per pairing, base seed %d",
		len(botSpecs), gamesPerPairing, baseSeed)

	res := runTournament(botSpecs, seeds)
	pairings, botRows, pvalues := summarize(res)

	if err := writeReports(outputDir, res, pairings, botRows, pvalues); err != nil {
		log.Fatalf("writing reports: %v", err)
	}
	if err := renderCharts(outputDir, botRows, complexityOrder); err != nil {
		log.Fatalf("rendering charts: %v", err)
	}
	persistRun(res, pairings, botRows, pvalues)

	printSummary(outputDir, botRows, pvalues)
}

//
// ===== persistence (optional) =====
//

// persistRun archives the run when DB_URL is set. Failures are logged
// and the run continues: the file artifacts are the source of truth.
func persistRun(res *TournamentResult, pairings []PairingSummary, botRows []BotSummary, pvalues []PValueRow) {
	dsn := strings.TrimSpace(getenv("DB_URL", ""))
	if dsn == "" {
		log.Println("DB_URL not set; skipping database archive")
		return
	}
	ctx := context.Background()
	db, err := store.Open(dsn)
	if err != nil {
		log.Printf("store open failed: %v (skipping archive)", err)
		return
	}
	defer db.Close(ctx)
	if err := db.Ping(ctx); err != nil {
		log.Printf("store ping failed: %v (skipping archive)", err)
		return
	}
	if err := store.Migrate(ctx, db); err != nil {
		log.Printf("store migrate failed: %v (skipping archive)", err)
		return
	}

	runID, err := db.CreateRun(ctx, gamesPerPairing, baseSeed, alpha, strings.Join(res.Order, ", "))
	if err != nil {
		log.Printf("CreateRun failed: %v (skipping archive)", err)
		return
	}

	rows := make([]store.GameRow, len(res.Games))
	for i, g := range res.Games {
		rows[i] = store.GameRow{
			PairingID:         g.PairingID,
			GameIndex:         g.GameIndex,
			DeckSeed:          int64(g.DeckSeed),
			Leader:            g.Leader,
			Follower:          g.Follower,
			Winner:            g.Winner,
			WinnerMatchPoints: g.WinnerMatchPoints,
			PointsA:           g.PointsA,
			PointsB:           g.PointsB,
			PointDiff:         g.PointDiff,
		}
	}
	if err := db.InsertGames(ctx, runID, rows); err != nil {
		log.Printf("InsertGames failed: %v", err)
	}
	pvByID := make(map[string]PValueRow, len(pvalues))
	for _, pv := range pvalues {
		pvByID[pv.ID] = pv
	}
	for _, p := range pairings {
		pv := pvByID[p.ID]
		if err := db.InsertPairingSummary(ctx, runID, p.ID, p.BotA, p.BotB,
			p.Games, p.WinsA, p.WinsB, p.WinRateA, p.AvgDiffA, p.StdDiffA,
			pv.PValue, pv.Significant); err != nil {
			log.Printf("InsertPairingSummary(%s) failed: %v", p.ID, err)
		}
	}
	for _, b := range botRows {
		if err := db.InsertBotSummary(ctx, runID, b.Label, b.Games, b.Wins,
			b.WinRate, b.AvgDiff, b.StdDiff, res.Elo.rating[b.Label]); err != nil {
			log.Printf("InsertBotSummary(%s) failed: %v", b.Label, err)
		}
	}
	if err := db.CompleteRun(ctx, runID); err != nil {
		log.Printf("CompleteRun failed: %v", err)
	} else {
		log.Printf("run %d archived.", runID)
	}
}

//
// ===== console summary =====
//

func printSummary(outputDir string, botRows []BotSummary, pvalues []PValueRow) {
	fmt.Println()
	fmt.Println("Bot standings:")
	for _, b := range botRows {
		low, hi := WilsonCI95(b.Wins, b.Games)
		fmt.Printf("  %-8s win rate %.3f [%.3f, %.3f]  avg diff %+.1f\n",
			b.Label, b.WinRate, low, hi, b.AvgDiff)
	}

	significant := 0
	for _, pv := range pvalues {
		if pv.Significant {
			significant++
		}
	}
	fmt.Printf("\nSignificant pairings: %d/%d at alpha=%g\n", significant, len(pvalues), alpha)

	fmt.Println("\nExperiment complete. Outputs:")
	for _, name := range []string{
		"tournament_games.csv", "pairing_summary.csv", "bot_summary.csv",
		"pvalues_headtohead.csv", "elo_ratings.csv", "metadata.txt",
		"win_rate_per_bot.png", "avg_point_diff_per_bot.png", "win_rate_by_complexity.png",
	} {
		fmt.Printf("- %s/%s\n", outputDir, name)
	}
}
