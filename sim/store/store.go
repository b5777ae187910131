// Package store archives completed tournament runs in Postgres. It is
// optional: the harness runs without a DB and writes file artifacts
// either way.
package store

import (
	"context"
	"embed"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var schema embed.FS

type DB struct{ *pgxpool.Pool }

func Open(dsn string) (*DB, error) {
	p, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		return nil, err
	}
	return &DB{p}, nil
}

func (db *DB) Close(ctx context.Context)      { db.Pool.Close() }
func (db *DB) Ping(ctx context.Context) error { return db.Pool.Ping(ctx) }

func Migrate(ctx context.Context, db *DB) error {
	sqlBytes, err := schema.ReadFile("schema.sql")
	if err != nil {
		return err
	}
	_, err = db.Exec(ctx, string(sqlBytes))
	return err
}

/* -----------------------------
   Minimal write helpers
------------------------------*/

// CreateRun registers a run and returns its id.
func (db *DB) CreateRun(ctx context.Context, gamesPerPairing int, baseSeed int64, alpha float64, bots string) (int64, error) {
	var id int64
	err := db.QueryRow(ctx, `
        INSERT INTO runs(games_per_pairing, base_seed, alpha, bots)
        VALUES ($1,$2,$3,$4)
        RETURNING id
    `, gamesPerPairing, baseSeed, alpha, bots).Scan(&id)
	return id, err
}

// GameRow is one raw game record destined for the games table.
type GameRow struct {
	PairingID         string
	GameIndex         int
	DeckSeed          int64
	Leader            string
	Follower          string
	Winner            string
	WinnerMatchPoints int
	PointsA           int
	PointsB           int
	PointDiff         int
}

// InsertGames bulk-loads the raw game log with COPY.
func (db *DB) InsertGames(ctx context.Context, runID int64, rows []GameRow) error {
	src := make([][]any, len(rows))
	for i, r := range rows {
		src[i] = []any{
			runID, r.PairingID, r.GameIndex, r.DeckSeed,
			r.Leader, r.Follower, r.Winner, r.WinnerMatchPoints,
			r.PointsA, r.PointsB, r.PointDiff,
		}
	}
	_, err := db.CopyFrom(ctx,
		pgx.Identifier{"games"},
		[]string{
			"run_id", "pairing_id", "game_index", "deck_seed",
			"leader", "follower", "winner", "winner_match_points",
			"points_a", "points_b", "point_diff",
		},
		pgx.CopyFromRows(src),
	)
	return err
}

func (db *DB) InsertPairingSummary(ctx context.Context, runID int64,
	pairingID, botA, botB string, games, winsA, winsB int,
	winRateA, avgDiffA, stdDiffA, pValue float64, significant bool) error {
	_, err := db.Exec(ctx, `
        INSERT INTO pairing_summaries(
            run_id, pairing_id, bot_a, bot_b, games, wins_a, wins_b,
            win_rate_a, avg_point_diff_a, std_point_diff_a, p_value, significant)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
    `, runID, pairingID, botA, botB, games, winsA, winsB,
		winRateA, avgDiffA, stdDiffA, pValue, significant)
	return err
}

func (db *DB) InsertBotSummary(ctx context.Context, runID int64,
	bot string, games, wins int, winRate, avgDiff, stdDiff, elo float64) error {
	_, err := db.Exec(ctx, `
        INSERT INTO bot_summaries(
            run_id, bot, games, wins, win_rate, avg_point_diff, std_point_diff, elo)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
    `, runID, bot, games, wins, winRate, avgDiff, stdDiff, elo)
	return err
}

// CompleteRun stamps a run as finished.
func (db *DB) CompleteRun(ctx context.Context, runID int64) error {
	_, err := db.Exec(ctx, `UPDATE runs SET completed_at = now() WHERE id = $1`, runID)
	return err
}
