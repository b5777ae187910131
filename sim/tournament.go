package main

import (
	"fmt"
	"log"
	"math/rand"

	"schnapsen-arena/sim/engine"
)

//
// ===== result records =====
//

// GameResult is one row of the raw results log.
type GameResult struct {
	PairingID         string
	GameIndex         int
	DeckSeed          uint64
	Leader            string
	Follower          string
	Winner            string
	WinnerMatchPoints int
	PointsA           int
	PointsB           int
	PointDiff         int // points_a - points_b
}

// PairingRecord accumulates one unordered pair's head-to-head results.
// Point differentials are stored from bot A's perspective.
type PairingRecord struct {
	ID         string
	BotA, BotB string
	WinsA      int
	WinsB      int
	PointDiffs []int
}

func (p *PairingRecord) Games() int { return p.WinsA + p.WinsB }

// BotRecord aggregates a bot's results across all its pairings.
type BotRecord struct {
	Label      string
	Games      int
	Wins       int
	PointDiffs []int
}

// TournamentResult holds everything the reporters consume.
type TournamentResult struct {
	Games    []GameResult
	Pairings []*PairingRecord
	Bots     map[string]*BotRecord
	Order    []string // spec declaration order
	Elo      *eloTable
}

//
// ===== match runner =====
//

// playMatch plays one game to completion. The deck seed alone fixes the
// shuffle; together with the two agents' bound random sources it fixes
// the entire game. Returns the winning bot, its match points, and the
// terminal state for point extraction.
func playMatch(leader, follower engine.Bot, deckSeed uint64) (engine.Bot, int, *engine.GameState) {
	rng := rand.New(rand.NewSource(int64(deckSeed)))
	state := engine.NewGame(leader, follower, engine.ShuffledDeck(rng))

	var winner *engine.BotState
	var points int
	for {
		state.PlayTrick()
		ws, pts, done := state.DeclareWinner()
		if done {
			winner, points = ws, pts
			break
		}
		if len(state.Leader.Hand) == 0 || len(state.Follower.Hand) == 0 {
			// One empty hand without a declared winner breaks the
			// engine's no-winner contract.
			log.Fatalf("engine terminated without declaring a winner (seed %d)", deckSeed)
		}
	}

	loser := state.Follower
	if winner == state.Follower {
		loser = state.Leader
	}
	winner.Bot.NotifyGameEnd(true)
	loser.Bot.NotifyGameEnd(false)

	return winner.Bot, points, state
}

// botPoints extracts a participant's final point total, pending points
// redeemed. A missing bot is a logic defect, not a recoverable state.
func botPoints(state *engine.GameState, b engine.Bot) int {
	if state.Leader.Bot == b {
		return state.Leader.Score.Total()
	}
	if state.Follower.Bot == b {
		return state.Follower.Score.Total()
	}
	log.Fatalf("bot %s not found in final game state", b.Name())
	return 0
}

//
// ===== scheduler =====
//

// runTournament plays every unordered pair of specs for len(seeds)
// games. Pairs are enumerated in declaration order; leader and follower
// alternate by game-index parity (even index: first-named spec leads).
func runTournament(specs []BotSpec, seeds []uint64) *TournamentResult {
	res := &TournamentResult{
		Bots: make(map[string]*BotRecord, len(specs)),
		Elo:  newEloTable(eloStart, eloK, specLabels(specs)),
	}
	for _, s := range specs {
		res.Order = append(res.Order, s.Label)
		res.Bots[s.Label] = &BotRecord{Label: s.Label}
	}

	totalPairings := len(specs) * (len(specs) - 1) / 2
	pairingIndex := 0

	for i, specA := range specs {
		for _, specB := range specs[i+1:] {
			pairingIndex++
			pairing := &PairingRecord{
				ID:   fmt.Sprintf("%s_vs_%s", specA.Label, specB.Label),
				BotA: specA.Label,
				BotB: specB.Label,
			}
			res.Pairings = append(res.Pairings, pairing)
			log.Printf("[%d/%d] running pairing %s", pairingIndex, totalPairings, pairing.ID)

			for gameIndex, deckSeed := range seeds {
				botA := createBot(specA, gameIndex)
				botB := createBot(specB, gameIndex)

				leader, follower := botA, botB
				if gameIndex%2 == 1 {
					leader, follower = botB, botA
				}

				winner, matchPts, final := playMatch(leader, follower, deckSeed)

				pointsA := botPoints(final, botA)
				pointsB := botPoints(final, botB)
				pointDiff := pointsA - pointsB

				winnerLabel := specA.Label
				if winner == botA {
					pairing.WinsA++
					res.Elo.update(specA.Label, specB.Label)
				} else {
					winnerLabel = specB.Label
					pairing.WinsB++
					res.Elo.update(specB.Label, specA.Label)
				}
				pairing.PointDiffs = append(pairing.PointDiffs, pointDiff)

				recA, recB := res.Bots[specA.Label], res.Bots[specB.Label]
				recA.Games++
				recB.Games++
				if winner == botA {
					recA.Wins++
				} else {
					recB.Wins++
				}
				recA.PointDiffs = append(recA.PointDiffs, pointDiff)
				recB.PointDiffs = append(recB.PointDiffs, -pointDiff)

				res.Games = append(res.Games, GameResult{
					PairingID:         pairing.ID,
					GameIndex:         gameIndex,
					DeckSeed:          deckSeed,
					Leader:            leader.Name(),
					Follower:          follower.Name(),
					Winner:            winnerLabel,
					WinnerMatchPoints: matchPts,
					PointsA:           pointsA,
					PointsB:           pointsB,
					PointDiff:         pointDiff,
				})
			}
		}
	}
	return res
}

func specLabels(specs []BotSpec) []string {
	labels := make([]string, len(specs))
	for i, s := range specs {
		labels[i] = s.Label
	}
	return labels
}
