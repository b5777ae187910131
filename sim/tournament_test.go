package main

import (
	"reflect"
	"testing"

	"schnapsen-arena/sim/bots"
)

var testSpecs = []BotSpec{
	{"Bot1", bots.Bot1},
	{"RandBot", bots.RandBot},
	{"BullyBot", bots.BullyBot},
}

func smallTournament(t *testing.T, games int) *TournamentResult {
	t.Helper()
	return runTournament(testSpecs, deckSeeds(baseSeed, games))
}

func TestTournamentDeterministic(t *testing.T) {
	a := smallTournament(t, 30)
	b := smallTournament(t, 30)
	if !reflect.DeepEqual(a.Games, b.Games) {
		t.Fatal("identical runs produced different game logs")
	}
	if !reflect.DeepEqual(a.Elo.rating, b.Elo.rating) {
		t.Fatal("identical runs produced different Elo ratings")
	}
}

func TestTournamentPairingEnumeration(t *testing.T) {
	res := smallTournament(t, 4)
	want := []string{"Bot1_vs_RandBot", "Bot1_vs_BullyBot", "RandBot_vs_BullyBot"}
	if len(res.Pairings) != len(want) {
		t.Fatalf("got %d pairings, want %d", len(res.Pairings), len(want))
	}
	for i, p := range res.Pairings {
		if p.ID != want[i] {
			t.Errorf("pairing %d is %s, want %s", i, p.ID, want[i])
		}
	}
}

func TestTournamentWinAccounting(t *testing.T) {
	const games = 20
	res := smallTournament(t, games)
	for _, p := range res.Pairings {
		if p.WinsA+p.WinsB != games {
			t.Errorf("%s: wins %d+%d != %d games", p.ID, p.WinsA, p.WinsB, games)
		}
		if len(p.PointDiffs) != games {
			t.Errorf("%s: %d point diffs, want %d", p.ID, len(p.PointDiffs), games)
		}
	}
	totalWins := 0
	for _, b := range res.Bots {
		totalWins += b.Wins
		if b.Games != games*(len(testSpecs)-1) {
			t.Errorf("%s played %d games, want %d", b.Label, b.Games, games*(len(testSpecs)-1))
		}
	}
	if wantGames := games * len(res.Pairings); totalWins != wantGames {
		t.Errorf("total wins %d, want one winner per game (%d)", totalWins, wantGames)
	}
}

func TestTournamentDiffsZeroSum(t *testing.T) {
	res := smallTournament(t, 20)
	// Each game's differential enters one bot as +d and the other as -d.
	sum := 0
	for _, b := range res.Bots {
		for _, d := range b.PointDiffs {
			sum += d
		}
	}
	if sum != 0 {
		t.Errorf("per-bot point differentials sum to %d, want 0", sum)
	}
}

func TestTournamentLeaderAlternates(t *testing.T) {
	res := smallTournament(t, 10)
	for _, g := range res.Games {
		pairing := res.Pairings[0]
		for _, p := range res.Pairings {
			if p.ID == g.PairingID {
				pairing = p
			}
		}
		wantLeader := pairing.BotA
		if g.GameIndex%2 == 1 {
			wantLeader = pairing.BotB
		}
		if g.Leader != wantLeader {
			t.Fatalf("%s game %d: leader %s, want %s", g.PairingID, g.GameIndex, g.Leader, wantLeader)
		}
	}
}

func TestTournamentGameLogConsistent(t *testing.T) {
	res := smallTournament(t, 10)
	for _, g := range res.Games {
		if g.PointDiff != g.PointsA-g.PointsB {
			t.Errorf("%s game %d: diff %d != %d - %d", g.PairingID, g.GameIndex, g.PointDiff, g.PointsA, g.PointsB)
		}
		if g.WinnerMatchPoints < 1 || g.WinnerMatchPoints > 3 {
			t.Errorf("%s game %d: match points %d out of 1..3", g.PairingID, g.GameIndex, g.WinnerMatchPoints)
		}
		if g.Winner != g.Leader && g.Winner != g.Follower {
			t.Errorf("%s game %d: winner %s played neither role", g.PairingID, g.GameIndex, g.Winner)
		}
	}
}
