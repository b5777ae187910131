package main

import "math"

// eloTable keeps one sequential Elo rating per bot label, updated in
// schedule order. Derived entirely from the deterministic game log, so
// the leaderboard is as reproducible as the tournament itself.
type eloTable struct {
	rating map[string]float64
	games  map[string]int
	k      float64
	order  []string
}

func newEloTable(start, k float64, labels []string) *eloTable {
	t := &eloTable{
		rating: make(map[string]float64, len(labels)),
		games:  make(map[string]int, len(labels)),
		k:      k,
		order:  append([]string(nil), labels...),
	}
	for _, l := range labels {
		t.rating[l] = start
	}
	return t
}

func (t *eloTable) expect(a, b string) float64 {
	return 1.0 / (1.0 + math.Pow(10, (t.rating[b]-t.rating[a])/400.0))
}

// update applies one decisive game. The winner gains k*(1-E), the loser
// loses the same amount, so the rating mass is conserved.
func (t *eloTable) update(winner, loser string) {
	ew := t.expect(winner, loser)
	d := t.k * (1 - ew)
	t.rating[winner] += d
	t.rating[loser] -= d
	t.games[winner]++
	t.games[loser]++
}
