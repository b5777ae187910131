package engine

import "testing"

func TestRankPoints(t *testing.T) {
	cases := map[Rank]int{Jack: 2, Queen: 3, King: 4, Ten: 10, Ace: 11}
	for r, want := range cases {
		if got := RankPoints(r); got != want {
			t.Errorf("RankPoints(%s) = %d, want %d", r, got, want)
		}
	}
}

func TestLeaderWins(t *testing.T) {
	trump := Spades
	cases := []struct {
		name     string
		leader   Card
		follower Card
		want     bool
	}{
		{"same suit, higher leader", Card{Ace, Hearts}, Card{Ten, Hearts}, true},
		{"same suit, higher follower", Card{King, Hearts}, Card{Ten, Hearts}, false},
		{"trump lead beats off-suit ace", Card{Jack, Spades}, Card{Ace, Hearts}, true},
		{"trump reply beats off-suit lead", Card{Ace, Hearts}, Card{Jack, Spades}, false},
		{"two off-suits, leader wins", Card{Jack, Hearts}, Card{Ace, Clubs}, true},
		{"trump vs trump, higher wins", Card{Queen, Spades}, Card{King, Spades}, false},
	}
	for _, tc := range cases {
		if got := LeaderWins(tc.leader, tc.follower, trump); got != tc.want {
			t.Errorf("%s: LeaderWins(%s, %s) = %v, want %v",
				tc.name, tc.leader, tc.follower, got, tc.want)
		}
	}
}

func TestNewDeck(t *testing.T) {
	deck := NewDeck()
	if len(deck) != 20 {
		t.Fatalf("deck has %d cards, want 20", len(deck))
	}
	seen := make(map[Card]bool, 20)
	total := 0
	for _, c := range deck {
		if seen[c] {
			t.Fatalf("duplicate card %s", c)
		}
		seen[c] = true
		total += RankPoints(c.Rank)
	}
	if total != 120 {
		t.Errorf("deck totals %d card points, want 120", total)
	}
}
