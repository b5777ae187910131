package engine

// RankPoints maps a rank to its card-point value.
func RankPoints(r Rank) int {
	switch r {
	case Jack:
		return 2
	case Queen:
		return 3
	case King:
		return 4
	case Ten:
		return 10
	}
	return 11
}

// Marriage values. Trump marriages score double.
const (
	TrumpMarriagePoints = 40
	PlainMarriagePoints = 20
)

// LeaderWins is the single authoritative trick-resolution rule. Both the
// trick loop and the bot policies go through it, so they cannot drift.
func LeaderWins(leader, follower Card, trump Suit) bool {
	if leader.Suit == follower.Suit {
		return RankPoints(leader.Rank) > RankPoints(follower.Rank)
	}
	if leader.Suit == trump {
		return true
	}
	if follower.Suit == trump {
		return false
	}
	return true
}
