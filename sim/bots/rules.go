package bots

import "schnapsen-arena/sim/engine"

// ----- gates -----

func following(ctx Context, _ []engine.Move) bool { return ctx.Leader != nil }

func leadingPhaseOne(ctx Context, _ []engine.Move) bool {
	return ctx.Leader == nil && ctx.Phase == engine.PhaseOne
}

func leadingPhaseTwo(ctx Context, _ []engine.Move) bool {
	return ctx.Leader == nil && ctx.Phase == engine.PhaseTwo
}

// followingCanWin holds after the winning-reply filter has fired: either
// every remaining candidate beats the leader's card, or none does.
func followingCanWin(ctx Context, candidates []engine.Move) bool {
	if ctx.Leader == nil {
		return false
	}
	for _, m := range candidates {
		if !beatsLeader(ctx, m) {
			return false
		}
	}
	return true
}

// ----- predicates -----

// beatsLeader mirrors the trick through the engine's own resolution rule.
func beatsLeader(ctx Context, m engine.Move) bool {
	if ctx.Leader == nil || !m.PlaysCard() {
		return false
	}
	return !engine.LeaderWins(*ctx.Leader, m.Played(), ctx.Trump)
}

func playsCard(_ Context, m engine.Move) bool { return m.PlaysCard() }

func nonTrumpPlay(ctx Context, m engine.Move) bool {
	return m.PlaysCard() && m.Played().Suit != ctx.Trump
}

// aggressiveLead: a non-trump Ace or Ten, to pressure the opponent's trumps.
func aggressiveLead(ctx Context, m engine.Move) bool {
	if !m.PlaysCard() {
		return false
	}
	c := m.Played()
	return c.Suit != ctx.Trump && (c.Rank == engine.Ace || c.Rank == engine.Ten)
}

// ----- scorers -----

// cardPoints is the immediate value of the card the move commits to the
// trick; a trump exchange commits none and counts zero.
func cardPoints(m engine.Move) int {
	if !m.PlaysCard() {
		return 0
	}
	return engine.RankPoints(m.Played().Rank)
}

func negCardPoints(_ Context, m engine.Move) int { return -cardPoints(m) }

func marriageBonus(ctx Context, m engine.Move) int {
	if !m.IsMarriage() {
		return 0
	}
	if m.Card.Suit == ctx.Trump {
		return engine.TrumpMarriagePoints
	}
	return engine.PlainMarriagePoints
}

const exchangeBonus = 15

// scoreImmediate: card points only.
func scoreImmediate(_ Context, m engine.Move) int { return cardPoints(m) }

// scoreWithMarriage: card points plus the marriage bonus.
func scoreWithMarriage(ctx Context, m engine.Move) int {
	return cardPoints(m) + marriageBonus(ctx, m)
}

// scoreFull: card points, marriage bonus, flat trump-exchange preference.
func scoreFull(ctx Context, m engine.Move) int {
	s := cardPoints(m) + marriageBonus(ctx, m)
	if m.IsExchange() {
		s += exchangeBonus
	}
	return s
}

// scoreStrict suppresses the marriage bonus outside phase one.
func scoreStrict(ctx Context, m engine.Move) int {
	s := cardPoints(m)
	if ctx.Phase == engine.PhaseOne {
		s += marriageBonus(ctx, m)
	}
	if m.IsExchange() {
		s += exchangeBonus
	}
	return s
}
