package bots

import (
	"math/rand"

	"schnapsen-arena/sim/engine"
)

// Shared follower block: restrict to winning replies when any exist,
// then take the cheapest card (cheapest winner when winning, cheapest
// loser otherwise).
var (
	winningReply = Rule{When: following, Keep: beatsLeader}
	cheapFollow  = Rule{When: following, Score: negCardPoints}
)

// cheapLead prefers leading a cheap non-trump card, falling back to the
// cheapest trump. Trump exchanges never lead a trick.
func cheapLead(when func(Context, []engine.Move) bool) []Rule {
	return []Rule{
		{When: when, Keep: playsCard},
		{When: when, Keep: nonTrumpPlay},
		{When: when, Score: negCardPoints},
	}
}

// Bot1 — GreedyPoints: highest immediate card points.
func Bot1(rng *rand.Rand, name string) engine.Bot {
	return New(rng, name, []Rule{{Score: scoreImmediate}})
}

// Bot2 — MarriageBonus: Bot1 plus the marriage bonus.
func Bot2(rng *rand.Rand, name string) engine.Bot {
	return New(rng, name, []Rule{{Score: scoreWithMarriage}})
}

// Bot3 — TrumpExchangePreference: Bot2 plus a flat exchange bonus.
func Bot3(rng *rand.Rand, name string) engine.Bot {
	return New(rng, name, []Rule{{Score: scoreFull}})
}

// Bot4 — WinIfFollower: as follower, only winning replies when any exist.
func Bot4(rng *rand.Rand, name string) engine.Bot {
	return New(rng, name, []Rule{
		winningReply,
		{Score: scoreFull},
	})
}

// Bot5 — WinCheapIfFollower: wins with the cheapest winning card; when
// it cannot win, falls through to the scoring cascade untouched.
func Bot5(rng *rand.Rand, name string) engine.Bot {
	return New(rng, name, []Rule{
		winningReply,
		{When: followingCanWin, Score: negCardPoints},
		{Score: scoreFull},
	})
}

// Bot6 — WinOrLoseCheapIfFollower: wins cheaply, otherwise loses cheaply.
func Bot6(rng *rand.Rand, name string) engine.Bot {
	return New(rng, name, []Rule{
		winningReply,
		cheapFollow,
		{Score: scoreFull},
	})
}

// Bot7old — LeaderLowCardProbe: Bot6 plus cheap non-trump leads in phase one.
func Bot7old(rng *rand.Rand, name string) engine.Bot {
	rules := cheapLead(leadingPhaseOne)
	rules = append(rules, winningReply, cheapFollow, Rule{Score: scoreFull})
	return New(rng, name, rules)
}

// Bot7 — AggressiveNonTrumpLead: Bot6 plus non-trump Ace/Ten leads in phase one.
func Bot7(rng *rand.Rand, name string) engine.Bot {
	return New(rng, name, []Rule{
		{When: leadingPhaseOne, Keep: aggressiveLead},
		winningReply,
		cheapFollow,
		{Score: scoreFull},
	})
}

// Bot8 — PhaseTwoStrict: aggressive phase-one leads, cheap phase-two
// leads, and no marriage bonus once the stock is closed.
func Bot8(rng *rand.Rand, name string) engine.Bot {
	rules := cheapLead(leadingPhaseTwo)
	rules = append(rules,
		Rule{When: leadingPhaseOne, Keep: aggressiveLead},
		winningReply,
		cheapFollow,
		Rule{Score: scoreStrict},
	)
	return New(rng, name, rules)
}

// RandBot plays uniformly at random: the empty cascade.
func RandBot(rng *rand.Rand, name string) engine.Bot {
	return New(rng, name, nil)
}

// BullyBot plays a random trump when it has one, else follows the
// leader's suit, else dumps its most valuable card.
func BullyBot(rng *rand.Rand, name string) engine.Bot {
	trumpPlay := func(ctx Context, m engine.Move) bool {
		return m.IsRegular() && m.Card.Suit == ctx.Trump
	}
	sameSuit := func(ctx Context, m engine.Move) bool {
		return ctx.Leader != nil && m.IsRegular() && m.Card.Suit == ctx.Leader.Suit
	}
	return New(rng, name, []Rule{
		{Keep: trumpPlay},
		{
			When: func(ctx Context, cands []engine.Move) bool {
				return ctx.Leader != nil && !anyMove(ctx, cands, trumpPlay)
			},
			Keep: sameSuit,
		},
		{
			When: func(ctx Context, cands []engine.Move) bool {
				if anyMove(ctx, cands, trumpPlay) {
					return false
				}
				return ctx.Leader == nil || !anyMove(ctx, cands, sameSuit)
			},
			Score: scoreImmediate,
		},
	})
}

func anyMove(ctx Context, moves []engine.Move, pred func(Context, engine.Move) bool) bool {
	for _, m := range moves {
		if pred(ctx, m) {
			return true
		}
	}
	return false
}
