// Package bots implements the rule-cascade policies evaluated by the
// tournament. Every variant is the same engine with a different ordered
// rule list; no variant searches ahead of the current trick.
package bots

import (
	"math/rand"

	"schnapsen-arena/sim/engine"
)

// Context is what a rule may look at: the trump suit, the game phase,
// and the card the opponent has already committed (nil when leading).
type Context struct {
	Trump  engine.Suit
	Phase  engine.GamePhase
	Leader *engine.Card
}

// Rule is one step of a cascade. Exactly one of Keep and Score is set.
//
// A Keep rule narrows the candidates to the satisfying subset, or leaves
// them untouched when nothing satisfies — a filter can never empty the
// set. A Score rule keeps only the maximal-scoring candidates. When, if
// present, gates the rule on the context and current candidate set.
type Rule struct {
	When  func(Context, []engine.Move) bool
	Keep  func(Context, engine.Move) bool
	Score func(Context, engine.Move) int
}

// Cascade runs an ordered rule list over the legal moves and tie-breaks
// uniformly with its bound random source. Reproducibility hangs on that
// source being the only randomness and the rules running in list order.
type Cascade struct {
	name  string
	rng   *rand.Rand
	rules []Rule
}

func New(rng *rand.Rand, name string, rules []Rule) *Cascade {
	return &Cascade{name: name, rng: rng, rules: rules}
}

func (c *Cascade) Name() string { return c.name }

func (c *Cascade) GetMove(p engine.Perspective, leaderMove *engine.Move) engine.Move {
	ctx := Context{Trump: p.Trump, Phase: p.Phase}
	if leaderMove != nil {
		led := leaderMove.Played()
		ctx.Leader = &led
	}

	candidates := p.Moves
	for _, r := range c.rules {
		if r.When != nil && !r.When(ctx, candidates) {
			continue
		}
		if r.Keep != nil {
			var kept []engine.Move
			for _, m := range candidates {
				if r.Keep(ctx, m) {
					kept = append(kept, m)
				}
			}
			if len(kept) > 0 {
				candidates = kept
			}
			continue
		}
		best := r.Score(ctx, candidates[0])
		top := []engine.Move{candidates[0]}
		for _, m := range candidates[1:] {
			s := r.Score(ctx, m)
			if s > best {
				best = s
				top = []engine.Move{m}
			} else if s == best {
				top = append(top, m)
			}
		}
		candidates = top
		if len(candidates) == 0 {
			panic("bots: scoring rule emptied the candidate set")
		}
	}

	return candidates[c.rng.Intn(len(candidates))]
}

func (c *Cascade) NotifyGameEnd(won bool) {}
