package engine

import "fmt"

type GamePhase uint8

const (
	// PhaseOne: talon open, no obligation to follow suit.
	PhaseOne GamePhase = iota
	// PhaseTwo: talon exhausted, strict follow/head/trump obligations.
	PhaseTwo
)

// Score separates trick points from declared-but-unredeemed marriage
// points. Pending points only count once the declarer has won a trick.
type Score struct {
	Direct  int
	Pending int
}

// Total folds pending points in, the way end-of-game accounting does.
func (s Score) Total() int { return s.Direct + s.Pending }

// Perspective is the decision snapshot handed to a bot: its legal moves
// plus the observable table context. Bots see nothing else.
type Perspective struct {
	Moves []Move
	Trump Suit
	Phase GamePhase
}

// Bot is an agent bound to one game. Implementations must be stateless
// across games; the tournament constructs a fresh one per game.
type Bot interface {
	Name() string
	// GetMove picks one of p.Moves. leaderMove is nil when leading.
	GetMove(p Perspective, leaderMove *Move) Move
	NotifyGameEnd(won bool)
}

type BotState struct {
	Bot    Bot
	Hand   []Card
	Score  Score
	Tricks int
}

// GameState is one running game. Leader/Follower swap as tricks resolve.
type GameState struct {
	Leader   *BotState
	Follower *BotState
	Talon    []Card // Talon[0] is the next draw; the bottom card is face up
	Trump    Suit
}

// NewGame deals five cards to each side from an already shuffled deck.
// The remaining ten cards form the talon; its bottom card fixes trump.
func NewGame(leader, follower Bot, deck []Card) *GameState {
	if len(deck) != 20 {
		panic(fmt.Sprintf("engine: deal needs a 20-card deck, got %d", len(deck)))
	}
	talon := append([]Card(nil), deck[10:]...)
	return &GameState{
		Leader:   &BotState{Bot: leader, Hand: append([]Card(nil), deck[:5]...)},
		Follower: &BotState{Bot: follower, Hand: append([]Card(nil), deck[5:10]...)},
		Talon:    talon,
		Trump:    talon[len(talon)-1].Suit,
	}
}

func (g *GameState) Phase() GamePhase {
	if len(g.Talon) > 0 {
		return PhaseOne
	}
	return PhaseTwo
}

// LeaderMoves enumerates the legal moves for the side about to lead.
func (g *GameState) LeaderMoves() []Move {
	hand := g.Leader.Hand
	moves := make([]Move, 0, len(hand)+3)
	for _, c := range hand {
		moves = append(moves, Move{Kind: PlayMove, Card: c})
	}
	for s := Hearts; s <= Spades; s++ {
		if containsCard(hand, Card{Rank: Queen, Suit: s}) && containsCard(hand, Card{Rank: King, Suit: s}) {
			moves = append(moves, Move{
				Kind: MarriageMove,
				Card: Card{Rank: Queen, Suit: s},
				King: Card{Rank: King, Suit: s},
			})
		}
	}
	if g.Phase() == PhaseOne && containsCard(hand, Card{Rank: Jack, Suit: g.Trump}) {
		moves = append(moves, Move{Kind: ExchangeMove, Card: Card{Rank: Jack, Suit: g.Trump}})
	}
	return moves
}

// FollowerMoves enumerates legal replies to the led card. In phase one
// any card goes. In phase two the follower must follow suit, must head
// the trick within the suit if able, and must trump when void.
func (g *GameState) FollowerMoves(led Card) []Move {
	hand := g.Follower.Hand
	if g.Phase() == PhaseOne {
		return playMoves(hand)
	}
	var sameSuit, winners, trumps []Card
	for _, c := range hand {
		if c.Suit == led.Suit {
			sameSuit = append(sameSuit, c)
			if RankPoints(c.Rank) > RankPoints(led.Rank) {
				winners = append(winners, c)
			}
		} else if c.Suit == g.Trump {
			trumps = append(trumps, c)
		}
	}
	switch {
	case len(winners) > 0:
		return playMoves(winners)
	case len(sameSuit) > 0:
		return playMoves(sameSuit)
	case len(trumps) > 0:
		return playMoves(trumps)
	}
	return playMoves(hand)
}

// PlayTrick runs one complete trick: leader move (looping past trump
// exchanges), follower reply, resolution, scoring, drawing.
func (g *GameState) PlayTrick() {
	leader, follower := g.Leader, g.Follower

	var leaderMove Move
	for {
		p := Perspective{Moves: g.LeaderMoves(), Trump: g.Trump, Phase: g.Phase()}
		leaderMove = leader.Bot.GetMove(p, nil)
		if !leaderMove.IsExchange() {
			break
		}
		g.exchangeTrump(leader)
	}

	if leaderMove.IsMarriage() {
		if leaderMove.Card.Suit == g.Trump {
			leader.Score.Pending += TrumpMarriagePoints
		} else {
			leader.Score.Pending += PlainMarriagePoints
		}
	}

	led := leaderMove.Played()
	leader.Hand = removeCard(leader.Hand, led)

	fp := Perspective{Moves: g.FollowerMoves(led), Trump: g.Trump, Phase: g.Phase()}
	reply := follower.Bot.GetMove(fp, &leaderMove)
	replyCard := reply.Played()
	follower.Hand = removeCard(follower.Hand, replyCard)

	winner, loser := follower, leader
	if LeaderWins(led, replyCard, g.Trump) {
		winner, loser = leader, follower
	}
	winner.Score.Direct += RankPoints(led.Rank) + RankPoints(replyCard.Rank)
	winner.Score.Direct += winner.Score.Pending
	winner.Score.Pending = 0
	winner.Tricks++

	if len(g.Talon) > 0 {
		winner.Hand = append(winner.Hand, g.Talon[0])
		loser.Hand = append(loser.Hand, g.Talon[1])
		g.Talon = g.Talon[2:]
	}

	g.Leader, g.Follower = winner, loser
}

// DeclareWinner reports the finished game, if any: first to 66 redeemed
// points, or the winner of the last trick once both hands are empty.
// Match points: 3 if the loser took no trick, 2 below 33 points, else 1.
func (g *GameState) DeclareWinner() (*BotState, int, bool) {
	if g.Leader.Score.Direct >= 66 {
		return g.Leader, matchPoints(g.Follower), true
	}
	if g.Follower.Score.Direct >= 66 {
		return g.Follower, matchPoints(g.Leader), true
	}
	if len(g.Leader.Hand) == 0 && len(g.Follower.Hand) == 0 {
		// Leader here is the winner of the final trick.
		return g.Leader, 1, true
	}
	return nil, 0, false
}

func matchPoints(loser *BotState) int {
	switch {
	case loser.Tricks == 0:
		return 3
	case loser.Score.Direct < 33:
		return 2
	}
	return 1
}

func (g *GameState) exchangeTrump(bs *BotState) {
	jack := Card{Rank: Jack, Suit: g.Trump}
	bottom := len(g.Talon) - 1
	for i, c := range bs.Hand {
		if c == jack {
			bs.Hand[i], g.Talon[bottom] = g.Talon[bottom], jack
			return
		}
	}
	panic("engine: trump exchange without the trump jack in hand")
}

func playMoves(cards []Card) []Move {
	moves := make([]Move, len(cards))
	for i, c := range cards {
		moves[i] = Move{Kind: PlayMove, Card: c}
	}
	return moves
}

func containsCard(hand []Card, c Card) bool {
	for _, h := range hand {
		if h == c {
			return true
		}
	}
	return false
}

func removeCard(hand []Card, c Card) []Card {
	for i, h := range hand {
		if h == c {
			return append(hand[:i], hand[i+1:]...)
		}
	}
	panic(fmt.Sprintf("engine: card %s not in hand", c))
}
