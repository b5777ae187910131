package engine

import "fmt"

type MoveKind uint8

const (
	// PlayMove plays a single card into the trick.
	PlayMove MoveKind = iota
	// MarriageMove declares a king-queen pair and leads the queen.
	MarriageMove
	// ExchangeMove swaps the trump jack for the face-up trump card.
	// It does not put a card into the trick; the leader moves again.
	ExchangeMove
)

type Move struct {
	Kind MoveKind
	Card Card // card played (queen for a marriage, trump jack for an exchange)
	King Card // marriage only
}

func (m Move) IsRegular() bool  { return m.Kind == PlayMove }
func (m Move) IsMarriage() bool { return m.Kind == MarriageMove }
func (m Move) IsExchange() bool { return m.Kind == ExchangeMove }

// PlaysCard reports whether the move commits a card to the trick.
func (m Move) PlaysCard() bool { return m.Kind != ExchangeMove }

// Played returns the card this move puts into the trick. Calling it on a
// trump exchange is a programming error.
func (m Move) Played() Card {
	if m.Kind == ExchangeMove {
		panic("engine: trump exchange plays no card")
	}
	return m.Card
}

func (m Move) String() string {
	switch m.Kind {
	case MarriageMove:
		return fmt.Sprintf("marriage(%s+%s)", m.Card, m.King)
	case ExchangeMove:
		return fmt.Sprintf("exchange(%s)", m.Card)
	}
	return m.Card.String()
}
