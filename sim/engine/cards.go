package engine

import (
	"fmt"
	"math/rand"
)

type Suit uint8

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

func (s Suit) String() string {
	switch s {
	case Hearts:
		return "H"
	case Diamonds:
		return "D"
	case Clubs:
		return "C"
	}
	return "S"
}

type Rank uint8

// Schnapsen strength order, weakest first.
const (
	Jack Rank = iota
	Queen
	King
	Ten
	Ace
)

func (r Rank) String() string {
	return string("JQKTA"[r])
}

type Card struct {
	Rank Rank
	Suit Suit
}

func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Rank, c.Suit)
}

// NewDeck returns the 20-card Schnapsen deck in a fixed order.
func NewDeck() []Card {
	deck := make([]Card, 0, 20)
	for s := Hearts; s <= Spades; s++ {
		for r := Jack; r <= Ace; r++ {
			deck = append(deck, Card{Rank: r, Suit: s})
		}
	}
	return deck
}

// ShuffledDeck builds a deck and shuffles it with the given source. The
// source fully determines the deal, so equal seeds give equal games.
func ShuffledDeck(r *rand.Rand) []Card {
	deck := NewDeck()
	r.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
	return deck
}
