package domain

import "math/rand"

// Deck is the ordered pile of undrawn card ids for one side. Draws come off the front.
type Deck []CardID

// NewOrderedDeck returns ids 1..poolSize in ascending order.
func NewOrderedDeck(poolSize int) Deck {
	deck := make(Deck, 0, poolSize)
	for id := 1; id <= poolSize; id++ {
		deck = append(deck, CardID(id))
	}
	return deck
}

// NewDeck returns ids 1..poolSize shuffled with rng. The same seed yields the same order.
func NewDeck(poolSize int, rng *rand.Rand) Deck {
	deck := NewOrderedDeck(poolSize)
	rng.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })
	return deck
}

// Draw removes and returns the front card.
func (d *Deck) Draw() (CardID, error) {
	if len(*d) == 0 {
		return EmptyCard, ErrEmptyDeck
	}
	id := (*d)[0]
	*d = (*d)[1:]
	return id, nil
}

// Size returns the number of undrawn cards.
func (d Deck) Size() int {
	return len(d)
}

// Clone returns an independent copy of the deck.
func (d Deck) Clone() Deck {
	if d == nil {
		return nil
	}
	out := make(Deck, len(d))
	copy(out, d)
	return out
}
