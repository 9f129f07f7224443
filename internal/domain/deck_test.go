package domain

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"
)

func TestNewDeckIsPermutationOfPool(t *testing.T) {
	deck := NewDeck(DefaultPoolSize, rand.New(rand.NewSource(7)))
	if deck.Size() != DefaultPoolSize {
		t.Fatalf("deck size = %d, want %d", deck.Size(), DefaultPoolSize)
	}

	seen := make(map[CardID]bool)
	for _, id := range deck {
		if id <= EmptyCard || int(id) > DefaultPoolSize {
			t.Fatalf("card id out of range: %d", id)
		}
		if seen[id] {
			t.Fatalf("duplicate card id: %d", id)
		}
		seen[id] = true
	}
}

func TestNewDeckDeterministicForSeed(t *testing.T) {
	a := NewDeck(DefaultPoolSize, rand.New(rand.NewSource(42)))
	b := NewDeck(DefaultPoolSize, rand.New(rand.NewSource(42)))
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("same seed produced different decks: %v vs %v", a, b)
	}
}

func TestNewOrderedDeck(t *testing.T) {
	got := NewOrderedDeck(4)
	want := Deck{1, 2, 3, 4}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("NewOrderedDeck() = %v, want %v", got, want)
	}
}

func TestDeckDrawTakesFront(t *testing.T) {
	deck := Deck{5, 9, 2}

	id, err := deck.Draw()
	if err != nil {
		t.Fatalf("draw error: %v", err)
	}
	if id != 5 {
		t.Fatalf("drew %d, want 5", id)
	}
	if !reflect.DeepEqual(deck, Deck{9, 2}) {
		t.Fatalf("deck after draw = %v", deck)
	}
}

func TestDeckDrawEmpty(t *testing.T) {
	deck := Deck{}
	if _, err := deck.Draw(); !errors.Is(err, ErrEmptyDeck) {
		t.Fatalf("draw on empty deck error = %v, want ErrEmptyDeck", err)
	}
}

func TestDeckCloneIsIndependent(t *testing.T) {
	deck := Deck{1, 2, 3}
	clone := deck.Clone()
	clone[0] = 9
	if deck[0] != 1 {
		t.Fatalf("mutating clone changed original: %v", deck)
	}
}
