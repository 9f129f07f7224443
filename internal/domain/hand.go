package domain

// HandSize is the fixed number of slots in a hand.
const HandSize = 4

// Hand holds the drawn cards available to one side. EmptyCard marks a free slot.
type Hand [HandSize]CardID

// FillEmptySlots draws one card into every empty slot, left to right, and returns
// how many cards were placed. An exhausted deck leaves the remaining slots empty.
func (h *Hand) FillEmptySlots(deck *Deck) int {
	placed := 0
	for i := range h {
		if h[i] != EmptyCard {
			continue
		}
		id, err := deck.Draw()
		if err != nil {
			break
		}
		h[i] = id
		placed++
	}
	return placed
}

// Take removes and returns the card at index.
func (h *Hand) Take(index int) (CardID, error) {
	if index < 0 || index >= HandSize {
		return EmptyCard, ErrInvalidIndex
	}
	id := h[index]
	if id == EmptyCard {
		return EmptyCard, ErrEmptySlot
	}
	h[index] = EmptyCard
	return id, nil
}

// Slot returns the card at index, or ErrInvalidIndex.
func (h Hand) Slot(index int) (CardID, error) {
	if index < 0 || index >= HandSize {
		return EmptyCard, ErrInvalidIndex
	}
	return h[index], nil
}

// Count returns the number of occupied slots.
func (h Hand) Count() int {
	n := 0
	for _, id := range h {
		if id != EmptyCard {
			n++
		}
	}
	return n
}

// IsEmpty reports whether every slot is empty.
func (h Hand) IsEmpty() bool {
	return h.Count() == 0
}

// Cards returns the occupied slots in slot order.
func (h Hand) Cards() []CardID {
	out := make([]CardID, 0, HandSize)
	for _, id := range h {
		if id != EmptyCard {
			out = append(out, id)
		}
	}
	return out
}
