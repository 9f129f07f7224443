package domain

import "fmt"

// CardID identifies a card within a side's pool. Zero is the empty-slot sentinel.
type CardID int

// EmptyCard marks an empty hand slot or the absence of a selection.
const EmptyCard CardID = 0

// Element is the elemental affinity of a card.
type Element int

const (
	ElementEmpty Element = iota
	ElementFire
	ElementWood
	ElementWater
	ElementNeutral
	ElementVoid
)

var elementNames = map[Element]string{
	ElementEmpty:   "empty",
	ElementFire:    "fire",
	ElementWood:    "wood",
	ElementWater:   "water",
	ElementNeutral: "neutral",
	ElementVoid:    "void",
}

func (e Element) String() string {
	if name, ok := elementNames[e]; ok {
		return name
	}
	return fmt.Sprintf("element(%d)", int(e))
}

// ParseElement resolves an element from its lowercase name.
func ParseElement(name string) (Element, error) {
	for e, n := range elementNames {
		if n == name {
			return e, nil
		}
	}
	return ElementEmpty, fmt.Errorf("unknown element %q", name)
}

// Beats reports whether e has the elemental advantage over other.
// Wood beats Water, Water beats Fire, Fire beats Wood.
func (e Element) Beats(other Element) bool {
	switch e {
	case ElementWood:
		return other == ElementWater
	case ElementWater:
		return other == ElementFire
	case ElementFire:
		return other == ElementWood
	}
	return false
}

// Card is the catalog definition behind a CardID.
type Card struct {
	ID          CardID
	Element     Element
	AttackPoint int
}

// IsEmpty reports whether the card is the empty sentinel.
func (c Card) IsEmpty() bool {
	return c.Element == ElementEmpty
}

// EffectiveAttack returns the attack of c against defender, including the elemental bonus.
func (c Card) EffectiveAttack(defender Card) int {
	attack := c.AttackPoint
	if c.Element.Beats(defender.Element) {
		attack++
	}
	return attack
}
