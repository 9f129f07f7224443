package domain

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// DefaultPoolSize is the number of cards each side starts a match with.
const DefaultPoolSize = 17

// Catalog maps card ids to their definitions. Ids run 1..PoolSize.
type Catalog struct {
	cards map[CardID]Card
}

// CatalogFile is the top-level YAML structure of a card catalog file.
type CatalogFile struct {
	Cards []CatalogEntry `yaml:"cards"`
}

// CatalogEntry is a single card definition in a catalog file.
type CatalogEntry struct {
	ID      int    `yaml:"id"`
	Element string `yaml:"element"`
	Attack  int    `yaml:"attack"`
}

// DefaultCatalog returns the standard 17-card elemental pool.
func DefaultCatalog() *Catalog {
	cards := []Card{
		{ID: 1, Element: ElementFire, AttackPoint: 1},
		{ID: 2, Element: ElementFire, AttackPoint: 1},
		{ID: 3, Element: ElementFire, AttackPoint: 2},
		{ID: 4, Element: ElementFire, AttackPoint: 2},
		{ID: 5, Element: ElementFire, AttackPoint: 3},
		{ID: 6, Element: ElementWood, AttackPoint: 1},
		{ID: 7, Element: ElementWood, AttackPoint: 1},
		{ID: 8, Element: ElementWood, AttackPoint: 2},
		{ID: 9, Element: ElementWood, AttackPoint: 2},
		{ID: 10, Element: ElementWood, AttackPoint: 3},
		{ID: 11, Element: ElementWater, AttackPoint: 1},
		{ID: 12, Element: ElementWater, AttackPoint: 1},
		{ID: 13, Element: ElementWater, AttackPoint: 2},
		{ID: 14, Element: ElementWater, AttackPoint: 2},
		{ID: 15, Element: ElementWater, AttackPoint: 3},
		{ID: 16, Element: ElementNeutral, AttackPoint: 3},
		{ID: 17, Element: ElementVoid, AttackPoint: 0},
	}
	c, err := NewCatalog(cards)
	if err != nil {
		panic(err)
	}
	return c
}

// NewCatalog validates and indexes card definitions.
// Ids must be unique and cover 1..len(cards) exactly.
func NewCatalog(cards []Card) (*Catalog, error) {
	if len(cards) == 0 {
		return nil, fmt.Errorf("catalog has no cards")
	}
	index := make(map[CardID]Card, len(cards))
	for _, c := range cards {
		if c.ID <= EmptyCard || int(c.ID) > len(cards) {
			return nil, fmt.Errorf("card id %d out of range 1..%d", c.ID, len(cards))
		}
		if _, dup := index[c.ID]; dup {
			return nil, fmt.Errorf("duplicate card id %d", c.ID)
		}
		if c.Element == ElementEmpty {
			return nil, fmt.Errorf("card %d has the empty element", c.ID)
		}
		if c.AttackPoint < 0 {
			return nil, fmt.Errorf("card %d has negative attack %d", c.ID, c.AttackPoint)
		}
		index[c.ID] = c
	}
	return &Catalog{cards: index}, nil
}

// ParseCatalogFile reads a YAML catalog file.
func ParseCatalogFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes a YAML catalog document.
func ParseCatalog(data []byte) (*Catalog, error) {
	var cf CatalogFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("parse catalog YAML: %w", err)
	}

	cards := make([]Card, 0, len(cf.Cards))
	for _, entry := range cf.Cards {
		element, err := ParseElement(entry.Element)
		if err != nil {
			return nil, fmt.Errorf("card %d: %w", entry.ID, err)
		}
		cards = append(cards, Card{ID: CardID(entry.ID), Element: element, AttackPoint: entry.Attack})
	}
	return NewCatalog(cards)
}

// PoolSize returns the number of cards in one side's pool.
func (c *Catalog) PoolSize() int {
	return len(c.cards)
}

// Lookup returns the definition for id. The empty sentinel and unknown ids
// resolve to an empty card.
func (c *Catalog) Lookup(id CardID) Card {
	if card, ok := c.cards[id]; ok {
		return card
	}
	return Card{ID: EmptyCard, Element: ElementEmpty}
}

// Cards returns every definition ordered by id.
func (c *Catalog) Cards() []Card {
	out := make([]Card, 0, len(c.cards))
	for _, card := range c.cards {
		out = append(out, card)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
