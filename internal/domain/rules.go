package domain

import "fmt"

// Damage is the life each side loses when a round resolves. Both values are non-negative.
type Damage struct {
	Player int
	AI     int
}

// DamageRule maps the two committed cards of a round to the damage each side takes.
type DamageRule interface {
	Name() string
	Resolve(player, ai Card) Damage
}

const (
	DamageRuleElemental  = "elemental"
	DamageRuleDifference = "difference"
)

// NewDamageRule returns the rule registered under name. An empty name selects the elemental rule.
func NewDamageRule(name string) (DamageRule, error) {
	switch name {
	case "", DamageRuleElemental:
		return ElementalRule{}, nil
	case DamageRuleDifference:
		return DifferenceRule{}, nil
	default:
		return nil, fmt.Errorf("unknown damage rule: %s", name)
	}
}

// ElementalRule compares attack points with a +1 bonus for elemental advantage.
// Void cards cancel the round. When the AI is stronger the player takes the
// difference, otherwise the AI takes it (zero on a tie).
type ElementalRule struct{}

func (ElementalRule) Name() string { return DamageRuleElemental }

func (ElementalRule) Resolve(player, ai Card) Damage {
	if player.Element == ElementVoid || ai.Element == ElementVoid {
		return Damage{}
	}
	if player.IsEmpty() || ai.IsEmpty() {
		return Damage{}
	}
	aiAttack := ai.EffectiveAttack(player)
	playerAttack := player.EffectiveAttack(ai)
	if aiAttack > playerAttack {
		return Damage{Player: aiAttack - playerAttack}
	}
	return Damage{AI: playerAttack - aiAttack}
}

// DifferenceRule compares raw attack points; the weaker side takes the difference.
type DifferenceRule struct{}

func (DifferenceRule) Name() string { return DamageRuleDifference }

func (DifferenceRule) Resolve(player, ai Card) Damage {
	if player.IsEmpty() || ai.IsEmpty() {
		return Damage{}
	}
	switch {
	case ai.AttackPoint > player.AttackPoint:
		return Damage{Player: ai.AttackPoint - player.AttackPoint}
	case player.AttackPoint > ai.AttackPoint:
		return Damage{AI: player.AttackPoint - ai.AttackPoint}
	}
	return Damage{}
}

// ApplyDamage deducts damage from both life totals, clamping at zero, and
// adds the life actually lost to the cumulative counters.
func (m *MatchState) ApplyDamage(d Damage) {
	lostPlayer := min(max(d.Player, 0), m.LifePlayer)
	lostAI := min(max(d.AI, 0), m.LifeAI)
	m.LifePlayer -= lostPlayer
	m.LifeAI -= lostAI
	m.LifeLostPlayer += lostPlayer
	m.LifeLostAI += lostAI
}

// ResolveStatus decides the match once a round has been resolved and hands refilled.
// AI out of life wins for the player; player out of life loses. When the player
// has no cards left in deck or hand, the side with more life wins and a tie goes
// to the player.
func (m *MatchState) ResolveStatus() Status {
	switch {
	case m.LifeAI <= 0:
		m.Status = StatusPlayerWon
	case m.LifePlayer <= 0:
		m.Status = StatusPlayerLost
	case m.DeckPlayer.Size() == 0 && m.HandPlayer.IsEmpty():
		if m.LifeAI > m.LifePlayer {
			m.Status = StatusPlayerLost
		} else {
			m.Status = StatusPlayerWon
		}
	}
	return m.Status
}
