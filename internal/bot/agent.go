package bot

import (
	"errors"
	"math"
	"math/rand"
)

var ErrNoCatalog = errors.New("bot view has no catalog")

// Agent is the engine-controlled opponent. Each round it draws one strategy at
// random and plays the hand slot that strategy scores highest.
type Agent struct {
	Tuning Tuning
}

// NewAgent returns an agent using the default tuning.
func NewAgent() *Agent {
	return &Agent{Tuning: DefaultTuning}
}

// ChooseCard picks the AI card for the round. Ties resolve to the lowest slot.
func (a *Agent) ChooseCard(view View, rng *rand.Rand) (Choice, error) {
	if view.Catalog == nil {
		return Choice{Slot: -1}, ErrNoCatalog
	}
	if view.Hand.IsEmpty() {
		return Choice{Slot: -1}, nil
	}

	strategy, err := NewStrategy(a.pickStrategy(view.LifeAI, rng), a.Tuning)
	if err != nil {
		return Choice{Slot: -1}, err
	}

	choice := Choice{Slot: -1, Strategy: strategy.Kind(), Score: math.MinInt}
	for i, id := range view.Hand {
		aiCard := view.Catalog.Lookup(id)
		if aiCard.IsEmpty() {
			continue
		}
		score := scoreCard(strategy, aiCard, view.OpponentHand, view.Catalog, view.LifeAI)
		if score > choice.Score {
			choice.Score = score
			choice.Slot = i
		}
	}
	return choice, nil
}

func (a *Agent) pickStrategy(lifeAI int, rng *rand.Rand) StrategyKind {
	n := 3
	if lifeAI < a.Tuning.LowLifeThreshold {
		n = 4
	}
	return StrategyKind(rng.Intn(n))
}

var _ Brain = (*Agent)(nil)
