package bot

import (
	"math/rand"

	"cardgame/internal/domain"
)

// View is what the AI is allowed to see when choosing its card for a round.
type View struct {
	Hand         domain.Hand     // AI hand
	OpponentHand []domain.CardID // player's cards before the round's commit; the committed card is not singled out
	LifeAI       int
	Catalog      *domain.Catalog
}

// Choice is the decision made by the AI.
type Choice struct {
	Slot     int // -1 when the AI hand is empty
	Strategy StrategyKind
	Score    int
}

// Brain is the interface that all AI opponents must implement.
type Brain interface {
	ChooseCard(view View, rng *rand.Rand) (Choice, error)
}
