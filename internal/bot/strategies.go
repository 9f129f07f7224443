package bot

import "cardgame/internal/domain"

// StrategyKind identifies an AI scoring strategy.
type StrategyKind int

const (
	StrategyBestCardWin StrategyKind = iota
	StrategyMinLoss
	StrategyPointsTally
	StrategyLossPrevention
)

func (k StrategyKind) String() string {
	switch k {
	case StrategyBestCardWin:
		return "best_card_win"
	case StrategyMinLoss:
		return "min_loss"
	case StrategyPointsTally:
		return "points_tally"
	case StrategyLossPrevention:
		return "loss_prevention"
	default:
		return "unknown"
	}
}

// Strategy scores one AI card against one opponent card.
type Strategy interface {
	Kind() StrategyKind
	Score(aiAttack, playerAttack, lifeAI int) int
}

// BestCardWinStrategy rewards cards that beat many opponent cards.
type BestCardWinStrategy struct{ Tuning Tuning }

func (s BestCardWinStrategy) Kind() StrategyKind { return StrategyBestCardWin }

func (s BestCardWinStrategy) Score(aiAttack, playerAttack, _ int) int {
	switch {
	case aiAttack > playerAttack:
		return s.Tuning.BestWinScore
	case aiAttack < playerAttack:
		return s.Tuning.BestLossScore
	}
	return s.Tuning.BestTieScore
}

// MinLossStrategy heavily penalises cards that lose.
type MinLossStrategy struct{ Tuning Tuning }

func (s MinLossStrategy) Kind() StrategyKind { return StrategyMinLoss }

func (s MinLossStrategy) Score(aiAttack, playerAttack, _ int) int {
	switch {
	case aiAttack > playerAttack:
		return s.Tuning.MinLossWinScore
	case aiAttack < playerAttack:
		return s.Tuning.MinLossLossScore
	}
	return s.Tuning.MinLossTieScore
}

// PointsTallyStrategy sums the attack margin.
type PointsTallyStrategy struct{}

func (PointsTallyStrategy) Kind() StrategyKind { return StrategyPointsTally }

func (PointsTallyStrategy) Score(aiAttack, playerAttack, _ int) int {
	return aiAttack - playerAttack
}

// LossPreventionStrategy counts the matchups the AI survives.
type LossPreventionStrategy struct{}

func (LossPreventionStrategy) Kind() StrategyKind { return StrategyLossPrevention }

func (LossPreventionStrategy) Score(aiAttack, playerAttack, lifeAI int) int {
	if lifeAI+aiAttack-playerAttack > 0 {
		return 1
	}
	return 0
}

// scoreCard sums the strategy score of one AI card against every opponent card.
func scoreCard(s Strategy, aiCard domain.Card, opponent []domain.CardID, catalog *domain.Catalog, lifeAI int) int {
	total := 0
	for _, id := range opponent {
		playerCard := catalog.Lookup(id)
		if playerCard.IsEmpty() {
			continue
		}
		total += s.Score(aiCard.EffectiveAttack(playerCard), playerCard.EffectiveAttack(aiCard), lifeAI)
	}
	return total
}
