package bot

import (
	"fmt"
)

// NewStrategy creates a scoring strategy of the given kind.
func NewStrategy(kind StrategyKind, tuning Tuning) (Strategy, error) {
	switch kind {
	case StrategyBestCardWin:
		return BestCardWinStrategy{Tuning: tuning}, nil
	case StrategyMinLoss:
		return MinLossStrategy{Tuning: tuning}, nil
	case StrategyPointsTally:
		return PointsTallyStrategy{}, nil
	case StrategyLossPrevention:
		return LossPreventionStrategy{}, nil
	default:
		return nil, fmt.Errorf("unknown strategy kind: %d", kind)
	}
}
