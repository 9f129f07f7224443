package bot

import (
	"math/rand"
	"testing"

	"cardgame/internal/domain"
)

func TestStrategyScores(t *testing.T) {
	tests := []struct {
		name     string
		strategy Strategy
		ai       int
		player   int
		lifeAI   int
		want     int
	}{
		{name: "best card win, win", strategy: BestCardWinStrategy{Tuning: DefaultTuning}, ai: 3, player: 1, want: 3},
		{name: "best card win, loss", strategy: BestCardWinStrategy{Tuning: DefaultTuning}, ai: 1, player: 3, want: -2},
		{name: "best card win, tie", strategy: BestCardWinStrategy{Tuning: DefaultTuning}, ai: 2, player: 2, want: -1},
		{name: "min loss, win", strategy: MinLossStrategy{Tuning: DefaultTuning}, ai: 2, player: 1, want: 1},
		{name: "min loss, loss", strategy: MinLossStrategy{Tuning: DefaultTuning}, ai: 1, player: 2, want: -4},
		{name: "points tally", strategy: PointsTallyStrategy{}, ai: 1, player: 4, want: -3},
		{name: "loss prevention survives", strategy: LossPreventionStrategy{}, ai: 1, player: 2, lifeAI: 2, want: 1},
		{name: "loss prevention dies", strategy: LossPreventionStrategy{}, ai: 1, player: 3, lifeAI: 1, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.strategy.Score(tt.ai, tt.player, tt.lifeAI); got != tt.want {
				t.Fatalf("Score() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNewStrategy(t *testing.T) {
	for _, kind := range []StrategyKind{StrategyBestCardWin, StrategyMinLoss, StrategyPointsTally, StrategyLossPrevention} {
		s, err := NewStrategy(kind, DefaultTuning)
		if err != nil {
			t.Fatalf("NewStrategy(%v) error: %v", kind, err)
		}
		if s.Kind() != kind {
			t.Fatalf("NewStrategy(%v).Kind() = %v", kind, s.Kind())
		}
	}
	if _, err := NewStrategy(StrategyKind(9), DefaultTuning); err == nil {
		t.Fatal("expected error for unknown strategy")
	}
}

func TestAgentChoosesStrongestCard(t *testing.T) {
	catalog := domain.DefaultCatalog()
	view := View{
		// fire 1, neutral 3, empty, wood 1
		Hand:         domain.Hand{1, 16, 0, 6},
		OpponentHand: []domain.CardID{2, 7, 12},
		LifeAI:       5,
		Catalog:      catalog,
	}

	// Every strategy available at full life prefers the neutral 3 against 1-point cards.
	for seed := int64(0); seed < 20; seed++ {
		choice, err := NewAgent().ChooseCard(view, rand.New(rand.NewSource(seed)))
		if err != nil {
			t.Fatalf("ChooseCard error: %v", err)
		}
		if choice.Slot != 1 {
			t.Fatalf("seed %d: slot = %d (strategy %v), want 1", seed, choice.Slot, choice.Strategy)
		}
		if choice.Strategy == StrategyLossPrevention {
			t.Fatalf("seed %d: loss prevention chosen at full life", seed)
		}
	}
}

func TestAgentSkipsEmptySlots(t *testing.T) {
	view := View{Hand: domain.Hand{0, 0, 9, 0}, OpponentHand: []domain.CardID{1}, LifeAI: 1, Catalog: domain.DefaultCatalog()}
	choice, err := NewAgent().ChooseCard(view, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatalf("ChooseCard error: %v", err)
	}
	if choice.Slot != 2 {
		t.Fatalf("slot = %d, want 2", choice.Slot)
	}
}

func TestAgentEmptyHand(t *testing.T) {
	view := View{LifeAI: 5, Catalog: domain.DefaultCatalog()}
	choice, err := NewAgent().ChooseCard(view, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("ChooseCard error: %v", err)
	}
	if choice.Slot != -1 {
		t.Fatalf("slot = %d, want -1", choice.Slot)
	}
}

func TestAgentDeterministicForSeed(t *testing.T) {
	view := View{Hand: domain.Hand{3, 8, 13, 17}, OpponentHand: []domain.CardID{1, 6, 11, 16}, LifeAI: 1, Catalog: domain.DefaultCatalog()}
	a, _ := NewAgent().ChooseCard(view, rand.New(rand.NewSource(11)))
	b, _ := NewAgent().ChooseCard(view, rand.New(rand.NewSource(11)))
	if a != b {
		t.Fatalf("same seed gave different choices: %+v vs %+v", a, b)
	}
}

func TestAgentRequiresCatalog(t *testing.T) {
	if _, err := NewAgent().ChooseCard(View{Hand: domain.Hand{1}}, rand.New(rand.NewSource(1))); err == nil {
		t.Fatal("expected error without catalog")
	}
}
