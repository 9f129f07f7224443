package app

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"cardgame/internal/auth"
	"cardgame/internal/bot"
	"cardgame/internal/config"
	"cardgame/internal/domain"
	"cardgame/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
)

var ErrNotConfigured = errors.New("game service not configured")

// Settings are the game-balance knobs a Service runs with.
type Settings struct {
	Catalog       *domain.Catalog
	Rule          domain.DamageRule
	Brain         bot.Brain
	StartingLife  int
	EndGamePolicy config.EndGamePolicy
}

// Service contains the card battle use-cases. Every action checks the caller's
// grant, loads the record, validates all preconditions, mutates a private copy
// and writes it back conditionally on the version it read.
type Service struct {
	directory *Directory
	store     ports.UserStore
	settings  Settings
	logger    runtime.Logger

	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewService constructs a Service with provided rng or a time-seeded default.
// Nil catalog, rule or brain fall back to the default pool, the elemental rule and the standard agent.
func NewService(store ports.UserStore, settings Settings, logger runtime.Logger, rng *rand.Rand) (*Service, error) {
	if store == nil || logger == nil {
		return nil, ErrNotConfigured
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if settings.Catalog == nil {
		settings.Catalog = domain.DefaultCatalog()
	}
	if settings.Rule == nil {
		settings.Rule = domain.ElementalRule{}
	}
	if settings.Brain == nil {
		settings.Brain = bot.NewAgent()
	}
	if settings.StartingLife <= 0 {
		settings.StartingLife = domain.DefaultStartingLife
	}
	if settings.EndGamePolicy == "" {
		settings.EndGamePolicy = config.EndGameAllow
	}

	return &Service{
		directory: NewDirectory(store, settings.Catalog.PoolSize(), settings.StartingLife),
		store:     store,
		settings:  settings,
		logger:    logger,
		rng:       rng,
	}, nil
}

// NewServiceFromConfig builds the catalog and damage rule named by cfg and constructs a Service.
func NewServiceFromConfig(store ports.UserStore, cfg config.GameConfig, logger runtime.Logger, rng *rand.Rand) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	catalog := domain.DefaultCatalog()
	if cfg.CardsPath != "" {
		parsed, err := domain.ParseCatalogFile(cfg.CardsPath)
		if err != nil {
			return nil, err
		}
		catalog = parsed
	}
	if catalog.PoolSize() != cfg.PoolSize {
		return nil, fmt.Errorf("catalog has %d cards but pool_size is %d", catalog.PoolSize(), cfg.PoolSize)
	}

	rule, err := domain.NewDamageRule(cfg.DamageRule)
	if err != nil {
		return nil, err
	}

	return NewService(store, Settings{
		Catalog:       catalog,
		Rule:          rule,
		StartingLife:  cfg.StartingLife,
		EndGamePolicy: cfg.EndGamePolicy,
	}, logger, rng)
}

// Catalog returns the card definitions the service resolves rounds with.
func (s *Service) Catalog() *domain.Catalog {
	return s.settings.Catalog
}

// Login returns the user's record, creating it on first call. Repeated logins never touch tallies or the match.
func (s *Service) Login(ctx context.Context, grant auth.Grant, identity string) (*domain.User, []Event, error) {
	if err := grant.Permits(identity); err != nil {
		return nil, nil, err
	}

	user, _, created, err := s.directory.GetOrCreate(ctx, identity)
	if err != nil {
		return nil, nil, err
	}
	if !created {
		return user, nil, nil
	}

	s.logger.Info("%s [User:%s]: created user record", opLogin, identity)
	return user, []Event{newEvent(EventUserCreated, UserCreatedPayload{Name: identity})}, nil
}

// StartGame replaces the current match with freshly shuffled decks and dealt hands.
// It is always allowed, including mid-match and after a finished match.
func (s *Service) StartGame(ctx context.Context, grant auth.Grant, identity string) (*domain.User, []Event, error) {
	if err := grant.Permits(identity); err != nil {
		return nil, nil, err
	}

	user, version, err := s.directory.Get(ctx, identity)
	if err != nil {
		return nil, nil, err
	}

	next := user.Clone()
	s.rngMu.Lock()
	next.GameData = domain.NewStartedMatch(s.settings.Catalog.PoolSize(), s.settings.StartingLife, s.rng)
	s.rngMu.Unlock()

	if err := s.save(ctx, next, version); err != nil {
		return nil, nil, err
	}

	m := next.GameData
	s.logger.Debug("%s [User:%s]: dealt hand %v, %d cards left", opStartGame, identity, m.HandPlayer, m.DeckPlayer.Size())
	return next, []Event{newEvent(EventGameStarted, GameStartedPayload{
		Hand:       m.HandPlayer,
		DeckSize:   m.DeckPlayer.Size(),
		LifePlayer: m.LifePlayer,
		LifeAI:     m.LifeAI,
	})}, nil
}

// PlayCard commits the card in the given hand slot as the player's selection for the round.
func (s *Service) PlayCard(ctx context.Context, grant auth.Grant, identity string, index int) (*domain.User, []Event, error) {
	if err := grant.Permits(identity); err != nil {
		return nil, nil, err
	}

	user, version, err := s.directory.Get(ctx, identity)
	if err != nil {
		return nil, nil, err
	}

	m := user.GameData
	if index < 0 || index >= domain.HandSize {
		return nil, nil, fmt.Errorf("%w: %d", domain.ErrInvalidIndex, index)
	}
	if m.Status.IsFinished() {
		return nil, nil, domain.ErrMatchFinished
	}
	if m.HasPendingPlay() {
		return nil, nil, domain.ErrAlreadyPlayed
	}
	if id, _ := m.HandPlayer.Slot(index); id == domain.EmptyCard {
		return nil, nil, fmt.Errorf("%w: slot %d", domain.ErrEmptySlot, index)
	}

	next := user.Clone()
	id, err := next.GameData.HandPlayer.Take(index)
	if err != nil {
		return nil, nil, err
	}
	next.GameData.SelectedCardPlayer = id

	if err := s.save(ctx, next, version); err != nil {
		return nil, nil, err
	}

	s.logger.Debug("%s [User:%s]: committed card %d from slot %d", opPlayCard, identity, id, index)
	return next, []Event{newEvent(EventCardPlayed, CardPlayedPayload{Slot: index, Card: id})}, nil
}

// NextRound lets the AI answer the committed card, resolves damage, refills both
// hands and decides the match if a side is out of life or the player is out of cards.
func (s *Service) NextRound(ctx context.Context, grant auth.Grant, identity string) (*domain.User, []Event, error) {
	if err := grant.Permits(identity); err != nil {
		return nil, nil, err
	}

	user, version, err := s.directory.Get(ctx, identity)
	if err != nil {
		return nil, nil, err
	}
	if user.GameData.Status.IsFinished() {
		return nil, nil, domain.ErrMatchFinished
	}
	if !user.GameData.HasPendingPlay() {
		return nil, nil, domain.ErrNoPendingPlay
	}

	next := user.Clone()
	m := &next.GameData

	// The AI sees the player's hand as it was before the commit.
	opponent := append(m.HandPlayer.Cards(), m.SelectedCardPlayer)
	choice, err := s.chooseAICard(bot.View{
		Hand:         m.HandAI,
		OpponentHand: opponent,
		LifeAI:       m.LifeAI,
		Catalog:      s.settings.Catalog,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to choose AI card: %w", err)
	}
	if choice.Slot != NoAISlot {
		id, err := m.HandAI.Take(choice.Slot)
		if err != nil {
			return nil, nil, fmt.Errorf("AI chose slot %d: %w", choice.Slot, err)
		}
		m.SelectedCardAI = id
	}

	playerCard := m.SelectedCardPlayer
	aiCard := m.SelectedCardAI
	damage := s.settings.Rule.Resolve(s.settings.Catalog.Lookup(playerCard), s.settings.Catalog.Lookup(aiCard))
	m.ApplyDamage(damage)

	m.SelectedCardPlayer = domain.EmptyCard
	m.SelectedCardAI = domain.EmptyCard
	m.HandPlayer.FillEmptySlots(&m.DeckPlayer)
	m.HandAI.FillEmptySlots(&m.DeckAI)
	status := m.ResolveStatus()

	if err := s.save(ctx, next, version); err != nil {
		return nil, nil, err
	}

	round := RoundResolvedPayload{
		PlayerCard:     playerCard,
		AICard:         aiCard,
		DamageToPlayer: damage.Player,
		DamageToAI:     damage.AI,
		LifePlayer:     m.LifePlayer,
		LifeAI:         m.LifeAI,
	}
	if choice.Slot != NoAISlot {
		round.Strategy = choice.Strategy.String()
	}
	events := []Event{newEvent(EventRoundResolved, round)}

	s.logger.Debug("%s [User:%s]: %d vs %d, lives %d/%d", opNextRound, identity, playerCard, aiCard, m.LifePlayer, m.LifeAI)
	if status.IsFinished() {
		s.logger.Info("%s [User:%s]: match finished, %s", opNextRound, identity, status)
		events = append(events, newEvent(EventGameFinished, GameFinishedPayload{Status: status, Result: status.String()}))
	}
	return next, events, nil
}

// EndGame credits the finished match to the user's tallies and resets the match to the login baseline.
// Ending an ongoing match changes no tally.
func (s *Service) EndGame(ctx context.Context, grant auth.Grant, identity string) (*domain.User, []Event, error) {
	if err := grant.Permits(identity); err != nil {
		return nil, nil, err
	}

	user, version, err := s.directory.Get(ctx, identity)
	if err != nil {
		return nil, nil, err
	}
	if user.GameData.HasPendingPlay() && s.settings.EndGamePolicy == config.EndGameRejectPending {
		return nil, nil, domain.ErrRoundInProgress
	}

	next := user.Clone()
	status := next.GameData.Status
	switch status {
	case domain.StatusPlayerWon:
		next.WinCount++
	case domain.StatusPlayerLost:
		next.LossCount++
	}
	next.GameData = domain.NewBaselineMatch(s.settings.Catalog.PoolSize(), s.settings.StartingLife)

	if err := s.save(ctx, next, version); err != nil {
		return nil, nil, err
	}

	s.logger.Debug("%s [User:%s]: finalized as %s, record %d-%d", opEndGame, identity, status, next.WinCount, next.LossCount)
	return next, []Event{newEvent(EventGameEnded, GameEndedPayload{
		Status:    status,
		WinCount:  next.WinCount,
		LossCount: next.LossCount,
	})}, nil
}

// Show returns the stored record without changing it.
func (s *Service) Show(ctx context.Context, grant auth.Grant, identity string) (*domain.User, error) {
	if err := grant.Permits(identity); err != nil {
		return nil, err
	}
	user, _, err := s.directory.Get(ctx, identity)
	return user, err
}

func (s *Service) chooseAICard(view bot.View) (bot.Choice, error) {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return s.settings.Brain.ChooseCard(view, s.rng)
}

func (s *Service) save(ctx context.Context, user *domain.User, version string) error {
	if _, err := s.store.Save(ctx, user, version); err != nil {
		return fmt.Errorf("failed to save user %s: %w", user.Name, err)
	}
	return nil
}
