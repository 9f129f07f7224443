package onboarding

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"cardgame/internal/app"
	"cardgame/internal/auth"
	"cardgame/internal/domain"
	"cardgame/internal/ports"
)

// Enroller creates the game record for a new identity.
type Enroller interface {
	Login(ctx context.Context, grant auth.Grant, identity string) (*domain.User, []app.Event, error)
}

// Result captures non-fatal onboarding outcomes.
type Result struct {
	// ProfileUpdateErr is set when the profile update failed but onboarding continued.
	ProfileUpdateErr error
	DisplayName      string
	Events           []app.Event
}

// Service handles post-auth onboarding for new users.
type Service struct {
	accounts ports.AccountPort
	players  Enroller

	mu  sync.Mutex
	rng *rand.Rand
}

// NewService constructs an onboarding service with required ports.
// accounts/players must be non-nil; rng may be nil to use a time-seeded default.
func NewService(accounts ports.AccountPort, players Enroller, rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{
		accounts: accounts,
		players:  players,
		rng:      rng,
	}
}

// OnboardNewUser creates the game record and a friendly profile for a newly created account.
// Returns a Result with any non-fatal issues and an error if the game record cannot be created.
func (s *Service) OnboardNewUser(ctx context.Context, grant auth.Grant) (Result, error) {
	if s.accounts == nil || s.players == nil {
		return Result{}, fmt.Errorf("onboarding service not configured")
	}

	userID := grant.Subject()
	_, events, err := s.players.Login(ctx, grant, userID)
	if err != nil {
		return Result{}, fmt.Errorf("failed to create game record: %w", err)
	}

	result := Result{Events: events, DisplayName: s.generateFriendlyName()}
	if err := s.accounts.UpdateProfile(ctx, userID, "", result.DisplayName); err != nil {
		result.ProfileUpdateErr = err
	}
	return result, nil
}

func (s *Service) generateFriendlyName() string {
	adjectives := []string{"Blazing", "Rooted", "Tidal", "Brave", "Clever", "Swift", "Calm", "Mighty", "Witty", "Wild"}
	nouns := []string{"Phoenix", "Oak", "Kraken", "Drake", "Wolf", "Otter", "Falcon", "Ember", "Fox", "Willow"}

	s.mu.Lock()
	defer s.mu.Unlock()
	adj := adjectives[s.rng.Intn(len(adjectives))]
	noun := nouns[s.rng.Intn(len(nouns))]
	num := s.rng.Intn(9000) + 1000

	return fmt.Sprintf("%s%s%d", adj, noun, num)
}
