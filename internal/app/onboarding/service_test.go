package onboarding

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"cardgame/internal/app"
	"cardgame/internal/auth"
	"cardgame/internal/domain"
	"cardgame/internal/logging"
	"cardgame/internal/ports/memory"

	"github.com/heroiclabs/nakama-common/runtime"
)

type fakeAccountPort struct {
	updateErr error
	calls     []profileCall
}

type profileCall struct {
	userID      string
	username    string
	displayName string
}

func (f *fakeAccountPort) UpdateProfile(ctx context.Context, userID, username, displayName string) error {
	f.calls = append(f.calls, profileCall{userID: userID, username: username, displayName: displayName})
	return f.updateErr
}

type failingEnroller struct{}

func (failingEnroller) Login(ctx context.Context, grant auth.Grant, identity string) (*domain.User, []app.Event, error) {
	return nil, nil, errors.New("store down")
}

func newGameService(t *testing.T, store *memory.Store) *app.Service {
	t.Helper()
	svc, err := app.NewService(store, app.Settings{}, logging.Discard(), rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewService error: %v", err)
	}
	return svc
}

func sessionGrant(t *testing.T, userID string) auth.Grant {
	t.Helper()
	grant, err := auth.FromContext(context.WithValue(context.Background(), runtime.RUNTIME_CTX_USER_ID, userID))
	if err != nil {
		t.Fatalf("FromContext error: %v", err)
	}
	return grant
}

func TestOnboardNewUser_CreatesRecordAndProfile(t *testing.T) {
	store := memory.NewStore()
	accounts := &fakeAccountPort{}
	service := NewService(accounts, newGameService(t, store), rand.New(rand.NewSource(1)))

	result, err := service.OnboardNewUser(context.Background(), sessionGrant(t, "user-1"))
	if err != nil {
		t.Fatalf("OnboardNewUser returned error: %v", err)
	}
	if result.ProfileUpdateErr != nil {
		t.Fatalf("Expected no profile update error, got %v", result.ProfileUpdateErr)
	}
	if store.Len() != 1 {
		t.Fatalf("Expected 1 stored record, got %d", store.Len())
	}
	if len(result.Events) != 1 || result.Events[0].Kind != app.EventUserCreated {
		t.Fatalf("Expected user_created event, got %+v", result.Events)
	}
	if len(accounts.calls) != 1 || accounts.calls[0].displayName != result.DisplayName || result.DisplayName == "" {
		t.Fatalf("Unexpected profile calls %+v for name %q", accounts.calls, result.DisplayName)
	}
}

func TestOnboardNewUser_ProfileFailureIsNotFatal(t *testing.T) {
	store := memory.NewStore()
	accounts := &fakeAccountPort{updateErr: errors.New("update failed")}
	service := NewService(accounts, newGameService(t, store), rand.New(rand.NewSource(1)))

	result, err := service.OnboardNewUser(context.Background(), sessionGrant(t, "user-1"))
	if err != nil {
		t.Fatalf("OnboardNewUser returned error: %v", err)
	}
	if result.ProfileUpdateErr == nil {
		t.Fatal("Expected profile update error to be captured")
	}
	if store.Len() != 1 {
		t.Fatalf("Expected record to be created, got %d records", store.Len())
	}
}

func TestOnboardNewUser_RepeatDoesNotDuplicate(t *testing.T) {
	store := memory.NewStore()
	service := NewService(&fakeAccountPort{}, newGameService(t, store), rand.New(rand.NewSource(1)))
	grant := sessionGrant(t, "user-1")

	if _, err := service.OnboardNewUser(context.Background(), grant); err != nil {
		t.Fatalf("first onboarding error: %v", err)
	}
	result, err := service.OnboardNewUser(context.Background(), grant)
	if err != nil {
		t.Fatalf("second onboarding error: %v", err)
	}
	if len(result.Events) != 0 {
		t.Fatalf("Expected no events on repeat, got %+v", result.Events)
	}
	if store.Len() != 1 {
		t.Fatalf("Expected 1 stored record, got %d", store.Len())
	}
}

func TestOnboardNewUser_EnrollFailureReturnsError(t *testing.T) {
	accounts := &fakeAccountPort{}
	service := NewService(accounts, failingEnroller{}, rand.New(rand.NewSource(1)))

	if _, err := service.OnboardNewUser(context.Background(), sessionGrant(t, "user-1")); err == nil {
		t.Fatal("Expected error when enrollment fails")
	}
	if len(accounts.calls) != 0 {
		t.Fatal("Expected no profile update after failed enrollment")
	}
}

func TestOnboardNewUser_NotConfigured(t *testing.T) {
	service := NewService(nil, nil, nil)
	if _, err := service.OnboardNewUser(context.Background(), sessionGrant(t, "user-1")); err == nil {
		t.Fatal("Expected error for unconfigured service")
	}
}
