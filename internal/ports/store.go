package ports

import (
	"context"
	"errors"

	"cardgame/internal/domain"
)

var (
	// ErrRecordNotFound is returned by Load when no record exists for the identity.
	ErrRecordNotFound = errors.New("record not found")
	// ErrVersionConflict is returned by Save when the stored version moved since Load.
	ErrVersionConflict = errors.New("record version conflict")
)

// UserStore persists user records keyed by identity with optimistic versioning.
type UserStore interface {
	// Load returns the record for name and its current version.
	// Returns ErrRecordNotFound if absent.
	Load(ctx context.Context, name string) (*domain.User, string, error)

	// Create writes user only if no record exists for user.Name.
	// Returns created=false, without error, when a record already exists.
	Create(ctx context.Context, user *domain.User) (created bool, version string, err error)

	// Save overwrites the record if its stored version still equals version.
	// Returns the new version, or ErrVersionConflict.
	Save(ctx context.Context, user *domain.User, version string) (string, error)
}
