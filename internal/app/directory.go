package app

import (
	"context"
	"errors"
	"fmt"

	"cardgame/internal/domain"
	"cardgame/internal/ports"
)

// Directory maps identities to their user records.
type Directory struct {
	store        ports.UserStore
	poolSize     int
	startingLife int
}

// NewDirectory constructs a Directory creating new users with the given pool size and starting life.
func NewDirectory(store ports.UserStore, poolSize, startingLife int) *Directory {
	return &Directory{store: store, poolSize: poolSize, startingLife: startingLife}
}

// Get returns the record for identity and its store version.
// Returns domain.ErrUserNotFound if the identity never logged in.
func (d *Directory) Get(ctx context.Context, identity string) (*domain.User, string, error) {
	user, version, err := d.store.Load(ctx, identity)
	if errors.Is(err, ports.ErrRecordNotFound) {
		return nil, "", domain.ErrUserNotFound
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to load user %s: %w", identity, err)
	}
	return user, version, nil
}

// GetOrCreate returns the existing record unchanged, or creates a user with zero
// tallies and a baseline match. created reports whether this call wrote the record.
// A concurrent first login that loses the create race reads the winner's record.
func (d *Directory) GetOrCreate(ctx context.Context, identity string) (user *domain.User, version string, created bool, err error) {
	user, version, err = d.Get(ctx, identity)
	if err == nil {
		return user, version, false, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, "", false, err
	}

	fresh := domain.NewUser(identity, d.poolSize, d.startingLife)
	created, version, err = d.store.Create(ctx, fresh)
	if err != nil {
		return nil, "", false, fmt.Errorf("failed to create user %s: %w", identity, err)
	}
	if created {
		return fresh, version, true, nil
	}

	user, version, err = d.Get(ctx, identity)
	if err != nil {
		return nil, "", false, err
	}
	return user, version, false, nil
}
