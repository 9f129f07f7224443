// Package memory provides an in-process UserStore, used by tests and single-process hosts.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"cardgame/internal/domain"
	"cardgame/internal/ports"

	"github.com/google/uuid"
)

type entry struct {
	value   []byte
	version string
}

// Store keeps encoded user records in a map guarded by a mutex.
type Store struct {
	mu      sync.Mutex
	records map[string]entry
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{records: make(map[string]entry)}
}

func (s *Store) Load(ctx context.Context, name string) (*domain.User, string, error) {
	s.mu.Lock()
	e, ok := s.records[name]
	s.mu.Unlock()
	if !ok {
		return nil, "", ports.ErrRecordNotFound
	}

	var user domain.User
	if err := json.Unmarshal(e.value, &user); err != nil {
		return nil, "", fmt.Errorf("failed to unmarshal user %s: %w", name, err)
	}
	return &user, e.version, nil
}

func (s *Store) Create(ctx context.Context, user *domain.User) (bool, string, error) {
	value, err := json.Marshal(user)
	if err != nil {
		return false, "", fmt.Errorf("failed to marshal user %s: %w", user.Name, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.records[user.Name]; ok {
		return false, e.version, nil
	}
	version := uuid.NewString()
	s.records[user.Name] = entry{value: value, version: version}
	return true, version, nil
}

func (s *Store) Save(ctx context.Context, user *domain.User, version string) (string, error) {
	value, err := json.Marshal(user)
	if err != nil {
		return "", fmt.Errorf("failed to marshal user %s: %w", user.Name, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.records[user.Name]
	if !ok || e.version != version {
		return "", ports.ErrVersionConflict
	}
	next := uuid.NewString()
	s.records[user.Name] = entry{value: value, version: next}
	return next, nil
}

// Len returns the number of stored records.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

var _ ports.UserStore = (*Store)(nil)
