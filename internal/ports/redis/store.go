// Package redis provides a UserStore shared by several host processes.
// Each record is a hash holding the encoded user and its version; writes run
// under WATCH so a concurrent writer aborts the transaction.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"cardgame/internal/domain"
	"cardgame/internal/ports"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

const (
	fieldValue   = "value"
	fieldVersion = "version"

	// DefaultPrefix namespaces the user hashes.
	DefaultPrefix = "cardgame:user:"
)

type Store struct {
	client goredis.UniversalClient
	prefix string
}

// NewStore wraps an existing client. An empty prefix uses DefaultPrefix.
func NewStore(client goredis.UniversalClient, prefix string) *Store {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Store{client: client, prefix: prefix}
}

// Dial connects to addr and checks the connection.
func Dial(ctx context.Context, addr string) (*Store, error) {
	client := goredis.NewClient(&goredis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", addr, err)
	}
	return NewStore(client, ""), nil
}

// Close closes the underlying client.
func (s *Store) Close() error {
	return s.client.Close()
}

func (s *Store) key(name string) string {
	return s.prefix + name
}

func (s *Store) Load(ctx context.Context, name string) (*domain.User, string, error) {
	fields, err := s.client.HGetAll(ctx, s.key(name)).Result()
	if err != nil {
		return nil, "", fmt.Errorf("hgetall %s: %w", name, err)
	}
	value, ok := fields[fieldValue]
	if !ok {
		return nil, "", ports.ErrRecordNotFound
	}

	var user domain.User
	if err := json.Unmarshal([]byte(value), &user); err != nil {
		return nil, "", fmt.Errorf("decode user %s: %w", name, err)
	}
	return &user, fields[fieldVersion], nil
}

func (s *Store) Create(ctx context.Context, user *domain.User) (bool, string, error) {
	value, err := json.Marshal(user)
	if err != nil {
		return false, "", fmt.Errorf("encode user %s: %w", user.Name, err)
	}

	key := s.key(user.Name)
	version := uuid.NewString()
	created := false
	err = s.client.Watch(ctx, func(tx *goredis.Tx) error {
		n, err := tx.Exists(ctx, key).Result()
		if err != nil {
			return err
		}
		if n > 0 {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.HSet(ctx, key, fieldValue, string(value), fieldVersion, version)
			return nil
		})
		if err == nil {
			created = true
		}
		return err
	}, key)
	if errors.Is(err, goredis.TxFailedErr) {
		// Another writer created the key between WATCH and EXEC.
		return false, "", nil
	}
	if err != nil {
		return false, "", fmt.Errorf("create user %s: %w", user.Name, err)
	}
	if !created {
		return false, "", nil
	}
	return true, version, nil
}

func (s *Store) Save(ctx context.Context, user *domain.User, version string) (string, error) {
	value, err := json.Marshal(user)
	if err != nil {
		return "", fmt.Errorf("encode user %s: %w", user.Name, err)
	}

	key := s.key(user.Name)
	next := uuid.NewString()
	err = s.client.Watch(ctx, func(tx *goredis.Tx) error {
		current, err := tx.HGet(ctx, key, fieldVersion).Result()
		if errors.Is(err, goredis.Nil) {
			return ports.ErrVersionConflict
		}
		if err != nil {
			return err
		}
		if current != version {
			return ports.ErrVersionConflict
		}
		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.HSet(ctx, key, fieldValue, string(value), fieldVersion, next)
			return nil
		})
		return err
	}, key)
	if errors.Is(err, goredis.TxFailedErr) || errors.Is(err, ports.ErrVersionConflict) {
		return "", ports.ErrVersionConflict
	}
	if err != nil {
		return "", fmt.Errorf("save user %s: %w", user.Name, err)
	}
	return next, nil
}

var _ ports.UserStore = (*Store)(nil)
