package nakama

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"cardgame/internal/domain"
	"cardgame/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
)

// NakamaStorageAdapter implements ports.UserStore on Nakama storage objects.
// Identities are Nakama user IDs; each user owns exactly one record.
type NakamaStorageAdapter struct {
	nk runtime.NakamaModule
}

// NewNakamaStorageAdapter creates a new storage adapter.
func NewNakamaStorageAdapter(nk runtime.NakamaModule) *NakamaStorageAdapter {
	return &NakamaStorageAdapter{nk: nk}
}

func (a *NakamaStorageAdapter) Load(ctx context.Context, name string) (*domain.User, string, error) {
	objects, err := a.nk.StorageRead(ctx, []*runtime.StorageRead{
		{Collection: userCollection, Key: userKey, UserID: name},
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to read user record: %w", err)
	}
	if len(objects) == 0 {
		return nil, "", ports.ErrRecordNotFound
	}

	var user domain.User
	if err := json.Unmarshal([]byte(objects[0].GetValue()), &user); err != nil {
		return nil, "", fmt.Errorf("failed to unmarshal user record: %w", err)
	}
	return &user, objects[0].GetVersion(), nil
}

// Create writes with version "*", which Nakama only accepts when no object exists yet.
func (a *NakamaStorageAdapter) Create(ctx context.Context, user *domain.User) (bool, string, error) {
	version, err := a.write(ctx, user, "*")
	if errors.Is(err, runtime.ErrStorageRejectedVersion) {
		return false, "", nil
	}
	if err != nil {
		return false, "", err
	}
	return true, version, nil
}

func (a *NakamaStorageAdapter) Save(ctx context.Context, user *domain.User, version string) (string, error) {
	if version == "" || version == "*" {
		return "", ports.ErrVersionConflict
	}
	next, err := a.write(ctx, user, version)
	if errors.Is(err, runtime.ErrStorageRejectedVersion) {
		return "", ports.ErrVersionConflict
	}
	return next, err
}

func (a *NakamaStorageAdapter) write(ctx context.Context, user *domain.User, version string) (string, error) {
	value, err := json.Marshal(user)
	if err != nil {
		return "", fmt.Errorf("failed to marshal user record: %w", err)
	}

	acks, err := a.nk.StorageWrite(ctx, []*runtime.StorageWrite{
		{
			Collection:      userCollection,
			Key:             userKey,
			UserID:          user.Name,
			Value:           string(value),
			Version:         version,
			PermissionRead:  runtime.STORAGE_PERMISSION_OWNER_READ,
			PermissionWrite: runtime.STORAGE_PERMISSION_NO_WRITE,
		},
	})
	if err != nil {
		if errors.Is(err, runtime.ErrStorageRejectedVersion) {
			return "", err
		}
		return "", fmt.Errorf("failed to write user record: %w", err)
	}
	if len(acks) == 0 {
		return "", fmt.Errorf("storage write returned no ack")
	}
	return acks[0].GetVersion(), nil
}

var _ ports.UserStore = (*NakamaStorageAdapter)(nil)
