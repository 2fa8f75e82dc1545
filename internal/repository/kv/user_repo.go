package kv

import (
	"context"
	"encoding/json"

	"github.com/expensify-app/expensify-backend/internal/domain"
	"github.com/rs/zerolog/log"
)

// UserRepository stores the welcome-screen user name under "userName"
type UserRepository struct {
	store domain.KeyValueStore
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(store domain.KeyValueStore) *UserRepository {
	return &UserRepository{store: store}
}

// GetName retrieves the stored display name, if any
func (r *UserRepository) GetName(ctx context.Context) (string, bool, error) {
	data, found, err := r.store.Get(ctx, domain.StorageKeyUserName)
	if err != nil {
		log.Warn().Err(err).Str("key", domain.StorageKeyUserName).Msg("Store read failed, treating as no data")
		return "", false, nil
	}
	if !found {
		return "", false, nil
	}

	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		log.Warn().Err(err).Str("key", domain.StorageKeyUserName).Msg("Stored user name unreadable, treating as no data")
		return "", false, nil
	}
	return name, true, nil
}

// SetName stores the display name
func (r *UserRepository) SetName(ctx context.Context, name string) error {
	data, err := json.Marshal(name)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, domain.StorageKeyUserName, data)
}

// DeleteName removes the stored display name
func (r *UserRepository) DeleteName(ctx context.Context) error {
	return r.store.Remove(ctx, domain.StorageKeyUserName)
}
