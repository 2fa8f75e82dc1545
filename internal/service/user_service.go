package service

import (
	"context"
	"strings"

	"github.com/expensify-app/expensify-backend/internal/domain"
	"github.com/expensify-app/expensify-backend/internal/websocket"
)

// UserService manages the single local user's profile
type UserService struct {
	userRepo  domain.UserRepository
	store     domain.KeyValueStore
	publisher websocket.EventPublisher
}

// NewUserService creates a new UserService
func NewUserService(userRepo domain.UserRepository, store domain.KeyValueStore, publisher websocket.EventPublisher) *UserService {
	return &UserService{
		userRepo:  userRepo,
		store:     store,
		publisher: publisher,
	}
}

// GetName returns the stored display name, if one was set
func (s *UserService) GetName(ctx context.Context) (string, bool, error) {
	return s.userRepo.GetName(ctx)
}

// SetName stores the welcome-screen display name
func (s *UserService) SetName(ctx context.Context, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", domain.ErrNameRequired
	}
	if len(name) > domain.MaxUserNameLength {
		return "", domain.ErrNameTooLong
	}
	if err := s.userRepo.SetName(ctx, name); err != nil {
		return "", err
	}
	return name, nil
}

// DeleteAccount wipes the whole store: user name, budgets and expenses
func (s *UserService) DeleteAccount(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		return err
	}
	s.publisher.Publish(websocket.AccountCleared())
	return nil
}
