package domain

import "context"

// UserRepository stores the single local user's display name. The app is
// single-user; there is no account model beyond the welcome-screen name.
type UserRepository interface {
	GetName(ctx context.Context) (string, bool, error)
	SetName(ctx context.Context, name string) error
	DeleteName(ctx context.Context) error
}
