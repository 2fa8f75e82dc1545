package domain

import "context"

// KeyValueStore is the persistence collaborator: a flat key space of
// JSON-encoded values. Implementations report failures as explicit
// errors; they never panic across this boundary. Get distinguishes
// "absent" from "failed" so callers can branch on each.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

// Well-known storage keys, mirroring the frontend's local storage layout
const (
	StorageKeyBudgets  = "budgets"
	StorageKeyExpenses = "expenses"
	StorageKeyUserName = "userName"
)
