package account

import (
	"context"
	"time"
)

// Store is the persistent account collaborator. Implementations must return
// the same *Account instance for the same name for the lifetime of the
// process, since live session bindings hang off the instance.
type Store interface {
	// FindByName resolves an account by name or nickname. Returns an error
	// with code CodeNoSuchAccount when absent.
	FindByName(ctx context.Context, name string) (*Account, error)

	// VerifyPassword checks a cleartext password against the account's
	// stored verification state.
	VerifyPassword(ctx context.Context, a *Account, password string) (bool, error)

	// SetLastLogin records the account's most recent login activity.
	SetLastLogin(ctx context.Context, a *Account, at time.Time) error
}
