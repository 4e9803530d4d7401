// Package account provides the persistent identity records users
// authenticate to and the live session bindings attached to them.
package account

import (
	"fmt"
	"strings"
	"sync"
	"time"

	apperrors "github.com/veldt-labs/chatserv/internal/errors"
)

// MetadataFreezer marks a frozen account. The value records who froze it.
const MetadataFreezer = "private:freeze:freezer"

// Flag is a bit set of account properties.
type Flag uint

const (
	// FlagNoPassword disables password authentication for the account.
	FlagNoPassword Flag = 1 << iota
	// FlagCryptPass indicates the stored password is a digest, not cleartext.
	FlagCryptPass
	// FlagWaitAuth indicates registration is pending email verification.
	FlagWaitAuth
)

// Account is a registered identity. Session bindings are guarded by the
// account's own lock so unrelated accounts' logins never serialize.
type Account struct {
	Name      string
	Flags     Flag
	LastLogin time.Time
	Metadata  map[string]string

	mu       sync.Mutex
	sessions []*Session
}

// Session binds one live connection to one account.
type Session struct {
	Nick    string
	Account *Account
}

// Frozen reports whether the account carries a freeze marker.
func (a *Account) Frozen() bool {
	_, ok := a.Metadata[MetadataFreezer]
	return ok
}

// AddSession binds sess to the account, enforcing the session bound. The
// check and the append are one critical section: two concurrent logins
// against an account at its cap cannot both succeed.
func (a *Account) AddSession(sess *Session, maxLogins uint) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if uint(len(a.sessions)) >= maxLogins {
		return apperrors.New(apperrors.CodeTooManySessions,
			fmt.Sprintf("%d sessions already logged in to %s (maximum %d)", len(a.sessions), a.Name, maxLogins))
	}
	sess.Account = a
	a.sessions = append(a.sessions, sess)
	return nil
}

// RemoveSession unbinds sess from both sides of the session relationship.
func (a *Account) RemoveSession(sess *Session) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for i, s := range a.sessions {
		if s == sess {
			a.sessions = append(a.sessions[:i], a.sessions[i+1:]...)
			sess.Account = nil
			return
		}
	}
}

// SessionCount returns the number of live sessions bound to the account.
func (a *Account) SessionCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.sessions)
}

// SessionNicks returns the nicks currently logged in, in binding order.
func (a *Account) SessionNicks() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	nicks := make([]string, 0, len(a.sessions))
	for _, s := range a.sessions {
		nicks = append(nicks, s.Nick)
	}
	return nicks
}

// NormalizeName canonicalizes an account name for lookups.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
