// Package hook dispatches named cross-cutting events to externally
// registered callbacks, including the login veto consulted before any
// account state is touched.
package hook

import (
	"sync"

	"github.com/veldt-labs/chatserv/internal/account"
)

// EventUserCanLogin is the veto event consulted by the login state machine.
const EventUserCanLogin = "user_can_login"

// LoginCheck is the payload for EventUserCanLogin. Hooks clear Allowed to
// veto; they must not mutate session state.
type LoginCheck struct {
	Nick    string
	Account *account.Account
	Allowed bool
}

// Dispatcher routes named events to registered callbacks.
type Dispatcher struct {
	mu     sync.RWMutex
	events map[string]struct{}
	hooks  map[string][]func(payload any)
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		events: make(map[string]struct{}),
		hooks:  make(map[string][]func(payload any)),
	}
}

// AddEvent declares an event kind. Declaring twice is harmless.
func (d *Dispatcher) AddEvent(name string) {
	d.mu.Lock()
	d.events[name] = struct{}{}
	d.mu.Unlock()
}

// AddHook registers a callback for an event kind.
func (d *Dispatcher) AddHook(name string, fn func(payload any)) {
	if fn == nil {
		return
	}
	d.mu.Lock()
	d.hooks[name] = append(d.hooks[name], fn)
	d.mu.Unlock()
}

// Call invokes every callback registered for the event, in registration
// order.
func (d *Dispatcher) Call(name string, payload any) {
	d.mu.RLock()
	fns := d.hooks[name]
	d.mu.RUnlock()
	for _, fn := range fns {
		fn(payload)
	}
}

// UserCanLogin consults the login veto hooks for a candidate account.
func (d *Dispatcher) UserCanLogin(nick string, a *account.Account) bool {
	req := &LoginCheck{Nick: nick, Account: a, Allowed: true}
	d.Call(EventUserCanLogin, req)
	return req.Allowed
}
