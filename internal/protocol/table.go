package protocol

import (
	"context"
	"sync"

	apperrors "github.com/veldt-labs/chatserv/internal/errors"
)

// Table is the process-wide capability table. Every operation name resolves
// to a callable at all times; dialect overrides replace entries in place and
// Unregister restores the default.
type Table struct {
	mu  sync.RWMutex
	ops map[Op]Func
}

// NewTable creates a table with every operation bound to its default.
func NewTable() *Table {
	t := &Table{ops: make(map[Op]Func, len(allOps))}
	for _, op := range allOps {
		t.ops[op] = defaultFor(op)
	}
	return t
}

// Register replaces the implementation for op for the lifetime of the loaded
// dialect module. Unknown operation names are rejected.
func (t *Table) Register(op Op, fn Func) error {
	if fn == nil {
		return apperrors.New(apperrors.CodeUnknownOperation, "nil implementation for "+string(op))
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.ops[op]; !ok {
		return apperrors.New(apperrors.CodeUnknownOperation, "unknown protocol operation "+string(op))
	}
	t.ops[op] = fn
	return nil
}

// Unregister restores the default implementation for op.
func (t *Table) Unregister(op Op) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.ops[op]; ok {
		t.ops[op] = defaultFor(op)
	}
}

// Get returns the active implementation for op. It never returns nil: names
// outside the fixed set resolve to a diagnostic no-op.
func (t *Table) Get(op Op) Func {
	t.mu.RLock()
	fn, ok := t.ops[op]
	t.mu.RUnlock()
	if !ok {
		return defaultFor(op)
	}
	return fn
}

// Invoke runs the active implementation for op.
func (t *Table) Invoke(ctx context.Context, op Op, ev Event) Result {
	return t.Get(op)(ctx, ev)
}

// Notice emits a notice from a service to a target through the dialect.
func (t *Table) Notice(ctx context.Context, from, target, text string) {
	t.Invoke(ctx, OpNotice, Event{Source: from, Target: target, Text: text})
}

// OnLogin informs the dialect that a connection authenticated to an account.
func (t *Table) OnLogin(ctx context.Context, nick, accountName string) {
	t.Invoke(ctx, OpOnLogin, Event{Source: nick, Target: accountName})
}

// OnLogout informs the dialect that a connection left an account. It reports
// whether the dialect terminated the connection as a consequence.
func (t *Table) OnLogout(ctx context.Context, nick, accountName string) bool {
	return t.Invoke(ctx, OpOnLogout, Event{Source: nick, Target: accountName}).Killed
}
