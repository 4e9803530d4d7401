package command

import (
	"sort"
	"strings"
	"sync"

	apperrors "github.com/veldt-labs/chatserv/internal/errors"
)

// Registry maps command names, case-insensitively, to descriptors.
// Registration and removal are rare administrative operations; lookups take
// shared access.
type Registry struct {
	mu       sync.RWMutex
	commands map[string]*Command
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]*Command)}
}

// Register adds a command descriptor under its name.
func (r *Registry) Register(cmd *Command) error {
	key := strings.ToLower(cmd.Name)
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.commands[key]; ok {
		return apperrors.New(apperrors.CodeDuplicateCommand, "command "+cmd.Name+" already registered")
	}
	r.commands[key] = cmd
	return nil
}

// Unregister removes a command by name, typically at module unload.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.commands, strings.ToLower(name))
}

// Lookup resolves a command by exact, case-insensitive name. Returns nil
// when absent.
func (r *Registry) Lookup(name string) *Command {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.commands[strings.ToLower(name)]
}

// List enumerates registered commands ordered by name.
func (r *Registry) List() []*Command {
	r.mu.RLock()
	cmds := make([]*Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		cmds = append(cmds, cmd)
	}
	r.mu.RUnlock()
	sort.Slice(cmds, func(i, j int) bool {
		return strings.ToLower(cmds[i].Name) < strings.ToLower(cmds[j].Name)
	})
	return cmds
}

// IsPermitted reports whether the source may run cmd: commands with no
// access requirement are open, AccessAuthenticated requires a bound session,
// anything else names a privilege held through the service's authorizer.
func (r *Registry) IsPermitted(src *Source, cmd *Command) bool {
	switch cmd.Access {
	case AccessNone:
		return true
	case AccessAuthenticated:
		return src.Authenticated()
	default:
		if src.Service == nil || src.Service.Auth == nil {
			return false
		}
		return src.Service.Auth.HasPrivilege(src, cmd.Access)
	}
}
