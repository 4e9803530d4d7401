// Package command provides the permission-filtered command registry and the
// per-request source plumbing shared by every service.
package command

import "context"

// Access values beyond the named-privilege form.
const (
	// AccessNone lets any user run the command.
	AccessNone = ""
	// AccessAuthenticated requires a bound session; any other value names a
	// privilege checked through the service's authorizer.
	AccessAuthenticated = "special:authenticated"
)

// Handler executes a command on behalf of a source.
type Handler func(ctx context.Context, src *Source, args []string)

// HelpFunc renders dynamic help for a command; remainder is the unconsumed
// sub-command path.
type HelpFunc func(ctx context.Context, src *Source, remainder string)

// Help locates a command's help content. Path and Func are mutually
// exclusive; Path points at localizable help text under the help root.
type Help struct {
	Path string
	Func HelpFunc
}

// Command is an immutable descriptor registered once at module-load time.
type Command struct {
	Name      string
	Desc      string // message catalog key for the one-line summary
	Access    string // AccessNone, AccessAuthenticated, or a privilege name
	MinParams int
	Handler   Handler
	Help      Help

	// SubCommands, when set, is the nested registry a dynamic help function
	// and the dispatcher descend into.
	SubCommands *Registry
}
