package command

import (
	"strings"

	"golang.org/x/text/message"

	"github.com/veldt-labs/chatserv/internal/account"
	"github.com/veldt-labs/chatserv/internal/platform/i18n"
)

// Authorizer is the external privilege provider.
type Authorizer interface {
	HasPrivilege(src *Source, priv string) bool
	HasAnyPrivilege(src *Source) bool
}

// Service is one logical bot identity with its own command registry.
type Service struct {
	Nick     string // formal name, used in banners
	Disp     string // display name users address commands to
	Commands *Registry
	Auth     Authorizer
}

// Source is the per-request context: the connection's transient identity,
// its session binding, and the reply sink every user-visible line goes
// through.
type Source struct {
	Nick    string
	Lang    string
	Service *Service
	Session *account.Session
	Reply   func(line string)

	printer   *message.Printer
	helpDepth int
}

// Authenticated reports whether the source has a bound session.
func (s *Source) Authenticated() bool {
	return s.Session != nil
}

// Account returns the account the source is bound to, or nil.
func (s *Source) Account() *account.Account {
	if s.Session == nil {
		return nil
	}
	return s.Session.Account
}

// Printer returns the message printer for the source's language.
func (s *Source) Printer() *message.Printer {
	if s.printer == nil {
		s.printer = i18n.Printer(s.Lang)
	}
	return s.printer
}

// Replyf formats a localized message and sends it through the reply sink,
// one line per embedded newline.
func (s *Source) Replyf(key message.Reference, args ...interface{}) {
	if s.Reply == nil {
		return
	}
	for _, line := range strings.Split(s.Printer().Sprintf(key, args...), "\n") {
		s.Reply(line)
	}
}

// EnterHelp increments the help banner depth shared across nested renders of
// one user-triggered help request, returning the new depth.
func (s *Source) EnterHelp() int {
	s.helpDepth++
	return s.helpDepth
}

// LeaveHelp decrements the help banner depth, returning the new depth.
func (s *Source) LeaveHelp() int {
	if s.helpDepth > 0 {
		s.helpDepth--
	}
	return s.helpDepth
}
