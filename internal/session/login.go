// Package session binds connections to accounts and enforces the
// authentication invariants around that binding.
package session

import (
	"context"
	"log"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/veldt-labs/chatserv/internal/account"
	"github.com/veldt-labs/chatserv/internal/badpass"
	"github.com/veldt-labs/chatserv/internal/command"
	apperrors "github.com/veldt-labs/chatserv/internal/errors"
	"github.com/veldt-labs/chatserv/internal/hook"
	"github.com/veldt-labs/chatserv/internal/protocol"
)

var tracer = otel.Tracer("chatserv/session")

// Config carries the deployment facts the state machine depends on.
type Config struct {
	// MaxLogins bounds concurrent sessions per account, process-wide.
	MaxLogins uint
	// NicknameOwnership selects the identify-to-nickname deployment model;
	// it changes command wording and permits the single-argument form.
	NicknameOwnership bool
}

// Machine is the login state machine. A connection is either unauthenticated
// or bound to exactly one account; the transition is atomic from the
// caller's perspective.
type Machine struct {
	store     account.Store
	hooks     *hook.Dispatcher
	table     *protocol.Table
	penalties *badpass.Tracker
	cfg       Config
	clock     func() time.Time
}

// NewMachine creates a login state machine.
func NewMachine(store account.Store, hooks *hook.Dispatcher, table *protocol.Table, penalties *badpass.Tracker, cfg Config) *Machine {
	return &Machine{
		store:     store,
		hooks:     hooks,
		table:     table,
		penalties: penalties,
		cfg:       cfg,
		clock:     time.Now,
	}
}

func (m *Machine) commandName() string {
	if m.cfg.NicknameOwnership {
		return "IDENTIFY"
	}
	return "LOGIN"
}

// Login authenticates the source's connection to the target account. All
// checks run in a fixed order and every failure is reported through the
// reply sink; the returned error carries the machine-readable code.
func (m *Machine) Login(ctx context.Context, src *command.Source, target, password string) error {
	ctx, span := tracer.Start(ctx, "session.Login")
	defer span.End()

	// In the identify-to-nickname model the single-argument form targets
	// the connection's own nick.
	if m.cfg.NicknameOwnership && target != "" && password == "" {
		target, password = src.Nick, target
	}
	if target == "" || password == "" {
		src.Replyf("command.insufficient_params", m.commandName())
		if m.cfg.NicknameOwnership {
			src.Replyf("login.syntax_nick")
		} else {
			src.Replyf("login.syntax_account")
		}
		return apperrors.New(apperrors.CodeNeedMoreParams, "missing account or password")
	}
	span.SetAttributes(attribute.String("login.target", target))

	a, err := m.store.FindByName(ctx, target)
	if err != nil {
		if m.cfg.NicknameOwnership {
			src.Replyf("login.not_registered_nick", target)
		} else {
			src.Replyf("login.not_registered_account", target)
		}
		return err
	}

	if !m.hooks.UserCanLogin(src.Nick, a) {
		if m.cfg.NicknameOwnership {
			src.Replyf("login.denied_nick", a.Name)
		} else {
			src.Replyf("login.denied_account", a.Name)
		}
		src.Logf("failed %s to %s (denied by hook)", m.commandName(), a.Name)
		return apperrors.New(apperrors.CodeLoginDenied, "login to "+a.Name+" disallowed by configuration")
	}

	if a.Frozen() {
		if m.cfg.NicknameOwnership {
			src.Replyf("login.frozen_nick", a.Name)
		} else {
			src.Replyf("login.frozen_account", a.Name)
		}
		src.Logf("failed %s to %s (frozen)", m.commandName(), a.Name)
		return apperrors.New(apperrors.CodeAccountFrozen, "account "+a.Name+" is frozen")
	}

	if a.Flags&account.FlagNoPassword != 0 {
		src.Replyf("login.password_disabled")
		src.Logf("failed %s to %s (password authentication disabled)", m.commandName(), a.Name)
		return apperrors.New(apperrors.CodePasswordAuthDisabled, "password authentication disabled for "+a.Name)
	}

	cur := src.Account()
	if cur == a {
		src.Replyf("login.already_logged_in", a.Name)
		if a.Flags&account.FlagWaitAuth != 0 {
			src.Replyf("login.check_email")
		}
		return apperrors.New(apperrors.CodeNoChange, "already logged in to "+a.Name)
	}
	if cur != nil && (src.Service == nil || src.Service.Commands.Lookup("LOGOUT") == nil) {
		src.Replyf("login.already_logged_in", cur.Name)
		return apperrors.New(apperrors.CodeAlreadyLoggedIn, "already logged in to "+cur.Name)
	}

	ok, err := m.store.VerifyPassword(ctx, a, password)
	if err != nil {
		log.Printf("session: verify password for %s: %v", a.Name, err)
	}
	if !ok {
		src.Logf("failed %s to %s (bad password)", m.commandName(), a.Name)
		src.Replyf("login.bad_password", a.Name)
		if n, perr := m.penalties.Record(ctx, a.Name); perr != nil {
			log.Printf("session: record bad password for %s: %v", a.Name, perr)
		} else if n > 0 {
			log.Printf("session: %d bad passwords for %s in penalty window", n, a.Name)
		}
		return apperrors.New(apperrors.CodeBadPassword, "invalid password for "+a.Name)
	}

	if uint(a.SessionCount()) >= m.cfg.MaxLogins {
		m.replyTooMany(src, a)
		src.Logf("failed %s to %s (too many logins)", m.commandName(), a.Name)
		return apperrors.New(apperrors.CodeTooManySessions, "too many sessions for "+a.Name)
	}

	// A binding to another account is torn down before the new one is
	// created. Some dialects disconnect the user on logout; the login
	// sequence aborts there without creating the new binding.
	if cur != nil {
		src.Replyf("login.logged_out_of", cur.Name)
		if m.teardown(ctx, src) {
			src.Logf("logout of %s terminated the connection", cur.Name)
			return nil
		}
	}

	sess := &account.Session{Nick: src.Nick}
	if err := a.AddSession(sess, m.cfg.MaxLogins); err != nil {
		m.replyTooMany(src, a)
		src.Logf("failed %s to %s (too many logins)", m.commandName(), a.Name)
		return err
	}
	src.Session = sess

	if m.cfg.NicknameOwnership {
		src.Replyf("login.success_nick", a.Name)
	} else {
		src.Replyf("login.success_account", a.Name)
	}
	if a.Flags&account.FlagCryptPass == 0 {
		src.Replyf("login.plain_password_warning")
	}
	if err := m.store.SetLastLogin(ctx, a, m.clock().UTC()); err != nil {
		log.Printf("session: set last login for %s: %v", a.Name, err)
	}
	m.table.OnLogin(ctx, src.Nick, a.Name)
	src.Logf("%s", m.commandName())
	return nil
}

// Logout tears down the source's session binding.
func (m *Machine) Logout(ctx context.Context, src *command.Source) error {
	cur := src.Account()
	if cur == nil {
		src.Replyf("logout.not_logged_in")
		return apperrors.New(apperrors.CodeNotLoggedIn, "not logged in")
	}
	src.Replyf("login.logged_out_of", cur.Name)
	if m.teardown(ctx, src) {
		src.Logf("LOGOUT terminated the connection")
		return nil
	}
	src.Logf("LOGOUT")
	return nil
}

func (m *Machine) replyTooMany(src *command.Source, a *account.Account) {
	nicks := a.SessionNicks()
	src.Replyf("login.too_many", len(nicks), a.Name, int(m.cfg.MaxLogins))
	src.Replyf("login.session_nicks", strings.Join(nicks, ", "))
}

// teardown unbinds the session from both sides, notifies the dialect and
// records last-login. It reports whether the dialect terminated the
// connection.
func (m *Machine) teardown(ctx context.Context, src *command.Source) bool {
	sess := src.Session
	a := sess.Account
	killed := m.table.OnLogout(ctx, src.Nick, a.Name)
	if err := m.store.SetLastLogin(ctx, a, m.clock().UTC()); err != nil {
		log.Printf("session: set last login for %s: %v", a.Name, err)
	}
	a.RemoveSession(sess)
	src.Session = nil
	return killed
}
