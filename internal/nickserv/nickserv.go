// Package nickserv wires the authentication service's user-facing commands
// onto a command registry.
package nickserv

import (
	"context"
	"strings"

	"github.com/veldt-labs/chatserv/internal/command"
	"github.com/veldt-labs/chatserv/internal/help"
	"github.com/veldt-labs/chatserv/internal/session"
)

// Deps carries the collaborators the command handlers close over.
type Deps struct {
	Machine  *session.Machine
	Renderer *help.Renderer

	// NicknameOwnership selects IDENTIFY wording over LOGIN wording.
	NicknameOwnership bool
}

// Bind registers the authentication commands on svc. The login command is
// named LOGIN or IDENTIFY depending on the deployment model; both forms
// share one state machine.
func Bind(svc *command.Service, deps Deps) error {
	login := &command.Command{
		Name:      "LOGIN",
		Desc:      "cmd.login.desc",
		MinParams: 1,
		Help:      command.Help{Path: "nickserv/login"},
		Handler: func(ctx context.Context, src *command.Source, args []string) {
			password := ""
			if len(args) > 1 {
				password = args[1]
			}
			_ = deps.Machine.Login(ctx, src, args[0], password)
		},
	}
	if deps.NicknameOwnership {
		login.Name = "IDENTIFY"
		login.Desc = "cmd.identify.desc"
		login.Help = command.Help{Path: "nickserv/identify"}
	}
	if err := svc.Commands.Register(login); err != nil {
		return err
	}

	logout := &command.Command{
		Name: "LOGOUT",
		Desc: "cmd.logout.desc",
		Help: command.Help{Path: "nickserv/logout"},
		Handler: func(ctx context.Context, src *command.Source, args []string) {
			_ = deps.Machine.Logout(ctx, src)
		},
	}
	if err := svc.Commands.Register(logout); err != nil {
		return err
	}

	headline := login.Name + " LOGOUT"
	helpCmd := &command.Command{
		Name: "HELP",
		Desc: "cmd.help.desc",
		Help: command.Help{Path: "nickserv/help"},
		Handler: func(ctx context.Context, src *command.Source, args []string) {
			if len(args) == 0 {
				deps.Renderer.Prefix(src, svc)
				deps.Renderer.Locations(src)
				svc.Commands.RenderShort(src, headline)
				deps.Renderer.MoreInfo(src, svc, "")
				deps.Renderer.VerboseList(src, svc)
				deps.Renderer.Suffix(src)
				return
			}
			if strings.EqualFold(args[0], "COMMANDS") {
				deps.Renderer.Prefix(src, svc)
				svc.Commands.RenderFull(src)
				deps.Renderer.Suffix(src)
				return
			}
			deps.Renderer.Render(ctx, src, svc, strings.Join(args, " "))
		},
	}
	return svc.Commands.Register(helpCmd)
}
