package command

import (
	"context"
	"log"
)

// Logf records an audit log entry attributed to the source.
func (s *Source) Logf(format string, args ...interface{}) {
	svc := "?"
	if s.Service != nil {
		svc = s.Service.Nick
	}
	prefix := append([]interface{}{svc, s.Nick}, args...)
	log.Printf("%s: %s "+format, prefix...)
}

// Execute looks a command up by name and runs it for the source, applying
// the permission and argument-count checks. Every failure is reported
// through the reply sink and recorded for audit; none are fatal.
func (r *Registry) Execute(ctx context.Context, src *Source, name string, args []string) {
	cmd := r.Lookup(name)
	if cmd == nil {
		disp := ""
		if src.Service != nil {
			disp = src.Service.Disp
		}
		src.Replyf("command.invalid", disp)
		return
	}
	if !r.IsPermitted(src, cmd) {
		src.Replyf("command.no_privileges")
		src.Logf("denied %s (insufficient privileges)", cmd.Name)
		return
	}
	if len(args) < cmd.MinParams {
		src.Replyf("command.insufficient_params", cmd.Name)
		if src.Service != nil {
			src.Replyf("command.help_hint", src.Service.Disp, cmd.Name)
		}
		return
	}
	if cmd.Handler == nil {
		return
	}
	cmd.Handler(ctx, src, args)
}
