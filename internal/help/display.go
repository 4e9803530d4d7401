package help

import (
	"github.com/veldt-labs/chatserv/internal/command"
)

// Prefix emits the banner header when this is the first render of the
// request.
func (r *Renderer) Prefix(src *command.Source, svc *command.Service) {
	if src.EnterHelp() == 1 {
		src.Replyf("help.prefix", svc.Nick)
		r.Newline(src)
	}
}

// Suffix emits the banner footer when the outermost render completes.
func (r *Renderer) Suffix(src *command.Source) {
	if src.LeaveHelp() == 0 {
		src.Replyf("help.suffix")
	}
}

// Newline emits the blank separator line.
func (r *Renderer) Newline(src *command.Source) {
	if src.Reply != nil {
		src.Reply(" ")
	}
}

// Locations points the user at the configured help channel and webpage.
func (r *Renderer) Locations(src *command.Source) {
	switch {
	case r.HelpChan != "" && r.HelpURL != "":
		src.Replyf("help.locations_both", r.HelpChan, r.HelpURL)
		r.Newline(src)
	case r.HelpChan != "":
		src.Replyf("help.locations_chan", r.HelpChan)
		r.Newline(src)
	case r.HelpURL != "":
		src.Replyf("help.locations_url", r.HelpURL)
		r.Newline(src)
	}
}

// Invalid reports an unrecognized command or subcommand with a pointer to
// the HELP listing.
func (r *Renderer) Invalid(src *command.Source, svc *command.Service, subcmdOf string) {
	if subcmdOf != "" {
		src.Replyf("help.invalid_subcommand", svc.Nick, subcmdOf, svc.Disp, subcmdOf, svc.Nick, subcmdOf)
	} else {
		src.Replyf("help.invalid_command", svc.Nick, svc.Disp, svc.Nick)
	}
	r.Newline(src)
}

// MoreInfo tells the user how to request per-command help.
func (r *Renderer) MoreInfo(src *command.Source, svc *command.Service, subcmdOf string) {
	if subcmdOf != "" {
		src.Replyf("help.moreinfo_sub", svc.Nick, subcmdOf)
		src.Replyf("\x02/msg %s HELP %s <subcommand>\x02", svc.Disp, subcmdOf)
	} else {
		src.Replyf("help.moreinfo", svc.Nick)
		src.Replyf("\x02/msg %s HELP <command>\x02", svc.Disp)
	}
	r.Newline(src)
}

// VerboseList tells the user how to request the full command listing.
func (r *Renderer) VerboseList(src *command.Source, svc *command.Service) {
	src.Replyf("help.verbose_list", svc.Nick)
	src.Replyf("\x02/msg %s HELP COMMANDS\x02", svc.Disp)
	r.Newline(src)
}
