package command

import "strings"

const shortHelpWrapCols = 55

func (r *Registry) listingHeader(src *Source, additional bool) {
	tree := "commands"
	if src.Service != nil && src.Service.Commands != r {
		tree = "subcommands"
	}
	key := "listing." + tree
	if additional {
		key = "listing.additional_" + tree
	}
	src.Replyf(key)
	src.Reply(" ")
}

func (s *Source) describe(cmd *Command) string {
	return s.Printer().Sprintf("  \x02%-15s\x02 %s", cmd.Name, s.Printer().Sprintf(cmd.Desc))
}

// RenderFull lists every permitted command, one per line, name padded to a
// fixed column followed by its translated summary.
func (r *Registry) RenderFull(src *Source) {
	r.listingHeader(src, false)

	displayed := false
	for _, cmd := range r.List() {
		if !r.IsPermitted(src, cmd) {
			continue
		}
		src.Reply(src.describe(cmd))
		displayed = true
	}
	if !displayed {
		src.Replyf("listing.none")
	}
	src.Reply(" ")
}

// RenderShort lists the permitted headline commands with full summaries,
// then the remaining permitted commands as a comma-separated, word-wrapped
// list. Names never split across lines.
func (r *Registry) RenderShort(src *Source, headline string) {
	r.listingHeader(src, false)

	headline = strings.TrimSpace(headline)
	displayed := false
	if headline != "" {
		for _, cmd := range r.List() {
			if !nameInList(cmd.Name, headline) {
				continue
			}
			if !r.IsPermitted(src, cmd) {
				continue
			}
			src.Reply(src.describe(cmd))
			displayed = true
		}
	}
	if displayed {
		src.Reply(" ")
		r.listingHeader(src, true)
	}

	var buf string
	for _, cmd := range r.List() {
		if displayed && nameInList(cmd.Name, headline) {
			continue
		}
		if !r.IsPermitted(src, cmd) {
			continue
		}
		if buf != "" {
			buf += ", "
			if len(buf)+len(cmd.Name) > shortHelpWrapCols {
				src.Reply("  " + buf)
				buf = ""
			}
		}
		buf += cmd.Name
	}
	if buf != "" {
		src.Reply("  " + buf)
	} else {
		src.Replyf("listing.none")
	}
	src.Reply(" ")
}

func nameInList(name, list string) bool {
	for _, item := range strings.Fields(list) {
		if strings.EqualFold(name, item) {
			return true
		}
	}
	return false
}
