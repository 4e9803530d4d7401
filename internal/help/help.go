// Package help resolves and streams help content for commands, interpreting
// the conditional help markup and per-user localization.
package help

import (
	"bufio"
	"context"
	"log"
	"os"
	"path/filepath"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/veldt-labs/chatserv/internal/command"
	"github.com/veldt-labs/chatserv/internal/platform/i18n"
)

var tracer = otel.Tracer("chatserv/help")

// Renderer resolves help sources under Root and renders them against the
// requesting user's context.
type Renderer struct {
	Root     string
	HelpChan string
	HelpURL  string

	// NicknameOwnership mirrors the deployment model; when off, nickserv
	// help paths are rewritten to their account-service variants.
	NicknameOwnership bool

	// Dialect capability facts consulted by #if conditions.
	UsesHalfops bool
	UsesOwner   bool
	UsesProtect bool

	// ModuleLoaded answers `#if module <name>` conditions. Nil means no
	// module is ever considered loaded.
	ModuleLoaded func(name string) bool
}

// markup state for one source file; kept per render so recursive
// sub-command help stays reentrant.
type markupState struct {
	nest       int
	suppressed int
}

// Render streams help for cmdPath out of the service's registry.
func (r *Renderer) Render(ctx context.Context, src *command.Source, svc *command.Service, cmdPath string) {
	r.RenderSub(ctx, src, svc, "", cmdPath, svc.Commands)
}

// RenderSub renders help for cmdPath looked up in reg, labeling error
// messages with the parent command subcmdOf. The first render in a request
// emits the banner header and the last emits the footer, so sub-command
// help composes with parent listings without duplicate banners.
func (r *Renderer) RenderSub(ctx context.Context, src *command.Source, svc *command.Service, subcmdOf, cmdPath string, reg *command.Registry) {
	ctx, span := tracer.Start(ctx, "help.Render")
	span.SetAttributes(attribute.String("help.command", cmdPath))
	defer span.End()

	name := cmdPath
	remainder := ""
	if i := strings.IndexByte(cmdPath, ' '); i >= 0 {
		name, remainder = cmdPath[:i], strings.TrimSpace(cmdPath[i+1:])
	}

	r.Prefix(src, svc)

	cmd := reg.Lookup(name)
	switch {
	case cmd == nil && subcmdOf != "":
		r.Invalid(src, svc, subcmdOf)
	case cmd == nil:
		r.notAvailable(src, cmdPath, subcmdOf, false)
	case cmd.Help.Path != "":
		r.renderPath(src, svc, cmdPath, cmd.Help.Path)
	case cmd.Help.Func != nil:
		cmd.Help.Func(ctx, src, remainder)
	default:
		r.notAvailable(src, cmdPath, subcmdOf, true)
	}

	r.Suffix(src)
}

func (r *Renderer) notAvailable(src *command.Source, cmdText, subcmdOf string, exists bool) {
	if exists {
		text := cmdText
		if subcmdOf != "" {
			text = subcmdOf + " " + cmdText
		}
		src.Replyf("help.no_help_available", text)
	} else {
		src.Replyf("help.no_such_command", cmdText)
	}
	r.Newline(src)
	r.Locations(src)
}

func (r *Renderer) open(src *command.Source, path string) *os.File {
	if filepath.IsAbs(path) {
		fh, err := os.Open(path)
		if err != nil {
			log.Printf("help: open %s: %v", path, err)
			return nil
		}
		return fh
	}

	sub := path
	if !r.NicknameOwnership && strings.HasPrefix(sub, "nickserv/") {
		sub = "user" + sub[len("nick"):]
	}

	// A missing translated variant is the normal case; only a miss on the
	// base directory below is worth an operator diagnostic.
	if suffix := i18n.DirSuffix(src.Lang); suffix != "" {
		full := filepath.Join(r.Root, suffix, filepath.FromSlash(sub))
		if fh, err := os.Open(full); err == nil {
			return fh
		}
	}

	full := filepath.Join(r.Root, filepath.FromSlash(sub))
	fh, err := os.Open(full)
	if err != nil {
		log.Printf("help: open %s: %v", full, err)
		return nil
	}
	return fh
}

func (r *Renderer) renderPath(src *command.Source, svc *command.Service, cmdText, path string) {
	fh := r.open(src, path)
	if fh == nil {
		src.Replyf("help.could_not_open", cmdText)
		r.Newline(src)
		r.Locations(src)
		return
	}
	defer fh.Close()

	var st markupState
	scanner := bufio.NewScanner(fh)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")
		line = strings.ReplaceAll(line, "&nick&", svc.Disp)

		switch {
		case foldPrefix(line, "#if"):
			if st.suppressed > 0 || !r.evalCondition(src, line[len("#if"):]) {
				st.suppressed++
			}
			st.nest++
		case foldPrefix(line, "#endif"):
			if st.suppressed > 0 {
				st.suppressed--
			}
			if st.nest > 0 {
				st.nest--
			}
		case foldPrefix(line, "#else"):
			if st.nest > 0 && st.suppressed < 2 {
				st.suppressed ^= 1
			}
		case st.suppressed > 0:
		case line != "":
			src.Reply(line)
		default:
			r.Newline(src)
		}
	}
	if err := scanner.Err(); err != nil {
		log.Printf("help: read %s: %v", path, err)
	}

	r.Newline(src)
}

func foldPrefix(line, prefix string) bool {
	return len(line) >= len(prefix) && strings.EqualFold(line[:len(prefix)], prefix)
}
