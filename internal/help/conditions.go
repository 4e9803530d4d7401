package help

import (
	"log"
	"strings"

	"github.com/veldt-labs/chatserv/internal/command"
)

// evalCondition evaluates one `#if` condition. A leading `!` negates the
// whole condition; unrecognized conditions evaluate false.
func (r *Renderer) evalCondition(src *command.Source, str string) bool {
	str = strings.TrimLeft(str, " \t")
	if str == "" {
		log.Printf("help: empty condition")
		return false
	}
	if str[0] == '!' {
		return !r.evalCondition(src, str[1:])
	}

	condition := str
	arg := ""
	if i := strings.IndexAny(condition, " \t"); i >= 0 {
		condition, arg = condition[:i], strings.TrimLeft(condition[i+1:], " \t")
		if j := strings.IndexAny(arg, " \t"); j >= 0 {
			arg = arg[:j]
		}
	}

	if arg != "" {
		if strings.EqualFold(condition, "module") {
			return r.ModuleLoaded != nil && r.ModuleLoaded(arg)
		}
		if strings.EqualFold(condition, "priv") {
			return r.hasPriv(src, arg)
		}
	}

	switch {
	case strings.EqualFold(condition, "anyprivs"):
		return r.hasAnyPrivs(src)
	case strings.EqualFold(condition, "auth"):
		return src.Authenticated()
	case strings.EqualFold(condition, "halfops"):
		return r.UsesHalfops
	case strings.EqualFold(condition, "owner"):
		return r.UsesOwner
	case strings.EqualFold(condition, "protect"):
		return r.UsesProtect
	}

	log.Printf("help: unrecognised condition %q (string %q)", condition, str)
	return false
}

func (r *Renderer) hasPriv(src *command.Source, priv string) bool {
	if src.Service == nil || src.Service.Auth == nil {
		return false
	}
	return src.Service.Auth.HasPrivilege(src, priv)
}

func (r *Renderer) hasAnyPrivs(src *command.Source) bool {
	if src.Service == nil || src.Service.Auth == nil {
		return false
	}
	return src.Service.Auth.HasAnyPrivilege(src)
}
