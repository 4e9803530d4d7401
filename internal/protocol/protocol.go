// Package protocol decouples the command and session core from wire-dialect
// specifics. A dialect module overrides entries in the capability table at
// load time; operations it does not implement fall back to diagnostic no-ops,
// so callers invoke any operation unconditionally.
package protocol

import (
	"context"
	"log"
)

// Op names one protocol operation in the capability table.
type Op string

const (
	OpServerLogin   Op = "server_login"
	OpIntroduceNick Op = "introduce_nick"
	OpWallops       Op = "wallops"
	OpJoin          Op = "join"
	OpKick          Op = "kick"
	OpPrivmsg       Op = "privmsg"
	OpNotice        Op = "notice"
	OpNumeric       Op = "numeric"
	OpKill          Op = "kill"
	OpPart          Op = "part"
	OpBanAdd        Op = "ban_add"
	OpBanRemove     Op = "ban_remove"
	OpTopic         Op = "topic"
	OpMode          Op = "mode"
	OpPing          Op = "ping"
	OpQuit          Op = "quit"
	OpOnLogin       Op = "on_login"
	OpOnLogout      Op = "on_logout"
	OpJupe          Op = "jupe"
	OpSetHost       Op = "set_host"
)

var allOps = []Op{
	OpServerLogin, OpIntroduceNick, OpWallops, OpJoin, OpKick,
	OpPrivmsg, OpNotice, OpNumeric, OpKill, OpPart,
	OpBanAdd, OpBanRemove, OpTopic, OpMode, OpPing,
	OpQuit, OpOnLogin, OpOnLogout, OpJupe, OpSetHost,
}

// Ops returns all operation names in the table.
func Ops() []Op {
	ops := make([]Op, len(allOps))
	copy(ops, allOps)
	return ops
}

// Event carries the arguments of one protocol operation.
type Event struct {
	Source  string // originating nick or server
	Target  string // destination nick, account, or server
	Channel string
	Text    string // message body, reason, or topic
	Host    string
	Numeric int
	TS      int64
}

// Result reports dialect-side consequences of an operation. Killed is set by
// dialects whose logout handling terminates the connection.
type Result struct {
	Killed bool
}

// Func is the uniform signature of a capability table entry.
type Func func(ctx context.Context, ev Event) Result

func defaultFor(op Op) Func {
	return func(ctx context.Context, ev Event) Result {
		log.Printf("protocol: no dialect handler for %s (target=%q text=%q)", op, ev.Target, ev.Text)
		return Result{}
	}
}
