// Package console is a minimal dialect for local operation: messaging
// operations print to a writer and nothing ever disconnects a user.
package console

import (
	"context"
	"fmt"
	"io"

	"github.com/veldt-labs/chatserv/internal/protocol"
)

// Register installs the console handlers into the capability table.
// Operations the console has no use for keep their diagnostic defaults.
func Register(table *protocol.Table, out io.Writer) error {
	handlers := map[protocol.Op]protocol.Func{
		protocol.OpNotice: func(ctx context.Context, ev protocol.Event) protocol.Result {
			fmt.Fprintf(out, "-%s- %s\n", ev.Source, ev.Text)
			return protocol.Result{}
		},
		protocol.OpPrivmsg: func(ctx context.Context, ev protocol.Event) protocol.Result {
			fmt.Fprintf(out, "<%s> %s\n", ev.Source, ev.Text)
			return protocol.Result{}
		},
		protocol.OpWallops: func(ctx context.Context, ev protocol.Event) protocol.Result {
			fmt.Fprintf(out, "!%s! %s\n", ev.Source, ev.Text)
			return protocol.Result{}
		},
		protocol.OpOnLogin: func(ctx context.Context, ev protocol.Event) protocol.Result {
			fmt.Fprintf(out, "* %s logged in as %s\n", ev.Source, ev.Target)
			return protocol.Result{}
		},
		protocol.OpOnLogout: func(ctx context.Context, ev protocol.Event) protocol.Result {
			fmt.Fprintf(out, "* %s logged out of %s\n", ev.Source, ev.Target)
			return protocol.Result{}
		},
	}
	for op, fn := range handlers {
		if err := table.Register(op, fn); err != nil {
			return err
		}
	}
	return nil
}
