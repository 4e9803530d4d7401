package console

import (
	"context"
	"strings"
	"testing"

	"github.com/veldt-labs/chatserv/internal/protocol"
)

func TestNoticePrintsToWriter(t *testing.T) {
	table := protocol.NewTable()
	var out strings.Builder
	if err := Register(table, &out); err != nil {
		t.Fatalf("register: %v", err)
	}

	table.Notice(context.Background(), "UserServ", "alice", "hello")
	if got := out.String(); got != "-UserServ- hello\n" {
		t.Fatalf("output = %q", got)
	}
}

func TestLogoutNeverKills(t *testing.T) {
	table := protocol.NewTable()
	var out strings.Builder
	if err := Register(table, &out); err != nil {
		t.Fatalf("register: %v", err)
	}

	if table.OnLogout(context.Background(), "alice", "alice") {
		t.Fatal("console dialect reported a kill on logout")
	}
	if !strings.Contains(out.String(), "alice logged out of alice") {
		t.Fatalf("output = %q", out.String())
	}
}
