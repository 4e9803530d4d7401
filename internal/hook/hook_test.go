package hook

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/veldt-labs/chatserv/internal/account"
)

func TestUserCanLoginDefaultsToAllow(t *testing.T) {
	d := NewDispatcher()
	d.AddEvent(EventUserCanLogin)
	if !d.UserCanLogin("alice", &account.Account{Name: "alice"}) {
		t.Fatal("login denied with no hooks registered")
	}
}

func TestVetoHook(t *testing.T) {
	d := NewDispatcher()
	d.AddEvent(EventUserCanLogin)
	d.AddHook(EventUserCanLogin, func(payload any) {
		check := payload.(*LoginCheck)
		if check.Account.Name == "banned" {
			check.Allowed = false
		}
	})

	if d.UserCanLogin("alice", &account.Account{Name: "alice"}) != true {
		t.Fatal("unrelated account vetoed")
	}
	if d.UserCanLogin("alice", &account.Account{Name: "banned"}) {
		t.Fatal("veto not applied")
	}
}

func TestHooksRunInRegistrationOrder(t *testing.T) {
	d := NewDispatcher()
	var order []int
	d.AddHook("probe", func(any) { order = append(order, 1) })
	d.AddHook("probe", func(any) { order = append(order, 2) })
	d.Call("probe", nil)
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Fatalf("order = %v", order)
	}
}

func TestLuaLoginPolicy(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "policy.lua")
	script := `
function user_can_login(nick, account)
	return account ~= "banned"
end
`
	if err := os.WriteFile(path, []byte(script), 0o644); err != nil {
		t.Fatalf("write policy: %v", err)
	}

	fn, err := LoginPolicy(path)
	if err != nil {
		t.Fatalf("load policy: %v", err)
	}

	d := NewDispatcher()
	d.AddHook(EventUserCanLogin, fn)

	if !d.UserCanLogin("alice", &account.Account{Name: "alice"}) {
		t.Fatal("policy vetoed allowed account")
	}
	if d.UserCanLogin("alice", &account.Account{Name: "banned"}) {
		t.Fatal("policy did not veto banned account")
	}
}

func TestLuaLoginPolicyRejectsMissingFunction(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "policy.lua")
	if err := os.WriteFile(path, []byte("x = 1\n"), 0o644); err != nil {
		t.Fatalf("write policy: %v", err)
	}
	if _, err := LoginPolicy(path); err == nil {
		t.Fatal("expected error for policy without user_can_login")
	}
}
