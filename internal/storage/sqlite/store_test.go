package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/veldt-labs/chatserv/internal/account"
	apperrors "github.com/veldt-labs/chatserv/internal/errors"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "accounts.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestCreateAndFind(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	created, err := store.CreateAccount(ctx, "Alice", "secret", account.FlagCryptPass)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Name != "Alice" {
		t.Fatalf("name = %q, want Alice", created.Name)
	}

	// Lookups are case-insensitive and intern the live instance.
	found, err := store.FindByName(ctx, "ALICE")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found != created {
		t.Fatal("lookup returned a different instance for the same account")
	}
}

func TestFindMissingAccount(t *testing.T) {
	store := newTestStore(t)
	_, err := store.FindByName(context.Background(), "ghost")
	if !apperrors.IsCode(err, apperrors.CodeNoSuchAccount) {
		t.Fatalf("err = %v, want no-such-account", err)
	}
}

func TestVerifyPasswordDigest(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	a, err := store.CreateAccount(ctx, "alice", "secret", account.FlagCryptPass)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	ok, err := store.VerifyPassword(ctx, a, "secret")
	if err != nil || !ok {
		t.Fatalf("verify = %v, %v; want true", ok, err)
	}
	ok, err = store.VerifyPassword(ctx, a, "wrong")
	if err != nil || ok {
		t.Fatalf("verify = %v, %v; want false", ok, err)
	}
}

func TestVerifyPasswordCleartext(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	a, err := store.CreateAccount(ctx, "alice", "secret", 0)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	ok, err := store.VerifyPassword(ctx, a, "secret")
	if err != nil || !ok {
		t.Fatalf("verify = %v, %v; want true", ok, err)
	}
}

func TestSetLastLoginPersists(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	a, err := store.CreateAccount(ctx, "alice", "secret", account.FlagCryptPass)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	at := time.Date(2025, 3, 9, 12, 30, 0, 0, time.UTC)
	if err := store.SetLastLogin(ctx, a, at); err != nil {
		t.Fatalf("set last login: %v", err)
	}
	if !a.LastLogin.Equal(at) {
		t.Fatalf("live last login = %v, want %v", a.LastLogin, at)
	}

	var stored int64
	row := store.sqlDB.QueryRow(`SELECT last_login FROM accounts WHERE name = ?`, "alice")
	if err := row.Scan(&stored); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if got := fromMillis(stored); !got.Equal(at) {
		t.Fatalf("stored last login = %v, want %v", got, at)
	}
}

func TestMetadataRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.db")
	ctx := context.Background()

	store, err := Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}

	a, err := store.CreateAccount(ctx, "alice", "secret", account.FlagCryptPass)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := store.SetMetadata(ctx, a, account.MetadataFreezer, "oper"); err != nil {
		t.Fatalf("set metadata: %v", err)
	}
	if !a.Frozen() {
		t.Fatal("freeze marker not visible on live instance")
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	// Metadata survives reopening the store.
	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	defer reopened.Close()

	b, err := reopened.FindByName(ctx, "alice")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if !b.Frozen() {
		t.Fatal("freeze marker lost across reopen")
	}

	if err := reopened.DeleteMetadata(ctx, b, account.MetadataFreezer); err != nil {
		t.Fatalf("delete metadata: %v", err)
	}
	if b.Frozen() {
		t.Fatal("freeze marker still visible after delete")
	}
}
