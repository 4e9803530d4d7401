// Package sqlite implements account persistence over SQLite.
package sqlite

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"database/sql"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/veldt-labs/chatserv/internal/account"
	apperrors "github.com/veldt-labs/chatserv/internal/errors"
	"github.com/veldt-labs/chatserv/internal/platform/storage/sqlitemigrate"
	"github.com/veldt-labs/chatserv/internal/storage/sqlite/migrations"
)

// toMillis normalizes timestamps into millisecond precision for storage.
func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

// fromMillis restores millisecond precision and keeps UTC normalization.
func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Store implements account persistence over SQLite.
//
// Live session bindings hang off *account.Account instances, so the store
// interns accounts by normalized name and every lookup for the same name
// returns the same instance for the lifetime of the process.
type Store struct {
	sqlDB *sql.DB

	mu   sync.Mutex
	live map[string]*account.Account
}

// Open opens an account SQLite store and applies bundled migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &Store{
		sqlDB: sqlDB,
		live:  make(map[string]*account.Account),
	}

	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return store, nil
}

// Close releases the underlying SQLite database.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// CreateAccount registers a new account. The password is digested when flags
// carry FlagCryptPass and stored as given otherwise.
func (s *Store) CreateAccount(ctx context.Context, name, password string, flags account.Flag) (*account.Account, error) {
	key := account.NormalizeName(name)
	stored := password
	if flags&account.FlagCryptPass != 0 {
		stored = digest(password)
	}

	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO accounts (name, display_name, password, flags, last_login, created_at) VALUES (?, ?, ?, ?, 0, ?)`,
		key, name, stored, int64(flags), toMillis(time.Now()),
	)
	if err != nil {
		return nil, fmt.Errorf("insert account %s: %w", key, err)
	}
	return s.FindByName(ctx, name)
}

// FindByName resolves an account, interning the live instance.
func (s *Store) FindByName(ctx context.Context, name string) (*account.Account, error) {
	key := account.NormalizeName(name)

	s.mu.Lock()
	if a, ok := s.live[key]; ok {
		s.mu.Unlock()
		return a, nil
	}
	s.mu.Unlock()

	var displayName string
	var flags int64
	var lastLogin int64
	row := s.sqlDB.QueryRowContext(ctx,
		`SELECT display_name, flags, last_login FROM accounts WHERE name = ?`, key)
	if err := row.Scan(&displayName, &flags, &lastLogin); err != nil {
		if err == sql.ErrNoRows {
			return nil, apperrors.New(apperrors.CodeNoSuchAccount, name+" is not registered")
		}
		return nil, fmt.Errorf("query account %s: %w", key, err)
	}

	meta, err := s.loadMetadata(ctx, key)
	if err != nil {
		return nil, err
	}

	a := &account.Account{
		Name:      displayName,
		Flags:     account.Flag(flags),
		LastLogin: fromMillis(lastLogin),
		Metadata:  meta,
	}

	// Another goroutine may have interned the same name while we were
	// reading; the first instance wins.
	s.mu.Lock()
	defer s.mu.Unlock()
	if prior, ok := s.live[key]; ok {
		return prior, nil
	}
	s.live[key] = a
	return a, nil
}

// VerifyPassword checks a cleartext password against the stored state. Digest
// accounts compare digests; cleartext accounts compare in constant time.
func (s *Store) VerifyPassword(ctx context.Context, a *account.Account, password string) (bool, error) {
	var stored string
	row := s.sqlDB.QueryRowContext(ctx,
		`SELECT password FROM accounts WHERE name = ?`, account.NormalizeName(a.Name))
	if err := row.Scan(&stored); err != nil {
		if err == sql.ErrNoRows {
			return false, apperrors.New(apperrors.CodeNoSuchAccount, a.Name+" is not registered")
		}
		return false, fmt.Errorf("query password for %s: %w", a.Name, err)
	}

	if a.Flags&account.FlagCryptPass != 0 {
		password = digest(password)
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(password)) == 1, nil
}

// SetLastLogin records the account's most recent login activity.
func (s *Store) SetLastLogin(ctx context.Context, a *account.Account, at time.Time) error {
	_, err := s.sqlDB.ExecContext(ctx,
		`UPDATE accounts SET last_login = ? WHERE name = ?`,
		toMillis(at), account.NormalizeName(a.Name))
	if err != nil {
		return fmt.Errorf("update last login for %s: %w", a.Name, err)
	}
	a.LastLogin = at.UTC()
	return nil
}

// SetMetadata writes one metadata entry, keeping the live instance in sync.
func (s *Store) SetMetadata(ctx context.Context, a *account.Account, key, value string) error {
	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO account_metadata (account_name, key, value) VALUES (?, ?, ?)
		 ON CONFLICT (account_name, key) DO UPDATE SET value = excluded.value`,
		account.NormalizeName(a.Name), key, value)
	if err != nil {
		return fmt.Errorf("set metadata %s for %s: %w", key, a.Name, err)
	}
	if a.Metadata == nil {
		a.Metadata = make(map[string]string)
	}
	a.Metadata[key] = value
	return nil
}

// DeleteMetadata removes one metadata entry, keeping the live instance in sync.
func (s *Store) DeleteMetadata(ctx context.Context, a *account.Account, key string) error {
	_, err := s.sqlDB.ExecContext(ctx,
		`DELETE FROM account_metadata WHERE account_name = ? AND key = ?`,
		account.NormalizeName(a.Name), key)
	if err != nil {
		return fmt.Errorf("delete metadata %s for %s: %w", key, a.Name, err)
	}
	delete(a.Metadata, key)
	return nil
}

func (s *Store) loadMetadata(ctx context.Context, key string) (map[string]string, error) {
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT key, value FROM account_metadata WHERE account_name = ?`, key)
	if err != nil {
		return nil, fmt.Errorf("query metadata for %s: %w", key, err)
	}
	defer rows.Close()

	meta := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("scan metadata for %s: %w", key, err)
		}
		meta[k] = v
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read metadata for %s: %w", key, err)
	}
	return meta, nil
}

func digest(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
