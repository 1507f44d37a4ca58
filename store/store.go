// Package store persists accounts, avatars and report entries in SQLite.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// ErrNotFound is returned when a lookup matches no row
var ErrNotFound = errors.New("not found")

// Store wraps the SQLite connection
// SQLite serializes writers itself, so no application-level locking is needed
type Store struct {
	db *sql.DB
}

// Account is a dashboard user
type Account struct {
	ID        int64
	Email     string
	Name      string
	Role      string
	AvatarID  string
	CreatedAt time.Time
}

// Avatar is a stored profile photo
type Avatar struct {
	ID          string
	AccountID   int64
	ContentType string
	Data        []byte
	CreatedAt   time.Time
}

// Entry is one reported amount
type Entry struct {
	Day      time.Time
	Region   string
	Category string
	Amount   float64
}

const schema = `
CREATE TABLE IF NOT EXISTS accounts (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	email TEXT NOT NULL UNIQUE,
	name TEXT NOT NULL DEFAULT '',
	role TEXT NOT NULL DEFAULT 'viewer',
	avatar_id TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS avatars (
	id TEXT PRIMARY KEY,
	account_id INTEGER NOT NULL,
	content_type TEXT NOT NULL,
	data BLOB NOT NULL,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (account_id) REFERENCES accounts(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS report_entries (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	day TEXT NOT NULL, -- YYYY-MM-DD
	region TEXT NOT NULL,
	category TEXT NOT NULL,
	amount REAL NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_report_entries_day ON report_entries(day);
`

// Open opens or creates the database at path
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the connection
func (s *Store) Close() error {
	return s.db.Close()
}

// CreateAccount inserts an account and returns its id
func (s *Store) CreateAccount(ctx context.Context, email, name, role string) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO accounts (email, name, role) VALUES (?, ?, ?)`, email, name, role)
	if err != nil {
		return 0, fmt.Errorf("insert account %s: %w", email, err)
	}
	return res.LastInsertId()
}

// AccountByEmail looks an account up by email
func (s *Store) AccountByEmail(ctx context.Context, email string) (Account, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, email, name, role, avatar_id, created_at FROM accounts WHERE email = ?`, email)
	var a Account
	err := row.Scan(&a.ID, &a.Email, &a.Name, &a.Role, &a.AvatarID, &a.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Account{}, fmt.Errorf("account %s: %w", email, ErrNotFound)
	}
	if err != nil {
		return Account{}, fmt.Errorf("query account %s: %w", email, err)
	}
	return a, nil
}

// Accounts lists all accounts ordered by email
func (s *Store) Accounts(ctx context.Context) ([]Account, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, email, name, role, avatar_id, created_at FROM accounts ORDER BY email`)
	if err != nil {
		return nil, fmt.Errorf("query accounts: %w", err)
	}
	defer rows.Close()

	var out []Account
	for rows.Next() {
		var a Account
		if err := rows.Scan(&a.ID, &a.Email, &a.Name, &a.Role, &a.AvatarID, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// SetRole updates the role of the account with email
func (s *Store) SetRole(ctx context.Context, email, role string) error {
	res, err := s.db.ExecContext(ctx, `UPDATE accounts SET role = ? WHERE email = ?`, role, email)
	if err != nil {
		return fmt.Errorf("update role %s: %w", email, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("account %s: %w", email, ErrNotFound)
	}
	return nil
}

// SaveAvatar stores a photo and points the account at it, returns the new avatar id
func (s *Store) SaveAvatar(ctx context.Context, accountID int64, contentType string, data []byte) (string, error) {
	id := uuid.NewString()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO avatars (id, account_id, content_type, data) VALUES (?, ?, ?, ?)`,
		id, accountID, contentType, data); err != nil {
		return "", fmt.Errorf("insert avatar: %w", err)
	}
	res, err := tx.ExecContext(ctx, `UPDATE accounts SET avatar_id = ? WHERE id = ?`, id, accountID)
	if err != nil {
		return "", fmt.Errorf("link avatar: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return "", fmt.Errorf("account %d: %w", accountID, ErrNotFound)
	}
	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}
	return id, nil
}

// Avatar loads a stored photo
func (s *Store) Avatar(ctx context.Context, id string) (Avatar, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, account_id, content_type, data, created_at FROM avatars WHERE id = ?`, id)
	var a Avatar
	err := row.Scan(&a.ID, &a.AccountID, &a.ContentType, &a.Data, &a.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Avatar{}, fmt.Errorf("avatar %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return Avatar{}, fmt.Errorf("query avatar %s: %w", id, err)
	}
	return a, nil
}
