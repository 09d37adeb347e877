// Package sqlite provides a SQLite-backed credential store. The database
// holds exactly one row: the live bearer credential under a fixed key.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/studyhubhq/studyhub/pkg/studysdk"

	_ "modernc.org/sqlite"
)

// credentialKey is the fixed key the single credential lives under.
const credentialKey = "bearer"

type Store struct {
	db *sql.DB
}

var _ studysdk.TokenStore = (*Store)(nil)

// NewStore opens (or creates) the credential database at dsn and applies any
// pending migrations.
func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open credential store: %w", err)
	}

	s := &Store{db: db}
	if err := s.ApplyMigrations(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate credential store: %w", err)
	}

	return s, nil
}

// Close releases the underlying database.
func (s *Store) Close() error { return s.db.Close() }

// Save replaces the stored credential.
func (s *Store) Save(credential string) error {
	_, err := s.db.Exec(`
		INSERT INTO credential (key, token, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (key) DO UPDATE SET token = excluded.token, updated_at = excluded.updated_at
	`, credentialKey, credential)
	return err
}

// Read returns the stored credential, or "" when absent.
func (s *Store) Read() (string, error) {
	var token string
	err := s.db.QueryRow(`SELECT token FROM credential WHERE key = ?`, credentialKey).Scan(&token)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return token, nil
}

// Clear erases the stored credential.
func (s *Store) Clear() error {
	_, err := s.db.Exec(`DELETE FROM credential WHERE key = ?`, credentialKey)
	return err
}
