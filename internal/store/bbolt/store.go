// Package bbolt provides a BBolt-backed credential store, for installs that
// prefer a single flat file over SQLite.
package bbolt

import (
	"fmt"

	"github.com/studyhubhq/studyhub/pkg/studysdk"
	"go.etcd.io/bbolt"
)

var (
	bucketAuth    = []byte("auth")
	keyCredential = []byte("token")
)

type Store struct {
	db *bbolt.DB
}

var _ studysdk.TokenStore = (*Store)(nil)

// NewStore opens (or creates) the credential database at path.
func NewStore(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open credential store: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketAuth)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }

// Save replaces the stored credential.
func (s *Store) Save(credential string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketAuth).Put(keyCredential, []byte(credential))
	})
}

// Read returns the stored credential, or "" when absent.
func (s *Store) Read() (string, error) {
	var token string
	err := s.db.View(func(tx *bbolt.Tx) error {
		if data := tx.Bucket(bucketAuth).Get(keyCredential); data != nil {
			token = string(data)
		}
		return nil
	})
	return token, err
}

// Clear erases the stored credential.
func (s *Store) Clear() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketAuth).Delete(keyCredential)
	})
}
