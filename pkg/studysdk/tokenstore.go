package studysdk

import "sync"

// TokenStore persists the single bearer credential for this client. Exactly
// one credential is live at a time; it is replaced wholesale on login and
// refresh and erased on logout or irrecoverable refresh failure.
//
// The store performs no validation beyond presence. Expiry is discovered by
// the request pipeline through a 401, never checked locally.
//
// Only the session's login/logout paths and the recovery cycle write to the
// store; resource operations read through the pipeline.
type TokenStore interface {
	// Save replaces the stored credential.
	Save(credential string) error

	// Read returns the stored credential, or "" when absent.
	Read() (string, error)

	// Clear erases the stored credential. Clearing an empty store is not an
	// error.
	Clear() error
}

// MemoryTokenStore is a process-local TokenStore. It satisfies the interface
// for tests and for callers that manage durability themselves.
type MemoryTokenStore struct {
	mu         sync.Mutex
	credential string
}

// NewMemoryTokenStore returns an empty in-memory store.
func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{}
}

// Save replaces the stored credential.
func (s *MemoryTokenStore) Save(credential string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.credential = credential
	return nil
}

// Read returns the stored credential, or "" when absent.
func (s *MemoryTokenStore) Read() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.credential, nil
}

// Clear erases the stored credential.
func (s *MemoryTokenStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.credential = ""
	return nil
}
