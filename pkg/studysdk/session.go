package studysdk

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
)

// Session is the process-wide holder of the current identity. It wraps a
// Client with credential storage, hydration on construction and automatic
// single-flight recovery when the backend rejects the credential.
//
// All refresh coordination state lives on this long-lived value, shared by
// every request that flows through it. Constructing a Session per request
// would defeat the single-flight guarantee.
type Session struct {
	client *Client
	store  TokenStore
	log    *slog.Logger

	mu       sync.RWMutex
	identity *Identity
	loading  bool

	// refreshMu guards inflight. The check-and-set in recoverCredential must
	// happen entirely under this lock so two concurrent 401s can never start
	// two refresh calls.
	refreshMu sync.Mutex
	inflight  *refreshCall

	onExpired func()
}

// SessionOption customises a Session at construction.
type SessionOption func(*Session)

// WithExpiredNotice registers a hook invoked when the session expires
// irrecoverably (failed refresh, or a 401 surviving a completed retry).
// Front ends use it to show the "session expired, log in again" notice.
func WithExpiredNotice(fn func()) SessionOption {
	return func(s *Session) { s.onExpired = fn }
}

// NewSession builds a Session and hydrates it from the token store before
// returning. A stored credential with a usable subject id sets the identity
// with no network traffic; a credential without one triggers exactly one
// recovery cycle. A failed recovery leaves the session unauthenticated
// rather than failing construction.
func NewSession(ctx context.Context, client *Client, store TokenStore, opts ...SessionOption) (*Session, error) {
	s := &Session{
		client:  client,
		store:   store,
		log:     client.logger,
		loading: true,
	}

	for _, opt := range opts {
		opt(s)
	}

	if err := s.hydrate(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()

	return s, nil
}

// hydrate restores the identity from the stored credential, if any.
func (s *Session) hydrate(ctx context.Context) error {
	credential, err := s.store.Read()
	if err != nil {
		return fmt.Errorf("failed to read token store: %w", err)
	}
	if credential == "" {
		return nil
	}

	id, err := DecodeIdentity(credential)
	if err == nil && id.Usable() {
		s.setIdentity(id)
		return nil
	}

	// Present but unusable: one recovery cycle decides whether the session
	// survives. Failure is not fatal to bootstrap.
	if _, err := s.recoverCredential(ctx); err != nil {
		s.log.Warn("session bootstrap refresh failed", "error", err)
	}

	return nil
}

// Login exchanges an email/password pair for a bearer credential and makes
// the decoded identity current. Rejected credentials fail with
// ErrInvalidCredentials.
func (s *Session) Login(ctx context.Context, req LoginRequest) (*Identity, error) {
	if err := validateStruct(&req); err != nil {
		return nil, err
	}

	token, err := s.client.loginGrant(ctx, req)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized {
			return nil, fmt.Errorf("%w: %s", ErrInvalidCredentials, apiErr.Message)
		}
		return nil, err
	}

	return s.adoptCredential(token)
}

// LoginWithProvider completes a social login from an identity provider
// result. Unusable provider results fail with *ProviderError and change no
// session state.
func (s *Session) LoginWithProvider(ctx context.Context, result ProviderResult) (*Identity, error) {
	if result.UID == "" {
		return nil, &ProviderError{Provider: result.Provider, Reason: "provider returned no account id"}
	}

	payload := providerLoginRequest{Provider: result, Email: result.Email}

	token, err := s.client.loginGrant(ctx, payload)
	if err != nil {
		return nil, &ProviderError{Provider: result.Provider, Reason: err.Error()}
	}

	return s.adoptCredential(token)
}

// adoptCredential decodes, persists and publishes a freshly issued
// credential. Decode happens first so a malformed credential never reaches
// the store.
func (s *Session) adoptCredential(token string) (*Identity, error) {
	id, err := DecodeIdentity(token)
	if err != nil {
		return nil, err
	}

	if err := s.store.Save(token); err != nil {
		return nil, fmt.Errorf("failed to persist credential: %w", err)
	}

	s.setIdentity(id)
	s.log.Info("session established", "subject", id.Subject, "role", id.Role)

	public := *id
	return &public, nil
}

// Logout clears the credential and identity. Navigation back to the login
// view is the role gate's job; logout itself only drops state.
func (s *Session) Logout() error {
	if err := s.store.Clear(); err != nil {
		return fmt.Errorf("failed to clear token store: %w", err)
	}

	s.setIdentity(nil)
	s.log.Info("logged out")
	return nil
}

// CurrentIdentity returns a copy of the current identity, or nil when the
// session is unauthenticated.
func (s *Session) CurrentIdentity() *Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.identity == nil {
		return nil
	}

	id := *s.identity
	return &id
}

// Loading reports whether the session is still hydrating.
func (s *Session) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *Session) setIdentity(id *Identity) {
	s.mu.Lock()
	s.identity = id
	s.mu.Unlock()
}

// expire is the irrecoverable failure path: the credential and identity are
// dropped and the expired notice is raised. Called when a refresh fails or a
// retried request is rejected again.
func (s *Session) expire() {
	if err := s.store.Clear(); err != nil {
		s.log.Error("failed to clear token store on expiry", "error", err)
	}
	s.setIdentity(nil)
	s.log.Warn("session expired")

	if s.onExpired != nil {
		s.onExpired()
	}
}
