package studysdk

import (
	"context"
	"fmt"
)

// refreshCall is the shared handle for one in-flight refresh. Every request
// that fails with a 401 while the call is running waits on done and consumes
// the same result. At most one instance exists at a time.
type refreshCall struct {
	done  chan struct{}
	token string
	err   error
}

// recoverCredential returns a refreshed bearer credential. The first caller
// after a 401 starts the refresh; callers arriving while it is in flight
// join it instead of issuing their own. The inflight check-and-set happens
// synchronously under refreshMu, before any suspension point, so two
// refreshes can never race.
//
// The refresh itself runs detached from any single caller's context: one
// waiter cancelling must not fail the result for the rest.
func (s *Session) recoverCredential(ctx context.Context) (string, error) {
	s.refreshMu.Lock()
	call := s.inflight
	if call == nil {
		call = &refreshCall{done: make(chan struct{})}
		s.inflight = call
		go s.runRefresh(context.WithoutCancel(ctx), call)
	}
	s.refreshMu.Unlock()

	select {
	case <-call.done:
		return call.token, call.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// runRefresh performs the refresh call and settles the shared handle. On
// success the store and identity are updated before any waiter is released,
// so every retried request sees the new credential. On failure the session
// is expired and every waiter fails permanently.
func (s *Session) runRefresh(ctx context.Context, call *refreshCall) {
	token, err := s.client.refreshToken(ctx)
	if err != nil {
		s.log.Warn("credential refresh failed", "error", err)
		s.expire()
		call.err = fmt.Errorf("%w: %v", ErrSessionExpired, err)
	} else {
		call.token = token

		if saveErr := s.store.Save(token); saveErr != nil {
			s.log.Error("failed to persist refreshed credential", "error", saveErr)
		}

		if id, decErr := DecodeIdentity(token); decErr == nil {
			s.setIdentity(id)
			s.log.Debug("credential refreshed", "subject", id.Subject, "expires_in", expiresIn(id))
		} else {
			s.log.Warn("refreshed credential did not decode", "error", decErr)
		}
	}

	// Clear the handle before releasing waiters so the next failure starts a
	// fresh cycle.
	s.refreshMu.Lock()
	s.inflight = nil
	s.refreshMu.Unlock()

	close(call.done)
}
