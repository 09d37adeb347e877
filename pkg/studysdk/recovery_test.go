package studysdk

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestRecoverySingleFlight(t *testing.T) {
	t.Parallel()

	const workers = 16

	fresh := signTestToken(t, jwt.MapClaims{"id": "user-1", "role": "student"})

	var refreshes atomic.Int64
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/refresh-token":
			refreshes.Add(1)
			// Stay in flight long enough for every worker's 401 to join this
			// cycle instead of starting its own.
			time.Sleep(150 * time.Millisecond)
			writeJSON(t, w, http.StatusOK, map[string]string{"accessToken": fresh})
		case "/api/resource":
			if r.Header.Get("Authorization") != "Bearer "+fresh {
				writeJSON(t, w, http.StatusUnauthorized, map[string]string{"message": "jwt expired"})
				return
			}
			writeJSON(t, w, http.StatusOK, map[string]string{"ok": "true"})
		default:
			http.NotFound(w, r)
		}
	})

	client, _ := newTestClient(t, handler)
	store := NewMemoryTokenStore()

	session, err := NewSession(context.Background(), client, store)
	require.NoError(t, err)

	// Seed a stale credential after construction so hydration does not spend
	// the recovery cycle this test is about.
	require.NoError(t, store.Save(signTestToken(t, jwt.MapClaims{"id": "user-1", "exp": 1})))

	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var out map[string]string
			errs[i] = session.getJSON(context.Background(), "/api/resource", nil, &out)
		}()
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}
	require.Equal(t, int64(1), refreshes.Load())

	stored, err := store.Read()
	require.NoError(t, err)
	require.Equal(t, fresh, stored)
}

func TestRecoveryRetryOnceThenExpire(t *testing.T) {
	t.Parallel()

	var resourceHits, refreshes atomic.Int64
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/refresh-token":
			refreshes.Add(1)
			token := signTestToken(t, jwt.MapClaims{"id": "user-1"})
			writeJSON(t, w, http.StatusOK, map[string]string{"accessToken": token})
		default:
			// The backend keeps rejecting even the refreshed credential.
			resourceHits.Add(1)
			writeJSON(t, w, http.StatusUnauthorized, map[string]string{"message": "forbidden token"})
		}
	})

	client, _ := newTestClient(t, handler)
	store := NewMemoryTokenStore()

	var expired atomic.Bool
	session, err := NewSession(context.Background(), client, store,
		WithExpiredNotice(func() { expired.Store(true) }),
	)
	require.NoError(t, err)
	require.NoError(t, store.Save(signTestToken(t, jwt.MapClaims{"id": "user-1"})))

	var out map[string]string
	err = session.getJSON(context.Background(), "/api/resource", nil, &out)
	require.ErrorIs(t, err, ErrSessionExpired)

	// Original send plus exactly one resubmission.
	require.Equal(t, int64(2), resourceHits.Load())
	require.Equal(t, int64(1), refreshes.Load())

	require.True(t, expired.Load())
	require.Nil(t, session.CurrentIdentity())

	stored, err := store.Read()
	require.NoError(t, err)
	require.Empty(t, stored)
}

func TestRecoveryRefreshFailureExpiresSession(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/refresh-token":
			writeJSON(t, w, http.StatusUnauthorized, map[string]string{"message": "refresh cookie missing"})
		default:
			writeJSON(t, w, http.StatusUnauthorized, map[string]string{"message": "jwt expired"})
		}
	})

	client, _ := newTestClient(t, handler)
	store := NewMemoryTokenStore()

	var expired atomic.Bool
	session, err := NewSession(context.Background(), client, store,
		WithExpiredNotice(func() { expired.Store(true) }),
	)
	require.NoError(t, err)
	require.NoError(t, store.Save(signTestToken(t, jwt.MapClaims{"id": "user-1"})))

	var out map[string]string
	err = session.getJSON(context.Background(), "/api/resource", nil, &out)
	require.ErrorIs(t, err, ErrSessionExpired)

	require.True(t, expired.Load())
	require.Nil(t, session.CurrentIdentity())
}

func TestRecoveryEmptyRefreshResponse(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/refresh-token":
			writeJSON(t, w, http.StatusOK, map[string]string{"accessToken": ""})
		default:
			writeJSON(t, w, http.StatusUnauthorized, map[string]string{"message": "jwt expired"})
		}
	})

	client, _ := newTestClient(t, handler)
	store := NewMemoryTokenStore()

	session, err := NewSession(context.Background(), client, store)
	require.NoError(t, err)
	require.NoError(t, store.Save(signTestToken(t, jwt.MapClaims{"id": "user-1"})))

	var out map[string]string
	err = session.getJSON(context.Background(), "/api/resource", nil, &out)
	require.ErrorIs(t, err, ErrSessionExpired)
}

func TestRecoveryNextFailureStartsFreshCycle(t *testing.T) {
	t.Parallel()

	var refreshes atomic.Int64
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/refresh-token":
			n := refreshes.Add(1)
			token := signTestToken(t, jwt.MapClaims{"id": "user-1", "iat": n})
			writeJSON(t, w, http.StatusOK, map[string]string{"accessToken": token})
		default:
			auth := r.Header.Get("Authorization")
			stale := "Bearer " + signTestToken(t, jwt.MapClaims{"id": "user-1", "exp": 1})
			if auth == stale {
				writeJSON(t, w, http.StatusUnauthorized, map[string]string{"message": "jwt expired"})
				return
			}
			writeJSON(t, w, http.StatusOK, map[string]string{"ok": "true"})
		}
	})

	client, _ := newTestClient(t, handler)
	store := NewMemoryTokenStore()

	session, err := NewSession(context.Background(), client, store)
	require.NoError(t, err)

	stale := signTestToken(t, jwt.MapClaims{"id": "user-1", "exp": 1})

	for range 2 {
		require.NoError(t, store.Save(stale))

		var out map[string]string
		require.NoError(t, session.getJSON(context.Background(), "/api/resource", nil, &out))
	}

	// Each stale credential triggered its own completed cycle.
	require.Equal(t, int64(2), refreshes.Load())
}

func TestRecoveryWaiterCancellation(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/refresh-token":
			<-release
			token := signTestToken(t, jwt.MapClaims{"id": "user-1"})
			writeJSON(t, w, http.StatusOK, map[string]string{"accessToken": token})
		default:
			http.NotFound(w, r)
		}
	})

	client, _ := newTestClient(t, handler)
	store := NewMemoryTokenStore()

	session, err := NewSession(context.Background(), client, store)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	_, err = session.recoverCredential(ctx)
	require.ErrorIs(t, err, context.Canceled)

	// The detached refresh still completes and publishes the identity.
	close(release)
	require.Eventually(t, func() bool {
		return session.CurrentIdentity() != nil
	}, 2*time.Second, 10*time.Millisecond)
}
