package studysdk

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/studyhubhq/studyhub/pkg/idx"
)

func TestPipelineRequestShape(t *testing.T) {
	t.Parallel()

	token := signTestToken(t, jwt.MapClaims{"id": "user-1", "role": "student"})

	var captured *http.Request
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r.Clone(context.Background())
		writeJSON(t, w, http.StatusOK, map[string]string{"ok": "true"})
	})

	client, _ := newTestClient(t, handler)
	store := NewMemoryTokenStore()
	require.NoError(t, store.Save(token))

	session, err := NewSession(context.Background(), client, store)
	require.NoError(t, err)

	var out map[string]string
	query := url.Values{"search": {"algebra"}, "page": {"2"}}
	require.NoError(t, session.getJSON(context.Background(), "/api/resource", query, &out))

	require.NotNil(t, captured)
	require.Equal(t, "Bearer "+token, captured.Header.Get("Authorization"))
	require.Equal(t, "algebra", captured.URL.Query().Get("search"))
	require.Equal(t, "2", captured.URL.Query().Get("page"))

	// Every request carries a parseable request id.
	_, err = idx.Parse(captured.Header.Get("X-Request-ID"))
	require.NoError(t, err)
}

func TestPipelineResubmitsIdenticalBody(t *testing.T) {
	t.Parallel()

	fresh := signTestToken(t, jwt.MapClaims{"id": "user-1", "role": "student"})

	var bodies [][]byte
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/refresh-token":
			writeJSON(t, w, http.StatusOK, map[string]string{"accessToken": fresh})
		default:
			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			bodies = append(bodies, body)

			if r.Header.Get("Authorization") != "Bearer "+fresh {
				writeJSON(t, w, http.StatusUnauthorized, map[string]string{"message": "jwt expired"})
				return
			}
			writeJSON(t, w, http.StatusCreated, map[string]string{"ok": "true"})
		}
	})

	client, _ := newTestClient(t, handler)
	store := NewMemoryTokenStore()

	session, err := NewSession(context.Background(), client, store)
	require.NoError(t, err)
	require.NoError(t, store.Save(signTestToken(t, jwt.MapClaims{"id": "user-1", "exp": 1})))

	payload := map[string]string{"title": "Linear Algebra", "description": "matrices"}
	require.NoError(t, session.sendJSON(context.Background(), http.MethodPost, "/api/resource", payload, nil, http.StatusCreated))

	require.Len(t, bodies, 2)
	require.True(t, bytes.Equal(bodies[0], bodies[1]))
}

func TestPipelinePassesThroughOtherStatuses(t *testing.T) {
	t.Parallel()

	var refreshes int
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/auth/refresh-token" {
			refreshes++
			return
		}
		writeJSON(t, w, http.StatusForbidden, map[string]string{"message": "admins only"})
	})

	client, _ := newTestClient(t, handler)
	store := NewMemoryTokenStore()
	require.NoError(t, store.Save(signTestToken(t, jwt.MapClaims{"id": "user-1"})))

	session, err := NewSession(context.Background(), client, store)
	require.NoError(t, err)

	var out map[string]string
	err = session.getJSON(context.Background(), "/api/resource", nil, &out)

	// A 403 is a real answer, not a credential problem: no recovery runs and
	// the typed error carries the backend's message.
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	require.Equal(t, "admins only", apiErr.Message)
	require.Zero(t, refreshes)
	require.NotNil(t, session.CurrentIdentity())
}

func TestPipelineTransportError(t *testing.T) {
	t.Parallel()

	client, srv := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	store := NewMemoryTokenStore()
	require.NoError(t, store.Save(signTestToken(t, jwt.MapClaims{"id": "user-1"})))

	session, err := NewSession(context.Background(), client, store)
	require.NoError(t, err)

	srv.Close()

	var out map[string]string
	err = session.getJSON(context.Background(), "/api/resource", nil, &out)

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	require.Equal(t, http.MethodGet, reqErr.Method)
	require.Equal(t, "/api/resource", reqErr.Path)
}

func TestParseAPIErrorShapes(t *testing.T) {
	t.Parallel()

	t.Run("message shape", func(t *testing.T) {
		resp := &http.Response{StatusCode: http.StatusNotFound}
		err := parseAPIError(resp, []byte(`{"message":"session not found"}`))

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, "session not found", apiErr.Message)
	})

	t.Run("error shape", func(t *testing.T) {
		resp := &http.Response{StatusCode: http.StatusBadRequest}
		err := parseAPIError(resp, []byte(`{"error":"missing fields"}`))

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, "missing fields", apiErr.Message)
	})

	t.Run("unparseable body falls back to status text", func(t *testing.T) {
		resp := &http.Response{StatusCode: http.StatusBadGateway}
		err := parseAPIError(resp, []byte("<html>bad gateway</html>"))

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
		require.Contains(t, apiErr.Message, "502")
	})
}
