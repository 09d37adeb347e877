package studysdk

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// newAuthedSession returns a session hydrated from a usable stored
// credential, pointed at the given handler.
func newAuthedSession(t *testing.T, handler http.Handler) *Session {
	t.Helper()

	client, _ := newTestClient(t, handler)
	store := NewMemoryTokenStore()
	require.NoError(t, store.Save(signTestToken(t, jwt.MapClaims{"id": "user-1", "role": "tutor"})))

	session, err := NewSession(context.Background(), client, store)
	require.NoError(t, err)
	return session
}

func TestListStudySessions(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/tutor/get-sessions", r.URL.Path)
		require.Equal(t, "algebra", r.URL.Query().Get("searchText"))

		writeJSON(t, w, http.StatusOK, map[string]any{
			"sessions": []map[string]any{
				{"_id": "s1", "title": "Linear Algebra", "status": "pending", "fee": 25.5},
				{"_id": "s2", "title": "Calculus", "status": "accepted"},
			},
		})
	})

	session := newAuthedSession(t, handler)

	sessions, err := session.ListStudySessions(context.Background(), "algebra")
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	require.Equal(t, "s1", sessions[0].ID)
	require.Equal(t, "Linear Algebra", sessions[0].Title)
	require.Equal(t, SessionStatusPending, sessions[0].Status)
	require.Equal(t, 25.5, sessions[0].Fee)
}

func TestDecideStudySession(t *testing.T) {
	t.Parallel()

	t.Run("accept", func(t *testing.T) {
		var captured SessionDecision
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// The deployed route spells "seesion".
			require.Equal(t, "/api/update-study-seesion/s1", r.URL.Path)
			require.Equal(t, http.MethodPost, r.Method)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
			writeJSON(t, w, http.StatusOK, map[string]string{"message": "updated"})
		})

		session := newAuthedSession(t, handler)

		err := session.DecideStudySession(context.Background(), "s1", SessionDecision{
			Status: SessionStatusAccepted,
			Fee:    30,
		})
		require.NoError(t, err)
		require.Equal(t, SessionStatusAccepted, captured.Status)
		require.Equal(t, float64(30), captured.Fee)
	})

	t.Run("reject with feedback", func(t *testing.T) {
		var captured SessionDecision
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
			writeJSON(t, w, http.StatusOK, map[string]string{"message": "updated"})
		})

		session := newAuthedSession(t, handler)

		err := session.DecideStudySession(context.Background(), "s1", SessionDecision{
			Status:          SessionStatusRejected,
			RejectionReason: "overlapping schedule",
			Feedback:        "pick a different slot",
		})
		require.NoError(t, err)
		require.Equal(t, "overlapping schedule", captured.RejectionReason)
	})

	t.Run("unknown status fails locally", func(t *testing.T) {
		session := newAuthedSession(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("decision with a bad status must not reach the network")
		}))

		err := session.DecideStudySession(context.Background(), "s1", SessionDecision{Status: "maybe"})

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		require.Contains(t, verr.Fields, "status")
	})
}

func TestDeleteStudySession(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/delete-study-seesion/s9", r.URL.Path)
		require.Equal(t, http.MethodDelete, r.Method)
		writeJSON(t, w, http.StatusOK, map[string]string{"message": "deleted"})
	})

	session := newAuthedSession(t, handler)
	require.NoError(t, session.DeleteStudySession(context.Background(), "s9"))
}

func TestCreateStudySessionValidation(t *testing.T) {
	t.Parallel()

	session := newAuthedSession(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("invalid proposal must not reach the network")
	}))

	err := session.CreateStudySession(context.Background(), CreateSessionRequest{
		Title: "Only a title",
	})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Contains(t, verr.Fields, "description")
	require.Contains(t, verr.Fields, "tutorEmail")
	require.Contains(t, verr.Fields, "maxParticipants")
}

func TestCreatePaymentIntent(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/payment/payment-intent", r.URL.Path)

		// The idempotency key must be a well-formed UUID.
		key := r.Header.Get("Idempotency-Key")
		_, err := uuid.Parse(key)
		require.NoError(t, err)

		var payload struct {
			Amount int64 `json:"amount"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		require.Equal(t, int64(2550), payload.Amount)

		writeJSON(t, w, http.StatusOK, map[string]string{"client_secret": "pi_123_secret_456"})
	})

	session := newAuthedSession(t, handler)

	secret, err := session.CreatePaymentIntent(context.Background(), 2550)
	require.NoError(t, err)
	require.Equal(t, "pi_123_secret_456", secret)
}

func TestIsBooked(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/isbooked", r.URL.Path)
		require.Equal(t, "s1", r.URL.Query().Get("sessionId"))
		writeJSON(t, w, http.StatusOK, map[string]bool{"booked": true})
	})

	session := newAuthedSession(t, handler)

	booked, err := session.IsBooked(context.Background(), "s1")
	require.NoError(t, err)
	require.True(t, booked)
}
