package studysdk

import (
	"context"
	"net/http"
	"net/url"

	"github.com/google/uuid"
)

// Booking and payment operations.

// CreatePaymentIntent asks the backend to prepare a card payment for the
// given amount (in the currency's smallest unit) and returns the provider's
// client secret. The request carries an idempotency key so a timed-out call
// can be repeated without double-charging.
func (s *Session) CreatePaymentIntent(ctx context.Context, amount int64) (string, error) {
	payload := struct {
		Amount int64 `json:"amount"`
	}{Amount: amount}

	body, err := jsonBody(payload)
	if err != nil {
		return "", err
	}

	resp, err := s.doAuthRequest(ctx, apiRequest{
		method:      http.MethodPost,
		path:        "/api/payment/payment-intent",
		body:        body,
		contentType: "application/json",
		headers:     map[string]string{"Idempotency-Key": uuid.NewString()},
	})
	if err != nil {
		return "", err
	}

	var intentResp struct {
		ClientSecret string `json:"client_secret"`
	}
	if err := decodeJSON(resp, &intentResp, http.StatusOK); err != nil {
		return "", err
	}

	return intentResp.ClientSecret, nil
}

// BookSession records a booking after payment has been confirmed.
func (s *Session) BookSession(ctx context.Context, req BookSessionRequest) error {
	if err := validateStruct(&req); err != nil {
		return err
	}
	return s.sendJSON(ctx, http.MethodPost, "/api/booksession", req, nil, http.StatusCreated)
}

// ListBookings returns the sessions a student has booked.
func (s *Session) ListBookings(ctx context.Context, userEmail string) ([]Booking, error) {
	query := url.Values{"userEmail": {userEmail}}

	var bookings []Booking
	if err := s.getJSON(ctx, "/api/get-bookeds", query, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// IsBooked reports whether the caller already booked the given session.
func (s *Session) IsBooked(ctx context.Context, sessionID string) (bool, error) {
	query := url.Values{"sessionId": {sessionID}}

	var bookedResp struct {
		Booked bool `json:"booked"`
	}
	if err := s.getJSON(ctx, "/api/isbooked", query, &bookedResp); err != nil {
		return false, err
	}
	return bookedResp.Booked, nil
}
