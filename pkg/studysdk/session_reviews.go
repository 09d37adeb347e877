package studysdk

import (
	"context"
	"net/http"
	"net/url"
	"time"
)

// Review operations.

// AddReview submits a rating for a booked session. The date defaults to now
// when the form leaves it empty.
func (s *Session) AddReview(ctx context.Context, req AddReviewRequest) error {
	if err := validateStruct(&req); err != nil {
		return err
	}

	if req.Date == "" {
		req.Date = time.Now().UTC().Format(time.RFC3339)
	}

	return s.sendJSON(ctx, http.MethodPost, "/api/add-review", req, nil, http.StatusCreated)
}

// ListReviews returns the reviews for one session.
func (s *Session) ListReviews(ctx context.Context, sessionID string) ([]Review, error) {
	query := url.Values{"sessionId": {sessionID}}

	var reviews []Review
	if err := s.getJSON(ctx, "/api/get-reviews", query, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}
