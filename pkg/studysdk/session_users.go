package studysdk

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// User and account operations.

// GetUser fetches one account by id.
func (s *Session) GetUser(ctx context.Context, userID string) (*User, error) {
	var user User
	if err := s.getJSON(ctx, "/api/auth/users/"+url.PathEscape(userID), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ListUsers returns one page of accounts, optionally filtered by free-text
// search. Admin only; the backend enforces the role.
func (s *Session) ListUsers(ctx context.Context, page, limit int, searchText string) (*UserPage, error) {
	query := url.Values{
		"page":  {strconv.Itoa(page)},
		"limit": {strconv.Itoa(limit)},
	}
	if searchText != "" {
		query.Set("searchText", searchText)
	}

	var users UserPage
	if err := s.getJSON(ctx, "/api/users", query, &users); err != nil {
		return nil, err
	}
	return &users, nil
}

// ChangeUserRole moves an account to a different role. Admin only.
func (s *Session) ChangeUserRole(ctx context.Context, userID string, role Role) error {
	if _, err := ParseRole(string(role)); err != nil {
		return &ValidationError{Fields: map[string]string{"role": err.Error()}}
	}

	payload := struct {
		Role Role `json:"role"`
	}{Role: role}

	return s.sendJSON(ctx, http.MethodPatch, "/api/auth/changerole/"+url.PathEscape(userID), payload, nil, http.StatusOK)
}

// DeleteUser removes an account. Admin only.
func (s *Session) DeleteUser(ctx context.Context, userID string) error {
	return s.deleteResource(ctx, "/api/auth/delete/"+url.PathEscape(userID))
}

// LoginHistory lists the recorded logins for an account.
func (s *Session) LoginHistory(ctx context.Context, userID string) ([]LoginHistoryEntry, error) {
	var entries []LoginHistoryEntry
	if err := s.getJSON(ctx, "/api/auth/login-history/"+url.PathEscape(userID), nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// DeleteLoginHistory removes one login-history entry.
func (s *Session) DeleteLoginHistory(ctx context.Context, entryID string) error {
	return s.deleteResource(ctx, "/api/auth/login-history/"+url.PathEscape(entryID))
}
