package studysdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Study session operations.
//
// Note: the update/delete paths spell "seesion"; that is the deployed
// backend route and has to match byte for byte.

// ListStudySessions returns every session visible to the caller, optionally
// filtered by free-text search.
func (s *Session) ListStudySessions(ctx context.Context, searchText string) ([]StudySession, error) {
	var query url.Values
	if searchText != "" {
		query = url.Values{"searchText": {searchText}}
	}

	var listResp struct {
		Sessions []StudySession `json:"sessions"`
	}
	if err := s.getJSON(ctx, "/api/tutor/get-sessions", query, &listResp); err != nil {
		return nil, err
	}
	return listResp.Sessions, nil
}

// GetStudySession fetches one session by id.
func (s *Session) GetStudySession(ctx context.Context, sessionID string) (*StudySession, error) {
	var session StudySession
	if err := s.getJSON(ctx, "/api/tutor/get-session/"+url.PathEscape(sessionID), nil, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// ListApprovedSessions returns the sessions an admin has accepted.
func (s *Session) ListApprovedSessions(ctx context.Context) ([]StudySession, error) {
	var listResp struct {
		Sessions []StudySession `json:"sessions"`
	}
	if err := s.getJSON(ctx, "/api/tutor/get-approved-sessions", nil, &listResp); err != nil {
		return nil, err
	}
	return listResp.Sessions, nil
}

// ListTutors returns the tutor accounts on the platform.
func (s *Session) ListTutors(ctx context.Context) ([]User, error) {
	var tutors []User
	if err := s.getJSON(ctx, "/api/tutor/get-tutors", nil, &tutors); err != nil {
		return nil, err
	}
	return tutors, nil
}

// CreateStudySession proposes a new session. Tutor only. New sessions start
// pending until an admin decides on them.
func (s *Session) CreateStudySession(ctx context.Context, req CreateSessionRequest) error {
	if err := validateStruct(&req); err != nil {
		return err
	}

	fields := map[string]string{
		"title":             req.Title,
		"description":       req.Description,
		"registrationStart": req.RegistrationStart,
		"registrationEnd":   req.RegistrationEnd,
		"classStartDate":    req.ClassStartDate,
		"classStartTime":    req.ClassStartTime,
		"classEndTime":      req.ClassEndTime,
		"duration":          req.Duration,
		"fee":               fmt.Sprintf("%g", req.Fee),
		"maxParticipants":   fmt.Sprintf("%d", req.MaxParticipants),
		"tutorName":         req.TutorName,
		"tutorEmail":        req.TutorEmail,
	}

	return s.sendMultipart(ctx, http.MethodPost, "/api/tutor/add-session", fields, "image", req.Image, nil, http.StatusCreated)
}

// DecideStudySession records the admin's accept/reject decision, including
// the fee for accepted sessions or the reason and feedback for rejected
// ones.
func (s *Session) DecideStudySession(ctx context.Context, sessionID string, decision SessionDecision) error {
	if err := validateStruct(&decision); err != nil {
		return err
	}

	return s.sendJSON(ctx, http.MethodPost, "/api/update-study-seesion/"+url.PathEscape(sessionID), decision, nil, http.StatusOK)
}

// DeleteStudySession removes a session. Admin only.
func (s *Session) DeleteStudySession(ctx context.Context, sessionID string) error {
	return s.deleteResource(ctx, "/api/delete-study-seesion/"+url.PathEscape(sessionID))
}
