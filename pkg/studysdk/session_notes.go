package studysdk

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// Note operations. Notes are personal to a student and keyed by their email.

// CreateNote stores a new study note.
func (s *Session) CreateNote(ctx context.Context, req CreateNoteRequest) error {
	if err := validateStruct(&req); err != nil {
		return err
	}
	return s.sendJSON(ctx, http.MethodPost, "/api/add-note", req, nil, http.StatusCreated)
}

// ListNotes returns one page of the student's notes.
func (s *Session) ListNotes(ctx context.Context, email string, page, limit int) (*NotePage, error) {
	query := url.Values{
		"email": {email},
		"page":  {strconv.Itoa(page)},
		"limit": {strconv.Itoa(limit)},
	}

	var notes NotePage
	if err := s.getJSON(ctx, "/api/get-notes", query, &notes); err != nil {
		return nil, err
	}
	return &notes, nil
}

// UpdateNote rewrites a note's title and content.
func (s *Session) UpdateNote(ctx context.Context, noteID string, req UpdateNoteRequest) error {
	if err := validateStruct(&req); err != nil {
		return err
	}
	return s.sendJSON(ctx, http.MethodPut, "/api/update-note/"+url.PathEscape(noteID), req, nil, http.StatusOK)
}

// DeleteNote removes a note.
func (s *Session) DeleteNote(ctx context.Context, noteID string) error {
	return s.deleteResource(ctx, "/api/delete-note/"+url.PathEscape(noteID))
}
