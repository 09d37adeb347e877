package studysdk

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// Announcement operations.

// ListAnnouncements returns one page of platform announcements.
func (s *Session) ListAnnouncements(ctx context.Context, page, limit int) (*AnnouncementPage, error) {
	query := url.Values{
		"page":  {strconv.Itoa(page)},
		"limit": {strconv.Itoa(limit)},
	}

	var announcements AnnouncementPage
	if err := s.getJSON(ctx, "/api/announcements", query, &announcements); err != nil {
		return nil, err
	}
	return &announcements, nil
}

// CreateAnnouncement publishes a platform-wide notice. Admin only.
func (s *Session) CreateAnnouncement(ctx context.Context, req CreateAnnouncementRequest) error {
	if err := validateStruct(&req); err != nil {
		return err
	}
	return s.sendJSON(ctx, http.MethodPost, "/api/announcements", req, nil, http.StatusCreated)
}
