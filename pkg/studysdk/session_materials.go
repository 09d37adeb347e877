package studysdk

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// Material operations.

// UploadMaterial shares a study resource for a session. Tutor only.
func (s *Session) UploadMaterial(ctx context.Context, req UploadMaterialRequest) error {
	if err := validateStruct(&req); err != nil {
		return err
	}

	fields := map[string]string{
		"title":      req.Title,
		"sessionId":  req.SessionID,
		"tutorName":  req.TutorName,
		"tutorEmail": req.TutorEmail,
		"link":       req.Link,
	}

	return s.sendMultipart(ctx, http.MethodPost, "/api/materials/upload", fields, "image", req.Image, nil, http.StatusCreated)
}

// ListMaterials returns the materials a tutor has uploaded.
func (s *Session) ListMaterials(ctx context.Context, tutorEmail string) ([]Material, error) {
	query := url.Values{"tutorEmail": {tutorEmail}}

	var materials []Material
	if err := s.getJSON(ctx, "/api/materials/get-materials", query, &materials); err != nil {
		return nil, err
	}
	return materials, nil
}

// ListAllMaterials returns one page of every material on the platform,
// optionally filtered by free-text search. Admin only.
func (s *Session) ListAllMaterials(ctx context.Context, page, limit int, searchQuery string) (*MaterialPage, error) {
	query := url.Values{
		"page":  {strconv.Itoa(page)},
		"limit": {strconv.Itoa(limit)},
	}
	if searchQuery != "" {
		query.Set("query", searchQuery)
	}

	var materials MaterialPage
	if err := s.getJSON(ctx, "/api/materials/get-all-materials", query, &materials); err != nil {
		return nil, err
	}
	return &materials, nil
}

// UpdateMaterial replaces a material's fields, optionally with a new
// attachment. Tutor only.
func (s *Session) UpdateMaterial(ctx context.Context, materialID string, req UploadMaterialRequest) error {
	if err := validateStruct(&req); err != nil {
		return err
	}

	fields := map[string]string{
		"title":      req.Title,
		"sessionId":  req.SessionID,
		"tutorName":  req.TutorName,
		"tutorEmail": req.TutorEmail,
		"link":       req.Link,
	}

	return s.sendMultipart(ctx, http.MethodPatch, "/api/materials/update-material/"+url.PathEscape(materialID), fields, "image", req.Image, nil, http.StatusOK)
}

// DeleteMaterial removes a material.
func (s *Session) DeleteMaterial(ctx context.Context, materialID string) error {
	return s.deleteResource(ctx, "/api/materials/delete-material/"+url.PathEscape(materialID))
}
