package studysdk

import (
	"context"
	"io"
	"net/http"
	"net/url"
)

// doAuthRequest sends one authenticated request through the pipeline: attach
// the stored credential, and on a 401 obtain a refreshed credential through
// the shared recovery cycle and resubmit the identical request exactly once.
// A 401 on the resubmission is terminal: the session is logged out and
// ErrSessionExpired propagates.
//
// Requests hold their body as bytes (see apiRequest) so the resubmission is
// byte-identical to the original.
func (s *Session) doAuthRequest(ctx context.Context, r apiRequest) (*http.Response, error) {
	token, err := s.store.Read()
	if err != nil {
		return nil, err
	}

	resp, err := s.client.send(ctx, r, token)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusUnauthorized {
		return resp, nil
	}
	discard(resp)

	s.log.Debug("request rejected, recovering session", "method", r.method, "path", r.path)

	newToken, err := s.recoverCredential(ctx)
	if err != nil {
		return nil, err
	}

	resp, err = s.client.send(ctx, r, newToken)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusUnauthorized {
		discard(resp)
		s.expire()
		return nil, ErrSessionExpired
	}

	return resp, nil
}

func discard(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
}

// ============================================================================
// Typed convenience wrappers used by the resource operation files
// ============================================================================

// getJSON performs an authenticated GET and decodes the 200 response.
func (s *Session) getJSON(ctx context.Context, path string, query url.Values, target any) error {
	resp, err := s.doAuthRequest(ctx, apiRequest{
		method: http.MethodGet,
		path:   path,
		query:  query,
	})
	if err != nil {
		return err
	}
	return decodeJSON(resp, target, http.StatusOK)
}

// sendJSON performs an authenticated request with a JSON body and decodes
// the response when target is non-nil.
func (s *Session) sendJSON(ctx context.Context, method, path string, payload, target any, expectedStatus int) error {
	body, err := jsonBody(payload)
	if err != nil {
		return err
	}

	resp, err := s.doAuthRequest(ctx, apiRequest{
		method:      method,
		path:        path,
		body:        body,
		contentType: "application/json",
	})
	if err != nil {
		return err
	}

	if target == nil {
		return checkStatus(resp, expectedStatus)
	}
	return decodeJSON(resp, target, expectedStatus)
}

// sendMultipart performs an authenticated multipart request (uploads and
// form-style updates with an optional attachment).
func (s *Session) sendMultipart(ctx context.Context, method, path string, fields map[string]string, fileField string, file *FileUpload, target any, expectedStatus int) error {
	body, contentType, err := multipartBody(fields, fileField, file)
	if err != nil {
		return err
	}

	resp, err := s.doAuthRequest(ctx, apiRequest{
		method:      method,
		path:        path,
		body:        body,
		contentType: contentType,
	})
	if err != nil {
		return err
	}

	if target == nil {
		return checkStatus(resp, expectedStatus)
	}
	return decodeJSON(resp, target, expectedStatus)
}

// deleteResource performs an authenticated DELETE expecting a bare 200.
func (s *Session) deleteResource(ctx context.Context, path string) error {
	resp, err := s.doAuthRequest(ctx, apiRequest{
		method: http.MethodDelete,
		path:   path,
	})
	if err != nil {
		return err
	}
	return checkStatus(resp, http.StatusOK)
}
