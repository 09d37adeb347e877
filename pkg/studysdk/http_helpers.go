package studysdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/studyhubhq/studyhub/pkg/idx"
	"github.com/studyhubhq/studyhub/pkg/slogx"
)

// apiRequest describes one outbound call. Bodies are held as bytes so the
// pipeline can resubmit the identical request after a refresh; see retry
// handling in pipeline.go.
type apiRequest struct {
	method      string
	path        string
	query       url.Values
	body        []byte
	contentType string
	headers     map[string]string
}

// send performs a single HTTP exchange. It paces through the client's rate
// limiter, tags the request with a ULID request id and attaches the bearer
// credential when one is supplied. Transport failures come back as
// *RequestError and are never retried here.
func (c *Client) send(ctx context.Context, r apiRequest, token string) (*http.Response, error) {
	if c.Limiter != nil {
		if err := c.Limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	target := c.url(r.path)
	if len(r.query) > 0 {
		target += "?" + r.query.Encode()
	}

	var body io.Reader
	if len(r.body) > 0 {
		body = bytes.NewReader(r.body)
	}

	// Tag the request and its context with a fresh request id so client and
	// backend logs line up.
	reqID := idx.New()
	ctx = slogx.WithRequestID(ctx, reqID.String())

	req, err := http.NewRequestWithContext(ctx, r.method, target, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("X-Request-ID", reqID.String())
	c.logger.Debug("sending request", "method", r.method, "path", r.path, "req_id", reqID)
	if r.contentType != "" {
		req.Header.Set("Content-Type", r.contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for key, value := range r.headers {
		req.Header.Set(key, value)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, &RequestError{Method: r.method, Path: r.path, Err: err}
	}

	return resp, nil
}

// doRequest performs an unauthenticated request (no Authorization header).
func (c *Client) doRequest(ctx context.Context, r apiRequest) (*http.Response, error) {
	return c.send(ctx, r, "")
}

// decodeJSON decodes a JSON response into target. Non-expected status codes
// are parsed into a typed *APIError.
func decodeJSON(resp *http.Response, target any, expectedStatus int) error {
	defer resp.Body.Close()

	// Read body once for both error parsing and success decoding
	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != expectedStatus {
		return parseAPIError(resp, bodyBytes)
	}

	if target == nil {
		return nil
	}

	if err := json.Unmarshal(bodyBytes, target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// checkStatus drains and closes the response, returning a typed error when
// the status is not the expected one. Used for calls with no response body
// of interest.
func checkStatus(resp *http.Response, expectedStatus int) error {
	defer resp.Body.Close()

	if resp.StatusCode != expectedStatus {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return parseAPIError(resp, bodyBytes)
	}

	// Drain so the connection can be reused.
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// jsonBody marshals v for an apiRequest.
func jsonBody(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request body: %w", err)
	}
	return data, nil
}

// FileUpload carries an attachment for multipart endpoints (profile
// pictures, session banners, material images).
type FileUpload struct {
	// Filename is the name reported in the multipart part header.
	Filename string

	// Content is read fully when the request body is built.
	Content io.Reader
}

// multipartBody builds a multipart/form-data body from text fields plus an
// optional file part. Returns the encoded body and its content type.
func multipartBody(fields map[string]string, fileField string, file *FileUpload) ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for key, value := range fields {
		if err := w.WriteField(key, value); err != nil {
			return nil, "", fmt.Errorf("failed to write field %q: %w", key, err)
		}
	}

	if file != nil {
		part, err := w.CreateFormFile(fileField, file.Filename)
		if err != nil {
			return nil, "", fmt.Errorf("failed to create file part: %w", err)
		}
		if _, err := io.Copy(part, file.Content); err != nil {
			return nil, "", fmt.Errorf("failed to read upload: %w", err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}

	return buf.Bytes(), w.FormDataContentType(), nil
}
