package studysdk

import (
	"context"
	"net/http"
)

// loginResponse is the POST /api/auth/login payload.
type loginResponse struct {
	Token string `json:"token"`
}

// refreshResponse is the GET /api/auth/refresh-token payload.
type refreshResponse struct {
	AccessToken string `json:"accessToken"`
}

// loginGrant exchanges credentials (password or provider payload) for a
// bearer credential. The backend also sets the refresh cookie on this
// response; the client's cookie jar keeps it for later recovery cycles.
func (c *Client) loginGrant(ctx context.Context, payload any) (string, error) {
	body, err := jsonBody(payload)
	if err != nil {
		return "", err
	}

	resp, err := c.doRequest(ctx, apiRequest{
		method:      http.MethodPost,
		path:        "/api/auth/login",
		body:        body,
		contentType: "application/json",
	})
	if err != nil {
		return "", err
	}

	var loginResp loginResponse
	if err := decodeJSON(resp, &loginResp, http.StatusOK); err != nil {
		return "", err
	}

	return loginResp.Token, nil
}

// refreshToken issues the cookie-based refresh call and returns the new
// bearer credential. Callers must go through the session's recovery cycle
// rather than calling this directly, so concurrent failures share one call.
func (c *Client) refreshToken(ctx context.Context) (string, error) {
	resp, err := c.doRequest(ctx, apiRequest{
		method: http.MethodGet,
		path:   "/api/auth/refresh-token",
	})
	if err != nil {
		return "", err
	}

	var refreshResp refreshResponse
	if err := decodeJSON(resp, &refreshResp, http.StatusOK); err != nil {
		return "", err
	}

	if refreshResp.AccessToken == "" {
		return "", ErrNoCredential
	}

	return refreshResp.AccessToken, nil
}

// Register creates an account. The endpoint is multipart because the sign-up
// form may attach a profile picture.
func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	if err := validateStruct(&req); err != nil {
		return err
	}

	fields := map[string]string{
		"name":     req.Name,
		"email":    req.Email,
		"password": req.Password,
		"role":     string(req.Role),
	}

	body, contentType, err := multipartBody(fields, "profilePicture", req.ProfilePicture)
	if err != nil {
		return err
	}

	resp, err := c.doRequest(ctx, apiRequest{
		method:      http.MethodPost,
		path:        "/api/auth/register",
		body:        body,
		contentType: contentType,
	})
	if err != nil {
		return err
	}

	return checkStatus(resp, http.StatusCreated)
}
