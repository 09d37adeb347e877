package studysdk

import (
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// Client is a client for the StudyHub REST API. It carries its own HTTP
// client and interceptor state instead of living in a package-level
// singleton, so tests can construct isolated instances against fakes.
//
// Client handles unauthenticated operations (login grants, registration,
// token refresh). Authenticated operations live on Session, which wraps a
// Client with credential storage and automatic recovery.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	// Limiter paces outbound requests. Nil disables pacing.
	Limiter *rate.Limiter

	logger *slog.Logger
}

// ClientOption customises a Client at construction.
type ClientOption func(*Client)

// WithHTTPClient replaces the default HTTP client. The replacement should
// carry a cookie jar if the refresh flow is used; the refresh credential is
// cookie-based.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.HTTPClient = hc }
}

// WithLogger attaches a structured logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) { c.logger = logger }
}

// WithRateLimit paces outbound requests at r requests per second with the
// given burst.
func WithRateLimit(r rate.Limit, burst int) ClientOption {
	return func(c *Client) { c.Limiter = rate.NewLimiter(r, burst) }
}

// NewClient creates a StudyHub API client. The default HTTP client carries a
// 10 second timeout and a cookie jar: the backend sets the refresh credential
// as a cookie at login and expects it back on GET /api/auth/refresh-token.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	jar, _ := cookiejar.New(nil)

	c := &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
			Jar:     jar,
		},
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// url builds a complete URL by appending the path to the base URL.
func (c *Client) url(path string) string {
	return c.BaseURL + path
}
