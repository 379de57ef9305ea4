// Package upstream is the single HTTP client for the MicroCourses REST API.
// Every consumed endpoint has one method here; the bearer header is
// assembled in exactly one place and nowhere else.
package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

// APIError is the typed failure for any upstream call: either a transport
// error or a non-2xx response carrying the server-supplied detail message.
type APIError struct {
	Status int
	Detail string
	Err    error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("upstream request failed: %v", e.Err)
	}
	if e.Detail != "" {
		return fmt.Sprintf("upstream %d: %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("upstream %d", e.Status)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// Message returns the server's detail when present, else the fallback. This
// is what handlers surface to the user.
func (e *APIError) Message(fallback string) string {
	if e.Detail != "" {
		return e.Detail
	}
	return fallback
}

// Client wraps a single configured resty client. Methods take the session's
// bearer token explicitly; an empty token omits the Authorization header.
type Client struct {
	http *resty.Client
	log  zerolog.Logger
}

// New creates a Client against the given base URL. No request timeout is set
// beyond the transport default.
func New(baseURL string, log zerolog.Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")

	return &Client{http: httpClient, log: log}
}

// req builds a request with context and, when a token is present, the bearer
// header. All endpoint methods go through here.
func (c *Client) req(ctx context.Context, token string) *resty.Request {
	r := c.http.R().SetContext(ctx)
	if token != "" {
		r.SetAuthToken(token)
	}
	return r
}

// check folds a resty response and transport error into one *APIError or
// nil. Non-2xx bodies are parsed for the {"detail": "..."} shape the API
// uses for failures.
func (c *Client) check(resp *resty.Response, err error) error {
	if err != nil {
		return &APIError{Err: err}
	}
	if resp.IsError() {
		var body struct {
			Detail string `json:"detail"`
		}
		_ = json.Unmarshal(resp.Body(), &body)

		c.log.Warn().
			Int("status", resp.StatusCode()).
			Str("path", resp.Request.URL).
			Str("detail", body.Detail).
			Msg("Upstream call failed")

		return &APIError{Status: resp.StatusCode(), Detail: body.Detail}
	}
	return nil
}

// IsNotFound reports whether err is an upstream 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}
