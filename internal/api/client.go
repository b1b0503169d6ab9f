// Package api is the typed client for the PowerTrack backend. It wraps
// every request with the stored bearer token and JSON headers, standardizes
// non-2xx responses, and tears the session down when the backend rejects
// the token.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/powertrack/powertrack/internal/errors"
	"github.com/powertrack/powertrack/internal/logging"
	"github.com/powertrack/powertrack/internal/session"
)

// Client performs authenticated requests against the backend.
type Client struct {
	baseURL string
	httpc   *http.Client
	session *session.Session
	log     *logging.Logger
}

// New creates a Client for the backend at baseURL. A zero timeout disables
// the client-side deadline.
func New(baseURL string, timeout time.Duration, sess *session.Session, log *logging.Logger) *Client {
	if log == nil {
		log = logging.Nop()
	}
	return &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: timeout},
		session: sess,
		log:     log,
	}
}

// requestSpec describes one outbound call.
type requestSpec struct {
	method  string
	path    string
	query   map[string]string
	body    any
	headers http.Header
	// public requests skip the bearer token and never trigger the forced
	// logout; /login is the only such endpoint.
	public bool
}

// do executes the request and returns the raw response. Network failures
// come back as TransportError. On 401/422 of an authenticated request the
// stored token is cleared and the session torn down before the error is
// returned; expired or invalid auth is not locally recoverable.
func (c *Client) do(ctx context.Context, spec requestSpec) (*http.Response, error) {
	var reqBody io.Reader
	if spec.body != nil {
		data, err := json.Marshal(spec.body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, spec.method, c.baseURL+spec.path, reqBody)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	for k, v := range spec.query {
		q.Set(k, v)
	}
	req.URL.RawQuery = q.Encode()

	// Caller headers are merged on top of the defaults; the two defaults
	// are applied last so they cannot be dropped.
	for k, vs := range spec.headers {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("Content-Type", "application/json")
	if !spec.public {
		if token, err := c.session.Token(); err == nil {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.log.Error("request failed", "method", spec.method, "path", spec.path, "error", err.Error())
		return nil, errors.NewTransportError(spec.path, err)
	}

	if !spec.public && (resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusUnprocessableEntity) {
		resp.Body.Close()
		c.log.Warn("authentication rejected, clearing session", "path", spec.path, "status", resp.StatusCode)
		_ = c.session.Logout()
		return nil, fmt.Errorf("%w: %s returned %d", errors.ErrAuthRejected, spec.path, resp.StatusCode)
	}

	return resp, nil
}

// doJSON executes the request and decodes a 2xx response body into out
// (which may be nil). Non-2xx responses become an APIError carrying the
// parsed error body.
func (c *Client) doJSON(ctx context.Context, spec requestSpec, out any) error {
	resp, err := c.do(ctx, spec)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var body map[string]any
		_ = json.NewDecoder(resp.Body).Decode(&body)
		return errors.NewAPIError(spec.path, resp.StatusCode, body)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s response: %w", spec.path, err)
	}
	return nil
}

// decodeBody decodes a JSON response body into out.
func decodeBody(resp *http.Response, out any) error {
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
