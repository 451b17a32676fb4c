package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/jobboard/internal/client/telemetry"
	"github.com/dmitrijs2005/jobboard/internal/common"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

const (
	maxBodyBytes   = 8 << 20
	maxDetailBytes = 512
)

type HTTPClient struct {
	baseURL *url.URL
	http    *http.Client
	limiter *rate.Limiter
	metrics *telemetry.Metrics
	newID   func() string
}

type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying *http.Client (tests use the one
// returned by httptest.Server.Client).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.http = hc }
}

func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) { c.http.Timeout = d }
}

// WithRateLimit throttles outgoing requests. rps <= 0 disables throttling.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *HTTPClient) {
		if rps <= 0 {
			c.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

func WithMetrics(m *telemetry.Metrics) Option {
	return func(c *HTTPClient) { c.metrics = m }
}

// NewHTTPClient builds a client for the API rooted at baseURL
// (e.g. "http://127.0.0.1:8080").
func NewHTTPClient(baseURL string, opts ...Option) (*HTTPClient, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base url %q: scheme must be http or https", baseURL)
	}

	c := &HTTPClient{
		baseURL: u,
		http:    &http.Client{},
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Response is a successful (2xx) reply.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// NoContent reports whether the reply carries no payload (e.g. a delete).
func (r *Response) NoContent() bool {
	return r.StatusCode == http.StatusNoContent || len(bytes.TrimSpace(r.Body)) == 0
}

// Decode unmarshals the JSON body into v. An empty or invalid body is
// reported as ErrBadResponse.
func (r *Response) Decode(v any) error {
	if r.NoContent() {
		return fmt.Errorf("%w: empty body", ErrBadResponse)
	}
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	return nil
}

// Do issues a request. body, when non-nil, is sent as JSON; credential, when
// non-empty, is sent as a bearer token. Any non-2xx status is returned as a
// *RequestError.
func (c *HTTPClient) Do(ctx context.Context, method, path string, body any, credential string) (*Response, error) {
	var payload io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		payload = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.String()+path, payload)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeader, c.newID())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if credential != "" {
		req.Header.Set(common.AuthorizationHeader, common.BearerPrefix+credential)
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, &RequestError{Method: method, Path: path, kind: ErrUnavailable, cause: err}
		}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.metrics.Observe(method, 0, time.Since(start))
		return nil, &RequestError{Method: method, Path: path, kind: ErrUnavailable, cause: err}
	}
	defer resp.Body.Close()

	data, readErr := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	c.metrics.Observe(method, resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &RequestError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Detail:     failureDetail(data),
			kind:       mapStatus(resp.StatusCode),
		}
	}
	if readErr != nil {
		return nil, &RequestError{Method: method, Path: path, kind: ErrUnavailable, cause: readErr}
	}

	return &Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: data}, nil
}

func failureDetail(body []byte) string {
	detail := strings.TrimSpace(string(body))
	if detail == "" {
		return GenericFailureDetail
	}
	if len(detail) > maxDetailBytes {
		detail = detail[:maxDetailBytes]
	}
	return detail
}
