package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/jobboard/internal/client/models"
	"github.com/dmitrijs2005/jobboard/internal/client/telemetry"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captured holds what the test server saw.
type captured struct {
	Method        string
	Path          string
	Authorization string
	ContentType   string
	RequestID     string
	Body          []byte
}

func newServer(t *testing.T, status int, body string) (*HTTPClient, *captured) {
	t.Helper()
	got := &captured{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got.Method = r.Method
		got.Path = r.URL.EscapedPath()
		got.Authorization = r.Header.Get("Authorization")
		got.ContentType = r.Header.Get("Content-Type")
		got.RequestID = r.Header.Get("X-Request-ID")
		got.Body, _ = io.ReadAll(r.Body)
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)

	c, err := NewHTTPClient(srv.URL, WithHTTPClient(srv.Client()))
	require.NoError(t, err)
	return c, got
}

func TestNewHTTPClient_ValidatesBaseURL(t *testing.T) {
	_, err := NewHTTPClient("ftp://example.org")
	require.Error(t, err)

	_, err = NewHTTPClient("://bad")
	require.Error(t, err)

	c, err := NewHTTPClient("http://127.0.0.1:8080/")
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:8080", c.baseURL.String())
}

func TestDo_NoBodyNoCredential_OmitsHeaders(t *testing.T) {
	c, got := newServer(t, http.StatusOK, `[]`)

	_, err := c.Do(context.Background(), http.MethodGet, "/api/jobs", nil, "")
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, got.Method)
	assert.Empty(t, got.Authorization)
	assert.Empty(t, got.ContentType)
	assert.NotEmpty(t, got.RequestID)
}

func TestDo_BodyAndCredential_SetsHeaders(t *testing.T) {
	c, got := newServer(t, http.StatusOK, `{}`)

	_, err := c.Do(context.Background(), http.MethodPost, "/x", map[string]string{"a": "b"}, "abc")
	require.NoError(t, err)

	assert.Equal(t, "Bearer abc", got.Authorization)
	assert.Equal(t, "application/json", got.ContentType)
	assert.JSONEq(t, `{"a":"b"}`, string(got.Body))
}

func TestDo_NonSuccessStatusesAreClassified(t *testing.T) {
	tests := []struct {
		status int
		body   string
		kind   error
		detail string
	}{
		{status: 401, body: "token expired", kind: ErrUnauthorized, detail: "token expired"},
		{status: 403, body: "", kind: ErrUnauthorized, detail: GenericFailureDetail},
		{status: 404, body: "  missing \n", kind: ErrNotFound, detail: "missing"},
		{status: 409, body: "conflict", kind: ErrRequestFailed, detail: "conflict"},
		{status: 503, body: "", kind: ErrUnavailable, detail: GenericFailureDetail},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			c, _ := newServer(t, tt.status, tt.body)

			_, err := c.Do(context.Background(), http.MethodGet, "/api/jobs/1", nil, "")
			require.ErrorIs(t, err, tt.kind)

			var re *RequestError
			require.True(t, errors.As(err, &re))
			assert.Equal(t, tt.status, re.StatusCode)
			assert.Equal(t, tt.detail, re.Detail)

			code, ok := HTTPStatus(err)
			assert.True(t, ok)
			assert.Equal(t, tt.status, code)
		})
	}
}

func TestDo_TransportFailureIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, err := NewHTTPClient(url)
	require.NoError(t, err)

	_, err = c.Do(context.Background(), http.MethodGet, "/api/jobs", nil, "")
	require.ErrorIs(t, err, ErrUnavailable)

	_, ok := HTTPStatus(err)
	assert.False(t, ok)
}

func TestDo_CancelledContext(t *testing.T) {
	c, _ := newServer(t, http.StatusOK, `[]`)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Do(ctx, http.MethodGet, "/api/jobs", nil, "")
	require.ErrorIs(t, err, ErrUnavailable)
	require.ErrorIs(t, err, context.Canceled)
}

func TestResponse_NoContentAndDecode(t *testing.T) {
	empty := &Response{StatusCode: http.StatusOK}
	assert.True(t, empty.NoContent())
	require.ErrorIs(t, empty.Decode(&struct{}{}), ErrBadResponse)

	noContent := &Response{StatusCode: http.StatusNoContent, Body: []byte("ignored")}
	assert.True(t, noContent.NoContent())

	bad := &Response{StatusCode: http.StatusOK, Body: []byte("<html>")}
	assert.False(t, bad.NoContent())
	require.ErrorIs(t, bad.Decode(&struct{}{}), ErrBadResponse)

	var v map[string]int
	good := &Response{StatusCode: http.StatusOK, Body: []byte(`{"n":1}`)}
	require.NoError(t, good.Decode(&v))
	assert.Equal(t, 1, v["n"])
}

func TestListJobs(t *testing.T) {
	c, got := newServer(t, http.StatusOK, `[{"_id":"1","title":"Engineer"}]`)

	jobs, err := c.ListJobs(context.Background())
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "1", jobs[0].ID)
	assert.Equal(t, "/api/jobs", got.Path)
}

func TestListJobs_InvalidJSONIsBadResponse(t *testing.T) {
	c, _ := newServer(t, http.StatusOK, `not json`)

	_, err := c.ListJobs(context.Background())
	require.ErrorIs(t, err, ErrBadResponse)
}

func TestGetJob_NullBodyIsNilJob(t *testing.T) {
	c, got := newServer(t, http.StatusOK, `null`)

	job, err := c.GetJob(context.Background(), "42")
	require.NoError(t, err)
	assert.Nil(t, job)
	assert.Equal(t, "/api/jobs/42", got.Path)
}

func TestDeleteJob_EmptyBodySucceeds(t *testing.T) {
	c, got := newServer(t, http.StatusNoContent, ``)

	require.NoError(t, c.DeleteJob(context.Background(), "9", "abc"))
	assert.Equal(t, http.MethodDelete, got.Method)
	assert.Equal(t, "/api/jobs/9", got.Path)
	assert.Equal(t, "Bearer abc", got.Authorization)
}

func TestDeleteJob_TextErrorBody(t *testing.T) {
	c, _ := newServer(t, http.StatusUnauthorized, `invalid token`)

	err := c.DeleteJob(context.Background(), "9", "stale")
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "invalid token")
}

func TestUpdateJob_SendsBodyAndDecodesReply(t *testing.T) {
	c, got := newServer(t, http.StatusOK, `{"id":"9","title":"Senior"}`)

	job, err := c.UpdateJob(context.Background(), "9", models.JobUpdate{Title: "Senior"}, "abc")
	require.NoError(t, err)
	require.NotNil(t, job)
	assert.Equal(t, "Senior", job.Title)
	assert.Equal(t, http.MethodPut, got.Method)

	var sent models.JobUpdate
	require.NoError(t, json.Unmarshal(got.Body, &sent))
	assert.Equal(t, "Senior", sent.Title)
}

func TestLogin(t *testing.T) {
	c, got := newServer(t, http.StatusOK, `{"token":"abc","email":"a@b.com"}`)

	lr, err := c.Login(context.Background(), "a@b.com", "x")
	require.NoError(t, err)
	assert.Equal(t, "abc", lr.Token)
	assert.Equal(t, "/api/users/login", got.Path)
	assert.Empty(t, got.Authorization)
	assert.JSONEq(t, `{"email":"a@b.com","password":"x"}`, string(got.Body))
}

func TestLogin_MissingTokenIsBadResponse(t *testing.T) {
	c, _ := newServer(t, http.StatusOK, `{"email":"a@b.com"}`)

	_, err := c.Login(context.Background(), "a@b.com", "x")
	require.ErrorIs(t, err, ErrBadResponse)
}

func TestMetricsAreRecorded(t *testing.T) {
	m := telemetry.NewMetrics()
	c, _ := newServer(t, http.StatusNotFound, ``)
	WithMetrics(m)(c)

	_, _ = c.GetJob(context.Background(), "1")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Requests.WithLabelValues("GET", "4xx")))
}

func TestRateLimit_SpacesRequests(t *testing.T) {
	c, _ := newServer(t, http.StatusOK, `[]`)
	WithRateLimit(20, 1)(c)

	start := time.Now()
	for i := 0; i < 3; i++ {
		_, err := c.ListJobs(context.Background())
		require.NoError(t, err)
	}
	assert.GreaterOrEqual(t, time.Since(start), 80*time.Millisecond)
}

func TestRateLimit_ZeroDisables(t *testing.T) {
	c, _ := newServer(t, http.StatusOK, `[]`)
	WithRateLimit(0, 0)(c)
	assert.Nil(t, c.limiter)
}
