package fakeapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/jobboard/internal/client/client"
	"github.com/dmitrijs2005/jobboard/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func startServer(t *testing.T, opts ...Option) (*JobStore, *client.HTTPClient) {
	t.Helper()
	store := NewJobStore(
		models.JobPosting{ID: "a", Title: "Alpha"},
		models.JobPosting{ID: "b", Title: "Beta"},
	)
	opts = append([]Option{WithUser("u@x.io", "pw")}, opts...)
	srv := httptest.NewServer(New(store, testSecret, opts...).Router())
	t.Cleanup(srv.Close)

	c, err := client.NewHTTPClient(srv.URL)
	require.NoError(t, err)
	return store, c
}

func login(t *testing.T, c *client.HTTPClient) string {
	t.Helper()
	resp, err := c.Login(context.Background(), "u@x.io", "pw")
	require.NoError(t, err)
	return resp.Token
}

func TestServer_ListAndGet(t *testing.T) {
	_, c := startServer(t)
	ctx := context.Background()

	jobs, err := c.ListJobs(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, "Alpha", jobs[0].Title)

	job, err := c.GetJob(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, "Beta", job.Title)

	_, err = c.GetJob(ctx, "zzz")
	require.ErrorIs(t, err, client.ErrNotFound)
}

func TestServer_Login(t *testing.T) {
	_, c := startServer(t)

	tok := login(t, c)
	email, err := EmailFromToken(tok, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "u@x.io", email)

	_, err = c.Login(context.Background(), "u@x.io", "nope")
	require.ErrorIs(t, err, client.ErrUnauthorized)
}

func TestServer_WritesRequireToken(t *testing.T) {
	store, c := startServer(t)
	ctx := context.Background()

	require.ErrorIs(t, c.DeleteJob(ctx, "a", ""), client.ErrUnauthorized)
	require.ErrorIs(t, c.DeleteJob(ctx, "a", "forged"), client.ErrUnauthorized)
	_, err := c.UpdateJob(ctx, "a", models.JobUpdate{Title: "X"}, "")
	require.ErrorIs(t, err, client.ErrUnauthorized)

	_, err = store.Get("a")
	require.NoError(t, err)
}

func TestServer_ExpiredTokenRejected(t *testing.T) {
	_, c := startServer(t, WithTokenTTL(-time.Second))
	tok := login(t, c)

	require.ErrorIs(t, c.DeleteJob(context.Background(), "a", tok), client.ErrUnauthorized)
}

func TestServer_DeleteAndUpdate(t *testing.T) {
	store, c := startServer(t)
	ctx := context.Background()
	tok := login(t, c)

	updated, err := c.UpdateJob(ctx, "a", models.JobUpdate{Title: "Alpha 2", Salary: 10}, tok)
	require.NoError(t, err)
	assert.Equal(t, "a", updated.ID)
	assert.Equal(t, "Alpha 2", updated.Title)

	require.NoError(t, c.DeleteJob(ctx, "b", tok))
	_, err = store.Get("b")
	require.ErrorIs(t, err, ErrJobNotFound)

	require.ErrorIs(t, c.DeleteJob(ctx, "b", tok), client.ErrNotFound)
}

func TestServer_CreateAssignsID(t *testing.T) {
	store, c := startServer(t)
	tok := login(t, c)

	resp, err := c.Do(context.Background(), http.MethodPost, "/api/jobs", models.JobUpdate{Title: "Gamma"}, tok)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var j models.JobPosting
	require.NoError(t, resp.Decode(&j))
	assert.NotEmpty(t, j.ID)
	got, err := store.Get(j.ID)
	require.NoError(t, err)
	assert.Equal(t, "Gamma", got.Title)
}

func TestServer_RejectsBadBodies(t *testing.T) {
	_, c := startServer(t)
	tok := login(t, c)

	_, err := c.UpdateJob(context.Background(), "a", models.JobUpdate{}, tok)
	require.ErrorIs(t, err, client.ErrRequestFailed)
	var re *client.RequestError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, http.StatusBadRequest, re.StatusCode)
	assert.True(t, strings.Contains(re.Detail, "title"))
}

func TestServer_Healthz(t *testing.T) {
	srv := httptest.NewServer(New(NewJobStore(), testSecret).Router())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestJobStore_SeedWithoutIDsGetsUUIDs(t *testing.T) {
	s := NewJobStore(SeedJobs()...)
	jobs := s.List()
	require.Len(t, jobs, 2)
	for _, j := range jobs {
		assert.Len(t, j.ID, 36)
	}
}
