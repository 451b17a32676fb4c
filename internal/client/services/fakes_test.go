package services

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/dmitrijs2005/jobboard/internal/client/models"
	"github.com/dmitrijs2005/jobboard/internal/logging"
)

// fakeJobs implements JobReader, JobWriter and Authenticator for unit tests.
type fakeJobs struct {
	ListFn   func(ctx context.Context) ([]models.JobPosting, error)
	GetFn    func(ctx context.Context, id string) (*models.JobPosting, error)
	DeleteFn func(ctx context.Context, id, credential string) error
	UpdateFn func(ctx context.Context, id string, u models.JobUpdate, credential string) (*models.JobPosting, error)
	LoginFn  func(ctx context.Context, email, password string) (*models.LoginResponse, error)

	ListCalls   atomic.Int32
	GetCalls    atomic.Int32
	DeleteCalls atomic.Int32
	UpdateCalls atomic.Int32
	LoginCalls  atomic.Int32

	mu                   sync.Mutex
	LastDeleteID         string
	LastDeleteCredential string
	LastUpdateID         string
	LastUpdate           models.JobUpdate
	LastUpdateCredential string
	LastLoginEmail       string
	LastLoginPassword    string
}

func (f *fakeJobs) ListJobs(ctx context.Context) ([]models.JobPosting, error) {
	f.ListCalls.Add(1)
	if f.ListFn != nil {
		return f.ListFn(ctx)
	}
	return nil, nil
}

func (f *fakeJobs) GetJob(ctx context.Context, id string) (*models.JobPosting, error) {
	f.GetCalls.Add(1)
	if f.GetFn != nil {
		return f.GetFn(ctx, id)
	}
	return &models.JobPosting{ID: id}, nil
}

func (f *fakeJobs) DeleteJob(ctx context.Context, id, credential string) error {
	f.DeleteCalls.Add(1)
	f.mu.Lock()
	f.LastDeleteID, f.LastDeleteCredential = id, credential
	f.mu.Unlock()
	if f.DeleteFn != nil {
		return f.DeleteFn(ctx, id, credential)
	}
	return nil
}

func (f *fakeJobs) UpdateJob(ctx context.Context, id string, u models.JobUpdate, credential string) (*models.JobPosting, error) {
	f.UpdateCalls.Add(1)
	f.mu.Lock()
	f.LastUpdateID, f.LastUpdate, f.LastUpdateCredential = id, u, credential
	f.mu.Unlock()
	if f.UpdateFn != nil {
		return f.UpdateFn(ctx, id, u, credential)
	}
	return &models.JobPosting{ID: id, Title: u.Title}, nil
}

func (f *fakeJobs) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	f.LoginCalls.Add(1)
	f.mu.Lock()
	f.LastLoginEmail, f.LastLoginPassword = email, password
	f.mu.Unlock()
	if f.LoginFn != nil {
		return f.LoginFn(ctx, email, password)
	}
	return &models.LoginResponse{Token: "tok", Email: email}, nil
}

type fakeNav struct {
	mu     sync.Mutex
	Routes []string
}

func (n *fakeNav) Navigate(route string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Routes = append(n.Routes, route)
}

func (n *fakeNav) all() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.Routes...)
}

type fakeConfirmer struct {
	Answer     bool
	LastPrompt string
}

func (c *fakeConfirmer) Confirm(prompt string) bool {
	c.LastPrompt = prompt
	return c.Answer
}

type logEntry struct {
	Level string
	Msg   string
	Args  []any
}

// captureLogger records every entry so tests can assert on diagnostics.
type captureLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (l *captureLogger) add(level, msg string, args []any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, logEntry{Level: level, Msg: msg, Args: args})
}

func (l *captureLogger) Debug(_ context.Context, msg string, args ...any) { l.add("debug", msg, args) }
func (l *captureLogger) Info(_ context.Context, msg string, args ...any)  { l.add("info", msg, args) }
func (l *captureLogger) Warn(_ context.Context, msg string, args ...any)  { l.add("warn", msg, args) }
func (l *captureLogger) Error(_ context.Context, msg string, args ...any) { l.add("error", msg, args) }
func (l *captureLogger) With(...any) logging.Logger                       { return l }

func (l *captureLogger) has(level, msg string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, e := range l.entries {
		if e.Level == level && e.Msg == msg {
			return true
		}
	}
	return false
}

// errorArgs returns the "error" attribute of every error-level entry.
func (l *captureLogger) errorArgs() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []string
	for _, e := range l.entries {
		if e.Level != "error" {
			continue
		}
		for i := 0; i+1 < len(e.Args); i += 2 {
			if e.Args[i] == "error" {
				out = append(out, fmt.Sprint(e.Args[i+1]))
			}
		}
	}
	return out
}
