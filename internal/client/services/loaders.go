package services

import (
	"context"

	"github.com/dmitrijs2005/jobboard/internal/client/loadstate"
	"github.com/dmitrijs2005/jobboard/internal/client/models"
	"github.com/dmitrijs2005/jobboard/internal/logging"
)

type (
	ListState   = loadstate.State[[]models.JobPosting]
	EntityState = loadstate.State[*models.JobPosting]
)

// ListLoader fetches the job collection once per activation.
type ListLoader struct {
	jobs JobReader
	log  logging.Logger
	t    tracker[[]models.JobPosting]
}

func NewListLoader(jobs JobReader, log logging.Logger) *ListLoader {
	return &ListLoader{jobs: jobs, log: log}
}

// Activate starts the fetch if the loader is Idle. It reports whether a
// request was issued; once Pending or settled it does nothing until
// Deactivate.
func (l *ListLoader) Activate(ctx context.Context) bool {
	gen, fctx, ok := l.t.begin(ctx, "")
	if !ok {
		return false
	}

	go func() {
		jobs, err := l.jobs.ListJobs(fctx)
		next := loadstate.Loaded(jobs)
		if err != nil {
			next = loadstate.Failed[[]models.JobPosting](failureMessage(err, ListFailureMessage))
		}
		if !l.t.finish(gen, next) {
			l.log.Debug(ctx, "discarded stale job list response", "generation", gen)
			return
		}
		if err != nil {
			l.log.Warn(ctx, "failed to fetch jobs", "error", err)
		}
	}()
	return true
}

// Deactivate drops any result and cancels an in-flight request.
func (l *ListLoader) Deactivate() { l.t.reset() }

func (l *ListLoader) State() ListState { return l.t.current() }

// Wait blocks until the current fetch settles. An Idle loader returns at once.
func (l *ListLoader) Wait(ctx context.Context) (ListState, error) { return l.t.wait(ctx) }

// OnChange registers fn to be called on every transition, in order.
func (l *ListLoader) OnChange(fn func(ListState)) { l.t.observe(fn) }

// EntityLoader fetches a single job and refetches whenever the id changes.
type EntityLoader struct {
	jobs JobReader
	log  logging.Logger
	t    tracker[*models.JobPosting]
}

func NewEntityLoader(jobs JobReader, log logging.Logger) *EntityLoader {
	return &EntityLoader{jobs: jobs, log: log}
}

// SetID points the loader at id. A different id cancels the previous fetch
// and starts a new one; the same id is a no-op. An empty id tears the loader
// down to Idle.
func (l *EntityLoader) SetID(ctx context.Context, id string) bool {
	if id == "" {
		l.Close()
		return false
	}
	gen, fctx, ok := l.t.begin(ctx, id)
	if !ok {
		return false
	}

	go func() {
		job, err := l.jobs.GetJob(fctx, id)
		next := loadstate.Loaded(job)
		if err != nil {
			next = loadstate.Failed[*models.JobPosting](failureMessage(err, EntityFailureMessage))
		}
		if !l.t.finish(gen, next) {
			l.log.Debug(ctx, "discarded stale job response", "job_id", id, "generation", gen)
			return
		}
		if err != nil {
			l.log.Warn(ctx, "failed to fetch job", "job_id", id, "error", err)
		}
	}()
	return true
}

// ID returns the identifier the loader currently targets.
func (l *EntityLoader) ID() string {
	l.t.mu.Lock()
	defer l.t.mu.Unlock()
	return l.t.key
}

func (l *EntityLoader) State() EntityState { return l.t.current() }

func (l *EntityLoader) Wait(ctx context.Context) (EntityState, error) { return l.t.wait(ctx) }

func (l *EntityLoader) OnChange(fn func(EntityState)) { l.t.observe(fn) }

// Close cancels any in-flight request; its late result is discarded.
func (l *EntityLoader) Close() { l.t.reset() }
