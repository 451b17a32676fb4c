package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/jobboard/internal/client/models"
	"github.com/dmitrijs2005/jobboard/internal/client/session"
	"github.com/dmitrijs2005/jobboard/internal/common"
	"github.com/dmitrijs2005/jobboard/internal/logging"
)

// Mutator performs authenticated writes against a job. The credential is
// read from the session store on every call, never cached.
type Mutator struct {
	jobs   JobWriter
	store  session.Store
	nav    Navigator
	log    logging.Logger
	policy FailurePolicy
}

type MutatorOption func(*Mutator)

// WithFailurePolicy replaces the default FireAndLog policy.
func WithFailurePolicy(p FailurePolicy) MutatorOption {
	return func(m *Mutator) { m.policy = p }
}

func NewMutator(jobs JobWriter, store session.Store, nav Navigator, log logging.Logger, opts ...MutatorOption) *Mutator {
	m := &Mutator{jobs: jobs, store: store, nav: nav, log: log, policy: FireAndLog(log)}
	for _, o := range opts {
		o(m)
	}
	return m
}

// Delete removes the job and returns to the root view on success.
func (m *Mutator) Delete(ctx context.Context, id string) error {
	token, err := m.credential(ctx)
	if err != nil {
		return m.policy(ctx, "delete job", err)
	}
	if err := m.jobs.DeleteJob(ctx, id, token); err != nil {
		return m.policy(ctx, "delete job", fmt.Errorf("failed to delete job %s: %w", id, err))
	}

	m.log.Info(ctx, "job deleted", "job_id", id)
	m.nav.Navigate(common.RouteRoot)
	return nil
}

// ConfirmAndDelete asks for confirmation first. Declining is a no-op.
func (m *Mutator) ConfirmAndDelete(ctx context.Context, id string, c Confirmer) error {
	if !c.Confirm(DeleteConfirmation) {
		m.log.Debug(ctx, "delete declined", "job_id", id)
		return nil
	}
	return m.Delete(ctx, id)
}

// Update replaces the job's fields and opens its detail view on success.
func (m *Mutator) Update(ctx context.Context, id string, update models.JobUpdate) error {
	token, err := m.credential(ctx)
	if err != nil {
		return m.policy(ctx, "update job", err)
	}
	if _, err := m.jobs.UpdateJob(ctx, id, update, token); err != nil {
		return m.policy(ctx, "update job", fmt.Errorf("failed to update job %s: %w", id, err))
	}

	m.log.Info(ctx, "job updated", "job_id", id)
	m.nav.Navigate(common.JobRoute(id))
	return nil
}

// EditRequested navigates to the edit view for id. No request is made.
func (m *Mutator) EditRequested(id string) {
	m.nav.Navigate(common.EditJobRoute(id))
}

func (m *Mutator) credential(ctx context.Context) (string, error) {
	token, err := m.store.Token(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to read credential: %w", err)
	}
	if token == "" {
		return "", ErrNoCredential
	}
	return token, nil
}
