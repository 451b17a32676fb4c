package services

import (
	"context"

	"github.com/dmitrijs2005/jobboard/internal/client/models"
)

// JobReader is the unauthenticated read side of the remote data client.
type JobReader interface {
	ListJobs(ctx context.Context) ([]models.JobPosting, error)
	GetJob(ctx context.Context, id string) (*models.JobPosting, error)
}

// JobWriter is the authenticated write side of the remote data client.
type JobWriter interface {
	DeleteJob(ctx context.Context, id string, credential string) error
	UpdateJob(ctx context.Context, id string, update models.JobUpdate, credential string) (*models.JobPosting, error)
}

type Authenticator interface {
	Login(ctx context.Context, email, password string) (*models.LoginResponse, error)
}

// Navigator switches the active view to the given route.
type Navigator interface {
	Navigate(route string)
}

// Confirmer asks the user a blocking yes/no question.
type Confirmer interface {
	Confirm(prompt string) bool
}
