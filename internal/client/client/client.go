package client

import (
	"context"

	"github.com/dmitrijs2005/jobboard/internal/client/models"
)

type Client interface {
	Do(ctx context.Context, method, path string, body any, credential string) (*Response, error)
	ListJobs(ctx context.Context) ([]models.JobPosting, error)
	GetJob(ctx context.Context, id string) (*models.JobPosting, error)
	DeleteJob(ctx context.Context, id string, credential string) error
	UpdateJob(ctx context.Context, id string, update models.JobUpdate, credential string) (*models.JobPosting, error)
	Login(ctx context.Context, email, password string) (*models.LoginResponse, error)
}
