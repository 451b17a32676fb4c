package client

import (
	"context"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/jobboard/internal/client/models"
	"github.com/dmitrijs2005/jobboard/internal/common"
)

func (c *HTTPClient) ListJobs(ctx context.Context) ([]models.JobPosting, error) {
	resp, err := c.Do(ctx, http.MethodGet, common.JobsPath, nil, "")
	if err != nil {
		return nil, err
	}
	var jobs []models.JobPosting
	if err := resp.Decode(&jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// GetJob returns nil without error when the server answers with JSON null.
func (c *HTTPClient) GetJob(ctx context.Context, id string) (*models.JobPosting, error) {
	resp, err := c.Do(ctx, http.MethodGet, common.JobPath(id), nil, "")
	if err != nil {
		return nil, err
	}
	var job *models.JobPosting
	if err := resp.Decode(&job); err != nil {
		return nil, err
	}
	return job, nil
}

// DeleteJob accepts any 2xx reply, with or without a body.
func (c *HTTPClient) DeleteJob(ctx context.Context, id string, credential string) error {
	_, err := c.Do(ctx, http.MethodDelete, common.JobPath(id), nil, credential)
	return err
}

func (c *HTTPClient) UpdateJob(ctx context.Context, id string, update models.JobUpdate, credential string) (*models.JobPosting, error) {
	resp, err := c.Do(ctx, http.MethodPut, common.JobPath(id), update, credential)
	if err != nil {
		return nil, err
	}
	if resp.NoContent() {
		return nil, nil
	}
	var job *models.JobPosting
	if err := resp.Decode(&job); err != nil {
		return nil, err
	}
	return job, nil
}

var errEmptyToken = errors.New("login response has no token")

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	resp, err := c.Do(ctx, http.MethodPost, common.LoginPath, models.LoginRequest{Email: email, Password: password}, "")
	if err != nil {
		return nil, err
	}
	var lr models.LoginResponse
	if err := resp.Decode(&lr); err != nil {
		return nil, err
	}
	if lr.Token == "" {
		return nil, errors.Join(ErrBadResponse, errEmptyToken)
	}
	return &lr, nil
}
