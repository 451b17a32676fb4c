package services

import "errors"

var (
	ErrNoCredential = errors.New("no credential in session store")
	ErrUnknownField = errors.New("unknown form field")
	ErrEmptyField   = errors.New("form field is empty")
)

const (
	// ListFailureMessage is shown when the job list request got a non-2xx reply.
	ListFailureMessage = "Could not fetch jobs"
	// EntityFailureMessage is shown when a job detail request got a non-2xx reply.
	EntityFailureMessage = "Network response was not ok"

	DeleteConfirmation = "Are you sure you want to delete this job listing?"
)
