package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/jobboard/internal/logging"
)

// FailurePolicy decides what a failed write or login turns into for the
// caller. op names the operation for logs and wrapping.
type FailurePolicy func(ctx context.Context, op string, err error) error

// FireAndLog records the failure at error level and reports success to the
// caller. Nothing is retried and no state is changed.
func FireAndLog(log logging.Logger) FailurePolicy {
	return func(ctx context.Context, op string, err error) error {
		log.Error(ctx, op+" failed", "error", err)
		return nil
	}
}

// Propagate hands the failure back to the caller.
func Propagate(_ context.Context, op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
