package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// retryRead runs an idempotent read once more when it fails with something
// other than a definitive outcome. A missing row or a cancelled context is
// final; anything else is assumed transient and retried exactly once.
func retryRead(ctx context.Context, fn func() error) error {
	err := fn()
	if err == nil ||
		errors.Is(err, gorm.ErrRecordNotFound) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	if ctx.Err() != nil {
		return err
	}
	return fn()
}
