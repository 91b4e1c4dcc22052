package sync

import (
	"errors"
	"fmt"
)

// Sync service errors
var (
	// ErrSyncInProgress indicates that a sync pass is already running;
	// the second caller must not touch the queue.
	ErrSyncInProgress = errors.New("sync already in progress")
)

// NonRetryableError marks an operation failure that must drop the
// operation instead of retrying it: validation failures and updates
// whose target no longer exists remotely.
type NonRetryableError struct {
	Err error
}

func (e *NonRetryableError) Error() string {
	return fmt.Sprintf("non-retryable: %v", e.Err)
}

func (e *NonRetryableError) Unwrap() error { return e.Err }

// nonRetryable wraps err so the coordinator drops the operation.
func nonRetryable(err error) error {
	return &NonRetryableError{Err: err}
}

// IsRetryable reports whether a failed execution should stay in the
// queue for another attempt.
func IsRetryable(err error) bool {
	var nre *NonRetryableError
	return !errors.As(err, &nre)
}
