package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dukkan-app/dukkan/internal/models"
	"github.com/dukkan-app/dukkan/internal/remote"
)

// Executor applies one queued operation against the remote store and
// classifies the outcome as retryable or not.
type Executor struct {
	remote remote.Store
	logger *slog.Logger
}

// NewExecutor creates a new operation executor
func NewExecutor(store remote.Store, logger *slog.Logger) *Executor {
	return &Executor{remote: store, logger: logger}
}

// Execute dispatches the operation by action. A nil return means the
// remote effect is in place; a NonRetryableError means the operation
// must be dropped; anything else is worth retrying.
//
// The remote-assigned id of an add is deliberately not written back
// into the operation: reconciliation matches by business key, because
// the UI may already display the mirror entry under a temporary id.
func (e *Executor) Execute(ctx context.Context, op *models.QueueOperation) error {
	if err := op.Validate(); err != nil {
		return nonRetryable(err)
	}

	switch op.Action {
	case models.ActionAdd:
		if _, err := e.remote.AddDocument(ctx, op.Collection, op.Data); err != nil {
			return fmt.Errorf("add to %s failed: %w", op.Collection, err)
		}

	case models.ActionUpdate:
		err := e.remote.UpdateDocument(ctx, op.Collection, op.DocID, op.Data)
		if errors.Is(err, remote.ErrNotFound) {
			// Цель обновления уже не существует — операцию отбрасываем
			return nonRetryable(err)
		}
		if err != nil {
			return fmt.Errorf("update %s/%s failed: %w", op.Collection, op.DocID, err)
		}

	case models.ActionDelete:
		err := e.remote.DeleteDocument(ctx, op.Collection, op.DocID)
		if errors.Is(err, remote.ErrNotFound) {
			// Удаление отсутствующего документа считается успехом
			e.logger.Debug("delete target already absent",
				"collection", op.Collection,
				"doc_id", op.DocID)
			return nil
		}
		if err != nil {
			return fmt.Errorf("delete %s/%s failed: %w", op.Collection, op.DocID, err)
		}

	default:
		return nonRetryable(models.ErrUnknownAction)
	}

	return nil
}
