package storage

import (
	"context"

	"github.com/dukkan-app/dukkan/internal/models"
)

//go:generate moq -out queue_mock.go . QueueStorage

// QueueStorage defines the durable operation queue owned by the sync
// engine. Every mutation persists synchronously before returning, so a
// crash immediately after Enqueue never loses the operation and a
// crash immediately after Dequeue never redelivers it.
type QueueStorage interface {
	// Enqueue appends an operation, assigns it a unique id, marks it
	// unsynced with zero retries and persists it. Returns the id.
	Enqueue(ctx context.Context, op *models.QueueOperation) (string, error)

	// Dequeue removes an operation by id and persists the removal.
	// Removing an absent operation is not an error.
	Dequeue(ctx context.Context, id string) error

	// Update persists in-place mutations of an operation
	// (retries counter, synced flag, syncedAt).
	// Returns ErrOperationNotFound if the operation does not exist.
	Update(ctx context.Context, op *models.QueueOperation) error

	// Pending returns unsynced operations in FIFO creation order.
	Pending(ctx context.Context) ([]*models.QueueOperation, error)

	// All returns every persisted operation in FIFO creation order,
	// including synced ones not yet purged.
	All(ctx context.Context) ([]*models.QueueOperation, error)

	// Size returns the number of persisted operations.
	Size(ctx context.Context) (int, error)
}
