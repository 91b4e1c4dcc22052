package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/dukkan-app/dukkan/internal/client/netstate"
	"github.com/dukkan-app/dukkan/internal/client/storage"
	"github.com/dukkan-app/dukkan/internal/models"
)

// Reconciler removes local mirror records once their remote counterpart
// is confirmed by a synced queue operation.
type Reconciler interface {
	// ReconcileOperation handles one freshly-synced operation.
	ReconcileOperation(ctx context.Context, op *models.QueueOperation) (removed int, err error)

	// ReconcileSynced sweeps the mirror against every synced operation.
	// Defense against partial failures mid-pass.
	ReconcileSynced(ctx context.Context, ops []*models.QueueOperation) (removed int, err error)
}

// OpError pairs a failed operation with its error for the summary.
type OpError struct {
	Err  error
	OpID string
}

// Result summarizes one sync pass.
type Result struct {
	Errors     []OpError
	Succeeded  int
	Failed     int
	Reconciled int
}

// Service drains the durable queue against the remote store. A single
// in-flight pass is enforced so the same operation is never applied
// twice concurrently; failures never propagate to the trigger of a
// background sync.
type Service struct {
	queue      storage.QueueStorage
	executor   *Executor
	reconciler Reconciler
	net        *netstate.Monitor
	logger     *slog.Logger

	mu          sync.Mutex
	subscribers []func(Event)
	syncing     atomic.Bool
}

// NewService creates a new sync coordinator.
func NewService(queue storage.QueueStorage, executor *Executor, reconciler Reconciler, net *netstate.Monitor, logger *slog.Logger) *Service {
	return &Service{
		queue:      queue,
		executor:   executor,
		reconciler: reconciler,
		net:        net,
		logger:     logger,
	}
}

// Subscribe registers a callback for sync events. Callbacks run
// synchronously on the syncing goroutine and should return quickly.
func (s *Service) Subscribe(fn func(Event)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Sync drains pending operations in FIFO order. A concurrent call
// while a pass is running returns ErrSyncInProgress without side
// effects. Does nothing when connectivity is absent.
func (s *Service) Sync(ctx context.Context) (*Result, error) {
	if !s.net.Online() {
		s.logger.Debug("no connectivity, skipping sync")
		return &Result{}, nil
	}

	if !s.syncing.CompareAndSwap(false, true) {
		s.logger.Debug("sync already in progress")
		return nil, ErrSyncInProgress
	}
	defer s.syncing.Store(false)

	pending, err := s.queue.Pending(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot pending operations: %w", err)
	}

	result := &Result{}
	if len(pending) == 0 {
		s.logger.Debug("no pending operations to sync")
		s.notify(Event{Type: EventSyncCompleted, Result: result})
		return result, nil
	}

	s.logger.Info("syncing pending operations", "count", len(pending))

	var synced []*models.QueueOperation
	for _, op := range pending {
		if err := s.executeOne(ctx, op, result); err == nil && op.Synced {
			synced = append(synced, op)
		}
	}

	// Операции с исчерпанными попытками удаляются безоговорочно
	if err := s.purge(ctx); err != nil {
		s.logger.Warn("queue purge failed", "error", err)
	}

	// Финальная зачистка зеркала на случай частичных сбоев выше
	if s.reconciler != nil && len(synced) > 0 {
		removed, err := s.reconciler.ReconcileSynced(ctx, synced)
		if err != nil {
			s.logger.Warn("final mirror cleanup failed", "error", err)
		}
		result.Reconciled += removed
	}

	s.logger.Info("sync completed",
		"succeeded", result.Succeeded,
		"failed", result.Failed,
		"reconciled", result.Reconciled)

	s.notify(Event{Type: EventSyncCompleted, Result: result})

	if remaining, err := s.queue.Pending(ctx); err == nil && len(remaining) == 0 {
		s.notify(Event{Type: EventQueueDrained, Result: result})
	}

	return result, nil
}

// executeOne runs a single operation and persists the queue after it,
// so an interrupted pass leaves consistent on-disk state.
func (s *Service) executeOne(ctx context.Context, op *models.QueueOperation, result *Result) error {
	err := s.executor.Execute(ctx, op)
	if err == nil {
		now := time.Now()
		op.Synced = true
		op.SyncedAt = &now
		if uerr := s.queue.Update(ctx, op); uerr != nil {
			s.logger.Warn("failed to persist synced operation", "op_id", op.ID, "error", uerr)
		}
		result.Succeeded++

		if s.reconciler != nil {
			removed, rerr := s.reconciler.ReconcileOperation(ctx, op)
			if rerr != nil {
				s.logger.Warn("per-operation reconcile failed", "op_id", op.ID, "error", rerr)
			}
			result.Reconciled += removed
			if removed > 0 {
				s.notify(Event{Type: EventRecordReconciled, OpID: op.ID})
			}
		}
		return nil
	}

	result.Failed++
	result.Errors = append(result.Errors, OpError{OpID: op.ID, Err: err})

	if !IsRetryable(err) {
		// Невалидные операции отбрасываются с первой попытки
		s.logger.Warn("dropping non-retryable operation",
			"op_id", op.ID,
			"action", op.Action,
			"collection", op.Collection,
			"error", err)
		if derr := s.queue.Dequeue(ctx, op.ID); derr != nil {
			s.logger.Warn("failed to drop operation", "op_id", op.ID, "error", derr)
		}
		return err
	}

	op.Retries++
	s.logger.Warn("operation failed, will retry",
		"op_id", op.ID,
		"retries", op.Retries,
		"error", err)
	if uerr := s.queue.Update(ctx, op); uerr != nil {
		s.logger.Warn("failed to persist retry counter", "op_id", op.ID, "error", uerr)
	}

	return err
}

// purge removes synced operations and operations past the retry
// ceiling. Abandoned operations are logged for operator review and
// never silently resurrected.
func (s *Service) purge(ctx context.Context) error {
	ops, err := s.queue.All(ctx)
	if err != nil {
		return err
	}

	for _, op := range ops {
		switch {
		case op.Synced:
			if err := s.queue.Dequeue(ctx, op.ID); err != nil {
				return err
			}
		case op.Abandoned():
			s.logger.Warn("abandoning operation after retry ceiling",
				"op_id", op.ID,
				"action", op.Action,
				"collection", op.Collection,
				"retries", op.Retries)
			if err := s.queue.Dequeue(ctx, op.ID); err != nil {
				return err
			}
		}
	}

	return nil
}

// SyncWithRetry runs Sync with backoff until a pass completes without
// failures or the retry budget is exhausted. An already-running pass
// counts as success: the running pass owns the queue.
func (s *Service) SyncWithRetry(ctx context.Context) error {
	backoff := retry.WithMaxRetries(4, retry.NewFibonacci(500*time.Millisecond))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		result, err := s.Sync(ctx)
		if errors.Is(err, ErrSyncInProgress) {
			return nil
		}
		if err != nil {
			return retry.RetryableError(err)
		}
		if result.Failed > 0 {
			return retry.RetryableError(fmt.Errorf("%d operations still failing", result.Failed))
		}
		return nil
	})
}

// WatchConnectivity drains the queue whenever connectivity returns.
func (s *Service) WatchConnectivity(ctx context.Context) {
	s.net.OnChange(func(online bool) {
		if !online {
			return
		}
		go func() {
			if err := s.SyncWithRetry(ctx); err != nil {
				s.logger.Warn("sync after reconnect failed", "error", err)
			}
		}()
	})
}

// PendingCount returns the number of operations awaiting sync.
func (s *Service) PendingCount(ctx context.Context) (int, error) {
	pending, err := s.queue.Pending(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get pending operations: %w", err)
	}
	return len(pending), nil
}

func (s *Service) notify(event Event) {
	s.mu.Lock()
	subscribers := make([]func(Event), len(s.subscribers))
	copy(subscribers, s.subscribers)
	s.mu.Unlock()

	for _, fn := range subscribers {
		fn(event)
	}
}
