package boltdb

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.etcd.io/bbolt"

	"github.com/dukkan-app/dukkan/internal/client/storage"
	"github.com/dukkan-app/dukkan/internal/models"
)

// Operations are stored under the bucket sequence number as key, so a
// plain cursor walk yields FIFO creation order.

// Enqueue appends an operation to the durable queue and persists it
// before returning. Assigns a UUID, resets synced/retries.
func (s *Storage) Enqueue(ctx context.Context, op *models.QueueOperation) (string, error) {
	if s.db == nil {
		return "", storage.ErrStorageClosed
	}

	if op.ID == "" {
		op.ID = uuid.New().String()
	}
	if op.Timestamp.IsZero() {
		op.Timestamp = time.Now()
	}
	op.Synced = false
	op.Retries = 0
	op.SyncedAt = nil

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return fmt.Errorf("queue bucket missing")
		}

		seq, err := bucket.NextSequence()
		if err != nil {
			return fmt.Errorf("failed to get sequence: %w", err)
		}

		data, err := json.Marshal(op)
		if err != nil {
			return fmt.Errorf("failed to marshal operation: %w", err)
		}

		if err := bucket.Put(seqKey(seq), data); err != nil {
			return fmt.Errorf("failed to save operation: %w", err)
		}

		return nil
	})

	if err != nil {
		return "", fmt.Errorf("enqueue transaction failed: %w", err)
	}

	return op.ID, nil
}

// Dequeue removes an operation by id. Removing an absent operation is
// a no-op, so replaying a dequeue after a crash is safe.
func (s *Storage) Dequeue(ctx context.Context, id string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return nil
		}

		key, _, err := findOperation(bucket, id)
		if err != nil {
			return err
		}
		if key == nil {
			// Операция уже удалена
			return nil
		}

		if err := bucket.Delete(key); err != nil {
			return fmt.Errorf("failed to delete operation: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("dequeue transaction failed: %w", err)
	}

	return nil
}

// Update persists in-place mutations of an operation (retries, synced,
// syncedAt).
func (s *Storage) Update(ctx context.Context, op *models.QueueOperation) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return storage.ErrOperationNotFound
		}

		key, _, err := findOperation(bucket, op.ID)
		if err != nil {
			return err
		}
		if key == nil {
			return storage.ErrOperationNotFound
		}

		data, err := json.Marshal(op)
		if err != nil {
			return fmt.Errorf("failed to marshal operation: %w", err)
		}

		if err := bucket.Put(key, data); err != nil {
			return fmt.Errorf("failed to save operation: %w", err)
		}

		return nil
	})

	if err != nil {
		return err
	}

	return nil
}

// Pending returns unsynced operations in FIFO creation order.
func (s *Storage) Pending(ctx context.Context) ([]*models.QueueOperation, error) {
	ops, err := s.All(ctx)
	if err != nil {
		return nil, err
	}

	pending := make([]*models.QueueOperation, 0, len(ops))
	for _, op := range ops {
		if !op.Synced {
			pending = append(pending, op)
		}
	}

	return pending, nil
}

// All returns every persisted operation in FIFO creation order.
func (s *Storage) All(ctx context.Context) ([]*models.QueueOperation, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var ops []*models.QueueOperation

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return nil
		}

		return bucket.ForEach(func(k, v []byte) error {
			var op models.QueueOperation
			if err := json.Unmarshal(v, &op); err != nil {
				return fmt.Errorf("failed to unmarshal operation: %w", err)
			}
			ops = append(ops, &op)
			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to get operations: %w", err)
	}

	return ops, nil
}

// Size returns the number of persisted operations.
func (s *Storage) Size(ctx context.Context) (int, error) {
	if s.db == nil {
		return 0, storage.ErrStorageClosed
	}

	var size int

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return nil
		}
		size = bucket.Stats().KeyN
		return nil
	})

	if err != nil {
		return 0, fmt.Errorf("failed to get queue size: %w", err)
	}

	return size, nil
}

// findOperation ищет операцию по её ID, возвращает ключ и значение
func findOperation(bucket *bbolt.Bucket, id string) ([]byte, []byte, error) {
	var foundKey, foundVal []byte

	err := bucket.ForEach(func(k, v []byte) error {
		var op models.QueueOperation
		if err := json.Unmarshal(v, &op); err != nil {
			return fmt.Errorf("failed to unmarshal operation: %w", err)
		}
		if op.ID == id && foundKey == nil {
			foundKey = append([]byte(nil), k...)
			foundVal = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return foundKey, foundVal, nil
}

// seqKey кодирует sequence number в big-endian для сортировки ключей
func seqKey(seq uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, seq)
	return key
}
