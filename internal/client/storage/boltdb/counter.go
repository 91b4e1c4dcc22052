package boltdb

import (
	"context"
	"fmt"
	"strconv"

	"go.etcd.io/bbolt"

	"github.com/dukkan-app/dukkan/internal/client/storage"
)

var keyLastInvoiceNumber = []byte("lastInvoiceNumber")

// NextInvoiceNumber atomically increments the invoice counter and
// returns the new value. The increment is committed before returning,
// so numbers are never reissued after a crash.
func (s *Storage) NextInvoiceNumber(ctx context.Context) (int64, error) {
	if s.db == nil {
		return 0, storage.ErrStorageClosed
	}

	var next int64

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCounters)
		if bucket == nil {
			return fmt.Errorf("counters bucket missing")
		}

		current, err := parseCounter(bucket.Get(keyLastInvoiceNumber))
		if err != nil {
			return err
		}

		next = current + 1
		return bucket.Put(keyLastInvoiceNumber, []byte(strconv.FormatInt(next, 10)))
	})

	if err != nil {
		return 0, fmt.Errorf("counter transaction failed: %w", err)
	}

	return next, nil
}

// LastInvoiceNumber returns the last issued invoice number, 0 if none.
func (s *Storage) LastInvoiceNumber(ctx context.Context) (int64, error) {
	if s.db == nil {
		return 0, storage.ErrStorageClosed
	}

	var last int64

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCounters)
		if bucket == nil {
			return nil
		}

		current, err := parseCounter(bucket.Get(keyLastInvoiceNumber))
		if err != nil {
			return err
		}
		last = current
		return nil
	})

	if err != nil {
		return 0, fmt.Errorf("failed to read counter: %w", err)
	}

	return last, nil
}

// SeedInvoiceNumber raises the counter to at least n. Never lowers it,
// so a stale remote advisory copy cannot cause duplicate numbers.
func (s *Storage) SeedInvoiceNumber(ctx context.Context, n int64) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCounters)
		if bucket == nil {
			return fmt.Errorf("counters bucket missing")
		}

		current, err := parseCounter(bucket.Get(keyLastInvoiceNumber))
		if err != nil {
			return err
		}

		if n <= current {
			return nil
		}
		return bucket.Put(keyLastInvoiceNumber, []byte(strconv.FormatInt(n, 10)))
	})

	if err != nil {
		return fmt.Errorf("seed transaction failed: %w", err)
	}

	return nil
}

// parseCounter декодирует значение счётчика, nil трактуется как 0
func parseCounter(raw []byte) (int64, error) {
	if len(raw) == 0 {
		return 0, nil
	}
	n, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("corrupt counter value %q: %w", raw, err)
	}
	return n, nil
}
