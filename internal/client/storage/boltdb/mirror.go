package boltdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/dukkan-app/dukkan/internal/client/storage"
	"github.com/dukkan-app/dukkan/internal/models"
)

// ErrMissingLocalID is returned when a mirror invoice has no local id.
var ErrMissingLocalID = errors.New("mirror invoice requires a local id")

// Put stores or replaces a mirror invoice keyed by its local id.
func (s *Storage) Put(ctx context.Context, inv *models.Invoice) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}
	if inv.ID == "" {
		return ErrMissingLocalID
	}

	data, err := json.Marshal(inv)
	if err != nil {
		return fmt.Errorf("failed to marshal invoice: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMirror)
		if bucket == nil {
			return fmt.Errorf("mirror bucket missing")
		}

		if err := bucket.Put([]byte(inv.ID), data); err != nil {
			return fmt.Errorf("failed to save invoice: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("put transaction failed: %w", err)
	}

	return nil
}

// Remove deletes a mirror invoice by local id.
func (s *Storage) Remove(ctx context.Context, localID string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMirror)
		if bucket == nil {
			return nil
		}
		return bucket.Delete([]byte(localID))
	})

	if err != nil {
		return fmt.Errorf("remove transaction failed: %w", err)
	}

	return nil
}

// RemoveWhere deletes every mirror invoice matching the predicate.
// Returns the number of removed entries.
func (s *Storage) RemoveWhere(ctx context.Context, match func(*models.Invoice) bool) (int, error) {
	if s.db == nil {
		return 0, storage.ErrStorageClosed
	}

	var removed int

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMirror)
		if bucket == nil {
			return nil
		}

		// Сначала собираем ключи, удаление внутри ForEach небезопасно
		var keys [][]byte
		err := bucket.ForEach(func(k, v []byte) error {
			var inv models.Invoice
			if err := json.Unmarshal(v, &inv); err != nil {
				return fmt.Errorf("failed to unmarshal invoice: %w", err)
			}
			if match(&inv) {
				keys = append(keys, append([]byte(nil), k...))
			}
			return nil
		})
		if err != nil {
			return err
		}

		for _, k := range keys {
			if err := bucket.Delete(k); err != nil {
				return fmt.Errorf("failed to delete invoice: %w", err)
			}
			removed++
		}

		return nil
	})

	if err != nil {
		return 0, fmt.Errorf("remove-where transaction failed: %w", err)
	}

	return removed, nil
}

// ListForShop returns mirror invoices belonging to one shop.
func (s *Storage) ListForShop(ctx context.Context, shop string) ([]*models.Invoice, error) {
	return s.list(func(inv *models.Invoice) bool { return inv.Shop == shop })
}

// List returns every mirror invoice across all shops.
func (s *Storage) List(ctx context.Context) ([]*models.Invoice, error) {
	return s.list(func(*models.Invoice) bool { return true })
}

func (s *Storage) list(match func(*models.Invoice) bool) ([]*models.Invoice, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var invoices []*models.Invoice

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMirror)
		if bucket == nil {
			return nil
		}

		return bucket.ForEach(func(k, v []byte) error {
			var inv models.Invoice
			if err := json.Unmarshal(v, &inv); err != nil {
				return fmt.Errorf("failed to unmarshal invoice: %w", err)
			}
			if match(&inv) {
				invoices = append(invoices, &inv)
			}
			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to list mirror invoices: %w", err)
	}

	return invoices, nil
}
