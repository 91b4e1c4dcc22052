package storage

import (
	"context"

	"github.com/dukkan-app/dukkan/internal/models"
)

//go:generate moq -out mirror_mock.go . MirrorStorage

// MirrorStorage holds locally-created invoices not yet confirmed by the
// remote store, so they can be displayed and printed immediately. The
// reconciler removes entries once a remote counterpart is observed.
type MirrorStorage interface {
	// Put stores or replaces a mirror invoice keyed by its local id.
	Put(ctx context.Context, inv *models.Invoice) error

	// Remove deletes a mirror invoice by local id.
	// Removing an absent invoice is not an error.
	Remove(ctx context.Context, localID string) error

	// RemoveWhere deletes every mirror invoice matching the predicate
	// and returns the number of removed entries.
	RemoveWhere(ctx context.Context, match func(*models.Invoice) bool) (int, error)

	// ListForShop returns mirror invoices belonging to one shop.
	ListForShop(ctx context.Context, shop string) ([]*models.Invoice, error)

	// List returns every mirror invoice across all shops.
	// Used by the store-wide reconciliation sweep.
	List(ctx context.Context) ([]*models.Invoice, error)
}
