package boltdb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukkan-app/dukkan/internal/models"
)

// createTestInvoice создает тестовую зеркальную фактуру
func createTestInvoice(id, shop string, number int64, total float64) *models.Invoice {
	return &models.Invoice{
		ID:            id,
		Shop:          shop,
		InvoiceNumber: number,
		Total:         total,
		Date:          time.Now(),
	}
}

func TestStorage_PutAndList(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, createTestInvoice("inv-1", "shopA", 1, 100)))
	require.NoError(t, store.Put(ctx, createTestInvoice("inv-2", "shopA", 2, 50)))
	require.NoError(t, store.Put(ctx, createTestInvoice("inv-3", "shopB", 3, 75)))

	all, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	shopA, err := store.ListForShop(ctx, "shopA")
	require.NoError(t, err)
	assert.Len(t, shopA, 2)

	shopB, err := store.ListForShop(ctx, "shopB")
	require.NoError(t, err)
	require.Len(t, shopB, 1)
	assert.Equal(t, "inv-3", shopB[0].ID)
}

func TestStorage_Put_Overwrite(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, createTestInvoice("inv-1", "shopA", 1, 100)))
	require.NoError(t, store.Put(ctx, createTestInvoice("inv-1", "shopA", 1, 120)))

	all, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, float64(120), all[0].Total)
}

func TestStorage_Put_MissingID(t *testing.T) {
	store := createTestStorage(t)

	err := store.Put(context.Background(), &models.Invoice{Shop: "shopA"})
	assert.ErrorIs(t, err, ErrMissingLocalID)
}

func TestStorage_Remove(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, createTestInvoice("inv-1", "shopA", 1, 100)))
	require.NoError(t, store.Remove(ctx, "inv-1"))

	all, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	// Удаление отсутствующей записи — no-op
	require.NoError(t, store.Remove(ctx, "inv-1"))
}

func TestStorage_RemoveWhere(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, createTestInvoice("inv-1", "shopA", 1, 100)))
	require.NoError(t, store.Put(ctx, createTestInvoice("inv-2", "shopA", 2, 50)))
	require.NoError(t, store.Put(ctx, createTestInvoice("inv-3", "shopB", 3, 75)))

	removed, err := store.RemoveWhere(ctx, func(inv *models.Invoice) bool {
		return inv.Shop == "shopA"
	})
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	all, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "inv-3", all[0].ID)
}
