package invoices

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dukkan-app/dukkan/internal/models"
)

func TestMerge_RemoteOnly(t *testing.T) {
	remoteInvs := []models.Invoice{
		{ID: "r1", InvoiceNumber: 10, Shop: "main", Total: 100},
		{ID: "r2", InvoiceNumber: 12, Shop: "main", Total: 50},
	}

	merged, confirmed := Merge(remoteInvs, nil)

	assert.Len(t, merged, 2)
	assert.Empty(t, confirmed)
	assert.Equal(t, int64(12), merged[0].InvoiceNumber)
	assert.Equal(t, int64(10), merged[1].InvoiceNumber)
}

func TestMerge_UnconfirmedMirrorIncluded(t *testing.T) {
	remoteInvs := []models.Invoice{
		{ID: "r1", InvoiceNumber: 10, Shop: "main", Total: 100},
	}
	mirrorInvs := []*models.Invoice{
		{ID: "temp-q1", QueueID: "q1", InvoiceNumber: 11, Shop: "main", Total: 70},
	}

	merged, confirmed := Merge(remoteInvs, mirrorInvs)

	assert.Len(t, merged, 2)
	assert.Empty(t, confirmed)
	assert.Equal(t, "temp-q1", merged[0].ID)
}

func TestMerge_ConfirmedByBusinessKey(t *testing.T) {
	// Зеркальная копия и удалённый документ — одна и та же продажа
	remoteInvs := []models.Invoice{
		{ID: "r1", InvoiceNumber: 10, Shop: "main", Total: 100},
	}
	mirrorInvs := []*models.Invoice{
		{ID: "temp-q1", QueueID: "q1", InvoiceNumber: 10, Shop: "main", Total: 100},
	}

	merged, confirmed := Merge(remoteInvs, mirrorInvs)

	assert.Len(t, merged, 1)
	assert.Equal(t, "r1", merged[0].ID)
	assert.Len(t, confirmed, 1)
	assert.Equal(t, "temp-q1", confirmed[0].ID)
}

func TestMerge_SameNumberDifferentShopKept(t *testing.T) {
	remoteInvs := []models.Invoice{
		{ID: "r1", InvoiceNumber: 10, Shop: "main", Total: 100},
	}
	mirrorInvs := []*models.Invoice{
		{ID: "temp-q1", InvoiceNumber: 10, Shop: "branch", Total: 100},
	}

	merged, confirmed := Merge(remoteInvs, mirrorInvs)

	assert.Len(t, merged, 2)
	assert.Empty(t, confirmed)
}

func TestMerge_ConfirmedByID(t *testing.T) {
	remoteInvs := []models.Invoice{
		{ID: "r1", InvoiceNumber: 10, Shop: "main", Total: 100},
	}
	mirrorInvs := []*models.Invoice{
		{ID: "r1", InvoiceNumber: 99, Shop: "other", Total: 1},
	}

	merged, confirmed := Merge(remoteInvs, mirrorInvs)

	assert.Len(t, merged, 1)
	assert.Len(t, confirmed, 1)
}
