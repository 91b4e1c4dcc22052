package invoices

import (
	"sort"

	"github.com/dukkan-app/dukkan/internal/models"
)

// Merge combines remote-confirmed invoices with local mirror entries,
// deduplicating by remote id and by business key. Every remote invoice
// appears in the result; a mirror invoice appears only if no remote
// counterpart matches it. Matched mirror entries are returned as
// confirmed so the caller can remove them from the mirror.
//
// Matching on the business key alone is sufficient: mirror and remote
// copies of the same sale are never concurrently edited, so no version
// numbers are needed. The key-based match also catches entries synced
// in an earlier session whose queue link is gone.
func Merge(remoteInvoices []models.Invoice, mirrorInvoices []*models.Invoice) (merged []models.Invoice, confirmed []*models.Invoice) {
	remoteIDs := make(map[string]struct{}, len(remoteInvoices))
	remoteKeys := make(map[models.InvoiceKey]struct{}, len(remoteInvoices))
	for i := range remoteInvoices {
		remoteIDs[remoteInvoices[i].ID] = struct{}{}
		remoteKeys[remoteInvoices[i].Key()] = struct{}{}
	}

	merged = make([]models.Invoice, 0, len(remoteInvoices)+len(mirrorInvoices))
	merged = append(merged, remoteInvoices...)

	for _, inv := range mirrorInvoices {
		if _, ok := remoteIDs[inv.ID]; ok {
			confirmed = append(confirmed, inv)
			continue
		}
		if _, ok := remoteKeys[inv.Key()]; ok {
			confirmed = append(confirmed, inv)
			continue
		}
		merged = append(merged, *inv)
	}

	// Сортировка по номеру фактуры (по убыванию) для стабильного отображения
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].InvoiceNumber > merged[j].InvoiceNumber
	})

	return merged, confirmed
}
