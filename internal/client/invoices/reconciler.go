package invoices

import (
	"context"
	"encoding/json"

	"github.com/dukkan-app/dukkan/internal/models"
)

// ReconcileOperation removes the local mirror entry corresponding to a
// just-synced queue operation. Only invoice creations carry mirror
// entries; other collections and actions are ignored.
func (s *Service) ReconcileOperation(ctx context.Context, op *models.QueueOperation) (int, error) {
	if op.Collection != models.CollectionDailySales || op.Action != models.ActionAdd {
		return 0, nil
	}

	var inv models.Invoice
	if err := json.Unmarshal(op.Data, &inv); err != nil {
		// Повреждённые данные не должны блокировать синхронизацию
		s.logger.Warn("reconcile: undecodable operation payload", "op_id", op.ID, "error", err)
		return 0, nil
	}
	key := inv.Key()

	removed, err := s.mirror.RemoveWhere(ctx, func(m *models.Invoice) bool {
		return m.QueueID == op.ID || m.Key() == key
	})
	if err != nil {
		return 0, err
	}
	if removed > 0 {
		s.logger.Debug("reconciled mirror entries", "op_id", op.ID, "removed", removed)
	}
	return removed, nil
}

// ReconcileSynced sweeps the mirror against a batch of synced queue
// operations in one pass. It is the end-of-sync cleanup that catches
// entries missed by per-operation reconciliation, for example after a
// crash between marking an operation synced and removing its mirror row.
func (s *Service) ReconcileSynced(ctx context.Context, ops []*models.QueueOperation) (int, error) {
	ids := make(map[string]struct{})
	keys := make(map[models.InvoiceKey]struct{})
	for _, op := range ops {
		if op.Collection != models.CollectionDailySales || op.Action != models.ActionAdd || !op.Synced {
			continue
		}
		var inv models.Invoice
		if err := json.Unmarshal(op.Data, &inv); err != nil {
			continue
		}
		ids[op.ID] = struct{}{}
		keys[inv.Key()] = struct{}{}
	}
	if len(ids) == 0 {
		return 0, nil
	}

	return s.mirror.RemoveWhere(ctx, func(m *models.Invoice) bool {
		if _, ok := ids[m.QueueID]; ok {
			return true
		}
		_, ok := keys[m.Key()]
		return ok
	})
}
