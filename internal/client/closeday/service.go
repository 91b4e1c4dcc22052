// Package closeday implements the end-of-day rollup: the day's sales
// and expenses are archived into report collections and removed from
// the live ones, online in one atomic batch or offline through the
// durable queue.
package closeday

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dukkan-app/dukkan/internal/client/netstate"
	"github.com/dukkan-app/dukkan/internal/client/storage"
	"github.com/dukkan-app/dukkan/internal/models"
	"github.com/dukkan-app/dukkan/internal/remote"
)

// ErrNothingToClose is returned when the shop has no sales to roll up.
var ErrNothingToClose = errors.New("no sales to close")

// Result reports how the rollup was persisted. Offline means every
// mutation went through the queue and will reach the remote store on
// the next sync.
type Result struct {
	Report  *models.CloseDayReport
	Offline bool
}

// Service performs the close-day rollup.
type Service struct {
	remote remote.Store
	queue  storage.QueueStorage
	mirror storage.MirrorStorage
	net    *netstate.Monitor
	logger *slog.Logger
	now    func() time.Time
}

// NewService creates a close-day service.
func NewService(
	rs remote.Store,
	queue storage.QueueStorage,
	mirror storage.MirrorStorage,
	net *netstate.Monitor,
	logger *slog.Logger,
) *Service {
	return &Service{
		remote: rs,
		queue:  queue,
		mirror: mirror,
		net:    net,
		logger: logger,
		now:    time.Now,
	}
}

// Close rolls up one shop's day: every sale moves to the reports
// collection, the day's expenses are removed, the profit aggregate and
// the full history record are written. Mirror invoices included in the
// rollup are removed locally together with their pending queue
// operations. Online the remote mutations commit as one batch; on
// batch failure or offline they are enqueued.
func (s *Service) Close(ctx context.Context, shop, closedBy string) (*Result, error) {
	today := formatDay(s.now())

	sales, remoteIDs, err := s.collectSales(ctx, shop)
	if err != nil {
		return nil, err
	}
	if len(sales) == 0 {
		return nil, ErrNothingToClose
	}

	expenses, err := s.collectExpenses(ctx, shop, today)
	if err != nil {
		return nil, err
	}

	report := buildReport(shop, closedBy, today, s.now(), sales, expenses)

	profit := &models.DailyProfit{
		Shop:           shop,
		Date:           today,
		ClosedBy:       closedBy,
		CreatedAt:      s.now(),
		TotalSales:     report.TotalSales,
		TotalExpenses:  report.TotalExpenses,
		ReturnedProfit: report.ReturnedProfit,
	}

	offline := true
	if s.net.Online() {
		if err := s.commitBatch(ctx, report, profit, remoteIDs, today); err != nil {
			s.logger.Warn("close-day batch failed, queueing rollup", "shop", shop, "error", err)
		} else {
			offline = false
		}
	}
	if offline {
		if err := s.enqueueRollup(ctx, report, profit, remoteIDs, today); err != nil {
			return nil, fmt.Errorf("enqueue close-day rollup: %w", err)
		}
	}

	s.consumeQueuedSales(ctx, sales)
	s.cleanupMirror(ctx, sales)

	s.logger.Info("day closed",
		"shop", shop,
		"closed_by", closedBy,
		"sales", len(report.Sales),
		"total_sales", report.TotalSales,
		"offline", offline,
	)
	return &Result{Report: report, Offline: offline}, nil
}

// collectSales gathers the shop's live sales: remote documents plus
// mirror invoices not yet confirmed. The returned set tracks which
// sales have a remote document to delete.
func (s *Service) collectSales(ctx context.Context, shop string) ([]models.Invoice, map[string]struct{}, error) {
	var sales []models.Invoice
	remoteIDs := make(map[string]struct{})

	if s.net.Online() {
		docs, err := s.remote.QueryDocuments(ctx, models.CollectionDailySales, remote.Filter{"shop": shop})
		if err != nil {
			s.logger.Warn("remote sales query failed, closing with mirror only", "error", err)
		} else {
			for _, doc := range docs {
				var inv models.Invoice
				if err := json.Unmarshal(doc.Data, &inv); err != nil {
					return nil, nil, fmt.Errorf("decode sale %s: %w", doc.ID, err)
				}
				inv.ID = doc.ID
				sales = append(sales, inv)
				remoteIDs[doc.ID] = struct{}{}
			}
		}
	}

	mirrored, err := s.mirror.ListForShop(ctx, shop)
	if err != nil {
		return nil, nil, err
	}
	for _, inv := range mirrored {
		if _, ok := remoteIDs[inv.ID]; ok {
			continue
		}
		sales = append(sales, *inv)
	}
	return sales, remoteIDs, nil
}

// collectExpenses gathers the shop's expenses: remote records plus
// pending queued ones not yet synced, the latter marked Offline.
func (s *Service) collectExpenses(ctx context.Context, shop, today string) ([]models.Expense, error) {
	var expenses []models.Expense

	if s.net.Online() {
		docs, err := s.remote.QueryDocuments(ctx, models.CollectionExpenses, remote.Filter{"shop": shop})
		if err != nil {
			s.logger.Warn("remote expenses query failed, closing with queued only", "error", err)
		} else {
			for _, doc := range docs {
				var exp models.Expense
				if err := json.Unmarshal(doc.Data, &exp); err != nil {
					return nil, fmt.Errorf("decode expense %s: %w", doc.ID, err)
				}
				exp.ID = doc.ID
				expenses = append(expenses, exp)
			}
		}
	}

	pending, err := s.queue.Pending(ctx)
	if err != nil {
		return nil, err
	}
	for _, op := range pending {
		if op.Collection != models.CollectionExpenses || op.Action != models.ActionAdd {
			continue
		}
		var exp models.Expense
		if err := json.Unmarshal(op.Data, &exp); err != nil {
			continue
		}
		if exp.Shop != shop || exp.Date != today {
			continue
		}
		exp.ID = op.ID
		exp.Offline = true
		expenses = append(expenses, exp)
	}
	return expenses, nil
}

// commitBatch archives the day in one atomic remote batch.
func (s *Service) commitBatch(ctx context.Context, report *models.CloseDayReport, profit *models.DailyProfit, remoteIDs map[string]struct{}, today string) error {
	var writes []remote.BatchWrite

	for i := range report.Sales {
		sale := &report.Sales[i]
		data, err := json.Marshal(archivedSale(sale, report.ClosedBy, today))
		if err != nil {
			return err
		}
		writes = append(writes, remote.BatchWrite{
			Op:         remote.BatchAdd,
			Collection: models.CollectionReports,
			Data:       data,
		})
		if _, ok := remoteIDs[sale.ID]; ok {
			writes = append(writes, remote.BatchWrite{
				Op:         remote.BatchDelete,
				Collection: models.CollectionDailySales,
				DocID:      sale.ID,
			})
		}
	}

	for i := range report.Expenses {
		exp := &report.Expenses[i]
		if exp.Offline || exp.Date != today {
			continue
		}
		writes = append(writes, remote.BatchWrite{
			Op:         remote.BatchDelete,
			Collection: models.CollectionExpenses,
			DocID:      exp.ID,
		})
	}

	profitData, err := json.Marshal(profit)
	if err != nil {
		return err
	}
	writes = append(writes, remote.BatchWrite{
		Op:         remote.BatchAdd,
		Collection: models.CollectionDailyProfit,
		Data:       profitData,
	})

	reportData, err := json.Marshal(report)
	if err != nil {
		return err
	}
	writes = append(writes, remote.BatchWrite{
		Op:         remote.BatchAdd,
		Collection: models.CollectionCloseDayHistory,
		Data:       reportData,
	})

	return s.remote.ApplyBatch(ctx, writes)
}

// enqueueRollup queues the same mutations as commitBatch, one queue
// operation each, for the next sync pass.
func (s *Service) enqueueRollup(ctx context.Context, report *models.CloseDayReport, profit *models.DailyProfit, remoteIDs map[string]struct{}, today string) error {
	enqueue := func(op *models.QueueOperation) error {
		_, err := s.queue.Enqueue(ctx, op)
		return err
	}

	for i := range report.Sales {
		sale := &report.Sales[i]
		data, err := json.Marshal(archivedSale(sale, report.ClosedBy, today))
		if err != nil {
			return err
		}
		if err := enqueue(&models.QueueOperation{
			Collection: models.CollectionReports,
			Action:     models.ActionAdd,
			Data:       data,
		}); err != nil {
			return err
		}
		if _, ok := remoteIDs[sale.ID]; ok {
			if err := enqueue(&models.QueueOperation{
				Collection: models.CollectionDailySales,
				Action:     models.ActionDelete,
				DocID:      sale.ID,
			}); err != nil {
				return err
			}
		}
	}

	for i := range report.Expenses {
		exp := &report.Expenses[i]
		if exp.Offline || exp.Date != today {
			continue
		}
		if err := enqueue(&models.QueueOperation{
			Collection: models.CollectionExpenses,
			Action:     models.ActionDelete,
			DocID:      exp.ID,
		}); err != nil {
			return err
		}
	}

	profitData, err := json.Marshal(profit)
	if err != nil {
		return err
	}
	if err := enqueue(&models.QueueOperation{
		Collection: models.CollectionDailyProfit,
		Action:     models.ActionAdd,
		Data:       profitData,
	}); err != nil {
		return err
	}

	reportData, err := json.Marshal(report)
	if err != nil {
		return err
	}
	return enqueue(&models.QueueOperation{
		Collection: models.CollectionCloseDayHistory,
		Action:     models.ActionAdd,
		Data:       reportData,
	})
}

// consumeQueuedSales drops the pending dailySales add operations of
// invoices included in the rollup. The archive copy already carries the
// sale; replaying the add after reconnect would resurrect it in
// dailySales and the next close would count it a second time.
func (s *Service) consumeQueuedSales(ctx context.Context, sales []models.Invoice) {
	for i := range sales {
		qid := sales[i].QueueID
		if qid == "" {
			continue
		}
		err := s.queue.Dequeue(ctx, qid)
		if err != nil && !errors.Is(err, storage.ErrOperationNotFound) {
			s.logger.Warn("queued sale cleanup after close failed", "queue_id", qid, "error", err)
		}
	}
}

// cleanupMirror drops mirror invoices that were included in the rollup.
func (s *Service) cleanupMirror(ctx context.Context, sales []models.Invoice) {
	closed := make(map[string]struct{}, len(sales))
	for i := range sales {
		closed[sales[i].ID] = struct{}{}
	}
	removed, err := s.mirror.RemoveWhere(ctx, func(inv *models.Invoice) bool {
		_, ok := closed[inv.ID]
		return ok
	})
	if err != nil {
		s.logger.Warn("mirror cleanup after close failed", "error", err)
		return
	}
	if removed > 0 {
		s.logger.Debug("closed mirror invoices removed", "removed", removed)
	}
}

// buildReport computes the rollup totals. TotalExpenses is the running
// net over every expense on record; ReturnedProfit counts only today's
// return expenses.
func buildReport(shop, closedBy, today string, closedAt time.Time, sales []models.Invoice, expenses []models.Expense) *models.CloseDayReport {
	var totalSales, totalExpenses, returnedProfit float64
	for i := range sales {
		totalSales += sales[i].Total
	}
	for i := range expenses {
		totalExpenses += expenses[i].Amount
		if expenses[i].Date == today && expenses[i].Reason == models.ReasonReturnedInvoice {
			returnedProfit += expenses[i].Profit
		}
	}
	return &models.CloseDayReport{
		Shop:           shop,
		ClosedBy:       closedBy,
		ClosedAt:       today,
		ClosedAtTime:   closedAt,
		Sales:          sales,
		Expenses:       expenses,
		TotalSales:     totalSales,
		TotalExpenses:  totalExpenses,
		ReturnedProfit: returnedProfit,
	}
}

// archivedSale is the reports-collection form of a closed sale.
func archivedSale(sale *models.Invoice, closedBy, closedAt string) map[string]any {
	return map[string]any{
		"invoiceNumber": sale.InvoiceNumber,
		"date":          sale.Date,
		"shop":          sale.Shop,
		"employee":      sale.Employee,
		"clientName":    sale.ClientName,
		"phone":         sale.Phone,
		"cart":          sale.Cart,
		"total":         sale.Total,
		"profit":        sale.Profit,
		"discount":      sale.Discount,
		"closedBy":      closedBy,
		"closedAt":      closedAt,
	}
}

// formatDay renders the business day key in DD/MM/YYYY.
func formatDay(t time.Time) string {
	return t.Format("02/01/2006")
}
