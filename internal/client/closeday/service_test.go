package closeday

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukkan-app/dukkan/internal/client/netstate"
	"github.com/dukkan-app/dukkan/internal/client/storage"
	"github.com/dukkan-app/dukkan/internal/models"
	"github.com/dukkan-app/dukkan/internal/remote"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func onlineMonitor(online bool) *netstate.Monitor {
	return netstate.NewMonitor(online)
}

var fixedNow = time.Date(2025, 3, 15, 22, 0, 0, 0, time.UTC)

const fixedToday = "15/03/2025"

func emptyMirror() *storage.MirrorStorageMock {
	return &storage.MirrorStorageMock{
		ListForShopFunc: func(ctx context.Context, shop string) ([]*models.Invoice, error) {
			return nil, nil
		},
		RemoveWhereFunc: func(ctx context.Context, match func(*models.Invoice) bool) (int, error) {
			return 0, nil
		},
	}
}

func emptyQueue() *storage.QueueStorageMock {
	return &storage.QueueStorageMock{
		PendingFunc: func(ctx context.Context) ([]*models.QueueOperation, error) {
			return nil, nil
		},
	}
}

func storeWithDay(t *testing.T, sales []models.Invoice, expenses []models.Expense) *remote.StoreMock {
	t.Helper()
	return &remote.StoreMock{
		QueryDocumentsFunc: func(ctx context.Context, collection string, filter remote.Filter) ([]remote.Document, error) {
			switch collection {
			case models.CollectionDailySales:
				var docs []remote.Document
				for i := range sales {
					data, err := json.Marshal(sales[i])
					require.NoError(t, err)
					docs = append(docs, remote.Document{ID: sales[i].ID, Data: data})
				}
				return docs, nil
			case models.CollectionExpenses:
				var docs []remote.Document
				for i := range expenses {
					data, err := json.Marshal(expenses[i])
					require.NoError(t, err)
					docs = append(docs, remote.Document{ID: expenses[i].ID, Data: data})
				}
				return docs, nil
			}
			return nil, nil
		},
	}
}

func TestClose_OnlineBatch(t *testing.T) {
	sales := []models.Invoice{
		{ID: "r-1", InvoiceNumber: 1, Shop: "main", Total: 100, Profit: 40},
		{ID: "r-2", InvoiceNumber: 2, Shop: "main", Total: 50, Profit: 10},
	}
	expenses := []models.Expense{
		{ID: "e-1", Shop: "main", Date: fixedToday, Reason: "كهرباء", Amount: 30},
		{ID: "e-2", Shop: "main", Date: "14/03/2025", Reason: "إيجار", Amount: 200},
		{ID: "e-3", Shop: "main", Date: fixedToday, Reason: models.ReasonReturnedInvoice, Amount: 20, Profit: 8},
	}

	rs := storeWithDay(t, sales, expenses)
	var batch []remote.BatchWrite
	rs.ApplyBatchFunc = func(ctx context.Context, writes []remote.BatchWrite) error {
		batch = writes
		return nil
	}

	svc := NewService(rs, emptyQueue(), emptyMirror(), onlineMonitor(true), testLogger())
	svc.now = func() time.Time { return fixedNow }

	res, err := svc.Close(context.Background(), "main", "sara")
	require.NoError(t, err)

	assert.False(t, res.Offline)
	assert.InDelta(t, 150.0, res.Report.TotalSales, 1e-9)
	assert.InDelta(t, 250.0, res.Report.TotalExpenses, 1e-9) // все расходы, не только сегодняшние
	assert.InDelta(t, 8.0, res.Report.ReturnedProfit, 1e-9)
	assert.Equal(t, fixedToday, res.Report.ClosedAt)

	counts := map[string]int{}
	for _, w := range batch {
		counts[w.Op+":"+w.Collection]++
	}
	assert.Equal(t, 2, counts[remote.BatchAdd+":"+models.CollectionReports])
	assert.Equal(t, 2, counts[remote.BatchDelete+":"+models.CollectionDailySales])
	// Удаляются только сегодняшние подтверждённые расходы
	assert.Equal(t, 2, counts[remote.BatchDelete+":"+models.CollectionExpenses])
	assert.Equal(t, 1, counts[remote.BatchAdd+":"+models.CollectionDailyProfit])
	assert.Equal(t, 1, counts[remote.BatchAdd+":"+models.CollectionCloseDayHistory])
}

func TestClose_IncludesMirrorSales(t *testing.T) {
	sales := []models.Invoice{{ID: "r-1", InvoiceNumber: 1, Shop: "main", Total: 100}}
	rs := storeWithDay(t, sales, nil)
	var batch []remote.BatchWrite
	rs.ApplyBatchFunc = func(ctx context.Context, writes []remote.BatchWrite) error {
		batch = writes
		return nil
	}

	mirrorInv := &models.Invoice{ID: "temp-q1", QueueID: "q1", InvoiceNumber: 2, Shop: "main", Total: 70}
	removed := 0
	mirror := &storage.MirrorStorageMock{
		ListForShopFunc: func(ctx context.Context, shop string) ([]*models.Invoice, error) {
			return []*models.Invoice{mirrorInv}, nil
		},
		RemoveWhereFunc: func(ctx context.Context, match func(*models.Invoice) bool) (int, error) {
			if match(mirrorInv) {
				removed++
			}
			return removed, nil
		},
	}

	var dequeued []string
	queue := emptyQueue()
	queue.DequeueFunc = func(ctx context.Context, id string) error {
		dequeued = append(dequeued, id)
		return nil
	}

	svc := NewService(rs, queue, mirror, onlineMonitor(true), testLogger())
	svc.now = func() time.Time { return fixedNow }

	res, err := svc.Close(context.Background(), "main", "sara")
	require.NoError(t, err)

	assert.Len(t, res.Report.Sales, 2)
	assert.InDelta(t, 170.0, res.Report.TotalSales, 1e-9)
	assert.Equal(t, 1, removed) // зеркальная копия убрана после закрытия
	// Отложенная операция добавления продажи снята: архив уже содержит её
	assert.Equal(t, []string{"q1"}, dequeued)

	// Для зеркальной продажи нет удаления из dailySales — документа ещё нет
	deletes := 0
	for _, w := range batch {
		if w.Op == remote.BatchDelete && w.Collection == models.CollectionDailySales {
			deletes++
			assert.Equal(t, "r-1", w.DocID)
		}
	}
	assert.Equal(t, 1, deletes)
}

func TestClose_IncludesQueuedExpenses(t *testing.T) {
	sales := []models.Invoice{{ID: "r-1", InvoiceNumber: 1, Shop: "main", Total: 100}}
	rs := storeWithDay(t, sales, nil)
	var batch []remote.BatchWrite
	rs.ApplyBatchFunc = func(ctx context.Context, writes []remote.BatchWrite) error {
		batch = writes
		return nil
	}

	queuedExp := models.Expense{Shop: "main", Date: fixedToday, Reason: "شحن", Amount: 15}
	expData, err := json.Marshal(queuedExp)
	require.NoError(t, err)
	queue := &storage.QueueStorageMock{
		PendingFunc: func(ctx context.Context) ([]*models.QueueOperation, error) {
			return []*models.QueueOperation{{
				ID:         "q-exp",
				Collection: models.CollectionExpenses,
				Action:     models.ActionAdd,
				Data:       expData,
			}}, nil
		},
	}

	svc := NewService(rs, queue, emptyMirror(), onlineMonitor(true), testLogger())
	svc.now = func() time.Time { return fixedNow }

	res, err := svc.Close(context.Background(), "main", "sara")
	require.NoError(t, err)

	require.Len(t, res.Report.Expenses, 1)
	assert.True(t, res.Report.Expenses[0].Offline)
	assert.InDelta(t, 15.0, res.Report.TotalExpenses, 1e-9)

	// Неподтверждённый расход не удаляется из удалённой коллекции
	for _, w := range batch {
		assert.NotEqual(t, models.CollectionExpenses, w.Collection)
	}
}

func TestClose_NothingToClose(t *testing.T) {
	rs := storeWithDay(t, nil, nil)
	svc := NewService(rs, emptyQueue(), emptyMirror(), onlineMonitor(true), testLogger())

	_, err := svc.Close(context.Background(), "main", "sara")
	assert.ErrorIs(t, err, ErrNothingToClose)
}

func TestClose_BatchFailureQueuesRollup(t *testing.T) {
	sales := []models.Invoice{{ID: "r-1", InvoiceNumber: 1, Shop: "main", Total: 100}}
	rs := storeWithDay(t, sales, nil)
	rs.ApplyBatchFunc = func(ctx context.Context, writes []remote.BatchWrite) error {
		return remote.NewTransportError("batch", errors.New("unavailable"))
	}

	var enqueued []*models.QueueOperation
	queue := emptyQueue()
	queue.EnqueueFunc = func(ctx context.Context, op *models.QueueOperation) (string, error) {
		enqueued = append(enqueued, op)
		return op.ID, nil
	}

	svc := NewService(rs, queue, emptyMirror(), onlineMonitor(true), testLogger())
	svc.now = func() time.Time { return fixedNow }

	res, err := svc.Close(context.Background(), "main", "sara")
	require.NoError(t, err)
	assert.True(t, res.Offline)

	// report add + sale delete + profit + history
	require.Len(t, enqueued, 4)
	var collections []string
	for _, op := range enqueued {
		collections = append(collections, op.Collection)
	}
	assert.ElementsMatch(t, []string{
		models.CollectionReports,
		models.CollectionDailySales,
		models.CollectionDailyProfit,
		models.CollectionCloseDayHistory,
	}, collections)
}

func TestClose_OfflineQueuesMirrorSales(t *testing.T) {
	rs := &remote.StoreMock{}
	mirrorInv := &models.Invoice{ID: "temp-q1", QueueID: "q1", InvoiceNumber: 2, Shop: "main", Total: 70}
	mirror := &storage.MirrorStorageMock{
		ListForShopFunc: func(ctx context.Context, shop string) ([]*models.Invoice, error) {
			return []*models.Invoice{mirrorInv}, nil
		},
		RemoveWhereFunc: func(ctx context.Context, match func(*models.Invoice) bool) (int, error) {
			return 1, nil
		},
	}
	var enqueued []*models.QueueOperation
	var dequeued []string
	queue := emptyQueue()
	queue.EnqueueFunc = func(ctx context.Context, op *models.QueueOperation) (string, error) {
		enqueued = append(enqueued, op)
		return op.ID, nil
	}
	queue.DequeueFunc = func(ctx context.Context, id string) error {
		dequeued = append(dequeued, id)
		return nil
	}

	svc := NewService(rs, queue, mirror, onlineMonitor(false), testLogger())
	svc.now = func() time.Time { return fixedNow }

	res, err := svc.Close(context.Background(), "main", "sara")
	require.NoError(t, err)
	assert.True(t, res.Offline)
	assert.Empty(t, rs.QueryDocumentsCalls()) // офлайн — удалённый стор не опрашивается

	// report add + profit + history (удаления dailySales нет — документа нет)
	require.Len(t, enqueued, 3)

	// Операция добавления закрытой продажи снята с очереди: после
	// синхронизации она не воскреснет в dailySales и не попадёт в
	// следующий отчёт второй раз
	assert.Equal(t, []string{"q1"}, dequeued)
	for _, op := range enqueued {
		assert.NotEqual(t, models.CollectionDailySales, op.Collection)
	}
}
