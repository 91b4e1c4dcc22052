// Package invoices implements sale creation with offline fallback, the
// local-mirror reconciler and the merged invoice views consumed by the
// UI layer.
package invoices

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

// defaultEmployee is recorded when the operator name is unknown.
const defaultEmployee = "غير محدد"

// counterDocName identifies the shared invoice counter document inside
// the counters collection.
const counterDocName = "invoiceCounter"

var (
	// ErrEmptyCart is returned when a sale is created with no items.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrInvoiceNotFound is returned when no invoice matches the query.
	ErrInvoiceNotFound = errors.New("invoice not found")
	// ErrItemNotInInvoice is returned when a return targets a cart line
	// the invoice does not contain.
	ErrItemNotInInvoice = errors.New("item not found in invoice")
	// ErrReturnQuantity is returned when a return exceeds the sold quantity.
	ErrReturnQuantity = errors.New("return quantity exceeds sold quantity")
)

// ClientData carries the customer fields of a new sale.
type ClientData struct {
	Name          string
	Phone         string
	DiscountNotes string
	Discount      float64
}

// CreateResult reports how a sale was persisted. When Offline is true
// the invoice lives in the local mirror and QueueID references the
// pending queue operation that will create the remote document.
type CreateResult struct {
	Invoice *models.Invoice
	QueueID string
	Offline bool
}

// Service coordinates invoice writes between the remote store, the
// durable queue and the local mirror.
type Service struct {
	remote  remote.Store
	queue   storage.QueueStorage
	mirror  storage.MirrorStorage
	counter storage.CounterStorage
	net     *netstate.Monitor
	logger  *slog.Logger
	now     func() time.Time
}

// NewService creates an invoice service.
func NewService(
	rs remote.Store,
	queue storage.QueueStorage,
	mirror storage.MirrorStorage,
	counter storage.CounterStorage,
	net *netstate.Monitor,
	logger *slog.Logger,
) *Service {
	return &Service{
		remote:  rs,
		queue:   queue,
		mirror:  mirror,
		counter: counter,
		net:     net,
		logger:  logger,
		now:     time.Now,
	}
}

// Create records a sale. Online it writes the invoice directly to the
// remote store; offline, or when the direct write fails, it enqueues
// the creation and keeps a mirror copy so the sale stays visible.
// Either way the caller gets a complete invoice back immediately.
func (s *Service) Create(ctx context.Context, shop, employee string, cart []models.CartItem, client ClientData) (*CreateResult, error) {
	if len(cart) == 0 {
		return nil, ErrEmptyCart
	}

	number, err := s.NextNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("allocate invoice number: %w", err)
	}

	if employee == "" {
		employee = defaultEmployee
	}
	inv := models.Invoice{
		InvoiceNumber: number,
		Date:          s.now(),
		Shop:          shop,
		Employee:      employee,
		ClientName:    client.Name,
		Phone:         client.Phone,
		Discount:      client.Discount,
		DiscountNotes: client.DiscountNotes,
		Cart:          cart,
		Total:         models.Subtotal(cart),
		Profit:        models.Profit(cart),
	}

	data, err := json.Marshal(inv)
	if err != nil {
		return nil, fmt.Errorf("marshal invoice: %w", err)
	}

	if s.net.Online() {
		id, err := s.remote.AddDocument(ctx, models.CollectionDailySales, data)
		if err == nil {
			inv.ID = id
			s.logger.Info("invoice created",
				"invoice_number", inv.InvoiceNumber,
				"shop", shop,
				"total", inv.Total,
			)
			return &CreateResult{Invoice: &inv}, nil
		}
		// Прямая запись не удалась — переходим в офлайн-режим
		s.logger.Warn("direct invoice write failed, queueing", "error", err)
	}

	op := &models.QueueOperation{
		Collection: models.CollectionDailySales,
		Action:     models.ActionAdd,
		Data:       data,
	}
	queueID, err := s.queue.Enqueue(ctx, op)
	if err != nil {
		return nil, fmt.Errorf("enqueue invoice: %w", err)
	}

	inv.ID = "temp-" + queueID
	inv.QueueID = queueID
	if err := s.mirror.Put(ctx, &inv); err != nil {
		return nil, fmt.Errorf("mirror invoice: %w", err)
	}

	s.logger.Info("invoice queued offline",
		"invoice_number", inv.InvoiceNumber,
		"shop", shop,
		"queue_id", queueID,
	)
	return &CreateResult{Invoice: &inv, QueueID: queueID, Offline: true}, nil
}

// NextNumber allocates the next invoice number from the local
// monotonic counter and mirrors it to the remote counter document on a
// best-effort basis. Remote failures never block number allocation.
func (s *Service) NextNumber(ctx context.Context) (int64, error) {
	n, err := s.counter.NextInvoiceNumber(ctx)
	if err != nil {
		return 0, err
	}
	if s.net.Online() {
		if err := s.mirrorCounter(ctx, n); err != nil {
			s.logger.Warn("remote counter mirror failed", "error", err)
		}
	}
	return n, nil
}

// ReseedCounter raises the local invoice counter to the remote value
// if the remote one is ahead. Called on startup so a reinstalled
// client does not reuse numbers. Offline it is a no-op.
func (s *Service) ReseedCounter(ctx context.Context) error {
	if !s.net.Online() {
		return nil
	}
	docs, err := s.remote.QueryDocuments(ctx, models.CollectionCounters, remote.Filter{"name": counterDocName})
	if err != nil {
		return fmt.Errorf("query remote counter: %w", err)
	}
	if len(docs) == 0 {
		return nil
	}
	var doc struct {
		LastInvoiceNumber int64 `json:"lastInvoiceNumber"`
	}
	if err := json.Unmarshal(docs[0].Data, &doc); err != nil {
		return fmt.Errorf("decode remote counter: %w", err)
	}
	return s.counter.SeedInvoiceNumber(ctx, doc.LastInvoiceNumber)
}

func (s *Service) mirrorCounter(ctx context.Context, n int64) error {
	payload, err := json.Marshal(map[string]any{
		"name":              counterDocName,
		"lastInvoiceNumber": n,
	})
	if err != nil {
		return err
	}
	docs, err := s.remote.QueryDocuments(ctx, models.CollectionCounters, remote.Filter{"name": counterDocName})
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		_, err = s.remote.AddDocument(ctx, models.CollectionCounters, payload)
		return err
	}
	return s.remote.UpdateDocument(ctx, models.CollectionCounters, docs[0].ID, payload)
}

// GetByNumber finds an invoice by its number, preferring the remote
// store and falling back to the local mirror when the remote is
// unreachable or has no match.
func (s *Service) GetByNumber(ctx context.Context, number int64) (*models.Invoice, error) {
	if s.net.Online() {
		docs, err := s.remote.QueryDocuments(ctx, models.CollectionDailySales, remote.Filter{"invoiceNumber": number})
		if err != nil {
			s.logger.Warn("remote invoice lookup failed, using mirror", "error", err)
		} else if len(docs) > 0 {
			inv, err := decodeInvoice(docs[0])
			if err != nil {
				return nil, err
			}
			return inv, nil
		}
	}

	mirrored, err := s.mirror.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, inv := range mirrored {
		if inv.InvoiceNumber == number {
			return inv, nil
		}
	}
	return nil, ErrInvoiceNotFound
}

// ReturnItem removes quantity of one cart line from a remote invoice,
// shrinking the line or dropping it, and recomputes the invoice total
// and profit. When the last line is removed the invoice document is
// deleted. The second return value is the returned line with its
// original details and the returned quantity, for stock restoration.
func (s *Service) ReturnItem(ctx context.Context, invoiceID string, code, color, size string, quantity int) (*models.Invoice, *models.CartItem, error) {
	docs, err := s.remote.QueryDocuments(ctx, models.CollectionDailySales, remote.Filter{"id": invoiceID})
	if err != nil {
		return nil, nil, fmt.Errorf("fetch invoice: %w", err)
	}
	if len(docs) == 0 {
		return nil, nil, ErrInvoiceNotFound
	}
	inv, err := decodeInvoice(docs[0])
	if err != nil {
		return nil, nil, err
	}

	idx := -1
	for i := range inv.Cart {
		line := &inv.Cart[i]
		if line.Code == code && line.Color == color && line.Size == size {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, nil, ErrItemNotInInvoice
	}
	if quantity <= 0 || quantity > inv.Cart[idx].Quantity {
		return nil, nil, ErrReturnQuantity
	}

	returned := inv.Cart[idx]
	returned.Quantity = quantity
	if returned.Shop == "" {
		returned.Shop = inv.Shop
	}

	if inv.Cart[idx].Quantity == quantity {
		inv.Cart = append(inv.Cart[:idx], inv.Cart[idx+1:]...)
	} else {
		inv.Cart[idx].Quantity -= quantity
	}

	if len(inv.Cart) == 0 {
		if err := s.writeDelete(ctx, models.CollectionDailySales, inv.ID); err != nil {
			return nil, nil, fmt.Errorf("delete emptied invoice: %w", err)
		}
		s.logger.Info("invoice fully returned", "invoice_number", inv.InvoiceNumber)
		inv.Total = 0
		inv.Profit = 0
		return inv, &returned, nil
	}

	inv.Total = models.Subtotal(inv.Cart)
	inv.Profit = models.Profit(inv.Cart)
	patch, err := json.Marshal(map[string]any{
		"cart":   inv.Cart,
		"total":  inv.Total,
		"profit": inv.Profit,
	})
	if err != nil {
		return nil, nil, err
	}
	if err := s.writeUpdate(ctx, models.CollectionDailySales, inv.ID, patch); err != nil {
		return nil, nil, fmt.Errorf("update invoice: %w", err)
	}
	s.logger.Info("item returned",
		"invoice_number", inv.InvoiceNumber,
		"code", code,
		"quantity", quantity,
	)
	return inv, &returned, nil
}

// ListForShop returns the merged view of a shop's invoices: remote
// documents plus unconfirmed mirror entries, sorted by invoice number
// descending. Mirror entries confirmed by a remote counterpart are
// removed along the way. When the remote query fails the mirror-only
// view is returned.
func (s *Service) ListForShop(ctx context.Context, shop string) ([]models.Invoice, error) {
	mirrored, err := s.mirror.ListForShop(ctx, shop)
	if err != nil {
		return nil, err
	}

	if !s.net.Online() {
		merged, _ := Merge(nil, mirrored)
		return merged, nil
	}

	docs, err := s.remote.QueryDocuments(ctx, models.CollectionDailySales, remote.Filter{"shop": shop})
	if err != nil {
		s.logger.Warn("remote invoice query failed, using mirror only", "error", err)
		merged, _ := Merge(nil, mirrored)
		return merged, nil
	}

	remoteInvs, err := decodeInvoices(docs)
	if err != nil {
		s.logger.Warn("undecodable invoices skipped", "error", err)
	}
	s.sweepMirror(ctx, remoteInvs)

	merged, _ := Merge(remoteInvs, mirrored)
	return merged, nil
}

// sweepMirror removes every mirror entry whose business key appears in
// the remote snapshot, across all shops. This is the store-wide
// cleanup that runs whenever a fresh remote view arrives.
func (s *Service) sweepMirror(ctx context.Context, remoteInvs []models.Invoice) {
	if len(remoteInvs) == 0 {
		return
	}
	keys := make(map[models.InvoiceKey]struct{}, len(remoteInvs))
	ids := make(map[string]struct{}, len(remoteInvs))
	for i := range remoteInvs {
		keys[remoteInvs[i].Key()] = struct{}{}
		ids[remoteInvs[i].ID] = struct{}{}
	}
	removed, err := s.mirror.RemoveWhere(ctx, func(m *models.Invoice) bool {
		if _, ok := ids[m.ID]; ok {
			return true
		}
		_, ok := keys[m.Key()]
		return ok
	})
	if err != nil {
		s.logger.Warn("mirror sweep failed", "error", err)
		return
	}
	if removed > 0 {
		s.logger.Debug("mirror entries confirmed remotely", "removed", removed)
	}
}

// writeUpdate patches a remote document directly when online, falling
// back to the durable queue when offline or when the direct write fails.
func (s *Service) writeUpdate(ctx context.Context, collection, id string, patch json.RawMessage) error {
	if s.net.Online() {
		err := s.remote.UpdateDocument(ctx, collection, id, patch)
		if err == nil || !remote.IsTransport(err) {
			return err
		}
		s.logger.Warn("direct update failed, queueing", "collection", collection, "error", err)
	}
	_, err := s.queue.Enqueue(ctx, &models.QueueOperation{
		Collection: collection,
		Action:     models.ActionUpdate,
		DocID:      id,
		Data:       patch,
	})
	return err
}

// writeDelete removes a remote document with the same offline fallback
// as writeUpdate.
func (s *Service) writeDelete(ctx context.Context, collection, id string) error {
	if s.net.Online() {
		err := s.remote.DeleteDocument(ctx, collection, id)
		if err == nil || errors.Is(err, remote.ErrNotFound) {
			return nil
		}
		if !remote.IsTransport(err) {
			return err
		}
		s.logger.Warn("direct delete failed, queueing", "collection", collection, "error", err)
	}
	_, err := s.queue.Enqueue(ctx, &models.QueueOperation{
		Collection: collection,
		Action:     models.ActionDelete,
		DocID:      id,
	})
	return err
}

func decodeInvoice(doc remote.Document) (*models.Invoice, error) {
	var inv models.Invoice
	if err := json.Unmarshal(doc.Data, &inv); err != nil {
		return nil, fmt.Errorf("decode invoice %s: %w", doc.ID, err)
	}
	inv.ID = doc.ID
	return &inv, nil
}

// decodeInvoices decodes a remote snapshot. Documents that fail to
// parse are skipped and reported in the joined error: one corrupt
// record must not hide the rest of the view.
func decodeInvoices(docs []remote.Document) ([]models.Invoice, error) {
	out := make([]models.Invoice, 0, len(docs))
	var errs []error
	for _, doc := range docs {
		inv, err := decodeInvoice(doc)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		out = append(out, *inv)
	}
	return out, errors.Join(errs...)
}
