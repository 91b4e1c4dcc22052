package stock

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/dukkan-app/dukkan/internal/client/netstate"
	"github.com/dukkan-app/dukkan/internal/client/storage"
	"github.com/dukkan-app/dukkan/internal/models"
	"github.com/dukkan-app/dukkan/internal/remote"
)

// ErrMissingShop is returned when a stock restore carries no shop:
// guessing the shop would move stock to the wrong store.
var ErrMissingShop = errors.New("item has no shop")

// Service applies sale and return deltas to product stock. Online it
// prefers one atomic batch per cart; offline it serializes per-product
// fetch-modify-write cycles through the durable queue.
type Service struct {
	remote remote.Store
	queue  storage.QueueStorage
	net    *netstate.Monitor
	logger *slog.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewService creates a stock service.
func NewService(rs remote.Store, queue storage.QueueStorage, net *netstate.Monitor, logger *slog.Logger) *Service {
	return &Service{
		remote: rs,
		queue:  queue,
		net:    net,
		logger: logger,
		locks:  make(map[string]*sync.Mutex),
	}
}

// ApplySaleDelta decrements stock for every cart item carrying a
// product reference. Items without one are skipped. Online the whole
// cart is committed as one batch; if the batch fails, or when offline,
// each item goes through the per-item path and individual failures do
// not stop the rest of the cart.
func (s *Service) ApplySaleDelta(ctx context.Context, items []models.CartItem) error {
	tracked := make([]models.CartItem, 0, len(items))
	for _, item := range items {
		if item.ProductID != "" {
			tracked = append(tracked, item)
		}
	}
	if len(tracked) == 0 {
		return nil
	}

	if s.net.Online() {
		err := s.applyBatch(ctx, tracked)
		if err == nil {
			return nil
		}
		s.logger.Warn("batch stock update failed, falling back to per-item", "error", err)
	}

	var errs []error
	for i := range tracked {
		if err := s.applyItem(ctx, &tracked[i]); err != nil {
			s.logger.Warn("stock update failed for item",
				"product_id", tracked[i].ProductID,
				"code", tracked[i].Code,
				"error", err)
			errs = append(errs, fmt.Errorf("item %s: %w", tracked[i].Code, err))
		}
	}
	return errors.Join(errs...)
}

// applyBatch fetches every referenced product concurrently, folds all
// cart deltas into per-product final states and commits them in one
// atomic batch.
func (s *Service) applyBatch(ctx context.Context, items []models.CartItem) error {
	ids := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for i := range items {
		if _, ok := seen[items[i].ProductID]; ok {
			continue
		}
		seen[items[i].ProductID] = struct{}{}
		ids = append(ids, items[i].ProductID)
	}

	var mu sync.Mutex
	products := make(map[string]*models.Product, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	for _, id := range ids {
		g.Go(func() error {
			p, err := s.fetchProduct(gctx, id)
			if err != nil {
				return err
			}
			if p == nil {
				return nil
			}
			mu.Lock()
			products[id] = p
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("fetch products: %w", err)
	}

	// Дельты применяются последовательно: две позиции одного товара
	// видят результат друг друга
	deleted := make(map[string]struct{})
	for i := range items {
		item := &items[i]
		p, ok := products[item.ProductID]
		if !ok {
			s.logger.Debug("product missing, skipping stock delta", "product_id", item.ProductID)
			continue
		}
		updated, del := deduct(p, item)
		if del {
			delete(products, item.ProductID)
			deleted[item.ProductID] = struct{}{}
			continue
		}
		products[item.ProductID] = updated
	}

	writes := make([]remote.BatchWrite, 0, len(products)+len(deleted))
	for id := range deleted {
		writes = append(writes, remote.BatchWrite{
			Op:         remote.BatchDelete,
			Collection: models.CollectionProducts,
			DocID:      id,
		})
	}
	for id, p := range products {
		data, err := json.Marshal(p)
		if err != nil {
			return fmt.Errorf("marshal product %s: %w", id, err)
		}
		writes = append(writes, remote.BatchWrite{
			Op:         remote.BatchUpdate,
			Collection: models.CollectionProducts,
			DocID:      id,
			Data:       data,
		})
	}
	if len(writes) == 0 {
		return nil
	}
	return s.remote.ApplyBatch(ctx, writes)
}

// applyItem runs one fetch-modify-write cycle for a single item,
// serialized per product so concurrent offline sales of the same
// product never interleave between fetch and write.
func (s *Service) applyItem(ctx context.Context, item *models.CartItem) error {
	unlock := s.lockProduct(item.ProductID)
	defer unlock()

	p, err := s.fetchProduct(ctx, item.ProductID)
	if err != nil {
		return err
	}
	if p == nil {
		s.logger.Debug("product missing, skipping stock delta", "product_id", item.ProductID)
		return nil
	}

	updated, del := deduct(p, item)
	if del {
		return s.writeDelete(ctx, p.ID)
	}
	data, err := json.Marshal(updated)
	if err != nil {
		return err
	}
	return s.writeUpdate(ctx, p.ID, data)
}

// RestoreStock puts a returned item back on the shelf. The product is
// located by reference first, then by code within the item's shop; if
// it no longer exists a fresh record is created. Items without a shop
// fail fast.
func (s *Service) RestoreStock(ctx context.Context, item *models.CartItem) error {
	if item.Shop == "" {
		return ErrMissingShop
	}

	unlock := s.lockProduct(restoreLockKey(item))
	defer unlock()

	p, err := s.findProduct(ctx, item)
	if err != nil {
		return err
	}

	if p == nil {
		created := productFromItem(item)
		data, err := json.Marshal(created)
		if err != nil {
			return err
		}
		if err := s.writeAdd(ctx, data); err != nil {
			return err
		}
		s.logger.Info("product recreated for return",
			"code", item.Code,
			"shop", item.Shop,
			"quantity", item.Quantity)
		return nil
	}

	updated := restore(p, item)
	data, err := json.Marshal(updated)
	if err != nil {
		return err
	}
	if err := s.writeUpdate(ctx, p.ID, data); err != nil {
		return err
	}
	s.logger.Info("stock restored",
		"code", item.Code,
		"shop", item.Shop,
		"quantity", item.Quantity)
	return nil
}

// ResolveReference fills item.ProductID from the stock record matching
// the item's code within its shop, when one exists. Items sold through
// the product picker already carry a reference; this serves entry by
// bare code.
func (s *Service) ResolveReference(ctx context.Context, item *models.CartItem) error {
	if item.ProductID != "" || item.Code == "" || item.Shop == "" {
		return nil
	}
	docs, err := s.remote.QueryDocuments(ctx, models.CollectionProducts, remote.Filter{
		"code": item.Code,
		"shop": item.Shop,
	})
	if err != nil {
		return err
	}
	if len(docs) > 0 {
		item.ProductID = docs[0].ID
	}
	return nil
}

// findProduct locates the stock record a return targets: by direct
// reference when the item carries one, otherwise by code within the
// item's shop.
func (s *Service) findProduct(ctx context.Context, item *models.CartItem) (*models.Product, error) {
	if item.ProductID != "" {
		p, err := s.fetchProduct(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		if p != nil {
			return p, nil
		}
	}
	docs, err := s.remote.QueryDocuments(ctx, models.CollectionProducts, remote.Filter{
		"code": item.Code,
		"shop": item.Shop,
	})
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, nil
	}
	return decodeProduct(docs[0])
}

func (s *Service) fetchProduct(ctx context.Context, id string) (*models.Product, error) {
	docs, err := s.remote.QueryDocuments(ctx, models.CollectionProducts, remote.Filter{"id": id})
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, nil
	}
	return decodeProduct(docs[0])
}

// lockProduct serializes writers of one product. Locks are never
// removed from the map; the product set of a shop is small and stable.
func (s *Service) lockProduct(key string) func() {
	s.mu.Lock()
	l, ok := s.locks[key]
	if !ok {
		l = &sync.Mutex{}
		s.locks[key] = l
	}
	s.mu.Unlock()
	l.Lock()
	return l.Unlock
}

func restoreLockKey(item *models.CartItem) string {
	if item.ProductID != "" {
		return item.ProductID
	}
	return item.Shop + "/" + item.Code
}

func (s *Service) writeAdd(ctx context.Context, data json.RawMessage) error {
	if s.net.Online() {
		_, err := s.remote.AddDocument(ctx, models.CollectionProducts, data)
		if err == nil || !remote.IsTransport(err) {
			return err
		}
		s.logger.Warn("direct product add failed, queueing", "error", err)
	}
	_, err := s.queue.Enqueue(ctx, &models.QueueOperation{
		Collection: models.CollectionProducts,
		Action:     models.ActionAdd,
		Data:       data,
	})
	return err
}

func (s *Service) writeUpdate(ctx context.Context, id string, data json.RawMessage) error {
	if s.net.Online() {
		err := s.remote.UpdateDocument(ctx, models.CollectionProducts, id, data)
		if err == nil || !remote.IsTransport(err) {
			return err
		}
		s.logger.Warn("direct product update failed, queueing", "product_id", id, "error", err)
	}
	_, err := s.queue.Enqueue(ctx, &models.QueueOperation{
		Collection: models.CollectionProducts,
		Action:     models.ActionUpdate,
		DocID:      id,
		Data:       data,
	})
	return err
}

func (s *Service) writeDelete(ctx context.Context, id string) error {
	if s.net.Online() {
		err := s.remote.DeleteDocument(ctx, models.CollectionProducts, id)
		if err == nil || errors.Is(err, remote.ErrNotFound) {
			return nil
		}
		if !remote.IsTransport(err) {
			return err
		}
		s.logger.Warn("direct product delete failed, queueing", "product_id", id, "error", err)
	}
	_, err := s.queue.Enqueue(ctx, &models.QueueOperation{
		Collection: models.CollectionProducts,
		Action:     models.ActionDelete,
		DocID:      id,
	})
	return err
}

func decodeProduct(doc remote.Document) (*models.Product, error) {
	var p models.Product
	if err := json.Unmarshal(doc.Data, &p); err != nil {
		return nil, fmt.Errorf("decode product %s: %w", doc.ID, err)
	}
	p.ID = doc.ID
	return &p, nil
}
