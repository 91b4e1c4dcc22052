package invoices

import (
	"context"

	"github.com/dukkan-app/dukkan/internal/models"
	"github.com/dukkan-app/dukkan/internal/remote"
)

// Watch subscribes to a shop's invoices and delivers the merged view
// (remote documents plus unconfirmed mirror entries) on every remote
// push. Each push also sweeps the mirror, removing entries a remote
// counterpart now confirms. Remote subscription errors degrade to a
// one-time mirror-only view instead of an empty list.
//
// The returned func cancels the subscription.
func (s *Service) Watch(ctx context.Context, shop string, onChange func([]models.Invoice)) (func(), error) {
	deliver := func(remoteInvs []models.Invoice) {
		s.sweepMirror(ctx, remoteInvs)
		mirrored, err := s.mirror.ListForShop(ctx, shop)
		if err != nil {
			s.logger.Warn("mirror read failed during watch", "error", err)
		}
		merged, _ := Merge(remoteInvs, mirrored)
		onChange(merged)
	}

	cancel, err := s.remote.Subscribe(ctx, models.CollectionDailySales, remote.Filter{"shop": shop},
		func(docs []remote.Document) {
			remoteInvs, err := decodeInvoices(docs)
			if err != nil {
				s.logger.Warn("undecodable invoice in remote push", "error", err)
			}
			deliver(remoteInvs)
		},
		func(err error) {
			// При потере подписки показываем хотя бы локальное зеркало
			s.logger.Warn("invoice subscription error, serving mirror only", "error", err)
			mirrored, merr := s.mirror.ListForShop(ctx, shop)
			if merr != nil {
				s.logger.Warn("mirror read failed during watch", "error", merr)
				return
			}
			merged, _ := Merge(nil, mirrored)
			onChange(merged)
		},
	)
	if err != nil {
		return nil, err
	}
	return cancel, nil
}
