package sqlite

import (
	"context"

	"github.com/dukkan-app/dukkan/internal/remote"
)

type subscription struct {
	collection string
	filter     remote.Filter
	onChange   func([]remote.Document)
	onError    func(error)
}

// Subscribe registers a push listener for the filtered collection. The
// current matching result set is delivered immediately, then again
// after every committed mutation of the collection. Deliveries are
// synchronous with the mutating call.
func (s *Storage) Subscribe(ctx context.Context, collection string, filter remote.Filter, onChange func([]remote.Document), onError func(error)) (func(), error) {
	sub := &subscription{
		collection: collection,
		filter:     filter,
		onChange:   onChange,
		onError:    onError,
	}

	s.mu.Lock()
	id := s.next
	s.next++
	s.subs[id] = sub
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}

	// Начальный снимок
	s.deliver(ctx, sub)

	return cancel, nil
}

// notifyCollection pushes the fresh result set to every subscriber of
// the collection.
func (s *Storage) notifyCollection(ctx context.Context, collection string) {
	s.mu.Lock()
	var targets []*subscription
	for _, sub := range s.subs {
		if sub.collection == collection {
			targets = append(targets, sub)
		}
	}
	s.mu.Unlock()

	for _, sub := range targets {
		s.deliver(ctx, sub)
	}
}

func (s *Storage) deliver(ctx context.Context, sub *subscription) {
	docs, err := s.QueryDocuments(ctx, sub.collection, sub.filter)
	if err != nil {
		if sub.onError != nil {
			sub.onError(err)
		}
		return
	}
	sub.onChange(docs)
}
