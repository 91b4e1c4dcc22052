package storage

import "context"

//go:generate moq -out counter_mock.go . CounterStorage

// CounterStorage persists the local authoritative invoice counter.
// The remote copy of the counter is advisory; this one decides the
// numbers actually issued.
type CounterStorage interface {
	// NextInvoiceNumber atomically increments the counter and returns
	// the new value. The increment persists before returning.
	NextInvoiceNumber(ctx context.Context) (int64, error)

	// LastInvoiceNumber returns the last issued number, 0 if none.
	LastInvoiceNumber(ctx context.Context) (int64, error)

	// SeedInvoiceNumber raises the counter to at least n. Used to
	// reseed a fresh session from the remote advisory copy; never
	// lowers the counter.
	SeedInvoiceNumber(ctx context.Context, n int64) error
}
