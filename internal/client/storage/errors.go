package storage

import "errors"

// Common client storage errors
var (
	// ErrOperationNotFound indicates that queue operation was not found
	ErrOperationNotFound = errors.New("queue operation not found")

	// ErrInvoiceNotFound indicates that mirror invoice was not found
	ErrInvoiceNotFound = errors.New("mirror invoice not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
