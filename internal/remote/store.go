// Package remote defines the narrow interface through which the sync
// engine consumes the remote document store. The production backend is
// an external collaborator; this package only fixes the contract and
// the error taxonomy the engine relies on.
package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
)

//go:generate moq -out store_mock.go . Store

// Batch write operation kinds
const (
	BatchAdd    = "add"
	BatchUpdate = "update"
	BatchDelete = "delete"
)

// Document is one record of a remote collection. The ID is assigned by
// the store; Data is the raw JSON body of the document.
type Document struct {
	ID   string
	Data json.RawMessage
}

// Filter selects documents by equality on top-level JSON fields.
// The reserved key "id" matches on the document id instead of a data
// field. A nil filter matches every document of the collection.
type Filter map[string]any

// Matches reports whether a document with the given id and body
// satisfies the filter. Filter values are normalized through a JSON
// round trip, so numeric types compare by value.
func (f Filter) Matches(id string, data json.RawMessage) bool {
	if len(f) == 0 {
		return true
	}
	var fields map[string]any
	if len(data) > 0 {
		if err := json.Unmarshal(data, &fields); err != nil {
			return false
		}
	}
	for key, want := range f {
		if key == "id" {
			if id != want {
				return false
			}
			continue
		}
		got, ok := fields[key]
		if !ok {
			return false
		}
		if !jsonEqual(got, want) {
			return false
		}
	}
	return true
}

func jsonEqual(got, want any) bool {
	raw, err := json.Marshal(want)
	if err != nil {
		return false
	}
	var normalized any
	if err := json.Unmarshal(raw, &normalized); err != nil {
		return false
	}
	return reflect.DeepEqual(got, normalized)
}

// BatchWrite is one mutation of an atomic multi-document batch.
type BatchWrite struct {
	Op         string
	Collection string
	DocID      string
	Data       json.RawMessage
}

// Store is the per-document CRUD surface of the remote document store,
// plus push-based change notification and an all-or-nothing batch.
type Store interface {
	// AddDocument creates a document and returns the server-assigned id.
	AddDocument(ctx context.Context, collection string, data json.RawMessage) (string, error)

	// UpdateDocument applies a patch to an existing document.
	// Returns ErrNotFound if the document does not exist.
	UpdateDocument(ctx context.Context, collection, id string, patch json.RawMessage) error

	// DeleteDocument removes a document.
	// Returns ErrNotFound if the document does not exist.
	DeleteDocument(ctx context.Context, collection, id string) error

	// QueryDocuments returns all documents of the collection matching
	// the filter.
	QueryDocuments(ctx context.Context, collection string, filter Filter) ([]Document, error)

	// Subscribe registers a push listener for the filtered collection.
	// onChange receives the full matching result set after every
	// committed mutation. The returned func cancels the subscription.
	Subscribe(ctx context.Context, collection string, filter Filter, onChange func([]Document), onError func(error)) (func(), error)

	// ApplyBatch commits all writes atomically: either every write is
	// applied or none is.
	ApplyBatch(ctx context.Context, writes []BatchWrite) error
}

// ErrNotFound indicates that the target document does not exist.
var ErrNotFound = errors.New("document not found")

// TransportError wraps a transport-level failure (remote unreachable,
// timeout). Transport errors are retryable; everything else is not.
type TransportError struct {
	Err error
	Op  string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error during %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// NewTransportError wraps err as a transport failure of the given op.
func NewTransportError(op string, err error) error {
	return &TransportError{Op: op, Err: err}
}

// IsTransport reports whether err is (or wraps) a transport failure.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
