package models

import (
	"encoding/json"
	"errors"
	"time"
)

// Queue operation actions
const (
	ActionAdd    = "add"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// MaxRetries is the retry ceiling for a queued operation. An operation
// that fails this many consecutive executions is abandoned and removed
// from the queue.
const MaxRetries = 5

// Queue operation validation errors
var (
	ErrMissingData   = errors.New("data is required for this operation")
	ErrMissingDocID  = errors.New("docId is required for this operation")
	ErrUnknownAction = errors.New("unknown queue operation action")
)

// QueueOperation describes one pending remote mutation. Operations are
// appended to the durable queue when a write cannot be confirmed
// remotely and replayed in FIFO order once connectivity returns.
type QueueOperation struct {
	Timestamp  time.Time       `json:"timestamp"`          // Timestamp время создания операции (задаёт порядок FIFO)
	SyncedAt   *time.Time      `json:"syncedAt,omitempty"` // SyncedAt время успешной синхронизации
	ID         string          `json:"id"`                 // ID уникальный идентификатор операции (UUID)
	Collection string          `json:"collectionName"`     // Collection имя коллекции в удалённом хранилище
	Action     string          `json:"action"`             // Action тип операции: "add", "update", "delete"
	DocID      string          `json:"docId,omitempty"`    // DocID идентификатор целевого документа (update/delete)
	Data       json.RawMessage `json:"data,omitempty"`     // Data полезная нагрузка операции (add/update)
	Retries    int             `json:"retries"`            // Retries количество неудачных попыток выполнения
	Synced     bool            `json:"synced"`             // Synced флаг успешной синхронизации
}

// Validate checks the action/payload invariants: add requires data,
// update requires docId and data, delete requires docId.
func (op *QueueOperation) Validate() error {
	switch op.Action {
	case ActionAdd:
		if len(op.Data) == 0 {
			return ErrMissingData
		}
	case ActionUpdate:
		if op.DocID == "" {
			return ErrMissingDocID
		}
		if len(op.Data) == 0 {
			return ErrMissingData
		}
	case ActionDelete:
		if op.DocID == "" {
			return ErrMissingDocID
		}
	default:
		return ErrUnknownAction
	}
	return nil
}

// Abandoned reports whether the operation exceeded the retry ceiling.
func (op *QueueOperation) Abandoned() bool {
	return op.Retries >= MaxRetries
}
