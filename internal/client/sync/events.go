package sync

// EventType identifies a state change the presentation layer may want
// to react to without polling.
type EventType string

// Event types emitted by the sync service
const (
	// EventSyncCompleted fires after every sync pass, carrying the summary.
	EventSyncCompleted EventType = "sync_completed"

	// EventQueueDrained fires when a pass leaves no pending operations.
	EventQueueDrained EventType = "queue_drained"

	// EventRecordReconciled fires when a mirror record was removed
	// because its remote counterpart is confirmed.
	EventRecordReconciled EventType = "record_reconciled"
)

// Event is delivered to subscribers registered with Subscribe.
type Event struct {
	Result *Result
	OpID   string
	Type   EventType
}
