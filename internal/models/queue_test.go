package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueueOperation_Validate(t *testing.T) {
	tests := []struct {
		name    string
		op      QueueOperation
		wantErr error
	}{
		{
			name: "valid add",
			op:   QueueOperation{Action: ActionAdd, Collection: CollectionDailySales, Data: json.RawMessage(`{}`)},
		},
		{
			name:    "add without data",
			op:      QueueOperation{Action: ActionAdd, Collection: CollectionDailySales},
			wantErr: ErrMissingData,
		},
		{
			name: "valid update",
			op:   QueueOperation{Action: ActionUpdate, Collection: CollectionProducts, DocID: "d-1", Data: json.RawMessage(`{}`)},
		},
		{
			name:    "update without doc id",
			op:      QueueOperation{Action: ActionUpdate, Collection: CollectionProducts, Data: json.RawMessage(`{}`)},
			wantErr: ErrMissingDocID,
		},
		{
			name:    "update without data",
			op:      QueueOperation{Action: ActionUpdate, Collection: CollectionProducts, DocID: "d-1"},
			wantErr: ErrMissingData,
		},
		{
			name: "valid delete",
			op:   QueueOperation{Action: ActionDelete, Collection: CollectionDailySales, DocID: "d-1"},
		},
		{
			name:    "delete without doc id",
			op:      QueueOperation{Action: ActionDelete, Collection: CollectionDailySales},
			wantErr: ErrMissingDocID,
		},
		{
			name:    "unknown action",
			op:      QueueOperation{Action: "upsert", Collection: CollectionDailySales, DocID: "d-1", Data: json.RawMessage(`{}`)},
			wantErr: ErrUnknownAction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.op.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestQueueOperation_Abandoned(t *testing.T) {
	op := QueueOperation{Retries: MaxRetries - 1}
	assert.False(t, op.Abandoned())

	op.Retries = MaxRetries
	assert.True(t, op.Abandoned())
}

func TestQueueOperation_WireFormat(t *testing.T) {
	op := QueueOperation{
		ID:         "op-1",
		Collection: CollectionDailySales,
		Action:     ActionAdd,
		Data:       json.RawMessage(`{"total":100}`),
	}

	data, err := json.Marshal(op)
	assert.NoError(t, err)
	assert.Contains(t, string(data), `"collectionName":"dailySales"`)
	assert.Contains(t, string(data), `"synced":false`)
	assert.NotContains(t, string(data), "syncedAt")
}
