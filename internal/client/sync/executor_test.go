package sync

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukkan-app/dukkan/internal/models"
	"github.com/dukkan-app/dukkan/internal/remote"
)

func TestExecute_Add(t *testing.T) {
	rs := &remote.StoreMock{
		AddDocumentFunc: func(ctx context.Context, collection string, data json.RawMessage) (string, error) {
			assert.Equal(t, models.CollectionDailySales, collection)
			return "remote-1", nil
		},
	}
	exec := NewExecutor(rs, testLogger())

	op := &models.QueueOperation{
		ID:         "op-1",
		Collection: models.CollectionDailySales,
		Action:     models.ActionAdd,
		Data:       json.RawMessage(`{"total":100}`),
	}
	require.NoError(t, exec.Execute(context.Background(), op))
	assert.Len(t, rs.AddDocumentCalls(), 1)
}

func TestExecute_Update(t *testing.T) {
	rs := &remote.StoreMock{
		UpdateDocumentFunc: func(ctx context.Context, collection, id string, patch json.RawMessage) error {
			assert.Equal(t, "doc-1", id)
			return nil
		},
	}
	exec := NewExecutor(rs, testLogger())

	op := &models.QueueOperation{
		ID:         "op-1",
		Collection: models.CollectionProducts,
		Action:     models.ActionUpdate,
		DocID:      "doc-1",
		Data:       json.RawMessage(`{"quantity":5}`),
	}
	require.NoError(t, exec.Execute(context.Background(), op))
}

func TestExecute_ValidationFailureIsNonRetryable(t *testing.T) {
	exec := NewExecutor(&remote.StoreMock{}, testLogger())

	tests := []struct {
		name string
		op   *models.QueueOperation
		want error
	}{
		{
			name: "add without data",
			op: &models.QueueOperation{
				ID:         "op-1",
				Collection: models.CollectionDailySales,
				Action:     models.ActionAdd,
			},
			want: models.ErrMissingData,
		},
		{
			name: "update without doc id",
			op: &models.QueueOperation{
				ID:         "op-2",
				Collection: models.CollectionProducts,
				Action:     models.ActionUpdate,
				Data:       json.RawMessage(`{}`),
			},
			want: models.ErrMissingDocID,
		},
		{
			name: "unknown action",
			op: &models.QueueOperation{
				ID:         "op-3",
				Collection: models.CollectionProducts,
				Action:     "upsert",
				Data:       json.RawMessage(`{}`),
				DocID:      "doc-1",
			},
			want: models.ErrUnknownAction,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := exec.Execute(context.Background(), tt.op)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.False(t, IsRetryable(err))
		})
	}
}

func TestExecute_UpdateNotFoundIsNonRetryable(t *testing.T) {
	rs := &remote.StoreMock{
		UpdateDocumentFunc: func(ctx context.Context, collection, id string, patch json.RawMessage) error {
			return remote.ErrNotFound
		},
	}
	exec := NewExecutor(rs, testLogger())

	op := &models.QueueOperation{
		ID:         "op-1",
		Collection: models.CollectionProducts,
		Action:     models.ActionUpdate,
		DocID:      "gone",
		Data:       json.RawMessage(`{}`),
	}
	err := exec.Execute(context.Background(), op)
	require.Error(t, err)
	assert.ErrorIs(t, err, remote.ErrNotFound)
	assert.False(t, IsRetryable(err))
}

func TestExecute_DeleteNotFoundIsIdempotent(t *testing.T) {
	rs := &remote.StoreMock{
		DeleteDocumentFunc: func(ctx context.Context, collection, id string) error {
			return remote.ErrNotFound
		},
	}
	exec := NewExecutor(rs, testLogger())

	op := &models.QueueOperation{
		ID:         "op-1",
		Collection: models.CollectionDailySales,
		Action:     models.ActionDelete,
		DocID:      "gone",
	}
	assert.NoError(t, exec.Execute(context.Background(), op))
}

func TestExecute_TransportErrorIsRetryable(t *testing.T) {
	rs := &remote.StoreMock{
		AddDocumentFunc: func(ctx context.Context, collection string, data json.RawMessage) (string, error) {
			return "", remote.NewTransportError("add", errors.New("dial tcp: timeout"))
		},
	}
	exec := NewExecutor(rs, testLogger())

	op := &models.QueueOperation{
		ID:         "op-1",
		Collection: models.CollectionDailySales,
		Action:     models.ActionAdd,
		Data:       json.RawMessage(`{}`),
	}
	err := exec.Execute(context.Background(), op)
	require.Error(t, err)
	assert.True(t, IsRetryable(err))
	assert.True(t, remote.IsTransport(err))
}
