package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dukkan-app/dukkan/internal/remote"
)

// AddDocument creates a document with a generated id and returns it.
func (s *Storage) AddDocument(ctx context.Context, collection string, data json.RawMessage) (string, error) {
	id := uuid.New().String()

	query := `
		INSERT INTO documents (collection, id, data, updated_at)
		VALUES (?, ?, ?, ?)
	`
	_, err := s.db.ExecContext(ctx, query, collection, id, string(data), time.Now().Unix())
	if err != nil {
		return "", remote.NewTransportError("add", err)
	}

	s.notifyCollection(ctx, collection)
	return id, nil
}

// UpdateDocument applies a shallow merge of patch onto the existing
// document body: top-level fields of the patch overwrite existing ones,
// unmentioned fields are kept.
func (s *Storage) UpdateDocument(ctx context.Context, collection, id string, patch json.RawMessage) error {
	existing, err := s.getDocument(ctx, collection, id)
	if err != nil {
		return err
	}

	merged, err := mergePatch(existing.Data, patch)
	if err != nil {
		return fmt.Errorf("merge patch for %s/%s: %w", collection, id, err)
	}

	query := `
		UPDATE documents
		SET data = ?, updated_at = ?
		WHERE collection = ? AND id = ?
	`
	_, err = s.db.ExecContext(ctx, query, string(merged), time.Now().Unix(), collection, id)
	if err != nil {
		return remote.NewTransportError("update", err)
	}

	s.notifyCollection(ctx, collection)
	return nil
}

// DeleteDocument removes a document.
// Returns remote.ErrNotFound if the document does not exist.
func (s *Storage) DeleteDocument(ctx context.Context, collection, id string) error {
	query := `DELETE FROM documents WHERE collection = ? AND id = ?`

	result, err := s.db.ExecContext(ctx, query, collection, id)
	if err != nil {
		return remote.NewTransportError("delete", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return remote.ErrNotFound
	}

	s.notifyCollection(ctx, collection)
	return nil
}

// QueryDocuments returns all documents of the collection matching the
// filter, oldest first.
func (s *Storage) QueryDocuments(ctx context.Context, collection string, filter remote.Filter) ([]remote.Document, error) {
	query := `
		SELECT id, data
		FROM documents
		WHERE collection = ?
		ORDER BY updated_at ASC, id ASC
	`

	rows, err := s.db.QueryContext(ctx, query, collection)
	if err != nil {
		return nil, remote.NewTransportError("query", err)
	}
	defer rows.Close()

	var docs []remote.Document
	for rows.Next() {
		var id, data string
		if err := rows.Scan(&id, &data); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		doc := remote.Document{ID: id, Data: json.RawMessage(data)}
		// Фильтрация по JSON-полям выполняется в Go: документы без схемы
		if !filter.Matches(doc.ID, doc.Data) {
			continue
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return docs, nil
}

// ApplyBatch commits all writes in a single transaction: either every
// write is applied or none is.
func (s *Storage) ApplyBatch(ctx context.Context, writes []remote.BatchWrite) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return remote.NewTransportError("batch", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback после commit — no-op

	now := time.Now().Unix()
	for _, w := range writes {
		switch w.Op {
		case remote.BatchAdd:
			id := w.DocID
			if id == "" {
				id = uuid.New().String()
			}
			_, err = tx.ExecContext(ctx,
				`INSERT INTO documents (collection, id, data, updated_at) VALUES (?, ?, ?, ?)`,
				w.Collection, id, string(w.Data), now)
			if err != nil {
				return fmt.Errorf("batch add %s: %w", w.Collection, err)
			}

		case remote.BatchUpdate:
			var data string
			err = tx.QueryRowContext(ctx,
				`SELECT data FROM documents WHERE collection = ? AND id = ?`,
				w.Collection, w.DocID).Scan(&data)
			if errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("batch update %s/%s: %w", w.Collection, w.DocID, remote.ErrNotFound)
			}
			if err != nil {
				return fmt.Errorf("batch update %s/%s: %w", w.Collection, w.DocID, err)
			}
			merged, err := mergePatch(json.RawMessage(data), w.Data)
			if err != nil {
				return fmt.Errorf("batch update %s/%s: %w", w.Collection, w.DocID, err)
			}
			_, err = tx.ExecContext(ctx,
				`UPDATE documents SET data = ?, updated_at = ? WHERE collection = ? AND id = ?`,
				string(merged), now, w.Collection, w.DocID)
			if err != nil {
				return fmt.Errorf("batch update %s/%s: %w", w.Collection, w.DocID, err)
			}

		case remote.BatchDelete:
			res, err := tx.ExecContext(ctx,
				`DELETE FROM documents WHERE collection = ? AND id = ?`,
				w.Collection, w.DocID)
			if err != nil {
				return fmt.Errorf("batch delete %s/%s: %w", w.Collection, w.DocID, err)
			}
			rows, err := res.RowsAffected()
			if err != nil {
				return fmt.Errorf("failed to get rows affected: %w", err)
			}
			if rows == 0 {
				return fmt.Errorf("batch delete %s/%s: %w", w.Collection, w.DocID, remote.ErrNotFound)
			}

		default:
			return fmt.Errorf("unknown batch op %q", w.Op)
		}
	}

	if err := tx.Commit(); err != nil {
		return remote.NewTransportError("batch", err)
	}

	// Уведомляем каждую затронутую коллекцию один раз
	seen := make(map[string]struct{})
	for _, w := range writes {
		if _, ok := seen[w.Collection]; ok {
			continue
		}
		seen[w.Collection] = struct{}{}
		s.notifyCollection(ctx, w.Collection)
	}
	return nil
}

func (s *Storage) getDocument(ctx context.Context, collection, id string) (*remote.Document, error) {
	query := `SELECT data FROM documents WHERE collection = ? AND id = ?`

	var data string
	err := s.db.QueryRowContext(ctx, query, collection, id).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, remote.ErrNotFound
		}
		return nil, remote.NewTransportError("get", err)
	}
	return &remote.Document{ID: id, Data: json.RawMessage(data)}, nil
}

// mergePatch overlays patch fields onto the existing document body.
func mergePatch(existing, patch json.RawMessage) (json.RawMessage, error) {
	var base map[string]any
	if err := json.Unmarshal(existing, &base); err != nil {
		return nil, err
	}
	var overlay map[string]any
	if err := json.Unmarshal(patch, &overlay); err != nil {
		return nil, err
	}
	for k, v := range overlay {
		base[k] = v
	}
	return json.Marshal(base)
}
