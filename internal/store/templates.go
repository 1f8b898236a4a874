package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/wovenflow/runtime/internal/schema"
)

// Template is a workflow saved for reuse, addressable by category for
// browsing a template library.
type Template struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Category    string          `json:"category,omitempty"`
	Workflow    schema.Workflow `json:"workflow"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// SaveTemplate inserts a new template, assigning it an id if one isn't
// already set.
func (s *Store) SaveTemplate(ctx context.Context, tpl *Template) error {
	if tpl.ID == "" {
		tpl.ID = uuid.New().String()
	}
	if tpl.CreatedAt.IsZero() {
		tpl.CreatedAt = time.Now()
	}

	data, err := json.Marshal(tpl)
	if err != nil {
		return fmt.Errorf("%w: marshaling template: %v", ErrStorageError, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO templates (id, name, description, category, data, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, tpl.ID, tpl.Name, tpl.Description, tpl.Category, string(data), tpl.CreatedAt)
	if err != nil {
		return fmt.Errorf("%w: inserting template %s: %v", ErrStorageError, tpl.ID, err)
	}
	return nil
}

// GetTemplate loads a template by id.
func (s *Store) GetTemplate(ctx context.Context, id string) (*Template, error) {
	var data string
	err := s.db.QueryRowContext(ctx, `SELECT data FROM templates WHERE id = ?`, id).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: template %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: loading template %s: %v", ErrStorageError, id, err)
	}

	var tpl Template
	if err := json.Unmarshal([]byte(data), &tpl); err != nil {
		return nil, fmt.Errorf("%w: template %s: %v", ErrCorruptRecord, id, err)
	}
	return &tpl, nil
}

// ListTemplates returns templates, optionally filtered by category
// (empty string lists all).
func (s *Store) ListTemplates(ctx context.Context, category string) ([]*Template, error) {
	query := `SELECT data FROM templates`
	args := []interface{}{}
	if category != "" {
		query += ` WHERE category = ?`
		args = append(args, category)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: listing templates: %v", ErrStorageError, err)
	}
	defer rows.Close()

	var templates []*Template
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("%w: scanning template row: %v", ErrStorageError, err)
		}
		var tpl Template
		if err := json.Unmarshal([]byte(data), &tpl); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorruptRecord, err)
		}
		templates = append(templates, &tpl)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating template rows: %v", ErrStorageError, err)
	}
	return templates, nil
}

// DeleteTemplate removes a template by id.
func (s *Store) DeleteTemplate(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM templates WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("%w: deleting template %s: %v", ErrStorageError, id, err)
	}
	return requireRowAffected(result, id)
}
