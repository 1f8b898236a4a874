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

// CreateWorkflow inserts a new workflow, assigning it an id if one isn't
// already set, and stamping CreatedAt/UpdatedAt.
func (s *Store) CreateWorkflow(ctx context.Context, wf *schema.Workflow) error {
	if wf.ID == "" {
		wf.ID = uuid.New().String()
	}
	now := time.Now()
	wf.CreatedAt = now
	wf.UpdatedAt = now

	data, err := json.Marshal(wf)
	if err != nil {
		return fmt.Errorf("%w: marshaling workflow: %v", ErrStorageError, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO workflows (id, name, description, data, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, wf.ID, wf.Name, wf.Description, string(data), wf.CreatedAt, wf.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%w: inserting workflow %s: %v", ErrStorageError, wf.ID, err)
	}
	return nil
}

// UpdateWorkflow replaces an existing workflow's content and bumps
// UpdatedAt. Returns ErrNotFound if the id doesn't exist.
func (s *Store) UpdateWorkflow(ctx context.Context, wf *schema.Workflow) error {
	if wf.ID == "" {
		return fmt.Errorf("%w: workflow id is required", ErrStorageError)
	}
	wf.UpdatedAt = time.Now()

	data, err := json.Marshal(wf)
	if err != nil {
		return fmt.Errorf("%w: marshaling workflow: %v", ErrStorageError, err)
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE workflows SET name = ?, description = ?, data = ?, updated_at = ?
		WHERE id = ?
	`, wf.Name, wf.Description, string(data), wf.UpdatedAt, wf.ID)
	if err != nil {
		return fmt.Errorf("%w: updating workflow %s: %v", ErrStorageError, wf.ID, err)
	}
	return requireRowAffected(result, wf.ID)
}

// GetWorkflow loads a workflow by id.
func (s *Store) GetWorkflow(ctx context.Context, id string) (*schema.Workflow, error) {
	var data string
	err := s.db.QueryRowContext(ctx, `SELECT data FROM workflows WHERE id = ?`, id).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: workflow %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: loading workflow %s: %v", ErrStorageError, id, err)
	}

	var wf schema.Workflow
	if err := json.Unmarshal([]byte(data), &wf); err != nil {
		return nil, fmt.Errorf("%w: workflow %s: %v", ErrCorruptRecord, id, err)
	}
	return &wf, nil
}

// DeleteWorkflow removes a workflow by id.
func (s *Store) DeleteWorkflow(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM workflows WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("%w: deleting workflow %s: %v", ErrStorageError, id, err)
	}
	return requireRowAffected(result, id)
}

// ListWorkflows returns every stored workflow, ordered by most recently
// updated first.
func (s *Store) ListWorkflows(ctx context.Context) ([]*schema.Workflow, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT data FROM workflows ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("%w: listing workflows: %v", ErrStorageError, err)
	}
	defer rows.Close()

	var workflows []*schema.Workflow
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("%w: scanning workflow row: %v", ErrStorageError, err)
		}
		var wf schema.Workflow
		if err := json.Unmarshal([]byte(data), &wf); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorruptRecord, err)
		}
		workflows = append(workflows, &wf)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating workflow rows: %v", ErrStorageError, err)
	}
	return workflows, nil
}

// WorkflowExists reports whether a workflow id is present.
func (s *Store) WorkflowExists(ctx context.Context, id string) (bool, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM workflows WHERE id = ?`, id).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("%w: checking workflow %s: %v", ErrStorageError, id, err)
	}
	return count > 0, nil
}

func requireRowAffected(result sql.Result, id string) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: checking rows affected: %v", ErrStorageError, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}
