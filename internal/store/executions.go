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

// CreateExecution inserts a new execution record, assigning it an id if
// one isn't already set.
func (s *Store) CreateExecution(ctx context.Context, exec *schema.Execution) error {
	if exec.ID == "" {
		exec.ID = uuid.New().String()
	}
	if exec.NodeStates == nil {
		exec.NodeStates = make(map[string]*schema.NodeState)
	}
	if exec.StartedAt.IsZero() {
		exec.StartedAt = time.Now()
	}

	data, err := json.Marshal(exec)
	if err != nil {
		return fmt.Errorf("%w: marshaling execution: %v", ErrStorageError, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO executions (id, workflow_id, status, data, started_at, completed_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, exec.ID, exec.WorkflowID, string(exec.Status), string(data), exec.StartedAt, exec.CompletedAt)
	if err != nil {
		return fmt.Errorf("%w: inserting execution %s: %v", ErrStorageError, exec.ID, err)
	}
	return nil
}

// GetExecution loads an execution by id.
func (s *Store) GetExecution(ctx context.Context, id string) (*schema.Execution, error) {
	var data string
	err := s.db.QueryRowContext(ctx, `SELECT data FROM executions WHERE id = ?`, id).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: execution %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: loading execution %s: %v", ErrStorageError, id, err)
	}

	var exec schema.Execution
	if err := json.Unmarshal([]byte(data), &exec); err != nil {
		return nil, fmt.Errorf("%w: execution %s: %v", ErrCorruptRecord, id, err)
	}
	return &exec, nil
}

// ListExecutionsForWorkflow returns every execution recorded against
// workflowID, most recently started first.
func (s *Store) ListExecutionsForWorkflow(ctx context.Context, workflowID string) ([]*schema.Execution, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT data FROM executions WHERE workflow_id = ? ORDER BY started_at DESC
	`, workflowID)
	if err != nil {
		return nil, fmt.Errorf("%w: listing executions for workflow %s: %v", ErrStorageError, workflowID, err)
	}
	defer rows.Close()

	var executions []*schema.Execution
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("%w: scanning execution row: %v", ErrStorageError, err)
		}
		var exec schema.Execution
		if err := json.Unmarshal([]byte(data), &exec); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorruptRecord, err)
		}
		executions = append(executions, &exec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating execution rows: %v", ErrStorageError, err)
	}
	return executions, nil
}

// UpdateExecutionStatus sets an execution's terminal status, output, and
// error, stamping CompletedAt.
func (s *Store) UpdateExecutionStatus(ctx context.Context, id string, status schema.ExecutionStatus, output interface{}, execErr string) error {
	mu := s.lockFor(id)
	mu.Lock()
	defer mu.Unlock()

	exec, err := s.GetExecution(ctx, id)
	if err != nil {
		return err
	}
	exec.Status = status
	exec.Output = output
	exec.Error = execErr
	now := time.Now()
	exec.CompletedAt = &now

	return s.replaceExecution(ctx, exec)
}

// UpdateExecutionNodeState sets the NodeState for a single node within an
// execution. The engine's event listener calls it for each node event; the
// per-execution keyed mutex makes the read-modify-write of NodeStates
// atomic, so concurrent calls for different nodes of one execution never
// lose one another's write, while distinct executions proceed independently.
func (s *Store) UpdateExecutionNodeState(ctx context.Context, executionID, nodeID string, state *schema.NodeState) error {
	mu := s.lockFor(executionID)
	mu.Lock()
	defer mu.Unlock()

	exec, err := s.GetExecution(ctx, executionID)
	if err != nil {
		return err
	}
	if exec.NodeStates == nil {
		exec.NodeStates = make(map[string]*schema.NodeState)
	}
	exec.NodeStates[nodeID] = state

	return s.replaceExecution(ctx, exec)
}

// replaceExecution overwrites an execution's stored row with the given
// in-memory value. Callers must hold that execution's keyed mutex when
// the call is part of a read-modify-write sequence.
func (s *Store) replaceExecution(ctx context.Context, exec *schema.Execution) error {
	data, err := json.Marshal(exec)
	if err != nil {
		return fmt.Errorf("%w: marshaling execution: %v", ErrStorageError, err)
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE executions SET status = ?, data = ?, completed_at = ?
		WHERE id = ?
	`, string(exec.Status), string(data), exec.CompletedAt, exec.ID)
	if err != nil {
		return fmt.Errorf("%w: updating execution %s: %v", ErrStorageError, exec.ID, err)
	}
	return requireRowAffected(result, exec.ID)
}
