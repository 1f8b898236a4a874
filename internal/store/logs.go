package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/wovenflow/runtime/internal/schema"
)

// AppendLog inserts one log line for an execution. Logs are append-only
// and live in their own table rather than the execution's JSON blob, so
// writing one doesn't require the execution's keyed mutex or a
// read-modify-write of the whole record.
func (s *Store) AppendLog(ctx context.Context, executionID string, line schema.LogLine) error {
	if line.Timestamp.IsZero() {
		line.Timestamp = time.Now()
	}

	var data []byte
	if line.Data != nil {
		var err error
		data, err = json.Marshal(line.Data)
		if err != nil {
			return fmt.Errorf("%w: marshaling log data: %v", ErrStorageError, err)
		}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO logs (execution_id, timestamp, severity, node_id, message, data)
		VALUES (?, ?, ?, ?, ?, ?)
	`, executionID, line.Timestamp, string(line.Severity), line.NodeID, line.Message, string(data))
	if err != nil {
		return fmt.Errorf("%w: appending log for execution %s: %v", ErrStorageError, executionID, err)
	}
	return nil
}

// ListLogs returns every log line recorded for an execution, oldest
// first.
func (s *Store) ListLogs(ctx context.Context, executionID string) ([]schema.LogLine, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT timestamp, severity, node_id, message, data
		FROM logs WHERE execution_id = ? ORDER BY id ASC
	`, executionID)
	if err != nil {
		return nil, fmt.Errorf("%w: listing logs for execution %s: %v", ErrStorageError, executionID, err)
	}
	defer rows.Close()

	var lines []schema.LogLine
	for rows.Next() {
		var (
			line     schema.LogLine
			severity string
			nodeID   sql.NullString
			data     sql.NullString
		)
		if err := rows.Scan(&line.Timestamp, &severity, &nodeID, &line.Message, &data); err != nil {
			return nil, fmt.Errorf("%w: scanning log row: %v", ErrStorageError, err)
		}
		line.Severity = schema.LogSeverity(severity)
		line.NodeID = nodeID.String
		if data.Valid && data.String != "" {
			if err := json.Unmarshal([]byte(data.String), &line.Data); err != nil {
				return nil, fmt.Errorf("%w: log data for execution %s: %v", ErrCorruptRecord, executionID, err)
			}
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating log rows: %v", ErrStorageError, err)
	}
	return lines, nil
}
