// Package logging provides structured logging capabilities for the workflow engine.
//
// # Overview
//
// The logging package wraps log/slog. A Logger carries fields attached with
// its With* methods, each of which returns a new Logger, and logs messages
// with Debug, Info, Warn and Error or their formatting variants (Debugf,
// Infof, Warnf, Errorf).
//
// # Features
//
//   - Structured logging: JSON (default) or slog's key=value text format
//   - Log levels: DEBUG, INFO, WARN, ERROR
//   - Context fields: WithWorkflowID, WithExecutionID, WithNodeID, WithNodeType
//   - Logger propagation through context.Context (WithContext, FromContext)
//   - Level filtering: messages below the configured level are discarded
//   - Thread-safe: Safe for concurrent use
//   - Flexible output: Write to any io.Writer
//
// # Log Levels
//
// The package supports standard log levels:
//
//   - DEBUG: Detailed diagnostic information
//   - INFO: General informational messages
//   - WARN: Warning messages for potential issues
//   - ERROR: Error messages for failures
//
// Config.Level takes "debug", "info", "warn" (or "warning") or "error"; any
// other value, including "", selects info.
//
// # Basic Usage
//
//	import "github.com/wovenflow/runtime/internal/logging"
//
//	// Create logger
//	logger := logging.New(logging.Config{
//	    Level:  "info",
//	    Output: os.Stdout,
//	})
//
//	// Log messages
//	logger.WithFields(map[string]interface{}{
//	    "workflow_id": "wf-123",
//	    "node_count":  42,
//	}).Info("Workflow started")
//
//	logger.WithError(err).WithNodeID("node-5").Error("Execution failed")
//
// # Context Integration
//
// WithContext stores the logger in a context and FromContext retrieves it,
// returning a new logger built from DefaultConfig when the context holds
// none. No fields are read from the context itself:
//
//	ctx = logger.WithExecutionID("exec-456").WithContext(ctx)
//	logging.FromContext(ctx).WithNodeType(schema.NodeTypeHTTP).Info("Node executing")
//
// # Structured Fields
//
// Fields are attached before the message is logged:
//
//	logger.WithFields(map[string]interface{}{
//	    "method":      "GET",
//	    "url":         "https://api.example.com",
//	    "status":      200,
//	    "duration_ms": 145,
//	}).Info("HTTP request completed")
//
// # Output Formats
//
// JSON format (Pretty false, the default), written by slog's JSON handler:
//
//	{"time":"2024-01-15T10:30:00Z","level":"INFO","msg":"Workflow started","workflow_id":"wf-123","execution_id":"exec-456"}
//
// Text format (Pretty true), written by slog's text handler:
//
//	time=2024-01-15T10:30:00.000Z level=INFO msg="Workflow started" workflow_id=wf-123 execution_id=exec-456
//
// # Configuration
//
// Logger configuration options:
//
//	config := logging.Config{
//	    Level:         "debug",   // Minimum level to log
//	    Output:        os.Stdout, // Where to write logs (nil means os.Stdout)
//	    Pretty:        false,     // true selects the text format
//	    IncludeCaller: true,      // Include the source file:line
//	}
//
// # Performance Considerations
//
//   - Messages below the configured level are dropped by slog's level check
//   - Output is not buffered: each entry is written to Output as it is logged
//
// # Common Logging Patterns
//
// Workflow execution:
//
//	logger.WithWorkflowID(workflow.ID).
//	    WithField("node_count", len(workflow.Nodes)).
//	    Info("Workflow execution started")
//
// Node execution:
//
//	logger.WithNodeID(node.ID).WithNodeType(node.Type).
//	    WithField("inputs", inputs).
//	    Debug("Node executing")
//
// Error logging:
//
//	logger.WithNodeID(node.ID).WithError(err).
//	    Error("Node execution failed")
//
// Performance metrics:
//
//	logger.WithWorkflowID(workflow.ID).WithFields(map[string]interface{}{
//	    "duration_ms":    elapsed.Milliseconds(),
//	    "nodes_executed": count,
//	}).Info("Workflow completed")
//
// # Integration with Observability
//
// This package has no observer adapter. internal/observer's ConsoleObserver
// logs through its own observer.Logger interface, whose methods take a field
// map; *Logger does not implement that interface.
//
// # Best Practices
//
//   - Use structured fields instead of string formatting
//   - Include execution context (workflow_id, node_id, etc.)
//   - Log at appropriate levels (avoid debug in production)
//   - Add timing information for performance analysis
//   - Include error context (not just error message)
//   - Use consistent field names across the codebase
//
// # Thread Safety
//
// All logger operations are thread-safe and can be used concurrently
// from multiple goroutines without additional synchronization.
//
// # Testing
//
// For testing, use a logger with a buffer:
//
//	buf := &bytes.Buffer{}
//	logger := logging.New(logging.Config{
//	    Level:  "info",
//	    Output: buf,
//	})
//
//	// Execute code
//	// Verify log output
//	assert.Contains(t, buf.String(), "expected message")
package logging
