package engine

import (
	"context"
	"time"

	"github.com/wovenflow/runtime/internal/logging"
	"github.com/wovenflow/runtime/internal/observer"
	"github.com/wovenflow/runtime/internal/runner"
	"github.com/wovenflow/runtime/internal/schema"
)

// listenerFor returns a runner.Listener that forwards every event to the
// external sink (if any), writes the terminal/per-node state through to
// the Store, and notifies any registered observers. Storage errors here
// are logged and suppressed per spec: they must never abort the
// in-memory execution the Runner is still driving.
func (e *Engine) listenerFor(executionID, workflowID string) runner.Listener {
	log := e.logger.WithExecutionID(executionID)
	return func(evt runner.Event) {
		if e.sink != nil {
			if err := e.sink.Publish(evt); err != nil {
				log.WithError(err).Warn("event sink publish failed")
			}
		}
		if e.observerMgr.HasObservers() && evt.Type != runner.EventLog {
			e.observerMgr.Notify(context.Background(), translateToObserverEvent(evt, workflowID))
		}
		e.persist(context.Background(), log, evt)
	}
}

// translateToObserverEvent maps the six-event runner taxonomy onto the
// observer package's richer workflow/node lifecycle shape.
func translateToObserverEvent(evt runner.Event, workflowID string) observer.Event {
	out := observer.Event{
		ExecutionID: evt.ExecutionID,
		WorkflowID:  workflowID,
		Timestamp:   evt.Timestamp,
	}
	if nodeID, ok := evt.Data["nodeId"].(string); ok {
		out.NodeID = nodeID
	}
	if kind, ok := evt.Data["kind"].(string); ok {
		out.NodeType = schema.NodeType(kind)
	}

	switch evt.Type {
	case runner.EventNodeStart:
		out.Type, out.Status = observer.EventNodeStart, observer.StatusStarted
	case runner.EventNodeComplete:
		out.Type, out.Status = observer.EventNodeSuccess, observer.StatusSuccess
		out.Result = evt.Data["output"]
	case runner.EventNodeError:
		out.Type, out.Status = observer.EventNodeFailure, observer.StatusFailure
		if msg, ok := evt.Data["error"].(string); ok {
			out.Metadata = map[string]interface{}{"error": msg}
		}
	case runner.EventExecutionComplete:
		out.Type, out.Status = observer.EventWorkflowEnd, observer.StatusCompleted
		out.Result = evt.Data["output"]
	case runner.EventExecutionError:
		out.Type, out.Status = observer.EventWorkflowEnd, observer.StatusFailure
		if msg, ok := evt.Data["error"].(string); ok {
			out.Metadata = map[string]interface{}{"error": msg}
		}
	}
	return out
}

func (e *Engine) persist(ctx context.Context, log *logging.Logger, evt runner.Event) {
	switch evt.Type {
	case runner.EventNodeStart:
		e.persistNodeState(ctx, log, evt, schema.NodeRunning)
	case runner.EventNodeComplete:
		e.persistNodeState(ctx, log, evt, schema.NodeCompleted)
	case runner.EventNodeError:
		e.persistNodeState(ctx, log, evt, schema.NodeError)
	case runner.EventExecutionComplete:
		output := evt.Data["output"]
		if err := e.store.UpdateExecutionStatus(ctx, evt.ExecutionID, schema.ExecutionCompleted, output, ""); err != nil {
			log.WithError(err).Warn("failed to persist execution completion")
		}
	case runner.EventExecutionError:
		errMsg, _ := evt.Data["error"].(string)
		status := schema.ExecutionError
		if errMsg == runner.ErrExecutionStopped.Error() {
			status = schema.ExecutionStopped
		}
		if err := e.store.UpdateExecutionStatus(ctx, evt.ExecutionID, status, nil, errMsg); err != nil {
			log.WithError(err).Warn("failed to persist execution failure")
		}
	case runner.EventLog:
		line := logLineFromEvent(evt)
		if err := e.store.AppendLog(ctx, evt.ExecutionID, line); err != nil {
			log.WithError(err).Warn("failed to persist log line")
		}
	}
}

func (e *Engine) persistNodeState(ctx context.Context, log *logging.Logger, evt runner.Event, status schema.NodeStatus) {
	nodeID, _ := evt.Data["nodeId"].(string)
	now := time.Now()
	state := &schema.NodeState{Status: status}
	switch status {
	case schema.NodeRunning:
		state.StartedAt = &now
	case schema.NodeCompleted:
		state.CompletedAt = &now
		state.Output = evt.Data["output"]
	case schema.NodeError:
		state.CompletedAt = &now
		if msg, ok := evt.Data["error"].(string); ok {
			state.Error = msg
		}
	}
	if err := e.store.UpdateExecutionNodeState(ctx, evt.ExecutionID, nodeID, state); err != nil {
		log.WithNodeID(nodeID).WithError(err).Warn("failed to persist node state")
	}
}

func logLineFromEvent(evt runner.Event) schema.LogLine {
	line := schema.LogLine{Timestamp: evt.Timestamp, Severity: schema.LogInfo}
	if level, ok := evt.Data["level"].(string); ok {
		line.Severity = schema.LogSeverity(level)
	}
	if msg, ok := evt.Data["message"].(string); ok {
		line.Message = msg
	}
	if nodeID, ok := evt.Data["nodeId"].(string); ok {
		line.NodeID = nodeID
	}
	return line
}
