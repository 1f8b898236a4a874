// Package observer lets library consumers watch workflow execution from
// outside the engine.
//
// # Observer interface
//
//	type Observer interface {
//	    OnEvent(ctx context.Context, event Event)
//	}
//
// An Event carries the EventType (EventWorkflowStart, EventWorkflowEnd,
// EventNodeStart, EventNodeSuccess, EventNodeFailure), an ExecutionStatus,
// and, for node-level events, the NodeID and NodeType. internal/engine's
// listener is the only translator from the runner's six-event stream into
// this shape; nothing else constructs an Event.
//
// # Registering an observer
//
//	engine.RegisterObserver(observer.NewConsoleObserver())
//
// Multiple observers can be registered; Manager notifies each of them
// asynchronously, in its own goroutine, and recovers a panicking
// observer so one bad implementation can't take down an execution or
// starve the others.
//
// # Built-in observers
//
// NoOpObserver discards every event — useful as an explicit placeholder.
// ConsoleObserver logs each event through a Logger (NewDefaultLogger by
// default, or a caller-supplied one via NewConsoleObserverWithLogger),
// picking the log level from the event's type: node starts and
// successes are debug-level, a workflow's end and a node's failure are
// info/warn, and a failed workflow is logged at error level.
//
// internal/telemetry.NewTelemetryObserver implements this same Observer
// interface to record OpenTelemetry spans and metrics instead of text,
// so a single execution can be watched by both a ConsoleObserver and the
// telemetry observer at once.
package observer
