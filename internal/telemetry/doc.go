// Package telemetry wires OpenTelemetry tracing and Prometheus metrics
// into a running engine.
//
// Provider owns the meter/tracer setup: NewProvider(ctx, Config) creates
// the workflow.*, node.*, and http.* instruments and exposes Tracer()/
// Meter() plus Record{WorkflowExecution,NodeExecution,HTTPCall} for
// recording them directly. No package in the runtime calls
// RecordHTTPCall; outbound requests are recorded only by callers that
// invoke it themselves.
//
// TelemetryObserver adapts a Provider into an internal/observer.Observer
// so it can be registered the same way any other observer is
// (internal/bootstrap wires it in when Options.Telemetry is set): it
// opens a span on EventWorkflowStart/EventNodeStart, closes it and
// records the corresponding duration/success metric on the matching
// EventWorkflowEnd/EventNodeSuccess/EventNodeFailure, using event.Error
// to mark the span's status.
package telemetry
