package eventsink

import "github.com/wovenflow/runtime/internal/runner"

// Sink receives every event an execution's Runner emits, in the order the
// Engine's listener observes them. Publish must not block indefinitely: a
// slow Sink throttles the Engine's listener, which runs synchronously on
// the Runner's coordinator goroutine.
type Sink interface {
	Publish(event runner.Event) error
}

// Multi fans a single Publish out to every sink in order, returning the
// first error encountered (if any) after attempting all of them.
type Multi []Sink

func (m Multi) Publish(event runner.Event) error {
	var firstErr error
	for _, s := range m {
		if err := s.Publish(event); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
