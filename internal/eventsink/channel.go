package eventsink

import (
	"sync"

	"github.com/wovenflow/runtime/internal/runner"
)

// ChannelSink is the default in-process sink: every published event lands
// on a buffered channel a single consumer drains, which is what the CLI's
// run command uses to print live progress without coupling to the Engine's
// internals.
type ChannelSink struct {
	ch     chan runner.Event
	mu     sync.Mutex
	closed bool
}

// NewChannelSink returns a ChannelSink with the given channel buffer size.
func NewChannelSink(buffer int) *ChannelSink {
	if buffer < 0 {
		buffer = 0
	}
	return &ChannelSink{ch: make(chan runner.Event, buffer)}
}

// Events returns the channel events are delivered on. Close it by calling
// Close, not by closing the channel directly.
func (s *ChannelSink) Events() <-chan runner.Event {
	return s.ch
}

// Publish drops the event rather than blocking if the channel is full,
// since a stalled consumer must never throttle the Runner's coordinator.
func (s *ChannelSink) Publish(event runner.Event) error {
	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed {
		return ErrSinkClosed
	}
	select {
	case s.ch <- event:
		return nil
	default:
		return nil
	}
}

// Close stops further delivery and closes the underlying channel. Safe to
// call once; a second call panics, matching the close-of-closed-channel
// semantics callers already expect from a raw channel.
func (s *ChannelSink) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	close(s.ch)
}
