package eventsink

import "errors"

// ErrSinkClosed means Publish was called after Close.
var ErrSinkClosed = errors.New("event sink closed")
