package schedule

import "errors"

// ErrUnknownSchedule is returned by Remove/Pause/Resume for a schedule id
// that was never registered or has already been removed.
var ErrUnknownSchedule = errors.New("unknown schedule")

// ErrInvalidCronExpression is returned by Register when the cron
// expression cannot be parsed.
var ErrInvalidCronExpression = errors.New("invalid cron expression")
