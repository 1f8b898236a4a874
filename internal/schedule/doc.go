// Package schedule lets a saved workflow be registered against a cron
// expression so it runs on a recurring timer instead of only on demand.
// It is optional: nothing else in this module depends on it, and a
// deployment with no recurring workflows can skip constructing a
// Scheduler entirely.
package schedule
