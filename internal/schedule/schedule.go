package schedule

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/wovenflow/runtime/internal/engine"
	"github.com/wovenflow/runtime/internal/logging"
)

// Entry is one registered recurring trigger.
type Entry struct {
	ID         string      `json:"id"`
	WorkflowID string      `json:"workflowId"`
	CronExpr   string      `json:"cronExpression"`
	Input      interface{} `json:"input,omitempty"`
	Paused     bool        `json:"paused"`
	LastRun    *time.Time  `json:"lastRun,omitempty"`
	LastError  string      `json:"lastError,omitempty"`
}

// Scheduler fires Engine.ExecuteWorkflow on a cron schedule, grounded on
// aipilotbyjd-linkflow-ai's internal/schedule Scheduler: a cron.Cron
// instance plus a map from a stable schedule id to the cron library's own
// (reused-on-restart-unstable) cron.EntryID, so pausing and resuming a
// schedule doesn't require the caller to track library internals.
type Scheduler struct {
	cron   *cron.Cron
	engine *engine.Engine
	logger *logging.Logger

	mu      sync.Mutex
	entries map[string]*Entry
	cronIDs map[string]cron.EntryID
	running bool
}

// New builds a Scheduler bound to eng. Call Start to begin firing
// registered entries; Register/Remove/Pause/Resume are safe to call
// before or after Start.
func New(eng *engine.Engine) *Scheduler {
	c := cron.New(cron.WithSeconds(), cron.WithLocation(time.UTC))
	return &Scheduler{
		cron:    c,
		engine:  eng,
		logger:  logging.New(logging.DefaultConfig()),
		entries: make(map[string]*Entry),
		cronIDs: make(map[string]cron.EntryID),
	}
}

// Start begins firing registered entries. Safe to call once; a second
// call is a no-op.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.cron.Start()
	s.running = true
}

// Stop waits for any in-flight cron jobs to return, then halts firing.
// Already-started workflow executions continue running; Stop only stops
// new ones from being triggered.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	s.mu.Unlock()

	ctx := s.cron.Stop()
	<-ctx.Done()
}

// Register adds a recurring trigger: cronExpr (a six-field expression
// whose first field is seconds, since WithSeconds is set) fires
// workflowID with input every time it matches. Returns the generated
// schedule id.
func (s *Scheduler) Register(cronExpr, workflowID string, input interface{}) (string, error) {
	id := uuid.New().String()
	entry := &Entry{ID: id, WorkflowID: workflowID, CronExpr: cronExpr, Input: input}

	s.mu.Lock()
	defer s.mu.Unlock()

	cronID, err := s.cron.AddFunc(cronExpr, s.fire(entry))
	if err != nil {
		return "", fmt.Errorf("%w: %s: %s", ErrInvalidCronExpression, cronExpr, err)
	}

	s.entries[id] = entry
	s.cronIDs[id] = cronID
	return id, nil
}

// fire returns the closure cron invokes on each match. It is a fresh
// closure per entry so it can mutate that entry's LastRun/LastError
// without a lookup race against Remove.
func (s *Scheduler) fire(entry *Entry) func() {
	return func() {
		s.mu.Lock()
		paused := entry.Paused
		s.mu.Unlock()
		if paused {
			return
		}

		log := s.logger.WithWorkflowID(entry.WorkflowID).WithField("scheduleId", entry.ID)
		log.Info("firing scheduled workflow")

		_, err := s.engine.ExecuteWorkflow(context.Background(), entry.WorkflowID, entry.Input)

		s.mu.Lock()
		now := time.Now()
		entry.LastRun = &now
		if err != nil {
			entry.LastError = err.Error()
			log.WithError(err).Warn("scheduled workflow failed to start")
		} else {
			entry.LastError = ""
		}
		s.mu.Unlock()
	}
}

// Pause stops a registered entry from firing without forgetting it: the
// entry stays registered with cron and its job returns early while paused.
func (s *Scheduler) Pause(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSchedule, id)
	}
	entry.Paused = true
	return nil
}

// Resume un-pauses a previously paused entry.
func (s *Scheduler) Resume(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSchedule, id)
	}
	entry.Paused = false
	return nil
}

// Remove unregisters a schedule entirely; it will never fire again.
func (s *Scheduler) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cronID, ok := s.cronIDs[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSchedule, id)
	}
	s.cron.Remove(cronID)
	delete(s.cronIDs, id)
	delete(s.entries, id)
	return nil
}

// List returns a snapshot of every registered entry.
func (s *Scheduler) List() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Entry, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, *e)
	}
	return out
}
