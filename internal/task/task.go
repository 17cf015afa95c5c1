package task

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidState is returned when a lifecycle transition is not
	// allowed from the task's current status.
	ErrInvalidState = errors.New("invalid task state")

	// ErrAlreadyRunning is returned when starting a task while another
	// task is still running. Only one task tracks time at once.
	ErrAlreadyRunning = errors.New("another task is already running")
)

// Status is the lifecycle state of a task. The integer values are
// persisted, so existing databases depend on them not changing.
type Status int

const (
	StatusCreated Status = iota + 1
	StatusRunning
	StatusStopped
	StatusCompleted
)

func (s Status) String() string {
	switch s {
	case StatusCreated:
		return "Created"
	case StatusRunning:
		return "Running"
	case StatusStopped:
		return "Stopped"
	case StatusCompleted:
		return "Completed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Valid reports whether s is one of the known lifecycle states.
func (s Status) Valid() bool {
	return s >= StatusCreated && s <= StatusCompleted
}

// Task is a trackable unit of focused work. Accumulated holds the sum of
// closed start/stop intervals; StartedAt is zero unless the task is
// currently running.
type Task struct {
	ID          int64
	Name        string
	Status      Status
	Accumulated time.Duration
	StartedAt   time.Time
	CreatedAt   time.Time
}

// New returns a freshly created task with no recorded time.
func New(name string, now time.Time) *Task {
	return &Task{
		Name:      name,
		Status:    StatusCreated,
		CreatedAt: now.UTC(),
	}
}

// Start opens a new run interval. It fails on a task that is already
// running or has been completed.
func (t *Task) Start(now time.Time) error {
	switch t.Status {
	case StatusRunning:
		return fmt.Errorf("task %d is already running: %w", t.ID, ErrInvalidState)
	case StatusCompleted:
		return fmt.Errorf("task %d is completed: %w", t.ID, ErrInvalidState)
	}
	t.Status = StatusRunning
	t.StartedAt = now.UTC()
	return nil
}

// Stop closes the open run interval and adds its length to the
// accumulated duration.
func (t *Task) Stop(now time.Time) error {
	if t.Status != StatusRunning {
		return fmt.Errorf("task %d is not running: %w", t.ID, ErrInvalidState)
	}
	t.Accumulated += now.UTC().Sub(t.StartedAt)
	t.StartedAt = time.Time{}
	t.Status = StatusStopped
	return nil
}

// Complete moves the task to its terminal state. A running task is
// stopped first so the open interval is not lost.
func (t *Task) Complete(now time.Time) error {
	if t.Status == StatusCompleted {
		return fmt.Errorf("task %d is already completed: %w", t.ID, ErrInvalidState)
	}
	if t.Status == StatusRunning {
		if err := t.Stop(now); err != nil {
			return err
		}
	}
	t.Status = StatusCompleted
	return nil
}

// Elapsed returns the total tracked time as of now, including the open
// interval of a running task.
func (t *Task) Elapsed(now time.Time) time.Duration {
	if t.Status == StatusRunning {
		return t.Accumulated + now.UTC().Sub(t.StartedAt)
	}
	return t.Accumulated
}

// IsRunning reports whether the task has an open run interval.
func (t *Task) IsRunning() bool {
	return t.Status == StatusRunning
}
