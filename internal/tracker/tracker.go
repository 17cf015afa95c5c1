// Package tracker implements the task lifecycle operations on top of
// the store: load, transition, persist.
package tracker

import (
	"fmt"
	"time"

	"github.com/brokencop23/focus-timer/internal/storage"
	"github.com/brokencop23/focus-timer/internal/task"
)

// Start opens a run interval on the task with the given id. It fails if
// any other task is already running.
func Start(store *storage.Store, id int64, now time.Time) (*task.Task, error) {
	t, err := store.Get(id)
	if err != nil {
		return nil, err
	}

	active, err := store.Active()
	if err != nil {
		return nil, err
	}
	if active != nil && active.ID != t.ID {
		return nil, fmt.Errorf("task %d is running: %w", active.ID, task.ErrAlreadyRunning)
	}

	if err := t.Start(now); err != nil {
		return nil, err
	}
	if err := store.Update(t); err != nil {
		return nil, err
	}
	return t, nil
}

// Stop closes the open run interval on the task with the given id.
func Stop(store *storage.Store, id int64, now time.Time) (*task.Task, error) {
	t, err := store.Get(id)
	if err != nil {
		return nil, err
	}
	if err := t.Stop(now); err != nil {
		return nil, err
	}
	if err := store.Update(t); err != nil {
		return nil, err
	}
	return t, nil
}

// Complete moves the task with the given id to its terminal state,
// committing the open interval first if it is running.
func Complete(store *storage.Store, id int64, now time.Time) (*task.Task, error) {
	t, err := store.Get(id)
	if err != nil {
		return nil, err
	}
	if err := t.Complete(now); err != nil {
		return nil, err
	}
	if err := store.Update(t); err != nil {
		return nil, err
	}
	return t, nil
}
