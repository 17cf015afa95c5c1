package report

import (
	"time"

	"github.com/brokencop23/focus-timer/internal/task"
)

// StatusStats aggregates the tasks in one lifecycle state.
type StatusStats struct {
	Count    int
	Duration time.Duration
}

// Stats aggregates a filtered set of tasks.
type Stats struct {
	Count    int
	Total    time.Duration
	ByStatus map[task.Status]StatusStats
}

// statusOrder fixes the rendering order of the per-status buckets.
var statusOrder = []task.Status{
	task.StatusCreated,
	task.StatusRunning,
	task.StatusStopped,
	task.StatusCompleted,
}

// Collect folds tasks into per-status counts and durations. Running
// tasks contribute their live elapsed time as of now.
func Collect(tasks []task.Task, now time.Time) Stats {
	st := Stats{ByStatus: make(map[task.Status]StatusStats)}
	for _, t := range tasks {
		d := t.Elapsed(now)
		st.Count++
		st.Total += d

		bucket := st.ByStatus[t.Status]
		bucket.Count++
		bucket.Duration += d
		st.ByStatus[t.Status] = bucket
	}
	return st
}

// Average returns the mean tracked time per task, zero for an empty set.
func (s Stats) Average() time.Duration {
	if s.Count == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Count)
}
