package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/brokencop23/focus-timer/internal/task"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "tasks.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestCreateAndGet(t *testing.T) {
	t.Parallel()
	s := openTestStore(t)
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	created, err := s.Create("write docs", now)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID != 1 {
		t.Errorf("Expected first id 1, got %d", created.ID)
	}

	got, err := s.Get(created.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Name != "write docs" {
		t.Errorf("Expected name 'write docs', got %q", got.Name)
	}
	if got.Status != task.StatusCreated {
		t.Errorf("Expected status Created, got %s", got.Status)
	}
	if !got.CreatedAt.Equal(now) {
		t.Errorf("Expected created_at %v, got %v", now, got.CreatedAt)
	}
}

func TestGetNotFound(t *testing.T) {
	t.Parallel()
	s := openTestStore(t)

	if _, err := s.Get(42); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestUpdateRoundTrip(t *testing.T) {
	t.Parallel()
	s := openTestStore(t)
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	created, err := s.Create("focus", now)
	if err != nil {
		t.Fatal(err)
	}

	if err := created.Start(now.Add(time.Minute)); err != nil {
		t.Fatal(err)
	}
	if err := s.Update(created); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	got, err := s.Get(created.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != task.StatusRunning {
		t.Errorf("Expected status Running, got %s", got.Status)
	}
	if !got.StartedAt.Equal(now.Add(time.Minute)) {
		t.Errorf("Expected started_at %v, got %v", now.Add(time.Minute), got.StartedAt)
	}

	if err := got.Stop(now.Add(11 * time.Minute)); err != nil {
		t.Fatal(err)
	}
	if err := s.Update(got); err != nil {
		t.Fatal(err)
	}

	final, err := s.Get(created.ID)
	if err != nil {
		t.Fatal(err)
	}
	if final.Accumulated != 10*time.Minute {
		t.Errorf("Expected 10m accumulated, got %v", final.Accumulated)
	}
	if !final.StartedAt.IsZero() {
		t.Error("Expected started_at cleared after stop")
	}
}

func TestUpdateNotFound(t *testing.T) {
	t.Parallel()
	s := openTestStore(t)

	ghost := task.New("ghost", time.Now())
	ghost.ID = 99
	if err := s.Update(ghost); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	t.Parallel()
	s := openTestStore(t)

	created, err := s.Create("short lived", time.Now())
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Delete(created.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := s.Get(created.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound after delete, got %v", err)
	}
	if err := s.Delete(created.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound on second delete, got %v", err)
	}
}

func TestActive(t *testing.T) {
	t.Parallel()
	s := openTestStore(t)
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	active, err := s.Active()
	if err != nil {
		t.Fatalf("Active failed: %v", err)
	}
	if active != nil {
		t.Fatalf("Expected no active task, got %d", active.ID)
	}

	created, err := s.Create("on it", now)
	if err != nil {
		t.Fatal(err)
	}
	if err := created.Start(now); err != nil {
		t.Fatal(err)
	}
	if err := s.Update(created); err != nil {
		t.Fatal(err)
	}

	active, err = s.Active()
	if err != nil {
		t.Fatal(err)
	}
	if active == nil || active.ID != created.ID {
		t.Errorf("Expected task %d active, got %+v", created.ID, active)
	}
}

func TestListOrderAndLimit(t *testing.T) {
	t.Parallel()
	s := openTestStore(t)
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	for i, name := range []string{"first", "second", "third"} {
		if _, err := s.Create(name, base.AddDate(0, 0, i)); err != nil {
			t.Fatal(err)
		}
	}

	tasks, err := s.List(Filter{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(tasks) != 3 {
		t.Fatalf("Expected 3 tasks, got %d", len(tasks))
	}
	if tasks[0].Name != "third" || tasks[2].Name != "first" {
		t.Errorf("Expected newest first, got %q..%q", tasks[0].Name, tasks[2].Name)
	}

	tasks, err = s.List(Filter{Limit: 2})
	if err != nil {
		t.Fatal(err)
	}
	if len(tasks) != 2 {
		t.Errorf("Expected 2 tasks with limit, got %d", len(tasks))
	}
}

func TestListDateRange(t *testing.T) {
	t.Parallel()
	s := openTestStore(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		if _, err := s.Create("task", base.AddDate(0, 0, i)); err != nil {
			t.Fatal(err)
		}
	}

	// From is inclusive.
	tasks, err := s.List(Filter{From: base.AddDate(0, 0, 1)})
	if err != nil {
		t.Fatal(err)
	}
	if len(tasks) != 2 {
		t.Errorf("Expected 2 tasks from day 2 on, got %d", len(tasks))
	}

	// To is exclusive.
	tasks, err = s.List(Filter{To: base.AddDate(0, 0, 1)})
	if err != nil {
		t.Fatal(err)
	}
	if len(tasks) != 1 {
		t.Errorf("Expected 1 task before day 2, got %d", len(tasks))
	}

	// A range covering nothing returns an empty set.
	tasks, err = s.List(Filter{From: base.AddDate(0, 1, 0)})
	if err != nil {
		t.Fatal(err)
	}
	if len(tasks) != 0 {
		t.Errorf("Expected no tasks in an empty range, got %d", len(tasks))
	}
}

func TestDestroyRemovesFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "tasks.db")
	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Create("doomed", time.Now()); err != nil {
		t.Fatal(err)
	}

	if err := s.Destroy(); err != nil {
		t.Fatalf("Destroy failed: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("Expected database file removed, stat err = %v", err)
	}
}

func TestSchemaVersionMismatch(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "tasks.db")

	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.db.Exec("UPDATE schema_version SET version = 99"); err != nil {
		t.Fatal(err)
	}
	s.Close()

	if _, err := Open(path); !errors.Is(err, ErrSchemaVersion) {
		t.Errorf("Expected ErrSchemaVersion, got %v", err)
	}
}

func TestReopenKeepsData(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "tasks.db")

	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Create("durable", time.Now()); err != nil {
		t.Fatal(err)
	}
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("Reopen failed: %v", err)
	}
	defer s.Close()

	tasks, err := s.List(Filter{})
	if err != nil {
		t.Fatal(err)
	}
	if len(tasks) != 1 || tasks[0].Name != "durable" {
		t.Errorf("Expected the task to survive reopen, got %+v", tasks)
	}
}
