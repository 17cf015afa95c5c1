package storage

import (
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/brokencop23/focus-timer/internal/task"
)

//go:embed schema.sql
var schemaSQL string

// schemaVersion is bumped whenever the tasks table layout changes in an
// incompatible way. Databases written by another version are rejected.
const schemaVersion = 1

var (
	// ErrNotFound is returned when no task exists with the given id.
	ErrNotFound = errors.New("task not found")

	// ErrSchemaVersion is returned when the database file was written
	// by an incompatible version of the tool.
	ErrSchemaVersion = errors.New("unsupported database schema version")
)

// Filter narrows List results by creation time. Zero From/To leave the
// range open on that side; From is inclusive, To exclusive. Limit <= 0
// means unbounded.
type Filter struct {
	From  time.Time
	To    time.Time
	Limit int
}

// Store persists tasks in a single SQLite database file.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens (creating if necessary) the database at path and ensures
// the schema is present and at a supported version.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_fk=1")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	if err := checkSchemaVersion(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db, path: path}, nil
}

func checkSchemaVersion(db *sql.DB) error {
	var version int
	err := db.QueryRow("SELECT version FROM schema_version").Scan(&version)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		_, err = db.Exec("INSERT INTO schema_version (version) VALUES (?)", schemaVersion)
		if err != nil {
			return fmt.Errorf("failed to record schema version: %w", err)
		}
		return nil
	case err != nil:
		return fmt.Errorf("failed to read schema version: %w", err)
	case version != schemaVersion:
		return fmt.Errorf("database has version %d, expected %d: %w", version, schemaVersion, ErrSchemaVersion)
	}
	return nil
}

// Path returns the location of the database file.
func (s *Store) Path() string {
	return s.path
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Create inserts a new task and returns it with its assigned id.
func (s *Store) Create(name string, now time.Time) (*task.Task, error) {
	t := task.New(name, now)
	res, err := s.db.Exec(`
		INSERT INTO tasks (name, status, accumulated, started_at, created_at)
		VALUES (?, ?, ?, NULL, ?)
	`, t.Name, int(t.Status), int64(t.Accumulated), t.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("failed to insert task: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read inserted id: %w", err)
	}
	t.ID = id
	return t, nil
}

// Get retrieves a task by id.
func (s *Store) Get(id int64) (*task.Task, error) {
	row := s.db.QueryRow(`
		SELECT id, name, status, accumulated, started_at, created_at
		FROM tasks WHERE id = ?
	`, id)

	t, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("task %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load task %d: %w", id, err)
	}
	return t, nil
}

// Update writes the task's mutable fields back to the database.
func (s *Store) Update(t *task.Task) error {
	startedAt := sql.NullString{}
	if !t.StartedAt.IsZero() {
		startedAt = sql.NullString{String: t.StartedAt.Format(time.RFC3339), Valid: true}
	}

	res, err := s.db.Exec(`
		UPDATE tasks SET name = ?, status = ?, accumulated = ?, started_at = ?
		WHERE id = ?
	`, t.Name, int(t.Status), int64(t.Accumulated), startedAt, t.ID)
	if err != nil {
		return fmt.Errorf("failed to update task %d: %w", t.ID, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update of task %d: %w", t.ID, err)
	}
	if n == 0 {
		return fmt.Errorf("task %d: %w", t.ID, ErrNotFound)
	}
	return nil
}

// Delete removes a task by id.
func (s *Store) Delete(id int64) error {
	res, err := s.db.Exec("DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete task %d: %w", id, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete of task %d: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("task %d: %w", id, ErrNotFound)
	}
	return nil
}

// Active returns the running task, or nil if no task is running.
func (s *Store) Active() (*task.Task, error) {
	row := s.db.QueryRow(`
		SELECT id, name, status, accumulated, started_at, created_at
		FROM tasks WHERE status = ? LIMIT 1
	`, int(task.StatusRunning))

	t, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load active task: %w", err)
	}
	return t, nil
}

// List returns tasks whose creation time falls within the filter range,
// newest first.
func (s *Store) List(f Filter) ([]task.Task, error) {
	query := `
		SELECT id, name, status, accumulated, started_at, created_at
		FROM tasks
		WHERE 1=1
	`
	var args []interface{}

	if !f.From.IsZero() {
		query += " AND created_at >= ?"
		args = append(args, f.From.UTC().Format(time.RFC3339))
	}
	if !f.To.IsZero() {
		query += " AND created_at < ?"
		args = append(args, f.To.UTC().Format(time.RFC3339))
	}

	query += " ORDER BY created_at DESC, id DESC"

	// SQLite treats a negative LIMIT as unbounded.
	limit := f.Limit
	if limit <= 0 {
		limit = -1
	}
	query += " LIMIT ?"
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list query failed: %w", err)
	}
	defer rows.Close()

	var tasks []task.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		tasks = append(tasks, *t)
	}
	return tasks, rows.Err()
}

// Destroy closes the connection and removes the database file.
func (s *Store) Destroy() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove database file: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTask(row rowScanner) (*task.Task, error) {
	var t task.Task
	var status int
	var accumulated int64
	var startedAt sql.NullString
	var createdAt string

	err := row.Scan(&t.ID, &t.Name, &status, &accumulated, &startedAt, &createdAt)
	if err != nil {
		return nil, err
	}

	t.Status = task.Status(status)
	t.Accumulated = time.Duration(accumulated)

	if startedAt.Valid {
		if ts, err := time.Parse(time.RFC3339, startedAt.String); err != nil {
			log.Printf("warning: failed to parse started_at for task %d: %v", t.ID, err)
		} else {
			t.StartedAt = ts
		}
	}
	if ts, err := time.Parse(time.RFC3339, createdAt); err != nil {
		log.Printf("warning: failed to parse created_at for task %d: %v", t.ID, err)
	} else {
		t.CreatedAt = ts
	}

	return &t, nil
}
