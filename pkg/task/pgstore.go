package task

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const taskColumns = `id, name, description, category, due_date, status`

// PgStore is a PostgreSQL-backed task store.
type PgStore struct {
	pool *pgxpool.Pool
}

// NewPgStore creates a PgStore.
func NewPgStore(pool *pgxpool.Pool) *PgStore {
	return &PgStore{pool: pool}
}

// EnsureTable creates the tasks table if it doesn't exist.
// due_date is kept as text so list ordering can follow the stored string.
func (s *PgStore) EnsureTable(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS tasks (
			id           TEXT PRIMARY KEY,
			name         TEXT NOT NULL,
			description  TEXT NOT NULL DEFAULT '',
			category     TEXT NOT NULL DEFAULT '',
			due_date     TEXT NOT NULL DEFAULT '',
			status       TEXT NOT NULL DEFAULT 'pending',
			created_at   TIMESTAMPTZ DEFAULT NOW(),
			updated_at   TIMESTAMPTZ DEFAULT NOW(),
			completed_at TIMESTAMPTZ
		)`)
	if err != nil {
		return err
	}
	_, err = s.pool.Exec(ctx, `CREATE INDEX IF NOT EXISTS idx_tasks_status ON tasks(status)`)
	if err != nil {
		return err
	}
	_, err = s.pool.Exec(ctx, `CREATE INDEX IF NOT EXISTS idx_tasks_created ON tasks(created_at, id)`)
	return err
}

// Create inserts a new pending task.
func (s *PgStore) Create(ctx context.Context, d Draft) (*Task, error) {
	t := &Task{
		ID:          ID(uuid.Must(uuid.NewV7()).String()),
		Name:        d.Name,
		Description: d.Description,
		Category:    d.Category,
		DueDate:     d.DueDate,
		Status:      StatusPending,
	}
	now := time.Now().Truncate(time.Microsecond)

	_, err := s.pool.Exec(ctx, `
		INSERT INTO tasks (id, name, description, category, due_date, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)`,
		string(t.ID), t.Name, t.Description, t.Category, t.DueDate, t.Status, now)
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return t, nil
}

// Get retrieves a single task by ID.
func (s *PgStore) Get(ctx context.Context, id ID) (*Task, error) {
	t, err := scanTask(s.pool.QueryRow(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = $1`, string(id)))
	if err != nil {
		return nil, fmt.Errorf("get task %s: %w", id, err)
	}
	return t, nil
}

// Update modifies task fields. Supported keys: name, description, category, due_date, status.
// Unknown keys are ignored.
func (s *PgStore) Update(ctx context.Context, id ID, updates map[string]any) (*Task, error) {
	now := time.Now().Truncate(time.Microsecond)

	if err := CheckUpdates(updates); err != nil {
		return nil, fmt.Errorf("update task %s: %w", id, err)
	}

	setClauses := "updated_at = $1"
	args := []any{now}
	argIdx := 2

	for _, k := range UpdateFields {
		v, ok := updates[k]
		if !ok {
			continue
		}
		str, _ := v.(string)
		setClauses += fmt.Sprintf(", %s = $%d", k, argIdx)
		args = append(args, str)
		argIdx++
	}

	args = append(args, string(id))
	query := fmt.Sprintf("UPDATE tasks SET %s WHERE id = $%d RETURNING %s", setClauses, argIdx, taskColumns)

	t, err := scanTask(s.pool.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("update task %s: %w", id, err)
	}
	return t, nil
}

// Delete removes a task.
func (s *PgStore) Delete(ctx context.Context, id ID) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, string(id))
	if err != nil {
		return fmt.Errorf("delete task %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete task %s: %w", id, ErrNotFound)
	}
	return nil
}

// Complete marks a task as completed.
func (s *PgStore) Complete(ctx context.Context, id ID) (*Task, error) {
	now := time.Now().Truncate(time.Microsecond)
	t, err := scanTask(s.pool.QueryRow(ctx, `
		UPDATE tasks SET status = 'completed', updated_at = $1, completed_at = $1
		WHERE id = $2
		RETURNING `+taskColumns, now, string(id)))
	if err != nil {
		return nil, fmt.Errorf("complete task %s: %w", id, err)
	}
	return t, nil
}

// List returns every task in creation order.
func (s *PgStore) List(ctx context.Context) ([]Task, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+taskColumns+` FROM tasks ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	tasks := []Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration: %w", err)
	}
	return tasks, nil
}

// Count returns total task count.
func (s *PgStore) Count(ctx context.Context) (int, error) {
	var n int
	err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM tasks`).Scan(&n)
	return n, err
}

// OpenCount returns the number of tasks not yet completed.
func (s *PgStore) OpenCount(ctx context.Context) (int, error) {
	var n int
	err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM tasks WHERE status != 'completed'`).Scan(&n)
	return n, err
}

func scanTask(row pgx.Row) (*Task, error) {
	var t Task
	var id string
	err := row.Scan(&id, &t.Name, &t.Description, &t.Category, &t.DueDate, &t.Status)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	t.ID = ID(id)
	return &t, nil
}
