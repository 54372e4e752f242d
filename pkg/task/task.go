package task

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
)

// Recognized status values. Anything other than StatusCompleted counts as open.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

// ErrNotFound is returned when no task has the requested ID.
var ErrNotFound = errors.New("task not found")

// ErrInvalidUpdate is returned for an update with an unknown field or a
// non-string value.
var ErrInvalidUpdate = errors.New("invalid task update")

// UpdateFields are the keys Store.Update accepts.
var UpdateFields = []string{"name", "description", "category", "due_date", "status"}

// CheckUpdates reports whether every key of updates is an UpdateFields entry
// holding a string or nil.
func CheckUpdates(updates map[string]any) error {
	for k, v := range updates {
		if !slices.Contains(UpdateFields, k) {
			return fmt.Errorf("%w: unknown field %q", ErrInvalidUpdate, k)
		}
		if _, ok := v.(string); !ok && v != nil {
			return fmt.Errorf("%w: field %s must be a string", ErrInvalidUpdate, k)
		}
	}
	return nil
}

// ID identifies a task. The remote API has served both integer and string
// ids, so ID decodes from either JSON form.
type ID string

// UnmarshalJSON accepts a JSON string, a JSON number or null.
func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("task id: %w", err)
	}
	*id = ID(n.String())
	return nil
}

func (id ID) String() string { return string(id) }

// Task is a single task record as owned by the task store.
type Task struct {
	ID          ID     `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	DueDate     string `json:"due_date"` // raw store value, may be empty or carry a time component
	Status      string `json:"status"`   // "completed" or anything else
}

// Completed reports whether the task is in the completed state.
func (t Task) Completed() bool { return t.Status == StatusCompleted }

// Draft holds the user-editable fields sent on create and update.
type Draft struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	DueDate     string `json:"due_date"`
}

// DraftOf returns the editable fields of t.
func DraftOf(t Task) Draft {
	return Draft{
		Name:        t.Name,
		Description: t.Description,
		Category:    t.Category,
		DueDate:     t.DueDate,
	}
}

// Updates returns d as the key/value form accepted by Store.Update.
func (d Draft) Updates() map[string]any {
	return map[string]any{
		"name":        d.Name,
		"description": d.Description,
		"category":    d.Category,
		"due_date":    d.DueDate,
	}
}

// Store is the contract for task persistence.
type Store interface {
	Create(ctx context.Context, d Draft) (*Task, error)
	Get(ctx context.Context, id ID) (*Task, error)
	Update(ctx context.Context, id ID, updates map[string]any) (*Task, error)
	Delete(ctx context.Context, id ID) error
	Complete(ctx context.Context, id ID) (*Task, error)
	List(ctx context.Context) ([]Task, error)
	Count(ctx context.Context) (int, error)
	OpenCount(ctx context.Context) (int, error)
	EnsureTable(ctx context.Context) error
}
