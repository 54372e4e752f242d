// Package edit models the task form: a pending draft plus an explicit mode
// that decides whether submitting creates a new task or updates an existing
// one.
package edit

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"taskboard/pkg/task"
)

var (
	// ErrNameRequired is returned by Submit when the draft has no name.
	ErrNameRequired = errors.New("task name is required")
	// ErrUnknownField is returned by Set for a field the form does not hold.
	ErrUnknownField = errors.New("unknown form field")
)

// Mode is the form's current purpose.
type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
)

// State is {Mode: create} or {Mode: edit, TargetID: id}.
type State struct {
	Mode     Mode    `json:"mode"`
	TargetID task.ID `json:"target_id,omitempty"`
}

// Saver persists a submitted draft.
type Saver interface {
	CreateTask(ctx context.Context, d task.Draft) (*task.Task, error)
	UpdateTask(ctx context.Context, id task.ID, d task.Draft) (*task.Task, error)
}

// Suggester produces AI suggestions for draft fields.
type Suggester interface {
	PredictCategory(ctx context.Context, summary string) (string, error)
	GenerateDescription(ctx context.Context, summary string) (string, error)
}

// Form holds the edit state and pending draft. A Form is not safe for
// concurrent use.
type Form struct {
	state State
	draft task.Draft
}

// NewForm returns an empty form in create mode.
func NewForm() *Form {
	return &Form{state: State{Mode: ModeCreate}}
}

// State returns the current mode.
func (f *Form) State() State { return f.state }

// Draft returns a copy of the pending draft.
func (f *Form) Draft() task.Draft { return f.draft }

// Set updates one draft field by its wire name.
func (f *Form) Set(field, value string) error {
	switch field {
	case "name":
		f.draft.Name = value
	case "description":
		f.draft.Description = value
	case "category":
		f.draft.Category = value
	case "due_date":
		f.draft.DueDate = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	return nil
}

// Edit switches to edit mode for t and loads its fields into the draft.
func (f *Form) Edit(t task.Task) {
	f.state = State{Mode: ModeEdit, TargetID: t.ID}
	f.draft = task.DraftOf(t)
}

// Cancel discards the draft and returns to create mode.
func (f *Form) Cancel() {
	f.state = State{Mode: ModeCreate}
	f.draft = task.Draft{}
}

// Submit saves the draft according to the current mode. On success the
// form resets to create mode; on failure it is left unchanged.
func (f *Form) Submit(ctx context.Context, s Saver) (*task.Task, error) {
	if strings.TrimSpace(f.draft.Name) == "" {
		return nil, ErrNameRequired
	}

	var (
		t   *task.Task
		err error
	)
	switch f.state.Mode {
	case ModeEdit:
		t, err = s.UpdateTask(ctx, f.state.TargetID, f.draft)
		if err != nil {
			return nil, fmt.Errorf("update task %s: %w", f.state.TargetID, err)
		}
	default:
		t, err = s.CreateTask(ctx, f.draft)
		if err != nil {
			return nil, fmt.Errorf("create task: %w", err)
		}
	}
	f.Cancel()
	return t, nil
}

// SuggestCategory fills the category from the description. It does nothing
// when the description is empty.
func (f *Form) SuggestCategory(ctx context.Context, s Suggester) error {
	if f.draft.Description == "" {
		return nil
	}
	cat, err := s.PredictCategory(ctx, f.draft.Description)
	if err != nil {
		return fmt.Errorf("predict category: %w", err)
	}
	f.draft.Category = cat
	return nil
}

// SuggestDescription fills the description from the name. It does nothing
// when the name is empty.
func (f *Form) SuggestDescription(ctx context.Context, s Suggester) error {
	if f.draft.Name == "" {
		return nil
	}
	desc, err := s.GenerateDescription(ctx, f.draft.Name)
	if err != nil {
		return fmt.Errorf("generate description: %w", err)
	}
	f.draft.Description = desc
	return nil
}
