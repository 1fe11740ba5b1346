package services

import (
	"errors"
	"time"

	"github.com/robinrdj/go-taskboard/internal/models"
)

var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrInvalidTheme    = errors.New("invalid theme")
	ErrImportNotArray  = errors.New("import payload is not an array")
	ErrImportEmpty     = errors.New("import payload is empty")
	ErrNoPendingDelete = errors.New("no pending delete")
)

// TaskStore is the sole authority over the task collection. Every
// mutation persists the full collection before returning; persistence
// failures are logged and swallowed so the in-memory state stays
// usable.
type TaskStore interface {
	// Add creates a task with a fresh unique id and created_on,
	// applying defaults for unset status, assignee and priority and
	// normalizing the due date to board form.
	Add(input TaskInput) models.Task

	// Update merges patch onto the task with the given id. It stamps
	// completed_on when the merge moves the task into completed from
	// any other status. It returns ErrTaskNotFound for an unknown
	// id, which callers treat as non-fatal.
	Update(id int64, patch TaskPatch) (models.Task, error)

	// Delete removes the task with the given id. It returns
	// ErrTaskNotFound for an unknown id.
	Delete(id int64) error

	// DeleteMultiple removes every task whose id is in ids, silently
	// skipping unknown ids, with a single persist at the end. It
	// returns the number of tasks removed.
	DeleteMultiple(ids []int64) int

	// UpdateMultiple merges patch onto every task whose id is in
	// ids, with a single persist at the end. Unlike Update it never
	// stamps completed_on. It returns the number of tasks touched.
	UpdateMultiple(ids []int64, patch TaskPatch) int

	// Snapshot returns a copy of the full collection.
	Snapshot() []models.Task
}

// TaskInput carries the caller-supplied fields of a new task.
type TaskInput struct {
	Title       string
	Description string
	DueDate     string
	Status      string
	Assignee    string
	Priority    string
}

// TaskPatch is a partial-field merge: nil fields are left alone.
type TaskPatch struct {
	Title       *string
	Description *string
	DueDate     *string
	Status      *string
	Assignee    *string
	Priority    *string
}

// IsEmpty reports whether the patch would change nothing.
func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil &&
		p.Description == nil &&
		p.DueDate == nil &&
		p.Status == nil &&
		p.Assignee == nil &&
		p.Priority == nil
}

// SelectionCoordinator tracks the transient multi-select state and
// turns it into bulk TaskStore commands. It is not persisted.
type SelectionCoordinator interface {
	// Toggle adds or removes a task from the selection. With extend
	// set it toggles membership; without it the call is an exclusive
	// single-select, or a deselect when the selection is exactly the
	// given task.
	Toggle(id int64, extend bool)

	Activate()
	Cancel()

	// State returns the selection mode flag and the selected ids in
	// ascending order.
	State() (bool, []int64)

	// CommitDelete deletes the selected tasks and clears the
	// selection. With a positive grace the delete is scheduled after
	// the grace period and a cancellation token is returned; the
	// underlying delete then runs at most once, or never if
	// CancelPending is called first.
	CommitDelete(grace time.Duration) (token string, deleted int)

	// CancelPending stops a scheduled delete. It returns
	// ErrNoPendingDelete when the token is unknown or the delete
	// already fired.
	CancelPending(token string) error

	// CommitUpdate bulk-updates the selected tasks and clears the
	// selection. It returns the number of tasks touched.
	CommitUpdate(patch TaskPatch) int
}

// ThemeService owns the persisted light/dark preference.
type ThemeService interface {
	Theme() string
	SetTheme(theme string) error
	ToggleTheme() (string, error)
}
