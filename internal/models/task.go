package models

import "time"

const (
	StatusTodo       = "todo"
	StatusInProgress = "inprogress"
	StatusReview     = "review"
	StatusCompleted  = "completed"
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Statuses lists every task status in board column order.
var Statuses = []string{
	StatusTodo,
	StatusInProgress,
	StatusReview,
	StatusCompleted,
}

// Priorities lists every task priority from least to most urgent.
var Priorities = []string{
	PriorityLow,
	PriorityMedium,
	PriorityHigh,
}

// StatusDisplayName maps a status to its board column heading.
var StatusDisplayName = map[string]string{
	StatusTodo:       "Todo",
	StatusInProgress: "In Progress",
	StatusReview:     "Review",
	StatusCompleted:  "Completed",
}

// Task is the unit of work tracked by the board.
//
// The JSON field names are the slot format: the full collection is
// persisted as a JSON array of these records, and the same shape is
// used on the wire and in import/export files.
type Task struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	// DueDate is kept in DD-MM-YYYY text form, empty when unset.
	DueDate     string `json:"due_date,omitempty"`
	Status      string `json:"status"`
	Assignee    string `json:"assignee"`
	Priority    string `json:"priority"`
	CreatedOn   string `json:"created_on"`
	CompletedOn string `json:"completed_on,omitempty"`
}

// TaskFieldNames is the column order for tabular exports,
// matching the JSON field order of Task.
var TaskFieldNames = []string{
	"id",
	"title",
	"description",
	"due_date",
	"status",
	"assignee",
	"priority",
	"created_on",
	"completed_on",
}

// CreatedAt parses the creation timestamp. The zero time is
// returned when the field is malformed.
func (t *Task) CreatedAt() time.Time {
	ts, err := time.Parse(time.RFC3339, t.CreatedOn)
	if err != nil {
		return time.Time{}
	}
	return ts
}

// CompletedAt parses the completion timestamp, if any.
func (t *Task) CompletedAt() (time.Time, bool) {
	if t.CompletedOn == "" {
		return time.Time{}, false
	}
	ts, err := time.Parse(time.RFC3339, t.CompletedOn)
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}

// IsValidStatus reports whether s is one of the four board statuses.
func IsValidStatus(s string) bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusReview, StatusCompleted:
		return true
	}
	return false
}

// IsValidPriority reports whether p is a known priority.
func IsValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}
