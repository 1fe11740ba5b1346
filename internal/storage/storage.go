package storage

import "errors"

// Slot names used by the application.
const (
	SlotTasks = "tasks"
	SlotTheme = "theme"
)

// ErrSlotNotFound is returned when a slot has never been written.
var ErrSlotNotFound = errors.New("slot not found")

// SlotStore is a durable local key-value store of named text slots.
// Every write replaces the whole slot value; there is no partial or
// incremental update.
type SlotStore interface {
	// Get returns the current value of the named slot or
	// ErrSlotNotFound when the slot has never been written.
	Get(name string) (string, error)

	// Put overwrites the named slot with value, creating it if
	// necessary.
	Put(name, value string) error

	// Close releases the underlying medium.
	Close() error
}
