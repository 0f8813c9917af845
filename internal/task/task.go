// Package task implements the in-memory task list: the ordered collection of
// tasks and every mutation the UI can perform on it. The list is the source
// of truth for a running session; persistence is layered on top of it.
package task

import "github.com/google/uuid"

// Position selects where a new task is inserted.
// Persisted as an integer, so the values are part of the on-disk schema.
type Position int

const (
	PositionTop    Position = 0
	PositionBottom Position = 1
)

func (p Position) String() string {
	if p == PositionBottom {
		return "bottom"
	}
	return "top"
}

// Task is a single todo item.
type Task struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Done  bool   `json:"isCompleted"`
}

// Equal reports full-field equality. This is what list-diffing wants;
// identity lookups always go by ID.
func (t Task) Equal(other Task) bool {
	return t.ID == other.ID && t.Title == other.Title && t.Done == other.Done
}

func newID() string {
	return uuid.NewString()
}
