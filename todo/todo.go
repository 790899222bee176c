package todo

import "time"

// Todo represents a single task.
type Todo struct {
	// ID is assigned by the store and never reused.
	ID int `json:"id"`

	// Title is the short summary of the todo (shorter than MaxTitleLength bytes).
	Title string `json:"title"`

	// Description provides additional context about the todo.
	Description string `json:"description"`

	// Priority is the importance level (1=low, 3=high).
	Priority Priority `json:"priority"`

	// Status is the current state of the todo.
	Status Status `json:"status"`

	// CreatedAt is when the todo was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is when the todo was last modified.
	UpdatedAt time.Time `json:"updated_at"`
}

// IsCompleted reports whether the todo is in the completed state.
func (t Todo) IsCompleted() bool {
	return t.Status == StatusCompleted
}
