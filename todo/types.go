// Package todo implements a fixed-capacity, in-memory todo list.
//
// Records keep insertion order. IDs come from a counter that only moves
// forward, so an ID is never handed out twice even after deletes.
//
// The public API mirrors the CLI commands:
//   - Create, Update, Delete for the record lifecycle
//   - Complete, Reopen, SetStatus for the status field
//   - Find, Get, List, Filter for querying
package todo

import (
	"fmt"
	"strconv"
	"strings"
)

// Status represents the state of a todo.
type Status int

const (
	// StatusPending indicates the todo still needs doing.
	StatusPending Status = 0

	// StatusCompleted indicates the todo has been done.
	StatusCompleted Status = 1
)

// ValidStatuses returns all valid status values.
func ValidStatuses() []Status {
	return []Status{StatusPending, StatusCompleted}
}

// IsValid returns true if the status is a known valid value.
func (s Status) IsValid() bool {
	return s == StatusPending || s == StatusCompleted
}

// String returns the display name of the status.
func (s Status) String() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}

// ParseStatus accepts a status name ("pending", "completed") or its code.
func ParseStatus(value string) (Status, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	switch normalized {
	case "pending", "0":
		return StatusPending, nil
	case "completed", "complete", "done", "1":
		return StatusCompleted, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidStatus, value)
}

// Priority is the importance level of a todo.
type Priority int

// Priority constants for todos.
const (
	PriorityLow    Priority = 1
	PriorityMedium Priority = 2 // default
	PriorityHigh   Priority = 3

	PriorityMin = PriorityLow
	PriorityMax = PriorityHigh
)

// ValidPriorities returns all valid priorities from lowest to highest.
func ValidPriorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

// IsValid returns true if the priority is within Low..High.
func (p Priority) IsValid() bool {
	return p >= PriorityMin && p <= PriorityMax
}

// String returns the display name of the priority.
func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "Low"
	case PriorityMedium:
		return "Medium"
	case PriorityHigh:
		return "High"
	default:
		return "Unknown"
	}
}

// ParsePriority accepts a priority name ("low", "medium", "high") or its code.
func ParsePriority(value string) (Priority, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	switch normalized {
	case "low", "l":
		return PriorityLow, nil
	case "medium", "med", "m":
		return PriorityMedium, nil
	case "high", "h":
		return PriorityHigh, nil
	}
	code, err := strconv.Atoi(normalized)
	if err != nil || !Priority(code).IsValid() {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPriority, value)
	}
	return Priority(code), nil
}

// PriorityPtr returns a pointer to the provided priority.
func PriorityPtr(priority Priority) *Priority {
	return &priority
}

const (
	// MaxTitleLength bounds todo titles. A title must be strictly shorter,
	// leaving room for the terminator in the on-disk buffer.
	MaxTitleLength = 100

	// MaxDescriptionLength bounds todo descriptions, same rule as titles.
	MaxDescriptionLength = 500

	// DefaultCapacity is the number of todos a store holds when no
	// capacity is configured.
	DefaultCapacity = 1000
)
