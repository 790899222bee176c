package todo

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValidation is the kind shared by every rejected field value.
	ErrValidation = errors.New("invalid todo")

	// ErrCapacityExceeded is returned when the store is full.
	ErrCapacityExceeded = errors.New("todo list is full")

	// ErrNotFound is returned when a todo with the given ID doesn't exist.
	ErrNotFound = errors.New("todo not found")

	// ErrEmptyTitle is returned when a todo title is empty.
	ErrEmptyTitle = fmt.Errorf("%w: title cannot be empty", ErrValidation)

	// ErrTitleTooLong is returned when a todo title reaches MaxTitleLength.
	ErrTitleTooLong = fmt.Errorf("%w: title too long", ErrValidation)

	// ErrDescriptionTooLong is returned when a description reaches MaxDescriptionLength.
	ErrDescriptionTooLong = fmt.Errorf("%w: description too long", ErrValidation)

	// ErrInvalidPriority is returned when a priority is outside Low..High.
	ErrInvalidPriority = fmt.Errorf("%w: priority must be 1 (low), 2 (medium) or 3 (high)", ErrValidation)

	// ErrInvalidStatus is returned when a status is neither pending nor completed.
	ErrInvalidStatus = fmt.Errorf("%w: status must be pending or completed", ErrValidation)

	// ErrNULByte is returned when a title or description contains a NUL byte,
	// which the data file uses as its string terminator.
	ErrNULByte = fmt.Errorf("%w: text cannot contain NUL bytes", ErrValidation)

	// ErrInvalidSnapshot is returned when restored state breaks the ID invariants.
	ErrInvalidSnapshot = errors.New("invalid todo snapshot")
)

// ValidateTitle checks if the title is valid.
func ValidateTitle(title string) error {
	if title == "" {
		return ErrEmptyTitle
	}
	if len(title) >= MaxTitleLength {
		return fmt.Errorf("%w (max %d characters, got %d)", ErrTitleTooLong, MaxTitleLength-1, len(title))
	}
	if strings.ContainsRune(title, 0) {
		return fmt.Errorf("%w: in title", ErrNULByte)
	}
	return nil
}

// ValidateDescription checks if the description is valid. Empty is allowed.
func ValidateDescription(description string) error {
	if len(description) >= MaxDescriptionLength {
		return fmt.Errorf("%w (max %d characters, got %d)", ErrDescriptionTooLong, MaxDescriptionLength-1, len(description))
	}
	if strings.ContainsRune(description, 0) {
		return fmt.Errorf("%w: in description", ErrNULByte)
	}
	return nil
}

// ValidatePriority checks if the priority is valid.
func ValidatePriority(priority Priority) error {
	if !priority.IsValid() {
		return fmt.Errorf("%w: got %d", ErrInvalidPriority, int(priority))
	}
	return nil
}

// ValidateTodo checks if a todo struct is valid.
func ValidateTodo(t *Todo) error {
	if err := ValidateTitle(t.Title); err != nil {
		return err
	}
	if err := ValidateDescription(t.Description); err != nil {
		return err
	}
	if err := ValidatePriority(t.Priority); err != nil {
		return err
	}
	if !t.Status.IsValid() {
		return fmt.Errorf("%w: got %d", ErrInvalidStatus, int(t.Status))
	}
	if t.UpdatedAt.Before(t.CreatedAt) {
		return fmt.Errorf("%w: updated_at before created_at", ErrValidation)
	}
	return nil
}
