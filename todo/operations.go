package todo

import (
	"fmt"
	"strings"
	"time"
)

// CreateOptions configures a new todo.
type CreateOptions struct {
	// Description provides additional context. Empty means none.
	Description string

	// Priority is the importance level. Zero defaults to PriorityMedium.
	Priority Priority
}

// Create appends a new pending todo and returns its ID.
// The store is left unchanged when an error is returned.
func (s *Store) Create(title string, opts CreateOptions) (int, error) {
	if s.IsFull() {
		return 0, fmt.Errorf("%w (max %d todos)", ErrCapacityExceeded, s.capacity)
	}
	if err := ValidateTitle(title); err != nil {
		return 0, err
	}
	if err := ValidateDescription(opts.Description); err != nil {
		return 0, err
	}

	priority := opts.Priority
	if priority == 0 {
		priority = PriorityMedium
	}
	if err := ValidatePriority(priority); err != nil {
		return 0, err
	}

	now := s.timestamp(time.Time{})
	todo := Todo{
		ID:          s.nextID,
		Title:       title,
		Description: opts.Description,
		Priority:    priority,
		Status:      StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.nextID++
	s.todos = append(s.todos, todo)

	return todo.ID, nil
}

// Find returns a copy of the todo with the given ID.
// A missing ID is reported by ok == false, not as an error.
func (s *Store) Find(id int) (todo Todo, ok bool) {
	index := s.indexOf(id)
	if index < 0 {
		return Todo{}, false
	}
	return s.todos[index], true
}

// Get is like Find but reports a missing ID as ErrNotFound.
func (s *Store) Get(id int) (Todo, error) {
	todo, ok := s.Find(id)
	if !ok {
		return Todo{}, notFound(id)
	}
	return todo, nil
}

// List returns every todo in storage order. The result is never nil.
func (s *Store) List() []Todo {
	todos := make([]Todo, len(s.todos))
	copy(todos, s.todos)
	return todos
}

// UpdateOptions configures fields to update on a todo.
// Nil pointers mean "don't update this field".
type UpdateOptions struct {
	Title       *string
	Description *string

	// Priority is applied only when it is within Low..High.
	// Out-of-range values are ignored rather than rejected.
	Priority *Priority
}

// Update changes the given fields of a todo and refreshes UpdatedAt.
// Title and description are validated before anything is applied, so a
// rejected update leaves the todo untouched.
func (s *Store) Update(id int, opts UpdateOptions) (Todo, error) {
	index := s.indexOf(id)
	if index < 0 {
		return Todo{}, notFound(id)
	}

	if opts.Title != nil {
		if err := ValidateTitle(*opts.Title); err != nil {
			return Todo{}, err
		}
	}
	if opts.Description != nil {
		if err := ValidateDescription(*opts.Description); err != nil {
			return Todo{}, err
		}
	}

	todo := &s.todos[index]
	if opts.Title != nil {
		todo.Title = *opts.Title
	}
	if opts.Description != nil {
		todo.Description = *opts.Description
	}
	if opts.Priority != nil && opts.Priority.IsValid() {
		todo.Priority = *opts.Priority
	}
	todo.UpdatedAt = s.timestamp(todo.UpdatedAt)

	return *todo, nil
}

// Delete removes a todo and shifts the following todos down one slot.
// It returns the removed todo.
func (s *Store) Delete(id int) (Todo, error) {
	index := s.indexOf(id)
	if index < 0 {
		return Todo{}, notFound(id)
	}

	removed := s.todos[index]
	copy(s.todos[index:], s.todos[index+1:])
	s.todos[len(s.todos)-1] = Todo{}
	s.todos = s.todos[:len(s.todos)-1]

	return removed, nil
}

// SetStatus marks a todo completed or pending.
// It reports whether the status changed; setting the current status is a
// no-op that leaves UpdatedAt alone.
func (s *Store) SetStatus(id int, completed bool) (bool, error) {
	index := s.indexOf(id)
	if index < 0 {
		return false, notFound(id)
	}

	status := StatusPending
	if completed {
		status = StatusCompleted
	}

	todo := &s.todos[index]
	if todo.Status == status {
		return false, nil
	}
	todo.Status = status
	todo.UpdatedAt = s.timestamp(todo.UpdatedAt)
	return true, nil
}

// Complete marks a todo completed.
func (s *Store) Complete(id int) (bool, error) {
	return s.SetStatus(id, true)
}

// Reopen marks a todo pending again.
func (s *Store) Reopen(id int) (bool, error) {
	return s.SetStatus(id, false)
}

// ListFilter configures which todos List-style queries return.
// Zero values match everything.
type ListFilter struct {
	Status               *Status
	Priority             *Priority
	TitleSubstring       string
	DescriptionSubstring string
}

// Filter returns the todos matching filter, in storage order.
func (s *Store) Filter(filter ListFilter) []Todo {
	titleSubstring := strings.ToLower(filter.TitleSubstring)
	descSubstring := strings.ToLower(filter.DescriptionSubstring)

	todos := make([]Todo, 0, len(s.todos))
	for _, item := range s.todos {
		if filter.Status != nil && item.Status != *filter.Status {
			continue
		}
		if filter.Priority != nil && item.Priority != *filter.Priority {
			continue
		}
		if titleSubstring != "" && !strings.Contains(strings.ToLower(item.Title), titleSubstring) {
			continue
		}
		if descSubstring != "" && !strings.Contains(strings.ToLower(item.Description), descSubstring) {
			continue
		}
		todos = append(todos, item)
	}
	return todos
}

func notFound(id int) error {
	return fmt.Errorf("%w: id %d", ErrNotFound, id)
}
