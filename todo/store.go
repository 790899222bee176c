package todo

import (
	"fmt"
	"time"
)

// Store holds todos in insertion order up to a fixed capacity.
// It is not safe for concurrent use.
type Store struct {
	todos    []Todo
	capacity int
	nextID   int
	now      func() time.Time
}

// Options configures a store.
type Options struct {
	// Capacity is the maximum number of todos. Zero means DefaultCapacity.
	Capacity int

	// Now supplies timestamps. If nil, time.Now is used.
	Now func() time.Time
}

func (opts Options) normalize() Options {
	if opts.Capacity <= 0 {
		opts.Capacity = DefaultCapacity
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return opts
}

// New returns an empty store whose first ID will be 1.
func New(opts Options) *Store {
	opts = opts.normalize()
	return &Store{
		todos:    make([]Todo, 0, opts.Capacity),
		capacity: opts.Capacity,
		nextID:   1,
		now:      opts.Now,
	}
}

// Snapshot is the complete persisted state of a store.
type Snapshot struct {
	Todos  []Todo
	NextID int
}

// Snapshot returns a copy of the store's records and ID counter.
func (s *Store) Snapshot() Snapshot {
	return Snapshot{Todos: s.List(), NextID: s.nextID}
}

// Restore rebuilds a store from a snapshot, keeping the record order and
// the ID counter exactly as given.
func Restore(snapshot Snapshot, opts Options) (*Store, error) {
	opts = opts.normalize()
	if len(snapshot.Todos) > opts.Capacity {
		return nil, fmt.Errorf("%w: %d todos > capacity %d", ErrCapacityExceeded, len(snapshot.Todos), opts.Capacity)
	}

	seen := make(map[int]struct{}, len(snapshot.Todos))
	for _, item := range snapshot.Todos {
		if _, ok := seen[item.ID]; ok {
			return nil, fmt.Errorf("%w: duplicate id %d", ErrInvalidSnapshot, item.ID)
		}
		seen[item.ID] = struct{}{}
		if item.ID >= snapshot.NextID {
			return nil, fmt.Errorf("%w: id %d not below next id %d", ErrInvalidSnapshot, item.ID, snapshot.NextID)
		}
	}
	if snapshot.NextID < 1 {
		return nil, fmt.Errorf("%w: next id %d", ErrInvalidSnapshot, snapshot.NextID)
	}

	todos := make([]Todo, len(snapshot.Todos), opts.Capacity)
	copy(todos, snapshot.Todos)
	return &Store{
		todos:    todos,
		capacity: opts.Capacity,
		nextID:   snapshot.NextID,
		now:      opts.Now,
	}, nil
}

// Len returns the number of live todos.
func (s *Store) Len() int {
	return len(s.todos)
}

// Capacity returns the maximum number of todos.
func (s *Store) Capacity() int {
	return s.capacity
}

// NextID returns the ID the next created todo will get.
func (s *Store) NextID() int {
	return s.nextID
}

// IsFull reports whether Create would fail with ErrCapacityExceeded.
func (s *Store) IsFull() bool {
	return len(s.todos) >= s.capacity
}

// Reset drops every todo. The ID counter is kept so IDs stay unique.
func (s *Store) Reset() {
	clear(s.todos)
	s.todos = s.todos[:0]
}

func (s *Store) indexOf(id int) int {
	for i := range s.todos {
		if s.todos[i].ID == id {
			return i
		}
	}
	return -1
}

// timestamp returns a time strictly after prev, so UpdatedAt always moves
// forward even when the clock has not.
func (s *Store) timestamp(prev time.Time) time.Time {
	now := s.now().Round(0)
	if !now.After(prev) {
		now = prev.Add(time.Nanosecond)
	}
	return now
}
