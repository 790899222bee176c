package todo

import (
	"testing"
	"time"
)

var testEpoch = time.Date(2025, 9, 21, 10, 0, 0, 0, time.UTC)

// fakeClock returns a fixed time that only moves when advanced.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func newTestStore(t *testing.T, capacity int) (*Store, *fakeClock) {
	t.Helper()

	clock := &fakeClock{now: testEpoch}
	return New(Options{Capacity: capacity, Now: clock.Now}), clock
}

func mustCreate(t *testing.T, store *Store, title string, opts CreateOptions) int {
	t.Helper()

	id, err := store.Create(title, opts)
	if err != nil {
		t.Fatalf("create %q: %v", title, err)
	}
	return id
}

func ids(todos []Todo) []int {
	out := make([]int, 0, len(todos))
	for _, item := range todos {
		out = append(out, item.ID)
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func stringPtr(value string) *string {
	return &value
}
