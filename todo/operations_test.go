package todo

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestStore_Create(t *testing.T) {
	store, _ := newTestStore(t, 0)

	id, err := store.Create("Buy milk", CreateOptions{})
	if err != nil {
		t.Fatalf("failed to create todo: %v", err)
	}
	if id != 1 {
		t.Errorf("expected first id 1, got %d", id)
	}

	todo, ok := store.Find(id)
	if !ok {
		t.Fatalf("created todo %d not found", id)
	}
	if todo.Title != "Buy milk" {
		t.Errorf("expected title 'Buy milk', got %q", todo.Title)
	}
	if todo.Status != StatusPending {
		t.Errorf("expected pending status, got %v", todo.Status)
	}
	if todo.Priority != PriorityMedium {
		t.Errorf("expected default priority medium, got %v", todo.Priority)
	}
	if !todo.CreatedAt.Equal(testEpoch) || !todo.UpdatedAt.Equal(todo.CreatedAt) {
		t.Errorf("expected created == updated == %v, got %v / %v", testEpoch, todo.CreatedAt, todo.UpdatedAt)
	}
	if store.NextID() != 2 {
		t.Errorf("expected next id 2, got %d", store.NextID())
	}
}

func TestStore_Create_WithOptions(t *testing.T) {
	store, _ := newTestStore(t, 0)

	id := mustCreate(t, store, "Call dentist", CreateOptions{
		Description: "Follow-up",
		Priority:    PriorityHigh,
	})

	todo, _ := store.Find(id)
	if todo.Description != "Follow-up" {
		t.Errorf("expected description 'Follow-up', got %q", todo.Description)
	}
	if todo.Priority != PriorityHigh {
		t.Errorf("expected priority high, got %v", todo.Priority)
	}
}

func TestStore_Create_Validation(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		opts    CreateOptions
		wantErr error
	}{
		{"empty title", "", CreateOptions{}, ErrEmptyTitle},
		{"title at max", strings.Repeat("t", MaxTitleLength), CreateOptions{}, ErrTitleTooLong},
		{"description at max", "ok", CreateOptions{Description: strings.Repeat("d", MaxDescriptionLength)}, ErrDescriptionTooLong},
		{"bad priority", "ok", CreateOptions{Priority: Priority(9)}, ErrInvalidPriority},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, _ := newTestStore(t, 0)

			_, err := store.Create(tt.title, tt.opts)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if !errors.Is(err, ErrValidation) {
				t.Errorf("expected a validation error, got %v", err)
			}
			if store.Len() != 0 || store.NextID() != 1 {
				t.Errorf("store changed on failure: len=%d next=%d", store.Len(), store.NextID())
			}
		})
	}
}

func TestStore_Create_CapacityExceeded(t *testing.T) {
	store, _ := newTestStore(t, 2)

	mustCreate(t, store, "one", CreateOptions{})
	mustCreate(t, store, "two", CreateOptions{})

	_, err := store.Create("three", CreateOptions{})
	if !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("expected ErrCapacityExceeded, got %v", err)
	}
	if store.Len() != 2 {
		t.Errorf("expected 2 todos, got %d", store.Len())
	}
	if store.NextID() != 3 {
		t.Errorf("expected next id unchanged at 3, got %d", store.NextID())
	}

	// Freeing a slot allows creation again, with a fresh ID.
	if _, err := store.Delete(1); err != nil {
		t.Fatalf("delete: %v", err)
	}
	id := mustCreate(t, store, "three", CreateOptions{})
	if id != 3 {
		t.Errorf("expected id 3, got %d", id)
	}
}

func TestStore_IDsNeverReused(t *testing.T) {
	store, _ := newTestStore(t, 5)

	var assigned []int
	for round := 0; round < 4; round++ {
		for store.Len() < store.Capacity() {
			assigned = append(assigned, mustCreate(t, store, "item", CreateOptions{}))
		}
		for _, item := range store.List()[:3] {
			if _, err := store.Delete(item.ID); err != nil {
				t.Fatalf("delete %d: %v", item.ID, err)
			}
		}
	}

	for i := 1; i < len(assigned); i++ {
		if assigned[i] <= assigned[i-1] {
			t.Fatalf("ids not strictly increasing: %v", assigned)
		}
	}
	for _, item := range store.List() {
		if item.ID >= store.NextID() {
			t.Errorf("id %d not below next id %d", item.ID, store.NextID())
		}
	}
}

func TestStore_Find_NotFound(t *testing.T) {
	store, _ := newTestStore(t, 0)
	mustCreate(t, store, "exists", CreateOptions{})

	if _, ok := store.Find(42); ok {
		t.Error("expected missing todo to report ok == false")
	}

	_, err := store.Get(42)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_Find_ReturnsCopy(t *testing.T) {
	store, _ := newTestStore(t, 0)
	id := mustCreate(t, store, "original", CreateOptions{})

	found, _ := store.Find(id)
	found.Title = "mutated"

	again, _ := store.Find(id)
	if again.Title != "original" {
		t.Errorf("store was mutated through a returned copy: %q", again.Title)
	}
}

func TestStore_List(t *testing.T) {
	store, _ := newTestStore(t, 0)

	empty := store.List()
	if empty == nil || len(empty) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", empty)
	}

	mustCreate(t, store, "a", CreateOptions{})
	mustCreate(t, store, "b", CreateOptions{})
	mustCreate(t, store, "c", CreateOptions{})

	if got := ids(store.List()); !equalInts(got, []int{1, 2, 3}) {
		t.Errorf("expected [1 2 3], got %v", got)
	}
}

func TestStore_Update(t *testing.T) {
	store, clock := newTestStore(t, 0)
	id := mustCreate(t, store, "Buy milk", CreateOptions{Description: "2 liters", Priority: PriorityLow})

	clock.Advance(time.Minute)
	updated, err := store.Update(id, UpdateOptions{Title: stringPtr("Buy oat milk")})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.Title != "Buy oat milk" {
		t.Errorf("expected new title, got %q", updated.Title)
	}
	if updated.Description != "2 liters" {
		t.Errorf("description should be unchanged, got %q", updated.Description)
	}
	if updated.Priority != PriorityLow {
		t.Errorf("priority should be unchanged, got %v", updated.Priority)
	}
	if !updated.UpdatedAt.Equal(testEpoch.Add(time.Minute)) {
		t.Errorf("expected updated_at to advance to %v, got %v", testEpoch.Add(time.Minute), updated.UpdatedAt)
	}
	if !updated.CreatedAt.Equal(testEpoch) {
		t.Errorf("created_at must not change, got %v", updated.CreatedAt)
	}
}

func TestStore_Update_ClearsDescription(t *testing.T) {
	store, _ := newTestStore(t, 0)
	id := mustCreate(t, store, "Task", CreateOptions{Description: "details"})

	updated, err := store.Update(id, UpdateOptions{Description: stringPtr("")})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Description != "" {
		t.Errorf("expected description cleared, got %q", updated.Description)
	}
}

func TestStore_Update_PriorityOutOfRangeIgnored(t *testing.T) {
	store, clock := newTestStore(t, 0)
	id := mustCreate(t, store, "Task", CreateOptions{Priority: PriorityHigh})

	clock.Advance(time.Second)
	updated, err := store.Update(id, UpdateOptions{
		Title:    stringPtr("Renamed"),
		Priority: PriorityPtr(Priority(7)),
	})
	if err != nil {
		t.Fatalf("out-of-range priority must not be an error: %v", err)
	}
	if updated.Priority != PriorityHigh {
		t.Errorf("expected priority to stay high, got %v", updated.Priority)
	}
	if updated.Title != "Renamed" {
		t.Errorf("expected the valid field to apply, got %q", updated.Title)
	}
}

func TestStore_Update_IsAtomic(t *testing.T) {
	store, clock := newTestStore(t, 0)
	id := mustCreate(t, store, "Keep me", CreateOptions{Description: "keep", Priority: PriorityLow})
	before, _ := store.Find(id)

	clock.Advance(time.Hour)
	_, err := store.Update(id, UpdateOptions{
		Title:       stringPtr("Would change"),
		Description: stringPtr(strings.Repeat("x", MaxDescriptionLength)),
		Priority:    PriorityPtr(PriorityHigh),
	})
	if !errors.Is(err, ErrDescriptionTooLong) {
		t.Fatalf("expected ErrDescriptionTooLong, got %v", err)
	}

	after, _ := store.Find(id)
	if after != before {
		t.Errorf("todo modified by failed update:\nbefore %+v\nafter  %+v", before, after)
	}
}

func TestStore_Update_RejectsEmptyTitle(t *testing.T) {
	store, _ := newTestStore(t, 0)
	id := mustCreate(t, store, "Task", CreateOptions{})

	if _, err := store.Update(id, UpdateOptions{Title: stringPtr("")}); !errors.Is(err, ErrEmptyTitle) {
		t.Errorf("expected ErrEmptyTitle, got %v", err)
	}
}

func TestStore_Update_NotFound(t *testing.T) {
	store, _ := newTestStore(t, 0)

	_, err := store.Update(9, UpdateOptions{Title: stringPtr("x")})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_Update_AdvancesWhenClockStands(t *testing.T) {
	store, _ := newTestStore(t, 0)
	id := mustCreate(t, store, "Task", CreateOptions{})

	updated, err := store.Update(id, UpdateOptions{Priority: PriorityPtr(PriorityLow)})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !updated.UpdatedAt.After(updated.CreatedAt) {
		t.Errorf("expected updated_at after created_at, got %v <= %v", updated.UpdatedAt, updated.CreatedAt)
	}
}

func TestStore_Delete(t *testing.T) {
	store, _ := newTestStore(t, 0)
	mustCreate(t, store, "a", CreateOptions{})
	mustCreate(t, store, "b", CreateOptions{})
	mustCreate(t, store, "c", CreateOptions{})
	mustCreate(t, store, "d", CreateOptions{})

	removed, err := store.Delete(2)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if removed.Title != "b" {
		t.Errorf("expected removed todo 'b', got %q", removed.Title)
	}

	if _, ok := store.Find(2); ok {
		t.Error("deleted todo still found")
	}
	if got := ids(store.List()); !equalInts(got, []int{1, 3, 4}) {
		t.Errorf("expected [1 3 4], got %v", got)
	}

	if _, err := store.Delete(2); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestStore_SetStatus(t *testing.T) {
	store, clock := newTestStore(t, 0)
	id := mustCreate(t, store, "Task", CreateOptions{})

	clock.Advance(time.Minute)
	changed, err := store.SetStatus(id, false)
	if err != nil {
		t.Fatalf("set pending: %v", err)
	}
	if changed {
		t.Error("setting the current status should be a no-op")
	}
	todo, _ := store.Find(id)
	if !todo.UpdatedAt.Equal(testEpoch) {
		t.Errorf("no-op must not refresh updated_at, got %v", todo.UpdatedAt)
	}

	changed, err = store.Complete(id)
	if err != nil || !changed {
		t.Fatalf("complete: changed=%v err=%v", changed, err)
	}
	todo, _ = store.Find(id)
	if todo.Status != StatusCompleted {
		t.Errorf("expected completed, got %v", todo.Status)
	}
	if !todo.UpdatedAt.Equal(testEpoch.Add(time.Minute)) {
		t.Errorf("transition must refresh updated_at, got %v", todo.UpdatedAt)
	}

	completedAt := todo.UpdatedAt
	clock.Advance(time.Minute)
	if changed, _ := store.Complete(id); changed {
		t.Error("completing twice should be a no-op")
	}
	todo, _ = store.Find(id)
	if !todo.UpdatedAt.Equal(completedAt) {
		t.Errorf("no-op must not refresh updated_at, got %v", todo.UpdatedAt)
	}

	changed, err = store.Reopen(id)
	if err != nil || !changed {
		t.Fatalf("reopen: changed=%v err=%v", changed, err)
	}
	todo, _ = store.Find(id)
	if todo.Status != StatusPending || !todo.UpdatedAt.After(completedAt) {
		t.Errorf("expected pending with newer updated_at, got %v at %v", todo.Status, todo.UpdatedAt)
	}
}

func TestStore_SetStatus_NotFound(t *testing.T) {
	store, _ := newTestStore(t, 0)

	if _, err := store.SetStatus(3, true); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_Filter(t *testing.T) {
	store, _ := newTestStore(t, 0)
	mustCreate(t, store, "Buy milk", CreateOptions{Priority: PriorityLow})
	mustCreate(t, store, "Call dentist", CreateOptions{Description: "Follow-up", Priority: PriorityHigh})
	mustCreate(t, store, "Buy bread", CreateOptions{Priority: PriorityHigh})
	if _, err := store.Complete(3); err != nil {
		t.Fatalf("complete: %v", err)
	}

	completed := StatusCompleted
	high := PriorityHigh
	tests := []struct {
		name   string
		filter ListFilter
		want   []int
	}{
		{"all", ListFilter{}, []int{1, 2, 3}},
		{"status", ListFilter{Status: &completed}, []int{3}},
		{"priority", ListFilter{Priority: &high}, []int{2, 3}},
		{"title", ListFilter{TitleSubstring: "buy"}, []int{1, 3}},
		{"description", ListFilter{DescriptionSubstring: "FOLLOW"}, []int{2}},
		{"combined", ListFilter{Priority: &high, TitleSubstring: "buy"}, []int{3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ids(store.Filter(tt.filter)); !equalInts(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestStore_Scenario(t *testing.T) {
	store, _ := newTestStore(t, 0)

	first := mustCreate(t, store, "Buy milk", CreateOptions{Priority: PriorityMedium})
	second := mustCreate(t, store, "Call dentist", CreateOptions{Description: "Follow-up", Priority: PriorityHigh})
	if first != 1 || second != 2 {
		t.Fatalf("expected ids 1 and 2, got %d and %d", first, second)
	}

	if _, err := store.Delete(1); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok := store.Find(1); ok {
		t.Error("expected todo 1 to be gone")
	}
	if got := ids(store.List()); !equalInts(got, []int{2}) {
		t.Errorf("expected [2], got %v", got)
	}

	third := mustCreate(t, store, "Water plants", CreateOptions{})
	if third != 3 {
		t.Errorf("expected id 3, got %d", third)
	}
}
