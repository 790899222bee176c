package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/amonks/td/todo"
)

func TestResolveDescriptionFromStdin(t *testing.T) {
	cases := []struct {
		name string
		desc string
		in   string
		want string
	}{
		{
			name: "stdin with newline",
			desc: "-",
			in:   "Hello from stdin\n",
			want: "Hello from stdin",
		},
		{
			name: "stdin without newline",
			desc: "-",
			in:   "No newline",
			want: "No newline",
		},
		{
			name: "stdin with multiple newlines",
			desc: "-",
			in:   "Trim me\n\n\r\n",
			want: "Trim me",
		},
		{
			name: "literal description",
			desc: "Already set",
			in:   "ignored",
			want: "Already set",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := resolveDescriptionFromStdin(tc.desc, bytes.NewBufferString(tc.in))
			if err != nil {
				t.Fatalf("resolveDescriptionFromStdin failed: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestShouldUseEditor(t *testing.T) {
	cases := []struct {
		name        string
		hasFlags    bool
		edit        bool
		noEdit      bool
		interactive bool
		want        bool
	}{
		{name: "edit forces editor", hasFlags: true, edit: true, want: true},
		{name: "no-edit wins over interactive", noEdit: true, interactive: true, want: false},
		{name: "flags skip editor", hasFlags: true, interactive: true, want: false},
		{name: "interactive without flags", interactive: true, want: true},
		{name: "non-interactive without flags", want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := shouldUseEditor(tc.hasFlags, tc.edit, tc.noEdit, tc.interactive)
			if got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestParseIDs(t *testing.T) {
	ids, err := parseIDs([]string{"1", " 12 ", "#3"})
	if err != nil {
		t.Fatalf("parseIDs failed: %v", err)
	}
	if len(ids) != 3 || ids[0] != 1 || ids[1] != 12 || ids[2] != 3 {
		t.Fatalf("unexpected ids %v", ids)
	}

	for _, bad := range []string{"abc", "0", "-2", ""} {
		if _, err := parseIDs([]string{bad}); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

func TestLookupTodosFailsOnUnknownID(t *testing.T) {
	store := todo.New(todo.Options{})
	if _, err := store.Create("Buy milk", todo.CreateOptions{}); err != nil {
		t.Fatalf("create: %v", err)
	}

	items, err := lookupTodos(store, []int{1})
	if err != nil || len(items) != 1 || items[0].Title != "Buy milk" {
		t.Fatalf("unexpected lookup result %v, %v", items, err)
	}

	if _, err := lookupTodos(store, []int{1, 2}); !errors.Is(err, todo.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestParsePriorityFlag(t *testing.T) {
	got, err := parsePriorityFlag("HIGH")
	if err != nil || got != todo.PriorityHigh {
		t.Fatalf("expected high, got %v (%v)", got, err)
	}

	_, err = parsePriorityFlag("urgent")
	if !errors.Is(err, todo.ErrInvalidPriority) {
		t.Fatalf("expected ErrInvalidPriority, got %v", err)
	}
	want := `invalid todo: priority must be 1 (low), 2 (medium) or 3 (high): "urgent" (valid: low, medium, high)`
	if err.Error() != want {
		t.Fatalf("expected %q, got %q", want, err.Error())
	}
}

func TestParseStatusFlag(t *testing.T) {
	got, err := parseStatusFlag("done")
	if err != nil || got != todo.StatusCompleted {
		t.Fatalf("expected completed, got %v (%v)", got, err)
	}
	if _, err := parseStatusFlag("blocked"); !errors.Is(err, todo.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}
