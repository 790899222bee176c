package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	internalstrings "github.com/amonks/td/internal/strings"
	"github.com/amonks/td/internal/validation"
	"github.com/amonks/td/todo"
)

func resolveDescriptionFromStdin(description string, reader io.Reader) (string, error) {
	if description != "-" {
		return description, nil
	}

	input, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("read description from stdin: %w", err)
	}

	return internalstrings.TrimTrailingNewlines(string(input)), nil
}

func shouldUseEditor(hasFlags bool, editFlag bool, noEditFlag bool, interactive bool) bool {
	if editFlag {
		return true
	}
	if noEditFlag {
		return false
	}
	if hasFlags {
		return false
	}
	return interactive
}

func hasChangedFlags(cmd *cobra.Command, flags ...string) bool {
	for _, flag := range flags {
		if cmd.Flags().Changed(flag) {
			return true
		}
	}
	return false
}

// parseIDs converts command arguments to todo IDs.
func parseIDs(args []string) ([]int, error) {
	ids := make([]int, 0, len(args))
	for _, arg := range args {
		id, err := strconv.Atoi(strings.TrimPrefix(strings.TrimSpace(arg), "#"))
		if err != nil || id < 1 {
			return nil, fmt.Errorf("invalid todo id %q", arg)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// lookupTodos returns the todos for ids, failing on the first unknown ID
// so that multi-ID commands change nothing unless every ID exists.
func lookupTodos(store *todo.Store, ids []int) ([]todo.Todo, error) {
	items := make([]todo.Todo, 0, len(ids))
	for _, id := range ids {
		item, err := store.Get(id)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func parsePriorityFlag(value string) (todo.Priority, error) {
	priority, err := todo.ParsePriority(value)
	if err != nil {
		return 0, validation.FormatInvalidValueError(todo.ErrInvalidPriority, value, todo.ValidPriorities())
	}
	return priority, nil
}

func parseStatusFlag(value string) (todo.Status, error) {
	status, err := todo.ParseStatus(value)
	if err != nil {
		return 0, validation.FormatInvalidValueError(todo.ErrInvalidStatus, value, todo.ValidStatuses())
	}
	return status, nil
}

func encodeJSON(w io.Writer, value any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}

// hasFieldUpdates reports whether opts changes anything besides status.
// A status-only update must not touch UpdatedAt when the status is already
// the requested one.
func hasFieldUpdates(opts todo.UpdateOptions) bool {
	return opts.Title != nil || opts.Description != nil || opts.Priority != nil
}
