package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/amonks/td/internal/markdown"
	"github.com/amonks/td/todo"
)

const (
	detailLineWidth   = 80
	descriptionIndent = 4
	noDescription     = "(No description)"
)

// FormatTodoTable renders todos as an aligned table, one row per todo in
// store order. now is used for the AGE column.
func FormatTodoTable(todos []todo.Todo, now time.Time) string {
	builder := NewTableBuilder([]string{"ID", "PRIORITY", "STATUS", "AGE", "TITLE"}, len(todos))
	for _, t := range todos {
		builder.AddRow([]string{
			HighlightID(t.ID),
			PriorityLabel(t.Priority),
			StatusLabel(t.Status),
			FormatDurationShort(now.Sub(t.CreatedAt)),
			TruncateTableCell(t.Title),
		})
	}
	return builder.String()
}

// FormatTodoDetail renders every field of a todo. A non-empty description
// is rendered as markdown below the other fields.
func FormatTodoDetail(t todo.Todo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "ID:       %s\n", HighlightID(t.ID))
	fmt.Fprintf(&b, "Title:    %s\n", t.Title)
	fmt.Fprintf(&b, "Priority: %s\n", PriorityLabel(t.Priority))
	fmt.Fprintf(&b, "Status:   %s\n", StatusLabel(t.Status))
	fmt.Fprintf(&b, "Created:  %s\n", FormatTimestamp(t.CreatedAt))
	fmt.Fprintf(&b, "Updated:  %s\n", FormatTimestamp(t.UpdatedAt))

	description := markdown.Render(detailLineWidth, descriptionIndent, t.Description)
	if description == "" {
		fmt.Fprintf(&b, "\nDescription: %s\n", noDescription)
		return b.String()
	}
	fmt.Fprintf(&b, "\nDescription:\n%s\n", description)
	return b.String()
}
