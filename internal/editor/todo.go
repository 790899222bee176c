package editor

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/BurntSushi/toml"

	internalstrings "github.com/amonks/td/internal/strings"
	"github.com/amonks/td/internal/validation"
	"github.com/amonks/td/todo"
)

// TodoData represents the data used to render the TOML template.
type TodoData struct {
	// IsUpdate is true when editing an existing todo.
	IsUpdate bool
	// ID is the todo ID (only for updates).
	ID int
	// Title is the todo title.
	Title string
	// Priority is the todo priority.
	Priority todo.Priority
	// Status is the todo status (only for updates).
	Status todo.Status
	// Description is the todo description.
	Description string
}

// DefaultCreateData returns TodoData with default values for creating a new todo.
func DefaultCreateData() TodoData {
	return TodoData{Priority: todo.PriorityMedium}
}

// DataFromTodo creates TodoData from an existing todo for editing.
func DataFromTodo(t *todo.Todo) TodoData {
	return TodoData{
		IsUpdate:    true,
		ID:          t.ID,
		Title:       t.Title,
		Priority:    t.Priority,
		Status:      t.Status,
		Description: t.Description,
	}
}

var todoTemplate = template.Must(template.New("todo").Funcs(template.FuncMap{
	"lower": strings.ToLower,
	"priorities": func() string {
		return validation.FormatValidValues(todo.ValidPriorities())
	},
	"statuses": func() string {
		return validation.FormatValidValues(todo.ValidStatuses())
	},
}).Parse(`{{- if .IsUpdate }}# todo #{{ .ID }}
{{ end -}}
title = {{ printf "%q" .Title }}
priority = {{ printf "%q" (lower .Priority.String) }} # {{ priorities }}
{{- if .IsUpdate }}
status = {{ printf "%q" (lower .Status.String) }} # {{ statuses }}
{{- end }}
---
{{ .Description }}
`))

// RenderTodoTOML renders the todo data as a TOML string for editing.
func RenderTodoTOML(data TodoData) (string, error) {
	var buf bytes.Buffer
	if err := todoTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render template: %w", err)
	}
	return buf.String(), nil
}

// ParsedTodo represents the parsed result from the TOML editor output.
type ParsedTodo struct {
	Title       string
	Priority    todo.Priority
	Status      *todo.Status
	Description string
}

type frontmatter struct {
	Title    string  `toml:"title"`
	Priority string  `toml:"priority"`
	Status   *string `toml:"status"`
}

// ParseTodoTOML parses the TOML content from the editor.
func ParseTodoTOML(content string) (*ParsedTodo, error) {
	header, body := splitFrontmatter(internalstrings.NormalizeNewlines(content))

	var fm frontmatter
	if _, err := toml.Decode(header, &fm); err != nil {
		return nil, fmt.Errorf("parse TOML: %w", err)
	}

	parsed := ParsedTodo{
		Title:       strings.TrimSpace(fm.Title),
		Priority:    todo.PriorityMedium,
		Description: internalstrings.TrimTrailingNewlines(strings.TrimLeft(body, "\n")),
	}

	if err := todo.ValidateTitle(parsed.Title); err != nil {
		return nil, err
	}
	if err := todo.ValidateDescription(parsed.Description); err != nil {
		return nil, err
	}
	if strings.TrimSpace(fm.Priority) != "" {
		priority, err := todo.ParsePriority(fm.Priority)
		if err != nil {
			return nil, validation.FormatInvalidValueError(todo.ErrInvalidPriority, fm.Priority, todo.ValidPriorities())
		}
		parsed.Priority = priority
	}
	if fm.Status != nil {
		status, err := todo.ParseStatus(*fm.Status)
		if err != nil {
			return nil, validation.FormatInvalidValueError(todo.ErrInvalidStatus, *fm.Status, todo.ValidStatuses())
		}
		parsed.Status = &status
	}

	return &parsed, nil
}

func splitFrontmatter(content string) (string, string) {
	content = strings.TrimLeft(content, "\n")
	if content == "" {
		return "", ""
	}

	lines := strings.Split(content, "\n")
	separatorIndex := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == "---" {
			separatorIndex = i
			break
		}
	}
	if separatorIndex == -1 {
		return content, ""
	}

	header := strings.Join(lines[:separatorIndex], "\n")
	body := strings.Join(lines[separatorIndex+1:], "\n")
	return header, body
}

// EditTodo opens the editor for a todo and returns the parsed result.
// For create: pass nil for existing.
// For update: pass the existing todo.
func EditTodo(existing *todo.Todo) (*ParsedTodo, error) {
	var data TodoData
	if existing == nil {
		data = DefaultCreateData()
	} else {
		data = DataFromTodo(existing)
	}
	return EditTodoWithData(data)
}

// EditTodoWithData opens the editor with pre-populated data and returns the parsed result.
func EditTodoWithData(data TodoData) (*ParsedTodo, error) {
	content, err := RenderTodoTOML(data)
	if err != nil {
		return nil, err
	}

	tmpfile, err := os.CreateTemp("", "td-todo-*.md")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpfile.Name()
	defer os.Remove(tmpPath)

	if _, err := tmpfile.WriteString(content); err != nil {
		tmpfile.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if err := tmpfile.Close(); err != nil {
		return nil, fmt.Errorf("close temp file: %w", err)
	}

	if err := Edit(tmpPath); err != nil {
		return nil, err
	}

	edited, err := os.ReadFile(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("read edited file: %w", err)
	}

	return ParseTodoTOML(string(edited))
}

// ToCreateOptions converts a ParsedTodo to todo.CreateOptions.
func (p *ParsedTodo) ToCreateOptions() todo.CreateOptions {
	return todo.CreateOptions{
		Description: p.Description,
		Priority:    p.Priority,
	}
}

// ToUpdateOptions converts a ParsedTodo to todo.UpdateOptions.
// The status, if any, is applied separately with todo.Store.SetStatus.
func (p *ParsedTodo) ToUpdateOptions() todo.UpdateOptions {
	title := p.Title
	description := p.Description
	return todo.UpdateOptions{
		Title:       &title,
		Description: &description,
		Priority:    todo.PriorityPtr(p.Priority),
	}
}
