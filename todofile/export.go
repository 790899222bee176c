package todofile

import (
	"fmt"
	"io"
	"os"
	"text/template"
	"time"

	"github.com/amonks/td/todo"
)

// exportTimeLayout matches C's ctime(3) without the trailing newline.
const exportTimeLayout = time.ANSIC

const noDescription = "(No description)"

var exportTemplate = template.Must(template.New("export").Funcs(template.FuncMap{
	"timestamp": func(t time.Time) string {
		return t.Format(exportTimeLayout)
	},
	"description": func(s string) string {
		if s == "" {
			return noDescription
		}
		return s
	},
}).Parse(`=== TODO LIST EXPORT ===
Export Date: {{ timestamp .ExportedAt }}

Total Todos: {{ len .Todos }}

{{ range .Todos -}}
--- Todo #{{ .ID }} ---
Title: {{ .Title }}
Description: {{ description .Description }}
Priority: {{ .Priority }}
Status: {{ .Status }}
Created: {{ timestamp .CreatedAt }}
Updated: {{ timestamp .UpdatedAt }}

{{ else -}}
No todos found.
{{ end -}}
`))

type exportData struct {
	ExportedAt time.Time
	Todos      []todo.Todo
}

// WriteText renders the human-readable export of todos to w.
func WriteText(w io.Writer, todos []todo.Todo, exportedAt time.Time) error {
	if err := exportTemplate.Execute(w, exportData{ExportedAt: exportedAt, Todos: todos}); err != nil {
		return fmt.Errorf("render export: %w", err)
	}
	return nil
}

// ExportText writes a human-readable rendering of the store to path,
// replacing whatever is there. No backup is taken.
func ExportText(store *todo.Store, path string, opts Options) error {
	opts = opts.normalize()

	if err := ensureParentDir(path); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: create %s: %w", ErrIO, path, err)
	}

	todos := store.List()
	if err := WriteText(f, todos, opts.Now()); err != nil {
		f.Close()
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %w", ErrIO, path, err)
	}

	opts.Logger.Export(ExportLog{Path: path, Count: len(todos)})
	return nil
}
