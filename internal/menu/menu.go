// Package menu runs the numbered interactive todo menu.
//
// The menu reads answers line by line, so it works the same on a terminal
// and on piped input. Prompts never fail: bad numbers, empty titles and
// unknown priorities are retried a few times and then replaced by a
// default. When the input ends the store is saved and the menu returns.
package menu

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/amonks/td/internal/ui"
	"github.com/amonks/td/todo"
)

// Options configures a menu session.
type Options struct {
	// In supplies the user's answers.
	In io.Reader

	// Out receives prompts and results.
	Out io.Writer

	// Save persists the store. It runs for "save", "exit" and end of input.
	Save func(*todo.Store) error

	// Export writes a text export of the store to path.
	Export func(store *todo.Store, path string) error

	// ExportPath is shown as the example export file name.
	ExportPath string

	// Now is used for the AGE column. If nil, time.Now is used.
	Now func() time.Time
}

// Menu is one interactive session over a store.
type Menu struct {
	store *todo.Store
	opts  Options
	p     *prompter
}

// New returns a menu over store. Nil callbacks turn the matching menu
// entries into no-ops.
func New(store *todo.Store, opts Options) *Menu {
	if opts.In == nil {
		opts.In = eofReader{}
	}
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	if opts.Save == nil {
		opts.Save = func(*todo.Store) error { return nil }
	}
	if opts.Export == nil {
		opts.Export = func(*todo.Store, string) error { return nil }
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Menu{
		store: store,
		opts:  opts,
		p:     &prompter{in: bufio.NewReader(opts.In), out: opts.Out},
	}
}

type choice int

const (
	choiceCreate choice = iota + 1
	choiceList
	choiceView
	choiceUpdate
	choiceDelete
	choiceStatus
	choiceSave
	choiceExport
	choiceExit
)

var menuItems = []struct {
	choice choice
	label  string
}{
	{choiceCreate, "Create new todo"},
	{choiceList, "View all todos"},
	{choiceView, "View specific todo"},
	{choiceUpdate, "Update todo"},
	{choiceDelete, "Delete todo"},
	{choiceStatus, "Mark todo as completed/pending"},
	{choiceSave, "Save todos to file"},
	{choiceExport, "Export todos to text file"},
	{choiceExit, "Exit"},
}

// Run shows the menu until the user exits or the input ends. The store is
// saved on the way out; the returned error is that final save's.
func (m *Menu) Run() error {
	m.p.printf("=== Todo List Manager ===\n")
	m.p.printf("Welcome to your personal todo list!\n")

	for {
		m.showMenu()
		selected, err := m.p.readInt("Enter your choice")
		if err != nil {
			m.p.printf("\nInput stream ended. Exiting...\n")
			return m.finish()
		}

		if choice(selected) == choiceExit {
			m.p.printf("Saving todos before exit...\n")
			return m.finish()
		}
		m.dispatch(choice(selected))

		m.p.printf("\nPress Enter to continue...")
		if _, err := m.p.readLine(); err != nil {
			m.p.printf("\nInput stream ended. Exiting...\n")
			return m.finish()
		}
	}
}

func (m *Menu) finish() error {
	err := m.save()
	m.p.printf("\nThank you for using Todo List Manager!\n")
	return err
}

func (m *Menu) showMenu() {
	m.p.printf("\n=== MAIN MENU ===\n")
	for _, item := range menuItems {
		m.p.printf("%d. %s\n", int(item.choice), item.label)
	}
	m.p.printf("================\n")
}

func (m *Menu) dispatch(selected choice) {
	switch selected {
	case choiceCreate:
		m.create()
	case choiceList:
		m.list()
	case choiceView:
		m.view()
	case choiceUpdate:
		m.update()
	case choiceDelete:
		m.delete()
	case choiceStatus:
		m.changeStatus()
	case choiceSave:
		m.save()
	case choiceExport:
		m.export()
	default:
		m.p.printf("Invalid choice. Please try again.\n")
	}
}

func (m *Menu) create() {
	m.p.printf("\n=== CREATE NEW TODO ===\n")

	title := m.p.readString("Enter todo title")
	description, _ := m.p.promptLine("Enter todo description (optional, press Enter to skip): ")
	priority := m.p.readPriority()

	id, err := m.store.Create(title, todo.CreateOptions{Description: description, Priority: priority})
	if err != nil {
		m.reportError(err)
		return
	}
	m.p.printf("Todo created successfully with ID: %d\n", id)
}

func (m *Menu) list() {
	todos := m.store.List()
	if len(todos) == 0 {
		m.p.printf("No todos found.\n")
		return
	}

	m.p.printf("\n=== TODO LIST ===\n")
	m.p.printf("%s", ui.FormatTodoTable(todos, m.opts.Now()))
	m.p.printf("\nTotal todos: %d\n", len(todos))
}

func (m *Menu) view() {
	if m.store.Len() == 0 {
		m.p.printf("No todos available to view.\n")
		return
	}

	id, err := m.p.readInt("Enter todo ID to view")
	if err != nil {
		return
	}
	item, ok := m.store.Find(id)
	if !ok {
		m.p.printf("Todo with ID %d not found.\n", id)
		return
	}
	m.p.printf("\n=== TODO DETAILS ===\n")
	m.p.printf("%s", ui.FormatTodoDetail(item))
	m.p.printf("===================\n")
}

func (m *Menu) update() {
	if m.store.Len() == 0 {
		m.p.printf("No todos available to update.\n")
		return
	}

	m.p.printf("\n=== UPDATE TODO ===\n")
	m.list()

	id, err := m.p.readInt("\nEnter todo ID to update")
	if err != nil {
		return
	}
	if _, ok := m.store.Find(id); !ok {
		m.p.printf("Todo with ID %d not found.\n", id)
		return
	}

	var opts todo.UpdateOptions
	if m.p.confirm("Update title?") {
		title := m.p.readString("Enter new title")
		opts.Title = &title
	}
	if m.p.confirm("Update description?") {
		if description, err := m.p.promptLine("Enter new description: "); err == nil {
			opts.Description = &description
		}
	}
	if m.p.confirm("Update priority?") {
		opts.Priority = todo.PriorityPtr(m.p.readPriority())
	}

	if _, err := m.store.Update(id, opts); err != nil {
		m.reportError(err)
		return
	}
	m.p.printf("Todo with ID %d updated successfully.\n", id)
}

func (m *Menu) delete() {
	if m.store.Len() == 0 {
		m.p.printf("No todos available to delete.\n")
		return
	}

	m.p.printf("\n=== DELETE TODO ===\n")
	m.list()

	id, err := m.p.readInt("\nEnter todo ID to delete")
	if err != nil {
		return
	}
	if !m.p.confirm(fmt.Sprintf("Are you sure you want to delete todo with ID %d?", id)) {
		m.p.printf("Delete operation cancelled.\n")
		return
	}

	if _, err := m.store.Delete(id); err != nil {
		m.reportError(err)
		return
	}
	m.p.printf("Todo with ID %d deleted successfully.\n", id)
}

func (m *Menu) changeStatus() {
	if m.store.Len() == 0 {
		m.p.printf("No todos available.\n")
		return
	}

	m.p.printf("\n=== CHANGE TODO STATUS ===\n")
	m.list()

	id, err := m.p.readInt("\nEnter todo ID")
	if err != nil {
		return
	}

	m.p.printf("1. Mark as completed\n")
	m.p.printf("2. Mark as pending\n")
	selected, err := m.p.readInt("Enter your choice")
	if err != nil {
		return
	}

	var completed bool
	switch selected {
	case 1:
		completed = true
	case 2:
		completed = false
	default:
		m.p.printf("Invalid choice.\n")
		return
	}

	changed, err := m.store.SetStatus(id, completed)
	if err != nil {
		m.reportError(err)
		return
	}
	status := todo.StatusPending
	if completed {
		status = todo.StatusCompleted
	}
	if !changed {
		m.p.printf("Todo with ID %d is already %s.\n", id, lowerStatus(status))
		return
	}
	m.p.printf("Todo with ID %d marked as %s.\n", id, lowerStatus(status))
}

func (m *Menu) save() error {
	if err := m.opts.Save(m.store); err != nil {
		m.reportError(err)
		return err
	}
	return nil
}

func (m *Menu) export() {
	prompt := "Enter filename for export"
	if m.opts.ExportPath != "" {
		prompt = fmt.Sprintf("%s (e.g., %s)", prompt, m.opts.ExportPath)
	}
	path := m.p.readString(prompt)
	if err := m.opts.Export(m.store, path); err != nil {
		m.reportError(err)
	}
}

func (m *Menu) reportError(err error) {
	m.p.printf("Error: %v\n", err)
}

func lowerStatus(status todo.Status) string {
	return strings.ToLower(status.String())
}

type eofReader struct{}

func (eofReader) Read([]byte) (int, error) {
	return 0, io.EOF
}
