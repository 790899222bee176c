package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amonks/td/internal/editor"
	"github.com/amonks/td/internal/ui"
	"github.com/amonks/td/todo"
)

// create
var createCmd = &cobra.Command{
	Use:   "create [title]",
	Short: "Create a new todo",
	Long: `Create a new todo.

When no title is given and stdin is a terminal, opens $EDITOR on a TOML
representation of the todo. Use --no-edit to skip the editor, or --edit
to force opening it.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCreate,
}

var (
	createPriority    string
	createDescription string
	createEdit        bool
	createNoEdit      bool
)

// update
var updateCmd = &cobra.Command{
	Use:   "update <id>...",
	Short: "Update one or more todos",
	Long: `Update one or more todos.

Fields that are not given keep their values. With no update flags and an
interactive terminal, opens $EDITOR once per ID. Use --no-edit to skip
the editor, or --edit to force opening it.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runUpdate,
}

var (
	updateTitle       string
	updateDescription string
	updatePriority    string
	updateStatus      string
	updateEdit        bool
	updateNoEdit      bool
)

// delete
var deleteCmd = &cobra.Command{
	Use:   "delete <id>...",
	Short: "Delete one or more todos",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDelete,
}

// complete
var completeCmd = &cobra.Command{
	Use:     "complete <id>...",
	Aliases: []string{"done"},
	Short:   "Mark one or more todos as completed",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSetStatus(cmd, args, true)
	},
}

// reopen
var reopenCmd = &cobra.Command{
	Use:   "reopen <id>...",
	Short: "Mark one or more todos as pending",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSetStatus(cmd, args, false)
	},
}

func init() {
	rootCmd.AddCommand(createCmd, updateCmd, deleteCmd, completeCmd, reopenCmd)

	createCmd.Flags().StringVarP(&createPriority, "priority", "p", "", "Priority (low, medium, high or 1-3; default medium)")
	createCmd.Flags().StringVarP(&createDescription, "description", "d", "", "Description (use '-' to read from stdin)")
	createCmd.Flags().BoolVarP(&createEdit, "edit", "e", false, "Open $EDITOR")
	createCmd.Flags().BoolVar(&createNoEdit, "no-edit", false, "Do not open $EDITOR")

	updateCmd.Flags().StringVar(&updateTitle, "title", "", "New title")
	updateCmd.Flags().StringVarP(&updateDescription, "description", "d", "", "New description (use '-' to read from stdin)")
	updateCmd.Flags().StringVarP(&updatePriority, "priority", "p", "", "New priority (low, medium, high or 1-3)")
	updateCmd.Flags().StringVar(&updateStatus, "status", "", "New status (pending, completed)")
	updateCmd.Flags().BoolVarP(&updateEdit, "edit", "e", false, "Open $EDITOR")
	updateCmd.Flags().BoolVar(&updateNoEdit, "no-edit", false, "Do not open $EDITOR")

	addTodoFlagAliases(createCmd, updateCmd)
}

func runCreate(cmd *cobra.Command, args []string) error {
	if cmd.Flags().Changed("description") {
		desc, err := resolveDescriptionFromStdin(createDescription, cmd.InOrStdin())
		if err != nil {
			return err
		}
		createDescription = desc
	}

	var priority todo.Priority
	if cmd.Flags().Changed("priority") {
		parsed, err := parsePriorityFlag(createPriority)
		if err != nil {
			return err
		}
		priority = parsed
	}

	title := ""
	if len(args) > 0 {
		title = args[0]
	}
	opts := todo.CreateOptions{Description: createDescription, Priority: priority}

	if shouldUseEditor(len(args) > 0, createEdit, createNoEdit, editor.IsInteractive()) {
		data := editor.DefaultCreateData()
		data.Title = title
		data.Description = createDescription
		if priority != 0 {
			data.Priority = priority
		}

		parsed, err := editor.EditTodoWithData(data)
		if err != nil {
			return err
		}
		title = parsed.Title
		opts = parsed.ToCreateOptions()
	} else if title == "" {
		return fmt.Errorf("title is required (use --edit to open editor)")
	}

	session, err := openTodoSession(cmd, false)
	if err != nil {
		return err
	}

	id, err := session.store.Create(title, opts)
	if err != nil {
		return err
	}
	if err := session.save(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created todo %s: %s\n", ui.HighlightID(id), title)
	return nil
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ids, err := parseIDs(args)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("description") {
		desc, err := resolveDescriptionFromStdin(updateDescription, cmd.InOrStdin())
		if err != nil {
			return err
		}
		updateDescription = desc
	}

	opts := todo.UpdateOptions{}
	if cmd.Flags().Changed("title") {
		opts.Title = &updateTitle
	}
	if cmd.Flags().Changed("description") {
		opts.Description = &updateDescription
	}
	if cmd.Flags().Changed("priority") {
		priority, err := parsePriorityFlag(updatePriority)
		if err != nil {
			return err
		}
		opts.Priority = &priority
	}
	var status *todo.Status
	if cmd.Flags().Changed("status") {
		parsed, err := parseStatusFlag(updateStatus)
		if err != nil {
			return err
		}
		status = &parsed
	}

	hasFlags := hasChangedFlags(cmd, "title", "description", "priority", "status")
	useEditor := shouldUseEditor(hasFlags, updateEdit, updateNoEdit, editor.IsInteractive())
	if !useEditor && !hasFlags {
		return fmt.Errorf("at least one update flag is required (use --edit to open editor)")
	}

	session, err := openTodoSession(cmd, false)
	if err != nil {
		return err
	}
	existing, err := lookupTodos(session.store, ids)
	if err != nil {
		return err
	}

	updated := make([]todo.Todo, 0, len(existing))
	for _, item := range existing {
		itemOpts := opts
		itemStatus := status

		if useEditor {
			data := editor.DataFromTodo(&item)
			if opts.Title != nil {
				data.Title = *opts.Title
			}
			if opts.Description != nil {
				data.Description = *opts.Description
			}
			if opts.Priority != nil {
				data.Priority = *opts.Priority
			}
			if status != nil {
				data.Status = *status
			}

			parsed, err := editor.EditTodoWithData(data)
			if err != nil {
				return err
			}
			itemOpts = parsed.ToUpdateOptions()
			itemStatus = parsed.Status
		}

		result := item
		if hasFieldUpdates(itemOpts) {
			result, err = session.store.Update(item.ID, itemOpts)
			if err != nil {
				return err
			}
		}
		if itemStatus != nil {
			if _, err := session.store.SetStatus(item.ID, *itemStatus == todo.StatusCompleted); err != nil {
				return err
			}
			result, _ = session.store.Find(item.ID)
		}
		updated = append(updated, result)
	}

	if err := session.save(); err != nil {
		return err
	}

	for _, item := range updated {
		fmt.Fprintf(cmd.OutOrStdout(), "Updated %s: %s\n", ui.HighlightID(item.ID), item.Title)
	}
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	ids, err := parseIDs(args)
	if err != nil {
		return err
	}

	session, err := openTodoSession(cmd, false)
	if err != nil {
		return err
	}
	if _, err := lookupTodos(session.store, ids); err != nil {
		return err
	}

	deleted := make([]todo.Todo, 0, len(ids))
	for _, id := range ids {
		item, err := session.store.Delete(id)
		if err != nil {
			return err
		}
		deleted = append(deleted, item)
	}

	if err := session.save(); err != nil {
		return err
	}

	for _, item := range deleted {
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s: %s\n", ui.HighlightID(item.ID), item.Title)
	}
	return nil
}

func runSetStatus(cmd *cobra.Command, args []string, completed bool) error {
	ids, err := parseIDs(args)
	if err != nil {
		return err
	}

	session, err := openTodoSession(cmd, false)
	if err != nil {
		return err
	}
	items, err := lookupTodos(session.store, ids)
	if err != nil {
		return err
	}

	changed := make([]bool, len(items))
	anyChanged := false
	for i, item := range items {
		changed[i], err = session.store.SetStatus(item.ID, completed)
		if err != nil {
			return err
		}
		anyChanged = anyChanged || changed[i]
	}

	if anyChanged {
		if err := session.save(); err != nil {
			return err
		}
	}

	verb, state := "Reopened", "pending"
	if completed {
		verb, state = "Completed", "completed"
	}
	for i, item := range items {
		if !changed[i] {
			fmt.Fprintf(cmd.OutOrStdout(), "Todo %s is already %s: %s\n", ui.HighlightID(item.ID), state, item.Title)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %s\n", verb, ui.HighlightID(item.ID), item.Title)
	}
	return nil
}
