package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/amonks/td/internal/ui"
	"github.com/amonks/td/todo"
)

// list
var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List todos",
	Args:    cobra.NoArgs,
	RunE:    runList,
}

var (
	listStatus      string
	listPriority    string
	listTitle       string
	listDescription string
	listJSON        bool
)

// show
var showCmd = &cobra.Command{
	Use:   "show <id>...",
	Short: "Show detailed information about todos",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runShow,
}

var showJSON bool

func init() {
	rootCmd.AddCommand(listCmd, showCmd)

	listCmd.Flags().StringVar(&listStatus, "status", "", "Filter by status (pending, completed)")
	listCmd.Flags().StringVar(&listPriority, "priority", "", "Filter by priority (low, medium, high)")
	listCmd.Flags().StringVar(&listTitle, "title", "", "Filter by title substring")
	listCmd.Flags().StringVar(&listDescription, "description", "", "Filter by description substring")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")

	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output as JSON")

	addTodoFlagAliases(listCmd)
}

func buildListFilter(cmd *cobra.Command) (todo.ListFilter, error) {
	filter := todo.ListFilter{
		TitleSubstring:       listTitle,
		DescriptionSubstring: listDescription,
	}
	if cmd.Flags().Changed("status") {
		status, err := parseStatusFlag(listStatus)
		if err != nil {
			return todo.ListFilter{}, err
		}
		filter.Status = &status
	}
	if cmd.Flags().Changed("priority") {
		priority, err := parsePriorityFlag(listPriority)
		if err != nil {
			return todo.ListFilter{}, err
		}
		filter.Priority = &priority
	}
	return filter, nil
}

func runList(cmd *cobra.Command, args []string) error {
	filter, err := buildListFilter(cmd)
	if err != nil {
		return err
	}

	session, err := openTodoSession(cmd, false)
	if err != nil {
		return err
	}

	todos := session.store.Filter(filter)
	if listJSON {
		return encodeJSON(cmd.OutOrStdout(), todos)
	}

	if len(todos) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No todos found.")
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), ui.FormatTodoTable(todos, time.Now()))
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	ids, err := parseIDs(args)
	if err != nil {
		return err
	}

	session, err := openTodoSession(cmd, false)
	if err != nil {
		return err
	}
	todos, err := lookupTodos(session.store, ids)
	if err != nil {
		return err
	}

	if showJSON {
		return encodeJSON(cmd.OutOrStdout(), todos)
	}

	for i, item := range todos {
		if i > 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "---")
		}
		fmt.Fprint(cmd.OutOrStdout(), ui.FormatTodoDetail(item))
	}
	return nil
}
