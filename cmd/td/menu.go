package main

import (
	"github.com/spf13/cobra"

	"github.com/amonks/td/internal/menu"
	"github.com/amonks/td/internal/paths"
	"github.com/amonks/td/todo"
	"github.com/amonks/td/todofile"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Run the interactive numbered menu",
	Long: `Run the interactive numbered menu.

Answers are read line by line from stdin, so the menu can also be driven
by a script. The list is saved when you choose Exit or when stdin ends.`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	rootCmd.AddCommand(menuCmd)
}

func runMenu(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	session, err := openTodoSessionWithOptions(sessionOptions{log: out, verbose: true})
	if err != nil {
		return err
	}

	m := menu.New(session.store, menu.Options{
		In:  cmd.InOrStdin(),
		Out: out,
		Save: func(*todo.Store) error {
			return session.save()
		},
		Export: func(store *todo.Store, path string) error {
			cwd, err := paths.WorkingDir()
			if err != nil {
				return err
			}
			return todofile.ExportText(store, paths.Resolve(cwd, path), session.opts)
		},
		ExportPath: session.cfg.Storage.ExportFile,
	})
	return m.Run()
}
