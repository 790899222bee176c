package main

import (
	"github.com/spf13/cobra"

	"github.com/amonks/td/internal/paths"
	"github.com/amonks/td/todofile"
)

// save
var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Rewrite the data file, keeping the previous one as a backup",
	Args:  cobra.NoArgs,
	RunE:  runSave,
}

// export
var exportCmd = &cobra.Command{
	Use:   "export [path]",
	Short: "Write a human-readable text export",
	Long: `Write a human-readable text export of every todo.

The path defaults to storage.export-file from config, or data/todos.txt.
An existing file at the path is replaced.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(saveCmd, exportCmd)
}

func runSave(cmd *cobra.Command, args []string) error {
	session, err := openTodoSession(cmd, true)
	if err != nil {
		return err
	}
	return session.save()
}

func runExport(cmd *cobra.Command, args []string) error {
	session, err := openTodoSession(cmd, true)
	if err != nil {
		return err
	}

	path := session.cfg.Storage.ExportFile
	if len(args) > 0 {
		cwd, err := paths.WorkingDir()
		if err != nil {
			return err
		}
		path = paths.Resolve(cwd, args[0])
	}
	return todofile.ExportText(session.store, path, session.opts)
}
