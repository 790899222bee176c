// Package main implements the td CLI tool.
package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		var exitErr interface{ ExitCode() int }
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "td",
	Short: "td - a small, fixed-capacity todo list",
	Long: `td keeps a todo list in a single binary file.

Every change is saved immediately, and the previous file is kept as
<file>.backup. Run "td menu" for the interactive numbered menu.`,
	SilenceUsage: true,
}

var (
	rootFile      string
	rootConfigDir string
	rootQuiet     bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootFile, "file", "f", "", "Todo data file (default: storage.data-file from config, or data/todos.dat)")
	rootCmd.PersistentFlags().StringVar(&rootConfigDir, "config-dir", "", "Directory holding td.toml; relative paths resolve against it (default: current directory)")
	rootCmd.PersistentFlags().BoolVarP(&rootQuiet, "quiet", "q", false, "Only print warnings on stderr")
}
