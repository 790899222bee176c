package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/amonks/td/internal/config"
	"github.com/amonks/td/internal/paths"
	"github.com/amonks/td/todo"
	"github.com/amonks/td/todofile"
)

// todoSession is a loaded store plus everything needed to write it back.
type todoSession struct {
	cfg   *config.Config
	path  string
	opts  todofile.Options
	store *todo.Store
}

type sessionOptions struct {
	// log receives persistence messages.
	log io.Writer
	// verbose prints info messages as well as warnings.
	verbose bool
}

// openTodoSession loads configuration and the data file. Persistence
// messages go to stderr and are quiet unless verbose is set.
func openTodoSession(cmd *cobra.Command, verbose bool) (*todoSession, error) {
	return openTodoSessionWithOptions(sessionOptions{log: cmd.ErrOrStderr(), verbose: verbose})
}

func openTodoSessionWithOptions(opts sessionOptions) (*todoSession, error) {
	cwd, err := paths.WorkingDir()
	if err != nil {
		return nil, err
	}

	projectDir := cwd
	if rootConfigDir != "" {
		projectDir = paths.Resolve(cwd, rootConfigDir)
	}

	cfg, err := config.Load(projectDir)
	if err != nil {
		return nil, err
	}

	path := cfg.Storage.DataFile
	if rootFile != "" {
		path = paths.Resolve(cwd, rootFile)
	}

	fileOpts := todofile.Options{
		Capacity: cfg.Storage.Capacity,
		Logger:   todofile.NewConsoleLogger(opts.log, rootQuiet || !opts.verbose),
	}
	store, err := todofile.Load(path, fileOpts)
	if err != nil {
		return nil, err
	}

	return &todoSession{cfg: cfg, path: path, opts: fileOpts, store: store}, nil
}

func (s *todoSession) save() error {
	return todofile.Save(s.store, s.path, s.opts)
}
