package todofile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/amonks/td/todo"
)

const (
	// DefaultPath is where the data file lives when nothing else is configured.
	DefaultPath = "data/todos.dat"

	// DefaultExportPath is the suggested text export location.
	DefaultExportPath = "data/todos.txt"

	// BackupSuffix is appended to the data file name to form the backup name.
	BackupSuffix = ".backup"
)

// Options configures persistence operations.
type Options struct {
	// Capacity bounds the store built by Load. Zero means todo.DefaultCapacity.
	Capacity int

	// Logger receives persistence events. If nil, events are dropped.
	Logger Logger

	// Now supplies the export timestamp and the clock of loaded stores.
	// If nil, time.Now is used.
	Now func() time.Time
}

func (opts Options) normalize() Options {
	if opts.Capacity <= 0 {
		opts.Capacity = todo.DefaultCapacity
	}
	if opts.Logger == nil {
		opts.Logger = noopLogger{}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return opts
}

// BackupPath returns the backup file name for path.
func BackupPath(path string) string {
	return path + BackupSuffix
}

// Save writes the whole store to path.
//
// If path already exists it is first copied to BackupPath(path). A failed
// backup is logged and the save goes ahead. The new contents are written
// to a temporary file and renamed over path, so the previous file stays
// intact if writing fails.
func Save(store *todo.Store, path string, opts Options) error {
	opts = opts.normalize()

	if _, err := os.Stat(path); err == nil {
		backupErr := Backup(path)
		opts.Logger.Backup(BackupLog{Path: path, BackupPath: BackupPath(path), Err: backupErr})
	}

	if err := ensureParentDir(path); err != nil {
		return err
	}

	snapshot := store.Snapshot()
	err := writeFileAtomic(path, func(w io.Writer) error {
		return Encode(w, snapshot)
	})
	if err != nil {
		return err
	}

	opts.Logger.Save(SaveLog{Path: path, Count: len(snapshot.Todos)})
	return nil
}

// Load reads the store saved at path.
//
// A missing file is not an error: Load returns an empty store whose next
// ID is 1. The record count and next ID are restored exactly as saved.
func Load(path string, opts Options) (*todo.Store, error) {
	opts = opts.normalize()
	storeOpts := todo.Options{Capacity: opts.Capacity, Now: opts.Now}

	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		opts.Logger.Load(LoadLog{Path: path, Missing: true})
		return todo.New(storeOpts), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", ErrIO, path, err)
	}
	defer f.Close()

	snapshot, err := Decode(bufio.NewReader(f), opts.Capacity)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	store, err := todo.Restore(snapshot, storeOpts)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w: %w", path, ErrCorruptData, err)
	}

	opts.Logger.Load(LoadLog{Path: path, Count: store.Len()})
	return store, nil
}

// Backup copies the file at path byte for byte to BackupPath(path).
// It fails if path does not exist.
func Backup(path string) error {
	src, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: open %s: %w", ErrIO, path, err)
	}
	defer src.Close()

	backupPath := BackupPath(path)
	dst, err := os.Create(backupPath)
	if err != nil {
		return fmt.Errorf("%w: create %s: %w", ErrIO, backupPath, err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return fmt.Errorf("%w: copy to %s: %w", ErrIO, backupPath, err)
	}
	if err := dst.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %w", ErrIO, backupPath, err)
	}
	return nil
}

func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: create directory %s: %w", ErrIO, dir, err)
	}
	return nil
}

// writeFileAtomic writes to path+".tmp" and renames it over path once
// everything has been flushed.
func writeFileAtomic(path string, write func(io.Writer) error) error {
	tmpPath := path + ".tmp"
	f, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("%w: create temp file: %w", ErrIO, err)
	}

	buffered := bufio.NewWriter(f)
	err = write(buffered)
	if err == nil {
		err = buffered.Flush()
	}
	if err != nil {
		f.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("%w: write %s: %w", ErrIO, path, err)
	}

	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: close temp file: %w", ErrIO, err)
	}

	// Atomic rename
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: rename temp file: %w", ErrIO, err)
	}
	return nil
}
