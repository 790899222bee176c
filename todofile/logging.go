package todofile

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Logger receives one entry per persistence event.
type Logger interface {
	Backup(BackupLog)
	Save(SaveLog)
	Load(LoadLog)
	Export(ExportLog)
}

// BackupLog describes a backup attempt made before a save.
type BackupLog struct {
	Path       string
	BackupPath string
	Err        error
}

// SaveLog describes a completed save.
type SaveLog struct {
	Path  string
	Count int
}

// LoadLog describes a completed load.
type LoadLog struct {
	Path    string
	Count   int
	Missing bool
}

// ExportLog describes a completed text export.
type ExportLog struct {
	Path  string
	Count int
}

type noopLogger struct{}

func (noopLogger) Backup(BackupLog) {}
func (noopLogger) Save(SaveLog)     {}
func (noopLogger) Load(LoadLog)     {}
func (noopLogger) Export(ExportLog) {}

// ConsoleLogger writes styled, human-readable log lines.
type ConsoleLogger struct {
	writer     io.Writer
	infoStyle  lipgloss.Style
	warnStyle  lipgloss.Style
	quietInfos bool
}

// NewConsoleLogger builds a styled logger. When quiet is true only
// warnings are written.
func NewConsoleLogger(writer io.Writer, quiet bool) *ConsoleLogger {
	if writer == nil {
		writer = io.Discard
	}
	return &ConsoleLogger{
		writer:     writer,
		infoStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		warnStyle:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208")),
		quietInfos: quiet,
	}
}

// Backup logs a failed backup as a warning. Successful backups are quiet.
func (logger *ConsoleLogger) Backup(entry BackupLog) {
	if logger == nil || entry.Err == nil {
		return
	}
	logger.warn(fmt.Sprintf("could not back up %s to %s: %v", entry.Path, entry.BackupPath, entry.Err))
}

// Save logs a completed save.
func (logger *ConsoleLogger) Save(entry SaveLog) {
	if logger == nil {
		return
	}
	logger.info(fmt.Sprintf("Saved %s to %s", pluralTodos(entry.Count), entry.Path))
}

// Load logs a completed load.
func (logger *ConsoleLogger) Load(entry LoadLog) {
	if logger == nil {
		return
	}
	if entry.Missing {
		logger.info(fmt.Sprintf("No todo file at %s; starting with an empty list", entry.Path))
		return
	}
	logger.info(fmt.Sprintf("Loaded %s from %s", pluralTodos(entry.Count), entry.Path))
}

// Export logs a completed export.
func (logger *ConsoleLogger) Export(entry ExportLog) {
	if logger == nil {
		return
	}
	logger.info(fmt.Sprintf("Exported %s to %s", pluralTodos(entry.Count), entry.Path))
}

func (logger *ConsoleLogger) info(message string) {
	if logger.quietInfos {
		return
	}
	logger.write(logger.infoStyle, message)
}

func (logger *ConsoleLogger) warn(message string) {
	logger.write(logger.warnStyle, "warning: "+message)
}

// write prints one line per message. Paths are never wrapped so the
// output stays greppable.
func (logger *ConsoleLogger) write(style lipgloss.Style, message string) {
	line := strings.Join(strings.Fields(message), " ")
	fmt.Fprintln(logger.writer, style.Render(line))
}

func pluralTodos(count int) string {
	if count == 1 {
		return "1 todo"
	}
	return fmt.Sprintf("%d todos", count)
}
