// Package worklog writes anderson's append-only session log. Every entry is
// one timestamped line; the file is an audit trail and is never read back.
package worklog

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

const fileName = "session.log"

type Logger struct {
	path   string
	logger *slog.Logger

	// now is swappable for tests.
	now func() time.Time
}

func New(workspaceDir string, logger *slog.Logger) *Logger {
	return &Logger{
		path:   filepath.Join(workspaceDir, fileName),
		logger: logger,
		now:    time.Now,
	}
}

// Append writes a single `[<timestamp>] <text>` line. The returned error is
// informational: callers on the request path discard it, since logging must
// never abort a request. Failures also land on the diagnostic slog channel.
func (l *Logger) Append(text string) error {
	line := fmt.Sprintf("[%s] %s\n", l.now().UTC().Format(time.RFC3339), text)

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		l.logger.Warn("failed to open session log", "path", l.path, "error", err)
		return fmt.Errorf("open session log: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(line); err != nil {
		l.logger.Warn("failed to write session log", "path", l.path, "error", err)
		return fmt.Errorf("write session log: %w", err)
	}
	return nil
}
