// Package history persists the conversation history to a JSON file in the
// workspace. The file is pretty-printed so it stays human-readable and can
// be edited or restored by hand.
package history

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/MikeSquared-Agency/anderson/internal/chat"
)

const fileName = "chat_history.json"

type Store struct {
	path   string
	logger *slog.Logger
}

func NewStore(workspaceDir string, logger *slog.Logger) *Store {
	return &Store{
		path:   filepath.Join(workspaceDir, fileName),
		logger: logger,
	}
}

// Path returns the location of the backing file.
func (s *Store) Path() string {
	return s.path
}

// Load reads the persisted history. A missing or malformed file is not an
// error: anderson starts fresh with an empty history.
func (s *Store) Load() []chat.Turn {
	data, err := os.ReadFile(s.path)
	if err != nil {
		s.logger.Info("no existing history, starting fresh", "path", s.path)
		return nil
	}

	var turns []chat.Turn
	if err := json.Unmarshal(data, &turns); err != nil {
		s.logger.Warn("history file unreadable, starting fresh", "path", s.path, "error", err)
		return nil
	}

	s.logger.Info("loaded persistent history", "turns", len(turns))
	return turns
}

// Save overwrites the persisted history with the full current sequence.
func (s *Store) Save(turns []chat.Turn) error {
	if turns == nil {
		turns = []chat.Turn{}
	}
	data, err := json.MarshalIndent(turns, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write history: %w", err)
	}
	return nil
}
