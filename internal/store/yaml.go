package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/iiroan/digiprefs/internal/mainwindow"
)

// YAMLStore keeps the preferences in a single YAML file.
type YAMLStore struct {
	path   string
	logger *log.Logger
}

// NewYAMLStore creates a store backed by the file at path. The file is only
// touched by Load and Save.
func NewYAMLStore(path string, logger *log.Logger) *YAMLStore {
	if logger == nil {
		logger = log.Default()
	}
	return &YAMLStore{path: path, logger: logger}
}

// Load reads the preferences file; a missing file yields the defaults.
func (s *YAMLStore) Load() (mainwindow.Model, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Debug("no preferences file, using defaults", "path", s.path)
			return mainwindow.New(), nil
		}
		return mainwindow.New(), fmt.Errorf("reading preferences: %w", err)
	}

	var rec Record
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return mainwindow.New(), fmt.Errorf("parsing preferences: %w", err)
	}

	m, err := rec.Model()
	if err != nil {
		return mainwindow.New(), fmt.Errorf("parsing preferences: %w", err)
	}

	s.logger.Debug("loaded preferences", "path", s.path)
	return m, nil
}

// Save writes every field of m to the preferences file.
func (s *YAMLStore) Save(m mainwindow.Model) error {
	data, err := yaml.Marshal(RecordFrom(m))
	if err != nil {
		return fmt.Errorf("marshaling preferences: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating preferences directory: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing preferences: %w", err)
	}

	s.logger.Debug("saved preferences", "path", s.path)
	return nil
}

// Close is a no-op; the file is not held open.
func (s *YAMLStore) Close() error {
	return nil
}
