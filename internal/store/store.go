// Package store persists main window preferences between sessions.
package store

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/iiroan/digiprefs/internal/mainwindow"
)

const (
	BackendYAML   = "yaml"
	BackendSQLite = "sqlite"
)

// Store defines the interface for preferences persistence
type Store interface {
	// Load returns the saved snapshot, or the defaults if nothing was saved yet
	Load() (mainwindow.Model, error)
	// Save persists every field of m
	Save(m mainwindow.Model) error
	// Close releases resources
	Close() error
}

// Backends returns the supported backend names.
func Backends() []string {
	return []string{BackendYAML, BackendSQLite}
}

// Open creates the store for backend at path.
func Open(backend, path string, logger *log.Logger) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case BackendYAML, "":
		return NewYAMLStore(path, logger), nil
	case BackendSQLite:
		s, err := NewSQLiteStore(path, logger)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown store backend %q (expected one of %s)", backend, strings.Join(Backends(), ", "))
	}
}
