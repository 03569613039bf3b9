package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	want := DefaultConfig()
	if cfg.Store != want.Store {
		t.Errorf("Expected store %+v, got %+v", want.Store, cfg.Store)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Expected log level info, got %s", cfg.Logging.Level)
	}
	if cfg.UI.Theme != "aurora" {
		t.Errorf("Expected theme aurora, got %s", cfg.UI.Theme)
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "digiprefs.yaml")
	content := `store:
  backend: SQLite
  path: /tmp/prefs.sqlite3
logging:
  level: debug
ui:
  theme: ember
  dense: true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cfg.Store.Backend != "sqlite" {
		t.Errorf("Expected normalized backend sqlite, got %s", cfg.Store.Backend)
	}
	if cfg.Store.Path != "/tmp/prefs.sqlite3" {
		t.Errorf("Expected store path from file, got %s", cfg.Store.Path)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Expected debug, got %s", cfg.Logging.Level)
	}
	if cfg.UI.Theme != "ember" || !cfg.UI.Dense {
		t.Errorf("Expected ember dense UI, got %+v", cfg.UI)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("DIGIPREFS_STORE_BACKEND", "sqlite")
	t.Setenv("DIGIPREFS_LOGGING_LEVEL", "warn")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cfg.Store.Backend != "sqlite" {
		t.Errorf("Expected env backend sqlite, got %s", cfg.Store.Backend)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Expected env level warn, got %s", cfg.Logging.Level)
	}
}

func TestLoad_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "digiprefs.yaml")
	if err := os.WriteFile(path, []byte("store: [unclosed"), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Expected error for malformed YAML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"defaults", func(c *Config) {}, ""},
		{"bad backend", func(c *Config) { c.Store.Backend = "redis" }, "store.backend"},
		{"empty path", func(c *Config) { c.Store.Path = "" }, "store.path"},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }, "logging.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Expected no error, got %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error mentioning %s, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "digiprefs.yaml")

	cfg := DefaultConfig()
	cfg.Store.Backend = "sqlite"
	cfg.UI.NoColor = true
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Expected no error saving, got %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Expected no error loading, got %v", err)
	}
	if loaded.Store.Backend != "sqlite" || !loaded.UI.NoColor {
		t.Errorf("Expected saved values back, got %+v", loaded)
	}
}
