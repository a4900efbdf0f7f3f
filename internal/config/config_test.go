package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Server.Port != 8080 {
		t.Errorf("default port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Storage.Backend != BackendSQLite {
		t.Errorf("default backend = %s, want sqlite", cfg.Storage.Backend)
	}
	if !strings.HasSuffix(cfg.DataDir, ".moodcraft") {
		t.Errorf("default data dir = %s, want ~/.moodcraft", cfg.DataDir)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected defaults, got port %d", cfg.Server.Port)
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"server": {"port": 9999, "host": "0.0.0.0"}, "storage": {"backend": "record"}}`
	if err := os.WriteFile(path, []byte(data), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 9999 {
		t.Errorf("port = %d, want 9999", cfg.Server.Port)
	}
	if cfg.Storage.Backend != BackendRecord {
		t.Errorf("backend = %s, want record", cfg.Storage.Backend)
	}
	// Untouched fields keep defaults.
	if cfg.Submission.RevealDelayMS != 1500 {
		t.Errorf("reveal delay = %d, want default 1500", cfg.Submission.RevealDelayMS)
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	os.WriteFile(path, []byte("not json"), 0600)

	if _, err := Load(path); err == nil {
		t.Error("Load() should fail on malformed config")
	}
}

func TestLoad_RejectsBadBackend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	os.WriteFile(path, []byte(`{"storage": {"backend": "postgres"}}`), 0600)

	if _, err := Load(path); err == nil {
		t.Error("Load() should reject unknown backend")
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("MOODCRAFT_DATA_DIR", "/tmp/mood-test")

	path := filepath.Join(t.TempDir(), "config.json")
	os.WriteFile(path, []byte(`{}`), 0600)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DataDir != "/tmp/mood-test" {
		t.Errorf("data dir = %s, want env override", cfg.DataDir)
	}
}

func TestLoad_EnvOverrideWithoutConfigFile(t *testing.T) {
	t.Setenv("MOODCRAFT_DATA_DIR", "/tmp/mood-test")

	// First run: no config file exists yet. The override must still
	// apply.
	path := filepath.Join(t.TempDir(), "config.json")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DataDir != "/tmp/mood-test" {
		t.Errorf("data dir = %s, want env override", cfg.DataDir)
	}
}

func TestStoragePath(t *testing.T) {
	cfg := Default()
	cfg.DataDir = "/data"

	if got := cfg.StoragePath(); got != "/data/moodcraft.db" {
		t.Errorf("sqlite path = %s", got)
	}

	cfg.Storage.Backend = BackendRecord
	if got := cfg.StoragePath(); got != "/data/mood-history.json" {
		t.Errorf("record path = %s", got)
	}

	cfg.Storage.Path = "/elsewhere/x.json"
	if got := cfg.StoragePath(); got != "/elsewhere/x.json" {
		t.Errorf("explicit path = %s", got)
	}
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	cfg := Default()
	cfg.Server.Port = 4242
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Server.Port != 4242 {
		t.Errorf("round-trip port = %d, want 4242", loaded.Server.Port)
	}
}
