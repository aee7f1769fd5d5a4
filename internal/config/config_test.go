package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dossard/internal/config"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, _, exists, err := config.Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if exists {
		t.Fatal("expected exists=false for absent file")
	}
	if cfg.Import.PreviewRows != 10 {
		t.Fatalf("PreviewRows = %d, want default 10", cfg.Import.PreviewRows)
	}
	if !cfg.Matching.Enabled {
		t.Fatal("matching should default to enabled")
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadParsesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := "[paths]\ndata_dir = \"" + filepath.Join(dir, "data") + "\"\n\n[import]\npreview_rows = 3\n\n[logging]\nformat = \"JSON\"\nlevel = \"Debug\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("resolved=%q exists=%v", resolved, exists)
	}
	if cfg.Import.PreviewRows != 3 {
		t.Fatalf("PreviewRows = %d, want 3", cfg.Import.PreviewRows)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("format/level not lowercased: %+v", cfg.Logging)
	}
	if !filepath.IsAbs(cfg.Paths.DataDir) {
		t.Fatalf("data dir not absolute: %q", cfg.Paths.DataDir)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := []struct {
		name    string
		content string
		wantMsg string
	}{
		{"bad format", "[logging]\nformat = \"xml\"\n", "logging.format"},
		{"bad level", "[logging]\nlevel = \"verbose\"\n", "logging.level"},
		{"bad preview", "[import]\npreview_rows = -2\n", "preview_rows"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			_, _, _, err := config.Load(path)
			if err == nil || !strings.Contains(err.Error(), tc.wantMsg) {
				t.Fatalf("Load err = %v, want mention of %s", err, tc.wantMsg)
			}
		})
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("DOSSARD_LOG_LEVEL", "debug")
	dataDir := filepath.Join(t.TempDir(), "data")
	t.Setenv("DOSSARD_DATA_DIR", dataDir)

	cfg, _, _, err := config.Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("env level override ignored: %q", cfg.Logging.Level)
	}
	if cfg.Paths.DataDir != dataDir {
		t.Fatalf("env data dir override ignored: %q", cfg.Paths.DataDir)
	}
}

func TestDerivedPaths(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.DataDir = "/tmp/dossard-test"
	if got := cfg.DatabasePath(); got != "/tmp/dossard-test/dossard.db" {
		t.Fatalf("DatabasePath = %q", got)
	}
	if got := cfg.LockPath(); got != "/tmp/dossard-test/import.lock" {
		t.Fatalf("LockPath = %q", got)
	}
}

func TestWriteSampleRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := config.WriteSample(path); err != nil {
		t.Fatalf("first WriteSample failed: %v", err)
	}
	if err := config.WriteSample(path); err == nil {
		t.Fatal("second WriteSample should refuse to overwrite")
	}
}
