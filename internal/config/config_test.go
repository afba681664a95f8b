package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "outline.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
scan_paths = ["./src", "./tools"]
output_dir = "build/outline"
local_prefixes = ["myproj"]
workers = 8

[exclude]
dirs = [".git", "vendor"]
files = ["conftest.py"]

[watch]
debounce = "1s"
rescans_per_sec = 1.5
rescan_burst = 2

[metrics]
addr = ":9105"

[history]
path = "build/history.db"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(cfg.ScanPaths) != 2 || cfg.ScanPaths[0] != "./src" {
		t.Errorf("ScanPaths = %v", cfg.ScanPaths)
	}
	if cfg.OutputDir != "build/outline" {
		t.Errorf("OutputDir = %q", cfg.OutputDir)
	}
	if len(cfg.LocalPrefixes) != 1 || cfg.LocalPrefixes[0] != "myproj" {
		t.Errorf("LocalPrefixes = %v", cfg.LocalPrefixes)
	}
	if cfg.Watch.Debounce != time.Second {
		t.Errorf("Expected debounce 1s, got %v", cfg.Watch.Debounce)
	}
	if cfg.Watch.RescansPerSec != 1.5 || cfg.Watch.RescanBurst != 2 {
		t.Errorf("rate config = %v/%v", cfg.Watch.RescansPerSec, cfg.Watch.RescanBurst)
	}
	if cfg.Metrics.Addr != ":9105" {
		t.Errorf("Metrics.Addr = %q", cfg.Metrics.Addr)
	}
	if cfg.History.Path != "build/history.db" {
		t.Errorf("History.Path = %q", cfg.History.Path)
	}
	if cfg.Workers != 8 {
		t.Errorf("Workers = %d", cfg.Workers)
	}
	if len(cfg.Exclude.Files) != 1 || cfg.Exclude.Files[0] != "conftest.py" {
		t.Errorf("Exclude.Files = %v", cfg.Exclude.Files)
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(cfg.ScanPaths) != 1 || cfg.ScanPaths[0] != "." {
		t.Errorf("ScanPaths = %v", cfg.ScanPaths)
	}
	if cfg.OutputDir != "output" {
		t.Errorf("OutputDir = %q", cfg.OutputDir)
	}
	if cfg.Watch.Debounce != 500*time.Millisecond {
		t.Errorf("Expected default debounce 500ms, got %v", cfg.Watch.Debounce)
	}
	if cfg.Watch.RescansPerSec != 2 || cfg.Watch.RescanBurst != 4 {
		t.Errorf("rate defaults = %v/%v", cfg.Watch.RescansPerSec, cfg.Watch.RescanBurst)
	}
	if cfg.Workers != 4 {
		t.Errorf("Workers = %d", cfg.Workers)
	}
	if cfg.Metrics.Addr != "" || cfg.History.Path != "" {
		t.Errorf("metrics/history enabled by default: %q %q", cfg.Metrics.Addr, cfg.History.Path)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
