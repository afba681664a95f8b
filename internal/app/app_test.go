package app

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"outline/internal/config"
	"outline/internal/history"
	"outline/internal/output"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestRunOnce(t *testing.T) {
	src := t.TempDir()
	out := t.TempDir()

	writeFile(t, filepath.Join(src, "svc", "api.py"), `"""API."""


class Handler:
    def get(self):
        return {}
`)
	writeFile(t, filepath.Join(src, "broken.py"), "def f(:\n    pass\n")
	writeFile(t, filepath.Join(src, "notes.txt"), "not source\n")
	writeFile(t, filepath.Join(src, ".venv", "vendored.py"), "x = 1\n")

	cfg := config.Default()
	cfg.ScanPaths = []string{src}
	cfg.OutputDir = out
	cfg.History.Path = filepath.Join(t.TempDir(), "history.db")
	cfg.Workers = 2

	a, err := New(cfg)
	require.NoError(t, err)
	defer a.Close()

	require.NoError(t, a.RunOnce(context.Background()))

	data, err := os.ReadFile(filepath.Join(out, "json", output.DirectoryMapName))
	require.NoError(t, err)

	var entries []output.MapEntry
	require.NoError(t, json.Unmarshal(data, &entries))
	require.Len(t, entries, 2, "txt and excluded files must not be scanned")

	byPath := map[string]output.MapEntry{}
	for _, e := range entries {
		byPath[filepath.Base(e.FilePath)] = e
	}

	ok := byPath["api.py"]
	assert.Equal(t, "ok", ok.Status)
	assert.Equal(t, 3, ok.Blocks, "module, class, method")
	assert.FileExists(t, filepath.Join(out, "json", ok.Document))

	failed := byPath["broken.py"]
	assert.Equal(t, "error", failed.Status)
	assert.Contains(t, failed.Error, "SYNTAX_ERROR")
	assert.Empty(t, failed.Document)

	store, err := history.Open(cfg.History.Path)
	require.NoError(t, err)
	defer store.Close()
	runs, err := store.RecentRuns(5)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, 2, runs[0].FilesTotal)
	assert.Equal(t, 1, runs[0].FilesFailed)
	assert.Equal(t, 3, runs[0].BlocksTotal)
}

func TestScanDirectoriesExcludesByGlob(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "keep.py"), "x = 1\n")
	writeFile(t, filepath.Join(src, "skip_generated.py"), "x = 1\n")
	writeFile(t, filepath.Join(src, "node_modules", "dep.py"), "x = 1\n")

	cfg := config.Default()
	cfg.ScanPaths = []string{src}
	cfg.OutputDir = t.TempDir()
	a, err := New(cfg)
	require.NoError(t, err)
	defer a.Close()

	files, err := a.ScanDirectories([]string{src}, []string{"node_modules"}, []string{"skip_*"})
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "keep.py", filepath.Base(files[0]))
}

func TestRunOnceEmptyTree(t *testing.T) {
	cfg := config.Default()
	cfg.ScanPaths = []string{t.TempDir()}
	cfg.OutputDir = t.TempDir()

	a, err := New(cfg)
	require.NoError(t, err)
	defer a.Close()

	require.NoError(t, a.RunOnce(context.Background()))

	data, err := os.ReadFile(filepath.Join(cfg.OutputDir, "json", output.DirectoryMapName))
	require.NoError(t, err)
	var entries []output.MapEntry
	require.NoError(t, json.Unmarshal(data, &entries))
	assert.Empty(t, entries)
}
