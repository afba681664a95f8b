// Package app drives extraction runs: it scans for source files, parses
// them on a worker pool, writes the JSON documents, and in watch mode keeps
// doing so as files change.
package app

import (
	"context"
	"log/slog"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"outline/internal/config"
	"outline/internal/history"
	"outline/internal/output"
	"outline/internal/parser"
	"outline/internal/shared/observability"
	"outline/internal/shared/util"
	"outline/internal/watcher"
)

type App struct {
	Config *config.Config

	writer  *output.Writer
	store   *history.Store // nil when history is disabled
	limiter *util.Limiter  // caps watch-mode rescan frequency
}

func New(cfg *config.Config) (*App, error) {
	a := &App{
		Config:  cfg,
		writer:  output.NewWriter(cfg.OutputDir),
		limiter: util.NewLimiter(cfg.Watch.RescansPerSec, cfg.Watch.RescanBurst),
	}

	if cfg.History.Path != "" {
		store, err := history.Open(cfg.History.Path)
		if err != nil {
			return nil, err
		}
		a.store = store
	}
	return a, nil
}

func (a *App) Close() error {
	if a.store != nil {
		return a.store.Close()
	}
	return nil
}

// RunOnce scans the configured paths and processes every supported file.
func (a *App) RunOnce(ctx context.Context) error {
	ctx, span := observability.Tracer.Start(ctx, "app.RunOnce")
	defer span.End()

	files, err := a.ScanDirectories(a.Config.ScanPaths, a.Config.Exclude.Dirs, a.Config.Exclude.Files)
	if err != nil {
		return err
	}
	return a.processBatch(ctx, files)
}

// Watch processes change batches from the file system until ctx is done.
// Rescans are rate limited so editor churn cannot saturate the pipeline.
func (a *App) Watch(ctx context.Context) error {
	changed := make(chan []string, 16)
	w, err := watcher.New(
		a.Config.Watch.Debounce,
		a.Config.Exclude.Dirs,
		a.Config.Exclude.Files,
		func(path string) bool {
			_, ok := parser.GrammarForPath(path)
			return ok
		},
		func(paths []string) { changed <- paths },
	)
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.Watch(a.Config.ScanPaths); err != nil {
		return err
	}
	slog.Info("watching for changes", "paths", a.Config.ScanPaths,
		"debounce", a.Config.Watch.Debounce)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case paths := <-changed:
			if err := a.limiter.Wait(ctx, 1); err != nil {
				return err
			}
			sort.Strings(paths)
			if err := a.processBatch(ctx, paths); err != nil {
				slog.Error("rescan failed", "error", err)
			}
		}
	}
}

func (a *App) processBatch(ctx context.Context, files []string) error {
	started := time.Now()
	runID := uuid.NewString()
	log := slog.With("run_id", runID)
	log.Info("processing files", "count", len(files))

	workers := a.Config.Workers
	if len(files) > 0 && workers > len(files) {
		workers = len(files)
	}
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan string)
	results := make(chan output.MapEntry)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// One parser per worker: tree-sitter parsers and visitor
			// managers are single-threaded.
			p, err := parser.NewPython(a.Config.LocalPrefixes)
			if err != nil {
				for path := range jobs {
					results <- output.MapEntry{FilePath: path, Status: "error", Error: err.Error()}
				}
				return
			}
			for path := range jobs {
				results <- a.processFile(ctx, p, path)
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, f := range files {
			select {
			case jobs <- f:
			case <-ctx.Done():
				return
			}
		}
	}()
	go func() {
		wg.Wait()
		close(results)
	}()

	entries := make([]output.MapEntry, 0, len(files))
	blocksTotal, failed := 0, 0
	for entry := range results {
		if entry.Status == "ok" {
			blocksTotal += entry.Blocks
		} else {
			failed++
		}
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].FilePath < entries[j].FilePath })

	if err := a.writer.WriteDirectoryMap(entries); err != nil {
		return err
	}

	duration := time.Since(started)
	log.Info("run complete", "files", len(entries), "failed", failed,
		"blocks", blocksTotal, "duration", duration)

	if a.store != nil {
		run := history.Run{
			RunID:       runID,
			StartedAt:   started.UTC(),
			Duration:    duration,
			FilesTotal:  len(entries),
			FilesFailed: failed,
			BlocksTotal: blocksTotal,
		}
		if err := a.store.RecordRun(run); err != nil {
			log.Warn("failed to record run history", "error", err)
		}
	}
	return nil
}

// processFile parses and persists one file. Failures are per-file: the entry
// carries the error and the batch continues.
func (a *App) processFile(ctx context.Context, p *parser.Parser, path string) output.MapEntry {
	_, span := observability.Tracer.Start(ctx, "app.processFile")
	defer span.End()

	content, err := os.ReadFile(path)
	if err != nil {
		slog.Warn("failed to read file", "path", path, "error", err)
		return output.MapEntry{FilePath: path, Status: "error", Error: err.Error()}
	}

	module, err := p.Parse(path, content)
	if err != nil {
		slog.Warn("failed to parse file", "path", path, "error", err)
		return output.MapEntry{FilePath: path, Status: "error", Error: err.Error()}
	}

	doc, err := a.writer.WriteModule(module)
	if err != nil {
		slog.Warn("failed to write document", "path", path, "error", err)
		return output.MapEntry{FilePath: path, Status: "error", Error: err.Error()}
	}

	return output.MapEntry{
		FilePath: path,
		Document: doc,
		Blocks:   output.CountBlocks(module),
		Status:   "ok",
	}
}
