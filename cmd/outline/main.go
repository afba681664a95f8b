package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"outline/internal/app"
	"outline/internal/config"
)

var (
	configPath = flag.String("config", "./outline.toml", "Path to config file")
	once       = flag.Bool("once", false, "Run single extraction and exit")
	watch      = flag.Bool("watch", false, "Re-extract when files change")
	verbose    = flag.Bool("verbose", false, "Enable verbose logging")
	version    = flag.Bool("version", false, "Print version and exit")
)

const VERSION = "1.0.0"

func main() {
	flag.Parse()

	if *version {
		fmt.Printf("outline v%s\n", VERSION)
		os.Exit(0)
	}

	logLevel := slog.LevelInfo
	if *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		if !os.IsNotExist(err) || *configPath != "./outline.toml" {
			slog.Error("failed to load config", "error", err)
			os.Exit(1)
		}
		// No config file next to the binary: scan the given (or current)
		// directory with defaults.
		cfg = config.Default()
	}
	if flag.NArg() > 0 {
		cfg.ScanPaths = flag.Args()
	}

	if cfg.Metrics.Addr != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			slog.Info("metrics listener started", "addr", cfg.Metrics.Addr)
			if err := http.ListenAndServe(cfg.Metrics.Addr, mux); err != nil {
				slog.Error("metrics listener failed", "error", err)
			}
		}()
	}

	a, err := app.New(cfg)
	if err != nil {
		slog.Error("failed to initialize app", "error", err)
		os.Exit(1)
	}
	defer a.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.RunOnce(ctx); err != nil {
		slog.Error("extraction failed", "error", err)
		os.Exit(1)
	}
	if *once || !*watch {
		return
	}

	if err := a.Watch(ctx); err != nil && ctx.Err() == nil {
		slog.Error("watch mode failed", "error", err)
		os.Exit(1)
	}
}
