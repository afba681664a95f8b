package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// Tracer emits spans around scans and per-file parses. The no-op provider
// applies unless the embedding process installs one.
var Tracer trace.Tracer = otel.Tracer("outline")

// Metrics definitions
var (
	ParsingDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "outline_parsing_seconds",
		Help:    "Time spent parsing a source file into a hierarchy model.",
		Buckets: prometheus.DefBuckets,
	}, []string{"language"})

	BlocksExtracted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "outline_blocks_extracted_total",
		Help: "Total number of code blocks materialized, by block type.",
	}, []string{"block_type"})

	FilesProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "outline_files_processed_total",
		Help: "Total number of source files processed.",
	})

	ParseErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "outline_parse_errors_total",
		Help: "Total number of files rejected with syntax or validation errors.",
	})

	WatcherEventsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "outline_watcher_events_total",
		Help: "Total number of file system events received by the watcher.",
	})
)
