package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/jobkpi"
)

// Ensure LoggingExporter implements jobkpi.Exporter.
var _ jobkpi.Exporter = (*LoggingExporter)(nil)

// LoggingExporter wraps an Exporter with debug logging.
type LoggingExporter struct {
	next   jobkpi.Exporter
	logger *slog.Logger
}

// NewLoggingExporter creates a new LoggingExporter.
func NewLoggingExporter(next jobkpi.Exporter, logger *slog.Logger) *LoggingExporter {
	return &LoggingExporter{next: next, logger: logger}
}

// Export delegates to the wrapped exporter and logs the row count.
func (e *LoggingExporter) Export(ctx context.Context, jobs []*jobkpi.Job) (err error) {
	defer func(begin time.Time) {
		e.logger.Info("export",
			"rows", len(jobs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Export(ctx, jobs)
}
