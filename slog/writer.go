package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/urlinfo"
)

// Ensure LoggingWriter implements urlinfo.ReportWriter.
var _ urlinfo.ReportWriter = (*LoggingWriter)(nil)

// LoggingWriter wraps a ReportWriter with logging.
type LoggingWriter struct {
	next   urlinfo.ReportWriter
	logger *slog.Logger
}

// NewLoggingWriter creates a new LoggingWriter.
func NewLoggingWriter(next urlinfo.ReportWriter, logger *slog.Logger) *LoggingWriter {
	return &LoggingWriter{next: next, logger: logger}
}

// WriteReport delegates to the wrapped writer and logs the result.
func (w *LoggingWriter) WriteReport(ctx context.Context, content string) (err error) {
	defer func(begin time.Time) {
		w.logger.Info("write report",
			"path", w.next.Path(),
			"bytes", len(content),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteReport(ctx, content)
}

// Path delegates to the wrapped writer.
func (w *LoggingWriter) Path() string {
	return w.next.Path()
}
