// Package slog provides logging decorators for urlinfo services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/urlinfo"
)

// Ensure LoggingFetcher implements urlinfo.Fetcher.
var _ urlinfo.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging.
type LoggingFetcher struct {
	next   urlinfo.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next urlinfo.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch logs the URL being fetched and delegates to the wrapped fetcher.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (raw *urlinfo.RawDocument, err error) {
	defer func(begin time.Time) {
		var n int
		if raw != nil {
			n = len(raw.HTML)
		}
		f.logger.Info("fetch",
			"url", url,
			"bytes", n,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}
