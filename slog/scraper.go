package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/urlinfo"
)

// Ensure LoggingScraper implements urlinfo.Scraper.
var _ urlinfo.Scraper = (*LoggingScraper)(nil)

// LoggingScraper wraps a Scraper with logging.
type LoggingScraper struct {
	next   urlinfo.Scraper
	logger *slog.Logger
}

// NewLoggingScraper creates a new LoggingScraper.
func NewLoggingScraper(next urlinfo.Scraper, logger *slog.Logger) *LoggingScraper {
	return &LoggingScraper{next: next, logger: logger}
}

// Scrape delegates to the wrapped scraper and logs collection sizes.
func (s *LoggingScraper) Scrape(ctx context.Context, url string) (report *urlinfo.Report, err error) {
	defer func(begin time.Time) {
		attrs := []any{"url", url}
		if report != nil {
			attrs = append(attrs,
				"links", len(report.Links),
				"titles", len(report.Titles),
				"paragraphs", len(report.Paragraphs),
				"list_items", len(report.ListItems),
			)
		}
		attrs = append(attrs, "duration", time.Since(begin))
		if err != nil {
			attrs = append(attrs, "code", urlinfo.ErrorCode(err), "err", err)
			s.logger.Warn("scrape", attrs...)
			return
		}
		s.logger.Info("scrape", attrs...)
	}(time.Now())
	return s.next.Scrape(ctx, url)
}
