// Package scrape orchestrates the extraction pipeline: validate, fetch,
// parse, extract, aggregate and persist.
package scrape

import (
	"context"
	"log/slog"

	"github.com/fwojciec/urlinfo"
	"golang.org/x/sync/errgroup"
)

// Ensure Pipeline implements urlinfo.Scraper at compile time.
var _ urlinfo.Scraper = (*Pipeline)(nil)

// Pipeline runs one extraction per Scrape call. It holds no per-run state,
// so a single Pipeline may serve concurrent callers.
//
// Fetcher and Parser are required. Writer, Opener and History are optional
// side effects whose failures are logged and never returned.
type Pipeline struct {
	Fetcher urlinfo.Fetcher
	Parser  urlinfo.Parser
	Writer  urlinfo.ReportWriter
	Opener  urlinfo.Opener
	History urlinfo.HistoryService
	Logger  *slog.Logger

	// MaxTitleLevel is the deepest heading level included in titles.
	MaxTitleLevel int
}

// Scrape extracts the page at url. Validation, fetch and parse failures
// return a nil report and the error, as does ctx ending before extraction
// finishes.
func (p *Pipeline) Scrape(ctx context.Context, url string) (*urlinfo.Report, error) {
	if err := urlinfo.CheckURL(url); err != nil {
		return nil, err
	}

	raw, err := p.Fetcher.Fetch(ctx, url)
	if err != nil {
		p.record(ctx, url, nil, err)
		return nil, err
	}

	doc, err := p.Parser.Parse(raw)
	if err != nil {
		p.record(ctx, url, nil, err)
		return nil, err
	}

	report, err := p.extract(ctx, url, doc)
	if err != nil {
		p.record(ctx, url, nil, err)
		return nil, err
	}

	p.persist(ctx, report)
	p.record(ctx, url, report, nil)

	return report, nil
}

// extract runs the extractors concurrently. Each goroutine writes only its
// own result slice. Extractors not yet started are skipped once ctx is done.
func (p *Pipeline) extract(ctx context.Context, url string, doc urlinfo.Document) (*urlinfo.Report, error) {
	var (
		links      []urlinfo.Link
		headings   []urlinfo.Heading
		paragraphs []string
		listItems  []string
	)

	g, gctx := errgroup.WithContext(ctx)
	run := func(extract func()) {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			extract()
			return nil
		})
	}
	run(func() { links = doc.Links() })
	run(func() { headings = doc.Headings() })
	run(func() { paragraphs = doc.Paragraphs() })
	run(func() { listItems = doc.ListItems() })
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return urlinfo.Aggregate(url, links, headings, paragraphs, listItems, urlinfo.AggregateOptions{
		MaxTitleLevel: p.MaxTitleLevel,
	}), nil
}

// persist writes the text report and opens it. Failures are logged only.
func (p *Pipeline) persist(ctx context.Context, report *urlinfo.Report) {
	if p.Writer == nil {
		return
	}

	if err := p.Writer.WriteReport(ctx, urlinfo.FormatReport(report)); err != nil {
		p.logger().Error("report not persisted",
			"url", report.SourceURL,
			"path", p.Writer.Path(),
			"err", err,
		)
		return
	}

	if p.Opener == nil {
		return
	}
	if err := p.Opener.Open(ctx, p.Writer.Path()); err != nil {
		p.logger().Warn("report not opened",
			"path", p.Writer.Path(),
			"err", err,
		)
	}
}

// record adds the run to the history store, if one is configured.
func (p *Pipeline) record(ctx context.Context, url string, report *urlinfo.Report, runErr error) {
	if p.History == nil {
		return
	}

	entry := &urlinfo.HistoryEntry{SourceURL: url, Report: report}
	if runErr != nil {
		entry.Error = urlinfo.ErrorMessage(runErr)
	}

	if err := p.History.CreateEntry(ctx, entry); err != nil {
		p.logger().Error("run not recorded",
			"url", url,
			"err", err,
		)
	}
}

func (p *Pipeline) logger() *slog.Logger {
	if p.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return p.Logger
}
