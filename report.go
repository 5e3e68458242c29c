package urlinfo

import (
	"context"
	"time"
)

// DefaultMaxTitleLevel is the deepest heading level that feeds Report.Titles.
const DefaultMaxTitleLevel = 3

// Link is a hyperlink found on the source page.
type Link struct {
	// URL is always absolute, resolved against the source origin.
	URL        string `json:"url" yaml:"url"`
	Text       string `json:"text" yaml:"text"`
	IsExternal bool   `json:"isExternal" yaml:"isExternal"`
}

// Heading is an h1-h6 element found on the source page.
type Heading struct {
	Level int    `json:"level" yaml:"level"`
	Text  string `json:"text" yaml:"text"`
}

// Report is the structured content extracted from one page.
type Report struct {
	SourceURL  string    `json:"sourceUrl" yaml:"sourceUrl"`
	Links      []Link    `json:"links" yaml:"links"`
	Titles     []string  `json:"titles" yaml:"titles"`
	Paragraphs []string  `json:"paragraphs" yaml:"paragraphs"`
	ListItems  []string  `json:"listItems" yaml:"listItems"`
	Headings   []Heading `json:"headings" yaml:"headings"`

	// Error is a short diagnostic set only on reports recorded for failed runs.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// GlobalContent returns the flattened text view of the report: paragraphs,
// then list items, then titles.
func (r *Report) GlobalContent() []string {
	out := make([]string, 0, len(r.Paragraphs)+len(r.ListItems)+len(r.Titles))
	out = append(out, r.Paragraphs...)
	out = append(out, r.ListItems...)
	out = append(out, r.Titles...)
	return out
}

// AggregateOptions configures Aggregate.
type AggregateOptions struct {
	// MaxTitleLevel is the deepest heading level included in Titles.
	// Zero means DefaultMaxTitleLevel. Values above 6 are clamped.
	MaxTitleLevel int
}

// Aggregate merges extractor output into a fresh Report. Nil inputs become
// empty collections so the report always serializes with arrays.
func Aggregate(source string, links []Link, headings []Heading, paragraphs, listItems []string, opts AggregateOptions) *Report {
	maxLevel := opts.MaxTitleLevel
	if maxLevel <= 0 {
		maxLevel = DefaultMaxTitleLevel
	}
	if maxLevel > 6 {
		maxLevel = 6
	}

	titles := []string{}
	for _, h := range headings {
		if h.Level >= 1 && h.Level <= maxLevel {
			titles = append(titles, h.Text)
		}
	}

	return &Report{
		SourceURL:  source,
		Links:      append([]Link{}, links...),
		Titles:     titles,
		Paragraphs: append([]string{}, paragraphs...),
		ListItems:  append([]string{}, listItems...),
		Headings:   append([]Heading{}, headings...),
	}
}

// Scraper runs the extraction pipeline for a single page.
type Scraper interface {
	// Scrape validates, fetches, parses and extracts the page at url.
	// Returns EINVALID for unacceptable URLs and *FetchError when the page
	// cannot be retrieved; the report is nil in both cases.
	Scrape(ctx context.Context, url string) (*Report, error)
}

// ReportWriter persists the rendered text report.
type ReportWriter interface {
	// WriteReport replaces the report file with content.
	WriteReport(ctx context.Context, content string) error

	// Path returns the location of the report file.
	Path() string
}

// Opener opens a file in the host's default viewer.
type Opener interface {
	Open(ctx context.Context, path string) error
}

// HistoryEntry records one pipeline run.
type HistoryEntry struct {
	ID          string    `json:"id" yaml:"id"`
	SourceURL   string    `json:"sourceUrl" yaml:"sourceUrl"`
	Report      *Report   `json:"report,omitempty" yaml:"report,omitempty"`
	ContentHash string    `json:"contentHash" yaml:"contentHash"`
	Error       string    `json:"error,omitempty" yaml:"error,omitempty"`
	CreatedAt   time.Time `json:"createdAt" yaml:"createdAt"`
}

// Validate returns an error if the entry contains invalid fields.
func (e *HistoryEntry) Validate() error {
	if e.SourceURL == "" {
		return Errorf(EINVALID, "history entry source URL required")
	}
	if e.Report == nil && e.Error == "" {
		return Errorf(EINVALID, "history entry requires a report or an error")
	}
	return nil
}

// HistoryService represents a bounded store of past pipeline runs.
type HistoryService interface {
	// CreateEntry records a run and prunes the oldest entries beyond the
	// store's limit.
	CreateEntry(ctx context.Context, entry *HistoryEntry) error

	// FindEntryByID retrieves an entry by ID.
	// Returns ENOTFOUND if the entry does not exist.
	FindEntryByID(ctx context.Context, id string) (*HistoryEntry, error)

	// FindEntries retrieves entries matching the filter, newest first.
	FindEntries(ctx context.Context, filter HistoryFilter) ([]*HistoryEntry, error)
}

// HistoryFilter represents a filter for FindEntries.
type HistoryFilter struct {
	SourceURL *string `json:"sourceUrl"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
