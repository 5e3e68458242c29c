package urlinfo

import "context"

// RawDocument is the unparsed HTML of a fetched page.
type RawDocument struct {
	// URL is the address the document was requested from.
	URL string

	// HTML is the response body decoded to UTF-8.
	HTML string

	ContentType string
	StatusCode  int
}

// Fetcher retrieves HTML from URLs.
type Fetcher interface {
	// Fetch performs a single GET for url. Failures are returned as
	// *FetchError. The context controls cancellation.
	Fetch(ctx context.Context, url string) (*RawDocument, error)
}

// Parser builds a queryable Document from raw HTML.
type Parser interface {
	// Parse fails with EPARSE only when the HTML is empty. Malformed
	// markup is tolerated.
	Parse(raw *RawDocument) (Document, error)
}

// Document is a parsed page. Each method is an independent, read-only
// extractor that returns a fresh slice in document order, so the methods
// are safe to call concurrently.
type Document interface {
	// Links returns anchors with an href, resolved against the page origin
	// and deduplicated by absolute URL.
	Links() []Link

	// Headings returns non-empty h1-h6 elements.
	Headings() []Heading

	// Paragraphs returns p elements whose trimmed text is longer than
	// MinParagraphLength characters.
	Paragraphs() []string

	// ListItems returns non-empty li elements.
	ListItems() []string
}

// MinParagraphLength is the character count a paragraph must exceed to be
// kept.
const MinParagraphLength = 10

// NoLinkText replaces empty anchor text.
const NoLinkText = "[no text]"
