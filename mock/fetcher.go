package mock

import (
	"context"

	"github.com/fwojciec/urlinfo"
)

// Compile-time interface verification.
var (
	_ urlinfo.Fetcher  = (*Fetcher)(nil)
	_ urlinfo.Parser   = (*Parser)(nil)
	_ urlinfo.Document = (*Document)(nil)
)

// Fetcher is a mock implementation of urlinfo.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*urlinfo.RawDocument, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*urlinfo.RawDocument, error) {
	return f.FetchFn(ctx, url)
}

// Parser is a mock implementation of urlinfo.Parser.
type Parser struct {
	ParseFn func(raw *urlinfo.RawDocument) (urlinfo.Document, error)
}

func (p *Parser) Parse(raw *urlinfo.RawDocument) (urlinfo.Document, error) {
	return p.ParseFn(raw)
}

// Document is a mock implementation of urlinfo.Document.
type Document struct {
	LinksFn      func() []urlinfo.Link
	HeadingsFn   func() []urlinfo.Heading
	ParagraphsFn func() []string
	ListItemsFn  func() []string
}

func (d *Document) Links() []urlinfo.Link {
	return d.LinksFn()
}

func (d *Document) Headings() []urlinfo.Heading {
	return d.HeadingsFn()
}

func (d *Document) Paragraphs() []string {
	return d.ParagraphsFn()
}

func (d *Document) ListItems() []string {
	return d.ListItemsFn()
}
