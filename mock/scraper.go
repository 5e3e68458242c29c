package mock

import (
	"context"

	"github.com/fwojciec/urlinfo"
)

var _ urlinfo.Scraper = (*Scraper)(nil)

// Scraper is a mock implementation of urlinfo.Scraper.
type Scraper struct {
	ScrapeFn func(ctx context.Context, url string) (*urlinfo.Report, error)
}

func (s *Scraper) Scrape(ctx context.Context, url string) (*urlinfo.Report, error) {
	return s.ScrapeFn(ctx, url)
}
