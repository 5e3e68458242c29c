package main

import (
	"fmt"

	"github.com/fwojciec/urlinfo"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	report, err := deps.Scraper.Scrape(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", urlinfo.ErrorMessage(err))
		return err
	}

	if c.Format == "" || c.Format == "text" {
		fmt.Fprint(deps.Stdout, urlinfo.FormatReport(report))
		return nil
	}
	return encode(deps.Stdout, c.Format, report)
}
