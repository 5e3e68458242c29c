package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/fwojciec/urlinfo"
)

var errHistoryDisabled = errors.New("history is disabled. Set --db or URLINFO_DB to record runs")

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	if deps.History == nil {
		return errHistoryDisabled
	}

	filter := urlinfo.HistoryFilter{Limit: c.Limit}
	if c.URL != "" {
		filter.SourceURL = &c.URL
	}

	entries, err := deps.History.FindEntries(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", urlinfo.ErrorMessage(err))
		return err
	}

	if c.Format == "json" || c.Format == "yaml" {
		return encode(deps.Stdout, c.Format, entries)
	}

	if len(entries) == 0 {
		fmt.Fprintln(deps.Stdout, "No runs recorded. Use 'urlinfo scrape' to extract a page.")
		return nil
	}

	for _, e := range entries {
		status := "ok " + e.ContentHash
		if e.Error != "" {
			status = "error: " + e.Error
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s\n", e.CreatedAt.Format(time.RFC3339), e.ID, e.SourceURL, status)
	}

	return nil
}
