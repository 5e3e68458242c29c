package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/fwojciec/urlinfo"
	"gopkg.in/yaml.v3"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Scraper urlinfo.Scraper
	History urlinfo.HistoryService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	ReportPath   string `name:"report-path" default:"html/scraped.txt" env:"URLINFO_REPORT_PATH" help:"Where the text report is written"`
	Open         bool   `env:"URLINFO_OPEN" help:"Open the report in the default viewer after writing it"`
	DB           string `name:"db" env:"URLINFO_DB" help:"SQLite database for run history (empty disables history)"`
	HistoryLimit int    `name:"history-limit" default:"100" env:"URLINFO_HISTORY_LIMIT" help:"Number of runs kept in history"`
	TitleLevel   int    `name:"title-level" default:"3" env:"URLINFO_TITLE_LEVEL" help:"Deepest heading level listed under titles (1-6)"`
	LogLevel     string `name:"log-level" default:"info" env:"URLINFO_LOG_LEVEL" help:"Log level: debug, info, warn or error"`

	Scrape  ScrapeCmd  `cmd:"" help:"Extract content from a page and write the report"`
	Serve   ServeCmd   `cmd:"" help:"Serve the extraction API over HTTP"`
	History HistoryCmd `cmd:"" help:"List recorded runs"`
}

// Validate checks flag values after parsing.
func (c *CLI) Validate() error {
	if c.TitleLevel < 1 || c.TitleLevel > 6 {
		return fmt.Errorf("--title-level must be between 1 and 6, got %d", c.TitleLevel)
	}
	if c.HistoryLimit < 1 {
		return fmt.Errorf("--history-limit must be positive, got %d", c.HistoryLimit)
	}
	return nil
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	URL    string `arg:"" help:"Page URL"`
	Format string `short:"f" default:"text" enum:"text,json,yaml" help:"Output format: text, json or yaml"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr  string  `default:":3001" env:"URLINFO_ADDR" help:"Listen address"`
	RPS   float64 `name:"rps" default:"5" help:"Requests per second accepted (0 disables limiting)"`
	Burst int     `default:"10" help:"Requests accepted in a burst"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	URL    string `help:"Only show runs for this URL"`
	Limit  int    `short:"n" default:"20" help:"Number of runs to show"`
	Format string `short:"f" default:"text" enum:"text,json,yaml" help:"Output format: text, json or yaml"`
}

// encode writes v to w as indented JSON or YAML.
func encode(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}
