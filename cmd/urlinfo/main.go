package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/urlinfo"
	"github.com/fwojciec/urlinfo/browser"
	"github.com/fwojciec/urlinfo/fs"
	"github.com/fwojciec/urlinfo/goquery"
	urlinfohttp "github.com/fwojciec/urlinfo/http"
	"github.com/fwojciec/urlinfo/scrape"
	urlslog "github.com/fwojciec/urlinfo/slog"
	"github.com/fwojciec/urlinfo/sqlite"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Fetcher and Opener replace the default implementations when set.
	// Used by end-to-end tests.
	Fetcher urlinfo.Fetcher
	Opener  urlinfo.Opener

	// SQLite database backing the run history. Nil when history is disabled.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("urlinfo"),
		kong.Description("Extract links, headings, paragraphs and list items from a web page"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'urlinfo --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps.Logger = urlslog.NewLogger(stderr, cli.LogLevel)

	if cli.DB != "" {
		m.DB = sqlite.NewDB(cli.DB)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintln(stderr, "Hint: Set URLINFO_DB to use a different database path, or empty to disable history")
			return fmt.Errorf("failed to open database at %q: %w", cli.DB, err)
		}
		defer m.Close()
		deps.History = sqlite.NewHistoryService(m.DB, cli.HistoryLimit)
	}

	fetcher := m.Fetcher
	if fetcher == nil {
		fetcher = urlinfohttp.NewFetcher()
	}

	pipeline := &scrape.Pipeline{
		Fetcher:       urlslog.NewLoggingFetcher(fetcher, deps.Logger),
		Parser:        goquery.NewParser(),
		Writer:        urlslog.NewLoggingWriter(fs.NewWriter(cli.ReportPath), deps.Logger),
		History:       deps.History,
		Logger:        deps.Logger,
		MaxTitleLevel: cli.TitleLevel,
	}
	if cli.Open {
		pipeline.Opener = m.Opener
		if pipeline.Opener == nil {
			pipeline.Opener = browser.NewOpener()
		}
	}
	deps.Scraper = urlslog.NewLoggingScraper(pipeline, deps.Logger)

	return kongCtx.Run(deps)
}
