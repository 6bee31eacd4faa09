package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/wpsignals"
	"github.com/fwojciec/wpsignals/batch"
	"github.com/fwojciec/wpsignals/fs"
	"github.com/fwojciec/wpsignals/goquery"
	wphttp "github.com/fwojciec/wpsignals/http"
	"github.com/fwojciec/wpsignals/rod"
	wpslog "github.com/fwojciec/wpsignals/slog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
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
	// NewRenderFetcher creates the browser-backed fetcher used with --render.
	NewRenderFetcher func(timeout time.Duration) (wpsignals.Fetcher, error)
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		NewRenderFetcher: func(timeout time.Duration) (wpsignals.Fetcher, error) {
			return rod.NewFetcher(rod.WithFetchTimeout(timeout))
		},
	}
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Render      bool          `short:"r" help:"Render http(s) pages in headless Chrome before analysis"`
	Timeout     time.Duration `short:"t" default:"10s" env:"WPSIGNALS_TIMEOUT" help:"Fetch timeout per page"`
	Concurrency int           `short:"c" default:"3" env:"WPSIGNALS_CONCURRENCY" help:"Concurrent page limit"`
	RPS         float64       `name:"rps" default:"1" help:"Requests per second per domain (0 disables limiting)"`
	Output      string        `short:"o" env:"WPSIGNALS_OUTPUT" help:"Write one JSON report per page below this directory instead of stdout"`
	Format      string        `short:"f" enum:"json,pretty,yaml,text" default:"json" help:"Stdout format (json, pretty, yaml, text)"`
	Verbose     bool          `short:"v" help:"Log fetch, analyze and write calls to stderr"`
	Sources     []string      `arg:"" name:"source" help:"Page URLs, file paths or file:// URLs to analyze"`
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("wpsignals"),
		kong.Description("Report WordPress theme, script, embed and interactivity signals for web pages"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no sources provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	timeout := cli.Timeout
	if timeout <= 0 {
		timeout = wphttp.DefaultFetchTimeout
	}

	var remote wpsignals.Fetcher = wphttp.NewFetcher(wphttp.WithTimeout(timeout))
	if cli.Render && hasRemote(cli.Sources) {
		renderer, err := m.NewRenderFetcher(timeout)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		remote = renderer
	}

	fetcher := NewCompositeFetcher(fs.NewFetcher(), remote)
	defer fetcher.Close()

	var writer wpsignals.ReportWriter = NewStdoutWriter(stdout, cli.Format)
	if cli.Output != "" {
		writer = fs.NewReportWriter(cli.Output)
	}

	deps := &Dependencies{
		Ctx:         ctx,
		Stdout:      stdout,
		Stderr:      stderr,
		Fetcher:     wpslog.NewLoggingFetcher(fetcher, logger),
		Analyzer:    wpslog.NewLoggingAnalyzer(goquery.NewAnalyzer(), logger),
		Writer:      wpslog.NewLoggingReportWriter(writer, logger),
		RateLimiter: batch.NewDomainLimiter(cli.RPS),
		Logger:      logger,
	}

	cmd := &AnalyzeCmd{
		Sources:     cli.Sources,
		OutputDir:   cli.Output,
		Concurrency: cli.Concurrency,
	}
	return cmd.Run(deps)
}

// hasRemote reports whether any source must be fetched over the network.
func hasRemote(sources []string) bool {
	for _, s := range sources {
		if !fs.IsLocal(s) {
			return true
		}
	}
	return false
}
