package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/fwojciec/wpsignals"
	"github.com/fwojciec/wpsignals/batch"
	"github.com/fwojciec/wpsignals/fs"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Fetcher     wpsignals.Fetcher
	Analyzer    wpsignals.Analyzer
	Writer      wpsignals.ReportWriter
	RateLimiter wpsignals.DomainLimiter
	Logger      *slog.Logger
}

// AnalyzeCmd analyzes every source and writes one report per page.
type AnalyzeCmd struct {
	Sources     []string
	OutputDir   string
	Concurrency int
}

// Run executes the analyze command. It returns an error when any page
// failed, after every other page has been processed.
func (c *AnalyzeCmd) Run(deps *Dependencies) error {
	urls, err := normalizeSources(c.Sources)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wpsignals.ErrorMessage(err))
		return err
	}

	runner := &batch.Runner{
		Fetcher:     deps.Fetcher,
		Analyzer:    deps.Analyzer,
		Writer:      deps.Writer,
		RateLimiter: deps.RateLimiter,
		Concurrency: c.Concurrency,
	}
	if deps.Logger != nil {
		runner.Logger = func(format string, args ...any) {
			deps.Logger.Info(fmt.Sprintf(format, args...))
		}
	}

	// Progress lines only when stdout is not carrying the reports.
	showProgress := c.OutputDir != ""
	progress := func(e batch.ProgressEvent) {
		switch e.Type {
		case batch.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "skip %s: %v\n", e.URL, e.Error)
		case batch.ProgressCompleted:
			if showProgress {
				fmt.Fprintf(deps.Stdout, "[%d/%d] %s\n", e.Completed, e.Total, batch.TruncateURL(e.URL, 60))
			}
		}
	}

	result, err := runner.Run(deps.Ctx, urls, progress)
	if err != nil {
		return err
	}

	if showProgress {
		fmt.Fprintf(deps.Stdout, "Analyzed %d pages (%s) into %s\n", result.Analyzed, batch.FormatBytes(result.Bytes), c.OutputDir)
	}

	if result.Failed > 0 {
		return fmt.Errorf("%d of %d pages failed", result.Failed, len(urls))
	}
	return nil
}

// normalizeSources turns local paths into absolute file:// URLs so relative
// script URLs resolve and reports are keyed consistently.
func normalizeSources(sources []string) ([]string, error) {
	urls := make([]string, 0, len(sources))
	for _, s := range sources {
		if !fs.IsLocal(s) {
			urls = append(urls, s)
			continue
		}
		u, err := fs.FileURL(s)
		if err != nil {
			return nil, wpsignals.Errorf(wpsignals.EINVALID, "invalid source %q: %v", s, err)
		}
		urls = append(urls, u)
	}
	return urls, nil
}
