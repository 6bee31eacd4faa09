// Package batch analyzes a list of pages concurrently. Pages are taken as
// given; no links are followed.
package batch

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/fwojciec/wpsignals"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of pages processed at once when
// Runner.Concurrency is not set.
const DefaultConcurrency = 3

// Runner fetches, analyzes and writes a list of pages.
type Runner struct {
	Fetcher     wpsignals.Fetcher
	Analyzer    wpsignals.Analyzer
	Writer      wpsignals.ReportWriter
	RateLimiter wpsignals.DomainLimiter // optional
	Concurrency int
	RetryDelays []time.Duration
	Logger      LogFunc // optional, receives retry attempts
}

// Result holds the outcome of a run.
type Result struct {
	Analyzed int
	Failed   int
	Bytes    int
}

// ProgressEvent reports progress during a run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Report    *wpsignals.Report
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting run progress.
type ProgressFunc func(event ProgressEvent)

// pageResult holds the outcome of processing a single URL.
type pageResult struct {
	position int
	url      string
	bytes    int
	report   *wpsignals.Report
	err      error
}

// Run processes every URL and writes the reports in input order.
// A page that fails is counted in Result.Failed and reported through
// progress; it does not stop the other pages. Run returns the context
// error if ctx is canceled before all pages are done.
func (r *Runner) Run(ctx context.Context, urls []string, progress ProgressFunc) (*Result, error) {
	if progress == nil {
		progress = func(ProgressEvent) {}
	}

	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	total := len(urls)
	progress(ProgressEvent{Type: ProgressStarted, Total: total})

	resultCh := make(chan pageResult, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, u := range urls {
			g.Go(func() error {
				resultCh <- r.processURL(gctx, i, u)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Results arrive in completion order; hold them until every earlier
	// page has been written.
	var result Result
	pending := make(map[int]pageResult)
	next, completed := 0, 0
	for res := range resultCh {
		pending[res.position] = res
		for {
			res, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			next++
			completed++

			if res.err == nil {
				if err := ctx.Err(); err != nil {
					res.err = err
				} else if err := r.Writer.WriteReport(ctx, res.report); err != nil {
					res.err = fmt.Errorf("write report: %w", err)
				}
			}

			event := ProgressEvent{
				Completed: completed,
				Total:     total,
				URL:       res.url,
				Report:    res.report,
			}
			if res.err != nil {
				result.Failed++
				event.Type = ProgressFailed
				event.Error = res.err
			} else {
				result.Analyzed++
				result.Bytes += res.bytes
				event.Type = ProgressCompleted
			}
			progress(event)
		}
	}

	if err := ctx.Err(); err != nil {
		return &result, err
	}

	progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	return &result, nil
}

// processURL fetches and analyzes a single URL.
func (r *Runner) processURL(ctx context.Context, position int, pageURL string) pageResult {
	result := pageResult{position: position, url: pageURL}

	if err := r.wait(ctx, pageURL); err != nil {
		result.err = err
		return result
	}

	delays := r.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	html, err := FetchWithRetryDelays(ctx, pageURL, r.Fetcher.Fetch, r.Logger, delays)
	if err != nil {
		result.err = err
		return result
	}
	result.bytes = len(html)

	report, err := r.Analyzer.Analyze(html, pageURL)
	if err != nil {
		result.err = err
		return result
	}
	result.report = report

	return result
}

// wait applies the per-domain rate limit. Sources without a host, such as
// local files, are not limited.
func (r *Runner) wait(ctx context.Context, pageURL string) error {
	if r.RateLimiter == nil {
		return nil
	}
	u, err := url.Parse(pageURL)
	if err != nil || u.Host == "" {
		return nil
	}
	return r.RateLimiter.Wait(ctx, u.Hostname())
}
