package main

import (
	"context"
	"errors"

	"github.com/fwojciec/wpsignals"
	"github.com/fwojciec/wpsignals/fs"
)

// Compile-time interface verification.
var _ wpsignals.Fetcher = (*CompositeFetcher)(nil)

// CompositeFetcher routes local sources to one fetcher and network URLs to
// another.
type CompositeFetcher struct {
	local  wpsignals.Fetcher
	remote wpsignals.Fetcher
}

// NewCompositeFetcher creates a new CompositeFetcher.
func NewCompositeFetcher(local, remote wpsignals.Fetcher) *CompositeFetcher {
	return &CompositeFetcher{local: local, remote: remote}
}

// Fetch implements wpsignals.Fetcher.
func (f *CompositeFetcher) Fetch(ctx context.Context, url string) (string, error) {
	if fs.IsLocal(url) {
		return f.local.Fetch(ctx, url)
	}
	return f.remote.Fetch(ctx, url)
}

// Close closes both fetchers.
func (f *CompositeFetcher) Close() error {
	return errors.Join(f.local.Close(), f.remote.Close())
}
