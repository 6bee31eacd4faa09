package fs

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/fwojciec/wpsignals"
)

// Ensure Fetcher implements wpsignals.Fetcher at compile time.
var _ wpsignals.Fetcher = (*Fetcher)(nil)

// Fetcher reads saved HTML pages from disk.
type Fetcher struct {
	baseDir string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithBaseDir resolves relative paths against dir instead of the working
// directory.
func WithBaseDir(dir string) Option {
	return func(f *Fetcher) {
		f.baseDir = dir
	}
}

// NewFetcher creates a new file-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch reads the file named by source, which is a path or a file:// URL.
func (f *Fetcher) Fetch(ctx context.Context, source string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path, err := LocalPath(source)
	if err != nil {
		return "", wpsignals.Errorf(wpsignals.EINVALID, "invalid file URL %q: %v", source, err)
	}
	if f.baseDir != "" && !filepath.IsAbs(path) {
		path = filepath.Join(f.baseDir, path)
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", wpsignals.Errorf(wpsignals.ENOTFOUND, "file not found: %s", path)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Close is a no-op; files are closed after each read.
func (f *Fetcher) Close() error {
	return nil
}
