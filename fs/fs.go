// Package fs provides file-based implementations of wpsignals.Fetcher and
// wpsignals.ReportWriter.
package fs

import (
	"net/url"
	"path/filepath"
	"strings"
)

// IsLocal reports whether source names a local file: either a file:// URL
// or anything without a URL scheme.
func IsLocal(source string) bool {
	u, err := url.Parse(source)
	if err != nil {
		return !strings.Contains(source, "://")
	}
	// Single letter schemes are Windows drive letters.
	return u.Scheme == "" || u.Scheme == "file" || len(u.Scheme) == 1
}

// LocalPath returns the filesystem path named by a local source.
func LocalPath(source string) (string, error) {
	if !strings.HasPrefix(source, "file:") {
		return source, nil
	}
	u, err := url.Parse(source)
	if err != nil {
		return "", err
	}
	if u.Opaque != "" {
		return filepath.FromSlash(u.Opaque), nil
	}
	return filepath.FromSlash(u.Path), nil
}

// FileURL returns the absolute file:// URL of a local source, so relative
// URLs inside the document can be resolved against it.
func FileURL(source string) (string, error) {
	path, err := LocalPath(source)
	if err != nil {
		return "", err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}
	if !strings.HasPrefix(u.Path, "/") {
		u.Path = "/" + u.Path
	}
	return u.String(), nil
}
