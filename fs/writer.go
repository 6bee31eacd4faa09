package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/wpsignals"
	"github.com/google/uuid"
)

// localDir holds reports for pages read from disk.
const localDir = "local"

// URLToPath converts a page URL to a relative report path. The query
// string is kept in the file name, so ?p=1 and ?p=2 get separate reports.
// Local files are named after their base name plus a short hash of the
// full path.
// Example: https://example.com/blog/hello → example.com/blog/hello.json
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}

	if u.Scheme == "" || u.Scheme == "file" {
		p := path.Clean("/" + u.Path)
		name := strings.TrimSuffix(path.Base(p), path.Ext(p))
		if name == "" || name == "." || name == "/" {
			name = "index"
		}
		return path.Join(localDir, fmt.Sprintf("%s-%08x.json", name, uint32(xxhash.Sum64String(p)))), nil
	}

	host := strings.ReplaceAll(u.Host, ":", "_")
	if host == "" {
		return "", fmt.Errorf("URL has no host: %s", rawURL)
	}

	p := u.Path

	// Root or trailing slash → index.json
	if p == "" || strings.HasSuffix(p, "/") {
		p += "index"
	}

	// Drop any attempt to climb above the host directory.
	p = strings.TrimPrefix(path.Clean("/"+p), "/")

	if u.RawQuery != "" {
		p += "_" + sanitizeQuery(u.RawQuery)
	}

	return path.Join(host, p+".json"), nil
}

// sanitizeQuery maps a raw query to a single file name segment.
func sanitizeQuery(q string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '=' || r == '-' || r == '.' || r == '%' || r == '+':
			return r
		}
		return '_'
	}, q)
}

// Ensure ReportWriter implements wpsignals.ReportWriter at compile time.
var _ wpsignals.ReportWriter = (*ReportWriter)(nil)

// ReportWriter writes each report as an indented JSON file below a base
// directory. Files are written to a temporary name and renamed into place,
// so readers never observe a partial report.
type ReportWriter struct {
	baseDir string
}

// NewReportWriter creates a new ReportWriter that writes to baseDir.
func NewReportWriter(baseDir string) *ReportWriter {
	return &ReportWriter{baseDir: baseDir}
}

// WriteReport writes report to the path derived from its URL.
func (w *ReportWriter) WriteReport(ctx context.Context, report *wpsignals.Report) error {
	if err := report.Validate(); err != nil {
		return err
	}

	relPath, err := URLToPath(report.URL)
	if err != nil {
		return wpsignals.Errorf(wpsignals.EINVALID, "invalid report URL %q: %v", report.URL, err)
	}

	fullPath := filepath.Join(w.baseDir, filepath.FromSlash(relPath))

	// Create parent directories
	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	data = append(data, '\n')

	tmpPath := filepath.Join(dir, "."+filepath.Base(fullPath)+"."+uuid.NewString()+".tmp")
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, fullPath); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}
