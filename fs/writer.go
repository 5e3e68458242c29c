// Package fs persists the text report to the local filesystem.
package fs

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/fwojciec/urlinfo"
)

// DefaultReportPath is where the report is written when no path is
// configured.
const DefaultReportPath = "html/scraped.txt"

// pathLocks serializes writers to the same file within the process. Keys
// are cleaned absolute paths.
var pathLocks sync.Map

func lockFor(path string) *sync.Mutex {
	mu, _ := pathLocks.LoadOrStore(path, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// Ensure Writer implements urlinfo.ReportWriter at compile time.
var _ urlinfo.ReportWriter = (*Writer)(nil)

// Writer replaces a single report file. The previous report is removed
// before the new one is written, never appended to. Concurrent writes to
// the same path are serialized; the last writer wins.
type Writer struct {
	path string
}

// NewWriter creates a new Writer for path. An empty path means
// DefaultReportPath.
func NewWriter(path string) *Writer {
	if path == "" {
		path = DefaultReportPath
	}
	return &Writer{path: path}
}

// Path returns the report file location.
func (w *Writer) Path() string {
	return w.path
}

// WriteReport removes any existing report and writes content as UTF-8.
func (w *Writer) WriteReport(ctx context.Context, content string) error {
	key, err := filepath.Abs(w.path)
	if err != nil {
		return urlinfo.Errorf(urlinfo.EPERSIST, "resolve report path %q: %v", w.path, err)
	}

	mu := lockFor(key)
	mu.Lock()
	defer mu.Unlock()

	if err := os.Remove(w.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return urlinfo.Errorf(urlinfo.EPERSIST, "remove previous report: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(w.path), 0755); err != nil {
		return urlinfo.Errorf(urlinfo.EPERSIST, "create report directory: %v", err)
	}

	if err := os.WriteFile(w.path, []byte(content), 0644); err != nil {
		return urlinfo.Errorf(urlinfo.EPERSIST, "write report: %v", err)
	}
	return nil
}
