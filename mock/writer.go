package mock

import (
	"context"

	"github.com/fwojciec/urlinfo"
)

// Compile-time interface verification.
var (
	_ urlinfo.ReportWriter = (*ReportWriter)(nil)
	_ urlinfo.Opener       = (*Opener)(nil)
)

// ReportWriter is a mock implementation of urlinfo.ReportWriter.
type ReportWriter struct {
	WriteReportFn func(ctx context.Context, content string) error
	PathFn        func() string
}

func (w *ReportWriter) WriteReport(ctx context.Context, content string) error {
	return w.WriteReportFn(ctx, content)
}

func (w *ReportWriter) Path() string {
	return w.PathFn()
}

// Opener is a mock implementation of urlinfo.Opener.
type Opener struct {
	OpenFn func(ctx context.Context, path string) error
}

func (o *Opener) Open(ctx context.Context, path string) error {
	return o.OpenFn(ctx, path)
}
