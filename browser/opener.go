// Package browser opens the written report in the host's default viewer
// using github.com/pkg/browser.
package browser

import (
	"context"
	"fmt"
	"io"

	"github.com/fwojciec/urlinfo"
	"github.com/pkg/browser"
)

func init() {
	// Launcher output would otherwise interleave with the report on stdout.
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
}

// Ensure Opener implements urlinfo.Opener at compile time.
var _ urlinfo.Opener = (*Opener)(nil)

// Opener launches the platform file viewer (xdg-open, open or start).
type Opener struct {
	// OpenFile launches the viewer for a local path.
	// Defaults to browser.OpenFile.
	OpenFile func(path string) error
}

// NewOpener creates an Opener backed by the platform launcher.
func NewOpener() *Opener {
	return &Opener{OpenFile: browser.OpenFile}
}

// Open starts the viewer for path. Nothing is launched once ctx is done.
func (o *Opener) Open(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	openFile := o.OpenFile
	if openFile == nil {
		openFile = browser.OpenFile
	}
	if err := openFile(path); err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	return nil
}
