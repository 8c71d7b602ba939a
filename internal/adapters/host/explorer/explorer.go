// Package explorer reveals folders in the desktop file manager.
package explorer

import (
	"context"
	"fmt"
	"os"

	"github.com/bnema/random-folder-picker/internal/ports"
	"github.com/skratchdot/open-golang/open"
)

type Explorer struct {
	open func(path string) error
}

var _ ports.Explorer = (*Explorer)(nil)

func NewExplorer() *Explorer {
	return &Explorer{open: open.Start}
}

func (e *Explorer) Open(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %q: %w", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%q is not a directory", path)
	}

	if err := e.open(path); err != nil {
		return fmt.Errorf("open %q: %w", path, err)
	}

	return nil
}
