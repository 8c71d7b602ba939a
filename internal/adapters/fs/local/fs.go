// Package local lists directories and reads files from the local disk.
package local

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bnema/random-folder-picker/internal/domain"
	"github.com/bnema/random-folder-picker/internal/ports"
	"github.com/dustin/go-humanize"
)

var ErrFileTooLarge = errors.New("file too large")

type Lister struct{}

var _ ports.DirectoryLister = Lister{}

// List returns the direct children of path sorted by name. Both files and
// folders are reported.
func (Lister) List(ctx context.Context, path string) ([]domain.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dirEntries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("read directory %q: %w", path, err)
	}

	entries := make([]domain.Entry, 0, len(dirEntries))
	for _, entry := range dirEntries {
		entries = append(entries, domain.Entry{
			Name:  entry.Name(),
			Path:  filepath.Join(path, entry.Name()),
			IsDir: entry.IsDir(),
		})
	}

	return entries, nil
}

type Reader struct {
	maxSize int64
}

var _ ports.FileReader = (*Reader)(nil)

// NewReader refuses files larger than maxSize bytes. A non-positive maxSize
// disables the limit.
func NewReader(maxSize int64) *Reader {
	return &Reader{maxSize: maxSize}
}

func (r *Reader) ReadFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %q: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%q is a directory", path)
	}
	if r.maxSize > 0 && info.Size() > r.maxSize {
		return nil, fmt.Errorf("%w: %q is %s, limit %s", ErrFileTooLarge, path,
			humanize.IBytes(uint64(info.Size())), humanize.IBytes(uint64(r.maxSize)))
	}

	var reader io.Reader = file
	if r.maxSize > 0 {
		reader = io.LimitReader(file, r.maxSize)
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", path, err)
	}

	return data, nil
}
