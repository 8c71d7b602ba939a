package ports

import (
	"context"

	"github.com/bnema/random-folder-picker/internal/domain"
)

type DirectoryLister interface {
	List(ctx context.Context, path string) ([]domain.Entry, error)
}

type FileReader interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)
}
