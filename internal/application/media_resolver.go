package application

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/bnema/random-folder-picker/internal/domain"
	"github.com/bnema/random-folder-picker/internal/observability"
	"github.com/bnema/random-folder-picker/internal/ports"
)

type MediaResolver struct {
	reader ports.FileReader
	logger *slog.Logger
}

func NewMediaResolver(reader ports.FileReader, logger *slog.Logger) *MediaResolver {
	return &MediaResolver{reader: reader, logger: observability.OrDiscard(logger)}
}

// Resolve returns the first non-empty image found in folder, probing the
// conventional names in priority order. It returns domain.ErrNoImage when
// every cover name misses.
func (r *MediaResolver) Resolve(ctx context.Context, folder string) (domain.Image, error) {
	for name := range domain.CoverImageNames() {
		path := filepath.Join(folder, name)

		data, err := r.reader.ReadFile(ctx, path)
		if err != nil {
			r.logger.Debug("cover image missed", slog.String("path", path), slog.Any("error", err))
			continue
		}
		if len(data) == 0 {
			r.logger.Debug("cover image empty", slog.String("path", path))
			continue
		}

		return domain.Image{
			Folder:      folder,
			Name:        name,
			Path:        path,
			ContentType: domain.ImageContentType(name),
			Data:        data,
		}, nil
	}

	r.logger.Debug("no image found", slog.String("folder", folder))
	return domain.Image{}, domain.ErrNoImage
}
