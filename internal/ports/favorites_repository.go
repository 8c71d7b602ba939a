package ports

import (
	"context"

	"github.com/bnema/random-folder-picker/internal/domain"
)

type FavoritesRepository interface {
	List(ctx context.Context) ([]domain.Favorite, error)
	Save(ctx context.Context, favorite domain.Favorite) error
	Delete(ctx context.Context, path string) error
}
