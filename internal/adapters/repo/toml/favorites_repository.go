package toml

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/random-folder-picker/internal/config"
	"github.com/bnema/random-folder-picker/internal/domain"
	"github.com/bnema/random-folder-picker/internal/ports"
	"github.com/spf13/viper"
)

const favoritesFileName = "favorites.toml"

type FavoritesRepository struct {
	path string
	mu   *sync.RWMutex
}

var _ ports.FavoritesRepository = (*FavoritesRepository)(nil)

func NewFavoritesRepository(cfg *viper.Viper) (*FavoritesRepository, error) {
	path, err := resolvePath(cfg, config.KeyFavoritesPath, favoritesFileName)
	if err != nil {
		return nil, err
	}

	return &FavoritesRepository{path: path, mu: lockForPath(path)}, nil
}

func (r *FavoritesRepository) List(ctx context.Context) ([]domain.Favorite, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	favorites := make([]domain.Favorite, 0, len(file.Favorites))
	for _, entry := range file.Favorites {
		favorites = append(favorites, fromFavoriteSchema(entry))
	}

	return favorites, nil
}

func (r *FavoritesRepository) Save(ctx context.Context, favorite domain.Favorite) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := favorite.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	encoded := toFavoriteSchema(favorite)
	updated := false
	for i := range file.Favorites {
		if file.Favorites[i].Path == encoded.Path {
			file.Favorites[i] = encoded
			updated = true
			break
		}
	}
	if !updated {
		file.Favorites = append(file.Favorites, encoded)
	}

	if err := writeTOMLFile(r.path, file); err != nil {
		return fmt.Errorf("write favorites file: %w", err)
	}

	return nil
}

func (r *FavoritesRepository) Delete(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	kept := file.Favorites[:0]
	for _, entry := range file.Favorites {
		if entry.Path != path {
			kept = append(kept, entry)
		}
	}
	if len(kept) == len(file.Favorites) {
		return domain.ErrFavoriteNotFound
	}
	file.Favorites = kept

	if err := writeTOMLFile(r.path, file); err != nil {
		return fmt.Errorf("write favorites file: %w", err)
	}

	return nil
}

func (r *FavoritesRepository) readSchema() (favoritesFileSchema, error) {
	var file favoritesFileSchema
	if err := readTOMLFile(r.path, &file); err != nil {
		return favoritesFileSchema{}, fmt.Errorf("load favorites file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return favoritesFileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func toFavoriteSchema(favorite domain.Favorite) favoriteSchema {
	return favoriteSchema{Path: favorite.Path, AddedAt: formatTime(favorite.AddedAt)}
}

func fromFavoriteSchema(schema favoriteSchema) domain.Favorite {
	return domain.Favorite{Path: schema.Path, AddedAt: parseTime(schema.AddedAt)}
}
