package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/random-folder-picker/internal/domain"
	"github.com/bnema/random-folder-picker/internal/ports"
)

type FavoritesService struct {
	repo  ports.FavoritesRepository
	clock ports.Clock
}

func NewFavoritesService(repo ports.FavoritesRepository, clock ports.Clock) *FavoritesService {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &FavoritesService{repo: repo, clock: clock}
}

func (s *FavoritesService) Add(ctx context.Context, path string) (domain.Favorite, error) {
	favorite := domain.Favorite{Path: strings.TrimSpace(path), AddedAt: s.clock.Now()}
	if err := favorite.Validate(); err != nil {
		return domain.Favorite{}, err
	}

	existing, err := s.find(ctx, favorite.Path)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domain.ErrFavoriteNotFound) {
		return domain.Favorite{}, err
	}

	if err := s.repo.Save(ctx, favorite); err != nil {
		return domain.Favorite{}, fmt.Errorf("save favorite: %w", err)
	}

	return favorite, nil
}

func (s *FavoritesService) Remove(ctx context.Context, path string) error {
	if err := s.repo.Delete(ctx, strings.TrimSpace(path)); err != nil {
		return fmt.Errorf("delete favorite: %w", err)
	}

	return nil
}

// Toggle likes path if it is not a favorite yet and unlikes it otherwise. It
// reports whether path is a favorite afterwards.
func (s *FavoritesService) Toggle(ctx context.Context, path string) (bool, error) {
	liked, err := s.Contains(ctx, path)
	if err != nil {
		return false, err
	}

	if liked {
		return false, s.Remove(ctx, path)
	}

	if _, err := s.Add(ctx, path); err != nil {
		return false, err
	}

	return true, nil
}

func (s *FavoritesService) Contains(ctx context.Context, path string) (bool, error) {
	_, err := s.find(ctx, strings.TrimSpace(path))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, domain.ErrFavoriteNotFound) {
		return false, nil
	}

	return false, err
}

func (s *FavoritesService) List(ctx context.Context) ([]domain.Favorite, error) {
	favorites, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}

	return domain.NormalizeFavorites(favorites), nil
}

func (s *FavoritesService) find(ctx context.Context, path string) (domain.Favorite, error) {
	favorites, err := s.repo.List(ctx)
	if err != nil {
		return domain.Favorite{}, fmt.Errorf("list favorites: %w", err)
	}

	for _, favorite := range favorites {
		if favorite.Path == path {
			return favorite, nil
		}
	}

	return domain.Favorite{}, domain.ErrFavoriteNotFound
}
