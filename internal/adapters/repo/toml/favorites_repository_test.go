package toml

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/random-folder-picker/internal/domain"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFavoritesRepository(t *testing.T) *FavoritesRepository {
	t.Helper()

	cfg := viper.New()
	cfg.Set("favorites.path", filepath.Join(t.TempDir(), "favorites.toml"))
	repo, err := NewFavoritesRepository(cfg)
	require.NoError(t, err)

	return repo
}

func TestFavoritesRepositoryRoundTrip(t *testing.T) {
	t.Parallel()

	repo := newTestFavoritesRepository(t)
	ctx := context.Background()
	addedAt := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

	first := domain.Favorite{Path: "/photos/A", AddedAt: addedAt}
	second := domain.Favorite{Path: "/photos/B", AddedAt: addedAt.Add(time.Minute)}
	require.NoError(t, repo.Save(ctx, first))
	require.NoError(t, repo.Save(ctx, second))
	require.NoError(t, repo.Save(ctx, first))

	favorites, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Favorite{first, second}, favorites)
}

func TestFavoritesRepositoryDelete(t *testing.T) {
	t.Parallel()

	repo := newTestFavoritesRepository(t)
	ctx := context.Background()
	require.NoError(t, repo.Save(ctx, domain.Favorite{Path: "/photos/A"}))

	require.ErrorIs(t, repo.Delete(ctx, "/photos/missing"), domain.ErrFavoriteNotFound)
	require.NoError(t, repo.Delete(ctx, "/photos/A"))

	favorites, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, favorites)
}

func TestFavoritesRepositoryRejectsBlankPath(t *testing.T) {
	t.Parallel()

	err := newTestFavoritesRepository(t).Save(context.Background(), domain.Favorite{Path: " "})
	assert.ErrorContains(t, err, "path is required")
}
