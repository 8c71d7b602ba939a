package application

import (
	"context"
	"testing"
	"time"

	"github.com/bnema/random-folder-picker/internal/domain"
	"github.com/bnema/random-folder-picker/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavoritesServiceAddIsIdempotent(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	repo := &inMemoryFavoritesRepo{}
	svc := NewFavoritesService(repo, fixedClock{now: now})

	first, err := svc.Add(context.Background(), " /root/A ")
	require.NoError(t, err)
	assert.Equal(t, domain.Favorite{Path: "/root/A", AddedAt: now}, first)

	svc = NewFavoritesService(repo, fixedClock{now: now.Add(time.Hour)})
	again, err := svc.Add(context.Background(), "/root/A")
	require.NoError(t, err)
	assert.Equal(t, first, again)
	assert.Len(t, repo.favorites, 1)
}

func TestFavoritesServiceAddRejectsBlank(t *testing.T) {
	t.Parallel()

	svc := NewFavoritesService(&inMemoryFavoritesRepo{}, nil)

	_, err := svc.Add(context.Background(), "  ")
	assert.ErrorContains(t, err, "path is required")
}

func TestFavoritesServiceToggle(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	clock := mocks.NewMockClock(t)
	clock.EXPECT().Now().Return(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)).Once()
	repo := &inMemoryFavoritesRepo{}
	svc := NewFavoritesService(repo, clock)

	liked, err := svc.Toggle(ctx, "/root/B")
	require.NoError(t, err)
	assert.True(t, liked)

	contains, err := svc.Contains(ctx, "/root/B")
	require.NoError(t, err)
	assert.True(t, contains)

	liked, err = svc.Toggle(ctx, "/root/B")
	require.NoError(t, err)
	assert.False(t, liked)
	assert.Empty(t, repo.favorites)
}

func TestFavoritesServiceListSortsByAddedAt(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	repo := &inMemoryFavoritesRepo{favorites: map[string]domain.Favorite{
		"/a": {Path: "/a", AddedAt: base.Add(time.Hour)},
		"/b": {Path: "/b", AddedAt: base},
	}}

	favorites, err := NewFavoritesService(repo, nil).List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Favorite{
		{Path: "/b", AddedAt: base},
		{Path: "/a", AddedAt: base.Add(time.Hour)},
	}, favorites)
}

func TestFavoritesServiceRemoveMissing(t *testing.T) {
	t.Parallel()

	err := NewFavoritesService(&inMemoryFavoritesRepo{}, nil).Remove(context.Background(), "/nope")
	require.ErrorIs(t, err, domain.ErrFavoriteNotFound)
}
