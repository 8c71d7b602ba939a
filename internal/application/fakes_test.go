package application

import (
	"context"
	"os"
	"sort"
	"time"

	"github.com/bnema/random-folder-picker/internal/domain"
)

type stateWrite struct {
	key   string
	value string
}

type memoryStateStore struct {
	values map[string]string
	writes []stateWrite
	setErr error
}

func newMemoryStateStore(values map[string]string) *memoryStateStore {
	if values == nil {
		values = map[string]string{}
	}
	return &memoryStateStore{values: values}
}

func (s *memoryStateStore) Get(_ context.Context, key string) (string, error) {
	value, ok := s.values[key]
	if !ok {
		return "", domain.ErrStateNotFound
	}
	return value, nil
}

func (s *memoryStateStore) Set(_ context.Context, key string, value string) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.values[key] = value
	s.writes = append(s.writes, stateWrite{key: key, value: value})
	return nil
}

func (s *memoryStateStore) poolWrites() []string {
	var values []string
	for _, write := range s.writes {
		if write.key == StateKeyPool {
			values = append(values, write.value)
		}
	}
	return values
}

type fixedRandom float64

func (f fixedRandom) Float64() float64 {
	return float64(f)
}

type fakeLister struct {
	entries map[string][]domain.Entry
	err     error
	calls   []string
}

func (l *fakeLister) List(_ context.Context, path string) ([]domain.Entry, error) {
	l.calls = append(l.calls, path)
	if l.err != nil {
		return nil, l.err
	}
	return l.entries[path], nil
}

type fakeReader struct {
	files map[string][]byte
	reads []string
}

func (r *fakeReader) ReadFile(_ context.Context, path string) ([]byte, error) {
	r.reads = append(r.reads, path)
	data, ok := r.files[path]
	if !ok {
		return nil, os.ErrNotExist
	}
	return data, nil
}

type inMemoryFavoritesRepo struct {
	favorites map[string]domain.Favorite
}

func (r *inMemoryFavoritesRepo) List(_ context.Context) ([]domain.Favorite, error) {
	result := make([]domain.Favorite, 0, len(r.favorites))
	for _, favorite := range r.favorites {
		result = append(result, favorite)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Path < result[j].Path })
	return result, nil
}

func (r *inMemoryFavoritesRepo) Save(_ context.Context, favorite domain.Favorite) error {
	if r.favorites == nil {
		r.favorites = map[string]domain.Favorite{}
	}
	r.favorites[favorite.Path] = favorite
	return nil
}

func (r *inMemoryFavoritesRepo) Delete(_ context.Context, path string) error {
	if _, ok := r.favorites[path]; !ok {
		return domain.ErrFavoriteNotFound
	}
	delete(r.favorites, path)
	return nil
}

type fixedClock struct {
	now time.Time
}

func (f fixedClock) Now() time.Time {
	return f.now
}

func dirEntries(root string, names ...string) []domain.Entry {
	entries := make([]domain.Entry, 0, len(names))
	for _, name := range names {
		entries = append(entries, domain.Entry{Name: name, Path: root + "/" + name, IsDir: true})
	}
	return entries
}
