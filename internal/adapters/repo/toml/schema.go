package toml

import "fmt"

const (
	currentStateSchemaVersion     = 1
	currentFavoritesSchemaVersion = 1
)

type stateFileSchema struct {
	Version int           `toml:"version"`
	Entries []entrySchema `toml:"entries"`
}

func (s *stateFileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentStateSchemaVersion
	}
}

func (s stateFileSchema) validateVersion() error {
	if s.Version > currentStateSchemaVersion {
		return fmt.Errorf("unsupported state schema version %d (current %d)", s.Version, currentStateSchemaVersion)
	}

	return nil
}

type entrySchema struct {
	Key   string `toml:"key"`
	Value string `toml:"value"`
}

type favoritesFileSchema struct {
	Version   int              `toml:"version"`
	Favorites []favoriteSchema `toml:"favorites"`
}

func (s *favoritesFileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentFavoritesSchemaVersion
	}
}

func (s favoritesFileSchema) validateVersion() error {
	if s.Version > currentFavoritesSchemaVersion {
		return fmt.Errorf("unsupported favorites schema version %d (current %d)", s.Version, currentFavoritesSchemaVersion)
	}

	return nil
}

type favoriteSchema struct {
	Path    string `toml:"path"`
	AddedAt string `toml:"added_at"`
}
