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

const stateFileName = "state.toml"

// StateStore keeps every session key in a single versioned state.toml.
type StateStore struct {
	path string
	mu   *sync.RWMutex
}

var _ ports.StateStore = (*StateStore)(nil)

func NewStateStore(cfg *viper.Viper) (*StateStore, error) {
	path, err := resolvePath(cfg, config.KeyStatePath, stateFileName)
	if err != nil {
		return nil, err
	}

	return &StateStore{path: path, mu: lockForPath(path)}, nil
}

func (s *StateStore) Path() string {
	return s.path
}

func (s *StateStore) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	file, err := s.readSchema()
	if err != nil {
		return "", err
	}

	for _, entry := range file.Entries {
		if entry.Key == key {
			return entry.Value, nil
		}
	}

	return "", domain.ErrStateNotFound
}

func (s *StateStore) Set(ctx context.Context, key string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.readSchema()
	if err != nil {
		return err
	}
	file.applyDefaults()

	updated := false
	for i := range file.Entries {
		if file.Entries[i].Key == key {
			file.Entries[i].Value = value
			updated = true
			break
		}
	}
	if !updated {
		file.Entries = append(file.Entries, entrySchema{Key: key, Value: value})
	}

	if err := writeTOMLFile(s.path, file); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}

	return nil
}

func (s *StateStore) readSchema() (stateFileSchema, error) {
	var file stateFileSchema
	if err := readTOMLFile(s.path, &file); err != nil {
		return stateFileSchema{}, fmt.Errorf("load state file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return stateFileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}
