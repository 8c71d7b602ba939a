package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bnema/random-folder-picker/internal/domain"
	"github.com/bnema/random-folder-picker/internal/observability"
	"github.com/bnema/random-folder-picker/internal/ports"
	"github.com/google/uuid"
)

const (
	StateKeyRootDirectory = "last-root-directory"
	StateKeyPool          = "last-pool"
	StateKeySessionID     = "last-session-id"
)

// SamplingService runs the session state machine and checkpoints the pool
// to the state store after every mutation, in mutation order.
type SamplingService struct {
	store  ports.StateStore
	pick   domain.IndexPicker
	logger *slog.Logger
	newID  func() domain.SessionID
}

func NewSamplingService(store ports.StateStore, random ports.Random, mode domain.DrawMode, logger *slog.Logger) *SamplingService {
	if random == nil {
		random = ports.SystemRandom{}
	}

	return &SamplingService{
		store:  store,
		pick:   domain.NewIndexPicker(mode, random.Float64),
		logger: observability.OrDiscard(logger),
		newID:  newSessionID,
	}
}

func newSessionID() domain.SessionID {
	return domain.SessionID(uuid.NewString())
}

// Restore reads the persisted session. Missing or malformed state yields an
// empty session and false.
func (s *SamplingService) Restore(ctx context.Context) (domain.Session, bool) {
	state, err := s.loadState(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrStateNotFound) {
			s.logger.Warn("discarding persisted session", slog.Any("error", err))
		}
		return domain.NewSession(s.newID()), false
	}

	session, ok := domain.RestoreSession(state)
	if !ok {
		return domain.NewSession(s.newID()), false
	}

	s.logger.Debug("session restored",
		slog.String("session_id", string(session.ID)),
		slog.String("root", session.Root),
		slog.Int("remaining", session.Pool.Len()),
		slog.String("state", string(session.State)))

	return session, true
}

func (s *SamplingService) loadState(ctx context.Context) (domain.PersistedState, error) {
	var root string
	if err := s.getJSON(ctx, StateKeyRootDirectory, &root); err != nil {
		return domain.PersistedState{}, err
	}
	if strings.TrimSpace(root) == "" {
		return domain.PersistedState{}, domain.ErrStateNotFound
	}

	state := domain.PersistedState{Root: root}

	// A null pool means the root was chosen but never listed.
	var pool *[]string
	err := s.getJSON(ctx, StateKeyPool, &pool)
	if err != nil && !errors.Is(err, domain.ErrStateNotFound) {
		return domain.PersistedState{}, err
	}
	if err == nil && pool != nil {
		state.Pool = domain.PoolFromStrings(*pool).Members()
		state.HasPool = true
	}

	var id string
	err = s.getJSON(ctx, StateKeySessionID, &id)
	if err != nil && !errors.Is(err, domain.ErrStateNotFound) {
		return domain.PersistedState{}, err
	}
	if strings.TrimSpace(id) == "" {
		id = string(s.newID())
	}
	state.SessionID = domain.SessionID(id)

	return state, nil
}

// Begin replaces session with a fresh one for root and persists it.
func (s *SamplingService) Begin(ctx context.Context, session *domain.Session, root string) {
	*session = domain.NewSession(s.newID())
	session.Reset(root)

	s.setJSON(ctx, StateKeyRootDirectory, session.Root)
	s.setJSON(ctx, StateKeySessionID, string(session.ID))
	s.persistPool(ctx, session)

	s.logger.Info("session started",
		slog.String("session_id", string(session.ID)),
		slog.String("root", session.Root))
}

// Ingest feeds a directory listing to the session and persists the pool the
// session holds afterwards.
func (s *SamplingService) Ingest(ctx context.Context, session *domain.Session, entries []domain.Entry) (domain.IngestResult, error) {
	skipped := session.SkipsNextListing()
	result, err := session.Ingest(entries)
	if err != nil {
		return domain.IngestResult{}, err
	}

	s.persistPool(ctx, session)

	s.logger.Info("listing ingested",
		slog.String("session_id", string(session.ID)),
		slog.Int("listed", result.Listed.Len()),
		slog.Bool("installed", result.Installed),
		slog.Bool("skipped", skipped),
		slog.Int("remaining", session.Pool.Len()))

	return result, nil
}

// Draw removes a random candidate from the pool and persists the shrunk pool.
func (s *SamplingService) Draw(ctx context.Context, session *domain.Session) (domain.CandidateID, error) {
	winner, err := session.Draw(s.pick)
	if err != nil {
		s.logger.Info("pool exhausted", slog.String("session_id", string(session.ID)))
		return "", err
	}

	s.persistPool(ctx, session)

	s.logger.Info("winner drawn",
		slog.String("session_id", string(session.ID)),
		slog.String("winner", string(winner)),
		slog.Int("remaining", session.Pool.Len()))

	return winner, nil
}

// persistPool writes null until the first listing is installed so a restart
// can tell "not listed yet" from "exhausted".
func (s *SamplingService) persistPool(ctx context.Context, session *domain.Session) {
	if !session.Persisted().HasPool {
		s.setJSON(ctx, StateKeyPool, nil)
		return
	}

	s.setJSON(ctx, StateKeyPool, session.Pool.Strings())
}

func (s *SamplingService) getJSON(ctx context.Context, key string, target any) error {
	raw, err := s.store.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("get %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(raw), target); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}

	return nil
}

func (s *SamplingService) setJSON(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		s.logger.Warn("encode state", slog.String("key", key), slog.Any("error", err))
		return
	}

	if err := s.store.Set(ctx, key, string(data)); err != nil {
		s.logger.Warn("persist state", slog.String("key", key), slog.Any("error", err))
	}
}
