package domain

import "strings"

type SessionID string

type SessionState string

const (
	SessionEmpty           SessionState = "empty"
	SessionAwaitingListing SessionState = "awaiting_listing"
	SessionPopulated       SessionState = "populated"
	SessionExhausted       SessionState = "exhausted"
)

// PersistedState is the durable part of a session: what survives a restart.
type PersistedState struct {
	SessionID SessionID
	Root      string
	Pool      []CandidateID
	HasPool   bool
}

// Session samples candidates without replacement for one root directory.
//
//	Empty -> AwaitingListing -> Populated <-> Populated/Exhausted
//	Exhausted -> AwaitingListing only through Relist.
//
// A restored session with a non-empty pool starts in Populated, ignores the
// next listing and owes exactly one draw. A restored empty pool stays
// Exhausted until Relist.
type Session struct {
	ID     SessionID
	Root   string
	State  SessionState
	Pool   Pool
	Winner CandidateID

	skipNextListing bool
	drawPending     bool
}

type IngestResult struct {
	Listed    Pool
	Installed bool
}

func NewSession(id SessionID) Session {
	return Session{ID: id, State: SessionEmpty}
}

// RestoreSession rebuilds a session from persisted state. It reports false
// when there is no usable root directory.
func RestoreSession(state PersistedState) (Session, bool) {
	root := strings.TrimSpace(state.Root)
	if root == "" {
		return Session{}, false
	}

	session := Session{ID: state.SessionID, Root: root, State: SessionAwaitingListing}
	if !state.HasPool {
		return session, true
	}

	pool := NewPool(state.Pool)
	if pool.Empty() {
		session.State = SessionExhausted
		return session, true
	}

	session.Pool = pool
	session.State = SessionPopulated
	session.skipNextListing = true
	session.drawPending = true

	return session, true
}

// Reset discards the pool and winner and waits for a listing of root.
func (s *Session) Reset(root string) {
	s.Root = strings.TrimSpace(root)
	s.Pool = Pool{}
	s.Winner = ""
	s.State = SessionAwaitingListing
	s.skipNextListing = false
	s.drawPending = false
}

// Relist marks the session for a fresh listing of the current root. The held
// pool stays drawable until the listing is ingested, but only an installed
// listing owes a draw.
func (s *Session) Relist() error {
	if s.State == SessionEmpty || s.Root == "" {
		return ErrNoRootDirectory
	}

	s.State = SessionAwaitingListing
	s.skipNextListing = false
	s.drawPending = false

	return nil
}

// Ingest filters a listing into a pool. After a restore the first listing is
// swallowed so it cannot clobber the remaining candidates. An exhausted
// session ignores listings until Relist.
func (s *Session) Ingest(entries []Entry) (IngestResult, error) {
	if s.State == SessionEmpty || s.Root == "" {
		return IngestResult{}, ErrNoRootDirectory
	}

	listed := FilterEntries(entries)
	if s.State == SessionExhausted {
		return IngestResult{Listed: listed}, nil
	}
	if s.skipNextListing {
		s.skipNextListing = false
		return IngestResult{Listed: listed}, nil
	}

	s.Pool = listed
	if listed.Empty() {
		s.State = SessionExhausted
		s.drawPending = false
	} else {
		s.State = SessionPopulated
		s.drawPending = true
	}

	return IngestResult{Listed: listed, Installed: true}, nil
}

// Draw removes one candidate chosen by pick and makes it the winner. An empty
// pool yields ErrPoolExhausted and leaves the session unchanged.
func (s *Session) Draw(pick IndexPicker) (CandidateID, error) {
	if s.Pool.Empty() {
		return "", ErrPoolExhausted
	}

	index := clampIndex(pick(s.Pool.Len()), s.Pool.Len())
	winner := s.Pool.At(index)

	s.Pool = s.Pool.Without(index)
	s.Winner = winner
	s.drawPending = false
	if s.Pool.Empty() {
		s.State = SessionExhausted
	} else {
		s.State = SessionPopulated
	}

	return winner, nil
}

// TakePendingDraw reports whether an automatic draw is owed and clears it.
func (s *Session) TakePendingDraw() bool {
	if !s.drawPending {
		return false
	}
	s.drawPending = false

	return !s.Pool.Empty()
}

// SkipsNextListing reports whether the next listing will be swallowed.
func (s Session) SkipsNextListing() bool {
	return s.skipNextListing
}

func (s Session) Exhausted() bool {
	return s.State == SessionExhausted
}

// Persisted reports the durable state. A session still waiting for its first
// listing has no pool yet, which is not the same as an exhausted one.
func (s Session) Persisted() PersistedState {
	return PersistedState{
		SessionID: s.ID,
		Root:      s.Root,
		Pool:      s.Pool.Members(),
		HasPool:   s.State != SessionAwaitingListing || !s.Pool.Empty(),
	}
}
