package domain

import (
	"path/filepath"
	"strings"
)

// CandidateID identifies a folder that can be drawn from a pool. It is the
// path reported by the directory listing and is treated as opaque.
type CandidateID string

type Entry struct {
	Name  string
	Path  string
	IsDir bool
}

// ExcludedSuffixes lists the entry name endings that never become candidates.
var ExcludedSuffixes = []string{".jpg", ".png", ".gif", ".mp4", ".ini"}

func (e Entry) name() string {
	if e.Name != "" {
		return e.Name
	}

	return filepath.Base(e.Path)
}

func (e Entry) candidateID() CandidateID {
	if strings.TrimSpace(e.Path) != "" {
		return CandidateID(e.Path)
	}

	return CandidateID(e.Name)
}

func IsCandidate(entry Entry) bool {
	name := entry.name()
	for _, suffix := range ExcludedSuffixes {
		if strings.HasSuffix(name, suffix) {
			return false
		}
	}

	return true
}

// FilterEntries turns a raw directory listing into a pool, keeping the
// listing order of the entries that survive.
func FilterEntries(entries []Entry) Pool {
	ids := make([]CandidateID, 0, len(entries))
	for _, entry := range entries {
		if !IsCandidate(entry) {
			continue
		}
		ids = append(ids, entry.candidateID())
	}

	return NewPool(ids)
}

// Pool is an immutable snapshot of undrawn candidates. Operations that
// shrink it return a new Pool and leave the receiver untouched.
type Pool struct {
	members []CandidateID
}

func NewPool(ids []CandidateID) Pool {
	members := make([]CandidateID, 0, len(ids))
	seen := make(map[CandidateID]struct{}, len(ids))
	for _, id := range ids {
		if strings.TrimSpace(string(id)) == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		members = append(members, id)
	}

	return Pool{members: members}
}

func (p Pool) Len() int {
	return len(p.members)
}

func (p Pool) Empty() bool {
	return len(p.members) == 0
}

func (p Pool) At(index int) CandidateID {
	return p.members[index]
}

// Members returns a copy of the candidates in pool order.
func (p Pool) Members() []CandidateID {
	members := make([]CandidateID, len(p.members))
	copy(members, p.members)
	return members
}

func (p Pool) Contains(id CandidateID) bool {
	for _, member := range p.members {
		if member == id {
			return true
		}
	}

	return false
}

// Without returns a new pool with the candidate at index removed.
func (p Pool) Without(index int) Pool {
	if index < 0 || index >= len(p.members) {
		return Pool{members: p.Members()}
	}

	members := make([]CandidateID, 0, len(p.members)-1)
	members = append(members, p.members[:index]...)
	members = append(members, p.members[index+1:]...)

	return Pool{members: members}
}

func (p Pool) Strings() []string {
	values := make([]string, 0, len(p.members))
	for _, member := range p.members {
		values = append(values, string(member))
	}

	return values
}

func PoolFromStrings(values []string) Pool {
	ids := make([]CandidateID, 0, len(values))
	for _, value := range values {
		ids = append(ids, CandidateID(value))
	}

	return NewPool(ids)
}
