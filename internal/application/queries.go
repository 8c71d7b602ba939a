package application

import "github.com/bnema/random-folder-picker/internal/domain"

type StatusImage struct {
	Name        string
	Path        string
	ContentType string
	Size        int
}

type SessionStatus struct {
	SessionID domain.SessionID
	Root      string
	State     domain.SessionState
	Remaining int
	Winner    domain.CandidateID
	Image     *StatusImage
	History   int
}

func (s SessionStatus) Exhausted() bool {
	return s.State == domain.SessionExhausted
}
