package domain

import "errors"

var (
	ErrStateNotFound    = errors.New("state not found")
	ErrNoRootDirectory  = errors.New("no root directory")
	ErrInvalidRoot      = errors.New("invalid root directory")
	ErrPoolExhausted    = errors.New("pool exhausted")
	ErrNoImage          = errors.New("no image")
	ErrNoWinner         = errors.New("no winner")
	ErrNoHistory        = errors.New("no previous winner")
	ErrFavoriteNotFound = errors.New("favorite not found")
)
