package service

import (
	"errors"
	"time"
)

var (
	ErrCandidateNotFound = errors.New("candidate not found")
	ErrSymbolNotFound    = errors.New("symbol not found")
	ErrUserNotFound      = errors.New("user not found")

	// ErrVotingClosed means the election switch was off at the precondition
	// check. Callers must not retry automatically.
	ErrVotingClosed = errors.New("voting is currently closed")

	// ErrVoteRejected means the conditional update matched no document: a
	// concurrent request for the same voter won the race after the pre-check
	// passed. Never retried.
	ErrVoteRejected = errors.New("vote could not be processed")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameReserved   = errors.New("username reserved for admin")
	ErrUsernameTaken      = errors.New("username already exists, please choose a different username")
	ErrPasswordInUse      = errors.New("this password is already in use, please choose a different password")
	ErrUsernameTooShort   = errors.New("username must be at least 3 characters long")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters long")

	ErrCandidateNameRequired = errors.New("candidate name is required")
	ErrSymbolNameRequired    = errors.New("symbol name is required")
	ErrSymbolImageRequired   = errors.New("symbol image is required")
	ErrSymbolNameTaken       = errors.New("symbol with this name already exists")
)

// AlreadyVotedError reports a duplicate ballot attempt caught by the
// non-authoritative pre-check. VotedAt carries the original timestamp for
// user feedback.
type AlreadyVotedError struct {
	VotedAt time.Time
}

func (e *AlreadyVotedError) Error() string {
	return "you have already voted"
}
