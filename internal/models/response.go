package models

import "time"

type APIResponse struct {
	StatusCode int         `json:"status_code"`
	Message    string      `json:"message,omitempty"`
	Data       interface{} `json:"data,omitempty"`
	Error      string      `json:"error,omitempty"`
	ErrorCode  string      `json:"error_code,omitempty"`
}

type LoginResponse struct {
	Token   string `json:"token"`
	IsAdmin bool   `json:"isAdmin"`
}

type VotingStatusResponse struct {
	VotingOpen bool `json:"votingOpen"`
}

type VotedResponse struct {
	Voted bool `json:"voted"`
}

// VoteReceipt is returned to the voter after a successful cast.
type VoteReceipt struct {
	Candidate string    `json:"candidate"`
	Timestamp time.Time `json:"timestamp"`
}

// VoterStatistics summarizes turnout over non-admin voters.
type VoterStatistics struct {
	TotalRegisteredUsers int64   `json:"totalRegisteredUsers"`
	TotalVotedUsers      int64   `json:"totalVotedUsers"`
	VotePercentage       float64 `json:"votePercentage"`
}

type CandidateReport struct {
	Candidates []*Candidate    `json:"candidates"`
	Statistics VoterStatistics `json:"statistics"`
}

// ElectionStats counts every user document, admins included, unlike
// VoterStatistics which filters them out. The two reports are kept separate
// on purpose.
type ElectionStats struct {
	TotalCandidates int64 `json:"totalCandidates"`
	TotalUsers      int64 `json:"totalUsers"`
	TotalVotesCast  int64 `json:"totalVotesCast"`
	VotingOpen      bool  `json:"votingOpen"`
}

const (
	ErrInvalidOperation = "ERR_INVALID_OPERATION"
	ErrInvalidRequest   = "ERR_INVALID_REQUEST"
	ErrNotFound         = "ERR_NOT_FOUND"
	ErrUnauthorized     = "ERR_UNAUTHORIZED"
	ErrVotingClosed     = "ERR_VOTING_CLOSED"
	ErrAlreadyVoted     = "ERR_ALREADY_VOTED"
	ErrVoteRejected     = "ERR_VOTE_REJECTED"
)
