package models

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type CastVoteRequest struct {
	CandidateID string `json:"candidateId" binding:"required"`
}

type VotingStatusRequest struct {
	VotingOpen *bool `json:"votingOpen" binding:"required"`
}
