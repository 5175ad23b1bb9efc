package service

import (
	"context"
	"time"

	"github.com/no0bAuntor/online-voting-system/internal/models"
	"github.com/no0bAuntor/online-voting-system/internal/repository"
	"github.com/no0bAuntor/online-voting-system/pkg/zap"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BallotService interface {
	CastVote(ctx context.Context, voterID, candidateID primitive.ObjectID) (*models.VoteReceipt, error)
	HasVoted(ctx context.Context, voterID primitive.ObjectID) (bool, error)
}

type ballotService struct {
	userRepository      repository.UserRepository
	candidateRepository repository.CandidateRepository
	settingRepository   repository.SettingRepository
	log                 zap.Logger
}

func NewBallotService(
	userRepository repository.UserRepository,
	candidateRepository repository.CandidateRepository,
	settingRepository repository.SettingRepository,
	log zap.Logger,
) BallotService {
	return &ballotService{
		userRepository:      userRepository,
		candidateRepository: candidateRepository,
		settingRepository:   settingRepository,
		log:                 log,
	}
}

// CastVote records one ballot for the voter. The pre-checks on the election
// switch and the voter's flag exist only for fast feedback; the conditional
// MarkVoted write is the one authoritative guard, so concurrent duplicate
// requests for the same voter produce exactly one success and one tally
// increment. The flag flip and the tally increment are two separate writes;
// a failure between them leaves the voter marked without the matching
// increment, which is logged and surfaced, never compensated.
func (s *ballotService) CastVote(ctx context.Context, voterID, candidateID primitive.ObjectID) (*models.VoteReceipt, error) {

	candidate, err := s.candidateRepository.FindByID(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	if candidate == nil {
		return nil, ErrCandidateNotFound
	}

	open, err := s.settingRepository.GetVotingOpen(ctx)
	if err != nil {
		return nil, err
	}
	if !open {
		return nil, ErrVotingClosed
	}

	voter, err := s.userRepository.FindByID(ctx, voterID)
	if err != nil {
		return nil, err
	}
	if voter == nil {
		return nil, ErrUserNotFound
	}
	if voter.Voted {
		votedAt := time.Time{}
		if voter.VotedAt != nil {
			votedAt = *voter.VotedAt
		}
		return nil, &AlreadyVotedError{VotedAt: votedAt}
	}

	votedAt := time.Now()

	matched, err := s.userRepository.MarkVoted(ctx, voterID, candidateID, votedAt)
	if err != nil {
		return nil, err
	}
	if !matched {
		// Lost the race to a concurrent request for the same voter.
		return nil, ErrVoteRejected
	}

	if err := s.candidateRepository.IncrementVotes(ctx, candidateID); err != nil {
		s.log.Errorf("Voter %s marked as voted but tally increment for candidate %s failed: %v",
			voterID.Hex(), candidateID.Hex(), err)
		return nil, err
	}

	return &models.VoteReceipt{
		Candidate: candidate.Name,
		Timestamp: votedAt,
	}, nil
}

func (s *ballotService) HasVoted(ctx context.Context, voterID primitive.ObjectID) (bool, error) {

	voter, err := s.userRepository.FindByID(ctx, voterID)
	if err != nil {
		return false, err
	}
	if voter == nil {
		return false, ErrUserNotFound
	}

	return voter.Voted, nil
}
