package service

import (
	"context"

	"github.com/no0bAuntor/online-voting-system/internal/models"
	"github.com/no0bAuntor/online-voting-system/internal/repository"
	"github.com/no0bAuntor/online-voting-system/pkg/zap"
)

type ElectionService interface {
	GetStatus(ctx context.Context) (bool, error)
	SetStatus(ctx context.Context, open bool) error
	ResetElection(ctx context.Context) error
	Stats(ctx context.Context) (*models.ElectionStats, error)
}

type electionService struct {
	userRepository      repository.UserRepository
	candidateRepository repository.CandidateRepository
	settingRepository   repository.SettingRepository
	log                 zap.Logger
}

func NewElectionService(
	userRepository repository.UserRepository,
	candidateRepository repository.CandidateRepository,
	settingRepository repository.SettingRepository,
	log zap.Logger,
) ElectionService {
	return &electionService{
		userRepository:      userRepository,
		candidateRepository: candidateRepository,
		settingRepository:   settingRepository,
		log:                 log,
	}
}

func (s *electionService) GetStatus(ctx context.Context) (bool, error) {
	return s.settingRepository.GetVotingOpen(ctx)
}

func (s *electionService) SetStatus(ctx context.Context, open bool) error {
	return s.settingRepository.SetVotingOpen(ctx, open)
}

// ResetElection wipes the election in a fixed order: candidates first, then
// every voter's voting status, then the switch is forced closed. The three
// steps are not atomic as a whole; the order keeps the inconsistency window
// as small as possible. Voting must be explicitly reopened afterwards.
func (s *electionService) ResetElection(ctx context.Context) error {

	if err := s.candidateRepository.DeleteAll(ctx); err != nil {
		return err
	}

	if err := s.userRepository.ResetVotes(ctx); err != nil {
		return err
	}

	if err := s.settingRepository.SetVotingOpen(ctx, false); err != nil {
		return err
	}

	s.log.Info("Election reset: candidates cleared, voter status cleared, voting closed")

	return nil
}

// Stats counts every user document, admins included; see VoterStatistics for
// the admin-filtered report.
func (s *electionService) Stats(ctx context.Context) (*models.ElectionStats, error) {

	totalCandidates, err := s.candidateRepository.Count(ctx)
	if err != nil {
		return nil, err
	}

	totalUsers, err := s.userRepository.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	totalVotesCast, err := s.userRepository.CountVoted(ctx)
	if err != nil {
		return nil, err
	}

	votingOpen, err := s.settingRepository.GetVotingOpen(ctx)
	if err != nil {
		return nil, err
	}

	return &models.ElectionStats{
		TotalCandidates: totalCandidates,
		TotalUsers:      totalUsers,
		TotalVotesCast:  totalVotesCast,
		VotingOpen:      votingOpen,
	}, nil
}
