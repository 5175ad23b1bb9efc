package service

import (
	"context"
	"math"
	"strings"

	"github.com/no0bAuntor/online-voting-system/internal/models"
	"github.com/no0bAuntor/online-voting-system/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CandidateService interface {
	List(ctx context.Context) ([]*models.Candidate, error)
	ListWithStats(ctx context.Context, sortByVotes bool) (*models.CandidateReport, error)
	Add(ctx context.Context, name, party, photoURL string) (*models.Candidate, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type candidateService struct {
	candidateRepository repository.CandidateRepository
	userRepository      repository.UserRepository
}

func NewCandidateService(
	candidateRepository repository.CandidateRepository,
	userRepository repository.UserRepository,
) CandidateService {
	return &candidateService{
		candidateRepository: candidateRepository,
		userRepository:      userRepository,
	}
}

func (s *candidateService) List(ctx context.Context) ([]*models.Candidate, error) {
	return s.candidateRepository.FindAll(ctx)
}

// ListWithStats returns the candidate list together with turnout over
// non-admin voters. The results page wants candidates sorted by votes, the
// admin overview keeps insertion order.
func (s *candidateService) ListWithStats(ctx context.Context, sortByVotes bool) (*models.CandidateReport, error) {

	var candidates []*models.Candidate
	var err error

	if sortByVotes {
		candidates, err = s.candidateRepository.FindAllByVotes(ctx)
	} else {
		candidates, err = s.candidateRepository.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	registered, err := s.userRepository.CountRegistered(ctx)
	if err != nil {
		return nil, err
	}

	voted, err := s.userRepository.CountVotedRegistered(ctx)
	if err != nil {
		return nil, err
	}

	return &models.CandidateReport{
		Candidates: candidates,
		Statistics: models.VoterStatistics{
			TotalRegisteredUsers: registered,
			TotalVotedUsers:      voted,
			VotePercentage:       votePercentage(voted, registered),
		},
	}, nil
}

func (s *candidateService) Add(ctx context.Context, name, party, photoURL string) (*models.Candidate, error) {

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrCandidateNameRequired
	}

	candidate := &models.Candidate{
		Name:     name,
		Party:    strings.TrimSpace(party),
		PhotoURL: photoURL,
		Votes:    0,
	}

	if err := s.candidateRepository.Insert(ctx, candidate); err != nil {
		return nil, err
	}

	return candidate, nil
}

func (s *candidateService) Delete(ctx context.Context, id primitive.ObjectID) error {

	deleted, err := s.candidateRepository.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrCandidateNotFound
	}

	return nil
}

// votePercentage rounds to one decimal place and defines 0 for an empty
// electorate.
func votePercentage(voted, registered int64) float64 {
	if registered <= 0 {
		return 0
	}
	return math.Round(float64(voted)/float64(registered)*1000) / 10
}
