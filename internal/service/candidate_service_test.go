package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/no0bAuntor/online-voting-system/internal/models"
	"github.com/no0bAuntor/online-voting-system/internal/service"
	"github.com/no0bAuntor/online-voting-system/internal/testutil"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newCandidateFixture() (*testutil.FakeCandidateRepository, *testutil.FakeUserRepository, service.CandidateService) {
	candidates := testutil.NewFakeCandidateRepository()
	users := testutil.NewFakeUserRepository()
	return candidates, users, service.NewCandidateService(candidates, users)
}

func TestAddCandidate(t *testing.T) {
	ctx := context.Background()
	_, _, svc := newCandidateFixture()

	candidate, err := svc.Add(ctx, "  Jane Doe  ", "Unity", "/uploads/jane.png")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if candidate.Name != "Jane Doe" {
		t.Errorf("Expected trimmed name, got %q", candidate.Name)
	}
	if candidate.ID.IsZero() {
		t.Error("Expected an assigned id")
	}
	if candidate.Votes != 0 {
		t.Errorf("Expected a new candidate to start at 0 votes, got %d", candidate.Votes)
	}
}

func TestAddCandidateEmptyName(t *testing.T) {
	ctx := context.Background()
	_, _, svc := newCandidateFixture()

	_, err := svc.Add(ctx, "   ", "Unity", "")
	if !errors.Is(err, service.ErrCandidateNameRequired) {
		t.Fatalf("Expected ErrCandidateNameRequired, got %v", err)
	}
}

func TestDeleteCandidateNotFound(t *testing.T) {
	ctx := context.Background()
	_, _, svc := newCandidateFixture()

	err := svc.Delete(ctx, primitive.NewObjectID())
	if !errors.Is(err, service.ErrCandidateNotFound) {
		t.Fatalf("Expected ErrCandidateNotFound, got %v", err)
	}
}

func TestListWithStatsPercentage(t *testing.T) {
	ctx := context.Background()
	candidates, users, svc := newCandidateFixture()

	candidates.AddCandidate(&models.Candidate{Name: "A", Votes: 1})
	candidates.AddCandidate(&models.Candidate{Name: "B", Votes: 3})

	// Three registered voters, one voted; the admin never counts.
	users.AddUser(&models.User{Username: "alice", Voted: true})
	users.AddUser(&models.User{Username: "bob"})
	users.AddUser(&models.User{Username: "carol"})
	users.AddUser(&models.User{Username: "observer", IsAdmin: true, Voted: true})

	report, err := svc.ListWithStats(ctx, true)
	if err != nil {
		t.Fatalf("ListWithStats failed: %v", err)
	}

	if report.Statistics.TotalRegisteredUsers != 3 {
		t.Errorf("Expected 3 registered users, got %d", report.Statistics.TotalRegisteredUsers)
	}
	if report.Statistics.TotalVotedUsers != 1 {
		t.Errorf("Expected 1 voted user, got %d", report.Statistics.TotalVotedUsers)
	}
	if report.Statistics.VotePercentage != 33.3 {
		t.Errorf("Expected 33.3 percent, got %v", report.Statistics.VotePercentage)
	}

	// sortByVotes puts the front-runner first.
	if len(report.Candidates) != 2 || report.Candidates[0].Name != "B" {
		t.Error("Expected candidates sorted by votes descending")
	}
}

func TestListWithStatsEmptyElectorate(t *testing.T) {
	ctx := context.Background()
	_, _, svc := newCandidateFixture()

	report, err := svc.ListWithStats(ctx, false)
	if err != nil {
		t.Fatalf("ListWithStats failed: %v", err)
	}
	if report.Statistics.VotePercentage != 0 {
		t.Errorf("Expected 0 percent with no registered voters, got %v", report.Statistics.VotePercentage)
	}
}
