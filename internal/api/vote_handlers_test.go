package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/no0bAuntor/online-voting-system/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func castVoteRequest(t *testing.T, candidateID, token string) *http.Request {
	t.Helper()
	body, _ := json.Marshal(models.CastVoteRequest{CandidateID: candidateID})
	req := httptest.NewRequest(http.MethodPost, "/api/vote", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func TestGetVotingStatusDefaultsOpen(t *testing.T) {
	env := newTestEnv(t)

	w, resp := env.do(t, httptest.NewRequest(http.MethodGet, "/api/vote/status", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	data := resp.Data.(map[string]interface{})
	if data["votingOpen"] != true {
		t.Errorf("Expected votingOpen true, got %v", data["votingOpen"])
	}
}

func TestSetVotingStatus(t *testing.T) {
	env := newTestEnv(t)

	body := bytes.NewReader([]byte(`{"votingOpen": false}`))
	req := httptest.NewRequest(http.MethodPost, "/api/vote/status", body)
	req.Header.Set("Content-Type", "application/json")

	w, _ := env.do(t, req)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	w, resp := env.do(t, httptest.NewRequest(http.MethodGet, "/api/vote/status", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	data := resp.Data.(map[string]interface{})
	if data["votingOpen"] != false {
		t.Errorf("Expected votingOpen false after toggle, got %v", data["votingOpen"])
	}
}

func TestSetVotingStatusMissingBody(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/api/vote/status", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")

	w, _ := env.do(t, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for a missing votingOpen field, got %d", w.Code)
	}
}

func TestCastVoteRequiresAuth(t *testing.T) {
	env := newTestEnv(t)
	candidateID := env.candidates.AddCandidate(&models.Candidate{Name: "A"})

	w, _ := env.do(t, castVoteRequest(t, candidateID.Hex(), ""))
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 without a token, got %d", w.Code)
	}

	req := castVoteRequest(t, candidateID.Hex(), "not-a-token")
	w, resp := env.do(t, req)
	if w.Code != http.StatusForbidden {
		t.Errorf("Expected 403 for a bad token, got %d", w.Code)
	}
	if resp.ErrorCode != models.ErrUnauthorized {
		t.Errorf("Expected %s, got %s", models.ErrUnauthorized, resp.ErrorCode)
	}
}

func TestCastVoteErrorMapping(t *testing.T) {
	env := newTestEnv(t)

	candidateID := env.candidates.AddCandidate(&models.Candidate{Name: "A"})

	votedAt := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)
	prior := primitive.NewObjectID()
	votedID := env.users.AddUser(&models.User{
		Username:       "bob",
		Voted:          true,
		VotedAt:        &votedAt,
		CandidateVoted: &prior,
	})
	freshID := env.users.AddUser(&models.User{Username: "alice"})

	tests := []struct {
		name          string
		candidateID   string
		voterID       string
		closeVoting   bool
		wantStatus    int
		wantErrorCode string
	}{
		{
			name:          "unknown candidate",
			candidateID:   primitive.NewObjectID().Hex(),
			voterID:       freshID.Hex(),
			wantStatus:    http.StatusNotFound,
			wantErrorCode: models.ErrNotFound,
		},
		{
			name:          "malformed candidate id",
			candidateID:   "not-an-id",
			voterID:       freshID.Hex(),
			wantStatus:    http.StatusNotFound,
			wantErrorCode: models.ErrNotFound,
		},
		{
			name:          "voting closed",
			candidateID:   candidateID.Hex(),
			voterID:       freshID.Hex(),
			closeVoting:   true,
			wantStatus:    http.StatusForbidden,
			wantErrorCode: models.ErrVotingClosed,
		},
		{
			name:          "already voted",
			candidateID:   candidateID.Hex(),
			voterID:       votedID.Hex(),
			wantStatus:    http.StatusForbidden,
			wantErrorCode: models.ErrAlreadyVoted,
		},
		{
			name:          "admin cannot vote",
			candidateID:   candidateID.Hex(),
			voterID:       "admin",
			wantStatus:    http.StatusForbidden,
			wantErrorCode: models.ErrUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := env.settings.SetVotingOpen(context.Background(), !tt.closeVoting); err != nil {
				t.Fatalf("SetVotingOpen failed: %v", err)
			}

			w, resp := env.do(t, castVoteRequest(t, tt.candidateID, signToken(t, tt.voterID)))
			if w.Code != tt.wantStatus {
				t.Errorf("Expected status %d, got %d", tt.wantStatus, w.Code)
			}
			if resp.ErrorCode != tt.wantErrorCode {
				t.Errorf("Expected error code %s, got %s", tt.wantErrorCode, resp.ErrorCode)
			}
		})
	}
}

func TestCastVoteAlreadyVotedCarriesTimestamp(t *testing.T) {
	env := newTestEnv(t)

	candidateID := env.candidates.AddCandidate(&models.Candidate{Name: "A"})

	votedAt := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)
	prior := primitive.NewObjectID()
	voterID := env.users.AddUser(&models.User{
		Username:       "bob",
		Voted:          true,
		VotedAt:        &votedAt,
		CandidateVoted: &prior,
	})

	w, resp := env.do(t, castVoteRequest(t, candidateID.Hex(), signToken(t, voterID.Hex())))
	if w.Code != http.StatusForbidden {
		t.Fatalf("Expected 403, got %d", w.Code)
	}

	data, ok := resp.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("Expected a data payload carrying the timestamp, got %v", resp.Data)
	}
	ts, ok := data["timestamp"].(string)
	if !ok {
		t.Fatalf("Expected a timestamp string, got %v", data["timestamp"])
	}
	parsed, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		t.Fatalf("Failed to parse timestamp %q: %v", ts, err)
	}
	if !parsed.Equal(votedAt) {
		t.Errorf("Expected original timestamp %v, got %v", votedAt, parsed)
	}
}

func TestVotedEndpoint(t *testing.T) {
	env := newTestEnv(t)

	voterID := env.users.AddUser(&models.User{Username: "alice"})
	candidateID := env.candidates.AddCandidate(&models.Candidate{Name: "A"})
	token := signToken(t, voterID.Hex())

	req := httptest.NewRequest(http.MethodGet, "/api/vote/voted", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w, resp := env.do(t, req)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	if resp.Data.(map[string]interface{})["voted"] != false {
		t.Error("Expected voted false before casting")
	}

	if w, _ := env.do(t, castVoteRequest(t, candidateID.Hex(), token)); w.Code != http.StatusOK {
		t.Fatalf("CastVote failed with status %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/vote/voted", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	_, resp = env.do(t, req)
	if resp.Data.(map[string]interface{})["voted"] != true {
		t.Error("Expected voted true after casting")
	}
}

func TestDeleteCandidateNotFound(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodDelete, "/api/vote/"+primitive.NewObjectID().Hex(), nil)
	w, resp := env.do(t, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", w.Code)
	}
	if resp.ErrorCode != models.ErrNotFound {
		t.Errorf("Expected %s, got %s", models.ErrNotFound, resp.ErrorCode)
	}
}

func TestStatsEndpoint(t *testing.T) {
	env := newTestEnv(t)

	env.candidates.AddCandidate(&models.Candidate{Name: "A"})
	env.users.AddUser(&models.User{Username: "alice"})

	w, resp := env.do(t, httptest.NewRequest(http.MethodGet, "/api/vote/stats", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	data := resp.Data.(map[string]interface{})
	if data["totalCandidates"] != float64(1) {
		t.Errorf("Expected 1 candidate, got %v", data["totalCandidates"])
	}
	if data["totalUsers"] != float64(1) {
		t.Errorf("Expected 1 user, got %v", data["totalUsers"])
	}
	if data["votingOpen"] != true {
		t.Errorf("Expected votingOpen true, got %v", data["votingOpen"])
	}
}
