package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/no0bAuntor/online-voting-system/internal/models"
	"github.com/no0bAuntor/online-voting-system/internal/service"
	"github.com/no0bAuntor/online-voting-system/pkg/constants"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type VoteHandlers struct {
	ballotService    service.BallotService
	electionService  service.ElectionService
	candidateService service.CandidateService
	uploadDir        string
}

func NewVoteHandlers(
	ballotService service.BallotService,
	electionService service.ElectionService,
	candidateService service.CandidateService,
	uploadDir string,
) *VoteHandlers {
	return &VoteHandlers{
		ballotService:    ballotService,
		electionService:  electionService,
		candidateService: candidateService,
		uploadDir:        uploadDir,
	}
}

func (h *VoteHandlers) GetStatus(c *gin.Context) {

	open, err := h.electionService.GetStatus(c)
	if err != nil {
		SendError(c, http.StatusInternalServerError, err, models.ErrInvalidOperation)
		return
	}

	SendSuccess(c, http.StatusOK, "", models.VotingStatusResponse{VotingOpen: open})
}

func (h *VoteHandlers) SetStatus(c *gin.Context) {

	var req models.VotingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendError(c, http.StatusBadRequest, err, models.ErrInvalidRequest)
		return
	}

	if err := h.electionService.SetStatus(c, *req.VotingOpen); err != nil {
		SendError(c, http.StatusInternalServerError, err, models.ErrInvalidOperation)
		return
	}

	SendSuccess(c, http.StatusOK, "Voting status updated", nil)
}

func (h *VoteHandlers) Voted(c *gin.Context) {

	voterID, ok := voterIDFromContext(c)
	if !ok {
		return
	}

	voted, err := h.ballotService.HasVoted(c, voterID)
	if errors.Is(err, service.ErrUserNotFound) {
		SendError(c, http.StatusNotFound, err, models.ErrNotFound)
		return
	}
	if err != nil {
		SendError(c, http.StatusInternalServerError, err, models.ErrInvalidOperation)
		return
	}

	SendSuccess(c, http.StatusOK, "", models.VotedResponse{Voted: voted})
}

func (h *VoteHandlers) CastVote(c *gin.Context) {

	voterID, ok := voterIDFromContext(c)
	if !ok {
		return
	}

	var req models.CastVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendError(c, http.StatusBadRequest, err, models.ErrInvalidRequest)
		return
	}

	candidateID, err := primitive.ObjectIDFromHex(req.CandidateID)
	if err != nil {
		SendError(c, http.StatusNotFound, service.ErrCandidateNotFound, models.ErrNotFound)
		return
	}

	receipt, err := h.ballotService.CastVote(c, voterID, candidateID)
	if err != nil {
		var alreadyVoted *service.AlreadyVotedError
		switch {
		case errors.Is(err, service.ErrCandidateNotFound), errors.Is(err, service.ErrUserNotFound):
			SendError(c, http.StatusNotFound, err, models.ErrNotFound)
		case errors.Is(err, service.ErrVotingClosed):
			SendError(c, http.StatusForbidden, err, models.ErrVotingClosed)
		case errors.As(err, &alreadyVoted):
			SendErrorWithData(c, http.StatusForbidden, err, models.ErrAlreadyVoted,
				gin.H{"timestamp": alreadyVoted.VotedAt})
		case errors.Is(err, service.ErrVoteRejected):
			SendError(c, http.StatusForbidden, err, models.ErrVoteRejected)
		default:
			SendError(c, http.StatusInternalServerError, err, models.ErrInvalidOperation)
		}
		return
	}

	SendSuccess(c, http.StatusOK, "Vote counted successfully", receipt)
}

func (h *VoteHandlers) ListCandidates(c *gin.Context) {

	candidates, err := h.candidateService.List(c)
	if err != nil {
		SendError(c, http.StatusInternalServerError, err, models.ErrInvalidOperation)
		return
	}

	SendSuccess(c, http.StatusOK, "", candidates)
}

func (h *VoteHandlers) ListAllCandidates(c *gin.Context) {

	report, err := h.candidateService.ListWithStats(c, false)
	if err != nil {
		SendError(c, http.StatusInternalServerError, err, models.ErrInvalidOperation)
		return
	}

	SendSuccess(c, http.StatusOK, "", report)
}

func (h *VoteHandlers) AddCandidate(c *gin.Context) {

	name := c.PostForm("name")
	party := c.PostForm("party")

	photoURL := ""
	if file, err := c.FormFile("photo"); err == nil {
		photoURL, err = saveImage(c, file, h.uploadDir, "")
		if err != nil {
			SendError(c, http.StatusBadRequest, err, models.ErrInvalidRequest)
			return
		}
	}

	candidate, err := h.candidateService.Add(c, name, party, photoURL)
	if errors.Is(err, service.ErrCandidateNameRequired) {
		SendError(c, http.StatusBadRequest, err, models.ErrInvalidRequest)
		return
	}
	if err != nil {
		SendError(c, http.StatusInternalServerError, err, models.ErrInvalidOperation)
		return
	}

	SendSuccess(c, http.StatusOK, "Candidate added", candidate)
}

func (h *VoteHandlers) DeleteCandidate(c *gin.Context) {

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		SendError(c, http.StatusNotFound, service.ErrCandidateNotFound, models.ErrNotFound)
		return
	}

	err = h.candidateService.Delete(c, id)
	if errors.Is(err, service.ErrCandidateNotFound) {
		SendError(c, http.StatusNotFound, err, models.ErrNotFound)
		return
	}
	if err != nil {
		SendError(c, http.StatusInternalServerError, err, models.ErrInvalidOperation)
		return
	}

	SendSuccess(c, http.StatusOK, "Candidate deleted", nil)
}

func (h *VoteHandlers) ResetElection(c *gin.Context) {

	if err := h.electionService.ResetElection(c); err != nil {
		SendError(c, http.StatusInternalServerError, err, models.ErrInvalidOperation)
		return
	}

	SendSuccess(c, http.StatusOK, "Election reset successfully", nil)
}

func (h *VoteHandlers) Stats(c *gin.Context) {

	stats, err := h.electionService.Stats(c)
	if err != nil {
		SendError(c, http.StatusInternalServerError, err, models.ErrInvalidOperation)
		return
	}

	SendSuccess(c, http.StatusOK, "", stats)
}

// voterIDFromContext resolves the authenticated caller to a voter document
// id. The admin sentinel is not a voter and cannot reach voter-scoped
// operations.
func voterIDFromContext(c *gin.Context) (primitive.ObjectID, bool) {

	userID := c.GetString(constants.UserID)

	voterID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		SendError(c, http.StatusForbidden, fmt.Errorf("caller is not a registered voter"), models.ErrUnauthorized)
		return primitive.NilObjectID, false
	}

	return voterID, true
}
