package api

import (
	"net/http"

	"github.com/no0bAuntor/online-voting-system/internal/models"
	"github.com/no0bAuntor/online-voting-system/internal/service"

	"github.com/gin-gonic/gin"
)

type ResultHandlers struct {
	candidateService service.CandidateService
}

func NewResultHandlers(candidateService service.CandidateService) *ResultHandlers {
	return &ResultHandlers{
		candidateService: candidateService,
	}
}

func (h *ResultHandlers) GetResults(c *gin.Context) {

	report, err := h.candidateService.ListWithStats(c, true)
	if err != nil {
		SendError(c, http.StatusInternalServerError, err, models.ErrInvalidOperation)
		return
	}

	SendSuccess(c, http.StatusOK, "", report)
}
