package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "expensely/internal/errors"
	"expensely/internal/services"
)

// SummaryHandler handles aggregate spending summary requests.
type SummaryHandler struct {
	summaryService services.SummaryServicer
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(summaryService services.SummaryServicer) *SummaryHandler {
	return &SummaryHandler{summaryService: summaryService}
}

// GetSummary handles per-category spending totals over a date range.
// @Summary     Get spending summary
// @Description Total and per-category spend of included expenses in [from, to)
// @Tags        summary
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       from query string true "Start of date range (RFC 3339, inclusive)"
// @Param       to   query string true "End of date range (RFC 3339, exclusive)"
// @Success     200 {object} services.Summary "Spending summary"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /summary [get]
func (h *SummaryHandler) GetSummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	from, err := time.Parse(time.RFC3339, c.Query("from"))
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "from must be an RFC 3339 timestamp"))
		return
	}

	to, err := time.Parse(time.RFC3339, c.Query("to"))
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "to must be an RFC 3339 timestamp"))
		return
	}

	if !from.Before(to) {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "from must be before to"))
		return
	}

	summary, err := h.summaryService.GetSummary(userID, from, to)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}
