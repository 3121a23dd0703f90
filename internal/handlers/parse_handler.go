package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "expensely/internal/errors"
	"expensely/internal/services"
)

// ParseHandler handles natural-language parsing requests.
type ParseHandler struct {
	parseService services.ParseServicer
}

// NewParseHandler creates a new ParseHandler.
func NewParseHandler(parseService services.ParseServicer) *ParseHandler {
	return &ParseHandler{parseService: parseService}
}

// ParseRequest represents the payload for a natural-language parse.
type ParseRequest struct {
	Mode string `json:"mode" binding:"required,parse_mode"`
	Text string `json:"text" binding:"required,min=1,max=1000"`
}

// Parse extracts a structured record from free-form text.
// @Summary     Parse natural language
// @Description Extract a structured expense, budget or template from free-form text
// @Tags        parse
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body ParseRequest true "Text to parse and the record kind to extract"
// @Success     200 {object} services.ParseResult "Parsed record"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     422 {object} ErrorResponse "Text could not be parsed"
// @Failure     502 {object} ErrorResponse "Parser unavailable"
// @Router      /parse [post]
func (h *ParseHandler) Parse(c *gin.Context) {
	if _, err := getUserID(c); err != nil {
		respondWithError(c, err)
		return
	}

	var req ParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.parseService.Parse(c.Request.Context(), services.ParseMode(req.Mode), req.Text)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}
