package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "expensely/internal/errors"
	"expensely/internal/services"
)

// TemplateHandler handles expense template requests.
type TemplateHandler struct {
	templateService services.TemplateServicer
}

// NewTemplateHandler creates a new TemplateHandler.
func NewTemplateHandler(templateService services.TemplateServicer) *TemplateHandler {
	return &TemplateHandler{templateService: templateService}
}

// CreateTemplateRequest represents the payload for creating a template.
type CreateTemplateRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Type        string `json:"type" binding:"required,min=1,max=100"`
	Amount      int64  `json:"amount" binding:"required,gte=0"`
	Description string `json:"description" binding:"omitempty,max=500"`
}

// UpdateTemplateRequest represents the payload for updating a template.
type UpdateTemplateRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=100"`
	Type        *string `json:"type" binding:"omitempty,min=1,max=100"`
	Amount      *int64  `json:"amount" binding:"omitempty,gte=0"`
	Description *string `json:"description" binding:"omitempty,max=500"`
}

// ApplyTemplateRequest represents the payload for applying a template.
type ApplyTemplateRequest struct {
	Date *time.Time `json:"date"`
}

// CreateTemplate handles creating a new expense template.
// @Summary     Create a template
// @Tags        templates
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateTemplateRequest true "Template details"
// @Success     201 {object} models.Template "Template created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /templates [post]
func (h *TemplateHandler) CreateTemplate(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	template, err := h.templateService.CreateTemplate(userID, req.Name, req.Type, req.Amount, req.Description)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"template": template})
}

// GetTemplates handles listing the user's templates.
// @Summary     Get templates
// @Tags        templates
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} models.Template "Templates"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /templates [get]
func (h *TemplateHandler) GetTemplates(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	templates, err := h.templateService.GetUserTemplates(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"templates": templates})
}

// UpdateTemplate handles updating an existing template.
// @Summary     Update template
// @Tags        templates
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string                true "Template ID"
// @Param       request body UpdateTemplateRequest true "Updated template details"
// @Success     200 {object} models.Template "Updated template"
// @Failure     400 {object} ErrorResponse "Invalid input or template ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Template not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /templates/{id} [put]
func (h *TemplateHandler) UpdateTemplate(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	templateID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	template, err := h.templateService.UpdateTemplate(userID, templateID, req.Name, req.Type, req.Amount, req.Description)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"template": template})
}

// DeleteTemplate handles deleting a template.
// @Summary     Delete template
// @Tags        templates
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Template ID"
// @Success     200 {object} MessageResponse "Template deleted"
// @Failure     400 {object} ErrorResponse "Invalid template ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Template not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /templates/{id} [delete]
func (h *TemplateHandler) DeleteTemplate(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	templateID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.templateService.DeleteTemplate(userID, templateID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Template deleted successfully"})
}

// ApplyTemplate handles creating an expense from a template.
// @Summary     Apply template
// @Description Record a new expense using the template's type, amount and description
// @Tags        templates
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string               true  "Template ID"
// @Param       request body ApplyTemplateRequest false "Expense date (defaults to now)"
// @Success     201 {object} models.Expense "Expense created from template"
// @Failure     400 {object} ErrorResponse "Invalid input or template ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Template not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /templates/{id}/apply [post]
func (h *TemplateHandler) ApplyTemplate(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	templateID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ApplyTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	date := time.Now().UTC()
	if req.Date != nil {
		date = *req.Date
	}

	expense, err := h.templateService.ApplyTemplate(userID, templateID, date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"expense": expense})
}
