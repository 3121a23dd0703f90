package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "expensely/internal/errors"
	"expensely/internal/services"
)

// ExpenseTypeHandler handles expense category requests.
type ExpenseTypeHandler struct {
	typeService services.ExpenseTypeServicer
}

// NewExpenseTypeHandler creates a new ExpenseTypeHandler.
func NewExpenseTypeHandler(typeService services.ExpenseTypeServicer) *ExpenseTypeHandler {
	return &ExpenseTypeHandler{typeService: typeService}
}

// ExpenseTypeRequest represents the payload for creating or updating a category.
type ExpenseTypeRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Description string `json:"description" binding:"omitempty,max=500"`
}

// CreateExpenseType handles creating a new expense category.
// @Summary     Create an expense type
// @Tags        expense-types
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body ExpenseTypeRequest true "Expense type details"
// @Success     201 {object} models.ExpenseType "Expense type created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     409 {object} ErrorResponse "Expense type already exists"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expense-types [post]
func (h *ExpenseTypeHandler) CreateExpenseType(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ExpenseTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	expenseType, err := h.typeService.CreateExpenseType(userID, req.Name, req.Description)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"expense_type": expenseType})
}

// GetExpenseTypes handles listing the user's expense categories.
// @Summary     Get expense types
// @Tags        expense-types
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} models.ExpenseType "Expense types"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expense-types [get]
func (h *ExpenseTypeHandler) GetExpenseTypes(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	types, err := h.typeService.GetUserExpenseTypes(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"expense_types": types})
}

// UpdateExpenseType handles renaming an expense category.
// @Summary     Update expense type
// @Tags        expense-types
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string             true "Expense type ID"
// @Param       request body ExpenseTypeRequest true "Updated expense type details"
// @Success     200 {object} models.ExpenseType "Updated expense type"
// @Failure     400 {object} ErrorResponse "Invalid input or expense type ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Expense type not found"
// @Failure     409 {object} ErrorResponse "Expense type already exists"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expense-types/{id} [put]
func (h *ExpenseTypeHandler) UpdateExpenseType(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	typeID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ExpenseTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	expenseType, err := h.typeService.UpdateExpenseType(userID, typeID, req.Name, req.Description)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"expense_type": expenseType})
}

// DeleteExpenseType handles deleting an expense category.
// @Summary     Delete expense type
// @Tags        expense-types
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Expense type ID"
// @Success     200 {object} MessageResponse "Expense type deleted"
// @Failure     400 {object} ErrorResponse "Invalid expense type ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Expense type not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expense-types/{id} [delete]
func (h *ExpenseTypeHandler) DeleteExpenseType(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	typeID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.typeService.DeleteExpenseType(userID, typeID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Expense type deleted successfully"})
}
