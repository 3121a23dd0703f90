package services

import (
	"context"
	"time"

	"expensely/internal/models"
	"expensely/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, name string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	AttemptLogin(email, password string) (*models.User, error)
	StoreRefreshTokenHash(userID, tokenHash string) error
	GetRefreshTokenHash(userID string) (string, error)
}

// BudgetInput carries the type-specific period fields for SetBudget.
// Only the fields matching Type may be set.
type BudgetInput struct {
	Type        models.BudgetType
	StartDate   *time.Time
	EndDate     *time.Time
	StartMonth  *int
	StartYear   *int
	EndMonth    *int
	EndYear     *int
	Year        *int
	TotalBudget int64
}

// BudgetServicer defines the contract for the budget-period accounting model.
type BudgetServicer interface {
	SetBudget(userID string, input BudgetInput) (*models.Budget, error)
	ListBudgets(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Budget], error)
	DeleteBudget(userID, budgetID string) error
	SpentBetween(userID string, start, end time.Time) (int64, error)
}

// ExpenseFilter holds optional filter parameters for listing expenses.
type ExpenseFilter struct {
	FromDate *time.Time
	ToDate   *time.Time
	Type     *string
	Included *bool
}

// ExpenseServicer defines the contract for expense-related business logic.
type ExpenseServicer interface {
	CreateExpense(userID, expenseType string, amount int64, date time.Time, description string, included bool) (*models.Expense, error)
	GetUserExpenses(userID string, page pagination.PageRequest, filter ExpenseFilter) (*pagination.PageResponse[models.Expense], error)
	GetExpenseByID(userID, expenseID string) (*models.Expense, error)
	UpdateExpense(userID, expenseID string, expenseType *string, amount *int64, date *time.Time, description *string, included *bool) (*models.Expense, error)
	DeleteExpense(userID, expenseID string) error
}

// ExpenseTypeServicer defines the contract for expense category management.
type ExpenseTypeServicer interface {
	CreateExpenseType(userID, name, description string) (*models.ExpenseType, error)
	GetUserExpenseTypes(userID string) ([]models.ExpenseType, error)
	UpdateExpenseType(userID, typeID, name, description string) (*models.ExpenseType, error)
	DeleteExpenseType(userID, typeID string) error
}

// TemplateServicer defines the contract for expense template management.
type TemplateServicer interface {
	CreateTemplate(userID, name, expenseType string, amount int64, description string) (*models.Template, error)
	GetUserTemplates(userID string) ([]models.Template, error)
	UpdateTemplate(userID, templateID string, name, expenseType *string, amount *int64, description *string) (*models.Template, error)
	DeleteTemplate(userID, templateID string) error
	ApplyTemplate(userID, templateID string, date time.Time) (*models.Expense, error)
}

// CategoryTotal is one row of a summary: total spend for one expense type.
type CategoryTotal struct {
	Type  string `json:"type"`
	Total int64  `json:"total"`
	Count int64  `json:"count"`
}

// Summary aggregates included expenses over a date range.
type Summary struct {
	From       time.Time       `json:"from"`
	To         time.Time       `json:"to"`
	Total      int64           `json:"total"`
	Categories []CategoryTotal `json:"categories"`
}

// SummaryServicer defines the contract for aggregate expense summaries.
type SummaryServicer interface {
	GetSummary(userID string, from, to time.Time) (*Summary, error)
}

// ParseMode selects what kind of record the parser should extract.
type ParseMode string

const (
	ParseModeExpense  ParseMode = "expense"
	ParseModeBudget   ParseMode = "budget"
	ParseModeTemplate ParseMode = "template"
)

// ParsedExpense is the structured result of parsing expense text.
type ParsedExpense struct {
	Type        string    `json:"type"`
	Amount      int64     `json:"amount"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
}

// ParsedBudget is the structured result of parsing budget text.
type ParsedBudget struct {
	Type        models.BudgetType `json:"type"`
	StartDate   *time.Time        `json:"start_date,omitempty"`
	EndDate     *time.Time        `json:"end_date,omitempty"`
	StartMonth  *int              `json:"start_month,omitempty"`
	StartYear   *int              `json:"start_year,omitempty"`
	EndMonth    *int              `json:"end_month,omitempty"`
	EndYear     *int              `json:"end_year,omitempty"`
	Year        *int              `json:"year,omitempty"`
	TotalBudget int64             `json:"total_budget"`
}

// ParsedTemplate is the structured result of parsing template text.
type ParsedTemplate struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Amount      int64  `json:"amount"`
	Description string `json:"description"`
}

// ParseResult holds exactly one of the parsed record kinds, matching Mode.
type ParseResult struct {
	Mode     ParseMode       `json:"mode"`
	Expense  *ParsedExpense  `json:"expense,omitempty"`
	Budget   *ParsedBudget   `json:"budget,omitempty"`
	Template *ParsedTemplate `json:"template,omitempty"`
}

// ParseServicer defines the contract for natural-language parsing.
type ParseServicer interface {
	Parse(ctx context.Context, mode ParseMode, text string) (*ParseResult, error)
}
