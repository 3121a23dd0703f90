package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	apperrors "expensely/internal/errors"
	"expensely/internal/llm"
	"expensely/internal/models"
)

// parseService converts free text into structured expense, budget or
// template records by delegating to an external language model. The model is
// a black box: this service only owns the prompts and the decoding of the
// JSON it returns.
type parseService struct {
	llm llm.Completer
}

// NewParseService creates a new ParseServicer backed by the given completer.
func NewParseService(completer llm.Completer) ParseServicer {
	return &parseService{llm: completer}
}

const expensePrompt = `You convert free text describing a personal expense into JSON.
Respond with a single JSON object: {"type": string, "amount": integer cents,
"date": "YYYY-MM-DD", "description": string}. Use today's date if none is given.
Pick a short lowercase category word for "type".`

const budgetPrompt = `You convert free text describing a spending budget into JSON.
Respond with a single JSON object: {"type": "weekly"|"monthly"|"multi-month"|"yearly",
"total_budget": integer cents, and the matching period fields:
weekly: "start_date"/"end_date" as "YYYY-MM-DD";
monthly: "start_month" (1-12) and "start_year";
multi-month: "start_month", "start_year", "end_month", "end_year" where the end
month is the first month NOT included;
yearly: "year"}.`

const templatePrompt = `You convert free text describing a reusable expense template into JSON.
Respond with a single JSON object: {"name": string, "type": string,
"amount": integer cents, "description": string}.`

// Parse extracts a structured record of the requested kind from text.
// Upstream failures surface as PARSE_UNAVAILABLE; replies that cannot be
// decoded into the expected shape surface as PARSE_FAILED.
func (s *parseService) Parse(ctx context.Context, mode ParseMode, text string) (*ParseResult, error) {
	var prompt string
	switch mode {
	case ParseModeExpense:
		prompt = expensePrompt
	case ParseModeBudget:
		prompt = budgetPrompt
	case ParseModeTemplate:
		prompt = templatePrompt
	default:
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "mode must be expense, budget or template")
	}

	reply, err := s.llm.Complete(ctx, prompt, text)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrParseUnavailable, err)
	}

	result := &ParseResult{Mode: mode}
	switch mode {
	case ParseModeExpense:
		result.Expense, err = decodeExpense(reply)
	case ParseModeBudget:
		result.Budget, err = decodeBudget(reply)
	case ParseModeTemplate:
		result.Template, err = decodeTemplate(reply)
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrParseFailed, err)
	}
	return result, nil
}

func decodeExpense(reply string) (*ParsedExpense, error) {
	var wire struct {
		Type        string `json:"type"`
		Amount      int64  `json:"amount"`
		Date        string `json:"date"`
		Description string `json:"description"`
	}
	if err := json.Unmarshal([]byte(reply), &wire); err != nil {
		return nil, fmt.Errorf("decode expense reply: %w", err)
	}
	if wire.Type == "" || wire.Amount < 0 {
		return nil, fmt.Errorf("expense reply missing type or amount")
	}
	date, err := time.Parse("2006-01-02", wire.Date)
	if err != nil {
		return nil, fmt.Errorf("expense reply has invalid date %q", wire.Date)
	}
	return &ParsedExpense{
		Type:        wire.Type,
		Amount:      wire.Amount,
		Date:        date,
		Description: wire.Description,
	}, nil
}

func decodeBudget(reply string) (*ParsedBudget, error) {
	var wire struct {
		Type        string  `json:"type"`
		StartDate   *string `json:"start_date"`
		EndDate     *string `json:"end_date"`
		StartMonth  *int    `json:"start_month"`
		StartYear   *int    `json:"start_year"`
		EndMonth    *int    `json:"end_month"`
		EndYear     *int    `json:"end_year"`
		Year        *int    `json:"year"`
		TotalBudget int64   `json:"total_budget"`
	}
	if err := json.Unmarshal([]byte(reply), &wire); err != nil {
		return nil, fmt.Errorf("decode budget reply: %w", err)
	}

	budgetType := models.BudgetType(wire.Type)
	switch budgetType {
	case models.BudgetTypeWeekly, models.BudgetTypeMonthly, models.BudgetTypeMultiMonth, models.BudgetTypeYearly:
	default:
		return nil, fmt.Errorf("budget reply has unknown type %q", wire.Type)
	}

	parsed := &ParsedBudget{
		Type:        budgetType,
		StartMonth:  wire.StartMonth,
		StartYear:   wire.StartYear,
		EndMonth:    wire.EndMonth,
		EndYear:     wire.EndYear,
		Year:        wire.Year,
		TotalBudget: wire.TotalBudget,
	}

	var err error
	if parsed.StartDate, err = parseOptionalDate(wire.StartDate); err != nil {
		return nil, err
	}
	if parsed.EndDate, err = parseOptionalDate(wire.EndDate); err != nil {
		return nil, err
	}
	return parsed, nil
}

func parseOptionalDate(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, fmt.Errorf("budget reply has invalid date %q", *s)
	}
	return &t, nil
}

func decodeTemplate(reply string) (*ParsedTemplate, error) {
	var parsed ParsedTemplate
	if err := json.Unmarshal([]byte(reply), &parsed); err != nil {
		return nil, fmt.Errorf("decode template reply: %w", err)
	}
	if parsed.Name == "" || parsed.Type == "" {
		return nil, fmt.Errorf("template reply missing name or type")
	}
	return &parsed, nil
}
