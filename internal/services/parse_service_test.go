package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"expensely/internal/models"
	"expensely/internal/testutil"
)

// stubCompleter returns a canned reply or error.
type stubCompleter struct {
	reply string
	err   error
}

func (s *stubCompleter) Complete(_ context.Context, _, _ string) (string, error) {
	return s.reply, s.err
}

func TestParseExpense(t *testing.T) {
	t.Run("decodes_reply", func(t *testing.T) {
		svc := NewParseService(&stubCompleter{
			reply: `{"type":"dining","amount":2350,"date":"2025-03-03","description":"lunch with client"}`,
		})

		result, err := svc.Parse(context.Background(), ParseModeExpense, "lunch with a client, 23.50")
		testutil.AssertNoError(t, err)

		if result.Expense == nil {
			t.Fatal("expected parsed expense")
		}
		if result.Expense.Type != "dining" || result.Expense.Amount != 2350 {
			t.Errorf("unexpected parsed expense: %+v", result.Expense)
		}
		want := time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)
		if !result.Expense.Date.Equal(want) {
			t.Errorf("expected date %v, got %v", want, result.Expense.Date)
		}
	})

	t.Run("malformed_reply", func(t *testing.T) {
		svc := NewParseService(&stubCompleter{reply: `not json at all`})

		_, err := svc.Parse(context.Background(), ParseModeExpense, "lunch")
		testutil.AssertAppError(t, err, "PARSE_FAILED")
	})

	t.Run("invalid_date_in_reply", func(t *testing.T) {
		svc := NewParseService(&stubCompleter{
			reply: `{"type":"dining","amount":2350,"date":"yesterday","description":""}`,
		})

		_, err := svc.Parse(context.Background(), ParseModeExpense, "lunch")
		testutil.AssertAppError(t, err, "PARSE_FAILED")
	})
}

func TestParseBudget(t *testing.T) {
	t.Run("decodes_monthly_budget", func(t *testing.T) {
		svc := NewParseService(&stubCompleter{
			reply: `{"type":"monthly","start_month":1,"start_year":2025,"total_budget":500000}`,
		})

		result, err := svc.Parse(context.Background(), ParseModeBudget, "budget 5000 for january 2025")
		testutil.AssertNoError(t, err)

		b := result.Budget
		if b == nil {
			t.Fatal("expected parsed budget")
		}
		if b.Type != models.BudgetTypeMonthly || *b.StartMonth != 1 || *b.StartYear != 2025 || b.TotalBudget != 500000 {
			t.Errorf("unexpected parsed budget: %+v", b)
		}
	})

	t.Run("unknown_budget_type", func(t *testing.T) {
		svc := NewParseService(&stubCompleter{
			reply: `{"type":"quarterly","total_budget":500000}`,
		})

		_, err := svc.Parse(context.Background(), ParseModeBudget, "quarterly budget")
		testutil.AssertAppError(t, err, "PARSE_FAILED")
	})
}

func TestParseTemplate(t *testing.T) {
	t.Run("decodes_reply", func(t *testing.T) {
		svc := NewParseService(&stubCompleter{
			reply: `{"name":"Morning coffee","type":"dining","amount":450,"description":"flat white"}`,
		})

		result, err := svc.Parse(context.Background(), ParseModeTemplate, "coffee template 4.50")
		testutil.AssertNoError(t, err)

		if result.Template == nil || result.Template.Name != "Morning coffee" {
			t.Errorf("unexpected parsed template: %+v", result.Template)
		}
	})
}

func TestParseUpstreamFailure(t *testing.T) {
	svc := NewParseService(&stubCompleter{err: errors.New("connection refused")})

	_, err := svc.Parse(context.Background(), ParseModeExpense, "lunch")
	testutil.AssertAppError(t, err, "PARSE_UNAVAILABLE")
}

func TestParseUnknownMode(t *testing.T) {
	svc := NewParseService(&stubCompleter{})

	_, err := svc.Parse(context.Background(), ParseMode("income"), "salary")
	testutil.AssertAppError(t, err, "INVALID_INPUT")
}
