// Package period resolves a budget's declared type and period fields into a
// concrete half-open date interval. It is pure date arithmetic with no storage
// dependency.
package period

import (
	"time"

	apperrors "expensely/internal/errors"
	"expensely/internal/models"
)

// Resolve maps a budget to the interval [start, end) its expenses are
// matched against. The end bound is always exclusive.
//
//   - weekly: the declared start and end dates, used as-is. No ordering
//     validation; a reversed or zero-length range simply matches nothing.
//   - monthly: first day of (StartYear, StartMonth) through the first day of
//     the following month. The mirrored end fields are ignored.
//   - multi-month: first day of (StartYear, StartMonth) through the first day
//     of (EndYear, EndMonth) — the end month itself is excluded.
//   - yearly: January 1 of Year through January 1 of Year+1.
//
// An unrecognized type yields ErrInvalidBudgetType; missing period fields for
// a recognized type yield ErrInvalidBudgetPeriod. No default period is ever
// assumed.
func Resolve(b *models.Budget) (time.Time, time.Time, error) {
	switch b.Type {
	case models.BudgetTypeWeekly:
		if b.StartDate == nil || b.EndDate == nil {
			return time.Time{}, time.Time{}, apperrors.ErrInvalidBudgetPeriod
		}
		return *b.StartDate, *b.EndDate, nil

	case models.BudgetTypeMonthly:
		if b.StartMonth == nil || b.StartYear == nil {
			return time.Time{}, time.Time{}, apperrors.ErrInvalidBudgetPeriod
		}
		start := monthStart(*b.StartYear, *b.StartMonth)
		return start, start.AddDate(0, 1, 0), nil

	case models.BudgetTypeMultiMonth:
		if b.StartMonth == nil || b.StartYear == nil || b.EndMonth == nil || b.EndYear == nil {
			return time.Time{}, time.Time{}, apperrors.ErrInvalidBudgetPeriod
		}
		return monthStart(*b.StartYear, *b.StartMonth), monthStart(*b.EndYear, *b.EndMonth), nil

	case models.BudgetTypeYearly:
		if b.Year == nil {
			return time.Time{}, time.Time{}, apperrors.ErrInvalidBudgetPeriod
		}
		return monthStart(*b.Year, 1), monthStart(*b.Year+1, 1), nil

	default:
		return time.Time{}, time.Time{}, apperrors.ErrInvalidBudgetType
	}
}

// monthStart returns UTC midnight on the first day of the given month.
func monthStart(year, month int) time.Time {
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
}
