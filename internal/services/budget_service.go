package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "expensely/internal/errors"
	"expensely/internal/models"
	"expensely/internal/pagination"
	"expensely/internal/period"
)

// budgetService implements the budget-period accounting model: budgets are
// keyed by their (user, type, period) tuple, and their spent figure is
// derived from the expense table on every read and write.
type budgetService struct {
	db *gorm.DB
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB) BudgetServicer {
	return &budgetService{db: db}
}

// SetBudget creates or merges a budget for the given period. The input type
// decides which period fields are required; supplying a recognized type with
// incomplete period fields is rejected with no side effect.
func (s *budgetService) SetBudget(userID string, input BudgetInput) (*models.Budget, error) {
	budget := &models.Budget{
		UserID:      userID,
		Type:        input.Type,
		TotalBudget: input.TotalBudget,
	}

	switch input.Type {
	case models.BudgetTypeWeekly:
		if input.StartDate == nil || input.EndDate == nil {
			return nil, apperrors.ErrInvalidBudgetPeriod
		}
		budget.StartDate = input.StartDate
		budget.EndDate = input.EndDate

	case models.BudgetTypeMonthly:
		if input.StartMonth == nil || input.StartYear == nil || !validMonth(*input.StartMonth) {
			return nil, apperrors.ErrInvalidBudgetPeriod
		}
		budget.StartMonth = input.StartMonth
		budget.StartYear = input.StartYear
		// The end fields are mirrored in storage; the resolver derives the
		// period from the start fields regardless.
		budget.EndMonth = input.StartMonth
		budget.EndYear = input.StartYear

	case models.BudgetTypeMultiMonth:
		if input.StartMonth == nil || input.StartYear == nil ||
			input.EndMonth == nil || input.EndYear == nil ||
			!validMonth(*input.StartMonth) || !validMonth(*input.EndMonth) {
			return nil, apperrors.ErrInvalidBudgetPeriod
		}
		budget.StartMonth = input.StartMonth
		budget.StartYear = input.StartYear
		budget.EndMonth = input.EndMonth
		budget.EndYear = input.EndYear

	case models.BudgetTypeYearly:
		if input.Year == nil {
			return nil, apperrors.ErrInvalidBudgetPeriod
		}
		budget.Year = input.Year

	default:
		return nil, apperrors.ErrInvalidBudgetType
	}

	return s.upsert(budget)
}

// upsert resolves the budget against its period natural key. The stored
// record for a period is canonical: setting a known period again returns it
// unchanged whatever ceiling the caller supplied, and only an unseen period
// creates a row. The period lookup runs here in code rather than leaning on
// the unique index, because the index columns hold NULLs for every unused
// period field and NULL rows compare distinct under default index semantics.
// The duplicate-key branch stays as a backstop for two writers racing the
// same period past the lookup. Either way the result gets its spent figure
// recomputed and persisted before it is returned.
//
// Upsert and recompute are two separate statements, not one transaction;
// concurrent setters for the same key race benignly and the store's last
// write wins.
func (s *budgetService) upsert(budget *models.Budget) (*models.Budget, error) {
	var existing models.Budget
	err := s.periodQuery(budget).First(&existing).Error

	switch {
	case err == nil:
		// Same period, possibly a different ceiling. The stored record and
		// its ceiling win.
		budget = &existing

	case errors.Is(err, gorm.ErrRecordNotFound):
		if createErr := s.db.Create(budget).Error; createErr != nil {
			if !errors.Is(createErr, gorm.ErrDuplicatedKey) {
				return nil, apperrors.Wrap(apperrors.ErrInternalServer, createErr)
			}
			// A concurrent writer created the period between lookup and
			// insert; re-read the canonical record.
			if err := s.periodQuery(budget).First(&existing).Error; err != nil {
				return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			budget = &existing
		}

	default:
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.refreshSpent(budget); err != nil {
		return nil, err
	}
	return budget, nil
}

// periodQuery builds the composite-key predicate for the budget's period.
// Unset period fields must be stored NULL, and must match as NULL — a NULL
// column never matches another budget's concrete value.
func (s *budgetService) periodQuery(b *models.Budget) *gorm.DB {
	q := s.db.Model(&models.Budget{}).Where("user_id = ? AND type = ?", b.UserID, b.Type)
	q = whereNullable(q, "start_date", b.StartDate)
	q = whereNullable(q, "end_date", b.EndDate)
	q = whereNullable(q, "start_month", b.StartMonth)
	q = whereNullable(q, "start_year", b.StartYear)
	q = whereNullable(q, "end_month", b.EndMonth)
	q = whereNullable(q, "end_year", b.EndYear)
	q = whereNullable(q, "year", b.Year)
	return q
}

func whereNullable[T any](q *gorm.DB, column string, value *T) *gorm.DB {
	if value == nil {
		return q.Where(column + " IS NULL")
	}
	return q.Where(column+" = ?", *value)
}

func validMonth(m int) bool {
	return m >= 1 && m <= 12
}

// ListBudgets returns the user's budgets with their spent figures recomputed
// and persisted. Every call re-reads the expense table for each returned
// budget; there is no caching.
func (s *budgetService) ListBudgets(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Budget], error) {
	page.Defaults()

	base := s.db.Model(&models.Budget{}).Where("user_id = ?", userID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var budgets []models.Budget
	if err := base.Order("created_at").Scopes(pagination.Paginate(page)).Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	for i := range budgets {
		if err := s.refreshSpent(&budgets[i]); err != nil {
			return nil, err
		}
	}

	result := pagination.NewPageResponse(budgets, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// DeleteBudget removes a budget owned by the user.
func (s *budgetService) DeleteBudget(userID, budgetID string) error {
	result := s.db.Where("id = ? AND user_id = ?", budgetID, userID).Delete(&models.Budget{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrBudgetNotFound
	}
	return nil
}

// SpentBetween sums expense amounts for the user within [start, end).
// The end bound is exclusive, and the sum counts every expense in range —
// the included flag that gates summaries does not apply to budget spend.
func (s *budgetService) SpentBetween(userID string, start, end time.Time) (int64, error) {
	var spent int64
	err := s.db.Model(&models.Expense{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Scan(&spent).Error
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return spent, nil
}

// refreshSpent recomputes the budget's spent figure from the expense table
// and persists it.
func (s *budgetService) refreshSpent(b *models.Budget) error {
	start, end, err := period.Resolve(b)
	if err != nil {
		return err
	}

	spent, err := s.SpentBetween(b.UserID, start, end)
	if err != nil {
		return err
	}

	if err := s.db.Model(b).Update("spent", spent).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	b.Spent = spent
	return nil
}
