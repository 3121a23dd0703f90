package models

import "time"

// BudgetType declares how a budget's accounting period is defined.
type BudgetType string

const (
	BudgetTypeWeekly     BudgetType = "weekly"
	BudgetTypeMonthly    BudgetType = "monthly"
	BudgetTypeMultiMonth BudgetType = "multi-month"
	BudgetTypeYearly     BudgetType = "yearly"
)

// Budget is a spending ceiling for a declared period. Only the period fields
// matching Type are set; the rest stay NULL. The composite unique index over
// the period columns is declared NULLS NOT DISTINCT in the Postgres schema so
// the natural key holds even with NULL columns; the budget service resolves
// period matches in code as well and treats the index purely as a backstop,
// since the sqlite test store keeps default distinct-NULL semantics.
//
// Monthly budgets mirror EndMonth/EndYear equal to the start fields in
// storage, but the accounting period is always derived from the start fields.
// Spent is derived from the expense table and recomputed on every read and
// write; it is never authoritative input.
type Budget struct {
	Base
	UserID string     `gorm:"type:uuid;not null;uniqueIndex:idx_budget_period" json:"user_id"`
	Type   BudgetType `gorm:"not null;uniqueIndex:idx_budget_period" json:"type"`

	// weekly
	StartDate *time.Time `gorm:"uniqueIndex:idx_budget_period" json:"start_date,omitempty"`
	EndDate   *time.Time `gorm:"uniqueIndex:idx_budget_period" json:"end_date,omitempty"`

	// monthly and multi-month
	StartMonth *int `gorm:"uniqueIndex:idx_budget_period" json:"start_month,omitempty"`
	StartYear  *int `gorm:"uniqueIndex:idx_budget_period" json:"start_year,omitempty"`
	EndMonth   *int `gorm:"uniqueIndex:idx_budget_period" json:"end_month,omitempty"`
	EndYear    *int `gorm:"uniqueIndex:idx_budget_period" json:"end_year,omitempty"`

	// yearly
	Year *int `gorm:"uniqueIndex:idx_budget_period" json:"year,omitempty"`

	TotalBudget int64 `gorm:"type:bigint;not null" json:"total_budget"`
	Spent       int64 `gorm:"type:bigint;not null;default:0" json:"spent"`
}
