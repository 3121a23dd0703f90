package models

import "time"

// Expense is a single recorded expense. Amount is stored in cents.
// Included controls whether the expense counts toward summary totals;
// budget spend deliberately ignores it (see the budget service).
//
// Included carries no gorm default tag: with one, gorm drops the zero value
// from the INSERT and the column default silently flips false to true. The
// service layer always sets it explicitly.
type Expense struct {
	Base
	UserID      string    `gorm:"type:uuid;not null;index" json:"user_id"`
	Type        string    `gorm:"not null" json:"type"`
	Amount      int64     `gorm:"type:bigint;not null" json:"amount"`
	Date        time.Time `gorm:"not null;index" json:"date"`
	Description string    `json:"description"`
	Included    bool      `json:"included"`
}
