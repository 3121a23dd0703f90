package models

// ExpenseType is a user-defined expense category. Expenses reference types
// by name rather than by foreign key, so deleting a type never orphans or
// reclassifies existing expenses.
type ExpenseType struct {
	Base
	UserID      string `gorm:"type:uuid;not null;uniqueIndex:idx_type_name" json:"user_id"`
	Name        string `gorm:"not null;uniqueIndex:idx_type_name" json:"name"`
	Description string `json:"description"`
}
