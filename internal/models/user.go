package models

import "time"

// User represents an account holder. Every expense, template, expense type
// and budget belongs to exactly one user.
type User struct {
	Base
	Email            string     `gorm:"uniqueIndex;not null" json:"email"`
	Password         string     `gorm:"not null" json:"-"`
	Name             string     `json:"name"`
	RefreshTokenHash string     `gorm:"size:64" json:"-"`
	LastLoginAt      *time.Time `json:"last_login_at,omitempty"`

	Expenses  []Expense        `gorm:"foreignKey:UserID" json:"expenses,omitempty"`
	Budgets   []Budget         `gorm:"foreignKey:UserID" json:"budgets,omitempty"`
	Templates []Template       `gorm:"foreignKey:UserID" json:"templates,omitempty"`
	Types     []ExpenseType    `gorm:"foreignKey:UserID" json:"types,omitempty"`
}
