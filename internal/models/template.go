package models

// Template is a reusable expense preset. Applying a template creates a new
// expense with the template's type, amount and description.
type Template struct {
	Base
	UserID      string `gorm:"type:uuid;not null;index" json:"user_id"`
	Name        string `gorm:"not null" json:"name"`
	Type        string `gorm:"not null" json:"type"`
	Amount      int64  `gorm:"type:bigint;not null" json:"amount"`
	Description string `json:"description"`
}
