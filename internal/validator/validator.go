// Package validator registers custom validation tags with Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("budget_type", validateBudgetType)
		_ = v.RegisterValidation("parse_mode", validateParseMode)
	}
}

func validateBudgetType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "weekly", "monthly", "multi-month", "yearly":
		return true
	}
	return false
}

func validateParseMode(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "expense", "budget", "template":
		return true
	}
	return false
}
