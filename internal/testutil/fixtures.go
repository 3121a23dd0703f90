package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"expensely/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    fmt.Sprintf("user%d@test.com", nextID()),
		Password: string(hash),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestExpense records an included expense of the given amount (in cents)
// on the given date with type "groceries".
func CreateTestExpense(t *testing.T, db *gorm.DB, userID string, amount int64, date time.Time) *models.Expense {
	t.Helper()
	return CreateTestExpenseWithType(t, db, userID, "groceries", amount, date, true)
}

// CreateTestExpenseWithType records an expense with explicit type and
// included flag.
func CreateTestExpenseWithType(t *testing.T, db *gorm.DB, userID, expenseType string, amount int64, date time.Time, included bool) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		UserID:   userID,
		Type:     expenseType,
		Amount:   amount,
		Date:     date,
		Included: included,
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}

// CreateTestTemplate creates an expense template.
func CreateTestTemplate(t *testing.T, db *gorm.DB, userID string) *models.Template {
	t.Helper()

	template := &models.Template{
		UserID: userID,
		Name:   fmt.Sprintf("Test Template %d", nextID()),
		Type:   "subscriptions",
		Amount: 1499,
	}
	if err := db.Create(template).Error; err != nil {
		t.Fatalf("failed to create test template: %v", err)
	}
	return template
}

// CreateTestExpenseType creates a named expense category.
func CreateTestExpenseType(t *testing.T, db *gorm.DB, userID string) *models.ExpenseType {
	t.Helper()

	expenseType := &models.ExpenseType{
		UserID: userID,
		Name:   fmt.Sprintf("category-%d", nextID()),
	}
	if err := db.Create(expenseType).Error; err != nil {
		t.Fatalf("failed to create test expense type: %v", err)
	}
	return expenseType
}

// CreateTestMonthlyBudget creates a monthly budget for the given month.
func CreateTestMonthlyBudget(t *testing.T, db *gorm.DB, userID string, month, year int, totalBudget int64) *models.Budget {
	t.Helper()

	budget := &models.Budget{
		UserID:      userID,
		Type:        models.BudgetTypeMonthly,
		StartMonth:  &month,
		StartYear:   &year,
		EndMonth:    &month,
		EndYear:     &year,
		TotalBudget: totalBudget,
	}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}
	return budget
}
