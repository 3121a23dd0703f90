package services

import (
	"testing"
	"time"

	"expensely/internal/pagination"
	"expensely/internal/testutil"
)

func strp(s string) *string { return &s }

func int64p(v int64) *int64 { return &v }

func boolp(v bool) *bool { return &v }

func TestCreateExpense(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)
		user := testutil.CreateTestUser(t, db)

		expense, err := svc.CreateExpense(user.ID, "groceries", 2350, date(2025, time.March, 3), "weekly shop", true)
		testutil.AssertNoError(t, err)

		if expense.ID == "" {
			t.Fatal("expected non-empty expense ID")
		}
		if expense.Amount != 2350 {
			t.Errorf("expected amount 2350, got %d", expense.Amount)
		}
		if !expense.Included {
			t.Error("expected expense to be included")
		}
	})

	t.Run("excluded_flag_survives_persistence", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)
		user := testutil.CreateTestUser(t, db)

		created, err := svc.CreateExpense(user.ID, "travel", 500, date(2025, time.March, 3), "", false)
		testutil.AssertNoError(t, err)

		// Re-read from the store; the false must not get flipped to true
		// by a column default on insert.
		reloaded, err := svc.GetExpenseByID(user.ID, created.ID)
		testutil.AssertNoError(t, err)
		if reloaded.Included {
			t.Error("expected excluded expense to stay excluded after reload")
		}
	})

	t.Run("negative_amount", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateExpense(user.ID, "groceries", -1, date(2025, time.March, 3), "", true)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestGetUserExpenses(t *testing.T) {
	t.Run("filters_by_date_range_and_type", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)
		user := testutil.CreateTestUser(t, db)

		testutil.CreateTestExpenseWithType(t, db, user.ID, "groceries", 100, date(2025, time.January, 5), true)
		testutil.CreateTestExpenseWithType(t, db, user.ID, "travel", 200, date(2025, time.January, 10), true)
		testutil.CreateTestExpenseWithType(t, db, user.ID, "groceries", 300, date(2025, time.February, 10), true)

		from := date(2025, time.January, 1)
		to := date(2025, time.February, 1)
		groceries := "groceries"

		page := pagination.PageRequest{Page: 1, PageSize: 20}
		result, err := svc.GetUserExpenses(user.ID, page, ExpenseFilter{
			FromDate: &from,
			ToDate:   &to,
			Type:     &groceries,
		})
		testutil.AssertNoError(t, err)

		if result.TotalItems != 1 {
			t.Fatalf("expected 1 expense, got %d", result.TotalItems)
		}
		if result.Data[0].Amount != 100 {
			t.Errorf("expected the January groceries expense, got amount %d", result.Data[0].Amount)
		}
	})

	t.Run("to_date_is_exclusive", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)
		user := testutil.CreateTestUser(t, db)

		testutil.CreateTestExpense(t, db, user.ID, 100, date(2025, time.January, 31))
		testutil.CreateTestExpense(t, db, user.ID, 200, date(2025, time.February, 1))

		from := date(2025, time.January, 1)
		to := date(2025, time.February, 1)
		page := pagination.PageRequest{Page: 1, PageSize: 20}
		result, err := svc.GetUserExpenses(user.ID, page, ExpenseFilter{FromDate: &from, ToDate: &to})
		testutil.AssertNoError(t, err)

		if result.TotalItems != 1 {
			t.Errorf("expected only the January expense, got %d", result.TotalItems)
		}
	})

	t.Run("does_not_leak_other_users", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)

		testutil.CreateTestExpense(t, db, user1.ID, 100, date(2025, time.January, 5))
		testutil.CreateTestExpense(t, db, user2.ID, 200, date(2025, time.January, 5))

		page := pagination.PageRequest{Page: 1, PageSize: 20}
		result, err := svc.GetUserExpenses(user1.ID, page, ExpenseFilter{})
		testutil.AssertNoError(t, err)

		if result.TotalItems != 1 {
			t.Errorf("expected 1 expense, got %d", result.TotalItems)
		}
	})
}

func TestUpdateExpense(t *testing.T) {
	t.Run("updates_supplied_fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)
		user := testutil.CreateTestUser(t, db)
		expense := testutil.CreateTestExpense(t, db, user.ID, 100, date(2025, time.January, 5))

		updated, err := svc.UpdateExpense(user.ID, expense.ID, strp("dining"), int64p(4500), nil, nil, boolp(false))
		testutil.AssertNoError(t, err)

		if updated.Type != "dining" || updated.Amount != 4500 || updated.Included {
			t.Errorf("unexpected updated expense: %+v", updated)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.UpdateExpense(user.ID, "2f0c8f7e-0000-7000-8000-000000000000", strp("x"), nil, nil, nil, nil)
		testutil.AssertAppError(t, err, "EXPENSE_NOT_FOUND")
	})
}

func TestDeleteExpense(t *testing.T) {
	t.Run("cross_user_delete_is_rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)
		owner := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)
		expense := testutil.CreateTestExpense(t, db, owner.ID, 100, date(2025, time.January, 5))

		err := svc.DeleteExpense(other.ID, expense.ID)
		testutil.AssertAppError(t, err, "EXPENSE_NOT_FOUND")

		_, err = svc.GetExpenseByID(owner.ID, expense.ID)
		testutil.AssertNoError(t, err)
	})
}
