package services

import (
	"testing"
	"time"

	"expensely/internal/testutil"
)

func TestGetSummary(t *testing.T) {
	t.Run("groups_included_expenses_by_type", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSummaryService(db)
		user := testutil.CreateTestUser(t, db)

		testutil.CreateTestExpenseWithType(t, db, user.ID, "groceries", 100, date(2025, time.January, 5), true)
		testutil.CreateTestExpenseWithType(t, db, user.ID, "groceries", 200, date(2025, time.January, 10), true)
		testutil.CreateTestExpenseWithType(t, db, user.ID, "travel", 500, date(2025, time.January, 12), true)

		summary, err := svc.GetSummary(user.ID, date(2025, time.January, 1), date(2025, time.February, 1))
		testutil.AssertNoError(t, err)

		if summary.Total != 800 {
			t.Errorf("expected total 800, got %d", summary.Total)
		}
		if len(summary.Categories) != 2 {
			t.Fatalf("expected 2 categories, got %d", len(summary.Categories))
		}
		// Ordered by total descending.
		if summary.Categories[0].Type != "travel" || summary.Categories[0].Total != 500 {
			t.Errorf("expected travel 500 first, got %+v", summary.Categories[0])
		}
		if summary.Categories[1].Type != "groceries" || summary.Categories[1].Total != 300 || summary.Categories[1].Count != 2 {
			t.Errorf("expected groceries 300 over 2 expenses, got %+v", summary.Categories[1])
		}
	})

	t.Run("excluded_expenses_do_not_count", func(t *testing.T) {
		// The opposite of budget spend: summaries respect the included flag.
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSummaryService(db)
		user := testutil.CreateTestUser(t, db)

		testutil.CreateTestExpenseWithType(t, db, user.ID, "travel", 500, date(2025, time.January, 12), false)

		summary, err := svc.GetSummary(user.ID, date(2025, time.January, 1), date(2025, time.February, 1))
		testutil.AssertNoError(t, err)

		if summary.Total != 0 || len(summary.Categories) != 0 {
			t.Errorf("expected empty summary, got %+v", summary)
		}
	})

	t.Run("empty_range", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSummaryService(db)
		user := testutil.CreateTestUser(t, db)

		summary, err := svc.GetSummary(user.ID, date(2025, time.January, 1), date(2025, time.February, 1))
		testutil.AssertNoError(t, err)

		if summary.Total != 0 {
			t.Errorf("expected total 0, got %d", summary.Total)
		}
		if summary.Categories == nil {
			t.Error("expected empty slice, not nil")
		}
	})
}
