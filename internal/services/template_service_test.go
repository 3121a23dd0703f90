package services

import (
	"testing"
	"time"

	"expensely/internal/testutil"
)

func TestCreateTemplate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTemplateService(db)
		user := testutil.CreateTestUser(t, db)

		template, err := svc.CreateTemplate(user.ID, "Morning coffee", "dining", 450, "flat white")
		testutil.AssertNoError(t, err)

		if template.ID == "" {
			t.Fatal("expected non-empty template ID")
		}
		if template.Amount != 450 {
			t.Errorf("expected amount 450, got %d", template.Amount)
		}
	})

	t.Run("missing_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTemplateService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateTemplate(user.ID, "", "dining", 450, "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestApplyTemplate(t *testing.T) {
	t.Run("creates_expense_from_template", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTemplateService(db)
		user := testutil.CreateTestUser(t, db)
		template := testutil.CreateTestTemplate(t, db, user.ID)

		when := date(2025, time.April, 2)
		expense, err := svc.ApplyTemplate(user.ID, template.ID, when)
		testutil.AssertNoError(t, err)

		if expense.Type != template.Type || expense.Amount != template.Amount {
			t.Errorf("expected expense to copy template fields, got %+v", expense)
		}
		if !expense.Date.Equal(when) {
			t.Errorf("expected expense date %v, got %v", when, expense.Date)
		}
		if !expense.Included {
			t.Error("expected applied expense to be included")
		}
	})

	t.Run("cross_user_template_is_rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTemplateService(db)
		owner := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)
		template := testutil.CreateTestTemplate(t, db, owner.ID)

		_, err := svc.ApplyTemplate(other.ID, template.ID, date(2025, time.April, 2))
		testutil.AssertAppError(t, err, "TEMPLATE_NOT_FOUND")
	})
}

func TestUpdateTemplate(t *testing.T) {
	t.Run("updates_supplied_fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTemplateService(db)
		user := testutil.CreateTestUser(t, db)
		template := testutil.CreateTestTemplate(t, db, user.ID)

		updated, err := svc.UpdateTemplate(user.ID, template.ID, strp("Lunch"), nil, int64p(1200), nil)
		testutil.AssertNoError(t, err)

		if updated.Name != "Lunch" || updated.Amount != 1200 {
			t.Errorf("unexpected updated template: %+v", updated)
		}
		if updated.Type != template.Type {
			t.Errorf("expected type to be unchanged, got %s", updated.Type)
		}
	})
}

func TestDeleteTemplate(t *testing.T) {
	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTemplateService(db)
		user := testutil.CreateTestUser(t, db)

		err := svc.DeleteTemplate(user.ID, "2f0c8f7e-0000-7000-8000-000000000000")
		testutil.AssertAppError(t, err, "TEMPLATE_NOT_FOUND")
	})
}
