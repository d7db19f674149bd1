package services

import (
	"testing"

	"monetra/internal/testutil"
)

func boolPtr(b bool) *bool       { return &b }
func floatPtr(f float64) *float64 { return &f }

func TestGetSettings(t *testing.T) {
	t.Run("creates_defaults_on_first_access", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSettingsService(db)
		user := testutil.CreateTestUser(t, db)

		settings, err := svc.GetSettings(user.ID)
		testutil.AssertNoError(t, err)

		if settings.HomeCurrency != "USD" {
			t.Errorf("expected default home currency USD, got %s", settings.HomeCurrency)
		}
		if settings.BudgetEnabled {
			t.Error("budget should be disabled by default")
		}
	})

	t.Run("returns_existing_row", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSettingsService(db)
		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestSettings(t, db, user.ID, "EUR")

		settings, err := svc.GetSettings(user.ID)
		testutil.AssertNoError(t, err)
		if settings.HomeCurrency != "EUR" {
			t.Errorf("expected EUR, got %s", settings.HomeCurrency)
		}
	})
}

func TestUpdateSettings(t *testing.T) {
	t.Run("partial_update", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSettingsService(db)
		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestSettings(t, db, user.ID, "USD")

		settings, err := svc.UpdateSettings(user.ID, SettingsUpdate{
			HomeCurrency: strPtr("GBP"),
		})
		testutil.AssertNoError(t, err)

		if settings.HomeCurrency != "GBP" {
			t.Errorf("expected GBP, got %s", settings.HomeCurrency)
		}
		if settings.Theme != "dark" {
			t.Errorf("theme should be unchanged, got %s", settings.Theme)
		}
	})

	t.Run("enabling_budget_defaults_currency_to_home", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSettingsService(db)
		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestSettings(t, db, user.ID, "EUR")

		settings, err := svc.UpdateSettings(user.ID, SettingsUpdate{
			BudgetEnabled:       boolPtr(true),
			MonthlyBudgetAmount: floatPtr(1000),
		})
		testutil.AssertNoError(t, err)

		if settings.BudgetCurrency != "EUR" {
			t.Errorf("expected budget currency to default to EUR, got %s", settings.BudgetCurrency)
		}
	})

	t.Run("rejects_negative_budget", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSettingsService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.UpdateSettings(user.ID, SettingsUpdate{
			MonthlyBudgetAmount: floatPtr(-50),
		})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("rejects_negative_emergency_fund_goal", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSettingsService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.UpdateSettings(user.ID, SettingsUpdate{
			EmergencyFundGoal: floatPtr(-1),
		})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}
