package services

import (
	"time"

	"gorm.io/gorm"

	apperrors "monetra/internal/errors"
	"monetra/internal/finance"
	"monetra/internal/models"
)

// analyticsService assembles snapshots from storage and runs the
// finance engine over them.
type analyticsService struct {
	db       *gorm.DB
	settings SettingsServicer
}

// NewAnalyticsService creates a new AnalyticsServicer.
func NewAnalyticsService(db *gorm.DB, settings SettingsServicer) AnalyticsServicer {
	return &analyticsService{db: db, settings: settings}
}

// snapshot loads all of the user's transactions and categories into an
// engine snapshot. The engine works on the full history; months and
// filters are applied inside it.
func (s *analyticsService) snapshot(userID string) (*finance.Snapshot, *models.UserSettings, error) {
	settings, err := s.settings.GetSettings(userID)
	if err != nil {
		return nil, nil, err
	}

	var txns []models.Transaction
	if err := s.db.Where("user_id = ?", userID).Find(&txns).Error; err != nil {
		return nil, nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	var categories []models.ExpenseCategory
	if err := s.db.Where("user_id = ?", userID).Find(&categories).Error; err != nil {
		return nil, nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	snap := &finance.Snapshot{
		Transactions: make([]finance.Transaction, 0, len(txns)),
		Categories:   make([]finance.Category, 0, len(categories)),
		HomeCurrency: settings.HomeCurrency,
	}
	for _, tx := range txns {
		ftx := finance.Transaction{
			ID:       tx.ID,
			Type:     finance.TransactionType(tx.Type),
			Amount:   tx.Amount,
			Currency: tx.Currency,
			Date:     tx.Date,
		}
		if tx.CategoryID != nil {
			ftx.CategoryID = *tx.CategoryID
		}
		if tx.SourceID != nil {
			ftx.SourceID = *tx.SourceID
		}
		if tx.TransferDirection != nil {
			ftx.TransferDirection = finance.TransferDirection(*tx.TransferDirection)
		}
		snap.Transactions = append(snap.Transactions, ftx)
	}
	for _, c := range categories {
		snap.Categories = append(snap.Categories, finance.Category{
			ID:       c.ID,
			Name:     c.Name,
			Currency: c.Currency,
		})
	}
	return snap, settings, nil
}

// MonthOverview aggregates one month of a user's activity with the
// given filters applied. An unset type filter defaults to expenses, and
// the category breakdown always describes the month's expenses
// regardless of the requested type.
func (s *analyticsService) MonthOverview(userID string, month finance.Month, filter finance.Filter) (*MonthOverview, error) {
	snap, settings, err := s.snapshot(userID)
	if err != nil {
		return nil, err
	}

	if filter.Type == "" || string(filter.Type) == finance.FilterAll {
		filter.Type = finance.TypeExpense
	}

	idx := finance.CategoryIndex(snap.Categories)
	selected := finance.SelectMonth(snap.Transactions, month, filter, idx)
	totals := finance.Aggregate(selected, settings.HomeCurrency)

	breakdown := selected
	if filter.Type != finance.TypeExpense {
		expenseFilter := filter
		expenseFilter.Type = finance.TypeExpense
		breakdown = finance.SelectMonth(snap.Transactions, month, expenseFilter, idx)
	}

	return &MonthOverview{
		Year:             month.Year,
		Month:            int(month.Month),
		HomeCurrency:     settings.HomeCurrency,
		PerCurrency:      totals.PerCurrency,
		HomeTotal:        totals.HomeTotal,
		Income:           snap.MonthIncome(month),
		Expenses:         snap.MonthExpenses(month),
		Savings:          snap.MonthSavings(month),
		CategoryTotals:   finance.CategoryBreakdown(breakdown, snap.Categories),
		TransactionCount: len(selected),
	}, nil
}

// BudgetStatus runs the pacing engine for a month. Fails with
// ErrBudgetDisabled when the user has no active budget.
func (s *analyticsService) BudgetStatus(userID string, month finance.Month, now time.Time) (*finance.PacingResult, error) {
	snap, settings, err := s.snapshot(userID)
	if err != nil {
		return nil, err
	}
	if !settings.BudgetEnabled || settings.MonthlyBudgetAmount <= 0 {
		return nil, apperrors.ErrBudgetDisabled
	}

	budgetCurrency := settings.BudgetCurrency
	if budgetCurrency == "" {
		budgetCurrency = settings.HomeCurrency
	}

	// Spend for pacing is expressed in the budget currency, not the
	// home currency.
	idx := finance.CategoryIndex(snap.Categories)
	selected := finance.SelectMonth(snap.Transactions, month, finance.Filter{Type: finance.TypeExpense}, idx)
	var spent float64
	for _, tx := range selected {
		spent += finance.Convert(tx.Amount, tx.Currency, budgetCurrency)
	}

	result := finance.Pacing(settings.MonthlyBudgetAmount, budgetCurrency, spent, month, now)
	return &result, nil
}

// Dashboard builds the current-month summary with change percentages
// against the previous month and the five most recent transactions.
func (s *analyticsService) Dashboard(userID string, now time.Time) (*DashboardSummary, error) {
	snap, settings, err := s.snapshot(userID)
	if err != nil {
		return nil, err
	}

	current := finance.MonthOf(now)
	previous := current.Previous()

	income := snap.MonthIncome(current)
	expenses := snap.MonthExpenses(current)

	var recent []models.Transaction
	if err := s.db.Where("user_id = ?", userID).
		Preload("Category").
		Preload("Source").
		Preload("Project").
		Order("date DESC, created_at DESC").
		Limit(5).
		Find(&recent).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return &DashboardSummary{
		HomeCurrency:       settings.HomeCurrency,
		AvailableBalance:   snap.AvailableBalance(current),
		TotalSavings:       snap.TotalSavings(),
		MonthlyIncome:      income,
		MonthlyExpenses:    expenses,
		IncomeChange:       finance.PercentageChange(income, snap.MonthIncome(previous)),
		ExpenseChange:      finance.PercentageChange(expenses, snap.MonthExpenses(previous)),
		RecentTransactions: recent,
	}, nil
}

// MonthlySeries returns per-month chart data for the months ending at end.
func (s *analyticsService) MonthlySeries(userID string, end finance.Month, months int) ([]finance.SeriesPoint, error) {
	snap, _, err := s.snapshot(userID)
	if err != nil {
		return nil, err
	}
	return snap.MonthlySeries(end, months), nil
}
