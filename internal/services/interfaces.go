package services

import (
	"time"

	"monetra/internal/finance"
	"monetra/internal/models"
	"monetra/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, firstName, lastName string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	AttemptLogin(email, password string) (*models.User, error)
	StoreRefreshTokenHash(userID, tokenHash string) error
	GetRefreshTokenHash(userID string) (string, error)
}

// CategoryServicer defines the contract for expense-category business logic.
type CategoryServicer interface {
	CreateCategory(userID, name, currency string) (*models.ExpenseCategory, error)
	GetUserCategories(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.ExpenseCategory], error)
	GetCategoryByID(userID, categoryID string) (*models.ExpenseCategory, error)
	UpdateCategory(userID, categoryID, name, currency string) (*models.ExpenseCategory, error)
	DeleteCategory(userID, categoryID string) error
	CleanupOrphanTransactions(userID string) (int64, error)
}

// SourceServicer defines the contract for income-source business logic.
type SourceServicer interface {
	CreateSource(userID, name string) (*models.IncomeSource, error)
	GetUserSources(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.IncomeSource], error)
	GetSourceByID(userID, sourceID string) (*models.IncomeSource, error)
	UpdateSource(userID, sourceID, name string) (*models.IncomeSource, error)
	DeleteSource(userID, sourceID string) error
}

// ProjectServicer defines the contract for project business logic.
type ProjectServicer interface {
	CreateProject(userID, name, currency string, status models.ProjectStatus, notes string) (*models.Project, error)
	GetUserProjects(userID string, page pagination.PageRequest, status *models.ProjectStatus) (*pagination.PageResponse[models.Project], error)
	GetProjectByID(userID, projectID string) (*models.Project, error)
	UpdateProject(userID, projectID, name string, status *models.ProjectStatus, notes *string) (*models.Project, error)
	DeleteProject(userID, projectID string) error
}

// TransactionInput carries the per-type references for a new transaction.
type TransactionInput struct {
	Type              models.TransactionType
	Amount            float64
	Currency          string
	Date              time.Time
	Notes             string
	CategoryID        *string
	SourceID          *string
	ProjectID         *string
	TransferDirection *models.TransferDirection
}

// TransactionUpdate carries the editable fields of a transaction.
// The type itself is immutable; nil fields are left unchanged.
type TransactionUpdate struct {
	Amount     *float64
	Currency   *string
	Date       *time.Time
	Notes      *string
	CategoryID *string
	SourceID   *string
	ProjectID  *string
}

// TransactionFilter holds optional filter parameters for listing transactions.
type TransactionFilter struct {
	Year       int
	Month      time.Month
	Type       *models.TransactionType
	CategoryID *string
	SourceID   *string
	ProjectID  *string
	Currency   *string
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	CreateTransaction(userID string, in TransactionInput) (*models.Transaction, error)
	GetUserTransactions(userID string, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	GetTransactionByID(userID, transactionID string) (*models.Transaction, error)
	UpdateTransaction(userID, transactionID string, update TransactionUpdate) (*models.Transaction, error)
	DeleteTransaction(userID, transactionID string) error
}

// SettingsUpdate carries the editable user settings; nil fields are left unchanged.
type SettingsUpdate struct {
	HomeCurrency          *string
	Theme                 *string
	BudgetEnabled         *bool
	MonthlyBudgetAmount   *float64
	BudgetCurrency        *string
	EmergencyFundGoal     *float64
	EmergencyFundCurrency *string
}

// SettingsServicer defines the contract for user settings.
type SettingsServicer interface {
	GetSettings(userID string) (*models.UserSettings, error)
	UpdateSettings(userID string, update SettingsUpdate) (*models.UserSettings, error)
}

// MonthOverview is the aggregated view of one month.
type MonthOverview struct {
	Year             int                     `json:"year"`
	Month            int                     `json:"month"`
	HomeCurrency     string                  `json:"home_currency"`
	PerCurrency      map[string]float64      `json:"per_currency"`
	HomeTotal        float64                 `json:"home_total"`
	Income           float64                 `json:"income"`
	Expenses         float64                 `json:"expenses"`
	Savings          float64                 `json:"savings"`
	CategoryTotals   []finance.CategoryTotal `json:"category_totals"`
	TransactionCount int                     `json:"transaction_count"`
}

// DashboardSummary is the current-month overview shown on the dashboard.
type DashboardSummary struct {
	HomeCurrency       string               `json:"home_currency"`
	AvailableBalance   float64              `json:"available_balance"`
	TotalSavings       float64              `json:"total_savings"`
	MonthlyIncome      float64              `json:"monthly_income"`
	MonthlyExpenses    float64              `json:"monthly_expenses"`
	IncomeChange       float64              `json:"income_change"`
	ExpenseChange      float64              `json:"expense_change"`
	RecentTransactions []models.Transaction `json:"recent_transactions"`
}

// AnalyticsServicer drives the finance engine over a user's data.
type AnalyticsServicer interface {
	MonthOverview(userID string, month finance.Month, filter finance.Filter) (*MonthOverview, error)
	BudgetStatus(userID string, month finance.Month, now time.Time) (*finance.PacingResult, error)
	Dashboard(userID string, now time.Time) (*DashboardSummary, error)
	MonthlySeries(userID string, end finance.Month, months int) ([]finance.SeriesPoint, error)
}
