package models

// UserSettings is the per-user singleton holding display and budget
// preferences. A row is created with defaults on first access.
type UserSettings struct {
	Base
	UserID       string `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	HomeCurrency string `gorm:"not null;default:'USD'" json:"home_currency"`
	Theme        string `gorm:"default:'dark'" json:"theme"`

	BudgetEnabled       bool    `gorm:"default:false" json:"budget_enabled"`
	MonthlyBudgetAmount float64 `gorm:"default:0" json:"monthly_budget_amount"`
	BudgetCurrency      string  `json:"budget_currency,omitempty"`

	EmergencyFundGoal     float64 `gorm:"default:0" json:"emergency_fund_goal,omitempty"`
	EmergencyFundCurrency string  `json:"emergency_fund_currency,omitempty"`
}
