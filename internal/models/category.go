package models

// ExpenseCategory groups expense transactions. Names are unique per user
// case-insensitively. Currency, when set, is the category's default
// aggregation currency; transactions in other currencies are converted
// to it in breakdowns.
type ExpenseCategory struct {
	Base
	UserID   string `gorm:"type:uuid;not null;index" json:"user_id"`
	Name     string `gorm:"not null" json:"name"`
	Currency string `json:"currency,omitempty"`

	// Relationships
	Transactions []Transaction `gorm:"foreignKey:CategoryID" json:"transactions,omitempty"`
}
