package models

import "time"

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome          TransactionType = "income"
	TransactionTypeExpense         TransactionType = "expense"
	TransactionTypeSavingsTransfer TransactionType = "savings_transfer"
)

// TransferDirection represents the direction of a savings transfer
type TransferDirection string

const (
	TransferToSavings   TransferDirection = "to_savings"
	TransferFromSavings TransferDirection = "from_savings"
)

// Transaction represents a single money movement. The type is immutable
// after creation; per-type references are mutually exclusive:
// CategoryID is set only on expenses, SourceID and ProjectID only on
// income, TransferDirection only on savings transfers.
type Transaction struct {
	Base
	UserID   string          `gorm:"type:uuid;not null;index" json:"user_id"`
	Type     TransactionType `gorm:"not null" json:"type"`
	Amount   float64         `gorm:"not null" json:"amount"`
	Currency string          `gorm:"not null;default:'USD'" json:"currency"`
	Date     time.Time       `gorm:"not null;index" json:"date"`
	Notes    string          `json:"notes,omitempty"`

	// Expense only
	CategoryID *string `gorm:"type:uuid;index" json:"category_id,omitempty"`

	// Income only
	SourceID  *string `gorm:"type:uuid" json:"source_id,omitempty"`
	ProjectID *string `gorm:"type:uuid" json:"project_id,omitempty"`

	// Savings transfer only
	TransferDirection *TransferDirection `json:"transfer_direction,omitempty"`

	// Relationships
	Category *ExpenseCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Source   *IncomeSource    `gorm:"foreignKey:SourceID" json:"source,omitempty"`
	Project  *Project         `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
}
