package models

// IncomeSource groups income transactions (e.g. an employer or client).
type IncomeSource struct {
	Base
	UserID string `gorm:"type:uuid;not null;index" json:"user_id"`
	Name   string `gorm:"not null" json:"name"`

	// Relationships
	Transactions []Transaction `gorm:"foreignKey:SourceID" json:"transactions,omitempty"`
}
