package models

// ProjectStatus represents the lifecycle state of a project
type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusOnHold    ProjectStatus = "on_hold"
)

// Project groups income transactions under a client project with its own
// billing currency and freeform notes.
type Project struct {
	Base
	UserID   string        `gorm:"type:uuid;not null;index" json:"user_id"`
	Name     string        `gorm:"not null" json:"name"`
	Currency string        `gorm:"not null;default:'USD'" json:"currency"`
	Status   ProjectStatus `gorm:"not null;default:'active'" json:"status"`
	Notes    string        `json:"notes,omitempty"`

	// Relationships
	Transactions []Transaction `gorm:"foreignKey:ProjectID" json:"transactions,omitempty"`
}
