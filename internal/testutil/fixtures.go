package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"monetra/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestSettings creates a settings row with the given home currency.
func CreateTestSettings(t *testing.T, db *gorm.DB, userID, homeCurrency string) *models.UserSettings {
	t.Helper()

	settings := &models.UserSettings{
		UserID:       userID,
		HomeCurrency: homeCurrency,
		Theme:        "dark",
	}
	if err := db.Create(settings).Error; err != nil {
		t.Fatalf("failed to create test settings: %v", err)
	}
	return settings
}

// CreateTestCategory creates an expense category with a unique name.
func CreateTestCategory(t *testing.T, db *gorm.DB, userID string) *models.ExpenseCategory {
	t.Helper()

	category := &models.ExpenseCategory{
		UserID: userID,
		Name:   fmt.Sprintf("Test Category %d", nextID()),
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestSource creates an income source with a unique name.
func CreateTestSource(t *testing.T, db *gorm.DB, userID string) *models.IncomeSource {
	t.Helper()

	source := &models.IncomeSource{
		UserID: userID,
		Name:   fmt.Sprintf("Test Source %d", nextID()),
	}
	if err := db.Create(source).Error; err != nil {
		t.Fatalf("failed to create test source: %v", err)
	}
	return source
}

// CreateTestProject creates an active project with a unique name.
func CreateTestProject(t *testing.T, db *gorm.DB, userID string) *models.Project {
	t.Helper()

	project := &models.Project{
		UserID:   userID,
		Name:     fmt.Sprintf("Test Project %d", nextID()),
		Currency: "USD",
		Status:   models.ProjectStatusActive,
	}
	if err := db.Create(project).Error; err != nil {
		t.Fatalf("failed to create test project: %v", err)
	}
	return project
}

// CreateTestExpense creates an expense transaction in the given category.
// categoryID may be empty for an uncategorized expense.
func CreateTestExpense(t *testing.T, db *gorm.DB, userID, categoryID string, amount float64, currency string, date time.Time) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		UserID:   userID,
		Type:     models.TransactionTypeExpense,
		Amount:   amount,
		Currency: currency,
		Date:     date,
	}
	if categoryID != "" {
		tx.CategoryID = &categoryID
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return tx
}

// CreateTestIncome creates an income transaction.
func CreateTestIncome(t *testing.T, db *gorm.DB, userID string, amount float64, currency string, date time.Time) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		UserID:   userID,
		Type:     models.TransactionTypeIncome,
		Amount:   amount,
		Currency: currency,
		Date:     date,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test income: %v", err)
	}
	return tx
}

// CreateTestSavingsTransfer creates a savings transfer in the given direction.
func CreateTestSavingsTransfer(t *testing.T, db *gorm.DB, userID string, direction models.TransferDirection, amount float64, currency string, date time.Time) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		UserID:            userID,
		Type:              models.TransactionTypeSavingsTransfer,
		Amount:            amount,
		Currency:          currency,
		Date:              date,
		TransferDirection: &direction,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test savings transfer: %v", err)
	}
	return tx
}
