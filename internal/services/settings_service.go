package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "monetra/internal/errors"
	"monetra/internal/models"
)

// settingsService handles user settings.
type settingsService struct {
	db *gorm.DB
}

// NewSettingsService creates a new SettingsServicer.
func NewSettingsService(db *gorm.DB) SettingsServicer {
	return &settingsService{db: db}
}

// GetSettings returns the user's settings row, creating it with
// defaults if it does not exist yet.
func (s *settingsService) GetSettings(userID string) (*models.UserSettings, error) {
	var settings models.UserSettings
	err := s.db.Where("user_id = ?", userID).First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = models.UserSettings{
			UserID:       userID,
			HomeCurrency: "USD",
			Theme:        "dark",
		}
		if err := s.db.Create(&settings).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return &settings, nil
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &settings, nil
}

// UpdateSettings applies the non-nil fields of update to the user's
// settings. Enabling the budget without a currency falls back to the
// home currency.
func (s *settingsService) UpdateSettings(userID string, update SettingsUpdate) (*models.UserSettings, error) {
	settings, err := s.GetSettings(userID)
	if err != nil {
		return nil, err
	}

	if update.HomeCurrency != nil {
		settings.HomeCurrency = *update.HomeCurrency
	}
	if update.Theme != nil {
		settings.Theme = *update.Theme
	}
	if update.BudgetEnabled != nil {
		settings.BudgetEnabled = *update.BudgetEnabled
	}
	if update.MonthlyBudgetAmount != nil {
		if *update.MonthlyBudgetAmount < 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "budget amount cannot be negative")
		}
		settings.MonthlyBudgetAmount = *update.MonthlyBudgetAmount
	}
	if update.BudgetCurrency != nil {
		settings.BudgetCurrency = *update.BudgetCurrency
	}
	if update.EmergencyFundGoal != nil {
		if *update.EmergencyFundGoal < 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "emergency fund goal cannot be negative")
		}
		settings.EmergencyFundGoal = *update.EmergencyFundGoal
	}
	if update.EmergencyFundCurrency != nil {
		settings.EmergencyFundCurrency = *update.EmergencyFundCurrency
	}

	if settings.BudgetEnabled && settings.BudgetCurrency == "" {
		settings.BudgetCurrency = settings.HomeCurrency
	}

	if err := s.db.Save(settings).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return settings, nil
}
