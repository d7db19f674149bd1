package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "monetra/internal/errors"
	"monetra/internal/services"
)

// SettingsHandler handles user-settings requests.
type SettingsHandler struct {
	settingsService services.SettingsServicer
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(settingsService services.SettingsServicer) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// UpdateSettingsRequest represents the request payload for updating settings.
// Omitted fields are left unchanged.
type UpdateSettingsRequest struct {
	HomeCurrency          *string  `json:"home_currency" binding:"omitempty,iso4217"`
	Theme                 *string  `json:"theme" binding:"omitempty,oneof=light dark"`
	BudgetEnabled         *bool    `json:"budget_enabled"`
	MonthlyBudgetAmount   *float64 `json:"monthly_budget_amount" binding:"omitempty,gte=0"`
	BudgetCurrency        *string  `json:"budget_currency" binding:"omitempty,iso4217"`
	EmergencyFundGoal     *float64 `json:"emergency_fund_goal" binding:"omitempty,gte=0"`
	EmergencyFundCurrency *string  `json:"emergency_fund_currency" binding:"omitempty,iso4217"`
}

// GetSettings handles retrieving the user's settings.
// @Summary     Get settings
// @Description Get the authenticated user's settings, creating defaults on first access
// @Tags        settings
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} models.UserSettings "Settings"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /settings [get]
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	settings, err := h.settingsService.GetSettings(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

// UpdateSettings handles updating the user's settings.
// @Summary     Update settings
// @Description Update the authenticated user's settings; omitted fields are unchanged
// @Tags        settings
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body UpdateSettingsRequest true "Fields to update"
// @Success     200 {object} models.UserSettings "Updated settings"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /settings [put]
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	settings, err := h.settingsService.UpdateSettings(userID, services.SettingsUpdate{
		HomeCurrency:          req.HomeCurrency,
		Theme:                 req.Theme,
		BudgetEnabled:         req.BudgetEnabled,
		MonthlyBudgetAmount:   req.MonthlyBudgetAmount,
		BudgetCurrency:        req.BudgetCurrency,
		EmergencyFundGoal:     req.EmergencyFundGoal,
		EmergencyFundCurrency: req.EmergencyFundCurrency,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"settings": settings})
}
