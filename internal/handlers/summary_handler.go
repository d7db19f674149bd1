package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "monetra/internal/errors"
	"monetra/internal/finance"
	"monetra/internal/services"
)

// SummaryHandler handles the aggregation and budget-pacing endpoints.
type SummaryHandler struct {
	analyticsService services.AnalyticsServicer
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(analyticsService services.AnalyticsServicer) *SummaryHandler {
	return &SummaryHandler{analyticsService: analyticsService}
}

// MonthQuery selects the month to aggregate. Missing values default to
// the current month.
type MonthQuery struct {
	Year  int `form:"year" binding:"omitempty,min=1970,max=2200"`
	Month int `form:"month" binding:"omitempty,min=1,max=12"`
}

func (q MonthQuery) resolve(now time.Time) finance.Month {
	if q.Year == 0 {
		return finance.MonthOf(now)
	}
	m := q.Month
	if m == 0 {
		m = 1
	}
	return finance.Month{Year: q.Year, Month: time.Month(m)}
}

// MonthSummaryQuery adds the optional aggregation filters.
type MonthSummaryQuery struct {
	MonthQuery
	Category string `form:"category"`
	Currency string `form:"currency"`
	Type     string `form:"type" binding:"omitempty,transaction_type"`
}

// GetMonthSummary handles the monthly aggregation endpoint.
// @Summary     Get month summary
// @Description Aggregate one month's expenses with optional category, currency, and type filters
// @Tags        summary
// @Produce     json
// @Security    BearerAuth
// @Param       year     query int    false "Year (defaults to current)"
// @Param       month    query int    false "Month 1-12 (defaults to current)"
// @Param       category query string false "Category ID or 'all'"
// @Param       currency query string false "Currency code or 'all'"
// @Param       type     query string false "Transaction type or 'all'"
// @Success     200 {object} services.MonthOverview "Month overview"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /summary/month [get]
func (h *SummaryHandler) GetMonthSummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var query MonthSummaryQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	filter := finance.Filter{
		CategoryID: query.Category,
		Currency:   query.Currency,
		Type:       finance.TransactionType(query.Type),
	}

	overview, err := h.analyticsService.MonthOverview(userID, query.resolve(time.Now()), filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": overview})
}

// GetBudgetStatus handles the budget pacing endpoint.
// @Summary     Get budget status
// @Description Evaluate the month's spend against the monthly budget with pacing and recommendations
// @Tags        summary
// @Produce     json
// @Security    BearerAuth
// @Param       year  query int false "Year (defaults to current)"
// @Param       month query int false "Month 1-12 (defaults to current)"
// @Success     200 {object} finance.PacingResult "Budget pacing result"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Budget not enabled"
// @Router      /summary/budget [get]
func (h *SummaryHandler) GetBudgetStatus(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var query MonthQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	now := time.Now()
	result, err := h.analyticsService.BudgetStatus(userID, query.resolve(now), now)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budget": result})
}

// GetDashboard handles the dashboard summary endpoint.
// @Summary     Get dashboard
// @Description Current-month totals, savings, change vs last month, and recent transactions
// @Tags        summary
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.DashboardSummary "Dashboard summary"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /summary/dashboard [get]
func (h *SummaryHandler) GetDashboard(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	dashboard, err := h.analyticsService.Dashboard(userID, time.Now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"dashboard": dashboard})
}

// SeriesQuery selects how many trailing months to chart.
type SeriesQuery struct {
	Months int `form:"months" binding:"omitempty,min=1,max=36"`
}

// GetSeries handles the monthly chart series endpoint.
// @Summary     Get monthly series
// @Description Per-month income, expenses, and savings flow for the trailing months
// @Tags        summary
// @Produce     json
// @Security    BearerAuth
// @Param       months query int false "Number of trailing months (default 6, max 36)"
// @Success     200 {array} finance.SeriesPoint "Series points, oldest first"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /summary/series [get]
func (h *SummaryHandler) GetSeries(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var query SeriesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	if query.Months == 0 {
		query.Months = 6
	}

	points, err := h.analyticsService.MonthlySeries(userID, finance.MonthOf(time.Now()), query.Months)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"series": points})
}
