package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "monetra/internal/errors"
	"monetra/internal/finance"
	"monetra/internal/services"
)

// --- mock analytics service ---

type mockAnalyticsService struct {
	monthOverviewFn func(userID string, month finance.Month, filter finance.Filter) (*services.MonthOverview, error)
	budgetStatusFn  func(userID string, month finance.Month, now time.Time) (*finance.PacingResult, error)
	dashboardFn     func(userID string, now time.Time) (*services.DashboardSummary, error)
	monthlySeriesFn func(userID string, end finance.Month, months int) ([]finance.SeriesPoint, error)
}

func (m *mockAnalyticsService) MonthOverview(userID string, month finance.Month, filter finance.Filter) (*services.MonthOverview, error) {
	if m.monthOverviewFn != nil {
		return m.monthOverviewFn(userID, month, filter)
	}
	return &services.MonthOverview{}, nil
}

func (m *mockAnalyticsService) BudgetStatus(userID string, month finance.Month, now time.Time) (*finance.PacingResult, error) {
	if m.budgetStatusFn != nil {
		return m.budgetStatusFn(userID, month, now)
	}
	return &finance.PacingResult{}, nil
}

func (m *mockAnalyticsService) Dashboard(userID string, now time.Time) (*services.DashboardSummary, error) {
	if m.dashboardFn != nil {
		return m.dashboardFn(userID, now)
	}
	return &services.DashboardSummary{}, nil
}

func (m *mockAnalyticsService) MonthlySeries(userID string, end finance.Month, months int) ([]finance.SeriesPoint, error) {
	if m.monthlySeriesFn != nil {
		return m.monthlySeriesFn(userID, end, months)
	}
	return nil, nil
}

var _ services.AnalyticsServicer = (*mockAnalyticsService)(nil)

func setupSummaryRouter(handler *SummaryHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(testUserID))
	auth.GET("/summary/month", handler.GetMonthSummary)
	auth.GET("/summary/budget", handler.GetBudgetStatus)
	auth.GET("/summary/dashboard", handler.GetDashboard)
	auth.GET("/summary/series", handler.GetSeries)
	return r
}

func TestSummaryHandler_GetMonthSummary(t *testing.T) {
	t.Run("passes month and filters through", func(t *testing.T) {
		var gotMonth finance.Month
		var gotFilter finance.Filter
		svc := &mockAnalyticsService{
			monthOverviewFn: func(_ string, month finance.Month, filter finance.Filter) (*services.MonthOverview, error) {
				gotMonth = month
				gotFilter = filter
				return &services.MonthOverview{Year: month.Year, Month: int(month.Month), HomeTotal: 150}, nil
			},
		}
		handler := NewSummaryHandler(svc)
		r := setupSummaryRouter(handler)

		rec := doRequest(r, "GET", "/summary/month?year=2025&month=6&category=all&currency=EUR&type=expense", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotMonth.Year != 2025 || gotMonth.Month != time.June {
			t.Errorf("expected June 2025, got %+v", gotMonth)
		}
		if gotFilter.CategoryID != "all" || gotFilter.Currency != "EUR" || gotFilter.Type != finance.TypeExpense {
			t.Errorf("unexpected filter %+v", gotFilter)
		}
		result := parseJSON(t, rec)
		summary := result["summary"].(map[string]interface{})
		if summary["home_total"].(float64) != 150 {
			t.Errorf("expected home total 150, got %v", summary["home_total"])
		}
	})

	t.Run("defaults to current month", func(t *testing.T) {
		var gotMonth finance.Month
		svc := &mockAnalyticsService{
			monthOverviewFn: func(_ string, month finance.Month, _ finance.Filter) (*services.MonthOverview, error) {
				gotMonth = month
				return &services.MonthOverview{}, nil
			},
		}
		handler := NewSummaryHandler(svc)
		r := setupSummaryRouter(handler)

		rec := doRequest(r, "GET", "/summary/month", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		now := finance.MonthOf(time.Now())
		if !gotMonth.Equal(now) {
			t.Errorf("expected current month %+v, got %+v", now, gotMonth)
		}
	})

	t.Run("returns 400 on out-of-range month", func(t *testing.T) {
		handler := NewSummaryHandler(&mockAnalyticsService{})
		r := setupSummaryRouter(handler)

		rec := doRequest(r, "GET", "/summary/month?year=2025&month=13", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestSummaryHandler_GetBudgetStatus(t *testing.T) {
	t.Run("returns pacing result", func(t *testing.T) {
		svc := &mockAnalyticsService{
			budgetStatusFn: func(_ string, _ finance.Month, _ time.Time) (*finance.PacingResult, error) {
				return &finance.PacingResult{
					BudgetAmount:   1000,
					BudgetCurrency: "USD",
					Spent:          600,
					Status:         finance.StatusOverPace,
					Severity:       finance.SeverityModerate,
				}, nil
			},
		}
		handler := NewSummaryHandler(svc)
		r := setupSummaryRouter(handler)

		rec := doRequest(r, "GET", "/summary/budget?year=2025&month=6", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		budget := result["budget"].(map[string]interface{})
		if budget["status"] != "over_pace" {
			t.Errorf("expected over_pace, got %v", budget["status"])
		}
		if budget["severity"] != "moderate" {
			t.Errorf("expected moderate severity, got %v", budget["severity"])
		}
	})

	t.Run("returns 404 when budget disabled", func(t *testing.T) {
		svc := &mockAnalyticsService{
			budgetStatusFn: func(_ string, _ finance.Month, _ time.Time) (*finance.PacingResult, error) {
				return nil, apperrors.ErrBudgetDisabled
			},
		}
		handler := NewSummaryHandler(svc)
		r := setupSummaryRouter(handler)

		rec := doRequest(r, "GET", "/summary/budget", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "BUDGET_DISABLED")
	})
}

func TestSummaryHandler_GetDashboard(t *testing.T) {
	svc := &mockAnalyticsService{
		dashboardFn: func(_ string, _ time.Time) (*services.DashboardSummary, error) {
			return &services.DashboardSummary{
				HomeCurrency:     "USD",
				AvailableBalance: 3300,
				TotalSavings:     200,
			}, nil
		},
	}
	handler := NewSummaryHandler(svc)
	r := setupSummaryRouter(handler)

	rec := doRequest(r, "GET", "/summary/dashboard", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	dashboard := result["dashboard"].(map[string]interface{})
	if dashboard["available_balance"].(float64) != 3300 {
		t.Errorf("expected available balance 3300, got %v", dashboard["available_balance"])
	}
}

func TestSummaryHandler_GetSeries(t *testing.T) {
	t.Run("defaults to six months", func(t *testing.T) {
		var gotMonths int
		svc := &mockAnalyticsService{
			monthlySeriesFn: func(_ string, _ finance.Month, months int) ([]finance.SeriesPoint, error) {
				gotMonths = months
				return []finance.SeriesPoint{}, nil
			},
		}
		handler := NewSummaryHandler(svc)
		r := setupSummaryRouter(handler)

		rec := doRequest(r, "GET", "/summary/series", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if gotMonths != 6 {
			t.Errorf("expected default 6 months, got %d", gotMonths)
		}
	})

	t.Run("returns 400 on excessive range", func(t *testing.T) {
		handler := NewSummaryHandler(&mockAnalyticsService{})
		r := setupSummaryRouter(handler)

		rec := doRequest(r, "GET", "/summary/series?months=120", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}
