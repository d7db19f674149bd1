package finance

import "time"

// PacingStatus classifies spend-to-date against an evenly paced budget.
type PacingStatus string

const (
	// StatusExceeded: the budget is fully consumed or overrun.
	StatusExceeded PacingStatus = "exceeded"
	// StatusOnTrack: spend is at or slightly under the even-pace line.
	StatusOnTrack PacingStatus = "on_track"
	// StatusUnderBudget: spend is noticeably under the even-pace line.
	StatusUnderBudget PacingStatus = "under_budget"
	// StatusOverPace: spend is ahead of the even-pace line but the budget
	// is not yet exhausted.
	StatusOverPace PacingStatus = "over_pace"
)

// PacingSeverity refines StatusOverPace for display.
type PacingSeverity string

const (
	SeverityModerate PacingSeverity = "moderate"
	SeveritySevere   PacingSeverity = "severe"
)

// paceBand is the width, in budget-percentage points, of the corridor
// around the even-pace line that still counts as on track. The severe
// threshold marks spend running far ahead of pace.
const (
	paceBand        = 5.0
	severeThreshold = 20.0
)

// Recommendation is a forward-looking daily spending allowance: holding
// to RecommendedDaily for HorizonDays days returns spend to the
// even-pace line by the end of that horizon.
type Recommendation struct {
	HorizonDays      int     `json:"horizon_days"`
	RecommendedDaily float64 `json:"recommended_daily"`
}

// PacingResult is the full output of the budget pacing engine.
type PacingResult struct {
	BudgetAmount     float64        `json:"budget_amount"`
	BudgetCurrency   string         `json:"budget_currency"`
	Spent            float64        `json:"spent"`
	Remaining        float64        `json:"remaining"`
	BudgetPercentage float64        `json:"budget_percentage"`
	TotalDays        int            `json:"total_days"`
	CurrentDay       int            `json:"current_day"`
	DaysRemaining    int            `json:"days_remaining"`
	IdealDailySpend  float64        `json:"ideal_daily_spend"`
	ExpectedByToday  float64        `json:"expected_by_today"`
	IsOnTrack        bool           `json:"is_on_track"`
	Status           PacingStatus   `json:"status"`
	Severity         PacingSeverity `json:"severity,omitempty"`
	Recommendations  []Recommendation `json:"recommendations,omitempty"`
}

// Pacing evaluates spend against a monthly budget. spent must already be
// expressed in the budget currency. The caller is responsible for only
// invoking the engine when budgeting is enabled and budgetAmount > 0;
// the engine still guards every division so it cannot fail.
//
// Elapsed time is derived from the anchor month and today: the current
// month uses today's day-of-month, past months count as fully elapsed,
// and future months as not started.
func Pacing(budgetAmount float64, budgetCurrency string, spent float64, anchor Month, today time.Time) PacingResult {
	totalDays := anchor.Days()

	currentDay := totalDays
	switch {
	case anchor.Contains(today):
		currentDay = today.Day()
	case anchor.Start().After(today):
		currentDay = 0
	}

	r := PacingResult{
		BudgetAmount:   budgetAmount,
		BudgetCurrency: budgetCurrency,
		Spent:          spent,
		Remaining:      budgetAmount - spent,
		TotalDays:      totalDays,
		CurrentDay:     currentDay,
		DaysRemaining:  totalDays - currentDay,
	}

	if budgetAmount > 0 {
		r.BudgetPercentage = spent / budgetAmount * 100
	}
	if totalDays > 0 {
		r.IdealDailySpend = budgetAmount / float64(totalDays)
	}
	r.ExpectedByToday = r.IdealDailySpend * float64(currentDay)
	r.IsOnTrack = spent <= r.ExpectedByToday

	r.Status, r.Severity = classify(budgetAmount, spent, r.ExpectedByToday, r.BudgetPercentage)

	// Past months have no days remaining and therefore no
	// recommendations; a not-yet-started month gets the full-month
	// allowance.
	if r.DaysRemaining > 0 {
		r.Recommendations = recommend(r.IdealDailySpend, spent, currentDay, r.DaysRemaining)
	}
	return r
}

func classify(budget, spent, expected, pct float64) (PacingStatus, PacingSeverity) {
	if pct >= 100 {
		return StatusExceeded, ""
	}

	// Deviation from the even-pace line, in budget-percentage points.
	var points float64
	if budget > 0 {
		points = (spent - expected) / budget * 100
	}

	if spent <= expected {
		if -points > paceBand {
			return StatusUnderBudget, ""
		}
		return StatusOnTrack, ""
	}

	if points > severeThreshold {
		return StatusOverPace, SeveritySevere
	}
	return StatusOverPace, SeverityModerate
}

// recommend computes the horizon allowances. The 3- and 7-day windows
// are fixed by the product and only offered when they fit inside the
// remaining days; the remainder-of-month horizon is always offered and
// not duplicated when a fixed window coincides with it. Each allowance
// targets the even-pace cumulative spend at the end of its horizon, so
// it accounts for the current overshoot instead of naively dividing the
// remaining budget by the remaining days.
func recommend(idealDaily, spent float64, currentDay, daysRemaining int) []Recommendation {
	horizons := make([]int, 0, 3)
	for _, h := range []int{3, 7} {
		if h < daysRemaining {
			horizons = append(horizons, h)
		}
	}
	horizons = append(horizons, daysRemaining)

	recs := make([]Recommendation, 0, len(horizons))
	for _, h := range horizons {
		if h <= 0 {
			continue
		}
		allowance := idealDaily*float64(currentDay+h) - spent
		daily := allowance / float64(h)
		if daily < 0 {
			daily = 0
		}
		recs = append(recs, Recommendation{HorizonDays: h, RecommendedDaily: daily})
	}
	return recs
}
