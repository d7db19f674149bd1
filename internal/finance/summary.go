package finance

// Snapshot is a stable view of one user's data for the duration of a
// computation pass. Callers assemble it from storage and pass it in;
// recomputation over an identical snapshot yields identical results.
type Snapshot struct {
	Transactions []Transaction
	Categories   []Category
	HomeCurrency string
}

func (s Snapshot) index() map[string]Category {
	return CategoryIndex(s.Categories)
}

// MonthIncome returns the month's income converted to the home currency.
func (s Snapshot) MonthIncome(m Month) float64 {
	return s.monthTotal(m, TypeIncome)
}

// MonthExpenses returns the month's expenses converted to the home
// currency, with orphaned transactions excluded.
func (s Snapshot) MonthExpenses(m Month) float64 {
	return s.monthTotal(m, TypeExpense)
}

func (s Snapshot) monthTotal(m Month, t TransactionType) float64 {
	selected := SelectMonth(s.Transactions, m, Filter{Type: t}, s.index())
	return Aggregate(selected, s.HomeCurrency).HomeTotal
}

// MonthSavings returns the month's net savings flow in the home
// currency. Transfers into savings add, transfers out subtract.
func (s Snapshot) MonthSavings(m Month) float64 {
	var total float64
	for _, tx := range SelectMonth(s.Transactions, m, Filter{Type: TypeSavingsTransfer}, s.index()) {
		amount := Convert(tx.Amount, tx.Currency, s.HomeCurrency)
		if tx.TransferDirection == FromSavings {
			amount = -amount
		}
		total += amount
	}
	return total
}

// TotalSavings returns the all-time savings balance in the home currency.
// Transfers into savings add, transfers out subtract.
func (s Snapshot) TotalSavings() float64 {
	var total float64
	for _, tx := range s.Transactions {
		if tx.Type != TypeSavingsTransfer {
			continue
		}
		amount := Convert(tx.Amount, tx.Currency, s.HomeCurrency)
		if tx.TransferDirection == FromSavings {
			amount = -amount
		}
		total += amount
	}
	return total
}

// AvailableBalance is the month's income minus its expenses minus the
// all-time savings balance, in the home currency.
func (s Snapshot) AvailableBalance(m Month) float64 {
	return s.MonthIncome(m) - s.MonthExpenses(m) - s.TotalSavings()
}

// PercentageChange returns the percent change from previous to current.
// A zero baseline reports 100 for any growth and 0 otherwise.
func PercentageChange(current, previous float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return (current - previous) / previous * 100
}

// SeriesPoint is one month of chart data in the home currency.
type SeriesPoint struct {
	Month    Month   `json:"-"`
	Label    string  `json:"month"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Savings  float64 `json:"savings"`
}

// MonthlySeries returns per-month income, expenses, and savings flow for
// the n months ending at end, oldest first.
func (s Snapshot) MonthlySeries(end Month, n int) []SeriesPoint {
	if n <= 0 {
		return nil
	}

	months := make([]Month, n)
	m := end
	for i := n - 1; i >= 0; i-- {
		months[i] = m
		m = m.Previous()
	}

	idx := s.index()
	out := make([]SeriesPoint, 0, n)
	for _, month := range months {
		p := SeriesPoint{
			Month: month,
			Label: month.Start().Format("2006-01"),
		}
		for _, tx := range SelectMonth(s.Transactions, month, Filter{}, idx) {
			amount := Convert(tx.Amount, tx.Currency, s.HomeCurrency)
			switch tx.Type {
			case TypeIncome:
				p.Income += amount
			case TypeExpense:
				p.Expenses += amount
			case TypeSavingsTransfer:
				if tx.TransferDirection == FromSavings {
					amount = -amount
				}
				p.Savings += amount
			}
		}
		out = append(out, p)
	}
	return out
}
