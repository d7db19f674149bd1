package finance

import (
	"math"
	"testing"
	"time"
)

func TestAggregate(t *testing.T) {
	t.Run("per_currency_sums_are_raw", func(t *testing.T) {
		txns := []Transaction{
			{Type: TypeExpense, Amount: 100, Currency: "USD"},
			{Type: TypeExpense, Amount: 25.5, Currency: "USD"},
			{Type: TypeExpense, Amount: 50, Currency: "EUR"},
		}
		got := Aggregate(txns, "USD")
		if !almostEqual(got.PerCurrency["USD"], 125.5) {
			t.Errorf("USD total = %v, want 125.5", got.PerCurrency["USD"])
		}
		if !almostEqual(got.PerCurrency["EUR"], 50) {
			t.Errorf("EUR total = %v, want 50", got.PerCurrency["EUR"])
		}
	})

	t.Run("home_total_converts_each_transaction", func(t *testing.T) {
		txns := []Transaction{
			{Type: TypeExpense, Amount: 100, Currency: "USD"},
			{Type: TypeExpense, Amount: 50, Currency: "EUR"},
			{Type: TypeExpense, Amount: 20, Currency: "GBP"},
		}
		got := Aggregate(txns, "USD")
		want := 100 + 50/0.85 + 20/0.73
		if math.Abs(got.HomeTotal-want) > 0.01 {
			t.Errorf("home total = %v, want %v", got.HomeTotal, want)
		}
	})

	t.Run("empty_input", func(t *testing.T) {
		got := Aggregate(nil, "USD")
		if got.HomeTotal != 0 || len(got.PerCurrency) != 0 {
			t.Errorf("expected zero totals, got %+v", got)
		}
	})
}

func TestCategoryBreakdown(t *testing.T) {
	food := Category{ID: "c-food", Name: "Food", Currency: "USD"}
	rent := Category{ID: "c-rent", Name: "Rent", Currency: "EUR"}
	misc := Category{ID: "c-misc", Name: "Misc"} // no configured currency
	categories := []Category{food, rent, misc}

	t.Run("converts_to_category_currency", func(t *testing.T) {
		txns := []Transaction{
			{Type: TypeExpense, Amount: 85, Currency: "EUR", CategoryID: food.ID}, // -> 100 USD
			{Type: TypeExpense, Amount: 100, Currency: "USD", CategoryID: food.ID},
			{Type: TypeExpense, Amount: 300, Currency: "EUR", CategoryID: rent.ID},
		}
		rows := CategoryBreakdown(txns, categories)
		if got := findRow(t, rows, food.ID).Amount; math.Abs(got-200) > 0.01 {
			t.Errorf("food amount = %v, want 200", got)
		}
		if got := findRow(t, rows, rent.ID).Amount; !almostEqual(got, 300) {
			t.Errorf("rent amount = %v, want 300 (already EUR)", got)
		}
	})

	t.Run("falls_back_to_transaction_currency", func(t *testing.T) {
		txns := []Transaction{
			{Type: TypeExpense, Amount: 40, Currency: "GBP", CategoryID: misc.ID},
		}
		rows := CategoryBreakdown(txns, categories)
		if got := findRow(t, rows, misc.ID).Amount; !almostEqual(got, 40) {
			t.Errorf("misc amount = %v, want 40 (no conversion)", got)
		}
	})

	t.Run("percentages_sum_to_100", func(t *testing.T) {
		txns := []Transaction{
			{Type: TypeExpense, Amount: 75, Currency: "USD", CategoryID: food.ID},
			{Type: TypeExpense, Amount: 25, Currency: "EUR", CategoryID: rent.ID},
		}
		rows := CategoryBreakdown(txns, categories)
		var sum float64
		for _, r := range rows {
			sum += r.Percentage
		}
		if math.Abs(sum-100) > 0.001 {
			t.Errorf("percentages sum to %v, want 100", sum)
		}
	})

	t.Run("zero_spend_categories_included", func(t *testing.T) {
		txns := []Transaction{
			{Type: TypeExpense, Amount: 10, Currency: "USD", CategoryID: food.ID},
		}
		rows := CategoryBreakdown(txns, categories)
		if len(rows) != 3 {
			t.Fatalf("expected all 3 categories present, got %d", len(rows))
		}
		row := findRow(t, rows, rent.ID)
		if row.Amount != 0 || row.Percentage != 0 {
			t.Errorf("zero-spend category should have amount 0 and percentage 0, got %+v", row)
		}
	})

	t.Run("no_spend_at_all", func(t *testing.T) {
		rows := CategoryBreakdown(nil, categories)
		for _, r := range rows {
			if r.Percentage != 0 {
				t.Errorf("percentage must be 0 with no spend, got %v for %s", r.Percentage, r.Name)
			}
		}
	})

	t.Run("sorted_descending", func(t *testing.T) {
		txns := []Transaction{
			{Type: TypeExpense, Amount: 10, Currency: "USD", CategoryID: food.ID},
			{Type: TypeExpense, Amount: 500, Currency: "EUR", CategoryID: rent.ID},
			{Type: TypeExpense, Amount: 50, Currency: "USD", CategoryID: misc.ID},
		}
		rows := CategoryBreakdown(txns, categories)
		for i := 1; i < len(rows); i++ {
			if rows[i].Amount > rows[i-1].Amount {
				t.Fatalf("rows not sorted descending: %v before %v", rows[i-1].Amount, rows[i].Amount)
			}
		}
	})

	t.Run("non_expense_transactions_ignored", func(t *testing.T) {
		txns := []Transaction{
			{Type: TypeIncome, Amount: 1000, Currency: "USD", Date: date(2025, time.January, 1)},
			{Type: TypeExpense, Amount: 10, Currency: "USD", CategoryID: food.ID},
		}
		rows := CategoryBreakdown(txns, categories)
		if got := findRow(t, rows, food.ID).Percentage; math.Abs(got-100) > 0.001 {
			t.Errorf("food should be 100%% of expense spend, got %v", got)
		}
	})
}

func findRow(t *testing.T, rows []CategoryTotal, id string) CategoryTotal {
	t.Helper()
	for _, r := range rows {
		if r.CategoryID == id {
			return r
		}
	}
	t.Fatalf("category %s not found in breakdown", id)
	return CategoryTotal{}
}
