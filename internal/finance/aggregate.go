package finance

import "sort"

// Totals holds the per-currency and home-currency sums for a set of
// transactions.
type Totals struct {
	// PerCurrency sums raw amounts grouped by their own currency, with no
	// conversion applied.
	PerCurrency map[string]float64
	// HomeTotal is the sum of every transaction converted individually to
	// the home currency. Each transaction converts on its own; subtotals
	// are never converted as a block.
	HomeTotal    float64
	HomeCurrency string
}

// Aggregate computes per-currency and home-currency totals over the given
// transactions. Callers are expected to have filtered the slice already
// (see SelectMonth).
func Aggregate(txns []Transaction, homeCurrency string) Totals {
	t := Totals{
		PerCurrency:  make(map[string]float64),
		HomeCurrency: homeCurrency,
	}
	for _, tx := range txns {
		t.PerCurrency[tx.Currency] += tx.Amount
		t.HomeTotal += Convert(tx.Amount, tx.Currency, homeCurrency)
	}
	return t
}

// CategoryTotal is one row of an expense breakdown.
type CategoryTotal struct {
	CategoryID string
	Name       string
	// Currency is the category's configured currency when set; otherwise
	// amounts were accumulated in each transaction's own currency.
	Currency   string
	Amount     float64
	Percentage float64
}

// CategoryBreakdown aggregates expense transactions per category. Each
// transaction is converted to its target currency (the category's
// configured currency if set, else the transaction's own) before
// summing. Every known category appears in the result, including those
// with no spend this period. Rows are sorted by amount descending.
func CategoryBreakdown(txns []Transaction, categories []Category) []CategoryTotal {
	sums := make(map[string]float64, len(categories))
	for _, c := range categories {
		sums[c.ID] = 0
	}

	for _, tx := range txns {
		if tx.Type != TypeExpense || tx.CategoryID == "" {
			continue
		}
		cat, ok := lookupCategory(categories, tx.CategoryID)
		if !ok {
			continue
		}
		target := cat.Currency
		if target == "" {
			target = tx.Currency
		}
		sums[cat.ID] += Convert(tx.Amount, tx.Currency, target)
	}

	var grand float64
	for _, v := range sums {
		grand += v
	}

	out := make([]CategoryTotal, 0, len(categories))
	for _, c := range categories {
		row := CategoryTotal{
			CategoryID: c.ID,
			Name:       c.Name,
			Currency:   c.Currency,
			Amount:     sums[c.ID],
		}
		if grand > 0 {
			row.Percentage = sums[c.ID] / grand * 100
		}
		out = append(out, row)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Amount != out[j].Amount {
			return out[i].Amount > out[j].Amount
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func lookupCategory(categories []Category, id string) (Category, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}
