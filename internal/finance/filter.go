package finance

import "time"

// TransactionType mirrors the transaction kinds tracked by the app.
type TransactionType string

const (
	TypeIncome          TransactionType = "income"
	TypeExpense         TransactionType = "expense"
	TypeSavingsTransfer TransactionType = "savings_transfer"
)

// TransferDirection distinguishes deposits into savings from withdrawals.
type TransferDirection string

const (
	ToSavings   TransferDirection = "to_savings"
	FromSavings TransferDirection = "from_savings"
)

// Transaction is the engine's view of a single transaction. It is a plain
// value handed in by the caller; the engine never loads data itself.
type Transaction struct {
	ID                string
	Type              TransactionType
	Amount            float64
	Currency          string
	Date              time.Time
	CategoryID        string
	SourceID          string
	TransferDirection TransferDirection
}

// Category is the engine's view of an expense category. Currency, when
// set, is the category's preferred aggregation currency.
type Category struct {
	ID       string
	Name     string
	Currency string
}

// FilterAll is the sentinel that disables an equality filter.
const FilterAll = "all"

// Filter holds the optional equality filters applied on top of the month
// window. Each field is independently optional; an empty value or
// FilterAll disables that criterion. Active criteria combine with AND.
type Filter struct {
	CategoryID string
	Currency   string
	Type       TransactionType
}

func filterActive(v string) bool {
	return v != "" && v != FilterAll
}

func (f Filter) matches(tx Transaction) bool {
	if filterActive(f.CategoryID) && tx.CategoryID != f.CategoryID {
		return false
	}
	if filterActive(f.Currency) && tx.Currency != f.Currency {
		return false
	}
	if filterActive(string(f.Type)) && tx.Type != f.Type {
		return false
	}
	return true
}

// isOrphan reports whether tx references a category that is no longer
// among the user's categories. Orphans are excluded from every
// aggregation, independent of whether housekeeping has physically
// deleted them yet.
func isOrphan(tx Transaction, known map[string]Category) bool {
	if tx.CategoryID == "" {
		return false
	}
	_, ok := known[tx.CategoryID]
	return !ok
}

// CategoryIndex builds a lookup of categories by ID.
func CategoryIndex(categories []Category) map[string]Category {
	idx := make(map[string]Category, len(categories))
	for _, c := range categories {
		idx[c.ID] = c
	}
	return idx
}

// SelectMonth returns the transactions dated within the given month that
// pass the filter, with orphaned transactions removed. The input slice is
// not modified.
func SelectMonth(txns []Transaction, m Month, f Filter, known map[string]Category) []Transaction {
	var out []Transaction
	for _, tx := range txns {
		if !m.Contains(tx.Date) {
			continue
		}
		if isOrphan(tx, known) {
			continue
		}
		if !f.matches(tx) {
			continue
		}
		out = append(out, tx)
	}
	return out
}
