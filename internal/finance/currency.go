// Package finance implements the pure computation core of Monetra:
// currency conversion, calendar-month filtering, aggregation, and budget
// pacing. Everything in this package is side-effect-free arithmetic over
// an in-memory snapshot supplied by the caller; nothing here touches the
// database, the clock, or any global state.
package finance

// rateToUSD maps a currency code to units of that currency per one USD.
// The table is static and intentionally not refreshed from any provider.
// A live rate source, if ever added, must sit behind Convert so the rest
// of the engine is unaffected.
var rateToUSD = map[string]float64{
	"USD": 1,
	"EUR": 0.85,
	"GBP": 0.73,
	"JPY": 110,
	"CNY": 6.45,
	"INR": 75,
}

// Convert converts amount from one currency to another via USD.
// Unknown currency codes degrade silently to a rate of 1 (USD-equivalent
// treatment); Convert never fails. Equal currencies return the amount
// unchanged so round-trips are exact regardless of floating-point
// behavior of the rate division.
func Convert(amount float64, from, to string) float64 {
	if from == to {
		return amount
	}
	usd := amount / rateFor(from)
	return usd * rateFor(to)
}

func rateFor(code string) float64 {
	if r, ok := rateToUSD[code]; ok {
		return r
	}
	return 1
}

// SupportedCurrencies returns the codes present in the static rate table.
func SupportedCurrencies() []string {
	codes := make([]string, 0, len(rateToUSD))
	for c := range rateToUSD {
		codes = append(codes, c)
	}
	return codes
}
