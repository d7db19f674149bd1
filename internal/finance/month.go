package finance

import "time"

// Month identifies a calendar month.
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf returns the Month containing t.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// Days returns the number of calendar days in the month. Day zero of the
// following month is its last day, which handles 28-31 day months and
// leap years.
func (m Month) Days() int {
	return time.Date(m.Year, m.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Start returns midnight on the first day of the month.
func (m Month) Start() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// Contains reports whether t falls within the month at calendar-date
// granularity. The time-of-day component of t is ignored: a transaction
// dated the last day of the month is inside no matter its timestamp.
func (m Month) Contains(t time.Time) bool {
	return t.Year() == m.Year && t.Month() == m.Month
}

// Previous returns the month before m.
func (m Month) Previous() Month {
	return MonthOf(m.Start().AddDate(0, -1, 0))
}

// Next returns the month after m.
func (m Month) Next() Month {
	return MonthOf(m.Start().AddDate(0, 1, 0))
}

// Equal reports whether two months are the same calendar month.
func (m Month) Equal(o Month) bool {
	return m.Year == o.Year && m.Month == o.Month
}
