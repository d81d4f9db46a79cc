package ledger

import (
	"strings"
	"time"
)

// Period selects the window a profit/loss summary covers.
type Period int

const (
	Daily Period = iota
	Weekly
	Monthly
)

func (p Period) String() string {
	switch p {
	case Daily:
		return "daily"
	case Weekly:
		return "weekly"
	case Monthly:
		return "monthly"
	default:
		return "periodic"
	}
}

// ParsePeriod accepts daily, weekly or monthly in any case.
func ParsePeriod(s string) (Period, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "daily":
		return Daily, nil
	case "weekly":
		return Weekly, nil
	case "monthly":
		return Monthly, nil
	default:
		return Daily, invalid("period", "Invalid period. Choose 'daily', 'weekly', or 'monthly'.")
	}
}

// Range is an inclusive span of calendar days.
type Range struct{ From, To time.Time }

// Bounds returns the range as ISO date strings, the form stored in the trades table.
func (r Range) Bounds() (from, to string) {
	return r.From.Format(DateFormat), r.To.Format(DateFormat)
}

// Range returns the window of p ending on today.
//
// Weekly is the trailing seven days before today plus today itself, not an ISO
// week; monthly starts on the first of today's month.
func (p Period) Range(today time.Time) Range {
	y, m, d := today.Date()
	end := time.Date(y, m, d, 0, 0, 0, 0, today.Location())

	switch p {
	case Weekly:
		return Range{From: end.AddDate(0, 0, -7), To: end}
	case Monthly:
		return Range{From: time.Date(y, m, 1, 0, 0, 0, 0, today.Location()), To: end}
	default:
		return Range{From: end, To: end}
	}
}
