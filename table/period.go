package table

import (
	"fmt"
	"time"
)

// Period is a calendar year, optionally narrowed to a quarter.
// Quarter 0 means annual granularity.
type Period struct {
	Year    int
	Quarter int
}

// ToPeriod parses a "YYYY-MM" string into a year and quarter.
// The format is strict: exactly seven characters, zero-padded month.
func ToPeriod(s string) (Period, error) {
	t, err := parseYearMonth(s)
	if err != nil {
		return Period{}, err
	}
	return Period{Year: t.Year(), Quarter: quarterOfMonth(int(t.Month()))}, nil
}

// parseYearMonth parses "YYYY-MM" into the first day of that month, UTC.
func parseYearMonth(s string) (time.Time, error) {
	if len(s) != 7 || s[4] != '-' {
		return time.Time{}, &ParseError{Field: "date", Value: s, Reason: "want YYYY-MM"}
	}
	t, err := time.ParseInLocation("2006-01", s, time.UTC)
	if err != nil {
		return time.Time{}, &ParseError{Field: "date", Value: s, Reason: "want YYYY-MM"}
	}
	return t, nil
}

func quarterOfMonth(month int) int {
	return (month + 2) / 3
}

// periodOf derives the quarter period containing a date.
func periodOf(t time.Time) Period {
	return Period{Year: t.Year(), Quarter: quarterOfMonth(int(t.Month()))}
}

func (p Period) Before(o Period) bool {
	if p.Year != o.Year {
		return p.Year < o.Year
	}
	return p.Quarter < o.Quarter
}

func (p Period) String() string {
	if p.Quarter == 0 {
		return fmt.Sprintf("%04d", p.Year)
	}
	return fmt.Sprintf("%04dQ%d", p.Year, p.Quarter)
}

// Start is the first date of the period: January 1 for a year, the
// first day of the first month for a quarter.
func (p Period) Start() time.Time {
	month := time.January
	if p.Quarter > 0 {
		month = time.Month((p.Quarter-1)*3 + 1)
	}
	return time.Date(p.Year, month, 1, 0, 0, 0, 0, time.UTC)
}
