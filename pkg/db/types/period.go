package dbtypes

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// periodLayout is the canonical calendar-month key, e.g. "2024-01".
const periodLayout = "2006-01"

// Period identifies a calendar month (year+month granularity). Stored as TEXT in
// the canonical "YYYY-MM" layout, which also sorts chronologically as a string.
type Period struct {
	year  int
	month time.Month
}

// NewPeriod builds a Period from an explicit year and month.
func NewPeriod(year int, month time.Month) Period {
	return Period{year: year, month: month}
}

// PeriodOf truncates an instant to its calendar month.
func PeriodOf(t time.Time) Period {
	return Period{year: t.Year(), month: t.Month()}
}

// ParsePeriod parses the canonical "YYYY-MM" layout.
func ParsePeriod(value string) (Period, error) {
	t, err := time.Parse(periodLayout, strings.TrimSpace(value))
	if err != nil {
		return Period{}, fmt.Errorf("Period: parse %q: %w", value, err)
	}
	return Period{year: t.Year(), month: t.Month()}, nil
}

func (p Period) Year() int         { return p.year }
func (p Period) Month() time.Month { return p.month }

// IsZero reports whether the period was never set.
func (p Period) IsZero() bool {
	return p.year == 0 && p.month == 0
}

func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.year, int(p.month))
}

// Before orders periods chronologically.
func (p Period) Before(other Period) bool {
	if p.year != other.year {
		return p.year < other.year
	}
	return p.month < other.month
}

// Scan implements sql.Scanner for TEXT columns.
func (p *Period) Scan(src any) error {
	if src == nil {
		*p = Period{}
		return nil
	}
	switch v := src.(type) {
	case string:
		return p.assign(v)
	case []byte:
		return p.assign(string(v))
	case time.Time:
		*p = PeriodOf(v)
		return nil
	default:
		return fmt.Errorf("Period: unsupported Scan type %T", src)
	}
}

// Value implements driver.Valuer.
func (p Period) Value() (driver.Value, error) {
	if p.IsZero() {
		return nil, nil
	}
	return p.String(), nil
}

func (p Period) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *Period) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("Period: expected string: %w", err)
	}
	return p.assign(raw)
}

func (p *Period) assign(raw string) error {
	parsed, err := ParsePeriod(raw)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
