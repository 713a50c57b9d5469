package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// DateOnly wraps time.Time so we can control both JSON un/marshaling and
// SQL driver encoding. Ledger dates carry no time-of-day component.
type DateOnly time.Time

// ParseDate accepts only the YYYY-MM-DD form.
func ParseDate(s string) (DateOnly, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return DateOnly{}, fmt.Errorf("ParseDate: cannot parse %q: %w", s, err)
	}
	return DateOnly(t), nil
}

func (d *DateOnly) UnmarshalJSON(b []byte) error {
	// strip quotes
	s := string(b)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("DateOnly.UnmarshalJSON: cannot parse %q: %w", s, err)
	}
	*d = DateOnly(t)
	return nil
}

func (d DateOnly) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Format(dateLayout))
}

// Value implements driver.Valuer so GORM can turn DateOnly into a SQL
// DATE parameter.
func (d DateOnly) Value() (driver.Value, error) {
	return time.Time(d), nil
}

// Scan implements sql.Scanner so GORM can read DATE columns back into
// DateOnly when querying.
func (d *DateOnly) Scan(src interface{}) error {
	if src == nil {
		*d = DateOnly(time.Time{})
		return nil
	}

	switch v := src.(type) {
	case time.Time:
		*d = DateOnly(v)
		return nil
	case []byte:
		return d.scanString(string(v))
	case string:
		return d.scanString(v)
	default:
		return fmt.Errorf("DateOnly.Scan: unsupported type %T", src)
	}
}

func (d *DateOnly) scanString(s string) error {
	// sqlite stores DATETIME as text; try the full form first
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02 15:04:05.999999999-07:00", "2006-01-02 15:04:05", dateLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			*d = DateOnly(t)
			return nil
		}
	}
	return fmt.Errorf("DateOnly.Scan: parse %q", s)
}

func (d DateOnly) String() string {
	return time.Time(d).Format(dateLayout)
}
