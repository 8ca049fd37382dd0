package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// JSONTime wraps time.Time so we can parse the mix of timestamp layouts the
// Arca API emits (RFC3339, bare date-time without zone, date-only, and the
// Italian dd/mm/yyyy form) while always marshaling RFC3339.
type JSONTime time.Time

var arcaLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02/01/2006",
}

// UnmarshalJSON tries each known Arca layout in order.
func (jt *JSONTime) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" || s == `""` {
		*jt = JSONTime(time.Time{})
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}

	for _, layout := range arcaLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			*jt = JSONTime(t)
			return nil
		}
	}
	return fmt.Errorf("JSONTime.UnmarshalJSON: cannot parse %q", s)
}

// MarshalJSON always emits full RFC3339.
func (jt JSONTime) MarshalJSON() ([]byte, error) {
	t := time.Time(jt)
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Format(time.RFC3339))
}

// Value implements driver.Valuer so the wrapper can be stored directly.
func (jt JSONTime) Value() (driver.Value, error) {
	t := time.Time(jt)
	if t.IsZero() {
		return nil, nil
	}
	return t, nil
}

// Scan implements sql.Scanner.
func (jt *JSONTime) Scan(value interface{}) error {
	if value == nil {
		*jt = JSONTime(time.Time{})
		return nil
	}
	t, ok := value.(time.Time)
	if !ok {
		return fmt.Errorf("JSONTime.Scan: unsupported type %T", value)
	}
	*jt = JSONTime(t)
	return nil
}

// Time returns the wrapped time.Time.
func (jt JSONTime) Time() time.Time { return time.Time(jt) }

// IsZero reports whether the wrapped time is the zero instant.
func (jt JSONTime) IsZero() bool { return time.Time(jt).IsZero() }

// TimePtr returns a *time.Time, or nil for the zero instant.
func (jt JSONTime) TimePtr() *time.Time {
	if jt.IsZero() {
		return nil
	}
	t := time.Time(jt)
	return &t
}
