// Package utils holds small helpers shared across handlers.
package utils

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FlexID is an entity id that tolerates the mixed representations the Arca
// API emits: JSON numbers, numeric strings, and floats. All ids are
// canonicalized to int64 at the ingestion boundary so downstream code never
// compares mixed representations.
type FlexID int64

func (f *FlexID) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" || s == `""` {
		*f = 0
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	id, ok := ParseID(s)
	if !ok {
		return fmt.Errorf("FlexID: cannot parse %q", string(b))
	}
	*f = FlexID(id)
	return nil
}

func (f FlexID) MarshalJSON() ([]byte, error) {
	return json.Marshal(int64(f))
}

// Int64 returns the canonical id value.
func (f FlexID) Int64() int64 { return int64(f) }

// Ptr returns a *int64, or nil for the zero id.
func (f FlexID) Ptr() *int64 {
	if f == 0 {
		return nil
	}
	v := int64(f)
	return &v
}

// ParseID coerces a numeric string to int64. Floats with a fractional part
// of zero ("42.0") are accepted since some endpoints serialize ids that way.
func ParseID(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if id, err := strconv.ParseInt(s, 10, 64); err == nil {
		return id, true
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil && v == float64(int64(v)) {
		return int64(v), true
	}
	return 0, false
}
