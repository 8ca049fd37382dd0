package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestJSONTimeUnmarshal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"rfc3339", `"2024-06-03T08:30:00Z"`, time.Date(2024, 6, 3, 8, 30, 0, 0, time.UTC)},
		{"rfc3339 nano", `"2024-06-03T08:30:00.123456789Z"`, time.Date(2024, 6, 3, 8, 30, 0, 123456789, time.UTC)},
		{"no zone", `"2024-06-03T08:30:00"`, time.Date(2024, 6, 3, 8, 30, 0, 0, time.Local)},
		{"space separator", `"2024-06-03 08:30:00"`, time.Date(2024, 6, 3, 8, 30, 0, 0, time.Local)},
		{"date only", `"2024-06-03"`, time.Date(2024, 6, 3, 0, 0, 0, 0, time.Local)},
		{"italian date", `"03/06/2024"`, time.Date(2024, 6, 3, 0, 0, 0, 0, time.Local)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var jt JSONTime
			if err := json.Unmarshal([]byte(tt.input), &jt); err != nil {
				t.Fatalf("Unmarshal(%s): %v", tt.input, err)
			}
			if !jt.Time().Equal(tt.want) {
				t.Errorf("got %v, want %v", jt.Time(), tt.want)
			}
		})
	}
}

func TestJSONTimeUnmarshalNullAndEmpty(t *testing.T) {
	for _, input := range []string{`null`, `""`} {
		var jt JSONTime
		if err := json.Unmarshal([]byte(input), &jt); err != nil {
			t.Fatalf("Unmarshal(%s): %v", input, err)
		}
		if !jt.IsZero() {
			t.Errorf("Unmarshal(%s): want zero time, got %v", input, jt.Time())
		}
		if jt.TimePtr() != nil {
			t.Errorf("Unmarshal(%s): TimePtr should be nil", input)
		}
	}
}

func TestJSONTimeUnmarshalInvalid(t *testing.T) {
	var jt JSONTime
	if err := json.Unmarshal([]byte(`"yesterday"`), &jt); err == nil {
		t.Fatal("expected error for unparseable value")
	}
}

func TestJSONTimeMarshal(t *testing.T) {
	jt := JSONTime(time.Date(2024, 6, 3, 8, 30, 0, 0, time.UTC))
	b, err := json.Marshal(jt)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(b) != `"2024-06-03T08:30:00Z"` {
		t.Errorf("Marshal = %s", b)
	}

	b, err = json.Marshal(JSONTime(time.Time{}))
	if err != nil {
		t.Fatalf("Marshal zero: %v", err)
	}
	if string(b) != "null" {
		t.Errorf("Marshal zero = %s, want null", b)
	}
}

func TestJSONTimeRoundTrip(t *testing.T) {
	var jt JSONTime
	if err := json.Unmarshal([]byte(`"03/06/2024"`), &jt); err != nil {
		t.Fatal(err)
	}
	b, _ := json.Marshal(jt)
	var again JSONTime
	if err := json.Unmarshal(b, &again); err != nil {
		t.Fatalf("re-unmarshal %s: %v", b, err)
	}
	if !again.Time().Equal(jt.Time()) {
		t.Errorf("round trip changed value: %v != %v", again.Time(), jt.Time())
	}
}
