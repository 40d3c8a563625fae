package domain

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-03-20")
	if err != nil {
		t.Fatalf("ParseDate failed: %v", err)
	}
	if d.Year() != 2024 || d.Month() != time.March || d.Day() != 20 {
		t.Errorf("Parsed wrong day: %v", d)
	}
	if d.Hour() != 0 || d.Minute() != 0 || d.Second() != 0 {
		t.Errorf("Date should be truncated to midnight, got %v", d)
	}

	if _, err := ParseDate("20/03/2024"); err == nil {
		t.Error("Expected error for non-ISO date")
	}
	if _, err := ParseDate(""); err == nil {
		t.Error("Expected error for empty date")
	}
}

func TestDateFormats(t *testing.T) {
	d, _ := ParseDate("2024-03-05")
	if got := d.String(); got != "2024-03-05" {
		t.Errorf("String() = %q, want 2024-03-05", got)
	}
	if got := d.BR(); got != "05/03/2024" {
		t.Errorf("BR() = %q, want 05/03/2024", got)
	}
}

func TestSameDayIgnoresTime(t *testing.T) {
	morning := NewDate(time.Date(2024, 3, 20, 8, 15, 0, 0, time.Local))
	night := NewDate(time.Date(2024, 3, 20, 23, 59, 59, 0, time.Local))
	nextDay := NewDate(time.Date(2024, 3, 21, 0, 0, 1, 0, time.Local))

	if !morning.SameDay(night) {
		t.Error("Same calendar day should match regardless of time")
	}
	if morning.SameDay(nextDay) {
		t.Error("Different calendar days should not match")
	}
}

func TestWithinIsInclusive(t *testing.T) {
	from, _ := ParseDate("2024-03-10")
	to, _ := ParseDate("2024-03-20")

	cases := []struct {
		day  string
		want bool
	}{
		{"2024-03-09", false},
		{"2024-03-10", true}, // lower bound
		{"2024-03-15", true},
		{"2024-03-20", true}, // upper bound
		{"2024-03-21", false},
	}
	for _, tc := range cases {
		d, _ := ParseDate(tc.day)
		if got := d.Within(from, to); got != tc.want {
			t.Errorf("Within(%s) = %v, want %v", tc.day, got, tc.want)
		}
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	d, _ := ParseDate("2023-01-15")

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `"2023-01-15"` {
		t.Errorf("Marshal = %s, want \"2023-01-15\"", data)
	}

	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !back.SameDay(d) {
		t.Errorf("Round trip changed the day: %v != %v", back, d)
	}
}

func TestDateUnmarshalNull(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte("null"), &d); err != nil {
		t.Fatalf("Unmarshal null failed: %v", err)
	}
	if !d.IsZero() {
		t.Errorf("null should decode to the zero date, got %v", d)
	}
}
