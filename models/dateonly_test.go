package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid date", "2024-03-01", false},
		{"slashes", "2024/03/01", true},
		{"reversed", "01-03-2024", true},
		{"with time", "2024-03-01T10:00:00Z", true},
		{"month out of range", "2024-13-01", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDate(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseDate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestDateOnlyJSONRoundTrip(t *testing.T) {
	d, err := ParseDate("2024-03-01")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}

	raw, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(raw) != `"2024-03-01"` {
		t.Errorf("Marshal = %s, want %q", raw, "2024-03-01")
	}

	var back DateOnly
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back.String() != "2024-03-01" {
		t.Errorf("round trip = %s, want 2024-03-01", back.String())
	}
}

func TestDateOnlyScan(t *testing.T) {
	tests := []struct {
		name string
		src  interface{}
		want string
	}{
		{"time value", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), "2024-03-01"},
		{"sqlite text datetime", "2024-03-01 00:00:00", "2024-03-01"},
		{"bare date text", "2024-03-01", "2024-03-01"},
		{"bytes", []byte("2024-03-01"), "2024-03-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d DateOnly
			if err := d.Scan(tt.src); err != nil {
				t.Fatalf("Scan(%v): %v", tt.src, err)
			}
			if d.String() != tt.want {
				t.Errorf("Scan(%v) = %s, want %s", tt.src, d.String(), tt.want)
			}
		})
	}
}

func TestDateOnlyScanNil(t *testing.T) {
	var d DateOnly
	if err := d.Scan(nil); err != nil {
		t.Fatalf("Scan(nil): %v", err)
	}
	if !time.Time(d).IsZero() {
		t.Errorf("Scan(nil) = %v, want zero time", time.Time(d))
	}
}
