package utils

import (
	"testing"
	"time"
)

func TestFormatRupiah(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{0, "Rp0"},
		{500, "Rp500"},
		{1500, "Rp1.500"},
		{50000, "Rp50.000"},
		{700000, "Rp700.000"},
		{7000000, "Rp7.000.000"},
		{1234567890, "Rp1.234.567.890"},
		{-250000, "-Rp250.000"},
	}

	for _, tt := range tests {
		if got := FormatRupiah(tt.amount); got != tt.want {
			t.Errorf("FormatRupiah(%d) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestFormatRupiahFloat(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "Rp0"},
		{1499.5, "Rp1.500"},
		{166666.4, "Rp166.666"},
		{-999.9, "-Rp1.000"},
	}

	for _, tt := range tests {
		if got := FormatRupiahFloat(tt.amount); got != tt.want {
			t.Errorf("FormatRupiahFloat(%v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestNewULIDFromTimestampIsSortable(t *testing.T) {
	u := New()

	earlier, err := u.NewULIDFromTimestamp(time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("NewULIDFromTimestamp returned error: %v", err)
	}
	later, err := u.NewULIDFromTimestamp(time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("NewULIDFromTimestamp returned error: %v", err)
	}

	if len(earlier) != 26 || len(later) != 26 {
		t.Fatalf("ULIDs should be 26 chars, got %d and %d", len(earlier), len(later))
	}
	if !(earlier < later) {
		t.Errorf("ULIDs should sort by timestamp: %s !< %s", earlier, later)
	}
}
