package calendar

import (
	"errors"
	"testing"
	"time"
)

func TestParseDatetime(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"RFC 3339 UTC", "2024-02-04T08:30:00Z", time.Date(2024, 2, 4, 8, 30, 0, 0, time.UTC)},
		{"RFC 3339 offset", "2024-02-04T16:30:00+08:00", civil(2024, 2, 4, 16, 30, 0)},
		{"RFC 3339 fraction", "2024-02-04T16:30:00.5-05:00", time.Date(2024, 2, 4, 21, 30, 0, 5e8, time.UTC)},
		{"civil T", "2024-02-04T16:30:00", civil(2024, 2, 4, 16, 30, 0)},
		{"civil space", "2024-02-04 16:30:00", civil(2024, 2, 4, 16, 30, 0)},
		{"civil minutes", "2024-02-04 16:30", civil(2024, 2, 4, 16, 30, 0)},
		{"date only", "2024-02-04", civil(2024, 2, 4, 0, 0, 0)},
		{"surrounding space", "  2024-02-04  ", civil(2024, 2, 4, 0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDatetime(tt.input)
			if err != nil {
				t.Fatalf("ParseDatetime(%q) error = %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseDatetime(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseDatetime_Invalid(t *testing.T) {
	inputs := []string{"", "   ", "yesterday", "2024-13-01", "2024-02-30", "2024/02/04", "16:30"}

	for _, input := range inputs {
		if _, err := ParseDatetime(input); !errors.Is(err, ErrInvalidDatetime) {
			t.Errorf("ParseDatetime(%q) error = %v, want ErrInvalidDatetime", input, err)
		}
	}
}

func TestParseDateString(t *testing.T) {
	got, err := ParseDateString("2025-10-14")
	if err != nil {
		t.Fatalf("ParseDateString() error = %v", err)
	}
	if !got.Equal(civil(2025, 10, 14, 0, 0, 0)) {
		t.Errorf("ParseDateString() = %s", got)
	}

	if _, err := ParseDateString("2025-10-14T00:00:00Z"); !errors.Is(err, ErrInvalidDatetime) {
		t.Errorf("ParseDateString(RFC 3339) error = %v, want ErrInvalidDatetime", err)
	}
}

func TestFormatDate(t *testing.T) {
	// 20:00 UTC is already the next civil day in UTC+8.
	if got := FormatDate(time.Date(2024, 12, 31, 20, 0, 0, 0, time.UTC)); got != "2025-01-01" {
		t.Errorf("FormatDate() = %s, want 2025-01-01", got)
	}
}
