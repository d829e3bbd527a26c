package solarterm

import (
	"errors"
	"math"
	"testing"
	"time"
)

func cst(year int, month time.Month, day, hour, min, sec int) time.Time {
	return time.Date(year, month, day, hour, min, sec, 0, CivilZone)
}

func TestJulianDay(t *testing.T) {
	tests := []struct {
		name string
		t    time.Time
		want float64
	}{
		{"unix epoch", time.Unix(0, 0), 2440587.5},
		{"J2000.0", time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC), 2451545.0},
		{"Meeus 7.a", time.Date(1957, 10, 4, 19, 26, 24, 0, time.UTC), 2436116.31},
		{"before 1678", time.Date(1600, 1, 1, 0, 0, 0, 0, time.UTC), 2305447.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := JulianDay(tt.t); math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("JulianDay() = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestDeltaT(t *testing.T) {
	tests := []struct {
		year     int
		min, max float64
	}{
		{1900, -5, 0},
		{1950, 28, 30},
		{2000, 63, 65},
		{2024, 68, 76},
	}

	for _, tt := range tests {
		got := DeltaT(time.Date(tt.year, time.July, 1, 0, 0, 0, 0, time.UTC))
		if got < tt.min || got > tt.max {
			t.Errorf("DeltaT(%d) = %.2f, want within [%.0f, %.0f]", tt.year, got, tt.min, tt.max)
		}
	}
}

func TestSunLongitude_Equinox(t *testing.T) {
	// March equinox 2024: 2024-03-20 03:06 UTC.
	got := SunLongitude(time.Date(2024, 3, 20, 3, 6, 0, 0, time.UTC))
	if diff := math.Mod(got+180, 360) - 180; math.Abs(diff) > 0.01 {
		t.Errorf("SunLongitude(2024 equinox) = %f, want ~0", got)
	}
}

func TestInstant_PublishedTerms(t *testing.T) {
	tests := []struct {
		name string
		lon  float64
		want time.Time
	}{
		{"立春 2000", 315, cst(2000, 2, 4, 20, 40, 24)},
		{"立春 2024", 315, cst(2024, 2, 4, 16, 27, 7)},
		{"冬至 2024", 270, cst(2024, 12, 21, 17, 20, 34)},
		{"小寒 2025", 285, cst(2025, 1, 5, 10, 32, 56)},
		{"立春 2025", 315, cst(2025, 2, 3, 22, 10, 28)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			guess := time.Date(tt.want.Year(), tt.want.Month(), tt.want.Day(), 0, 0, 0, 0, CivilZone)
			got, err := Instant(tt.lon, guess)
			if err != nil {
				t.Fatalf("Instant() error = %v", err)
			}
			if d := got.Sub(tt.want); d < -2*time.Minute || d > 2*time.Minute {
				t.Errorf("Instant() = %s, want %s (off by %s)", got.In(CivilZone), tt.want, d)
			}
		})
	}
}

func TestAstronomical_TermMonth(t *testing.T) {
	p := NewAstronomical()

	tests := []struct {
		name string
		t    time.Time
		want TermMonth
	}{
		{"new year's day", cst(2024, 1, 1, 0, 0, 0), TermMonth{2023, 11}},
		{"after 小寒", cst(2024, 1, 20, 12, 0, 0), TermMonth{2023, 12}},
		{"minutes before 立春", cst(2024, 2, 4, 16, 20, 0), TermMonth{2023, 12}},
		{"minutes after 立春", cst(2024, 2, 4, 16, 35, 0), TermMonth{2024, 1}},
		{"same instant in UTC", time.Date(2024, 2, 4, 8, 35, 0, 0, time.UTC), TermMonth{2024, 1}},
		{"national day 1949", cst(1949, 10, 1, 15, 0, 0), TermMonth{1949, 8}},
		{"late december", cst(2023, 12, 31, 23, 0, 0), TermMonth{2023, 11}},
		{"midsummer", cst(2025, 6, 21, 12, 0, 0), TermMonth{2025, 5}},
		{"autumn", cst(2025, 10, 14, 9, 0, 0), TermMonth{2025, 9}},
		{"early december", cst(2025, 12, 1, 0, 0, 0), TermMonth{2025, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.TermMonth(tt.t)
			if err != nil {
				t.Fatalf("TermMonth() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("TermMonth() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestAstronomical_TermMonthOutOfRange(t *testing.T) {
	p := NewAstronomical()

	for _, year := range []int{MinYear - 1, MaxYear + 1} {
		_, err := p.TermMonth(cst(year, 6, 1, 0, 0, 0))
		if !errors.Is(err, ErrOutOfRange) {
			t.Errorf("TermMonth(%d) error = %v, want ErrOutOfRange", year, err)
		}
	}
}

func TestTerms(t *testing.T) {
	terms, err := Terms(2024)
	if err != nil {
		t.Fatalf("Terms(2024) error = %v", err)
	}
	if len(terms) != 24 {
		t.Fatalf("len(Terms(2024)) = %d, want 24", len(terms))
	}

	for i, term := range terms {
		if term.Name != Names[i] {
			t.Errorf("terms[%d].Name = %q, want %q", i, term.Name, Names[i])
		}
		if term.Time.Year() != 2024 {
			t.Errorf("%s falls in %d", term.Name, term.Time.Year())
		}
		if i > 0 && !term.Time.After(terms[i-1].Time) {
			t.Errorf("%s at %s is not after %s", term.Name, term.Time, terms[i-1].Name)
		}
		wantMonth := 0
		if i%2 == 0 {
			wantMonth = (i/2+11)%12 + 1
		}
		if term.Month != wantMonth {
			t.Errorf("%s.Month = %d, want %d", term.Name, term.Month, wantMonth)
		}
	}

	lichun := terms[2]
	if lichun.Name != "立春" || lichun.Longitude != 315 || lichun.Month != 1 {
		t.Errorf("terms[2] = %+v, want 立春 at 315° opening month 1", lichun)
	}
	if lichun.Time.Month() != time.February || lichun.Time.Day() != 4 {
		t.Errorf("立春 2024 on %s, want 2024-02-04", lichun.Time.Format("2006-01-02"))
	}
}

func TestTerms_OutOfRange(t *testing.T) {
	if _, err := Terms(MaxYear + 1); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Terms(%d) error = %v, want ErrOutOfRange", MaxYear+1, err)
	}
}
