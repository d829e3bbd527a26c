package calendar

import (
	"errors"
	"testing"
	"time"

	"github.com/zapponejosh/fourpillars/internal/solarterm"
)

func TestCalculator_Almanac(t *testing.T) {
	a, err := newTestCalculator().Almanac(time.Date(2024, 2, 10, 4, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Almanac() error = %v", err)
	}

	if a.Time.Location() != CivilZone || a.Time.Hour() != 12 {
		t.Errorf("Almanac().Time = %s, want 12:00 UTC+8", a.Time)
	}
	if a.TermMonth != (solarterm.TermMonth{Year: 2024, Month: 1}) {
		t.Errorf("Almanac().TermMonth = %+v, want {2024 1}", a.TermMonth)
	}
	if a.Pillars.Day.String() != "甲辰" {
		t.Errorf("Almanac().Pillars.Day = %s, want 甲辰", a.Pillars.Day)
	}
	if a.DailyGod != DailyGodOf(a.Pillars) {
		t.Errorf("Almanac().DailyGod = %s, want %s", a.DailyGod, DailyGodOf(a.Pillars))
	}
}

func TestCalculator_Days(t *testing.T) {
	calc := newTestCalculator()

	days, err := calc.Days(civil(2024, 2, 28, 0, 0, 0), civil(2024, 3, 1, 23, 0, 0))
	if err != nil {
		t.Fatalf("Days() error = %v", err)
	}
	if len(days) != 3 {
		t.Fatalf("len(Days()) = %d, want 3", len(days))
	}

	wantDates := []string{"2024-02-28", "2024-02-29", "2024-03-01"}
	for i, a := range days {
		if FormatDate(a.Time) != wantDates[i] || a.Time.Hour() != 12 {
			t.Errorf("days[%d].Time = %s, want %s 12:00", i, a.Time, wantDates[i])
		}
		if i > 0 && a.Pillars.Day.Sexagenary() != (days[i-1].Pillars.Day.Sexagenary()+1)%60 {
			t.Errorf("day pillar did not advance: %s -> %s", days[i-1].Pillars.Day, a.Pillars.Day)
		}
	}
	if days[1].Pillars.Day.String() != "癸亥" {
		t.Errorf("2024-02-29 day pillar = %s, want 癸亥", days[1].Pillars.Day)
	}
}

func TestCalculator_DaysEmptyAndErrors(t *testing.T) {
	calc := newTestCalculator()

	days, err := calc.Days(civil(2024, 3, 2, 0, 0, 0), civil(2024, 3, 1, 0, 0, 0))
	if err != nil || len(days) != 0 {
		t.Errorf("Days(reversed) = %d days, %v; want none", len(days), err)
	}

	_, err = calc.Days(civil(2999, 12, 31, 0, 0, 0), civil(3000, 1, 1, 0, 0, 0))
	if !errors.Is(err, solarterm.ErrOutOfRange) {
		t.Errorf("Days(past MaxYear) error = %v, want ErrOutOfRange", err)
	}
}
