// Package calendar converts instants into Four Pillars (Eight Characters)
// stem-branch values and the Twelve Officers day cycle.
package calendar

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/zapponejosh/fourpillars/internal/solarterm"
)

// CivilZone is the fixed UTC+8 civil time all calculations are done in.
var CivilZone = solarterm.CivilZone

// ErrInvalidDatetime is returned when an input instant cannot be parsed or
// cannot be placed in the solar-term calendar.
var ErrInvalidDatetime = errors.New("invalid datetime")

// Layouts accepted by ParseDatetime after RFC 3339. None of them carries
// an offset, so they are read as UTC+8 civil time.
var civilLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseDatetime parses s as RFC 3339 or as one of the offset-less civil
// layouts, which are taken to be UTC+8.
func ParseDatetime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", ErrInvalidDatetime)
	}

	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	for _, layout := range civilLayouts {
		if t, err := time.ParseInLocation(layout, s, CivilZone); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q is not RFC 3339 or YYYY-MM-DD[ HH:MM[:SS]]", ErrInvalidDatetime, s)
}

// ParseDateString parses a date in YYYY-MM-DD format as UTC+8 midnight.
func ParseDateString(dateStr string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", dateStr, CivilZone)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", ErrInvalidDatetime, err)
	}
	return t, nil
}

// Normalize returns t in UTC+8 civil time.
func Normalize(t time.Time) time.Time {
	return t.In(CivilZone)
}

// FormatDate formats t as a UTC+8 YYYY-MM-DD date.
func FormatDate(t time.Time) string {
	return Normalize(t).Format("2006-01-02")
}
