// Package solarterm locates instants within the solar-term calendar, whose
// months begin at fixed solar longitudes rather than on civil month
// boundaries.
package solarterm

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// CivilZone is the fixed UTC+8 zone the term calendar is reckoned in.
var CivilZone = time.FixedZone("UTC+8", 8*60*60)

// Supported civil years. The series is Gregorian-only and the ΔT fits lose
// meaning far from the present.
const (
	MinYear = 1583
	MaxYear = 2999
)

// ErrOutOfRange is returned for instants outside MinYear..MaxYear.
var ErrOutOfRange = errors.New("instant outside supported solar-term range")

// TermMonth identifies a month of the solar-term calendar.
type TermMonth struct {
	// Year changes at 立春, not on January 1.
	Year int `json:"year"`
	// Month is 1 for the month opened by 立春 through 12 for the month
	// opened by 小寒.
	Month int `json:"month"`
}

// Provider resolves the term month enclosing an instant.
type Provider interface {
	TermMonth(t time.Time) (TermMonth, error)
}

// Astronomical computes term months from the Sun's apparent longitude.
type Astronomical struct{}

// NewAstronomical returns the astronomical provider.
func NewAstronomical() Astronomical {
	return Astronomical{}
}

// TermMonth implements Provider.
func (Astronomical) TermMonth(t time.Time) (TermMonth, error) {
	civil := t.In(CivilZone)
	if civil.Year() < MinYear || civil.Year() > MaxYear {
		return TermMonth{}, fmt.Errorf("%w: %s", ErrOutOfRange, civil.Format(time.RFC3339))
	}

	offset := normalize360(SunLongitude(t) - lichunLongitude)
	month := int(math.Floor(offset/30)) + 1

	year := civil.Year()
	if civil.Month() <= time.February && month >= 11 {
		year--
	}
	return TermMonth{Year: year, Month: month}, nil
}
