package solarterm

import (
	"fmt"
	"math"
	"time"
)

// Names lists the 24 solar terms in calendar order, starting with 小寒
// (solar longitude 285°). Term i sits at longitude 285 + 15*i.
var Names = [24]string{
	"小寒", "大寒", "立春", "雨水", "驚蟄", "春分",
	"清明", "穀雨", "立夏", "小滿", "芒種", "夏至",
	"小暑", "大暑", "立秋", "處暑", "白露", "秋分",
	"寒露", "霜降", "立冬", "小雪", "大雪", "冬至",
}

// Term is one solar term occurrence.
type Term struct {
	Name      string    `json:"name"`
	Longitude float64   `json:"longitude"`
	Time      time.Time `json:"time"`
	// Month is the term month this term opens, or 0 for the mid-month terms.
	Month int `json:"month,omitempty"`
}

const (
	// degrees of solar longitude per day, mean motion
	meanMotion = 360 / 365.242189

	// lichunLongitude opens term month 1.
	lichunLongitude = 315.0

	maxIterations = 50
)

// Terms returns the 24 solar terms falling in the given civil year (UTC+8),
// from 小寒 in early January to 冬至 in late December.
func Terms(year int) ([]Term, error) {
	if year < MinYear || year > MaxYear {
		return nil, fmt.Errorf("%w: year %d", ErrOutOfRange, year)
	}

	terms := make([]Term, 0, len(Names))
	guess := time.Date(year, time.January, 6, 0, 0, 0, 0, CivilZone)
	for i, name := range Names {
		lon := normalize360(285 + 15*float64(i))
		at, err := Instant(lon, guess)
		if err != nil {
			return nil, fmt.Errorf("solve %s %d: %w", name, year, err)
		}
		terms = append(terms, Term{
			Name:      name,
			Longitude: lon,
			Time:      at.In(CivilZone),
			Month:     monthOpenedAt(lon),
		})
		guess = at.Add(time.Duration(15 / meanMotion * float64(24*time.Hour)))
	}
	return terms, nil
}

// Instant returns the moment, nearest to guess, when the Sun's apparent
// longitude equals lon degrees. The result is rounded to the second.
func Instant(lon float64, guess time.Time) (time.Time, error) {
	t := guess
	for i := 0; i < maxIterations; i++ {
		diff := math.Mod(lon-SunLongitude(t)+540, 360) - 180
		if math.Abs(diff) < 1e-7 {
			return t.Round(time.Second), nil
		}
		t = t.Add(time.Duration(diff / meanMotion * float64(24*time.Hour)))
	}
	return time.Time{}, fmt.Errorf("longitude %.2f did not converge near %s", lon, guess.Format(time.RFC3339))
}

// monthOpenedAt returns the term month starting at longitude lon, or 0 when
// lon is a mid-month term.
func monthOpenedAt(lon float64) int {
	offset := normalize360(lon - lichunLongitude)
	if math.Mod(offset, 30) != 0 {
		return 0
	}
	return int(offset/30) + 1
}
