package calendar

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/zapponejosh/fourpillars/internal/ganzhi"
	"github.com/zapponejosh/fourpillars/internal/solarterm"
)

// FourPillars holds the hour, day, month and year pillars of an instant.
type FourPillars struct {
	Hour  ganzhi.Pillar
	Day   ganzhi.Pillar
	Month ganzhi.Pillar
	Year  ganzhi.Pillar
}

// Keys of FourPillars.Map.
const (
	KeyHourStem    = "hourStem"
	KeyDayStem     = "dayStem"
	KeyMonthStem   = "monthStem"
	KeyYearStem    = "yearStem"
	KeyHourBranch  = "hourBranch"
	KeyDayBranch   = "dayBranch"
	KeyMonthBranch = "monthBranch"
	KeyYearBranch  = "yearBranch"
)

// Pillars returns the pillars ordered hour, day, month, year.
func (fp *FourPillars) Pillars() [4]ganzhi.Pillar {
	return [4]ganzhi.Pillar{fp.Hour, fp.Day, fp.Month, fp.Year}
}

// GroupByStemBranch returns two rows of display names: the stems, then the
// branches, each ordered hour, day, month, year.
func (fp *FourPillars) GroupByStemBranch() [2][4]string {
	var rows [2][4]string
	for i, p := range fp.Pillars() {
		rows[0][i] = p.Stem.DisplayName()
		rows[1][i] = p.Branch.DisplayName()
	}
	return rows
}

// GroupByPillar returns [stem, branch] display names per pillar, ordered
// hour, day, month, year.
func (fp *FourPillars) GroupByPillar() [4][2]string {
	var pairs [4][2]string
	for i, p := range fp.Pillars() {
		pairs[i] = p.Names()
	}
	return pairs
}

// Map returns the eight display names keyed hourStem ... yearBranch.
func (fp *FourPillars) Map() map[string]string {
	return map[string]string{
		KeyHourStem:    fp.Hour.Stem.DisplayName(),
		KeyDayStem:     fp.Day.Stem.DisplayName(),
		KeyMonthStem:   fp.Month.Stem.DisplayName(),
		KeyYearStem:    fp.Year.Stem.DisplayName(),
		KeyHourBranch:  fp.Hour.Branch.DisplayName(),
		KeyDayBranch:   fp.Day.Branch.DisplayName(),
		KeyMonthBranch: fp.Month.Branch.DisplayName(),
		KeyYearBranch:  fp.Year.Branch.DisplayName(),
	}
}

func (fp *FourPillars) String() string {
	return fmt.Sprintf("%s %s %s %s", fp.Hour, fp.Day, fp.Month, fp.Year)
}

// MarshalJSON encodes all three views of the pillars.
func (fp *FourPillars) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ByStemBranch [2][4]string      `json:"array2d.groupByStemBranch"`
		ByPillar     [4][2]string      `json:"array2d.groupByPillar"`
		Map          map[string]string `json:"map"`
	}{
		ByStemBranch: fp.GroupByStemBranch(),
		ByPillar:     fp.GroupByPillar(),
		Map:          fp.Map(),
	})
}

// Calculator derives Four Pillars from instants using a solar-term provider
// for the month and year boundaries.
type Calculator struct {
	terms solarterm.Provider
}

// NewCalculator creates a calculator backed by terms.
func NewCalculator(terms solarterm.Provider) *Calculator {
	return &Calculator{terms: terms}
}

// Calculate returns the Four Pillars of t. Errors wrap ErrInvalidDatetime.
func (c *Calculator) Calculate(t time.Time) (*FourPillars, error) {
	_, _, fp, err := c.compute(t)
	return fp, err
}

func (c *Calculator) compute(t time.Time) (time.Time, solarterm.TermMonth, *FourPillars, error) {
	if t.IsZero() {
		return time.Time{}, solarterm.TermMonth{}, nil, fmt.Errorf("%w: zero time", ErrInvalidDatetime)
	}
	civil := Normalize(t)

	tm, err := c.terms.TermMonth(civil)
	if err != nil {
		return time.Time{}, solarterm.TermMonth{}, nil, fmt.Errorf("%w: %w", ErrInvalidDatetime, err)
	}
	if tm.Month < 1 || tm.Month > 12 {
		return time.Time{}, solarterm.TermMonth{}, nil, fmt.Errorf("%w: term month %d out of range", ErrInvalidDatetime, tm.Month)
	}

	yearStem := ganzhi.StemByIndex(tm.Year - 4)
	yearBranch := ganzhi.BranchByIndex(tm.Year - 4)

	monthStem := ganzhi.StemByIndex(((yearStem.Index() + 1) % 5) * 2).Shift(tm.Month - 1)
	monthBranch := ganzhi.BranchByIndex(tm.Month + 1)

	day := DayPillar(civil.Year(), civil.Month(), civil.Day())

	// The 23:00 segment counts as 12 here: it takes the stem of the next
	// day's 子 hour while the day pillar stays on the civil date.
	segment := HourSegment(civil)
	hour := ganzhi.Pillar{
		Stem:   ganzhi.StemByIndex(day.Stem.Index()*2 + segment),
		Branch: ganzhi.BranchByIndex(segment),
	}

	return civil, tm, &FourPillars{
		Hour:  hour,
		Day:   day,
		Month: ganzhi.Pillar{Stem: monthStem, Branch: monthBranch},
		Year:  ganzhi.Pillar{Stem: yearStem, Branch: yearBranch},
	}, nil
}

// HourSegment returns which two-hour segment of the UTC+8 civil day t falls
// in: 0 for 00:00-00:59, 1 for 01:00-02:59, ... 11 for 21:00-22:59 and 12
// for 23:00-23:59. Its value modulo 12 is the hour branch index.
func HourSegment(t time.Time) int {
	hour, min, sec := Normalize(t).Clock()
	return (hour*3600 + min*60 + sec + 3600) / 7200
}

// DayPillar returns the day pillar of a Gregorian civil date (years CE).
func DayPillar(year int, month time.Month, day int) ganzhi.Pillar {
	y, m, d := year, int(month), day
	// January and February count as months 13 and 14 of the prior year.
	if m <= 2 {
		y--
		m += 12
	}
	c := y / 100
	y %= 100

	g := 4*c + c/4 + 5*y + y/4 + 3*(m+1)/5 + d - 4
	z := 8*c + c/4 + 5*y + y/4 + 3*(m+1)/5 + d + 6
	if m%2 == 0 {
		z += 6
	}

	return ganzhi.Pillar{
		Stem:   ganzhi.StemByIndex(g),
		Branch: ganzhi.BranchByIndex(z),
	}
}
