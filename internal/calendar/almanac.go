package calendar

import (
	"time"

	"github.com/zapponejosh/fourpillars/internal/solarterm"
)

// Almanac is everything the calculator knows about one instant.
type Almanac struct {
	Time      time.Time           `json:"time"`
	TermMonth solarterm.TermMonth `json:"termMonth"`
	Pillars   *FourPillars        `json:"pillars"`
	DailyGod  DailyGod            `json:"dailyGod"`
}

// Almanac returns the pillars, officer and term month of t, with the
// instant normalized to UTC+8.
func (c *Calculator) Almanac(t time.Time) (*Almanac, error) {
	civil, tm, fp, err := c.compute(t)
	if err != nil {
		return nil, err
	}
	return &Almanac{
		Time:      civil,
		TermMonth: tm,
		Pillars:   fp,
		DailyGod:  DailyGodOf(fp),
	}, nil
}

// Days returns one almanac per civil day from start to end inclusive,
// each taken at noon UTC+8. It stops at the first failing day.
func (c *Calculator) Days(start, end time.Time) ([]*Almanac, error) {
	s, e := Normalize(start), Normalize(end)
	day := time.Date(s.Year(), s.Month(), s.Day(), 12, 0, 0, 0, CivilZone)
	last := time.Date(e.Year(), e.Month(), e.Day(), 12, 0, 0, 0, CivilZone)

	var days []*Almanac
	for !day.After(last) {
		a, err := c.Almanac(day)
		if err != nil {
			return nil, err
		}
		days = append(days, a)
		day = day.AddDate(0, 0, 1)
	}
	return days, nil
}
