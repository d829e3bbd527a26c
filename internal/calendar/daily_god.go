package calendar

import (
	"encoding/json"
	"time"

	"github.com/zapponejosh/fourpillars/internal/cyclic"
)

// DailyGod is one of the Twelve Officers (建除十二神) that govern days in
// rotation.
type DailyGod struct {
	index int
	name  string
}

var dailyGods = cyclic.New(
	DailyGod{0, "建"},
	DailyGod{1, "除"},
	DailyGod{2, "滿"},
	DailyGod{3, "平"},
	DailyGod{4, "定"},
	DailyGod{5, "執"},
	DailyGod{6, "破"},
	DailyGod{7, "危"},
	DailyGod{8, "成"},
	DailyGod{9, "收"},
	DailyGod{10, "開"},
	DailyGod{11, "閉"},
)

// DailyGodByIndex returns the officer at n modulo 12.
func DailyGodByIndex(n int) DailyGod { return dailyGods.ByIndex(n) }

// DailyGodByName looks an officer up by display name.
func DailyGodByName(name string) (DailyGod, bool) { return dailyGods.ByName(name) }

// DailyGods returns the twelve officers in cycle order.
func DailyGods() []DailyGod { return dailyGods.All() }

func (g DailyGod) Index() int          { return g.index }
func (g DailyGod) DisplayName() string { return g.name }
func (g DailyGod) String() string      { return g.name }

// Shift returns the officer i places further along the cycle.
func (g DailyGod) Shift(i int) DailyGod { return dailyGods.Shift(g, i) }

// MarshalJSON encodes the officer as {"index":n,"displayName":"..."}.
func (g DailyGod) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Index       int    `json:"index"`
		DisplayName string `json:"displayName"`
	}{g.index, g.name})
}

// DailyGodOf returns the officer for a set of pillars: 建 falls on the day
// whose branch matches the month branch, and the rest follow in order.
func DailyGodOf(fp *FourPillars) DailyGod {
	return DailyGodByIndex(fp.Day.Branch.Index() - fp.Month.Branch.Index())
}

// DailyGod returns the officer governing the day of t.
func (c *Calculator) DailyGod(t time.Time) (DailyGod, error) {
	fp, err := c.Calculate(t)
	if err != nil {
		return DailyGod{}, err
	}
	return DailyGodOf(fp), nil
}
