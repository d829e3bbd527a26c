package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/zapponejosh/fourpillars/internal/calendar"
	"github.com/zapponejosh/fourpillars/internal/solarterm"
)

// Prints the four pillars and officer of every day in a month, followed by
// the solar terms that fall inside it. Handy for checking results against a
// printed almanac.

func main() {
	now := time.Now().In(calendar.CivilZone)
	year := flag.Int("year", now.Year(), "Year to print")
	month := flag.Int("month", int(now.Month()), "Month to print (1-12)")
	at := flag.String("at", "", "Print a single instant instead, e.g. 2024-02-04T16:30:00")
	flag.Parse()

	calc := calendar.NewCalculator(solarterm.NewAstronomical())

	if *at != "" {
		if err := printInstant(calc, *at); err != nil {
			fmt.Fprintf(os.Stderr, "almanac: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *month < 1 || *month > 12 {
		fmt.Fprintf(os.Stderr, "almanac: month must be between 1 and 12, got %d\n", *month)
		os.Exit(2)
	}

	if err := printMonth(calc, *year, time.Month(*month)); err != nil {
		fmt.Fprintf(os.Stderr, "almanac: %v\n", err)
		os.Exit(1)
	}
}

func printInstant(calc *calendar.Calculator, value string) error {
	t, err := calendar.ParseDatetime(value)
	if err != nil {
		return err
	}

	a, err := calc.Almanac(t)
	if err != nil {
		return err
	}

	fmt.Printf("Instant:    %s\n", a.Time.In(calendar.CivilZone).Format(time.RFC3339))
	fmt.Printf("Term month: %d (term year %d)\n", a.TermMonth.Month, a.TermMonth.Year)
	fmt.Printf("Pillars:    %s\n", a.Pillars)
	fmt.Printf("Daily god:  %s\n", a.DailyGod)
	return nil
}

func printMonth(calc *calendar.Calculator, year int, month time.Month) error {
	start := time.Date(year, month, 1, 0, 0, 0, 0, calendar.CivilZone)
	end := start.AddDate(0, 1, -1)

	days, err := calc.Days(start, end)
	if err != nil {
		return err
	}

	fmt.Printf("=== %s %d (UTC+8) ===\n\n", month, year)
	fmt.Println("Date,Weekday,Year,Month,Day,Daily God")
	for _, a := range days {
		fp := a.Pillars
		fmt.Printf("%s,%s,%s,%s,%s,%s\n",
			calendar.FormatDate(a.Time),
			a.Time.In(calendar.CivilZone).Weekday(),
			fp.Year, fp.Month, fp.Day, a.DailyGod)
	}

	terms, err := solarterm.Terms(year)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("Solar terms:")
	for _, term := range terms {
		local := term.Time.In(calendar.CivilZone)
		if local.Month() != month {
			continue
		}
		fmt.Printf("  %s  %s\n", term.Name, local.Format("2006-01-02 15:04:05"))
	}
	return nil
}
