package solarterm

import (
	"math"
	"time"
)

const (
	// unixEpochJD is the Julian date of 1970-01-01 00:00:00 UTC.
	unixEpochJD = 2440587.5

	// j2000 is the Julian date of the J2000.0 epoch.
	j2000 = 2451545.0
)

// JulianDay returns the Julian date (UT) of t.
func JulianDay(t time.Time) float64 {
	return unixEpochJD + float64(t.Unix())/86400 + float64(t.Nanosecond())/86400e9
}

// julianEphemerisDay returns the Julian date of t in Terrestrial Time.
func julianEphemerisDay(t time.Time) float64 {
	return JulianDay(t) + DeltaT(t)/86400
}

// DeltaT returns TT-UT in seconds for the instant t, using the polynomial
// fits of Espenak and Meeus (NASA, 2006).
func DeltaT(t time.Time) float64 {
	u := t.UTC()
	y := float64(u.Year()) + (float64(u.Month())-0.5)/12

	switch {
	case y < 1600:
		x := (y - 1000) / 100
		return 1574.2 - 556.01*x + 71.23472*x*x + 0.319781*math.Pow(x, 3) -
			0.8503463*math.Pow(x, 4) - 0.005050998*math.Pow(x, 5) + 0.0083572073*math.Pow(x, 6)
	case y < 1700:
		x := y - 1600
		return 120 - 0.9808*x - 0.01532*x*x + math.Pow(x, 3)/7129
	case y < 1800:
		x := y - 1700
		return 8.83 + 0.1603*x - 0.0059285*x*x + 0.00013336*math.Pow(x, 3) - math.Pow(x, 4)/1174000
	case y < 1860:
		x := y - 1800
		return 13.72 - 0.332447*x + 0.0068612*x*x + 0.0041116*math.Pow(x, 3) -
			0.00037436*math.Pow(x, 4) + 0.0000121272*math.Pow(x, 5) -
			0.0000001699*math.Pow(x, 6) + 0.000000000875*math.Pow(x, 7)
	case y < 1900:
		x := y - 1860
		return 7.62 + 0.5737*x - 0.251754*x*x + 0.01680668*math.Pow(x, 3) -
			0.0004473624*math.Pow(x, 4) + math.Pow(x, 5)/233174
	case y < 1920:
		x := y - 1900
		return -2.79 + 1.494119*x - 0.0598939*x*x + 0.0061966*math.Pow(x, 3) - 0.000197*math.Pow(x, 4)
	case y < 1941:
		x := y - 1920
		return 21.20 + 0.84493*x - 0.076100*x*x + 0.0020936*math.Pow(x, 3)
	case y < 1961:
		x := y - 1950
		return 29.07 + 0.407*x - x*x/233 + math.Pow(x, 3)/2547
	case y < 1986:
		x := y - 1975
		return 45.45 + 1.067*x - x*x/260 - math.Pow(x, 3)/718
	case y < 2005:
		x := y - 2000
		return 63.86 + 0.3345*x - 0.060374*x*x + 0.0017275*math.Pow(x, 3) +
			0.000651814*math.Pow(x, 4) + 0.00002373599*math.Pow(x, 5)
	case y < 2050:
		x := y - 2000
		return 62.92 + 0.32217*x + 0.005589*x*x
	case y < 2150:
		x := (y - 1820) / 100
		return -20 + 32*x*x - 0.5628*(2150-y)
	default:
		x := (y - 1820) / 100
		return -20 + 32*x*x
	}
}
