package solarterm

import (
	"math"
	"time"
)

// SunLongitude returns the apparent geocentric ecliptic longitude of the
// Sun at t, in degrees within [0, 360).
func SunLongitude(t time.Time) float64 {
	T := (julianEphemerisDay(t) - j2000) / 36525
	tau := T / 10

	// Earth's heliocentric longitude as a polynomial in τ.
	var l, pow float64 = 0, 1
	for _, series := range earthL {
		var sum float64
		for _, term := range series {
			sum += term.a * math.Cos(term.b+term.c*tau)
		}
		l += sum * pow
		pow *= tau
	}
	lon := rad2deg(l/1e8) + 180

	// FK5 frame correction.
	lon -= 0.09033 / 3600

	// Nutation in longitude.
	omega := deg2rad(125.04452 - 1934.136261*T)
	sunMean := deg2rad(280.4665 + 36000.7698*T)
	moonMean := deg2rad(218.3165 + 481267.8813*T)
	dpsi := -17.20*math.Sin(omega) - 1.32*math.Sin(2*sunMean) -
		0.23*math.Sin(2*moonMean) + 0.21*math.Sin(2*omega)
	lon += dpsi / 3600

	// Annual aberration, scaled by the Earth-Sun distance in AU.
	m := deg2rad(357.52911 + 35999.05029*T)
	r := 1.000140 - 0.016708*math.Cos(m) - 0.000139*math.Cos(2*m)
	lon -= 20.4898 / 3600 / r

	return normalize360(lon)
}

func deg2rad(d float64) float64 { return d * math.Pi / 180 }
func rad2deg(r float64) float64 { return r * 180 / math.Pi }

func normalize360(d float64) float64 {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	if d >= 360 {
		d = 0
	}
	return d
}
