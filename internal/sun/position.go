package sun

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/unit"
)

// Declination returns the Sun's approximate geocentric declination at
// time t.
//
// This is a standard low-precision solar position model (mean anomaly,
// mean longitude, equation of center, mean obliquity), good to
// arcminute-level declination. It pairs with RiseHours, which wants a
// declination for the observer's date.
func Declination(t time.Time) unit.Angle {
	d := julian.TimeToJD(t) - 2451545.0

	// Mean anomaly of the Sun
	g := unit.AngleFromDeg(357.529 + 0.98560028*d)

	// Mean longitude of the Sun
	q := 280.459 + 0.98564736*d

	// Ecliptic longitude with equation of center
	L := unit.AngleFromDeg(q + 1.915*g.Sin() + 0.020*math.Sin(2*g.Rad()))

	// Mean obliquity of the ecliptic
	eps := unit.AngleFromDeg(23.439 - 0.00000036*d)

	return unit.Angle(math.Asin(eps.Sin() * L.Sin()))
}
