package chartglide

import (
	"math"
	"time"

	"github.com/mooncaker816/learnmeeus/v3/julian"
	"github.com/mooncaker816/learnmeeus/v3/solstice"
)

// The tropical zodiac is anchored to the equinoxes and solstices; these
// helpers return the instants the Sun reaches ecliptic longitude 0°,
// 90°, 180° and 270° for a year. Times are dynamical-time instants
// reported as UTC, good to a minute or two, which is ample for
// calendar-level almanac use.

// MarchEquinox returns the vernal (northward) equinox of the year.
func MarchEquinox(year int) time.Time {
	return jdeToTime(solstice.March(year))
}

// JuneSolstice returns the June solstice of the year.
func JuneSolstice(year int) time.Time {
	return jdeToTime(solstice.June(year))
}

// SeptemberEquinox returns the September (southward) equinox of the year.
func SeptemberEquinox(year int) time.Time {
	return jdeToTime(solstice.September(year))
}

// DecemberSolstice returns the December solstice of the year.
func DecemberSolstice(year int) time.Time {
	return jdeToTime(solstice.December(year))
}

func jdeToTime(jde float64) time.Time {
	y, m, d := julian.JDToCalendar(jde)
	day := int(d)
	sec := int64(math.Round((d - math.Floor(d)) * 86400))
	return time.Date(y, time.Month(m), day, 0, 0, 0, 0, time.UTC).
		Add(time.Duration(sec) * time.Second)
}
