// Package chartglide provides the closed-form astronomical formulas a
// horoscope/almanac pipeline needs to orient a chart to a place and
// instant: a declination-based sunrise approximation, the equation of
// time, a lunar-day (tithi) index, Western zodiac sign lookup, the
// precession rate of the equinoxes, and Local Sidereal Time with the
// Right Ascension of the Midheaven derived from it.
//
// Every function is a self-contained pure computation: no state, no
// I/O, safe for concurrent use. Julian Day numbers come from
// github.com/soniakeys/meeus and angle/time unit handling from
// github.com/soniakeys/unit.
package chartglide

import (
	"errors"
	"fmt"
	"time"

	"github.com/soniakeys/unit"

	"github.com/thurmanmarka/chartglide/internal/sidereal"
	"github.com/thurmanmarka/chartglide/internal/sun"
	"github.com/thurmanmarka/chartglide/internal/tithi"
	"github.com/thurmanmarka/chartglide/internal/zodiac"
)

// Coordinates represent an observer's location.
type Coordinates struct {
	Lat float64 // degrees, north positive
	Lon float64 // degrees, east positive (west negative, e.g. -105 for 105°W)
}

var (
	// ErrMissingTime is returned when a required date/time argument is
	// the zero time.Time.
	ErrMissingTime = errors.New("date/time is required")

	// ErrNoSunrise is returned when the Sun never crosses the rise
	// altitude for the given latitude and declination.
	ErrNoSunrise = errors.New("sun does not cross the rise altitude at this latitude and declination")

	// ErrYearOutOfRange is returned for years the tithi formula cannot
	// handle (its century divisor would be zero).
	ErrYearOutOfRange = errors.New("year not supported by the tithi formula")
)

// EquationOfTime returns the equation of time for the given date, in
// minutes: apparent (sundial) solar time minus mean solar time, from a
// fixed low-order Fourier approximation. No leap-year correction is
// applied.
func EquationOfTime(date time.Time) (float64, error) {
	if date.IsZero() {
		return 0, ErrMissingTime
	}
	return sun.EquationOfTime(date), nil
}

// LocalSiderealTime returns Local Sidereal Time in decimal hours,
// normalized into [0,24), for the instant t and an observer longitude
// in degrees (east positive). t must be non-zero; its zone offset is
// honored.
func LocalSiderealTime(t time.Time, lonDeg float64) (float64, error) {
	if t.IsZero() {
		return 0, ErrMissingTime
	}
	return sidereal.LocalAt(t, lonDeg), nil
}

// GreenwichSiderealTime returns mean sidereal time at the Greenwich
// meridian in decimal hours [0,24) for the instant t.
func GreenwichSiderealTime(t time.Time) (float64, error) {
	return LocalSiderealTime(t, 0)
}

// RAMC returns the Right Ascension of the Midheaven in degrees for the
// instant t and observer longitude: Local Sidereal Time converted from
// hours to degrees. Chart house systems hang off this angle.
func RAMC(t time.Time, lonDeg float64) (float64, error) {
	if t.IsZero() {
		return 0, ErrMissingTime
	}
	return sidereal.MidheavenRA(t, lonDeg), nil
}

// DefaultPrecessionPeriodYears is the approximate period of Earth's
// axial precession.
const DefaultPrecessionPeriodYears = 25880.0

// PrecessionSpeed returns the angular speed of the precession of the
// equinoxes in arcseconds per year for a precession period given in
// years. Use DefaultPrecessionPeriodYears for the conventional value.
func PrecessionSpeed(periodYears float64) (float64, error) {
	if periodYears == 0 {
		return 0, fmt.Errorf("precession period must be non-zero")
	}
	return 360 / periodYears * 3600, nil
}

// Chart collects every chart-orientation quantity this library can
// evaluate for one place and instant.
type Chart struct {
	Time  time.Time
	Place Coordinates

	LST  float64 // local sidereal time, decimal hours [0,24)
	RAMC float64 // right ascension of the midheaven, degrees

	SunSign Sign  // tropical sign holding the Sun's calendar date
	Tithi   Tithi // lunar day by Harvey's formula

	EquationOfTime float64 // minutes

	// SunriseApprox is the closed-form sunrise approximation in
	// unnormalized decimal hours; valid only when HasSunrise is true.
	SunriseApprox float64
	HasSunrise    bool

	// Sunrise and Sunset are the reference rise/set times (UTC).
	Sunrise time.Time
	Sunset  time.Time
}

// ChartAt evaluates all chart-orientation quantities for the given
// place and instant. At latitudes where the Sun does not rise,
// HasSunrise is false and SunriseApprox is zero; everything else is
// still computed.
func ChartAt(loc Coordinates, t time.Time) (Chart, error) {
	if t.IsZero() {
		return Chart{}, ErrMissingTime
	}

	year, month, day := t.Date()

	td, ok := tithi.Harvey(day, int(month), year)
	if !ok {
		return Chart{}, ErrYearOutOfRange
	}

	c := Chart{
		Time:           t,
		Place:          loc,
		LST:            sidereal.LocalAt(t, loc.Lon),
		SunSign:        Sign(zodiac.SignAt(day, int(month))),
		Tithi:          Tithi(td),
		EquationOfTime: sun.EquationOfTime(t),
	}
	c.RAMC = c.LST * 15

	decl := sun.Declination(t)
	if rise, ok := sun.RiseHours(unit.AngleFromDeg(loc.Lat).Rad(), decl.Rad(), t); ok {
		c.SunriseApprox = rise
		c.HasSunrise = true
	}

	c.Sunrise, c.Sunset = SunRiseAndSet(loc, t)

	return c, nil
}
