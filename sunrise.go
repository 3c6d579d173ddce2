package chartglide

import (
	"time"

	"github.com/nathan-osman/go-sunrise"
	"github.com/soniakeys/unit"

	"github.com/thurmanmarka/chartglide/internal/sun"
)

// SunriseApprox returns the closed-form local sunrise approximation in
// decimal hours for the observer location and date, given the Sun's
// declination for that date (see SunDeclination).
//
// The result is intentionally left unnormalized and reproduces the
// source formula as transcribed, including its grouping of the
// hour-angle expression; compare against SunRiseAndSet before relying
// on it for clock-time output. Returns ErrNoSunrise when the Sun never
// crosses the rise altitude (polar day or night) or the latitude is at
// a pole.
func SunriseApprox(loc Coordinates, decl unit.Angle, date time.Time) (float64, error) {
	if date.IsZero() {
		return 0, ErrMissingTime
	}

	lat := unit.AngleFromDeg(loc.Lat)
	h, ok := sun.RiseHours(lat.Rad(), decl.Rad(), date)
	if !ok {
		return 0, ErrNoSunrise
	}
	return h, nil
}

// SunDeclination returns the Sun's approximate geocentric declination
// at the instant t, from a low-precision solar position model. It is
// the natural declination source for SunriseApprox.
func SunDeclination(t time.Time) (unit.Angle, error) {
	if t.IsZero() {
		return 0, ErrMissingTime
	}
	return sun.Declination(t), nil
}

// SunRiseAndSet returns reference sunrise and sunset times for the
// observer location on the calendar date of t. The returned times are
// in UTC.
func SunRiseAndSet(loc Coordinates, t time.Time) (rise, set time.Time) {
	year, month, day := t.Date()
	return sunrise.SunriseSunset(loc.Lat, loc.Lon, year, month, day)
}
