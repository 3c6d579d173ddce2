// Package sidereal implements the mean sidereal time reduction used to
// orient a horoscope chart: Greenwich sidereal time from the standard
// polynomial in Julian centuries, local sidereal time for an observer
// longitude, and the right ascension of the midheaven.
package sidereal

import (
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/unit"
)

// solarToSiderealRate is the ratio of the mean sidereal day rate to the
// mean solar day rate.
const solarToSiderealRate = 1.002737909350795

// j2000 is the Julian Day of the J2000.0 epoch.
const j2000 = 2451545.0

// gstPoly evaluates the Greenwich mean sidereal time polynomial at T
// Julian centuries since J2000.0. The result is in seconds of time,
// unreduced.
func gstPoly(T float64) unit.Time {
	return unit.Time(24110.54841 + T*(8640184.812866+T*(0.093104-0.0000062*T)))
}

// GreenwichAt returns the mean sidereal time polynomial value for the
// instant t, reduced into one sidereal day [0s, 86400s).
func GreenwichAt(t time.Time) unit.Time {
	T := (julian.TimeToJD(t) - j2000) / 36525
	return gstPoly(T).Mod1()
}

// LocalAt returns local sidereal time in decimal hours [0, 24) for the
// instant t at the given longitude (degrees, east positive).
//
// The UT term uses the wall-clock fields of t together with its zone
// offset, so t may carry any location; the same instant expressed in a
// different zone yields the same result.
func LocalAt(t time.Time, lonDeg float64) float64 {
	hourS0 := GreenwichAt(t).Hour()
	hourLng := lonDeg / 15

	_, offset := t.Zone()
	hourOffset := float64(offset) / 3600
	hourUT := float64(t.Hour()) +
		float64(t.Minute())/60 +
		float64(t.Second())/3600 -
		hourOffset

	lst := hourS0 + hourLng + hourUT*solarToSiderealRate

	// Reduce with a true modulo. A raw value here can exceed 48 hours
	// (late UT, far-east longitude), so a single subtraction of 24 is
	// not enough.
	return unit.PMod(lst, 24)
}

// MidheavenRA returns the right ascension of the midheaven in degrees,
// local sidereal time converted from hours to degrees.
func MidheavenRA(t time.Time, lonDeg float64) float64 {
	return LocalAt(t, lonDeg) * 15
}
