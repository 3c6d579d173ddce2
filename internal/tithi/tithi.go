// Package tithi computes the lunar-day index of the Hindu almanac by
// Harvey's closed-form remainder method. No ephemeris is consulted; the
// formula tracks the synodic month to about one tithi near its
// calibration era (20th and 21st centuries) and drifts slowly outside
// it.
package tithi

import "math"

// Names lists the thirty tithi of a synodic month in order. Index 0 is
// tithi 1 (Shukla Pratipada), index 29 is tithi 30 (Amavasya).
var Names = [30]string{
	"Pratipada", "Dwitiya", "Tritiya", "Chaturthi", "Panchami",
	"Shashthi", "Saptami", "Ashtami", "Navami", "Dashami",
	"Ekadashi", "Dwadashi", "Trayodashi", "Chaturdashi", "Purnima",
	"Pratipada", "Dwitiya", "Tritiya", "Chaturthi", "Panchami",
	"Shashthi", "Saptami", "Ashtami", "Navami", "Dashami",
	"Ekadashi", "Dwadashi", "Trayodashi", "Chaturdashi", "Amavasya",
}

// Harvey returns the tithi index in [1,30] for a Gregorian calendar
// day. The second return is false when the year falls outside the
// formula's supported range (the century divisor would be zero).
//
// January and February are treated as months 13 and 14 of the previous
// year, the usual shift for century-based calendrical formulas. The
// century correction eq1 follows the Gregorian leap-century structure;
// its additive calibration constant was fitted against eclipse new
// moons of the 20th and 21st centuries.
func Harvey(day, month, year int) (int, bool) {
	if month <= 2 {
		month += 12
		year--
	}

	eq := year / 100
	if eq == 0 {
		return 0, false
	}
	eq1 := eq - eq/4 + 12

	yc := float64(year) / float64(eq)
	frac := yc - math.Floor(yc)

	eq2 := (math.Round(frac*209) + float64(month+eq1+day)) / 30
	return int(math.Round((eq2-math.Floor(eq2))*30 + 1)), true
}
