// Package zodiac maps Gregorian calendar days to Western tropical
// zodiac sign indices via fixed cusp tables.
package zodiac

// Sign indices run 1=Aries through 12=Pisces.

// cuspDay[m] is the day of month m on which the sign changes.
var cuspDay = [13]int{0, 21, 19, 21, 20, 21, 21, 23, 23, 23, 23, 22, 22}

// beforeCusp[m] is the sign for days of month m before the cusp,
// fromCusp[m] the sign from the cusp day onward.
var (
	beforeCusp = [13]int{0, 10, 11, 12, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	fromCusp   = [13]int{0, 11, 12, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
)

// maxDay[m] is the greatest valid day of month m. February admits 29;
// no year is supplied, so the leap-day case must be accepted.
var maxDay = [13]int{0, 31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// Valid reports whether (day, month) is a calendar day this package
// can classify.
func Valid(day, month int) bool {
	if month < 1 || month > 12 {
		return false
	}
	return day >= 1 && day <= maxDay[month]
}

// SignAt returns the sign index in [1,12] for a valid (day, month).
func SignAt(day, month int) int {
	if day < cuspDay[month] {
		return beforeCusp[month]
	}
	return fromCusp[month]
}
