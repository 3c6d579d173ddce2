package sun

import (
	"math"
	"time"
)

// EquationOfTime returns the difference between apparent and mean solar
// time, in minutes, for the given date. It uses a fixed low-order
// Fourier fit to the analemma with a 365-day cycle; no leap-year
// correction is applied, so the curve drifts by up to a day around leap
// days. Good to roughly half a minute.
func EquationOfTime(date time.Time) float64 {
	d := date.YearDay()
	B := 2 * math.Pi * float64(d-81) / 365
	return 7.53*math.Cos(B) + 1.5*math.Sin(B) - 9.87*math.Sin(2*B)
}
