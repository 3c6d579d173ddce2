package chartglide

import (
	"fmt"

	"github.com/thurmanmarka/chartglide/internal/tithi"
	"github.com/thurmanmarka/chartglide/internal/zodiac"
)

// Tithi is a lunar-day index in [1,30]: 30 divisions of the synodic
// month, 12° of Sun-Moon relative longitude each. Tithis 1-15 form the
// waxing (Shukla) fortnight, 16-30 the waning (Krishna) fortnight.
type Tithi int

// Name returns the traditional name of the tithi, e.g. "Purnima" for
// 15 or "Amavasya" for 30.
func (t Tithi) Name() string {
	if t < 1 || t > 30 {
		return fmt.Sprintf("Tithi(%d)", int(t))
	}
	return tithi.Names[t-1]
}

// Paksha returns the lunar fortnight the tithi falls in: "Shukla"
// (waxing) for 1-15, "Krishna" (waning) for 16-30.
func (t Tithi) Paksha() string {
	switch {
	case t >= 1 && t <= 15:
		return "Shukla"
	case t >= 16 && t <= 30:
		return "Krishna"
	default:
		return ""
	}
}

// TithiHarvey returns the lunar-day index for a Gregorian calendar day
// using Harvey's closed-form remainder formula. The formula is
// calibrated for the 20th and 21st centuries and is accurate to about
// one tithi there. Years whose century divisor is zero (years 0-99,
// and January/February of year 100) return ErrYearOutOfRange.
func TithiHarvey(day, month, year int) (Tithi, error) {
	if month < 1 || month > 12 {
		return 0, fmt.Errorf("month %d out of range [1,12]", month)
	}
	if !zodiac.Valid(day, month) {
		return 0, fmt.Errorf("day %d invalid for month %d", day, month)
	}

	t, ok := tithi.Harvey(day, month, year)
	if !ok {
		return 0, ErrYearOutOfRange
	}
	return Tithi(t), nil
}
