package chartglide

import (
	"fmt"

	"github.com/thurmanmarka/chartglide/internal/zodiac"
)

// Sign is a Western tropical zodiac sign, numbered 1=Aries through
// 12=Pisces.
type Sign int

const (
	Aries Sign = 1 + iota
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces
)

var signNames = [13]string{
	"", "Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

func (s Sign) String() string {
	if s < Aries || s > Pisces {
		return fmt.Sprintf("Sign(%d)", int(s))
	}
	return signNames[s]
}

// ZodiacSign returns the tropical sign holding the given Gregorian
// calendar day. Out-of-range months or days are rejected, not wrapped.
func ZodiacSign(day, month int) (Sign, error) {
	if month < 1 || month > 12 {
		return 0, fmt.Errorf("month %d out of range [1,12]", month)
	}
	if !zodiac.Valid(day, month) {
		return 0, fmt.Errorf("day %d invalid for month %d", day, month)
	}
	return Sign(zodiac.SignAt(day, month)), nil
}
