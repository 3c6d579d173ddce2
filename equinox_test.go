package chartglide_test

import (
	"testing"

	"github.com/thurmanmarka/chartglide"
)

func TestEquinoxAndSolsticeDates(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"march 1900", chartglide.MarchEquinox(1900).Format("2006-01-02"), "1900-03-21"},
		{"june 2022", chartglide.JuneSolstice(2022).Format("2006-01-02"), "2022-06-21"},
		{"september 2023", chartglide.SeptemberEquinox(2023).Format("2006-01-02"), "2023-09-23"},
		{"december 2024", chartglide.DecemberSolstice(2024).Format("2006-01-02"), "2024-12-21"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %s, want %s", tt.got, tt.want)
			}
		})
	}
}

func TestEquinoxOrdering(t *testing.T) {
	year := 2025
	march := chartglide.MarchEquinox(year)
	june := chartglide.JuneSolstice(year)
	september := chartglide.SeptemberEquinox(year)
	december := chartglide.DecemberSolstice(year)

	if !june.After(march) || !september.After(june) || !december.After(september) {
		t.Errorf("seasonal instants out of order: %v %v %v %v",
			march, june, september, december)
	}
}
