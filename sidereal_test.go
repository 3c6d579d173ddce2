package chartglide_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/thurmanmarka/chartglide"
)

func TestLocalSiderealTime(t *testing.T) {
	ist := time.FixedZone("IST", 19800) // UTC+05:30

	tests := []struct {
		name string
		t    time.Time
		lon  float64
		want float64
		tol  float64
	}{
		{
			// T = 0 exactly: the polynomial reduces to its constant
			// term, 24110.54841 s = 6.697374558333 h, plus the scaled
			// 12 h UT term.
			name: "J2000 epoch, Greenwich",
			t:    time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC),
			lon:  0,
			want: 18.730229470542874,
			tol:  1e-9,
		},
		{
			name: "UTC offset honored",
			t:    time.Date(2004, time.July, 13, 8, 15, 30, 0, ist),
			lon:  82.5,
			want: 3.6877165793835154,
			tol:  1e-6,
		},
		{
			// Raw sum before reduction is about 58.61 h: a single
			// subtraction of 24 would leave 34.61. The full modulo
			// must bring it into [0,24).
			name: "double wraparound fully reduced",
			t:    time.Date(2026, time.August, 29, 23, 59, 59, 0, time.UTC),
			lon:  180,
			want: 10.612222202911,
			tol:  1e-6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := chartglide.LocalSiderealTime(tt.t, tt.lon)
			if err != nil {
				t.Fatalf("LocalSiderealTime() error = %v", err)
			}
			if got < 0 || got >= 24 {
				t.Errorf("LocalSiderealTime() = %v, outside [0,24)", got)
			}
			if math.Abs(got-tt.want) > tt.tol {
				t.Errorf("LocalSiderealTime() = %.12f, want %.12f", got, tt.want)
			}
		})
	}
}

func TestLocalSiderealTimeSameInstantDifferentZones(t *testing.T) {
	utc := time.Date(2024, time.March, 20, 3, 6, 0, 0, time.UTC)
	est := utc.In(time.FixedZone("EST", -5*3600))

	a, err := chartglide.LocalSiderealTime(utc, -74.006)
	if err != nil {
		t.Fatal(err)
	}
	b, err := chartglide.LocalSiderealTime(est, -74.006)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(a-b) > 1e-9 {
		t.Errorf("same instant in two zones: %v vs %v", a, b)
	}
}

func TestGreenwichSiderealTime(t *testing.T) {
	instant := time.Date(2024, time.June, 1, 18, 30, 0, 0, time.UTC)

	gst, err := chartglide.GreenwichSiderealTime(instant)
	if err != nil {
		t.Fatal(err)
	}
	lst, err := chartglide.LocalSiderealTime(instant, 0)
	if err != nil {
		t.Fatal(err)
	}
	if gst != lst {
		t.Errorf("GreenwichSiderealTime() = %v, want LST at lon 0 = %v", gst, lst)
	}
}

func TestRAMCIsLSTScaled(t *testing.T) {
	instants := []time.Time{
		time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC),
		time.Date(2013, time.November, 5, 4, 20, 45, 0, time.UTC),
		time.Date(2026, time.August, 29, 23, 59, 59, 0, time.UTC),
	}
	lons := []float64{-180, -74.006, 0, 82.5, 180}

	for _, instant := range instants {
		for _, lon := range lons {
			lst, err := chartglide.LocalSiderealTime(instant, lon)
			if err != nil {
				t.Fatal(err)
			}
			ramc, err := chartglide.RAMC(instant, lon)
			if err != nil {
				t.Fatal(err)
			}
			if ramc != lst*15 {
				t.Errorf("RAMC(%v, %v) = %v, want %v", instant, lon, ramc, lst*15)
			}
			if ramc < 0 || ramc >= 360 {
				t.Errorf("RAMC(%v, %v) = %v, outside [0,360)", instant, lon, ramc)
			}
		}
	}
}

func TestSiderealTimeRequiresInstant(t *testing.T) {
	var zero time.Time

	if _, err := chartglide.LocalSiderealTime(zero, 0); !errors.Is(err, chartglide.ErrMissingTime) {
		t.Errorf("LocalSiderealTime(zero) error = %v, want ErrMissingTime", err)
	}
	if _, err := chartglide.RAMC(zero, 0); !errors.Is(err, chartglide.ErrMissingTime) {
		t.Errorf("RAMC(zero) error = %v, want ErrMissingTime", err)
	}
	if _, err := chartglide.GreenwichSiderealTime(zero); !errors.Is(err, chartglide.ErrMissingTime) {
		t.Errorf("GreenwichSiderealTime(zero) error = %v, want ErrMissingTime", err)
	}
}

func TestPrecessionSpeed(t *testing.T) {
	got, err := chartglide.PrecessionSpeed(chartglide.DefaultPrecessionPeriodYears)
	if err != nil {
		t.Fatal(err)
	}
	if want := 360.0 / 25880.0 * 3600.0; math.Abs(got-want) > 1e-3 {
		t.Errorf("PrecessionSpeed(25880) = %v, want %v", got, want)
	}
	// ~50.08 arcsec/year
	if got < 50.0 || got > 50.2 {
		t.Errorf("PrecessionSpeed(25880) = %v, outside plausible band", got)
	}

	if _, err := chartglide.PrecessionSpeed(0); err == nil {
		t.Error("PrecessionSpeed(0) should fail")
	}
}
