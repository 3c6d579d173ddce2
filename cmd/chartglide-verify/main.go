// Command chartglide-verify sweeps a year of dates and compares the
// closed-form sunrise approximation against the go-sunrise reference,
// reporting divergence statistics. The approximation reproduces its
// source formula literally (including its unit mixing), so this tool
// exists to quantify how far from a clock sunrise it actually lands
// before anyone treats it as one.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"time"

	"github.com/thurmanmarka/chartglide"
)

type stats struct {
	count int
	sum   float64
	min   float64
	max   float64
}

func (s *stats) add(v float64) {
	if math.IsNaN(v) {
		return
	}
	if s.count == 0 {
		s.min, s.max = v, v
	} else {
		if v < s.min {
			s.min = v
		}
		if v > s.max {
			s.max = v
		}
	}
	s.sum += v
	s.count++
}

func (s *stats) mean() float64 {
	if s.count == 0 {
		return math.NaN()
	}
	return s.sum / float64(s.count)
}

func main() {
	var (
		lat     = flag.Float64("lat", 0, "latitude in degrees (north positive)")
		lon     = flag.Float64("lon", 0, "longitude in degrees (east positive, west negative)")
		year    = flag.Int("year", time.Now().UTC().Year(), "year to sweep")
		verbose = flag.Bool("verbose", false, "log per-day values instead of only the summary")
		outCSV  = flag.String("outcsv", "", "optional path to write per-day CSV (date,approx_hours,reference_hours,diff_hours)")
	)
	flag.Parse()
	log.SetFlags(0)

	loc := chartglide.Coordinates{Lat: *lat, Lon: *lon}

	var w *csv.Writer
	if *outCSV != "" {
		f, err := os.Create(*outCSV)
		if err != nil {
			log.Fatalf("cannot create -outcsv %q: %v", *outCSV, err)
		}
		defer f.Close()
		w = csv.NewWriter(f)
		defer w.Flush()
		_ = w.Write([]string{"date", "approx_hours", "reference_hours", "diff_hours"})
	}

	var diff stats
	skipped := 0

	first := time.Date(*year, time.January, 1, 12, 0, 0, 0, time.UTC)
	for d := first; d.Year() == *year; d = d.AddDate(0, 0, 1) {
		decl, err := chartglide.SunDeclination(d)
		if err != nil {
			log.Fatalf("declination for %s: %v", d.Format("2006-01-02"), err)
		}

		approx, err := chartglide.SunriseApprox(loc, decl, d)
		if err != nil {
			// Polar day/night: the formula has no answer here.
			skipped++
			continue
		}

		rise, _ := chartglide.SunRiseAndSet(loc, d)
		if rise.IsZero() {
			skipped++
			continue
		}
		refHours := float64(rise.Hour()) +
			float64(rise.Minute())/60 +
			float64(rise.Second())/3600

		dv := approx - refHours
		diff.add(dv)

		if *verbose {
			log.Printf("%s approx=%8.4fh ref=%8.4fh diff=%+8.4fh",
				d.Format("2006-01-02"), approx, refHours, dv)
		}
		if w != nil {
			_ = w.Write([]string{
				d.Format("2006-01-02"),
				fmt.Sprintf("%.4f", approx),
				fmt.Sprintf("%.4f", refHours),
				fmt.Sprintf("%.4f", dv),
			})
		}
	}

	fmt.Printf("Sunrise approximation vs reference, %d, lat=%.4f lon=%.4f\n", *year, *lat, *lon)
	fmt.Printf("  days compared : %d (skipped %d)\n", diff.count, skipped)
	if diff.count > 0 {
		fmt.Printf("  diff hours    : mean %+.4f  min %+.4f  max %+.4f\n",
			diff.mean(), diff.min, diff.max)
	}
}
