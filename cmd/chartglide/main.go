package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	sexa "github.com/soniakeys/sexagesimal"
	"github.com/soniakeys/unit"

	"github.com/thurmanmarka/chartglide"
)

func main() {
	log.SetFlags(0)

	// If no args or first arg starts with "-", run chart mode (the
	// default). Otherwise treat the first arg as a subcommand.
	if len(os.Args) < 2 || strings.HasPrefix(os.Args[1], "-") {
		runChart(os.Args[1:])
		return
	}

	switch os.Args[1] {
	case "almanac":
		runAlmanac(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "unknown subcommand %q\n\n", os.Args[1])
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `chartglide – chart-orientation formulas

Usage:
  chartglide [flags]           # full chart orientation for one instant
  chartglide almanac [flags]   # day-by-day table for a month

Default mode flags (chart):
  -lat float
        latitude in degrees (north positive)
  -lon float
        longitude in degrees (east positive, west negative)
  -tz string
        IANA time zone name (default "UTC")
  -time string
        instant in RFC3339 or 'YYYY-MM-DDTHH:MM' (defaults to now in tz)
  -json
        output result as JSON

For almanac mode:
  chartglide almanac -h
`)
}

// ---------------------
// Chart (default) mode
// ---------------------

func runChart(args []string) {
	fs := flag.NewFlagSet("chartglide", flag.ExitOnError)

	lat := fs.Float64("lat", 0, "latitude in degrees (north positive)")
	lon := fs.Float64("lon", 0, "longitude in degrees (east positive, west negative)")
	tzName := fs.String("tz", "UTC", "IANA time zone name (e.g. Europe/Vienna)")
	timeStr := fs.String("time", "", "instant in RFC3339 or 'YYYY-MM-DDTHH:MM' (optional, defaults to now in tz)")
	jsonOut := fs.Bool("json", false, "output result as JSON")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: chartglide [flags]

Flags:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		log.Fatalf("failed to parse flags: %v", err)
	}

	if *lat == 0 && *lon == 0 {
		log.Println("warning: lat=0 lon=0 (Gulf of Guinea). Use -lat and -lon to set a real location.")
	}

	t := parseInstant(*tzName, *timeStr)

	chart, err := chartglide.ChartAt(chartglide.Coordinates{Lat: *lat, Lon: *lon}, t)
	if err != nil {
		log.Fatalf("error computing chart: %v", err)
	}

	if *jsonOut {
		printJSON(chart)
	} else {
		printHuman(chart)
	}
}

// parseInstant resolves -tz and -time into a concrete time.Time,
// defaulting to now in the given zone.
func parseInstant(tzName, timeStr string) time.Time {
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		log.Fatalf("invalid time zone %q: %v", tzName, err)
	}

	if timeStr == "" {
		return time.Now().In(loc)
	}

	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04",
		"2006-01-02 15:04",
		"2006-01-02",
	}
	var t time.Time
	var parseErr error
	for _, layout := range layouts {
		t, parseErr = time.ParseInLocation(layout, timeStr, loc)
		if parseErr == nil {
			return t
		}
	}
	log.Fatalf("could not parse -time %q: %v", timeStr, parseErr)
	return time.Time{}
}

func printHuman(c chartglide.Chart) {
	fmt.Printf("Chart orientation for lat=%.6f lon=%.6f\n", c.Place.Lat, c.Place.Lon)
	fmt.Printf("Instant: %s (%s)\n\n", c.Time.Format(time.RFC3339), c.Time.Location())

	fmt.Printf("  LST      : %.2s  (%.6f h)\n", sexa.FmtRA(unit.RAFromHour(c.LST)), c.LST)
	fmt.Printf("  RAMC     : %.1s  (%.4f°)\n", sexa.FmtAngle(unit.AngleFromDeg(c.RAMC)), c.RAMC)
	fmt.Printf("  Sun sign : %s (%d)\n", c.SunSign, int(c.SunSign))
	fmt.Printf("  Tithi    : %d %s (%s paksha)\n", int(c.Tithi), c.Tithi.Name(), c.Tithi.Paksha())
	fmt.Printf("  EoT      : %+.2f min\n", c.EquationOfTime)
	if c.HasSunrise {
		fmt.Printf("  Rise est : %.4f h (closed-form, unnormalized)\n", c.SunriseApprox)
	} else {
		fmt.Printf("  Rise est : none (sun does not cross the horizon)\n")
	}
	fmt.Printf("  Sunrise  : %s\n", c.Sunrise.Format(time.RFC3339))
	fmt.Printf("  Sunset   : %s\n", c.Sunset.Format(time.RFC3339))
}

type jsonOutput struct {
	Latitude  float64    `json:"latitude"`
	Longitude float64    `json:"longitude"`
	Instant   time.Time  `json:"instant"`
	Timezone  string     `json:"timezone"`
	LST       float64    `json:"lst_hours"`
	RAMC      float64    `json:"ramc_degrees"`
	SunSign   string     `json:"sun_sign"`
	SignIndex int        `json:"sign_index"`
	Tithi     int        `json:"tithi"`
	TithiName string     `json:"tithi_name"`
	Paksha    string     `json:"paksha"`
	EoTMin    float64    `json:"equation_of_time_min"`
	RiseEst   *float64   `json:"sunrise_approx_hours,omitempty"`
	Sunrise   *time.Time `json:"sunrise,omitempty"`
	Sunset    *time.Time `json:"sunset,omitempty"`
}

func printJSON(c chartglide.Chart) {
	out := jsonOutput{
		Latitude:  c.Place.Lat,
		Longitude: c.Place.Lon,
		Instant:   c.Time,
		Timezone:  c.Time.Location().String(),
		LST:       c.LST,
		RAMC:      c.RAMC,
		SunSign:   c.SunSign.String(),
		SignIndex: int(c.SunSign),
		Tithi:     int(c.Tithi),
		TithiName: c.Tithi.Name(),
		Paksha:    c.Tithi.Paksha(),
		EoTMin:    c.EquationOfTime,
	}
	if c.HasSunrise {
		out.RiseEst = &c.SunriseApprox
	}
	if !c.Sunrise.IsZero() {
		out.Sunrise = &c.Sunrise
	}
	if !c.Sunset.IsZero() {
		out.Sunset = &c.Sunset
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatalf("failed to encode JSON: %v", err)
	}
}

// ---------------------
// Almanac subcommand
// ---------------------

func runAlmanac(args []string) {
	fs := flag.NewFlagSet("almanac", flag.ExitOnError)

	lat := fs.Float64("lat", 0, "latitude in degrees (north positive)")
	lon := fs.Float64("lon", 0, "longitude in degrees (east positive, west negative)")
	monthS := fs.String("month", "", "month as YYYY-MM (defaults to the current month, UTC)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: chartglide almanac [flags]

Prints one line per day: tithi, Sun sign, equation of time and
reference sunrise/sunset for the given location.

Flags:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		log.Fatalf("failed to parse flags: %v", err)
	}

	var first time.Time
	if *monthS == "" {
		now := time.Now().UTC()
		first = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	} else {
		var err error
		first, err = time.Parse("2006-01", *monthS)
		if err != nil {
			log.Fatalf("invalid -month %q: %v", *monthS, err)
		}
	}

	loc := chartglide.Coordinates{Lat: *lat, Lon: *lon}

	fmt.Printf("Almanac for %s, lat=%.4f lon=%.4f\n\n", first.Format("January 2006"), *lat, *lon)
	fmt.Printf("%-12s %-22s %-12s %8s %10s %10s\n",
		"Date", "Tithi", "Sun sign", "EoT", "Sunrise", "Sunset")

	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		c, err := chartglide.ChartAt(loc, d.Add(12*time.Hour))
		if err != nil {
			log.Fatalf("error computing %s: %v", d.Format("2006-01-02"), err)
		}

		eot := fmt.Sprintf("%+.1fm", c.EquationOfTime)
		fmt.Printf("%-12s %-22s %-12s %8s %10s %10s\n",
			d.Format("2006-01-02"),
			fmt.Sprintf("%d %s", int(c.Tithi), c.Tithi.Name()),
			c.SunSign,
			eot,
			c.Sunrise.Format("15:04:05"),
			c.Sunset.Format("15:04:05"))
	}
}
