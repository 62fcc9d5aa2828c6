// Command genfixture generates a synthetic step-activity archive for test
// fixtures and local runs. It writes a zip containing activity.csv with the
// full two-month interval grid, a deterministic step pattern, and a
// configurable set of fully missing days.
//
// Usage:
//
//	go run ./cmd/genfixture -out testdata/activity.zip -missing-days 8 -seed 42
package main

import (
	"archive/zip"
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/quantself/step-report/internal/domain"
)

var (
	firstDate = domain.Date(2012, time.October, 1)
	lastDate  = domain.Date(2012, time.November, 30)
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	out := flag.String("out", "", "output path for the zip archive")
	missingDays := flag.Int("missing-days", 8, "number of days recorded entirely as NA")
	missingSlotRate := flag.Float64("missing-slot-rate", 0, "probability of an individual NA slot on an otherwise present day")
	seed := flag.Int64("seed", 42, "random seed for the step pattern")
	flag.Parse()

	if *out == "" {
		flag.Usage()
		return fmt.Errorf("missing required flag: -out")
	}
	if *missingSlotRate < 0 || *missingSlotRate > 1 {
		return fmt.Errorf("-missing-slot-rate %g must be in [0, 1]", *missingSlotRate)
	}

	rng := rand.New(rand.NewSource(*seed))

	dates := dateRange(firstDate, lastDate)
	if *missingDays > len(dates) {
		return fmt.Errorf("-missing-days %d exceeds %d days in range", *missingDays, len(dates))
	}
	missing := pickMissingDays(rng, dates, *missingDays)

	records := buildRecords(rng, dates, missing, *missingSlotRate)

	if err := writeArchive(*out, records); err != nil {
		return err
	}

	log.Printf("wrote %s: %d rows, %d days (%d missing)",
		*out, len(records), len(dates), *missingDays)
	return nil
}

func dateRange(first, last time.Time) []time.Time {
	var dates []time.Time
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

func pickMissingDays(rng *rand.Rand, dates []time.Time, n int) map[time.Time]bool {
	missing := make(map[time.Time]bool, n)
	for _, i := range rng.Perm(len(dates))[:n] {
		missing[dates[i]] = true
	}
	return missing
}

// buildRecords emits one row per date and interval in grid order. Present days
// follow a crude diurnal pattern: near-zero steps overnight, a morning peak,
// and a moderate daytime level.
func buildRecords(rng *rand.Rand, dates []time.Time, missing map[time.Time]bool, slotRate float64) [][]string {
	records := [][]string{{"steps", "date", "interval"}}
	for _, date := range dates {
		for code := 0; code <= domain.MaxInterval; code += 5 {
			if code%100 >= 60 {
				continue
			}
			steps := "NA"
			if !missing[date] && rng.Float64() >= slotRate {
				steps = strconv.Itoa(stepsFor(rng, code))
			}
			records = append(records, []string{steps, date.Format("2006-01-02"), strconv.Itoa(code)})
		}
	}
	return records
}

func stepsFor(rng *rand.Rand, code int) int {
	hour := code / 100
	switch {
	case hour < 6 || hour >= 23:
		return rng.Intn(3)
	case hour >= 8 && hour < 10:
		return 100 + rng.Intn(400)
	default:
		return rng.Intn(120)
	}
}

func writeArchive(path string, records [][]string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	zw := zip.NewWriter(f)
	entry, err := zw.Create("activity.csv")
	if err != nil {
		return fmt.Errorf("creating zip entry: %w", err)
	}

	cw := csv.NewWriter(entry)
	if err := cw.WriteAll(records); err != nil {
		f.Close()
		return fmt.Errorf("writing csv: %w", err)
	}

	if err := zw.Close(); err != nil {
		f.Close()
		return fmt.Errorf("finalizing zip: %w", err)
	}
	return f.Close()
}
