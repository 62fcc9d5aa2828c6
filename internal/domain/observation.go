package domain

import (
	"fmt"
	"time"
)

// Interval codes encode a 5-minute time-of-day slot as HHMM:
// 0, 5, ..., 55, 100, 105, ..., 2355.
const (
	IntervalsPerDay = 288
	MaxInterval     = 2355
)

// Observation is one raw record from the activity monitor: the step count for
// a single 5-minute slot of a single calendar day. Steps is nil when the
// monitor recorded no value for that slot; absence is a first-class state,
// never zero.
type Observation struct {
	Date     time.Time // calendar date at UTC midnight
	Interval int       // HHMM slot code
	Steps    *int
}

// ImputedObservation mirrors an Observation after missing-value substitution.
// Steps is always defined; Imputed marks slots whose value was substituted
// with the interval mean rather than measured.
type ImputedObservation struct {
	Date     time.Time
	Interval int
	Steps    float64
	Imputed  bool
}

// DailyTotal is the summed step count for one calendar day.
type DailyTotal struct {
	Date  time.Time
	Steps float64
}

// DailySummary holds per-day totals ordered by date, plus the mean and median
// of the distribution. Mean and Median are nil when no day contributed a
// defined total; an empty distribution has no statistics, not zero ones.
type DailySummary struct {
	Totals []DailyTotal
	Mean   *float64
	Median *float64
}

// ValidInterval reports whether code is one of the 288 HHMM slot codes.
func ValidInterval(code int) bool {
	if code < 0 || code > MaxInterval {
		return false
	}
	return code%100 < 60 && code%5 == 0
}

// IntervalLabel formats a slot code as a wall-clock label, e.g. 835 -> "08:35".
func IntervalLabel(code int) string {
	return fmt.Sprintf("%02d:%02d", code/100, code%100)
}

// Date builds a calendar date at UTC midnight.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
