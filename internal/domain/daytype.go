package domain

import "time"

// DayType labels a calendar date as a working day or a weekend day.
type DayType string

const (
	Weekday DayType = "weekday"
	Weekend DayType = "weekend"
)

// ClassifyDayType labels a date purely by its day of week; Saturday and
// Sunday are Weekend, everything else Weekday. Step data plays no part.
func ClassifyDayType(date time.Time) DayType {
	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		return Weekend
	default:
		return Weekday
	}
}

// PartitionByDayType splits an imputed series into weekday and weekend
// subsets, preserving input order within each subset.
func PartitionByDayType(observations []ImputedObservation) map[DayType][]ImputedObservation {
	parts := make(map[DayType][]ImputedObservation, 2)
	for _, o := range observations {
		dt := ClassifyDayType(o.Date)
		parts[dt] = append(parts[dt], o)
	}
	return parts
}

// DayTypeProfiles computes per-interval mean profiles for the weekday and
// weekend partitions of an imputed series.
func DayTypeProfiles(observations []ImputedObservation) (weekday, weekend IntervalProfile) {
	parts := PartitionByDayType(observations)
	return ProfileImputed(parts[Weekday]), ProfileImputed(parts[Weekend])
}

// CountDatesByType counts the distinct calendar dates per day type.
func CountDatesByType(observations []ImputedObservation) map[DayType]int {
	seen := make(map[time.Time]bool)
	counts := make(map[DayType]int, 2)
	for _, o := range observations {
		if seen[o.Date] {
			continue
		}
		seen[o.Date] = true
		counts[ClassifyDayType(o.Date)]++
	}
	return counts
}
