package domain

import (
	"sort"
	"time"

	"github.com/montanaflynn/stats"
)

// SummarizeDaily sums steps per calendar day over the defined observations
// only. A day where every observation is missing is omitted from the result
// entirely; it is not zero-filled and does not dilute the mean or median.
func SummarizeDaily(observations []Observation) DailySummary {
	sums := make(map[time.Time]float64)
	for _, o := range observations {
		if o.Steps == nil {
			continue
		}
		sums[o.Date] += float64(*o.Steps)
	}
	return summarize(sums)
}

// SummarizeImputedDaily recomputes daily totals over a complete series. Every
// date present in the input contributes a total since no value is missing
// after imputation.
func SummarizeImputedDaily(observations []ImputedObservation) DailySummary {
	sums := make(map[time.Time]float64)
	for _, o := range observations {
		sums[o.Date] += o.Steps
	}
	return summarize(sums)
}

func summarize(sums map[time.Time]float64) DailySummary {
	if len(sums) == 0 {
		return DailySummary{}
	}

	totals := make([]DailyTotal, 0, len(sums))
	values := make([]float64, 0, len(sums))
	for date, sum := range sums {
		totals = append(totals, DailyTotal{Date: date, Steps: sum})
	}
	sort.Slice(totals, func(i, j int) bool { return totals[i].Date.Before(totals[j].Date) })
	for _, t := range totals {
		values = append(values, t.Steps)
	}

	// stats errors only on empty input, which is excluded above.
	mean, _ := stats.Mean(values)
	median, _ := stats.Median(values)

	return DailySummary{Totals: totals, Mean: &mean, Median: &median}
}
