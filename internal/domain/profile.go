package domain

import "sort"

// IntervalMean is the mean step count for one 5-minute slot across all days
// where that slot had a defined value.
type IntervalMean struct {
	Interval int
	Mean     float64
}

// IntervalProfile maps interval codes to their mean step counts. Entries are
// held in ascending interval order; slots with zero defined samples across
// every day are absent rather than zeroed.
type IntervalProfile struct {
	entries []IntervalMean
	byCode  map[int]float64
}

// ProfileIntervals computes the mean of all defined step values per interval
// code across every date. Missing observations are ignored entirely, never
// substituted with zero.
func ProfileIntervals(observations []Observation) IntervalProfile {
	sums := make(map[int]float64)
	counts := make(map[int]int)
	for _, o := range observations {
		if o.Steps == nil {
			continue
		}
		sums[o.Interval] += float64(*o.Steps)
		counts[o.Interval]++
	}
	return newIntervalProfile(sums, counts)
}

// ProfileImputed computes the per-interval mean over a complete series.
func ProfileImputed(observations []ImputedObservation) IntervalProfile {
	sums := make(map[int]float64)
	counts := make(map[int]int)
	for _, o := range observations {
		sums[o.Interval] += o.Steps
		counts[o.Interval]++
	}
	return newIntervalProfile(sums, counts)
}

func newIntervalProfile(sums map[int]float64, counts map[int]int) IntervalProfile {
	entries := make([]IntervalMean, 0, len(sums))
	byCode := make(map[int]float64, len(sums))
	for code, sum := range sums {
		mean := sum / float64(counts[code])
		entries = append(entries, IntervalMean{Interval: code, Mean: mean})
		byCode[code] = mean
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Interval < entries[j].Interval })
	return IntervalProfile{entries: entries, byCode: byCode}
}

// Entries returns the per-interval means in ascending interval order.
func (p IntervalProfile) Entries() []IntervalMean { return p.entries }

// Len returns the number of intervals with a defined mean.
func (p IntervalProfile) Len() int { return len(p.entries) }

// Mean looks up the mean for an interval code. The second return value is
// false when the interval had no defined sample on any day.
func (p IntervalProfile) Mean(interval int) (float64, bool) {
	mean, ok := p.byCode[interval]
	return mean, ok
}

// Peak returns the interval with the highest mean. Ties break toward the
// lowest interval code: entries are scanned in ascending order with a strict
// greater-than comparison, so the result is deterministic regardless of how
// the input was ordered. Returns false for an empty profile.
func (p IntervalProfile) Peak() (IntervalMean, bool) {
	if len(p.entries) == 0 {
		return IntervalMean{}, false
	}
	peak := p.entries[0]
	for _, e := range p.entries[1:] {
		if e.Mean > peak.Mean {
			peak = e
		}
	}
	return peak, true
}
