package domain

import "time"

// Analysis is the complete derived output of one run over a raw observation
// series. Every field is recomputed from scratch; nothing carries over
// between runs.
type Analysis struct {
	Observations int
	Missing      int
	FirstDate    time.Time
	LastDate     time.Time

	RawDaily DailySummary

	Profile IntervalProfile
	Peak    IntervalMean
	HasPeak bool

	Imputed       []ImputedObservation
	ImputeStats   ImputeStats
	ImputeWarning string
	ImputedDaily  DailySummary

	WeekdayProfile IntervalProfile
	WeekendProfile IntervalProfile
	DayTypeDates   map[DayType]int

	GeneratedAt time.Time
}

// Analyze runs the full statistics pass: daily aggregation, interval
// profiling, mean-substitution imputation, re-aggregation over the imputed
// series, and the weekday/weekend partition.
//
// A series with no present value at all cannot be imputed; that is reported
// via ImputeWarning and the imputation-dependent fields stay empty, while the
// pre-imputation statistics (all undefined) still render. It is not treated
// as a fatal error.
func Analyze(observations []Observation) Analysis {
	a := Analysis{
		Observations: len(observations),
		GeneratedAt:  clock.Now().UTC(),
	}

	for _, o := range observations {
		if o.Steps == nil {
			a.Missing++
		}
		if a.FirstDate.IsZero() || o.Date.Before(a.FirstDate) {
			a.FirstDate = o.Date
		}
		if o.Date.After(a.LastDate) {
			a.LastDate = o.Date
		}
	}

	a.RawDaily = SummarizeDaily(observations)
	a.Profile = ProfileIntervals(observations)
	a.Peak, a.HasPeak = a.Profile.Peak()

	imputed, stats, err := Impute(observations, a.Profile)
	a.ImputeStats = stats
	if err != nil {
		a.ImputeWarning = err.Error()
		return a
	}

	a.Imputed = imputed
	a.ImputedDaily = SummarizeImputedDaily(imputed)
	a.WeekdayProfile, a.WeekendProfile = DayTypeProfiles(imputed)
	a.DayTypeDates = CountDatesByType(imputed)

	return a
}
