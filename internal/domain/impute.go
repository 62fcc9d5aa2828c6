package domain

import "fmt"

// ImputeStats counts what happened during an imputation pass.
type ImputeStats struct {
	Missing   int // observations with no defined value in the input
	Imputed   int // values substituted from the interval profile
	Fallbacks int // values substituted from the global mean instead
}

// Impute replaces every missing observation with the profile mean for that
// observation's own interval code. The lookup is keyed by interval identity,
// never by row position, so partial or reordered days impute correctly. The
// output has the same length and (date, interval) order as the input, and
// present values pass through unchanged.
//
// When an interval code has no entry in the profile (that slot was missing on
// literally every day), the global mean of all present values is substituted
// instead and counted in Fallbacks. Only a series with no present value at
// all fails, with ErrImputation, since then no deterministic substitute
// exists.
func Impute(observations []Observation, profile IntervalProfile) ([]ImputedObservation, ImputeStats, error) {
	var stats ImputeStats

	globalSum, globalCount := 0.0, 0
	for _, o := range observations {
		if o.Steps == nil {
			stats.Missing++
			continue
		}
		globalSum += float64(*o.Steps)
		globalCount++
	}
	if stats.Missing > 0 && globalCount == 0 {
		return nil, stats, fmt.Errorf("%w: no present value in %d observations", ErrImputation, len(observations))
	}

	var globalMean float64
	if globalCount > 0 {
		globalMean = globalSum / float64(globalCount)
	}

	imputed := make([]ImputedObservation, len(observations))
	for i, o := range observations {
		out := ImputedObservation{Date: o.Date, Interval: o.Interval}
		switch {
		case o.Steps != nil:
			out.Steps = float64(*o.Steps)
		default:
			out.Imputed = true
			if mean, ok := profile.Mean(o.Interval); ok {
				out.Steps = mean
				stats.Imputed++
			} else {
				out.Steps = globalMean
				stats.Fallbacks++
			}
		}
		imputed[i] = out
	}

	return imputed, stats, nil
}
