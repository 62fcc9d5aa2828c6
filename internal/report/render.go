// Package report renders an Analysis as a plain-text report with terminal
// charts.
package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/quantself/step-report/internal/domain"
)

const (
	chartHeight = 10
	chartWidth  = 72
	histBins    = 10
	histBarMax  = 50
)

// Render produces the full text report for one analysis run.
func Render(a domain.Analysis) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Step Activity Report\n")
	fmt.Fprintf(&b, "====================\n")
	fmt.Fprintf(&b, "generated: %s\n", a.GeneratedAt.Format("2006-01-02T15:04:05Z07:00"))
	if !a.FirstDate.IsZero() {
		fmt.Fprintf(&b, "range:     %s to %s\n", a.FirstDate.Format("2006-01-02"), a.LastDate.Format("2006-01-02"))
	}
	fmt.Fprintf(&b, "observations: %d (missing: %d)\n", a.Observations, a.Missing)

	if a.ImputeWarning != "" {
		fmt.Fprintf(&b, "\nWARNING: %s\n", a.ImputeWarning)
	}

	b.WriteString("\nDaily totals (before imputation)\n")
	b.WriteString("--------------------------------\n")
	writeSummary(&b, a.RawDaily)

	b.WriteString("\nMean steps by 5-minute interval\n")
	b.WriteString("-------------------------------\n")
	writeProfileChart(&b, a.Profile)
	if a.HasPeak {
		fmt.Fprintf(&b, "peak interval: %s (code %d, %.2f mean steps)\n",
			domain.IntervalLabel(a.Peak.Interval), a.Peak.Interval, a.Peak.Mean)
	} else {
		b.WriteString("peak interval: undefined\n")
	}

	b.WriteString("\nDaily totals (after imputation)\n")
	b.WriteString("-------------------------------\n")
	fmt.Fprintf(&b, "values imputed: %d (interval mean: %d, global-mean fallback: %d)\n",
		a.ImputeStats.Missing, a.ImputeStats.Imputed, a.ImputeStats.Fallbacks)
	writeSummary(&b, a.ImputedDaily)
	writeDeltas(&b, a.RawDaily, a.ImputedDaily)

	b.WriteString("\nWeekday vs weekend mean steps by interval\n")
	b.WriteString("-----------------------------------------\n")
	fmt.Fprintf(&b, "weekday (%d days):\n", a.DayTypeDates[domain.Weekday])
	writeProfileChart(&b, a.WeekdayProfile)
	fmt.Fprintf(&b, "weekend (%d days):\n", a.DayTypeDates[domain.Weekend])
	writeProfileChart(&b, a.WeekendProfile)

	return b.String()
}

func writeSummary(b *strings.Builder, s domain.DailySummary) {
	fmt.Fprintf(b, "days included: %d\n", len(s.Totals))
	fmt.Fprintf(b, "mean:   %s\n", formatStat(s.Mean))
	fmt.Fprintf(b, "median: %s\n", formatStat(s.Median))
	writeHistogram(b, s.Totals)
}

func formatStat(v *float64) string {
	if v == nil {
		return "undefined"
	}
	return fmt.Sprintf("%.2f", *v)
}

// writeDeltas reports how imputation shifted the distribution. The two
// distributions differ in membership, so these are literal value deltas, not
// a like-for-like statistical comparison.
func writeDeltas(b *strings.Builder, before, after domain.DailySummary) {
	if before.Mean == nil || after.Mean == nil {
		return
	}
	fmt.Fprintf(b, "delta vs raw: mean %+.2f, median %+.2f, days %+d\n",
		*after.Mean-*before.Mean,
		*after.Median-*before.Median,
		len(after.Totals)-len(before.Totals))
}

// writeHistogram draws the distribution of daily totals as fixed-width bins
// with proportional bars.
func writeHistogram(b *strings.Builder, totals []domain.DailyTotal) {
	if len(totals) == 0 {
		b.WriteString("(no data)\n")
		return
	}

	lo, hi := totals[0].Steps, totals[0].Steps
	for _, t := range totals {
		lo = math.Min(lo, t.Steps)
		hi = math.Max(hi, t.Steps)
	}

	width := (hi - lo) / histBins
	if width == 0 {
		fmt.Fprintf(b, "all %d days total %.0f steps\n", len(totals), lo)
		return
	}

	counts := make([]int, histBins)
	maxCount := 0
	for _, t := range totals {
		bin := int((t.Steps - lo) / width)
		if bin >= histBins {
			bin = histBins - 1 // hi lands in the last bin
		}
		counts[bin]++
		if counts[bin] > maxCount {
			maxCount = counts[bin]
		}
	}

	for i, count := range counts {
		bar := strings.Repeat("#", count*histBarMax/maxCount)
		fmt.Fprintf(b, "%8.0f-%8.0f | %-3d %s\n", lo+float64(i)*width, lo+float64(i+1)*width, count, bar)
	}
}

// writeProfileChart draws per-interval means as a line chart over the day.
func writeProfileChart(b *strings.Builder, profile domain.IntervalProfile) {
	entries := profile.Entries()
	if len(entries) == 0 {
		b.WriteString("(no data)\n")
		return
	}

	series := make([]float64, len(entries))
	for i, e := range entries {
		series[i] = e.Mean
	}

	b.WriteString(asciigraph.Plot(series,
		asciigraph.Height(chartHeight),
		asciigraph.Width(chartWidth),
	))
	fmt.Fprintf(b, "\n%s%s%s\n",
		domain.IntervalLabel(entries[0].Interval),
		strings.Repeat(" ", chartWidth),
		domain.IntervalLabel(entries[len(entries)-1].Interval))
}
