// Package domain models personal activity monitor data and the descriptive
// statistics derived from it.
//
// # Data Source
//
// The raw data comes from a consumer activity monitor sampling step counts at
// 5-minute intervals across October and November 2012 (61 days), distributed
// as a zip archive containing a single CSV file with three columns:
//
//	steps    integer step count, or the sentinel "NA" when the slot was not recorded
//	date     ISO calendar date, e.g. "2012-10-01"
//	interval HHMM slot code: 0, 5, ..., 55, 100, 105, ..., 2355
//
// Each day carries the full grid of 288 interval codes (24h x 12 slots)
// regardless of how many of them were actually recorded, for 17,568 rows in
// total. Several days are missing in their entirety.
//
// # Missingness
//
// Absence of a step count is a first-class state, modeled as a nil pointer.
// Aggregations skip missing values; they never substitute zero. A day whose
// every slot is missing contributes no daily total, and an empty distribution
// has an undefined mean and median rather than zero.
//
// # Imputation
//
// Missing slots are filled with the historical mean for the same interval
// code, looked up by interval identity rather than row position. An interval
// that was never recorded on any day falls back to the global mean of all
// present values. See [Impute] for the exact policy.
package domain
