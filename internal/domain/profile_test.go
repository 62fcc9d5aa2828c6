package domain_test

import (
	"testing"
	"time"

	"github.com/quantself/step-report/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileIntervals_MeansIgnoreMissing(t *testing.T) {
	oct1 := domain.Date(2012, time.October, 1)
	oct2 := domain.Date(2012, time.October, 2)
	oct3 := domain.Date(2012, time.October, 3)

	profile := domain.ProfileIntervals([]domain.Observation{
		obs(oct1, 835, steps(100)),
		obs(oct2, 835, nil), // ignored, not counted as zero
		obs(oct3, 835, steps(200)),
	})

	mean, ok := profile.Mean(835)
	require.True(t, ok)
	assert.Equal(t, 150.0, mean)
}

func TestProfileIntervals_AbsentWhenNeverRecorded(t *testing.T) {
	oct1 := domain.Date(2012, time.October, 1)

	profile := domain.ProfileIntervals([]domain.Observation{
		obs(oct1, 0, steps(1)),
		obs(oct1, 5, nil),
	})

	_, ok := profile.Mean(5)
	assert.False(t, ok)
	assert.Equal(t, 1, profile.Len())
}

func TestProfileIntervals_IndependentOfDateOrder(t *testing.T) {
	oct1 := domain.Date(2012, time.October, 1)
	oct2 := domain.Date(2012, time.October, 2)

	forward := domain.ProfileIntervals([]domain.Observation{
		obs(oct1, 100, steps(10)),
		obs(oct2, 100, steps(30)),
	})
	backward := domain.ProfileIntervals([]domain.Observation{
		obs(oct2, 100, steps(30)),
		obs(oct1, 100, steps(10)),
	})

	fwd, _ := forward.Mean(100)
	bwd, _ := backward.Mean(100)
	assert.Equal(t, fwd, bwd)
	assert.Equal(t, 20.0, fwd)
}

func TestProfileIntervals_EntriesAscending(t *testing.T) {
	oct1 := domain.Date(2012, time.October, 1)

	profile := domain.ProfileIntervals([]domain.Observation{
		obs(oct1, 2355, steps(1)),
		obs(oct1, 0, steps(2)),
		obs(oct1, 1130, steps(3)),
	})

	entries := profile.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, 0, entries[0].Interval)
	assert.Equal(t, 1130, entries[1].Interval)
	assert.Equal(t, 2355, entries[2].Interval)
}

func TestPeak_TieBreaksTowardLowestInterval(t *testing.T) {
	oct1 := domain.Date(2012, time.October, 1)

	profile := domain.ProfileIntervals([]domain.Observation{
		obs(oct1, 900, steps(50)),
		obs(oct1, 500, steps(50)), // same mean, lower code: must win
		obs(oct1, 100, steps(10)),
	})

	peak, ok := profile.Peak()
	require.True(t, ok)
	assert.Equal(t, 500, peak.Interval)
	assert.Equal(t, 50.0, peak.Mean)
}

func TestPeak_EmptyProfile(t *testing.T) {
	profile := domain.ProfileIntervals(nil)
	_, ok := profile.Peak()
	assert.False(t, ok)
}

func TestProfileImputed_UsesAllValues(t *testing.T) {
	oct1 := domain.Date(2012, time.October, 1)
	oct2 := domain.Date(2012, time.October, 2)

	profile := domain.ProfileImputed([]domain.ImputedObservation{
		{Date: oct1, Interval: 0, Steps: 10},
		{Date: oct2, Interval: 0, Steps: 14, Imputed: true},
	})

	mean, ok := profile.Mean(0)
	require.True(t, ok)
	assert.Equal(t, 12.0, mean)
}
