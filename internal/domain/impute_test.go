package domain_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/quantself/step-report/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImpute_PreservesLengthAndOrder(t *testing.T) {
	oct1 := domain.Date(2012, time.October, 1)
	oct2 := domain.Date(2012, time.October, 2)

	input := []domain.Observation{
		obs(oct2, 10, steps(3)),
		obs(oct1, 0, nil),
		obs(oct1, 5, steps(7)),
	}
	profile := domain.ProfileIntervals(input)

	imputed, _, err := domain.Impute(input, profile)
	require.NoError(t, err)
	require.Len(t, imputed, len(input))
	for i, o := range input {
		assert.Equal(t, o.Date, imputed[i].Date, "row %d date", i)
		assert.Equal(t, o.Interval, imputed[i].Interval, "row %d interval", i)
	}
}

func TestImpute_NeverAltersPresentValues(t *testing.T) {
	oct1 := domain.Date(2012, time.October, 1)
	oct2 := domain.Date(2012, time.October, 2)

	input := []domain.Observation{
		obs(oct1, 0, steps(10)),
		obs(oct2, 0, steps(30)),
		obs(oct1, 5, nil),
		obs(oct2, 5, steps(8)),
	}
	profile := domain.ProfileIntervals(input)

	imputed, stats, err := domain.Impute(input, profile)
	require.NoError(t, err)

	assert.Equal(t, 10.0, imputed[0].Steps)
	assert.Equal(t, 30.0, imputed[1].Steps)
	assert.Equal(t, 8.0, imputed[3].Steps)
	assert.False(t, imputed[0].Imputed)
	assert.False(t, imputed[1].Imputed)
	assert.False(t, imputed[3].Imputed)

	// The missing interval-5 slot takes the interval-5 mean (8), not a
	// positional neighbour.
	assert.True(t, imputed[2].Imputed)
	assert.Equal(t, 8.0, imputed[2].Steps)

	assert.Equal(t, domain.ImputeStats{Missing: 1, Imputed: 1}, stats)
}

func TestImpute_LooksUpByIntervalIdentityNotPosition(t *testing.T) {
	oct1 := domain.Date(2012, time.October, 1)
	oct2 := domain.Date(2012, time.October, 2)

	// oct2 is partial and out of grid order; a modulo-288 positional lookup
	// would grab the wrong slot here.
	input := []domain.Observation{
		obs(oct1, 0, steps(2)),
		obs(oct1, 5, steps(4)),
		obs(oct1, 10, steps(6)),
		obs(oct2, 10, nil),
		obs(oct2, 0, steps(100)),
	}
	profile := domain.ProfileIntervals(input)

	imputed, _, err := domain.Impute(input, profile)
	require.NoError(t, err)
	assert.Equal(t, 6.0, imputed[3].Steps, "must take the interval-10 mean")
}

func TestImpute_FallsBackToGlobalMean(t *testing.T) {
	oct1 := domain.Date(2012, time.October, 1)
	oct2 := domain.Date(2012, time.October, 2)

	// Interval 1200 is missing on every day, so it has no profile entry.
	input := []domain.Observation{
		obs(oct1, 0, steps(10)),
		obs(oct1, 1200, nil),
		obs(oct2, 0, steps(20)),
		obs(oct2, 1200, nil),
	}
	profile := domain.ProfileIntervals(input)

	imputed, stats, err := domain.Impute(input, profile)
	require.NoError(t, err)

	assert.Equal(t, 15.0, imputed[1].Steps)
	assert.Equal(t, 15.0, imputed[3].Steps)
	assert.Equal(t, domain.ImputeStats{Missing: 2, Fallbacks: 2}, stats)
}

func TestImpute_AllMissingSeriesFails(t *testing.T) {
	oct1 := domain.Date(2012, time.October, 1)

	input := []domain.Observation{
		obs(oct1, 0, nil),
		obs(oct1, 5, nil),
	}

	_, _, err := domain.Impute(input, domain.ProfileIntervals(input))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrImputation)
}

func TestImpute_EmptyInput(t *testing.T) {
	imputed, stats, err := domain.Impute(nil, domain.ProfileIntervals(nil))
	require.NoError(t, err)
	assert.Empty(t, imputed)
	assert.Equal(t, domain.ImputeStats{}, stats)
}

func TestImpute_CompleteSeriesIsIdentity(t *testing.T) {
	oct1 := domain.Date(2012, time.October, 1)

	input := []domain.Observation{
		obs(oct1, 0, steps(1)),
		obs(oct1, 5, steps(2)),
	}
	imputed, stats, err := domain.Impute(input, domain.ProfileIntervals(input))
	require.NoError(t, err)

	want := []domain.ImputedObservation{
		{Date: oct1, Interval: 0, Steps: 1},
		{Date: oct1, Interval: 5, Steps: 2},
	}
	if diff := cmp.Diff(want, imputed); diff != "" {
		t.Fatalf("imputed series mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, domain.ImputeStats{}, stats)
}
