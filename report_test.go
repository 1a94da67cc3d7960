package estbench

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFiveNumSummary(t *testing.T) {
	f := FiveNumSummary([]float64{5, 1, 3, 2, 4})

	assert.Equal(t, 1.0, f.Min)
	assert.Equal(t, 5.0, f.Max)
	assert.Equal(t, 3.0, f.Median)
	// Quartile interpolation varies by method; only pin the neighborhood.
	assert.InDelta(t, 2.0, f.Q1, 0.5)
	assert.InDelta(t, 4.0, f.Q3, 0.5)

	assert.Equal(t, FiveNum{}, FiveNumSummary(nil))
}

func TestFiveNumSummary_DoesNotMutateInput(t *testing.T) {
	xs := []float64{3, 1, 2}
	FiveNumSummary(xs)
	assert.Equal(t, []float64{3, 1, 2}, xs)
}

func TestHistogram(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	bins := Histogram(xs, 2)
	require.Len(t, bins, 2)

	assert.Equal(t, 1.0, bins[0].Lo)
	assert.InDelta(t, 5.5, bins[0].Hi, 1e-9)
	assert.Equal(t, 5, bins[0].Count)
	assert.Equal(t, 10.0, bins[1].Hi)
	assert.Equal(t, 5, bins[1].Count)
}

func TestHistogram_Degenerate(t *testing.T) {
	assert.Nil(t, Histogram(nil, 5))
	assert.Nil(t, Histogram([]float64{1, 2}, 0))

	// All values identical: zero width, everything in one bin.
	bins := Histogram([]float64{3, 3, 3}, 4)
	require.Len(t, bins, 4)
	total := 0
	for _, b := range bins {
		total += b.Count
	}
	assert.Equal(t, 3, total)
}

func TestAbsoluteErrors(t *testing.T) {
	pairs := []EstimatePair{
		{MaxObserved: 90, DoubleMean: 110},
		{MaxObserved: 100, DoubleMean: 80},
	}

	maxErrs, meanErrs := AbsoluteErrors(pairs, 100)
	assert.Equal(t, []float64{10, 0}, maxErrs)
	assert.Equal(t, []float64{10, 20}, meanErrs)
}
