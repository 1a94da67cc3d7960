package estbench

import (
	"fmt"
	"math"
)

// Statistic reduces one simulated sample to a scalar.
// An empty sample has no well-defined statistic; the helpers here return
// NaN for one rather than panic, since a custom draw function may produce
// fewer values than asked.
type Statistic func(xs []float64) float64

// SampleMean is the arithmetic-mean statistic.
func SampleMean(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// SampleMax is the maximum statistic.
func SampleMax(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	max := xs[0]
	for _, x := range xs[1:] {
		if x > max {
			max = x
		}
	}
	return max
}

// SamplingDistribution builds the empirical sampling distribution of a
// statistic: it draws trials independent samples of size n via draw and
// applies stat to each, returning the statistic values in trial order.
//
// This is the direct way to verify a distributional law empirically. The
// textbook case (for iid draws, sd(x̄) = σ/√n) takes two lines:
//
//	s := estbench.NewSampler(7)
//	means, _ := estbench.SamplingDistribution(s, 4000, 25,
//	    estbench.NormalDraw(0, 10), estbench.SampleMean)
//	// sd(means) ≈ 10/√25 = 2
func SamplingDistribution(s *Sampler, trials, n int, draw func(*Sampler, int) []float64, stat Statistic) ([]float64, error) {
	if trials < 1 {
		return nil, fmt.Errorf("%w: trials %d < 1", ErrInvalidArgument, trials)
	}
	if n < 1 {
		return nil, fmt.Errorf("%w: sample size %d < 1", ErrInvalidArgument, n)
	}
	if draw == nil || stat == nil {
		return nil, fmt.Errorf("%w: nil draw or statistic", ErrInvalidArgument)
	}

	values := make([]float64, trials)
	for i := range values {
		values[i] = stat(draw(s, n))
	}
	return values, nil
}

// NormalDraw returns a draw function producing n iid Normal(mean, stddev)
// values per invocation.
func NormalDraw(mean, stddev float64) func(*Sampler, int) []float64 {
	return func(s *Sampler, n int) []float64 {
		xs := make([]float64, n)
		for i := range xs {
			xs[i] = s.NormFloat64(mean, stddev)
		}
		return xs
	}
}

// UniformIntDraw returns a draw function producing n iid draws from
// {1..max} as float64s, matching the estimator experiment's population.
func UniformIntDraw(max int) func(*Sampler, int) []float64 {
	return func(s *Sampler, n int) []float64 {
		ints := s.UniformInts(n, max)
		xs := make([]float64, n)
		for i, v := range ints {
			xs[i] = float64(v)
		}
		return xs
	}
}
