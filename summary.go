package estbench

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"
)

// EstimatorStats describes one estimator's empirical sampling distribution
// relative to the true population size.
type EstimatorStats struct {
	Bias      float64 // mean(estimate) − N (negative: systematic underestimate)
	StdErr    float64 // sample stddev of estimates / √trials
	MAE       float64 // mean of |estimate − N|
	MAEStdErr float64 // sample stddev of |estimate − N| / √trials
}

// Summary compares both candidate estimators over a completed experiment.
//
// Reading the comparison:
//   - Bias answers "is the estimator systematically off, and which way?"
//     The max-observed estimator is negatively biased (the sample maximum
//     can never exceed N and usually falls short); twice-the-mean is
//     unbiased in expectation.
//   - MAE answers "how far off is a typical estimate?" An unbiased
//     estimator with large spread can still lose on MAE, and the canonical
//     demonstration shows exactly that.
//   - The standard errors qualify both: a difference smaller than a couple
//     of standard errors is sampling noise, not signal.
type Summary struct {
	Trials      int
	MaxObserved EstimatorStats
	DoubleMean  EstimatorStats
}

// Summarize computes bias, standard error, and mean absolute error for
// each estimator column of a completed trial collection.
//
// populationSize must be the true N the collection was generated with.
// The computation is pure arithmetic over the in-memory collection; it is
// only meaningful after all trials finished (no streaming aggregation).
func Summarize(pairs []EstimatePair, populationSize int) (Summary, error) {
	if len(pairs) == 0 {
		return Summary{}, fmt.Errorf("%w: empty trial collection", ErrInvalidArgument)
	}
	if populationSize < 1 {
		return Summary{}, fmt.Errorf("%w: population size %d < 1", ErrInvalidArgument, populationSize)
	}

	maxCol := make([]float64, len(pairs))
	meanCol := make([]float64, len(pairs))
	for i, p := range pairs {
		maxCol[i] = p.MaxObserved
		meanCol[i] = p.DoubleMean
	}

	return Summary{
		Trials:      len(pairs),
		MaxObserved: columnStats(maxCol, float64(populationSize)),
		DoubleMean:  columnStats(meanCol, float64(populationSize)),
	}, nil
}

// columnStats reduces one estimator column against the true value.
func columnStats(estimates []float64, truth float64) EstimatorStats {
	absErrs := make([]float64, len(estimates))
	for i, e := range estimates {
		absErrs[i] = math.Abs(e - truth)
	}

	est := stats.Sample{Xs: estimates}
	abs := stats.Sample{Xs: absErrs}
	sqrtN := math.Sqrt(float64(len(estimates)))

	return EstimatorStats{
		Bias:      est.Mean() - truth,
		StdErr:    est.StdDev() / sqrtN,
		MAE:       abs.Mean(),
		MAEStdErr: abs.StdDev() / sqrtN,
	}
}
