package estbench

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument reports a non-positive experiment parameter or a nil
// callback. It is raised before any sampling occurs; an operation either
// fully succeeds or produces no output.
var ErrInvalidArgument = errors.New("invalid argument")

// EstimatePair holds the two candidate estimates computed from one sample.
type EstimatePair struct {
	MaxObserved float64 // N̂₁: maximum of the drawn values
	DoubleMean  float64 // N̂₂: twice the arithmetic mean of the drawn values
}

// Config controls an estimator comparison experiment.
type Config struct {
	PopulationSize int   // True N: population is numbered 1..N
	SampleSize     int   // Values drawn per trial (with replacement, may exceed N)
	Trials         int   // Independent draw-and-estimate repetitions
	Seed           int64 // Seed for the experiment's Sampler
}

// DefaultConfig returns the parameters of the canonical demonstration:
// a population of 100, samples of 5, and 1000 repeated trials.
func DefaultConfig() Config {
	return Config{
		PopulationSize: 100,
		SampleSize:     5,
		Trials:         1000,
		Seed:           2021,
	}
}

// RunTrial draws one sample of sampleSize values from {1..populationSize}
// and computes both candidate estimates.
//
// The trial advances the Sampler's state and has no other side effects.
// MaxObserved never exceeds populationSize and never falls below 1.
func RunTrial(s *Sampler, populationSize, sampleSize int) (EstimatePair, error) {
	if populationSize < 1 {
		return EstimatePair{}, fmt.Errorf("%w: population size %d < 1", ErrInvalidArgument, populationSize)
	}
	if sampleSize < 1 {
		return EstimatePair{}, fmt.Errorf("%w: sample size %d < 1", ErrInvalidArgument, sampleSize)
	}

	draws := s.UniformInts(sampleSize, populationSize)

	max := draws[0]
	sum := 0
	for _, d := range draws {
		if d > max {
			max = d
		}
		sum += d
	}

	return EstimatePair{
		MaxObserved: float64(max),
		DoubleMean:  2 * float64(sum) / float64(sampleSize),
	}, nil
}

// Run executes cfg.Trials independent trials and returns the estimate
// pairs in trial order.
//
// Trials share one sequentially advanced Sampler seeded with cfg.Seed, so
// the returned collection is bit-identical across runs with the same
// configuration. Trial order carries no information: every aggregate this
// package computes over the collection is order-independent.
func Run(cfg Config) ([]EstimatePair, error) {
	if cfg.Trials < 1 {
		return nil, fmt.Errorf("%w: trials %d < 1", ErrInvalidArgument, cfg.Trials)
	}
	if cfg.PopulationSize < 1 {
		return nil, fmt.Errorf("%w: population size %d < 1", ErrInvalidArgument, cfg.PopulationSize)
	}
	if cfg.SampleSize < 1 {
		return nil, fmt.Errorf("%w: sample size %d < 1", ErrInvalidArgument, cfg.SampleSize)
	}

	s := NewSampler(cfg.Seed)
	pairs := make([]EstimatePair, 0, cfg.Trials)

	for i := 0; i < cfg.Trials; i++ {
		pair, err := RunTrial(s, cfg.PopulationSize, cfg.SampleSize)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, pair)
	}

	return pairs, nil
}
