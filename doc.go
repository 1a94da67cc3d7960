// Package estbench compares statistical estimators by Monte Carlo simulation.
//
// # Overview
//
// estbench answers "which estimator should I trust?" empirically: repeat
// the draw-and-estimate cycle many times, build each estimator's sampling
// distribution, and compare bias, standard error, and mean absolute error.
//
// # Architecture
//
// The package components:
//
//   - sampler/       - Explicit seeded pseudorandom source
//   - experiment/    - The taxicab estimator comparison (RunTrial, Run)
//   - summary/       - Bias / SE / MAE aggregation over a trial collection
//   - coincidence/   - Monte Carlo event-probability estimation
//   - samplingdist/  - Empirical sampling distribution of any statistic
//   - report/        - Five-number summaries and histogram bins for plotting
//   - assertions/    - Test helpers for estimator properties
//
// # Quick Start
//
// Compare the two taxicab estimators:
//
//	pairs, err := estbench.Run(estbench.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	sum, err := estbench.Summarize(pairs, 100)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("max observed:  bias %.2f, MAE %.2f\n", sum.MaxObserved.Bias, sum.MaxObserved.MAE)
//	fmt.Printf("2×sample mean: bias %.2f, MAE %.2f\n", sum.DoubleMean.Bias, sum.DoubleMean.MAE)
//
// # The Taxicab Problem
//
// A city's taxis are numbered 1..N. You observe n of them, drawn uniformly
// with replacement, and must estimate N. Two candidates:
//
//	N̂₁ = max(sample)
//	N̂₂ = 2 · mean(sample)
//
// Properties the simulation exposes:
//   - N̂₁ is negatively biased: the sample maximum never exceeds N and
//     usually falls short (E[bias] ≈ −N/(n+1) for large N).
//   - N̂₂ is unbiased: E[2x̄] = 2·(N+1)/2 ≈ N.
//   - N̂₁ still wins on mean absolute error: its spread is far smaller
//     than N̂₂'s (sd(2x̄) = 2σ/√n with σ ≈ N/√12).
//
// Unbiased does not mean better. That inversion is the point of the
// experiment.
//
// # Reproducibility
//
// Every draw flows through a Sampler that owns an explicitly seeded
// source. There is no package-global generator state: the same Config
// (including Seed) produces a bit-identical trial collection every run.
// Trials are mutually independent; all aggregates are order-independent.
//
// # Monte Carlo Probability
//
// Estimate P(event) for any simulable event:
//
//	meet := estbench.MeetingEvent(60, 15) // arrivals in [0,60), meet within 15
//	p, se, err := estbench.EstimateProbability(20000, 7, meet)
//	// p ≈ 0.4375 = 1 − (45/60)², se tells you how many digits to believe
//
// # Sampling Distributions
//
// Verify a distributional law by building it:
//
//	s := estbench.NewSampler(7)
//	means, _ := estbench.SamplingDistribution(s, 4000, 25,
//	    estbench.NormalDraw(0, 10), estbench.SampleMean)
//	// sd(means) ≈ 10/√25 = 2
//
// # Testing
//
// Use assertions to validate estimator properties:
//
//	func TestMyEstimator(t *testing.T) {
//	    pairs, _ := estbench.Run(cfg)
//	    sum, _ := estbench.Summarize(pairs, cfg.PopulationSize)
//
//	    acfg := estbench.DefaultAssertionConfig()
//	    estbench.AssertUnbiased(t, sum.DoubleMean, acfg)
//	    estbench.AssertNegativeBias(t, sum.MaxObserved, acfg)
//	    estbench.AssertLowerMAE(t, sum.MaxObserved, sum.DoubleMean, acfg)
//	}
//
// # Philosophy
//
// A closed-form analysis answers: "What is this estimator's bias?"
// estbench answers: "What does this estimator actually do at your N, n?"
//
// Simulation trades algebra for computation: any estimator you can code
// gets a sampling distribution, whether or not its moments have a clean
// derivation.
//
// # See Also
//
//   - examples/taxicab - CLI driving all three experiments
package estbench
