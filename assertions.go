package estbench

import (
	"reflect"
	"testing"
)

// AssertionConfig contains thresholds for estimator properties.
type AssertionConfig struct {
	// How many standard errors of slack a bias check gets.
	BiasSEUnits float64

	// How many pooled standard errors two MAEs must differ by before the
	// ordering counts as significant.
	MAESEUnits float64
}

// DefaultAssertionConfig returns conservative thresholds.
func DefaultAssertionConfig() AssertionConfig {
	return AssertionConfig{
		BiasSEUnits: 4, // |bias| within 4 SE passes as unbiased
		MAESEUnits:  2, // MAE gap must exceed 2 pooled SE
	}
}

// AssertUnbiased verifies an estimator's empirical bias is statistically
// indistinguishable from zero.
//
// With repeated trials the bias estimate itself has standard error StdErr,
// so the check is |bias| ≤ k·StdErr rather than bias == 0.
func AssertUnbiased(t *testing.T, es EstimatorStats, cfg AssertionConfig) {
	t.Helper()

	limit := cfg.BiasSEUnits * es.StdErr
	if es.Bias < -limit || es.Bias > limit {
		t.Errorf("Estimator is biased: bias = %.4f exceeds ±%.1f·SE = ±%.4f",
			es.Bias, cfg.BiasSEUnits, limit)
		return
	}

	t.Logf("✓ Unbiased: bias = %.4f within ±%.1f·SE = ±%.4f", es.Bias, cfg.BiasSEUnits, limit)
}

// AssertNegativeBias verifies an estimator systematically underestimates:
// its bias must sit significantly below zero, not merely on the low side
// of sampling noise.
func AssertNegativeBias(t *testing.T, es EstimatorStats, cfg AssertionConfig) {
	t.Helper()

	limit := -cfg.BiasSEUnits * es.StdErr
	if es.Bias >= limit {
		t.Errorf("Bias not significantly negative: bias = %.4f (need < %.4f)", es.Bias, limit)
		return
	}

	t.Logf("✓ Negative bias: %.4f (more than %.1f·SE below zero)", es.Bias, cfg.BiasSEUnits)
}

// AssertLowerMAE verifies the first estimator beats the second on mean
// absolute error by more than sampling noise could explain.
func AssertLowerMAE(t *testing.T, better, worse EstimatorStats, cfg AssertionConfig) {
	t.Helper()

	gap := worse.MAE - better.MAE
	pooledSE := better.MAEStdErr + worse.MAEStdErr
	if gap <= cfg.MAESEUnits*pooledSE {
		t.Errorf("MAE ordering not significant: %.4f vs %.4f (gap %.4f ≤ %.1f·SE = %.4f)",
			better.MAE, worse.MAE, gap, cfg.MAESEUnits, cfg.MAESEUnits*pooledSE)
		return
	}

	t.Logf("✓ Lower MAE: %.4f < %.4f (gap %.4f exceeds %.1f·SE = %.4f)",
		better.MAE, worse.MAE, gap, cfg.MAESEUnits, cfg.MAESEUnits*pooledSE)
}

// AssertReproducible verifies the experiment is a pure function of its
// configuration: two runs with identical parameters and seed must produce
// bit-identical trial collections.
func AssertReproducible(t *testing.T, cfg Config) {
	t.Helper()

	first, err := Run(cfg)
	if err != nil {
		t.Fatalf("First run failed: %v", err)
	}
	second, err := Run(cfg)
	if err != nil {
		t.Fatalf("Second run failed: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Runs with seed %d diverged: experiment is not a pure function of its config", cfg.Seed)
		return
	}

	t.Logf("✓ Reproducible: %d trials bit-identical across runs (seed %d)", len(first), cfg.Seed)
}
