package estbench

import (
	"math"

	"github.com/aclements/go-moremath/stats"
)

// FiveNum is the five-number summary behind a box-and-whisker plot.
type FiveNum struct {
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
}

// FiveNumSummary computes the five-number summary of xs.
// Returns the zero value for an empty slice.
func FiveNumSummary(xs []float64) FiveNum {
	if len(xs) == 0 {
		return FiveNum{}
	}

	s := stats.Sample{Xs: append([]float64(nil), xs...)}
	s.Sort()

	return FiveNum{
		Min:    s.Quantile(0),
		Q1:     s.Quantile(0.25),
		Median: s.Quantile(0.5),
		Q3:     s.Quantile(0.75),
		Max:    s.Quantile(1),
	}
}

// HistogramBin is one equal-width bin: values in [Lo, Hi), except the last
// bin which also includes Hi.
type HistogramBin struct {
	Lo    float64
	Hi    float64
	Count int
}

// Histogram groups xs into the given number of equal-width bins spanning
// [min(xs), max(xs)]. Rendering is the caller's concern; this only does
// the counting. Returns nil when xs is empty or bins < 1.
func Histogram(xs []float64, bins int) []HistogramBin {
	if len(xs) == 0 || bins < 1 {
		return nil
	}

	lo, hi := xs[0], xs[0]
	for _, x := range xs {
		if x < lo {
			lo = x
		}
		if x > hi {
			hi = x
		}
	}

	out := make([]HistogramBin, bins)
	width := (hi - lo) / float64(bins)
	for i := range out {
		out[i].Lo = lo + float64(i)*width
		out[i].Hi = lo + float64(i+1)*width
	}
	out[bins-1].Hi = hi

	if width == 0 {
		// All values identical: everything lands in the last bin.
		out[bins-1].Count = len(xs)
		return out
	}

	for _, x := range xs {
		i := int(math.Floor((x - lo) / width))
		if i >= bins {
			i = bins - 1
		}
		out[i].Count++
	}
	return out
}

// AbsoluteErrors maps a trial collection to the |estimate − N| columns the
// comparison box-plots, one slice per estimator, in trial order.
func AbsoluteErrors(pairs []EstimatePair, populationSize int) (maxErrs, meanErrs []float64) {
	truth := float64(populationSize)
	maxErrs = make([]float64, len(pairs))
	meanErrs = make([]float64, len(pairs))
	for i, p := range pairs {
		maxErrs[i] = math.Abs(p.MaxObserved - truth)
		meanErrs[i] = math.Abs(p.DoubleMean - truth)
	}
	return maxErrs, meanErrs
}
