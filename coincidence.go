package estbench

import (
	"fmt"
	"math"
)

// Event decides whether one simulated scenario counts as a hit.
// Implementations draw everything they need through the supplied Sampler
// and must not retain it between invocations.
type Event func(s *Sampler) bool

// EstimateProbability estimates P(event) by simulating the event trials
// times and returning the hit proportion together with its binomial
// standard error √(p̂(1−p̂)/trials).
//
// The estimate converges at the usual 1/√trials Monte Carlo rate; the
// returned standard error tells you how many digits to believe.
func EstimateProbability(trials int, seed int64, event Event) (p, se float64, err error) {
	if trials < 1 {
		return 0, 0, fmt.Errorf("%w: trials %d < 1", ErrInvalidArgument, trials)
	}
	if event == nil {
		return 0, 0, fmt.Errorf("%w: nil event", ErrInvalidArgument)
	}

	s := NewSampler(seed)
	hits := 0
	for i := 0; i < trials; i++ {
		if event(s) {
			hits++
		}
	}

	p = float64(hits) / float64(trials)
	se = math.Sqrt(p * (1 - p) / float64(trials))
	return p, se, nil
}

// MeetingEvent builds the classic rendezvous event: two people arrive
// independently and uniformly within a window of the given length, and
// they meet when their arrival times differ by at most wait.
//
// The closed-form answer is 1 − ((window−wait)/window)², which makes this
// a convenient calibration target for the Monte Carlo estimate.
func MeetingEvent(window, wait float64) Event {
	return func(s *Sampler) bool {
		a := s.UniformFloat64(0, window)
		b := s.UniformFloat64(0, window)
		return math.Abs(a-b) <= wait
	}
}
