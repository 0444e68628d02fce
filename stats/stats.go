// Package stats keeps running statistics over autoplayed games.
package stats

import "math"

const (
	Epsilon = 1e-6
)

func FuzzyEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Statistic is a running mean and variance (Welford's method) plus the
// extremes seen so far.
type Statistic struct {
	n    int
	mean float64
	m2   float64
	min  float64
	max  float64
}

func (s *Statistic) Push(val float64) {
	s.n++
	if s.n == 1 {
		s.min, s.max = val, val
	}
	s.min = math.Min(s.min, val)
	s.max = math.Max(s.max, val)
	delta := val - s.mean
	s.mean += delta / float64(s.n)
	s.m2 += delta * (val - s.mean)
}

func (s *Statistic) Mean() float64 {
	return s.mean
}

// Variance is the sample variance; zero until there are two values.
func (s *Statistic) Variance() float64 {
	if s.n <= 1 {
		return 0.0
	}
	return s.m2 / float64(s.n-1)
}

func (s *Statistic) Stdev() float64 {
	return math.Sqrt(s.Variance())
}

func (s *Statistic) StandardError() float64 {
	if s.n == 0 {
		return 0.0
	}
	return math.Sqrt(s.Variance() / float64(s.n))
}

func (s *Statistic) Iterations() int {
	return s.n
}

func (s *Statistic) Min() float64 {
	return s.min
}

func (s *Statistic) Max() float64 {
	return s.max
}

// Proportion is a count of successes out of a number of trials, with a
// normal-approximation confidence interval.
type Proportion struct {
	Successes float64
	Trials    int
}

func (p Proportion) Value() float64 {
	if p.Trials == 0 {
		return 0.0
	}
	return p.Successes / float64(p.Trials)
}

// Interval returns the half-width of the confidence interval around Value,
// for a confidence level in percent.
func (p Proportion) Interval(confidence float64) float64 {
	if p.Trials == 0 {
		return 0.0
	}
	v := p.Value()
	return ZVal(confidence) * math.Sqrt(v*(1-v)/float64(p.Trials))
}
