// Package rng implements the deterministic pseudo-random streams consumed by
// the simulation engine.
//
// The base generator is a 31-bit linear congruential generator. It is not
// cryptographically strong and is not meant to be: identical seed means
// identical sequence, always, which is what makes runs reproducible.
//
// # Thread Safety
//
// Stream instances are NOT thread-safe and must not be shared across
// concurrent runs. Construct fresh streams per run via [NewStreams].
package rng

import "math"

const (
	multiplier = 1103515245
	increment  = 12345
	mask       = 1<<31 - 1 // low 31 bits of the state
)

// minUniform is the generator's own resolution, the smallest non-zero value
// Next can return. Uniform draws feeding a logarithm are clamped to it so
// ln(u) stays defined.
const minUniform = 1.0 / float64(mask)

// Stream is a stateful deterministic generator owning a single 31-bit seed.
type Stream struct {
	seed int64
}

// New creates a Stream from the given seed. Only the low 31 bits are kept.
func New(seed int64) *Stream {
	return &Stream{seed: seed & mask}
}

// Next advances the state as seed*1103515245 + 12345 mod 2^31 and returns
// the state normalized by 2^31 - 1.
func (s *Stream) Next() float64 {
	s.seed = (s.seed*multiplier + increment) & mask
	return float64(s.seed) / float64(mask)
}

// NextNormal returns one Box-Muller draw with the given mean and standard
// deviation, consuming two consecutive uniforms. The first uniform is
// clamped away from exactly zero before the logarithm.
func (s *Stream) NextNormal(mean, std float64) float64 {
	u1 := s.Next()
	u2 := s.Next()
	if u1 < minUniform {
		u1 = minUniform
	}
	z := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
	return mean + z*std
}

// NextTruncatedNormal returns a single normal draw hard-clamped into
// [lo, hi]. Draws outside the range are clipped, not resampled, so
// probability mass piles up on the boundaries.
func (s *Stream) NextTruncatedNormal(mean, std, lo, hi float64) float64 {
	return clamp(s.NextNormal(mean, std), lo, hi)
}

// NextPoisson is a Bernoulli trial despite the name: one uniform draw,
// 1 if it falls below mean, else 0, clamped into [lo, hi]. The setback
// formulas rely on the 0/1 output, so it stays a literal trial rather than
// a true Poisson count.
func (s *Stream) NextPoisson(mean, lo, hi float64) float64 {
	v := 0.0
	if s.Next() < mean {
		v = 1.0
	}
	return clamp(v, lo, hi)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
