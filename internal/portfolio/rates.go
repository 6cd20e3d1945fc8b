package portfolio

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// RateSource draws an annual return rate (in percent) within [low, high].
type RateSource interface {
	Draw(low, high float64) float64
}

// UniformRates draws uniformly from a seeded PCG stream.
type UniformRates struct {
	src rand.Source
}

// NewUniformRates returns a deterministic source for the given seed.
func NewUniformRates(seed uint64) *UniformRates {
	return &UniformRates{src: rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)}
}

func (u *UniformRates) Draw(low, high float64) float64 {
	if high <= low {
		return low
	}
	return distuv.Uniform{Min: low, Max: high, Src: u.src}.Rand()
}

// FixedRate always returns the same rate, clamped to the requested band. Useful for tests.
type FixedRate float64

func (f FixedRate) Draw(low, high float64) float64 {
	r := float64(f)
	if r < low {
		return low
	}
	if r > high {
		return high
	}
	return r
}
