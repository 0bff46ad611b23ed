// Package initializers provides random number generators for setting the initial weights of a
// backprop.Network. Each generator draws from the global source in math/rand until it is given a
// seed, after which it is reproducible.
package initializers

import (
	"math"
	"math/rand"
)

// source wraps the global functions of math/rand, or a private seeded *rand.Rand
type source struct {
	r *rand.Rand
}

func (s *source) seed(seed int64) {
	s.r = rand.New(rand.NewSource(seed))
}

func (s source) float64() float64 {
	if s.r == nil {
		return rand.Float64()
	}
	return s.r.Float64()
}

func (s source) normFloat64() float64 {
	if s.r == nil {
		return rand.NormFloat64()
	}
	return s.r.NormFloat64()
}

type uniform struct {
	source
	lower, upper float64
}

// Uniform returns an RNG that gives values uniformly spread between its bounds, which can be set
// by Bounds. The default bounds are [-1, 1).
func Uniform() *uniform {
	return &uniform{lower: -1, upper: 1}
}

// Bounds sets the range of a Uniform RNG, returning it. If lower > upper, they are swapped.
func (u *uniform) Bounds(lower, upper float64) *uniform {
	if lower > upper {
		lower, upper = upper, lower
	}

	u.lower = lower
	u.upper = upper
	return u
}

// Seed makes the RNG use its own source, seeded with the given value
func (u *uniform) Seed(seed int64) *uniform {
	u.seed(seed)
	return u
}

// Gen is the implementation of backprop.RNG for Uniform. It returns a random number.
func (u *uniform) Gen() float64 {
	return u.float64()*(u.upper-u.lower) + u.lower
}

type normal struct {
	source
	µ, σ float64
}

// Normal returns an RNG that gives values within a normal distribution. The center and standard
// deviation can be set by Mean and SD, respectively. The default is the standard normal
// distribution.
func Normal() *normal {
	return &normal{µ: 0, σ: 1}
}

// SD sets the value of the standard deviation of the normal distribution.
func (n *normal) SD(sd float64) *normal {
	n.σ = sd
	return n
}

// Mean sets the center of the normal distribution.
func (n *normal) Mean(mean float64) *normal {
	n.µ = mean
	return n
}

// Seed makes the RNG use its own source, seeded with the given value
func (n *normal) Seed(seed int64) *normal {
	n.seed(seed)
	return n
}

// Gen is the implementation of backprop.RNG for Normal. It returns a random number.
func (n *normal) Gen() float64 {
	return n.normFloat64()*n.σ + n.µ
}

type truncNormal struct {
	*normal
	trunc float64
}

const defaultTrunc float64 = 2.0

// TruncNormal returns an RNG that gives values within an truncated normal distribution. The
// distribution is truncated at 2 standard deviations. The center and standard deviation can be set
// in the same way as Normal, because Normal is embedded in the TruncNormal type.
//
// Additionally, the number of standard deviations to truncate at can be set by Trunc.
func TruncNormal() *truncNormal {
	return &truncNormal{Normal(), defaultTrunc}
}

// Trunc sets the number of standard deviations to keep on either side. Trunc will panic if given
// sds <= 0.
func (t *truncNormal) Trunc(sds float64) *truncNormal {
	if sds <= 0 {
		panic("given number of standard deviations to truncate after is <= 0")
	}

	t.trunc = sds
	return t
}

// Seed makes the RNG use its own source, seeded with the given value
func (t *truncNormal) Seed(seed int64) *truncNormal {
	t.seed(seed)
	return t
}

// Gen is the implementation of backprop.RNG for TruncNormal. It returns a random number.
func (t *truncNormal) Gen() float64 {
	for {
		v := t.normFloat64()
		if v < -t.trunc || v > t.trunc {
			continue
		}

		return v*t.σ + t.µ
	}
}

// Xavier returns a Normal RNG scaled for a layer with the given number of inputs and outputs, with
// variance 2 / (fanIn + fanOut).
func Xavier(fanIn, fanOut int) *normal {
	return Normal().SD(math.Sqrt(2 / float64(fanIn+fanOut)))
}

// He returns a Normal RNG scaled for a layer with the given number of inputs, with variance
// 2 / fanIn.
func He(fanIn int) *normal {
	return Normal().SD(math.Sqrt(2 / float64(fanIn)))
}
