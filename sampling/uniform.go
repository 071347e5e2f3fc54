package sampling

import (
	"math/bits"

	"github.com/latticelab/rlwe-blindsign/ring"
)

// UniformSampler draws polynomials with coefficients uniform over [0, q).
// The masked rejection-sampling shape mirrors Pro7ech/lattigo's
// ring.UniformSampler.read: mask to the smallest power-of-two-minus-one
// covering q, draw a masked word, and resample on an out-of-range draw.
// This removes the modular-reduction bias a naive "draw 64 bits mod q"
// construction would introduce.
type UniformSampler struct {
	source *Source
}

// NewUniformSampler builds a UniformSampler drawing from source.
func NewUniformSampler(source *Source) *UniformSampler {
	return &UniformSampler{source: source}
}

// Read returns a polynomial of dimension n over modulus q with coefficients
// drawn uniformly from [0, q).
func (u *UniformSampler) Read(n int, q uint64) *ring.Polynomial {
	mask := uint64(1)<<bits.Len64(q-1) - 1
	coef := make([]uint64, n)
	for i := range coef {
		coef[i] = u.sampleOne(q, mask)
	}
	p, err := ring.New(n, q, coef)
	if err != nil {
		// coef is always length n and every entry is already < q.
		panic("sampling: internal invariant violated building uniform polynomial")
	}
	return p
}

func (u *UniformSampler) sampleOne(q, mask uint64) uint64 {
	for {
		c := u.source.Uint64() & mask
		if c < q {
			return c
		}
	}
}
