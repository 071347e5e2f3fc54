package sampling

import (
	"math"

	"github.com/latticelab/rlwe-blindsign/ring"
)

// GaussianSampler draws polynomials whose coefficients approximate the
// centered discrete Gaussian with standard deviation Sigma, canonicalized
// into [0, q) by rounding and reducing each sample. It draws from two
// fresh uniform-[0,1) values per coefficient pair via Box-Muller; this is
// research-grade, not constant-time or fully discretized, and should not
// be used where a CDT- or Karney-style sampler is required.
type GaussianSampler struct {
	source *Source
	sigma  float64
}

// NewGaussianSampler builds a GaussianSampler drawing from source with the
// given standard deviation.
func NewGaussianSampler(source *Source, sigma float64) *GaussianSampler {
	return &GaussianSampler{source: source, sigma: sigma}
}

// Read returns a polynomial of dimension n over modulus q with coefficients
// drawn from the discretized centered Gaussian, reduced into [0, q).
func (g *GaussianSampler) Read(n int, q uint64) *ring.Polynomial {
	coef := make([]uint64, n)
	for i := 0; i < n; i += 2 {
		x, y := g.boxMullerPair()
		coef[i] = canonicalize(x, g.sigma, q)
		if i+1 < n {
			coef[i+1] = canonicalize(y, g.sigma, q)
		}
	}
	p, err := ring.New(n, q, coef)
	if err != nil {
		panic("sampling: internal invariant violated building gaussian polynomial")
	}
	return p
}

// boxMullerPair returns two independent standard-normal samples from two
// fresh uniform-[0,1) draws.
func (g *GaussianSampler) boxMullerPair() (float64, float64) {
	u1 := g.source.Float64()
	for u1 == 0 {
		u1 = g.source.Float64()
	}
	u2 := g.source.Float64()
	r := math.Sqrt(-2 * math.Log(u1))
	theta := 2 * math.Pi * u2
	return r * math.Cos(theta), r * math.Sin(theta)
}

// canonicalize scales a standard-normal sample by sigma, rounds to the
// nearest integer, and reduces into [0, q) by adding q when negative.
func canonicalize(z, sigma float64, q uint64) uint64 {
	rounded := int64(math.Round(z * sigma))
	m := int64(q)
	rounded %= m
	if rounded < 0 {
		rounded += m
	}
	return uint64(rounded)
}
