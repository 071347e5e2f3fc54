package sampling

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUniformBytesFillsBuffer(t *testing.T) {
	buf := make([]byte, 64)
	require.NoError(t, UniformBytes(buf))
	nonZero := false
	for _, b := range buf {
		if b != 0 {
			nonZero = true
			break
		}
	}
	require.True(t, nonZero, "OS random source returned all-zero buffer")
}

func TestSourceDeterministic(t *testing.T) {
	seed := [32]byte{1, 2, 3}
	a := NewSourceFromSeed(seed)
	b := NewSourceFromSeed(seed)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Uint64(), b.Uint64())
	}
}

func TestUniformSamplerInRange(t *testing.T) {
	src := NewSourceFromSeed([32]byte{9})
	sampler := NewUniformSampler(src)
	const n, q = 256, uint64(7681)
	p := sampler.Read(n, q)
	for i := 0; i < n; i++ {
		require.Less(t, p.At(i), q)
	}
}

func TestUniformSamplerDistribution(t *testing.T) {
	src := NewSourceFromSeed([32]byte{7})
	sampler := NewUniformSampler(src)
	const q = uint64(7681)
	p := sampler.Read(20000, q)
	buckets := make(map[uint64]int)
	for i := 0; i < 20000; i++ {
		buckets[p.At(i)/768]++
	}
	require.Greater(t, len(buckets), 5, "uniform sampler output looks degenerate")
}

func TestGaussianSamplerInRange(t *testing.T) {
	src := NewSourceFromSeed([32]byte{3})
	sampler := NewGaussianSampler(src, 3.0)
	const n, q = 256, uint64(7681)
	p := sampler.Read(n, q)
	for i := 0; i < n; i++ {
		require.Less(t, p.At(i), q)
	}
}

func TestGaussianSamplerCentersNearZero(t *testing.T) {
	src := NewSourceFromSeed([32]byte{5})
	sampler := NewGaussianSampler(src, 3.0)
	const q = uint64(18433)
	p := sampler.Read(2000, q)
	small := 0
	for i := 0; i < 2000; i++ {
		c := p.At(i)
		if c < 20 || c > q-20 {
			small++
		}
	}
	require.Greater(t, small, 1000, "gaussian samples do not concentrate near zero")
}
