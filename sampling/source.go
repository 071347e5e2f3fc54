// Package sampling provides OS-backed randomness and the uniform and
// discrete-Gaussian samplers that feed secret, error, and blinding
// polynomials into the RLWE protocol.
package sampling

import (
	"crypto/rand"
	"encoding/binary"
	mrand "math/rand/v2"
)

// UniformBytes fills out from the OS cryptographic random source. Failure
// to obtain entropy, or a short read, is reported as an *EnvironmentError
// and is fatal to the caller: there is no retry.
func UniformBytes(out []byte) error {
	if _, err := rand.Read(out); err != nil {
		return &EnvironmentError{Reason: "OS random source unavailable: " + err.Error()}
	}
	return nil
}

// Source is a seeded, fast random stream used by the uniform and Gaussian
// samplers. It wraps math/rand/v2's ChaCha8, expanding a short OS-entropy
// seed into an arbitrarily long deterministic stream rather than reading
// the OS source once per coefficient.
type Source struct {
	chacha *mrand.ChaCha8
	r      *mrand.Rand
}

func newSource(chacha *mrand.ChaCha8) *Source {
	return &Source{chacha: chacha, r: mrand.New(chacha)}
}

// NewSource seeds a Source from the OS random source. It returns an
// *EnvironmentError if entropy cannot be obtained.
func NewSource() (*Source, error) {
	var seed [32]byte
	if err := UniformBytes(seed[:]); err != nil {
		return nil, err
	}
	return newSource(mrand.NewChaCha8(seed)), nil
}

// NewSourceFromSeed builds a deterministic Source from an explicit seed,
// for reproducible tests. It never fails.
func NewSourceFromSeed(seed [32]byte) *Source {
	return newSource(mrand.NewChaCha8(seed))
}

// Uint64 returns the next 64-bit word of the stream.
func (s *Source) Uint64() uint64 {
	return s.r.Uint64()
}

// Read fills buf with bytes from the stream. It never fails.
func (s *Source) Read(buf []byte) {
	full := len(buf) / 8
	for i := 0; i < full; i++ {
		binary.LittleEndian.PutUint64(buf[i*8:], s.r.Uint64())
	}
	rem := len(buf) - full*8
	if rem > 0 {
		var tail [8]byte
		binary.LittleEndian.PutUint64(tail[:], s.r.Uint64())
		copy(buf[full*8:], tail[:rem])
	}
}

// Float64 returns the next value in [0, 1) drawn from the stream.
func (s *Source) Float64() float64 {
	return s.r.Float64()
}
