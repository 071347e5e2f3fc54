// Package hash implements SHA-256 digesting of byte strings and serialized
// polynomials, and the counter-mode MessageHash expansion that maps
// arbitrary messages into R_q.
package hash

import (
	"crypto/sha256"

	"github.com/latticelab/rlwe-blindsign/ring"
)

// Sum256 returns the SHA-256 digest of data.
func Sum256(data []byte) [32]byte {
	return sha256.Sum256(data)
}

// SumPolynomial returns the SHA-256 digest of p's byte encoding (ring.Polynomial.Bytes).
func SumPolynomial(p *ring.Polynomial) [32]byte {
	return sha256.Sum256(p.Bytes())
}
