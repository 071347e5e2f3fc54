package hash

import (
	"crypto/sha256"
	"encoding/binary"

	"github.com/latticelab/rlwe-blindsign/ring"
)

// MessageHash maps an arbitrary byte string m to a polynomial H(m) of
// dimension n over modulus q, with every coefficient in {0, floor(q/2)}.
// It repeatedly hashes a 4-byte host-byte-order counter concatenated with
// m, appending each digest's bits to an output bit-stream until n bits
// have been produced, then maps bit 0 -> 0 and bit 1 -> floor(q/2). This
// mirrors the "repeated SHA-256 as XOF" shape used for deterministic
// matrix/message expansion in Kyber-style constructions, adapted here to
// a two-point output alphabet instead of a uniform coefficient range.
//
// Byte-order note: the counter is serialized in host byte order, so
// MessageHash is not portable across big- and little-endian hosts.
// MessageHash is otherwise deterministic: the same m always yields the
// same H(m).
func MessageHash(m []byte, n int, q uint64) *ring.Polynomial {
	half := q / 2
	coef := make([]uint64, n)

	bitsNeeded := n
	bitIdx := 0
	var counter uint32
	for bitIdx < bitsNeeded {
		var counterBuf [4]byte
		binary.NativeEndian.PutUint32(counterBuf[:], counter)

		h := sha256.New()
		h.Write(counterBuf[:])
		h.Write(m)
		digest := h.Sum(nil)

		for byteIdx := 0; byteIdx < len(digest) && bitIdx < bitsNeeded; byteIdx++ {
			b := digest[byteIdx]
			for bit := 0; bit < 8 && bitIdx < bitsNeeded; bit++ {
				if b&(1<<bit) != 0 {
					coef[bitIdx] = half
				}
				bitIdx++
			}
		}
		counter++
	}

	p, err := ring.New(n, q, coef)
	if err != nil {
		panic("hash: internal invariant violated building message polynomial")
	}
	return p
}
