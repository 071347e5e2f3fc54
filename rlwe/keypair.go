// Package rlwe implements the three-party RLWE blind-signature protocol:
// key generation, client-side blinding, server-side blind signing, client
// unblinding, and server-side verification.
package rlwe

import "github.com/latticelab/rlwe-blindsign/ring"

// KeyPair holds the public pair (A, B) and the secret polynomial S, with
// the invariant B = A*S + E for a freshly sampled error E. A Signer owns
// its KeyPair exclusively; callers may read the public pair via
// Signer.PublicKey but the secret is never exposed outside this package.
type KeyPair struct {
	A *ring.Polynomial
	B *ring.Polynomial
	S *ring.Polynomial
}

// PublicKey is the public half of a KeyPair.
type PublicKey struct {
	A *ring.Polynomial
	B *ring.Polynomial
}
