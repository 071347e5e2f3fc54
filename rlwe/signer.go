package rlwe

import (
	"errors"
	"fmt"

	"github.com/latticelab/rlwe-blindsign/hash"
	"github.com/latticelab/rlwe-blindsign/params"
	"github.com/latticelab/rlwe-blindsign/ring"
	"github.com/latticelab/rlwe-blindsign/sampling"
)

// ErrNoKey is returned by any protocol operation that requires a key pair
// before GenerateKeys has produced one: it is a caller-ordering error, not
// one of the ring/sampling failure kinds.
var ErrNoKey = errors.New("rlwe: signer has no key; call GenerateKeys first")

// Signer holds the parameters, key pair, and samplers for one run of the
// RLWE blind-signature protocol. A single Signer plays both the client and
// server roles in tests; a real deployment runs the client- and
// server-tagged methods in separate processes, never sharing S.
type Signer struct {
	n     int
	q     uint64
	sigma float64

	ntt *ring.NTTContext // nil when (n, q) has no PsiTables entry; Mul falls back to schoolbook.

	source   *sampling.Source
	uniform  *sampling.UniformSampler
	gaussian *sampling.GaussianSampler

	keys *KeyPair
}

// NewSigner constructs a Signer for the named catalog level (see
// params.Lookup), seeding its samplers from the OS random source.
func NewSigner(levelName string) (*Signer, error) {
	p, err := params.Lookup(levelName)
	if err != nil {
		return nil, fmt.Errorf("rlwe: new signer: %w", err)
	}
	return NewSignerWithParams(p.N, p.Q, p.Sigma)
}

// NewSignerWithParams constructs a Signer for an explicit (n, q, sigma),
// for catalog levels and for hand-built experimentation alike.
func NewSignerWithParams(n int, q uint64, sigma float64) (*Signer, error) {
	source, err := sampling.NewSource()
	if err != nil {
		return nil, fmt.Errorf("rlwe: new signer: %w", err)
	}
	return newSignerWithSource(n, q, sigma, source)
}

func newSignerWithSource(n int, q uint64, sigma float64, source *sampling.Source) (*Signer, error) {
	var ctx *ring.NTTContext
	if c, err := ring.NewNTTContext(n, q); err == nil {
		ctx = c
	}

	return &Signer{
		n:        n,
		q:        q,
		sigma:    sigma,
		ntt:      ctx,
		source:   source,
		uniform:  sampling.NewUniformSampler(source),
		gaussian: sampling.NewGaussianSampler(source, sigma),
	}, nil
}

// N returns the signer's ring dimension.
func (s *Signer) N() int { return s.n }

// Q returns the signer's modulus.
func (s *Signer) Q() uint64 { return s.q }

// PublicKey returns a copy of the current public pair (A, B). It returns
// ErrNoKey if called before GenerateKeys; it does not panic.
func (s *Signer) PublicKey() (PublicKey, error) {
	if s.keys == nil {
		return PublicKey{}, ErrNoKey
	}
	return PublicKey{A: s.keys.A, B: s.keys.B}, nil
}

// GenerateKeys draws a <- sample_uniform, s <- sample_gaussian(sigma),
// e <- sample_gaussian(sigma), and sets b = a*s + e, replacing any
// previous key pair. generateKeys is idempotent in effect: calling it
// again simply produces a fresh, independent key pair.
func (s *Signer) GenerateKeys() error {
	a := s.uniform.Read(s.n, s.q)
	secret := s.gaussian.Read(s.n, s.q)
	e := s.gaussian.Read(s.n, s.q)

	as, err := a.Mul(secret, s.ntt)
	if err != nil {
		return fmt.Errorf("rlwe: generate keys: %w", err)
	}
	b, err := as.Add(e)
	if err != nil {
		return fmt.Errorf("rlwe: generate keys: %w", err)
	}

	s.keys = &KeyPair{A: a, B: b, S: secret}
	return nil
}

// HashToPolynomial computes the client-side target Y = MessageHash(m).
func (s *Signer) HashToPolynomial(m []byte) *ring.Polynomial {
	return hash.MessageHash(m, s.n, s.q)
}

// BlindedMessage is the client-held blinding material produced by
// ComputeBlindedMessage: the blinded value sent to the server, and the
// blinding factor r retained by the client for unblinding. r MUST NOT be
// transmitted to the server.
type BlindedMessage struct {
	Value *ring.Polynomial
	R     *ring.Polynomial
}

// ComputeBlindedMessage runs the client's blinding step: r <-
// sample_gaussian(sigma), Y <- hashToPolynomial(m), and returns
// (Y + a*r, r). It requires the signer's public A, so a key pair must
// already exist (in a real deployment the client holds only the public
// key; here the same Signer instance supplies it via PublicKey's
// invariants).
func (s *Signer) ComputeBlindedMessage(m []byte, pub PublicKey) (BlindedMessage, error) {
	r := s.gaussian.Read(s.n, s.q)
	y := s.HashToPolynomial(m)

	ar, err := pub.A.Mul(r, s.ntt)
	if err != nil {
		return BlindedMessage{}, fmt.Errorf("rlwe: compute blinded message: %w", err)
	}
	blinded, err := y.Add(ar)
	if err != nil {
		return BlindedMessage{}, fmt.Errorf("rlwe: compute blinded message: %w", err)
	}
	return BlindedMessage{Value: blinded, R: r}, nil
}

// BlindSign runs the server's signing step on a blinded value it received
// from a client: e1 <- sample_gaussian(sigma), return s*blinded + e1. The
// server never sees Y or r.
func (s *Signer) BlindSign(blinded *ring.Polynomial) (*ring.Polynomial, error) {
	if s.keys == nil {
		return nil, ErrNoKey
	}
	e1 := s.gaussian.Read(s.n, s.q)

	sb, err := s.keys.S.Mul(blinded, s.ntt)
	if err != nil {
		return nil, fmt.Errorf("rlwe: blind sign: %w", err)
	}
	sig, err := sb.Add(e1)
	if err != nil {
		return nil, fmt.Errorf("rlwe: blind sign: %w", err)
	}
	return sig, nil
}

// ComputeSignature runs the client's unblinding step: return C - r*b. The
// arithmetic identity s*(Y + a*r) + e1 - r*(a*s + e) = s*Y + e1 - r*e
// means the result equals s*Y plus noise of norm roughly sigma*||r||,
// which Verify's signal rounding must tolerate.
func (s *Signer) ComputeSignature(c, r *ring.Polynomial, pub PublicKey) (*ring.Polynomial, error) {
	rb, err := r.Mul(pub.B, s.ntt)
	if err != nil {
		return nil, fmt.Errorf("rlwe: compute signature: %w", err)
	}
	sig, err := c.Sub(rb)
	if err != nil {
		return nil, fmt.Errorf("rlwe: compute signature: %w", err)
	}
	return sig, nil
}

// Verify computes Y = hashToPolynomial(m) and expected = s*Y, and accepts
// iff expected.Signal() equals sig.Signal() coefficient-wise. Verification
// requires the signer's own secret S: this is a symmetric-style check, not
// a public-key verification, and the secret must never be exposed through
// any other API. A rejection is never an error; it is reported as a plain
// false.
func (s *Signer) Verify(m []byte, sig *ring.Polynomial) (bool, error) {
	if s.keys == nil {
		return false, ErrNoKey
	}
	y := s.HashToPolynomial(m)
	expected, err := s.keys.S.Mul(y, s.ntt)
	if err != nil {
		return false, fmt.Errorf("rlwe: verify: %w", err)
	}
	return expected.Signal().Equal(sig.Signal()), nil
}
