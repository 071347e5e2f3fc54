package ring

import "encoding/binary"

// Polynomial is an element of R_q = Z_q[x]/(x^n + 1): n coefficients, each
// in the canonical range [0, q). Values are treated as immutable by
// convention; every operation below returns a new Polynomial rather than
// mutating its receiver.
type Polynomial struct {
	n    int
	q    uint64
	coef []uint64
}

// New builds a Polynomial of dimension n over modulus q from coef, reducing
// every entry into [0, q). len(coef) must equal n.
func New(n int, q uint64, coef []uint64) (*Polynomial, error) {
	if len(coef) != n {
		return nil, dimensionMismatch("New", len(coef), n)
	}
	c := make([]uint64, n)
	for i, v := range coef {
		c[i] = v % q
	}
	return &Polynomial{n: n, q: q, coef: c}, nil
}

// Zero returns the additive identity of R_q with dimension n.
func Zero(n int, q uint64) *Polynomial {
	return &Polynomial{n: n, q: q, coef: make([]uint64, n)}
}

// N returns the ring dimension.
func (p *Polynomial) N() int { return p.n }

// Q returns the coefficient modulus.
func (p *Polynomial) Q() uint64 { return p.q }

// Coeffs returns a copy of the coefficient vector.
func (p *Polynomial) Coeffs() []uint64 {
	out := make([]uint64, p.n)
	copy(out, p.coef)
	return out
}

// At returns the coefficient at index i.
func (p *Polynomial) At(i int) uint64 { return p.coef[i] }

func (p *Polynomial) checkShape(op string, other *Polynomial) error {
	if p.n != other.n {
		return dimensionMismatch(op, p.n, other.n)
	}
	if p.q != other.q {
		return modulusMismatch(op, p.q, other.q)
	}
	return nil
}

// Add returns p + other, coefficient-wise mod q.
func (p *Polynomial) Add(other *Polynomial) (*Polynomial, error) {
	if err := p.checkShape("Add", other); err != nil {
		return nil, err
	}
	out := make([]uint64, p.n)
	for i := range out {
		out[i] = AddMod(p.coef[i], other.coef[i], p.q)
	}
	return &Polynomial{n: p.n, q: p.q, coef: out}, nil
}

// Sub returns p - other, coefficient-wise mod q.
func (p *Polynomial) Sub(other *Polynomial) (*Polynomial, error) {
	if err := p.checkShape("Sub", other); err != nil {
		return nil, err
	}
	out := make([]uint64, p.n)
	for i := range out {
		out[i] = SubMod(p.coef[i], other.coef[i], p.q)
	}
	return &Polynomial{n: p.n, q: p.q, coef: out}, nil
}

// Neg returns -p, coefficient-wise mod q.
func (p *Polynomial) Neg() *Polynomial {
	out := make([]uint64, p.n)
	for i, c := range p.coef {
		if c == 0 {
			out[i] = 0
		} else {
			out[i] = p.q - c
		}
	}
	return &Polynomial{n: p.n, q: p.q, coef: out}
}

// ScalarMul returns p with every coefficient multiplied by s mod q.
func (p *Polynomial) ScalarMul(s uint64) *Polynomial {
	s %= p.q
	out := make([]uint64, p.n)
	for i, c := range p.coef {
		out[i] = MulMod(c, s, p.q)
	}
	return &Polynomial{n: p.n, q: p.q, coef: out}
}

// Equal reports whether p and other have identical n, q, and coefficients.
func (p *Polynomial) Equal(other *Polynomial) bool {
	if p.n != other.n || p.q != other.q {
		return false
	}
	for i := range p.coef {
		if p.coef[i] != other.coef[i] {
			return false
		}
	}
	return true
}

// Mul returns the product p*other in R_q. It uses ctx when non-nil and
// shape-compatible with p, otherwise falls back to schoolbook convolution
// reduced modulo x^n + 1 (see mulSchoolbook).
func (p *Polynomial) Mul(other *Polynomial, ctx *NTTContext) (*Polynomial, error) {
	if err := p.checkShape("Mul", other); err != nil {
		return nil, err
	}
	if ctx != nil && ctx.n == p.n && ctx.q == p.q {
		return ctx.Multiply(p, other)
	}
	return mulSchoolbook(p, other), nil
}

// mulSchoolbook computes the negacyclic convolution of p and other directly:
// coefficients past degree n-1 wrap around with a sign flip, since x^n = -1
// in R_q.
func mulSchoolbook(p, other *Polynomial) *Polynomial {
	n, q := p.n, p.q
	out := make([]uint64, n)
	for i := 0; i < n; i++ {
		if p.coef[i] == 0 {
			continue
		}
		for j := 0; j < n; j++ {
			if other.coef[j] == 0 {
				continue
			}
			term := MulMod(p.coef[i], other.coef[j], q)
			k := i + j
			if k < n {
				out[k] = AddMod(out[k], term, q)
			} else {
				out[k-n] = SubMod(out[k-n], term, q)
			}
		}
	}
	return &Polynomial{n: n, q: q, coef: out}
}

// Bytes serializes p as n (native-width int), q (8 bytes), and the n
// coefficients, all in host byte order. This encoding is used only as
// pre-image to Hash; it is not a portable wire format, since host byte
// order means identical polynomials serialize differently on big- and
// little-endian machines.
func (p *Polynomial) Bytes() []byte {
	out := make([]byte, 0, 8+8+8*p.n)
	var nBuf, qBuf [8]byte
	binary.NativeEndian.PutUint64(nBuf[:], uint64(p.n))
	binary.NativeEndian.PutUint64(qBuf[:], p.q)
	out = append(out, nBuf[:]...)
	out = append(out, qBuf[:]...)
	for _, c := range p.coef {
		var cBuf [8]byte
		binary.NativeEndian.PutUint64(cBuf[:], c)
		out = append(out, cBuf[:]...)
	}
	return out
}

// Signal maps every coefficient to the nearer of {0, floor(q/2)} under the
// cyclic metric on Z_q, ties broken toward 0. This is the verification
// step's noise-tolerance layer.
func (p *Polynomial) Signal() *Polynomial {
	half := p.q / 2
	out := make([]uint64, p.n)
	for i, c := range p.coef {
		out[i] = nearestAnchor(c, half, p.q)
	}
	return &Polynomial{n: p.n, q: p.q, coef: out}
}

// nearestAnchor returns whichever of {0, half} is cyclically closer to x
// modulo q, with ties going to 0.
func nearestAnchor(x, half, q uint64) uint64 {
	distTo := func(anchor uint64) uint64 {
		var d uint64
		if x >= anchor {
			d = x - anchor
		} else {
			d = anchor - x
		}
		if d > q-d {
			d = q - d
		}
		return d
	}
	d0 := distTo(0)
	dHalf := distTo(half)
	if dHalf < d0 {
		return half
	}
	return 0
}
