package ring

// Forward computes the negacyclic NTT of p in place on a copy of its
// coefficients and returns the transformed Polynomial: twist by psi^i,
// permute by bit-reversal, then run Cooley-Tukey radix-2 butterflies with
// root omega for log2(n) stages. The psi^i twist folds the x^n = -1
// wraparound into a standard cyclic NTT with root omega = psi^2, so the
// coefficient-wise product in the transformed domain matches the
// negacyclic convolution once inverted.
func (c *NTTContext) Forward(p *Polynomial) (*Polynomial, error) {
	if p.n != c.n || p.q != c.q {
		return nil, &ShapeError{Op: "Forward", Reason: "polynomial does not match NTT context"}
	}
	a := make([]uint64, c.n)
	for i, coef := range p.coef {
		a[i] = MulMod(coef, c.table.Twist[i], c.q)
	}
	a = applyBitReversal(a, c.bitrev)
	c.butterflies(a, c.table.Omega)
	return &Polynomial{n: c.n, q: c.q, coef: a}, nil
}

// Inverse computes the inverse negacyclic NTT: run the forward butterflies
// with root omega^-1, scale by n^-1, then untwist by psi^-i.
func (c *NTTContext) Inverse(p *Polynomial) (*Polynomial, error) {
	if p.n != c.n || p.q != c.q {
		return nil, &ShapeError{Op: "Inverse", Reason: "polynomial does not match NTT context"}
	}
	a := make([]uint64, c.n)
	copy(a, p.coef)
	a = applyBitReversal(a, c.bitrev)
	c.butterflies(a, c.table.OmegaInv)
	for i := range a {
		a[i] = MulMod(a[i], c.table.NInv, c.q)
		a[i] = MulMod(a[i], c.table.TwistInv[i], c.q)
	}
	return &Polynomial{n: c.n, q: c.q, coef: a}, nil
}

// Multiply computes f*g in R_q via forward(f), forward(g), coefficient-wise
// product, inverse.
func (c *NTTContext) Multiply(f, g *Polynomial) (*Polynomial, error) {
	ff, err := c.Forward(f)
	if err != nil {
		return nil, err
	}
	fg, err := c.Forward(g)
	if err != nil {
		return nil, err
	}
	prod := make([]uint64, c.n)
	for i := range prod {
		prod[i] = MulMod(ff.coef[i], fg.coef[i], c.q)
	}
	return c.Inverse(&Polynomial{n: c.n, q: c.q, coef: prod})
}

func applyBitReversal(a []uint64, bitrev []int) []uint64 {
	out := make([]uint64, len(a))
	for i, r := range bitrev {
		out[i] = a[r]
	}
	return out
}

// butterflies runs the iterative Cooley-Tukey radix-2 stages in place over
// bit-reversed input a, using root as the primitive n-th root of unity for
// this direction (omega for forward, omega^-1 for inverse).
func (c *NTTContext) butterflies(a []uint64, root uint64) {
	n, q := c.n, c.q
	for m := 2; m <= n; m <<= 1 {
		twiddle := PowMod(root, uint64(n/m), q)
		for start := 0; start < n; start += m {
			w := uint64(1)
			half := m / 2
			for j := 0; j < half; j++ {
				u := a[start+j]
				t := MulMod(w, a[start+j+half], q)
				a[start+j] = AddMod(u, t, q)
				a[start+j+half] = SubMod(u, t, q)
				w = MulMod(w, twiddle, q)
			}
		}
	}
}
