package ring

// NTTTable is the immutable bundle of roots an NTTContext derives once at
// construction: ψ, ψ⁻¹, ω = ψ², ω⁻¹, n⁻¹, and the per-index twist vectors
// twist[i] = ψ^i and twist_inv[i] = ψ^(-i). The ψ^i convention is the one
// that reproduces the schoolbook negacyclic product under this DIT
// butterfly ordering. Field names mirror Pro7ech/lattigo's ring.NTTTable
// (NthRoot/RootsForward/RootsBackward/NInv), though the negacyclic ψ-twist
// this library performs has no counterpart in a merged-twiddle Montgomery
// implementation.
type NTTTable struct {
	Psi      uint64
	PsiInv   uint64
	Omega    uint64
	OmegaInv uint64
	NInv     uint64
	Twist    []uint64
	TwistInv []uint64
}

// NTTContext is an immutable, thread-safe bundle (n, q, table) supporting
// the forward and inverse negacyclic NTT and NTT-accelerated polynomial
// multiplication, for one supported (n, q) pair.
type NTTContext struct {
	n      int
	q      uint64
	table  NTTTable
	bitrev []int
}

// NewNTTContext constructs the NTT context for (n, q). It returns a
// *ParameterError if n is not a power of two, q < 2, q is not congruent to
// 1 mod 2n, or no PsiTables entry exists for (n, q).
func NewNTTContext(n int, q uint64) (*NTTContext, error) {
	if n <= 0 || n&(n-1) != 0 {
		return nil, &ParameterError{Reason: "ring dimension must be a power of two"}
	}
	if q < 2 {
		return nil, &ParameterError{Reason: "modulus must be at least 2"}
	}
	if (q-1)%uint64(2*n) != 0 {
		return nil, &ParameterError{Reason: "modulus must satisfy q = 1 (mod 2n)"}
	}
	psi, ok := LookupPsiTable(n, q)
	if !ok {
		return nil, &ParameterError{Reason: "no PsiTables entry for this (n, q)"}
	}

	psiInv, err := InvMod(psi, q)
	if err != nil {
		return nil, &ParameterError{Reason: "psi has no inverse mod q: " + err.Error()}
	}
	omega := MulMod(psi, psi, q)
	omegaInv := MulMod(psiInv, psiInv, q)
	nInv, err := InvMod(uint64(n), q)
	if err != nil {
		return nil, &ParameterError{Reason: "n has no inverse mod q: " + err.Error()}
	}

	twist := make([]uint64, n)
	twistInv := make([]uint64, n)
	cur, curInv := uint64(1), uint64(1)
	for i := 0; i < n; i++ {
		twist[i] = cur
		twistInv[i] = curInv
		cur = MulMod(cur, psi, q)
		curInv = MulMod(curInv, psiInv, q)
	}

	return &NTTContext{
		n: n,
		q: q,
		table: NTTTable{
			Psi: psi, PsiInv: psiInv,
			Omega: omega, OmegaInv: omegaInv,
			NInv: nInv, Twist: twist, TwistInv: twistInv,
		},
		bitrev: bitReversalPermutation(n),
	}, nil
}

// N returns the context's ring dimension.
func (c *NTTContext) N() int { return c.n }

// Q returns the context's modulus.
func (c *NTTContext) Q() uint64 { return c.q }

// Table returns the context's derived root-of-unity table.
func (c *NTTContext) Table() NTTTable { return c.table }

func bitReversalPermutation(n int) []int {
	bits := 0
	for 1<<bits < n {
		bits++
	}
	out := make([]int, n)
	for i := 0; i < n; i++ {
		r := 0
		x := i
		for b := 0; b < bits; b++ {
			r = (r << 1) | (x & 1)
			x >>= 1
		}
		out[i] = r
	}
	return out
}
