package ring

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var catalogDims = []struct {
	n int
	q uint64
}{
	{8, 7681},
	{32, 7681},
	{256, 7681},
	{512, 12289},
	{1024, 18433},
}

func TestNTTRoundtrip(t *testing.T) {
	for _, d := range catalogDims {
		d := d
		t.Run(dimLabel(d.n, d.q), func(t *testing.T) {
			ctx, err := NewNTTContext(d.n, d.q)
			require.NoError(t, err)

			zero := Zero(d.n, d.q)
			roundtrip(t, ctx, zero)

			for _, idx := range []int{0, 1, d.n - 1} {
				coef := make([]uint64, d.n)
				coef[idx] = 1
				delta, err := New(d.n, d.q, coef)
				require.NoError(t, err)
				roundtrip(t, ctx, delta)
			}

			asc := make([]uint64, d.n)
			for i := range asc {
				asc[i] = uint64(i) % d.q
			}
			ascPoly, err := New(d.n, d.q, asc)
			require.NoError(t, err)
			roundtrip(t, ctx, ascPoly)

			for seed := uint64(1); seed <= 5; seed++ {
				roundtrip(t, ctx, pseudoRandomPoly(d.n, d.q, seed))
			}
		})
	}
}

func roundtrip(t *testing.T, ctx *NTTContext, p *Polynomial) {
	t.Helper()
	f, err := ctx.Forward(p)
	require.NoError(t, err)
	back, err := ctx.Inverse(f)
	require.NoError(t, err)
	require.True(t, p.Equal(back))
}

func TestNTTAgreesWithSchoolbook(t *testing.T) {
	for _, d := range catalogDims {
		d := d
		t.Run(dimLabel(d.n, d.q), func(t *testing.T) {
			ctx, err := NewNTTContext(d.n, d.q)
			require.NoError(t, err)

			f := pseudoRandomPoly(d.n, d.q, 11)
			g := pseudoRandomPoly(d.n, d.q, 22)

			viaNTT, err := ctx.Multiply(f, g)
			require.NoError(t, err)
			viaSchoolbook := mulSchoolbook(f, g)
			require.True(t, viaNTT.Equal(viaSchoolbook))
		})
	}
}

func TestNTTContextTableConsistency(t *testing.T) {
	for _, d := range catalogDims {
		d := d
		t.Run(dimLabel(d.n, d.q), func(t *testing.T) {
			ctx, err := NewNTTContext(d.n, d.q)
			require.NoError(t, err)

			require.Equal(t, d.n, ctx.N())
			require.Equal(t, d.q, ctx.Q())

			tab := ctx.Table()
			require.Equal(t, MulMod(tab.Psi, tab.Psi, d.q), tab.Omega)
			require.Equal(t, uint64(1), MulMod(tab.Psi, tab.PsiInv, d.q))
			require.Equal(t, uint64(1), MulMod(tab.Omega, tab.OmegaInv, d.q))
			require.Equal(t, uint64(1), MulMod(uint64(d.n), tab.NInv, d.q))

			require.Len(t, tab.Twist, d.n)
			require.Len(t, tab.TwistInv, d.n)
			require.Equal(t, uint64(1), tab.Twist[0])
			require.Equal(t, uint64(1), tab.TwistInv[0])
			require.Equal(t, tab.Psi, tab.Twist[1])
			require.Equal(t, tab.PsiInv, tab.TwistInv[1])
			for i := 0; i < d.n; i++ {
				require.Equal(t, uint64(1), MulMod(tab.Twist[i], tab.TwistInv[i], d.q))
			}
		})
	}
}

func TestNewNTTContextRejectsUnsupported(t *testing.T) {
	_, err := NewNTTContext(17, 7681)
	require.Error(t, err)
	var pe *ParameterError
	require.ErrorAs(t, err, &pe)

	_, err = NewNTTContext(8, 97)
	require.Error(t, err)
}

func pseudoRandomPoly(n int, q uint64, seed uint64) *Polynomial {
	coef := make([]uint64, n)
	x := seed + 1
	for i := range coef {
		x = x*6364136223846793005 + 1442695040888963407
		coef[i] = x % q
	}
	p, _ := New(n, q, coef)
	return p
}

func dimLabel(n int, q uint64) string {
	switch {
	case n == 8:
		return "TEST_TINY"
	case n == 32:
		return "TEST_SMALL"
	case n == 256:
		return "KYBER512"
	case n == 512:
		return "MODERATE"
	default:
		return "HIGH"
	}
}
