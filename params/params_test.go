package params

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookupKnownEntries(t *testing.T) {
	for _, name := range []string{"TEST_TINY", "TEST_SMALL", "KYBER512", "MODERATE", "HIGH"} {
		t.Run(name, func(t *testing.T) {
			p, err := Lookup(name)
			require.NoError(t, err)
			require.Equal(t, name, p.Name)
		})
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("NOT_A_LEVEL")
	require.Error(t, err)
}

func TestValidateAllCatalogEntries(t *testing.T) {
	for _, p := range Catalog {
		t.Run(p.Name, func(t *testing.T) {
			_, err := Validate(p)
			require.NoError(t, err)
		})
	}
}

func TestValidateDiagnosesInsecureEntries(t *testing.T) {
	p, err := Lookup("TEST_TINY")
	require.NoError(t, err)
	diags, err := Validate(p)
	require.NoError(t, err)
	require.NotEmpty(t, diags)
}

func TestValidateRejectsBadDimension(t *testing.T) {
	bad := ParameterSet{Name: "BAD", N: 17, Q: 7681, Sigma: 3.0}
	_, err := Validate(bad)
	require.Error(t, err)
}

func TestEqualUsesStructuralComparison(t *testing.T) {
	a, err := Lookup("KYBER512")
	require.NoError(t, err)
	b, err := Lookup("KYBER512")
	require.NoError(t, err)
	require.True(t, a.Equal(b))

	c, err := Lookup("MODERATE")
	require.NoError(t, err)
	require.False(t, a.Equal(c))
}
