// Package params holds the static named parameter-set catalog and its
// validation diagnostics, mirroring the struct-literal parameter
// definitions of Pro7ech/lattigo's rlwe.Params.
package params

import (
	"fmt"

	"github.com/google/go-cmp/cmp"
)

// ParameterSet records the ring dimension, modulus, Gaussian standard
// deviation, and advisory security bits for one named configuration. It is
// immutable; callers obtain values from Lookup or construct one by hand
// for non-catalog experimentation.
type ParameterSet struct {
	Name          string
	N             int
	Q             uint64
	Sigma         float64
	ClassicalBits int
	QuantumBits   int
	IsSecure      bool
}

// Catalog is the minimum set of named parameter levels this library
// supports. The KYBER512 entry's (n, q) matches the ring package's
// PsiTables entry, so NTT acceleration is available at that level.
var Catalog = []ParameterSet{
	{Name: "TEST_TINY", N: 8, Q: 7681, Sigma: 3.0, ClassicalBits: 4, QuantumBits: 2, IsSecure: false},
	{Name: "TEST_SMALL", N: 32, Q: 7681, Sigma: 3.0, ClassicalBits: 16, QuantumBits: 8, IsSecure: false},
	{Name: "KYBER512", N: 256, Q: 7681, Sigma: 3.0, ClassicalBits: 128, QuantumBits: 64, IsSecure: true},
	{Name: "MODERATE", N: 512, Q: 12289, Sigma: 3.2, ClassicalBits: 192, QuantumBits: 96, IsSecure: true},
	{Name: "HIGH", N: 1024, Q: 18433, Sigma: 3.2, ClassicalBits: 256, QuantumBits: 128, IsSecure: true},
}

// Lookup returns the named catalog entry, or an error if no entry with
// that name exists.
func Lookup(name string) (ParameterSet, error) {
	for _, p := range Catalog {
		if p.Name == name {
			return p, nil
		}
	}
	return ParameterSet{}, fmt.Errorf("params: unknown parameter set %q", name)
}

// Equal reports whether p and other describe the same parameters,
// following Pro7ech/lattigo's rlwe.Params use of go-cmp for parameter
// comparison rather than a field-by-field hand check.
func (p ParameterSet) Equal(other ParameterSet) bool {
	return cmp.Equal(p, other)
}
