package params

import "fmt"

// Diagnostic is a single non-fatal advisory produced by Validate, shaped so
// a caller can feed it straight to log.Printf as a bracket-tagged progress
// line.
type Diagnostic struct {
	Message string
}

func (d Diagnostic) String() string { return d.Message }

// Validate checks p's structural invariants (n a power of two, q = 1 mod
// 2n) and returns an error if either fails. It also returns
// non-fatal Diagnostics when p.IsSecure is false or when sigma/q exceeds
// 0.01; these never prevent p from being used.
func Validate(p ParameterSet) ([]Diagnostic, error) {
	if p.N <= 0 || p.N&(p.N-1) != 0 {
		return nil, fmt.Errorf("params: %s: ring dimension %d is not a power of two", p.Name, p.N)
	}
	if (p.Q-1)%uint64(2*p.N) != 0 {
		return nil, fmt.Errorf("params: %s: modulus %d is not congruent to 1 mod 2n", p.Name, p.Q)
	}

	var diags []Diagnostic
	if !p.IsSecure {
		diags = append(diags, Diagnostic{Message: fmt.Sprintf("[params] %s: catalog entry is not marked secure; research/test use only", p.Name)})
	}
	if p.Sigma/float64(p.Q) > 0.01 {
		diags = append(diags, Diagnostic{Message: fmt.Sprintf("[params] %s: sigma/q = %.4f exceeds 0.01", p.Name, p.Sigma/float64(p.Q))})
	}
	return diags, nil
}
