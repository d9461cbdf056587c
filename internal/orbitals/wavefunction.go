package orbitals

import (
	"fmt"
	"math"
)

// A0 is the Bohr radius; all lengths are expressed in Bohr units.
const A0 = 1.0

// QuantumNumbers is the (n, l, m) triple of a hydrogen orbital.
type QuantumNumbers struct {
	N int `json:"n"`
	L int `json:"l"`
	M int `json:"m"`
}

func (q QuantumNumbers) String() string {
	return fmt.Sprintf("(n=%d, l=%d, m=%d)", q.N, q.L, q.M)
}

// Validate checks n >= 1, 0 <= l <= n-1 and |m| <= l.
func (q QuantumNumbers) Validate() error {
	if q.N < 1 || q.L < 0 || q.L > q.N-1 || q.M < -q.L || q.M > q.L {
		return fmt.Errorf("%w: %s", ErrInvalidQuantumNumbers, q)
	}
	return nil
}

// Clamp forces the triple into the valid range: n first, then l against n,
// then m against l.
func (q QuantumNumbers) Clamp() QuantumNumbers {
	q.N = max(q.N, 1)
	q.L = min(max(q.L, 0), q.N-1)
	q.M = min(max(q.M, -q.L), q.L)
	return q
}

// Evaluator is anything that yields an amplitude at spherical coordinates.
type Evaluator interface {
	Eval(r, theta, phi Real) Real
}

// WaveFunction is the real hydrogen orbital amplitude psi_nlm(r, theta, phi).
type WaveFunction struct {
	Q        QuantumNumbers
	norm     Real
	laguerre *Laguerre
	harmonic *SphericalHarmonic
}

var _ Evaluator = (*WaveFunction)(nil)

// NewWaveFunction builds psi_nlm or returns ErrInvalidQuantumNumbers.
func NewWaveFunction(q QuantumNumbers) (*WaveFunction, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	n, l := Real(q.N), q.L
	k := 2 / (n * A0)
	wf := &WaveFunction{
		Q:        q,
		norm:     math.Sqrt(k * k * k * Factorial(q.N-l-1) / (2 * n * Factorial(l+q.N))),
		laguerre: NewLaguerre(q.N-l-1, Real(2*l+1)),
		harmonic: NewSphericalHarmonic(l, q.M),
	}
	DebugLog("built wavefunction", "q", q.String(), "norm", wf.norm)
	return wf, nil
}

// Eval returns the amplitude at radius r, polar angle theta and azimuth phi.
func (w *WaveFunction) Eval(r, theta, phi Real) Real {
	rho := 2 * r / (Real(w.Q.N) * A0)
	return w.norm * math.Exp(-rho/2) * math.Pow(rho, Real(w.Q.L)) * w.laguerre.Eval(rho) * w.harmonic.Eval(theta, phi)
}

// EvalCartesian converts p to spherical coordinates and evaluates.
// At the origin theta is NaN, so the result is only meaningful off-origin.
func (w *WaveFunction) EvalCartesian(p Point3) Real {
	r, theta, phi := p.Spherical()
	return w.Eval(r, theta, phi)
}

// Density returns the squared amplitude at p.
func (w *WaveFunction) Density(p Point3) Real {
	a := w.EvalCartesian(p)
	return a * a
}
