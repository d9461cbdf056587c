package orbitals

// Laguerre is a generalized Laguerre polynomial L_n^alpha.
type Laguerre struct {
	N      int
	Alpha  Real
	coeffs []Real // coeffs[i] = C(n+alpha, n-i) / i!
}

// NewLaguerre builds L_n^alpha. A negative degree yields the zero polynomial.
func NewLaguerre(n int, alpha Real) *Laguerre {
	p := &Laguerre{N: n, Alpha: alpha}
	if n >= 0 {
		p.coeffs = make([]Real, n+1)
	}
	for i := 0; i <= n; i++ {
		p.coeffs[i] = Choose(Real(n)+alpha, n-i) / Factorial(i)
	}
	return p
}

// Eval returns sum_i coeffs[i] * (-x)^i.
func (p *Laguerre) Eval(x Real) Real {
	sum, t := 0.0, 1.0
	for _, c := range p.coeffs {
		sum += c * t
		t *= -x
	}
	return sum
}

// Coeffs returns a copy of the polynomial coefficients.
func (p *Laguerre) Coeffs() []Real {
	return append([]Real(nil), p.coeffs...)
}
