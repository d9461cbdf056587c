package orbitals

import "math"

// Legendre is an associated Legendre polynomial P_l^m with precomputed coefficients.
type Legendre struct {
	L, M   int
	prefix Real   // (-1)^m * 2^l
	coeffs []Real // coeffs[i] built for power m+i, applied to x^i
}

// NewLegendre builds P_l^m for 0 <= m <= l.
func NewLegendre(l, m int) *Legendre {
	p := &Legendre{
		L:      l,
		M:      m,
		prefix: math.Pow(-1, Real(m)) * math.Pow(2, Real(l)),
	}
	if l-m+1 > 0 {
		p.coeffs = make([]Real, 0, l-m+1)
	}
	for k := m; k <= l; k++ {
		c := Factorial(k) / Factorial(k-m) * Choose(Real(l), k) * Choose(Real(l+k-1)/2, l)
		p.coeffs = append(p.coeffs, c)
	}
	return p
}

// Eval returns P_l^m(x). The sum runs over the coefficient slots, slot i
// contributing coeffs[i]*x^i.
func (p *Legendre) Eval(x Real) Real {
	sum, xk := 0.0, 1.0
	for _, c := range p.coeffs {
		sum += c * xk
		xk *= x
	}
	return p.prefix * math.Pow(1-x*x, Real(p.M)/2) * sum
}

// Coeffs returns a copy of the polynomial coefficients.
func (p *Legendre) Coeffs() []Real {
	return append([]Real(nil), p.coeffs...)
}
