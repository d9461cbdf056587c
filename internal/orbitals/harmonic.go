package orbitals

import "math"

// SphericalHarmonic is the real spherical harmonic Y_l^m(theta, phi).
// m >= 0 selects the cos(m*phi) branch, m < 0 the sin(|m|*phi) branch.
type SphericalHarmonic struct {
	L, M     int
	absM     int
	prefix   Real
	legendre *Legendre
}

func NewSphericalHarmonic(l, m int) *SphericalHarmonic {
	absM := m
	if absM < 0 {
		absM = -absM
	}
	sign := 1.0
	if m%2 != 0 {
		sign = -1
	}
	norm := 1.0
	if m != 0 {
		norm = math.Sqrt2
	}
	return &SphericalHarmonic{
		L:        l,
		M:        m,
		absM:     absM,
		prefix:   sign * norm * math.Sqrt(Real(2*l+1)*Factorial(l-absM)/(4*math.Pi*Factorial(l+absM))),
		legendre: NewLegendre(l, absM),
	}
}

// Eval returns Y_l^m at polar angle theta in [0, π] and azimuth phi in [-π, π].
func (y *SphericalHarmonic) Eval(theta, phi Real) Real {
	var azimuthal Real
	if y.M >= 0 {
		azimuthal = math.Cos(Real(y.absM) * phi)
	} else {
		azimuthal = math.Sin(Real(y.absM) * phi)
	}
	return y.prefix * y.legendre.Eval(math.Cos(theta)) * azimuthal
}
