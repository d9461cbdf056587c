package orbitals

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaveFunction310ClosedForm(t *testing.T) {
	wf, err := NewWaveFunction(QuantumNumbers{N: 3, L: 1, M: 0})
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		p := drawCandidate(rng, DefaultScale)
		r, theta, phi := p.Spherical()
		want := 2 * math.Sqrt2 * r * math.Exp(-r/3) * (2 - r/3) * math.Cos(theta) * math.Sqrt(3/(4*math.Pi)) / (27 * math.Sqrt(3))
		assert.InDelta(t, want, wf.Eval(r, theta, phi), 1e-12)
		assert.InDelta(t, want, wf.EvalCartesian(p), 1e-12)
	}
}

func TestWaveFunction100ClosedForm(t *testing.T) {
	wf, err := NewWaveFunction(QuantumNumbers{N: 1})
	require.NoError(t, err)
	for _, r := range []Real{0.1, 1, 2.5, 7} {
		assert.InDelta(t, math.Exp(-r)/math.Sqrt(math.Pi), wf.Eval(r, 1, 2), 1e-12)
	}
}

func TestWaveFunctionDensity(t *testing.T) {
	wf, err := NewWaveFunction(QuantumNumbers{N: 2, L: 1, M: -1})
	require.NoError(t, err)
	p := Point3{0.5, 1.5, -0.25}
	a := wf.EvalCartesian(p)
	assert.Equal(t, a*a, wf.Density(p))
}

func TestQuantumNumbersValidate(t *testing.T) {
	valid := []QuantumNumbers{{1, 0, 0}, {2, 1, -1}, {3, 2, 2}, {5, 4, -4}}
	for _, q := range valid {
		assert.NoError(t, q.Validate(), "%s", q)
	}
	invalid := []QuantumNumbers{{0, 0, 0}, {-1, 0, 0}, {2, 2, 0}, {3, -1, 0}, {3, 1, 2}, {3, 1, -2}}
	for _, q := range invalid {
		err := q.Validate()
		assert.ErrorIs(t, err, ErrInvalidQuantumNumbers, "%s", q)

		wf, err := NewWaveFunction(q)
		assert.Nil(t, wf)
		assert.ErrorIs(t, err, ErrInvalidQuantumNumbers, "%s", q)
	}
}

func TestQuantumNumbersClamp(t *testing.T) {
	cases := []struct{ in, want QuantumNumbers }{
		{QuantumNumbers{3, 1, 1}, QuantumNumbers{3, 1, 1}},
		{QuantumNumbers{2, 5, 3}, QuantumNumbers{2, 1, 1}},
		{QuantumNumbers{3, 2, -7}, QuantumNumbers{3, 2, -2}},
		{QuantumNumbers{0, 1, 1}, QuantumNumbers{1, 0, 0}},
		{QuantumNumbers{4, -2, 1}, QuantumNumbers{4, 0, 0}},
	}
	for _, c := range cases {
		got := c.in.Clamp()
		assert.Equal(t, c.want, got, "Clamp(%s)", c.in)
		assert.NoError(t, got.Validate())
	}
}
