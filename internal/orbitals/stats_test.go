package orbitals

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func TestSummarizeKnownRadii(t *testing.T) {
	res := &SampleResult{Scale: 10, Draws: 8}
	res.add(Point3{0.5, 0, 0}, 1)
	res.add(Point3{0, -1.5, 0}, -1)
	res.add(Point3{0, 0, 2.5}, 1)
	res.add(Point3{0, 0, -3}, 1)

	s := Summarize(res, 3)
	assert.Equal(t, 8, s.Draws)
	assert.Equal(t, 4, s.Accepted)
	assert.Equal(t, 3, s.Positive)
	assert.Equal(t, 1, s.Negative)
	assert.InDelta(t, 0.5, s.AcceptanceRatio, 1e-12)
	assert.InDelta(t, 1.875, s.MeanRadius, 1e-12)
	assert.InDelta(t, 3, s.MaxRadius, 1e-12)

	require.Len(t, s.BinEdges, 4)
	require.Len(t, s.Histogram, 3)
	assert.Equal(t, Real(0), s.BinEdges[0])
	assert.Greater(t, s.BinEdges[3], s.MaxRadius)
	assert.Equal(t, []Real{1, 1, 2}, s.Histogram)
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(&SampleResult{Draws: 100}, HistogramBins)
	assert.Equal(t, 100, s.Draws)
	assert.Zero(t, s.Accepted)
	assert.Zero(t, s.AcceptanceRatio)
	assert.Zero(t, s.MeanRadius)
	assert.Nil(t, s.Histogram)
}

func TestSummarizeHistogramCoversAllPoints(t *testing.T) {
	wf, err := NewWaveFunction(QuantumNumbers{3, 2, 1})
	require.NoError(t, err)
	res := Sample(wf, testCfg, rand.New(rand.NewSource(21)))
	s := Summarize(res, HistogramBins)
	require.NotZero(t, s.Accepted)
	assert.Equal(t, Real(s.Accepted), floats.Sum(s.Histogram))
	assert.Equal(t, s.Accepted, s.Positive+s.Negative)
	assert.LessOrEqual(t, s.MeanRadius, s.MaxRadius)
}
