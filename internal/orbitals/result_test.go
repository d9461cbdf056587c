package orbitals

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tinyResult() *SampleResult {
	res := &SampleResult{Scale: 10, Draws: 5}
	res.add(Point3{1, 2, 3}, 0.5)
	res.add(Point3{-5, 0, 1}, -0.1)
	res.add(Point3{0, 0, -2}, 0)
	return res
}

func TestSampleResultCounts(t *testing.T) {
	res := tinyResult()
	assert.Equal(t, 3, res.Len())
	assert.Equal(t, 1, res.Count(Positive))
	assert.Equal(t, 2, res.Count(Negative), "zero amplitude is tagged negative")
}

func TestSampleResultBuffers(t *testing.T) {
	res := tinyResult()
	pos, col := res.Buffers(ViewSize)
	require.Len(t, pos, 9)
	require.Len(t, col, 9)

	// x/scale*viewSize
	assert.InDelta(t, 5, pos[0], 1e-6)
	assert.InDelta(t, 10, pos[1], 1e-6)
	assert.InDelta(t, 15, pos[2], 1e-6)
	assert.InDelta(t, -25, pos[3], 1e-6)

	assert.InDelta(t, 0xd4/255.0, col[0], 1e-6)
	assert.InDelta(t, 0x94/255.0, col[1], 1e-6)
	assert.InDelta(t, 0x21/255.0, col[2], 1e-6)
	assert.InDelta(t, 0x88/255.0, col[3], 1e-6)
	assert.InDelta(t, 0xaf/255.0, col[4], 1e-6)
	assert.InDelta(t, 0xa6/255.0, col[5], 1e-6)
}

func TestSampleResultBuffersEmpty(t *testing.T) {
	pos, col := (&SampleResult{Scale: 1}).Buffers(ViewSize)
	assert.Empty(t, pos)
	assert.Empty(t, col)
}

func TestBoundingSphere(t *testing.T) {
	res := &SampleResult{Scale: 10}
	res.add(Point3{-1, 0, 0}, 1)
	res.add(Point3{3, 0, 0}, 1)
	res.add(Point3{1, 1, 0}, 1)
	c, r := res.BoundingSphere()
	assert.Equal(t, Point3{1, 0.5, 0}, c)
	assert.InDelta(t, 2.0615528, r, 1e-6) // sqrt(4 + 0.25)

	c, r = (&SampleResult{}).BoundingSphere()
	assert.Equal(t, Point3{}, c)
	assert.Zero(t, r)
}

func TestSign(t *testing.T) {
	assert.Equal(t, Positive, SignOf(1e-300))
	assert.Equal(t, Negative, SignOf(0))
	assert.Equal(t, Negative, SignOf(-2))
	assert.Equal(t, "positive", Positive.String())
	assert.Equal(t, "negative", Negative.String())
	assert.Equal(t, PositiveColor, Positive.Color())
	assert.Equal(t, NegativeColor, Negative.Color())
}

func TestRGBFromHex(t *testing.T) {
	c := RGBFromHex(0xff8000)
	assert.Equal(t, RGB{1, 128.0 / 255, 0}, c)
	n := c.NRGBA()
	assert.Equal(t, uint8(255), n.R)
	assert.Equal(t, uint8(128), n.G)
	assert.Equal(t, uint8(0), n.B)
	assert.Equal(t, uint8(255), n.A)
	assert.Equal(t, RGB{0.5, 0.5, 0.5}, RGB{0, 0, 0}.Lerp(RGB{1, 1, 1}, 0.5))
}
