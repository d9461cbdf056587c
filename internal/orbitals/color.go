package orbitals

import "image/color"

// RGB stores color components; each should be in [0,1].
type RGB struct {
	R, G, B Real
}

// Fixed palette of the viewer.
var (
	PositiveColor   = RGBFromHex(0xd49421)
	NegativeColor   = RGBFromHex(0x88afa6)
	BackgroundColor = RGBFromHex(0xe6f0ef)
	FogColor        = RGBFromHex(0x050505)
)

// RGBFromHex splits 0xRRGGBB into channels.
func RGBFromHex(h uint32) RGB {
	return RGB{
		R: Real((h>>16)&0xff) / 0xff,
		G: Real((h>>8)&0xff) / 0xff,
		B: Real(h&0xff) / 0xff,
	}
}

// clamp01 clamps each channel to [0,1].
func (c RGB) clamp01() RGB {
	cl := func(x Real) Real {
		if x < 0 {
			return 0
		}
		if x > 1 {
			return 1
		}
		return x
	}
	return RGB{cl(c.R), cl(c.G), cl(c.B)}
}

// Lerp mixes c toward d by t in [0,1].
func (c RGB) Lerp(d RGB, t Real) RGB {
	return RGB{c.R + (d.R-c.R)*t, c.G + (d.G-c.G)*t, c.B + (d.B-c.B)*t}
}

func (c RGB) NRGBA() color.NRGBA {
	c = c.clamp01()
	return color.NRGBA{uint8(c.R*255 + 0.5), uint8(c.G*255 + 0.5), uint8(c.B*255 + 0.5), 0xff}
}

// Sign tags an accepted point with the sign of its amplitude.
type Sign uint8

const (
	Negative Sign = iota // negative or zero amplitude
	Positive
)

// SignOf maps an amplitude to its tag; zero counts as Negative.
func SignOf(amp Real) Sign {
	if amp > 0 {
		return Positive
	}
	return Negative
}

func (s Sign) String() string {
	if s == Positive {
		return "positive"
	}
	return "negative"
}

func (s Sign) Color() RGB {
	if s == Positive {
		return PositiveColor
	}
	return NegativeColor
}
