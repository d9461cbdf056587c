package orbitals

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes one sampling pass.
type Summary struct {
	Draws           int    `json:"draws"`
	Accepted        int    `json:"accepted"`
	Positive        int    `json:"positive"`
	Negative        int    `json:"negative"`
	AcceptanceRatio Real   `json:"acceptanceRatio"`
	Center          Point3 `json:"center"`
	Radius          Real   `json:"radius"`
	MeanRadius      Real   `json:"meanRadius"`
	MaxRadius       Real   `json:"maxRadius"`
	BinEdges        []Real `json:"binEdges,omitempty"`
	Histogram       []Real `json:"histogram,omitempty"`
}

// Summarize computes counts, the bounding sphere and a radial histogram
// with bins equal-width bins over [0, max r]. All fields are zero for an
// empty result.
func Summarize(res *SampleResult, bins int) Summary {
	s := Summary{
		Draws:    res.Draws,
		Accepted: res.Len(),
		Positive: res.Count(Positive),
		Negative: res.Count(Negative),
	}
	if s.Draws > 0 {
		s.AcceptanceRatio = Real(s.Accepted) / Real(s.Draws)
	}
	if s.Accepted == 0 {
		return s
	}
	s.Center, s.Radius = res.BoundingSphere()

	radii := make([]Real, s.Accepted)
	for i, p := range res.Positions {
		radii[i] = p.Len()
	}
	sort.Float64s(radii)
	s.MeanRadius = stat.Mean(radii, nil)
	s.MaxRadius = floats.Max(radii)

	if bins > 0 {
		s.BinEdges = make([]Real, bins+1)
		// the last divider must lie strictly above the largest radius
		floats.Span(s.BinEdges, 0, math.Nextafter(s.MaxRadius, math.Inf(1)))
		s.Histogram = stat.Histogram(nil, s.BinEdges, radii, nil)
	}
	return s
}
