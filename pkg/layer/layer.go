// Package layer turns sampled points into attributed placement records.
// Attribute draws happen in point-iteration order and, per point, in the
// fixed order size, color, alpha. That ordering is part of the
// reproducibility contract: reordering changes the generator consumption
// sequence and every scene produced after it.
package layer

import (
	"github.com/FromJayLee/starfield/pkg/geo"
	"github.com/FromJayLee/starfield/pkg/rng"
)

// ColorChoice is one palette entry available to a layer, weighted for
// selection. Index refers into the scene-wide palette.
type ColorChoice struct {
	Index  int     `json:"index"`
	Weight float64 `json:"weight"`
}

// Spec declares one generation layer: its sampling parameters and the
// distributions its placement attributes are drawn from.
type Spec struct {
	Name string `json:"name"`
	Kind string `json:"kind"`

	// Point target: explicit Count wins; otherwise the orchestrator derives
	// a target from DensityPerKpx (points per 1000 canvas pixels).
	Count         int     `json:"count,omitempty"`
	DensityPerKpx float64 `json:"density_per_kpx,omitempty"`

	MinDistance float64 `json:"min_distance"`
	MaxAttempts int     `json:"max_attempts,omitempty"` // 0 means the default of 30
	CenterBias  float64 `json:"center_bias"`

	SizeMin  float64       `json:"size_min"`
	SizeMax  float64       `json:"size_max"`
	Palette  []ColorChoice `json:"palette"`
	AlphaMin float64       `json:"alpha_min"`
	AlphaMax float64       `json:"alpha_max"`
}

// Placement is one fully attributed, renderer-agnostic visual element.
type Placement struct {
	Point      geo.Point `json:"point"`
	Size       float64   `json:"size"`
	ColorIndex int       `json:"color_index"`
	Alpha      float64   `json:"alpha"`
	Kind       string    `json:"kind"`
}

// Generate attributes every sampled point, consuming exactly three draws
// per point. The caller's generator carries across layers; it is never
// reseeded here.
func Generate(r *rng.RNG, spec Spec, points []geo.Point) []Placement {
	records := make([]Placement, 0, len(points))
	for _, p := range points {
		size := r.FloatRange(spec.SizeMin, spec.SizeMax)
		color := pickColor(r, spec.Palette)
		alpha := r.FloatRange(spec.AlphaMin, spec.AlphaMax)

		records = append(records, Placement{
			Point:      p,
			Size:       size,
			ColorIndex: color,
			Alpha:      alpha,
			Kind:       spec.Kind,
		})
	}
	return records
}

// pickColor walks one uniform draw across the cumulative weight table.
// The draw is consumed even for an empty or zero-weight palette so the
// stream position never depends on palette contents.
func pickColor(r *rng.RNG, palette []ColorChoice) int {
	u := r.Next()
	if len(palette) == 0 {
		return 0
	}

	total := 0.0
	for _, c := range palette {
		if c.Weight > 0 {
			total += c.Weight
		}
	}
	if total == 0 {
		// Unweighted palette: uniform over entries.
		return palette[int(u*float64(len(palette)))].Index
	}

	target := u * total
	acc := 0.0
	for _, c := range palette {
		if c.Weight <= 0 {
			continue
		}
		acc += c.Weight
		if target < acc {
			return c.Index
		}
	}
	return palette[len(palette)-1].Index
}
