// Package sampler produces blue-noise point sets with a guaranteed minimum
// pairwise distance using Bridson's Poisson-disk algorithm, extended with a
// center-bias term that pulls generation toward the canvas center.
package sampler

import (
	"fmt"
	"math"

	"github.com/FromJayLee/starfield/pkg/geo"
	"github.com/FromJayLee/starfield/pkg/rng"
)

// Config controls one sampling pass over a canvas.
type Config struct {
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	MinDistance float64 `json:"min_distance"`
	MaxAttempts int     `json:"max_attempts"`
	CenterBias  float64 `json:"center_bias"` // in [0,1]

	// MaxPoints stops the pass once this many points are accepted.
	// Zero means unbounded: the pass runs until the active list empties.
	MaxPoints int `json:"max_points,omitempty"`
}

// Fraction of the shorter canvas dimension used as the center-bias disk
// radius for the first point.
const seedDiskFraction = 0.3

// Strength of the pull applied to biased candidates.
const centerPull = 0.1

// Validate checks the configuration before any draw is consumed.
func (c Config) Validate() error {
	if c.Width <= 0 {
		return fmt.Errorf("sampler: width must be positive, got %d", c.Width)
	}
	if c.Height <= 0 {
		return fmt.Errorf("sampler: height must be positive, got %d", c.Height)
	}
	if c.MinDistance <= 0 {
		return fmt.Errorf("sampler: min_distance must be positive, got %v", c.MinDistance)
	}
	if c.MaxAttempts <= 0 {
		return fmt.Errorf("sampler: max_attempts must be positive, got %d", c.MaxAttempts)
	}
	if c.CenterBias < 0 || c.CenterBias > 1 {
		return fmt.Errorf("sampler: center_bias must be in [0,1], got %v", c.CenterBias)
	}
	return nil
}

// grid is a spatial hash over cells of side MinDistance/sqrt(2). The cell
// size guarantees at most one accepted point per cell, so a 5x5
// neighborhood scan suffices for the minimum-distance check.
type grid struct {
	cell   float64
	w, h   int
	cells  []int // index into the point list, -1 when empty
	points []geo.Point
}

func newGrid(cfg Config) *grid {
	cell := cfg.MinDistance / math.Sqrt2
	gw := int(math.Ceil(float64(cfg.Width) / cell))
	gh := int(math.Ceil(float64(cfg.Height) / cell))
	cells := make([]int, gw*gh)
	for i := range cells {
		cells[i] = -1
	}
	return &grid{cell: cell, w: gw, h: gh, cells: cells}
}

func (g *grid) coords(p geo.Point) (int, int) {
	gx := int(float64(p.X) / g.cell)
	gy := int(float64(p.Y) / g.cell)
	if gx >= g.w {
		gx = g.w - 1
	}
	if gy >= g.h {
		gy = g.h - 1
	}
	return gx, gy
}

func (g *grid) insert(p geo.Point) {
	idx := len(g.points)
	g.points = append(g.points, p)
	gx, gy := g.coords(p)
	g.cells[gy*g.w+gx] = idx
}

// admissible reports whether p keeps the minimum distance to every accepted
// point in its 5x5 cell neighborhood.
func (g *grid) admissible(p geo.Point, minDist float64) bool {
	gx, gy := g.coords(p)
	minSq := minDist * minDist
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			nx, ny := gx+dx, gy+dy
			if nx < 0 || nx >= g.w || ny < 0 || ny >= g.h {
				continue
			}
			idx := g.cells[ny*g.w+nx]
			if idx >= 0 && g.points[idx].DistanceSq(p) < minSq {
				return false
			}
		}
	}
	return true
}

// Sample runs one Poisson-disk pass, consuming and advancing the caller's
// generator. Points are returned in insertion order; identical generator
// state and configuration always produce the identical list.
func Sample(r *rng.RNG, cfg Config) ([]geo.Point, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := newGrid(cfg)
	w, h := float64(cfg.Width), float64(cfg.Height)
	cx, cy := w/2, h/2

	// First point: biased toward a disk around the canvas center. The gate
	// draw is always consumed so the stream position does not depend on the
	// bias value; the disk draws happen only when the gate succeeds.
	var fx, fy float64
	if r.Next() < cfg.CenterBias {
		dx, dy := r.PointInCircle(seedDiskFraction * math.Min(w, h))
		fx, fy = cx+dx, cy+dy
	} else {
		fx, fy = r.PointInRect(w, h)
	}
	first := geo.ClampRound(fx, fy, cfg.Width, cfg.Height)
	g.insert(first)

	// Active list holds indices of points still eligible to spawn
	// candidates. Removal must preserve order: a swap-with-last removal
	// would change which point subsequent random index draws select.
	active := []int{0}

	for len(active) > 0 {
		if cfg.MaxPoints > 0 && len(g.points) >= cfg.MaxPoints {
			break
		}

		ai := r.IntN(0, len(active))
		current := g.points[active[ai]]

		accepted := false
		for k := 0; k < cfg.MaxAttempts; k++ {
			angle := r.Next() * 2 * math.Pi
			dist := r.FloatRange(cfg.MinDistance, 2*cfg.MinDistance)
			x := float64(current.X) + dist*math.Cos(angle)
			y := float64(current.Y) + dist*math.Sin(angle)

			// Secondary bias draw, consumed on every candidate.
			if r.Next() < cfg.CenterBias*0.5 {
				x += (cx - x) * centerPull
				y += (cy - y) * centerPull
			}

			cand := geo.ClampRound(x, y, cfg.Width, cfg.Height)
			if g.admissible(cand, cfg.MinDistance) {
				g.insert(cand)
				active = append(active, len(g.points)-1)
				accepted = true
				break
			}
		}

		if !accepted {
			// Order-preserving splice.
			active = append(active[:ai], active[ai+1:]...)
		}
	}

	return g.points, nil
}
