package geo

import "math"

// Point is a position in canvas pixel space, rounded to whole pixels.
// The origin is the top-left corner; Y grows downward.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Pt is a shorthand constructor for Point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Distance returns the Euclidean distance from p to q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(float64(p.X-q.X), float64(p.Y-q.Y))
}

// DistanceSq returns the squared distance from p to q. Cheaper than
// Distance when only comparing against a squared threshold.
func (p Point) DistanceSq(q Point) float64 {
	dx := float64(p.X - q.X)
	dy := float64(p.Y - q.Y)
	return dx*dx + dy*dy
}

// Round converts continuous canvas coordinates to the nearest pixel Point.
func Round(x, y float64) Point {
	return Point{X: int(math.Round(x)), Y: int(math.Round(y))}
}

// ClampRound rounds (x, y) to a pixel Point and clamps it into the
// half-open canvas [0,width) x [0,height).
func ClampRound(x, y float64, width, height int) Point {
	p := Round(x, y)
	if p.X < 0 {
		p.X = 0
	}
	if p.X >= width {
		p.X = width - 1
	}
	if p.Y < 0 {
		p.Y = 0
	}
	if p.Y >= height {
		p.Y = height - 1
	}
	return p
}
