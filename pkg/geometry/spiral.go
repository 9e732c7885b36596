// Package geometry holds the parametric model of the double conical spiral.
// Everything here is a pure function of the configuration; no state is kept
// between evaluations.
package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/almazagit1002/shibari-chill-spiral/pkg/spec"
)

// Spiral selects which of the two helices to evaluate.
type Spiral string

const (
	Outer Spiral = "outer"
	Inner Spiral = "inner"
)

// Point is a single sample on a spiral.
type Point struct {
	Pos r3.Vec `json:"pos"`

	// T is the fractional height in [0,1] at which the point was evaluated.
	T float64 `json:"t"`

	// Radius is the instantaneous spiral radius at T.
	Radius float64 `json:"radius"`
}

// StartRadius returns the base radius of the selected spiral.
func StartRadius(c *spec.SpiralConfig, sel Spiral) float64 {
	if sel == Inner {
		return c.InnerRadius
	}
	return c.OuterRadius
}

// Radius returns the spiral radius at fractional height t. Both spirals
// taper linearly from their base radius to zero at the apex.
func Radius(c *spec.SpiralConfig, sel Spiral, t float64) float64 {
	return StartRadius(c, sel) * (1 - t)
}

// RadiusAtHeight returns the spiral radius at height z.
func RadiusAtHeight(c *spec.SpiralConfig, sel Spiral, z float64) float64 {
	return Radius(c, sel, z/c.Height)
}

// Theta returns the angular position at fractional height t. The inner
// spiral is shifted by the configured phase offset.
func Theta(c *spec.SpiralConfig, sel Spiral, t float64) float64 {
	theta := 2 * math.Pi * c.NumTurns * t
	if sel == Inner {
		theta += c.PhaseOffset
	}
	return theta
}

// RadiusSlope returns dR/dz for the selected spiral. Constant for the
// linear taper.
func RadiusSlope(c *spec.SpiralConfig, sel Spiral) float64 {
	return -StartRadius(c, sel) / c.Height
}

// At evaluates the selected spiral at fractional height t in [0,1].
func At(c *spec.SpiralConfig, sel Spiral, t float64) Point {
	r := Radius(c, sel, t)
	theta := Theta(c, sel, t)

	return Point{
		Pos: r3.Vec{
			X: r * math.Cos(theta),
			Y: r * math.Sin(theta),
			Z: c.Height * t,
		},
		T:      t,
		Radius: r,
	}
}

// Sample returns n points along the selected spiral at uniform fractional
// height spacing, including both endpoints. This sequence is the shared
// substrate for the numerical perimeter estimate and for rendering.
// n must be at least 2.
func Sample(c *spec.SpiralConfig, sel Spiral, n int) []Point {
	if n < 2 {
		n = 2
	}
	pts := make([]Point, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		pts[i] = At(c, sel, t)
	}
	return pts
}

// PathLength sums the Euclidean distances between consecutive points.
func PathLength(pts []Point) float64 {
	total := 0.0
	for i := 1; i < len(pts); i++ {
		total += r3.Norm(r3.Sub(pts[i].Pos, pts[i-1].Pos))
	}
	return total
}
