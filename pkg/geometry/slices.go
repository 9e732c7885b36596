package geometry

import (
	"math"

	"github.com/almazagit1002/shibari-chill-spiral/pkg/spec"
)

// FullTurns returns the number of complete turns used when the spiral is
// discretized into flat circular slices: one slice per turn, rounded to the
// nearest integer for fractional turn counts, never fewer than one.
func FullTurns(c *spec.SpiralConfig) int {
	turns := int(math.Round(c.NumTurns))
	if turns < 1 {
		turns = 1
	}
	return turns
}

// SliceMidHeights returns the representative height of each slice when the
// spiral height is partitioned into count equal slices. Each slice is
// evaluated at its vertical midpoint.
func SliceMidHeights(c *spec.SpiralConfig, count int) []float64 {
	if count < 1 {
		count = 1
	}
	half := c.Height / (2 * float64(count))
	heights := make([]float64, count)
	for k := 0; k < count; k++ {
		heights[k] = c.Height*float64(k)/float64(count) + half
	}
	return heights
}
