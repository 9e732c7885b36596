// Package perimeter estimates the 3D path length of each spiral with three
// independent methods that cross-validate each other.
package perimeter

import (
	"math"

	"github.com/almazagit1002/shibari-chill-spiral/pkg/geometry"
	"github.com/almazagit1002/shibari-chill-spiral/pkg/spec"
	"github.com/almazagit1002/shibari-chill-spiral/pkg/validation"
)

// Method identifies a perimeter estimation strategy.
type Method string

const (
	// Analytical integrates the exact arc-length element and is the
	// reference value the other methods are compared against.
	Analytical Method = "analytical"

	// Numerical sums Euclidean distances over a dense point sample.
	Numerical Method = "numerical"

	// Circular models the spiral as a stack of flat closed rings. It
	// ignores vertical travel and systematically underestimates.
	Circular Method = "circular"
)

// Methods lists all estimation methods in reporting order.
var Methods = []Method{Analytical, Numerical, Circular}

// DefaultSamples is the point count for the numerical method.
const DefaultSamples = 1000

// Estimate holds one method's length estimate for both spirals.
type Estimate struct {
	Method Method  `json:"method"`
	Outer  float64 `json:"outer"`
	Inner  float64 `json:"inner"`
	Total  float64 `json:"total"`

	// Degraded marks an analytical estimate that failed its quadrature
	// convergence check and fell back to dense discretization.
	Degraded bool `json:"degraded,omitempty"`
}

// estimator computes one method's estimate. Numeric findings (degraded
// quadrature) are added to the report; nil is accepted.
type estimator func(c *spec.SpiralConfig, r *validation.Report) Estimate

// estimators dispatches the closed set of methods.
var estimators = map[Method]estimator{
	Analytical: analytical,
	Numerical: func(c *spec.SpiralConfig, _ *validation.Report) Estimate {
		return NumericalN(c, DefaultSamples)
	},
	Circular: func(c *spec.SpiralConfig, _ *validation.Report) Estimate {
		return CircularSlices(c)
	},
}

// EstimateBy runs a single estimation method.
func EstimateBy(method Method, c *spec.SpiralConfig, r *validation.Report) Estimate {
	return estimators[method](c, r)
}

// EstimateAll runs every method and returns estimates keyed by method.
func EstimateAll(c *spec.SpiralConfig, r *validation.Report) map[Method]Estimate {
	out := make(map[Method]Estimate, len(Methods))
	for _, m := range Methods {
		out[m] = EstimateBy(m, c, r)
	}
	return out
}

// AccuracyPct returns the signed percentage error of a method's total
// relative to the analytical reference.
func AccuracyPct(analytical, other float64) float64 {
	if analytical == 0 {
		return 0
	}
	return (other - analytical) / analytical * 100
}

// NumericalN samples each spiral into n points and sums consecutive
// Euclidean distances.
func NumericalN(c *spec.SpiralConfig, n int) Estimate {
	outer := geometry.PathLength(geometry.Sample(c, geometry.Outer, n))
	inner := geometry.PathLength(geometry.Sample(c, geometry.Inner, n))

	return Estimate{
		Method: Numerical,
		Outer:  outer,
		Inner:  inner,
		Total:  outer + inner,
	}
}

// CircularSlices approximates each spiral as one flat closed ring per full
// turn, evaluated at the slice's vertical midpoint, and sums the ring
// circumferences. Vertical travel is deliberately ignored.
func CircularSlices(c *spec.SpiralConfig) Estimate {
	turns := geometry.FullTurns(c)
	heights := geometry.SliceMidHeights(c, turns)

	outer := 0.0
	inner := 0.0
	for _, z := range heights {
		outer += 2 * math.Pi * geometry.RadiusAtHeight(c, geometry.Outer, z)
		inner += 2 * math.Pi * geometry.RadiusAtHeight(c, geometry.Inner, z)
	}

	return Estimate{
		Method: Circular,
		Outer:  outer,
		Inner:  inner,
		Total:  outer + inner,
	}
}
