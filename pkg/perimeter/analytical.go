package perimeter

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/integrate/quad"

	"github.com/almazagit1002/shibari-chill-spiral/pkg/geometry"
	"github.com/almazagit1002/shibari-chill-spiral/pkg/spec"
	"github.com/almazagit1002/shibari-chill-spiral/pkg/validation"
)

const (
	// Gauss-Legendre node counts for the convergence cross-check. The
	// integrand is smooth, so agreement between the two orders to within
	// quadTolerance means the fine result is trustworthy.
	quadNodesCoarse = 48
	quadNodesFine   = 96

	// quadTolerance is the relative error tolerance on the arc-length
	// integral.
	quadTolerance = 1e-6

	// fallbackSamples is the elevated discretization used when quadrature
	// fails to converge for a pathological taper.
	fallbackSamples = 100000
)

// analytical integrates the arc-length element
//
//	L = integral 0..h of sqrt((dR/dz)^2 + (R(z)*dtheta/dz)^2 + 1) dz
//
// per spiral with Gauss-Legendre quadrature. If the two quadrature orders
// disagree beyond tolerance (extreme angular velocity at near-zero height),
// the estimate falls back to dense discretization and is flagged degraded.
func analytical(c *spec.SpiralConfig, r *validation.Report) Estimate {
	outer, outerOK := integrateArcLength(c, geometry.Outer)
	inner, innerOK := integrateArcLength(c, geometry.Inner)

	est := Estimate{
		Method: Analytical,
		Outer:  outer,
		Inner:  inner,
		Total:  outer + inner,
	}

	if outerOK && innerOK {
		return est
	}

	fallback := NumericalN(c, fallbackSamples)
	est.Outer = fallback.Outer
	est.Inner = fallback.Inner
	est.Total = fallback.Total
	est.Degraded = true

	if r != nil {
		r.AddWarning(validation.Result{
			Level:       validation.LevelNumeric,
			Message:     fmt.Sprintf("arc-length quadrature did not converge within %.0e; using %d-point discretization instead", quadTolerance, fallbackSamples),
			SpecPath:    "params",
			ActualValue: est.Total,
			Expected:    "converged Gauss-Legendre integral",
			Suggestions: []string{"Reduce num_turns or increase height to tame the angular velocity"},
		})
	}

	return est
}

// integrateArcLength evaluates one spiral's arc length and reports whether
// the quadrature converged.
func integrateArcLength(c *spec.SpiralConfig, sel geometry.Spiral) (float64, bool) {
	dRdz := geometry.RadiusSlope(c, sel)
	omega := c.AngularFrequency()

	f := func(z float64) float64 {
		radius := geometry.RadiusAtHeight(c, sel, z)
		return math.Sqrt(dRdz*dRdz + radius*radius*omega*omega + 1)
	}

	coarse := quad.Fixed(f, 0, c.Height, quadNodesCoarse, quad.Legendre{}, 0)
	fine := quad.Fixed(f, 0, c.Height, quadNodesFine, quad.Legendre{}, 0)

	if fine == 0 {
		return fine, coarse == 0
	}
	return fine, math.Abs(fine-coarse)/math.Abs(fine) <= quadTolerance
}
