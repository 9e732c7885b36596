package validation

import (
	"fmt"

	"github.com/almazagit1002/shibari-chill-spiral/pkg/spec"
)

// ValidateSchema checks one spiral configuration for structural correctness
// before any geometry is evaluated. A failed configuration is rejected on
// its own; other configurations in the same project are unaffected.
func ValidateSchema(c *spec.SpiralConfig) *Report {
	r := NewReport()

	validateRadii(c, r)
	validateProfile(c, r)
	validateNetParams(c, r)

	return r
}

func validateRadii(c *spec.SpiralConfig, r *Report) {
	if c.OuterRadius <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "outer_radius must be greater than 0",
			SpecPath:    "params.outer_radius",
			ActualValue: c.OuterRadius,
			Expected:    "> 0",
		})
	}
	if c.InnerRadius < 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "inner_radius must be non-negative",
			SpecPath:    "params.inner_radius",
			ActualValue: c.InnerRadius,
			Expected:    ">= 0",
		})
	}
	if c.InnerRadius >= c.OuterRadius {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("inner_radius (%.2f) must be less than outer_radius (%.2f)", c.InnerRadius, c.OuterRadius),
			SpecPath:    "params.inner_radius",
			ActualValue: c.InnerRadius,
			Expected:    fmt.Sprintf("< %.2f", c.OuterRadius),
			Suggestions: []string{"Swap the radii if the spirals were specified in reverse order"},
		})
	}
}

func validateProfile(c *spec.SpiralConfig, r *Report) {
	if c.Height <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "height must be greater than 0",
			SpecPath:    "params.height",
			ActualValue: c.Height,
			Expected:    "> 0",
		})
	}
	if c.NumTurns <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "num_turns must be greater than 0",
			SpecPath:    "params.num_turns",
			ActualValue: c.NumTurns,
			Expected:    "> 0",
		})
	}
	if c.StructLines < 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "struct_lines must be non-negative",
			SpecPath:    "params.struct_lines",
			ActualValue: c.StructLines,
			Expected:    ">= 0",
		})
	}
}

func validateNetParams(c *spec.SpiralConfig, r *Report) {
	if c.TargetSpacing <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "target_spacing must be greater than 0",
			SpecPath:    "params.target_spacing",
			ActualValue: c.TargetSpacing,
			Expected:    "> 0",
		})
	}
	if c.ArcSpanDeg <= 0 || c.ArcSpanDeg > 360 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("arc_span_deg %.1f is outside valid range (0, 360]", c.ArcSpanDeg),
			SpecPath:    "params.arc_span_deg",
			ActualValue: c.ArcSpanDeg,
			Expected:    "0 < span <= 360",
		})
	}
	if c.ArcDensity < 2 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("arc_density %d cannot form a fan", c.ArcDensity),
			SpecPath:    "params.arc_density",
			ActualValue: c.ArcDensity,
			Expected:    ">= 2",
			Suggestions: []string{"Use at least 2 points so each fan has measurable segments"},
		})
	}
}
