// Package analysis combines the perimeter estimates and the annular net
// into one result record per configuration. It performs no geometry of its
// own.
package analysis

import (
	"github.com/almazagit1002/shibari-chill-spiral/pkg/geometry"
	"github.com/almazagit1002/shibari-chill-spiral/pkg/net"
	"github.com/almazagit1002/shibari-chill-spiral/pkg/perimeter"
	"github.com/almazagit1002/shibari-chill-spiral/pkg/spec"
	"github.com/almazagit1002/shibari-chill-spiral/pkg/validation"
)

// RenderSamples is the point count of the spiral polylines included in a
// result for rendering. Fidelity of the numerical estimator is independent
// of it.
const RenderSamples = 1000

// Accuracy holds the signed percentage error of each approximation method
// relative to the analytical reference.
type Accuracy struct {
	NumericalPct float64 `json:"numerical_pct"`
	CircularPct  float64 `json:"circular_pct"`
}

// Result is the complete analysis output for one configuration. It is
// value-like: recomputed in full from the configuration on every run, never
// mutated afterwards.
type Result struct {
	Name   string            `json:"name"`
	Config spec.SpiralConfig `json:"config"`

	Analytical perimeter.Estimate `json:"analytical"`
	Numerical  perimeter.Estimate `json:"numerical"`
	Circular   perimeter.Estimate `json:"circular"`
	Accuracy   Accuracy           `json:"accuracy"`

	Net *net.Net `json:"net"`

	NetLength        float64 `json:"net_length"`
	StructLineLength float64 `json:"struct_line_length"`

	// TotalMaterial is the complete material requirement: the spiral
	// path itself (analytical), the net struts, and the structural lines.
	TotalMaterial float64 `json:"total_material"`

	// OuterPath and InnerPath are dense point sequences for rendering.
	OuterPath []geometry.Point `json:"outer_path"`
	InnerPath []geometry.Point `json:"inner_path"`
}

// Outcome pairs one configuration's result with its validation report.
// Result is nil when schema validation rejected the configuration.
type Outcome struct {
	Name   string             `json:"name"`
	Result *Result            `json:"result,omitempty"`
	Report *validation.Report `json:"report"`
}

// Analyze runs the full pipeline for one configuration: schema validation,
// the three perimeter estimates, and the annular net build. A schema-invalid
// configuration returns a nil result and the offending report.
func Analyze(name string, c *spec.SpiralConfig) (*Result, *validation.Report) {
	report := validation.ValidateSchema(c)
	if !report.Valid {
		return nil, report
	}

	estimates := perimeter.EstimateAll(c, report)
	analytical := estimates[perimeter.Analytical]
	numerical := estimates[perimeter.Numerical]
	circular := estimates[perimeter.Circular]

	spiralNet := net.Build(c)
	noteDegenerateLayers(spiralNet, report)

	res := &Result{
		Name:       name,
		Config:     *c,
		Analytical: analytical,
		Numerical:  numerical,
		Circular:   circular,
		Accuracy: Accuracy{
			NumericalPct: perimeter.AccuracyPct(analytical.Total, numerical.Total),
			CircularPct:  perimeter.AccuracyPct(analytical.Total, circular.Total),
		},
		Net:              spiralNet,
		NetLength:        spiralNet.Length,
		StructLineLength: spiralNet.StructLineLength,
		TotalMaterial:    analytical.Total + spiralNet.Length + spiralNet.StructLineLength,
		OuterPath:        geometry.Sample(c, geometry.Outer, RenderSamples),
		InnerPath:        geometry.Sample(c, geometry.Inner, RenderSamples),
	}

	return res, report
}

// AnalyzeProject processes every configuration in the project. A rejected
// configuration produces an outcome with a nil result; the rest of the
// batch continues.
func AnalyzeProject(p *spec.Project) []Outcome {
	outcomes := make([]Outcome, 0, len(p.Configurations))
	for i := range p.Configurations {
		nc := &p.Configurations[i]
		res, report := Analyze(nc.Name, &nc.Params)
		outcomes = append(outcomes, Outcome{
			Name:   nc.Name,
			Result: res,
			Report: report,
		})
	}
	return outcomes
}

// noteDegenerateLayers records zero-width annulus layers as findings so
// the layer accounting is visible downstream.
func noteDegenerateLayers(n *net.Net, report *validation.Report) {
	for _, layer := range n.Layers {
		if layer.Degenerate {
			report.AddInfo(validation.Result{
				Level:    validation.LevelGeometry,
				Message:  "zero-width annulus layer contributes no net material",
				SpecPath: "params.inner_radius",
				ActualValue: map[string]any{
					"layer": layer.Index,
					"z":     layer.Z,
				},
			})
		}
	}
}
