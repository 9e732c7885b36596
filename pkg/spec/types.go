package spec

import "math"

// Project is the top-level document loaded from spirals.yaml. It holds one
// or more named spiral configurations that are analyzed independently.
type Project struct {
	SpecVersion    string        `yaml:"spec_version" json:"spec_version"`
	Configurations []NamedConfig `yaml:"configurations" json:"configurations"`
}

// NamedConfig pairs a human-readable configuration name with its parameters.
type NamedConfig struct {
	Name   string       `yaml:"name" json:"name"`
	Params SpiralConfig `yaml:"params" json:"params"`
}

// SpiralConfig defines one double conical spiral: two tapered helices wound
// around a shared axis, plus the discretization parameters for the flattened
// annular net. All values are in the same (arbitrary) length unit.
type SpiralConfig struct {
	OuterRadius float64 `yaml:"outer_radius" json:"outer_radius"`
	InnerRadius float64 `yaml:"inner_radius" json:"inner_radius"`
	Height      float64 `yaml:"height" json:"height"`
	NumTurns    float64 `yaml:"num_turns" json:"num_turns"`

	// PhaseOffset is the inner spiral's angular start relative to the
	// outer spiral, in radians (0 = aligned, pi = opposite).
	PhaseOffset float64 `yaml:"phase_offset" json:"phase_offset"`

	// StructLines scales the supplementary structural-line material:
	// struct_line_length = height * struct_lines.
	StructLines float64 `yaml:"struct_lines" json:"struct_lines"`

	// TargetSpacing is the desired distance between net anchor points
	// around each ring's circumference.
	TargetSpacing float64 `yaml:"target_spacing" json:"target_spacing"`

	// ArcSpanDeg is the angular width of one connection fan, in degrees.
	ArcSpanDeg float64 `yaml:"arc_span_deg" json:"arc_span_deg"`

	// ArcDensity is the number of inner points sampled per fan.
	ArcDensity int `yaml:"arc_density" json:"arc_density"`
}

// AngularFrequency returns dtheta/dz, the angular travel per unit height.
// Callers must validate Height > 0 first.
func (c SpiralConfig) AngularFrequency() float64 {
	return c.NumTurns * 2 * math.Pi / c.Height
}

// PhaseOffsetDeg returns the phase offset in degrees for display.
func (c SpiralConfig) PhaseOffsetDeg() float64 {
	return c.PhaseOffset * 180 / math.Pi
}

// ConfigByName returns the named configuration, or nil if not found.
func (p *Project) ConfigByName(name string) *NamedConfig {
	for i := range p.Configurations {
		if p.Configurations[i].Name == name {
			return &p.Configurations[i]
		}
	}
	return nil
}
