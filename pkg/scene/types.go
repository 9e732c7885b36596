// Package scene assembles analysis results into a renderer-facing document:
// spiral polylines, cone boundary profiles, and the stacked annular net
// pattern. It contains no geometry logic of its own; image and PDF export
// are external concerns.
package scene

import "github.com/almazagit1002/shibari-chill-spiral/pkg/spec"

// Document is the complete 2D/3D scene output for an external renderer.
type Document struct {
	Metadata Metadata      `json:"metadata"`
	Spirals  []SpiralPath  `json:"spirals"`
	Cones    []ConeProfile `json:"cones"`
	Net      NetPattern    `json:"net"`
}

// Metadata holds configuration-level summary data.
type Metadata struct {
	Name        string            `json:"name"`
	Config      spec.SpiralConfig `json:"config"`
	GeneratedAt string            `json:"generated_at"`
}

// SpiralPath is a dense 3D polyline for one spiral.
type SpiralPath struct {
	Name   string       `json:"name"`
	Points [][3]float64 `json:"points"`
}

// ConeProfile is the (radius, z) boundary line of one cone for side views.
type ConeProfile struct {
	Name    string       `json:"name"`
	Profile [][2]float64 `json:"profile"`
}

// NetPattern is the flattened net drawing: rings stacked vertically with a
// small gap so each annulus is visible separately.
type NetPattern struct {
	Gap   float64       `json:"gap"`
	Rings []RingPattern `json:"rings"`
}

// RingPattern is one annulus with its fan strut segments, offset along the
// drawing's y axis.
type RingPattern struct {
	Index       int       `json:"index"`
	OuterRadius float64   `json:"outer_radius"`
	InnerRadius float64   `json:"inner_radius"`
	YOffset     float64   `json:"y_offset"`
	Segments    []Segment `json:"segments"`
}

// Segment is a single drawn strut: x1, y1, x2, y2 in drawing coordinates.
type Segment [4]float64
