// Package net flattens the double conical spiral into a manufacturable
// approximation: concentric circular layers connected by diagonal fan
// struts, with a computed total material length.
package net

import (
	"math"

	"github.com/almazagit1002/shibari-chill-spiral/pkg/geometry"
	"github.com/almazagit1002/shibari-chill-spiral/pkg/spec"
)

// minAnchorsPerLayer is the floor on anchor count so that even tiny rings
// near the apex keep a connected net.
const minAnchorsPerLayer = 4

// Connection is one fan of struts from an outer-ring anchor to a set of
// inner-ring points spread across the configured arc span.
type Connection struct {
	// AnchorAngle is the outer anchor's angular position, radians.
	AnchorAngle float64 `json:"anchor_angle"`

	// Anchor is the outer anchor point in the layer plane.
	Anchor [2]float64 `json:"anchor"`

	// Points are the inner-ring fan points, arc_density of them.
	Points [][2]float64 `json:"points"`

	// Length is the summed strut length of this fan.
	Length float64 `json:"length"`
}

// Layer is one discretized circular cross-section of the spiral.
type Layer struct {
	Index int     `json:"index"`
	Z     float64 `json:"z"`

	OuterRadius float64 `json:"outer_radius"`
	InnerRadius float64 `json:"inner_radius"`

	// OuterAngle and InnerAngle are the spiral anchor angles at Z.
	OuterAngle float64 `json:"outer_angle"`
	InnerAngle float64 `json:"inner_angle"`

	// Degenerate marks a zero-width annulus: the layer is recorded but
	// contributes no strut length.
	Degenerate bool `json:"degenerate,omitempty"`

	Connections []Connection `json:"connections"`
	Length      float64      `json:"length"`
}

// Net is the complete flattened approximation of one configuration.
type Net struct {
	Layers []Layer `json:"layers"`

	// Length is the summed strut length of all layer fans.
	Length float64 `json:"length"`

	// StructLineLength is the supplementary structural material,
	// height * struct_lines.
	StructLineLength float64 `json:"struct_line_length"`
}

// LayerCount returns how many circular layers the spiral is sliced into:
// one layer per full turn, minimum one. The policy is a fidelity versus
// assembly-count trade-off, not an intrinsic property of the geometry.
func LayerCount(c *spec.SpiralConfig) int {
	return geometry.FullTurns(c)
}

// Build slices the spiral into circular layers and constructs the fan
// connections for each. The result is recomputed in full on every call.
func Build(c *spec.SpiralConfig) *Net {
	count := LayerCount(c)
	heights := geometry.SliceMidHeights(c, count)

	n := &Net{
		Layers:           make([]Layer, 0, count),
		StructLineLength: c.Height * c.StructLines,
	}

	for k, z := range heights {
		layer := buildLayer(c, k, z)
		n.Length += layer.Length
		n.Layers = append(n.Layers, layer)
	}

	return n
}

// buildLayer constructs one layer's ring data and fan connections.
func buildLayer(c *spec.SpiralConfig, index int, z float64) Layer {
	t := z / c.Height

	layer := Layer{
		Index:       index,
		Z:           z,
		OuterRadius: geometry.Radius(c, geometry.Outer, t),
		InnerRadius: geometry.Radius(c, geometry.Inner, t),
		OuterAngle:  geometry.Theta(c, geometry.Outer, t),
		InnerAngle:  geometry.Theta(c, geometry.Inner, t),
	}

	R := layer.OuterRadius
	r := layer.InnerRadius
	if R-r < 1e-12 {
		// Zero-width annulus: record the layer with no material.
		layer.Degenerate = true
		layer.Connections = []Connection{}
		return layer
	}

	anchors := anchorCount(R, r, c.TargetSpacing)
	offsets := fanOffsets(c.ArcSpanDeg, c.ArcDensity)

	layer.Connections = make([]Connection, 0, anchors)
	for a := 0; a < anchors; a++ {
		angle := 2 * math.Pi * float64(a) / float64(anchors)
		conn := buildConnection(R, r, angle, offsets)
		layer.Length += conn.Length
		layer.Connections = append(layer.Connections, conn)
	}

	return layer
}

// anchorCount places anchors so that spacing along the annulus midline
// circumference approximates the target: larger rings get proportionally
// more connections.
func anchorCount(outerRadius, innerRadius, targetSpacing float64) int {
	avgCircumference := math.Pi * (outerRadius + innerRadius)
	count := int(avgCircumference / targetSpacing)
	if count < minAnchorsPerLayer {
		count = minAnchorsPerLayer
	}
	return count
}

// fanOffsets returns density angular offsets evenly spanning the arc,
// centered on the anchor angle.
func fanOffsets(spanDeg float64, density int) []float64 {
	span := spanDeg * math.Pi / 180
	offsets := make([]float64, density)
	for j := 0; j < density; j++ {
		offsets[j] = -span/2 + span*float64(j)/float64(density-1)
	}
	return offsets
}

// buildConnection fans one outer anchor to the inner ring and measures the
// strut lengths. The net is flat: only planar displacement counts.
func buildConnection(outerRadius, innerRadius, angle float64, offsets []float64) Connection {
	conn := Connection{
		AnchorAngle: angle,
		Anchor: [2]float64{
			outerRadius * math.Cos(angle),
			outerRadius * math.Sin(angle),
		},
		Points: make([][2]float64, 0, len(offsets)),
	}

	for _, offset := range offsets {
		theta := angle + offset
		p := [2]float64{
			innerRadius * math.Cos(theta),
			innerRadius * math.Sin(theta),
		}
		conn.Points = append(conn.Points, p)
		conn.Length += math.Hypot(conn.Anchor[0]-p[0], conn.Anchor[1]-p[1])
	}

	return conn
}
