package scene

import (
	"time"

	"github.com/almazagit1002/shibari-chill-spiral/pkg/analysis"
	"github.com/almazagit1002/shibari-chill-spiral/pkg/geometry"
)

const (
	// coneProfileSamples is the point count of each cone boundary line.
	coneProfileSamples = 100

	// ringGap is the vertical spacing between stacked rings in the net
	// drawing, in drawing units.
	ringGap = 0.2
)

// Assemble converts one analysis result into a renderer-facing document.
func Assemble(res *analysis.Result) *Document {
	doc := &Document{
		Metadata: Metadata{
			Name:        res.Name,
			Config:      res.Config,
			GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		},
		Spirals: []SpiralPath{
			{Name: "outer", Points: flattenPath(res.OuterPath)},
			{Name: "inner", Points: flattenPath(res.InnerPath)},
		},
		Cones: []ConeProfile{
			coneProfile(res, geometry.Outer),
			coneProfile(res, geometry.Inner),
		},
		Net: assembleNet(res),
	}
	return doc
}

// flattenPath converts sampled spiral points to plain coordinate triples.
func flattenPath(pts []geometry.Point) [][3]float64 {
	out := make([][3]float64, len(pts))
	for i, p := range pts {
		out[i] = [3]float64{p.Pos.X, p.Pos.Y, p.Pos.Z}
	}
	return out
}

// coneProfile samples the taper boundary of one spiral for side views.
func coneProfile(res *analysis.Result, sel geometry.Spiral) ConeProfile {
	c := &res.Config
	profile := make([][2]float64, coneProfileSamples)
	for i := 0; i < coneProfileSamples; i++ {
		z := c.Height * float64(i) / float64(coneProfileSamples-1)
		profile[i] = [2]float64{geometry.RadiusAtHeight(c, sel, z), z}
	}

	name := "outer"
	if sel == geometry.Inner {
		name = "inner"
	}
	return ConeProfile{Name: name, Profile: profile}
}

// assembleNet stacks the net layers vertically, translating every fan strut
// into drawing coordinates. The offset advances by each ring's outer radius
// plus a fixed gap so rings do not overlap.
func assembleNet(res *analysis.Result) NetPattern {
	pattern := NetPattern{
		Gap:   ringGap,
		Rings: make([]RingPattern, 0, len(res.Net.Layers)),
	}

	yOffset := 0.0
	for _, layer := range res.Net.Layers {
		ring := RingPattern{
			Index:       layer.Index,
			OuterRadius: layer.OuterRadius,
			InnerRadius: layer.InnerRadius,
			YOffset:     yOffset,
		}

		for _, conn := range layer.Connections {
			for _, p := range conn.Points {
				ring.Segments = append(ring.Segments, Segment{
					conn.Anchor[0], conn.Anchor[1] + yOffset,
					p[0], p[1] + yOffset,
				})
			}
		}

		pattern.Rings = append(pattern.Rings, ring)
		yOffset += layer.OuterRadius + ringGap
	}

	return pattern
}
