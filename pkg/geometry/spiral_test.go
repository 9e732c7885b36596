package geometry

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/almazagit1002/shibari-chill-spiral/pkg/spec"
)

func referenceConfig() *spec.SpiralConfig {
	return &spec.SpiralConfig{
		OuterRadius: 15,
		InnerRadius: 10,
		Height:      12,
		NumTurns:    8,
	}
}

func TestRadiusTaper(t *testing.T) {
	c := referenceConfig()

	if Radius(c, Outer, 0) != 15 {
		t.Errorf("outer radius at base = %v, want 15", Radius(c, Outer, 0))
	}
	if Radius(c, Inner, 0) != 10 {
		t.Errorf("inner radius at base = %v, want 10", Radius(c, Inner, 0))
	}

	// Both spirals taper to zero at the apex.
	if Radius(c, Outer, 1) != 0 {
		t.Errorf("outer radius at apex = %v, want 0", Radius(c, Outer, 1))
	}
	if Radius(c, Inner, 1) != 0 {
		t.Errorf("inner radius at apex = %v, want 0", Radius(c, Inner, 1))
	}

	// Halfway: 15 * 0.5 = 7.5
	if math.Abs(Radius(c, Outer, 0.5)-7.5) > 1e-12 {
		t.Errorf("outer radius at t=0.5 = %v, want 7.5", Radius(c, Outer, 0.5))
	}
}

func TestRadiusAtHeight(t *testing.T) {
	c := referenceConfig()
	// z = 3 is t = 0.25: 10 * 0.75 = 7.5
	got := RadiusAtHeight(c, Inner, 3)
	if math.Abs(got-7.5) > 1e-12 {
		t.Errorf("inner radius at z=3 = %v, want 7.5", got)
	}
}

func TestThetaPhaseOffset(t *testing.T) {
	c := referenceConfig()
	c.PhaseOffset = math.Pi / 2

	if Theta(c, Outer, 0) != 0 {
		t.Errorf("outer theta at t=0 = %v, want 0", Theta(c, Outer, 0))
	}
	if math.Abs(Theta(c, Inner, 0)-math.Pi/2) > 1e-12 {
		t.Errorf("inner theta at t=0 = %v, want pi/2", Theta(c, Inner, 0))
	}

	// Full sweep: 2*pi*8 turns plus the offset.
	want := 2*math.Pi*8 + math.Pi/2
	if math.Abs(Theta(c, Inner, 1)-want) > 1e-9 {
		t.Errorf("inner theta at t=1 = %v, want %v", Theta(c, Inner, 1), want)
	}
}

func TestAt(t *testing.T) {
	c := referenceConfig()

	base := At(c, Outer, 0)
	if base.Pos.X != 15 || base.Pos.Y != 0 || base.Pos.Z != 0 {
		t.Errorf("base point = %+v, want (15, 0, 0)", base.Pos)
	}
	if base.Radius != 15 {
		t.Errorf("base radius = %v, want 15", base.Radius)
	}

	apex := At(c, Outer, 1)
	if math.Abs(apex.Pos.X) > 1e-9 || math.Abs(apex.Pos.Y) > 1e-9 {
		t.Errorf("apex should be on the axis, got %+v", apex.Pos)
	}
	if apex.Pos.Z != 12 {
		t.Errorf("apex z = %v, want 12", apex.Pos.Z)
	}

	// Points always satisfy x^2 + y^2 = R(t)^2.
	p := At(c, Inner, 0.37)
	if math.Abs(math.Hypot(p.Pos.X, p.Pos.Y)-p.Radius) > 1e-9 {
		t.Errorf("point radius mismatch: |xy| = %v, R = %v",
			math.Hypot(p.Pos.X, p.Pos.Y), p.Radius)
	}
}

func TestSample(t *testing.T) {
	c := referenceConfig()
	pts := Sample(c, Outer, 100)

	if len(pts) != 100 {
		t.Fatalf("sample count = %d, want 100", len(pts))
	}
	if pts[0].T != 0 || pts[99].T != 1 {
		t.Errorf("sample endpoints t = %v, %v, want 0, 1", pts[0].T, pts[99].T)
	}

	// z strictly increases.
	for i := 1; i < len(pts); i++ {
		if pts[i].Pos.Z <= pts[i-1].Pos.Z {
			t.Fatalf("z not increasing at index %d", i)
		}
	}
}

func TestSampleMinimumCount(t *testing.T) {
	c := referenceConfig()
	pts := Sample(c, Outer, 1)
	if len(pts) != 2 {
		t.Errorf("sample with n=1 should clamp to 2 points, got %d", len(pts))
	}
}

func TestPathLengthStraightLine(t *testing.T) {
	// A degenerate spiral with zero turns... is not allowed by validation,
	// so measure a hand-built path instead.
	pts := []Point{
		{Pos: r3.Vec{X: 0, Y: 0, Z: 0}},
		{Pos: r3.Vec{X: 3, Y: 4, Z: 0}},
		{Pos: r3.Vec{X: 3, Y: 4, Z: 12}},
	}
	got := PathLength(pts)
	if math.Abs(got-17) > 1e-12 {
		t.Errorf("path length = %v, want 17", got)
	}
}

func TestInnerRadiusZero(t *testing.T) {
	c := referenceConfig()
	c.InnerRadius = 0

	// Pure cone to a point: every inner point sits on the axis.
	for _, tt := range []float64{0, 0.25, 0.5, 1} {
		p := At(c, Inner, tt)
		if p.Radius != 0 {
			t.Errorf("inner radius at t=%v = %v, want 0", tt, p.Radius)
		}
		if p.Pos.X != 0 || p.Pos.Y != 0 {
			t.Errorf("inner point at t=%v off axis: %+v", tt, p.Pos)
		}
	}

	if math.Abs(PathLength(Sample(c, Inner, 1000))-c.Height) > 1e-9 {
		t.Error("axis path length should equal height")
	}
}
