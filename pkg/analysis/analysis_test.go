package analysis

import (
	"math"
	"testing"

	"github.com/almazagit1002/shibari-chill-spiral/pkg/spec"
)

func referenceConfig() spec.SpiralConfig {
	return spec.SpiralConfig{
		OuterRadius:   15,
		InnerRadius:   10,
		Height:        12,
		NumTurns:      8,
		StructLines:   10,
		TargetSpacing: 0.9,
		ArcSpanDeg:    30,
		ArcDensity:    10,
	}
}

func TestAnalyzeReferenceScenario(t *testing.T) {
	c := referenceConfig()
	res, report := Analyze("reference", &c)
	if res == nil {
		t.Fatalf("analysis rejected valid configuration: %s", report.Summary)
	}

	checks := []struct {
		name string
		got  float64
		want float64
		tol  float64
	}{
		{"analytical total", res.Analytical.Total, 630.64, 0.01},
		{"numerical total", res.Numerical.Total, 630.57, 0.01},
		{"circular total", res.Circular.Total, 628.32, 0.01},
		{"net length", res.NetLength, 12361.41, 0.01},
		{"struct line length", res.StructLineLength, 120.00, 1e-9},
		{"total material", res.TotalMaterial, 13112.05, 0.02},
	}
	for _, ck := range checks {
		if math.Abs(ck.got-ck.want) > ck.tol {
			t.Errorf("%s = %.4f, want %.4f", ck.name, ck.got, ck.want)
		}
	}
}

func TestAnalyzeAccuracy(t *testing.T) {
	c := referenceConfig()
	res, _ := Analyze("reference", &c)

	// Numerical is within 1%; circular is the characteristically larger
	// underestimate.
	if math.Abs(res.Accuracy.NumericalPct) > 1 {
		t.Errorf("numerical accuracy = %.4f%%, want within 1%%", res.Accuracy.NumericalPct)
	}
	if res.Accuracy.CircularPct >= 0 {
		t.Errorf("circular accuracy = %.4f%%, want negative (underestimate)", res.Accuracy.CircularPct)
	}
}

func TestAnalyzeRenderPaths(t *testing.T) {
	c := referenceConfig()
	res, _ := Analyze("reference", &c)

	if len(res.OuterPath) != RenderSamples || len(res.InnerPath) != RenderSamples {
		t.Fatalf("render path lengths = %d, %d, want %d",
			len(res.OuterPath), len(res.InnerPath), RenderSamples)
	}
	if res.OuterPath[0].Radius != 15 {
		t.Errorf("outer path base radius = %v, want 15", res.OuterPath[0].Radius)
	}
	if res.InnerPath[0].Radius != 10 {
		t.Errorf("inner path base radius = %v, want 10", res.InnerPath[0].Radius)
	}
}

func TestAnalyzeRejectsInvalid(t *testing.T) {
	c := referenceConfig()
	c.Height = -1

	res, report := Analyze("broken", &c)
	if res != nil {
		t.Error("invalid configuration should produce nil result")
	}
	if report.Valid {
		t.Error("report should be invalid")
	}
}

func TestAnalyzeIdempotent(t *testing.T) {
	c := referenceConfig()
	a, _ := Analyze("reference", &c)
	b, _ := Analyze("reference", &c)

	if a.TotalMaterial != b.TotalMaterial {
		t.Errorf("total material differs across runs: %v vs %v", a.TotalMaterial, b.TotalMaterial)
	}
	if a.Analytical.Total != b.Analytical.Total ||
		a.Numerical.Total != b.Numerical.Total ||
		a.Circular.Total != b.Circular.Total {
		t.Error("perimeter estimates differ across runs")
	}
	if a.NetLength != b.NetLength {
		t.Error("net length differs across runs")
	}
}

func TestAnalyzeProjectContinuesPastFailures(t *testing.T) {
	valid := referenceConfig()
	broken := referenceConfig()
	broken.ArcDensity = 1

	p := &spec.Project{
		Configurations: []spec.NamedConfig{
			{Name: "good", Params: valid},
			{Name: "bad", Params: broken},
			{Name: "also good", Params: valid},
		},
	}

	outcomes := AnalyzeProject(p)
	if len(outcomes) != 3 {
		t.Fatalf("outcome count = %d, want 3", len(outcomes))
	}

	if outcomes[0].Result == nil {
		t.Error("first configuration should succeed")
	}
	if outcomes[1].Result != nil {
		t.Error("second configuration should be rejected")
	}
	if outcomes[1].Report.Valid {
		t.Error("second configuration report should be invalid")
	}
	if outcomes[2].Result == nil {
		t.Error("third configuration should succeed despite earlier failure")
	}
}

func TestAnalyzeInnerRadiusZero(t *testing.T) {
	c := referenceConfig()
	c.InnerRadius = 0

	res, report := Analyze("cone", &c)
	if res == nil {
		t.Fatalf("pure cone rejected: %s", report.Summary)
	}
	if math.Abs(res.Analytical.Inner-c.Height) > 0.01 {
		t.Errorf("inner spiral length = %.4f, want %.4f", res.Analytical.Inner, c.Height)
	}
	if res.NetLength <= 0 {
		t.Errorf("net length = %v, want > 0", res.NetLength)
	}
}
