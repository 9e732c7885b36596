package main

import (
	"fmt"
	"strings"

	"github.com/almazagit1002/shibari-chill-spiral/pkg/analysis"
	"github.com/almazagit1002/shibari-chill-spiral/pkg/net"
	"github.com/almazagit1002/shibari-chill-spiral/pkg/perimeter"
	"github.com/almazagit1002/shibari-chill-spiral/pkg/validation"
)

func printValidationReport(r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Printf("ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			fmt.Printf("  [%s] %s\n", e.Level, e.Message)
			if e.SpecPath != "" {
				fmt.Printf("    -> %s = %v\n", e.SpecPath, e.ActualValue)
			}
			if e.Expected != "" {
				fmt.Printf("    expected: %s\n", e.Expected)
			}
			for _, s := range e.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
	}

	if len(r.Warnings) > 0 {
		fmt.Printf("WARNINGS (%d):\n", len(r.Warnings))
		for _, w := range r.Warnings {
			fmt.Printf("  [%s] %s\n", w.Level, w.Message)
			if w.SpecPath != "" {
				fmt.Printf("    -> %s = %v\n", w.SpecPath, w.ActualValue)
			}
			for _, s := range w.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
	}

	if len(r.Info) > 0 {
		fmt.Printf("INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Printf("  [%s] %s\n", i.Level, i.Message)
		}
	}

	if r.Valid {
		fmt.Printf("Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Printf("Result: INVALID (%s)\n", r.Summary)
	}
}

func printResult(res *analysis.Result) {
	c := res.Config

	fmt.Println("CONFIGURATION PARAMETERS:")
	fmt.Println(strings.Repeat("-", 40))
	fmt.Printf("%-20s %8.2f\n", "Outer Radius:", c.OuterRadius)
	fmt.Printf("%-20s %8.2f\n", "Inner Radius:", c.InnerRadius)
	fmt.Printf("%-20s %8.2f\n", "Height:", c.Height)
	fmt.Printf("%-20s %8.2f\n", "Number of Turns:", c.NumTurns)
	fmt.Printf("%-20s %7.0f°\n", "Phase Offset:", c.PhaseOffsetDeg())
	fmt.Printf("%-20s %8.2f\n", "Structural Lines:", res.StructLineLength)

	fmt.Println("\nPERIMETER CALCULATIONS:")
	fmt.Println(strings.Repeat("=", 50))
	printEstimate("Analytical Method (Reference)", res.Analytical)
	printEstimate("Numerical Method (Discrete Approximation)", res.Numerical)
	printEstimate("Circular Approximation Method", res.Circular)

	fmt.Println("\nMETHOD ACCURACY COMPARISON:")
	fmt.Println(strings.Repeat("=", 40))
	fmt.Printf("%-25s %+9.4f%%\n", "Numerical vs Analytical:", res.Accuracy.NumericalPct)
	fmt.Printf("%-25s %+9.4f%%\n", "Circular vs Analytical:", res.Accuracy.CircularPct)

	fmt.Println("\nANNULAR NET:")
	fmt.Println(strings.Repeat("-", 40))
	fmt.Printf("%-20s %10d\n", "Layers:", len(res.Net.Layers))
	fmt.Printf("%-20s %10.4f\n", "Net Length:", res.NetLength)
	fmt.Printf("%-20s %10.2f\n", "Struct Lines:", res.StructLineLength)
	fmt.Printf("%-20s %10.2f\n", "Total Material:", res.TotalMaterial)
}

func printEstimate(title string, est perimeter.Estimate) {
	fmt.Printf("\n%s:\n", title)
	fmt.Println(strings.Repeat("-", len(title)+1))
	fmt.Printf("  %-15s %10.4f\n", "Outer Spiral:", est.Outer)
	fmt.Printf("  %-15s %10.4f\n", "Inner Spiral:", est.Inner)
	fmt.Printf("  %-15s %10.4f\n", "Total Length:", est.Total)
	if est.Degraded {
		fmt.Println("  (quadrature degraded; discretized fallback)")
	}
}

func printLayers(n *net.Net) {
	fmt.Printf("%-8s %10s %10s %10s %12s %12s\n",
		"Layer", "Z", "R Outer", "R Inner", "Connections", "Length")
	fmt.Println(strings.Repeat("-", 68))
	for _, layer := range n.Layers {
		fmt.Printf("%-8d %10.2f %10.2f %10.2f %12d %12.4f\n",
			layer.Index+1, layer.Z, layer.OuterRadius, layer.InnerRadius,
			len(layer.Connections), layer.Length)
	}
	fmt.Println(strings.Repeat("-", 68))
	fmt.Printf("%-8s %46s %12.4f\n", "TOTAL", "", n.Length)
}

func printSummaryTables(outcomes []analysis.Outcome) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 110))
	fmt.Println("CONFIGURATION COMPARISON SUMMARY")
	fmt.Println(strings.Repeat("=", 110))
	fmt.Printf("%-35s %12s %12s %12s %12s %12s\n",
		"Configuration", "Analytical", "Numerical", "Circular", "Struct Lines", "Net Length")
	fmt.Println(strings.Repeat("-", 110))

	for _, o := range outcomes {
		if o.Result == nil {
			fmt.Printf("%-35s %s\n", shortName(o.Name), "INVALID")
			continue
		}
		r := o.Result
		fmt.Printf("%-35s %12.2f %12.2f %12.2f %12.2f %12.4f\n",
			shortName(o.Name), r.Analytical.Total, r.Numerical.Total,
			r.Circular.Total, r.StructLineLength, r.NetLength)
	}

	fmt.Println()
	fmt.Println(strings.Repeat("=", 80))
	fmt.Println("TOTAL MATERIAL SUMMARY (Spiral + Net + Structural Lines)")
	fmt.Println(strings.Repeat("=", 80))
	fmt.Printf("%-35s %14s %14s %14s\n", "Configuration", "Spiral", "Net", "Total")
	fmt.Println(strings.Repeat("-", 80))

	for _, o := range outcomes {
		if o.Result == nil {
			continue
		}
		r := o.Result
		fmt.Printf("%-35s %14.2f %14.2f %14.2f\n",
			shortName(o.Name), r.Analytical.Total, r.NetLength, r.TotalMaterial)
	}
}

// shortName strips a leading "N." numbering prefix used in config names.
func shortName(name string) string {
	if i := strings.Index(name, "."); i > 0 && i < 4 {
		return strings.TrimSpace(name[i+1:])
	}
	return name
}
