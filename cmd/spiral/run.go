package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/almazagit1002/shibari-chill-spiral/pkg/analysis"
	"github.com/almazagit1002/shibari-chill-spiral/pkg/net"
	"github.com/almazagit1002/shibari-chill-spiral/pkg/scene"
	"github.com/almazagit1002/shibari-chill-spiral/pkg/spec"
	"github.com/almazagit1002/shibari-chill-spiral/pkg/validation"
)

func runValidate(projectPath string) error {
	project, err := spec.LoadProject(projectPath)
	if err != nil {
		return fmt.Errorf("loading spec: %w", err)
	}

	anyInvalid := false
	for i := range project.Configurations {
		nc := &project.Configurations[i]
		report := validation.ValidateSchema(&nc.Params)

		fmt.Printf("%s\n", nc.Name)
		printValidationReport(report)
		fmt.Println()

		if !report.Valid {
			anyInvalid = true
		}
	}

	if anyInvalid {
		os.Exit(1)
	}
	return nil
}

func runAnalyze(projectPath string, jsonOut bool) error {
	project, err := spec.LoadProject(projectPath)
	if err != nil {
		return fmt.Errorf("loading spec: %w", err)
	}

	outcomes := analysis.AnalyzeProject(project)

	if jsonOut {
		docs := make([]map[string]any, 0, len(outcomes))
		for _, o := range outcomes {
			entry := map[string]any{
				"name":       o.Name,
				"validation": o.Report,
			}
			if o.Result != nil {
				entry["result"] = o.Result
				entry["scene"] = scene.Assemble(o.Result)
			}
			docs = append(docs, entry)
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(docs)
	}

	fmt.Println("DOUBLE CONICAL SPIRAL ANALYSIS")
	fmt.Println("==============================")

	for _, o := range outcomes {
		fmt.Printf("\n%s\n", o.Name)
		if o.Result == nil {
			printValidationReport(o.Report)
			continue
		}
		printResult(o.Result)
		if len(o.Report.Warnings) > 0 || len(o.Report.Info) > 0 {
			printValidationReport(o.Report)
		}
	}

	printSummaryTables(outcomes)
	return nil
}

func runLayers(projectPath string) error {
	project, err := spec.LoadProject(projectPath)
	if err != nil {
		return fmt.Errorf("loading spec: %w", err)
	}

	for i := range project.Configurations {
		nc := &project.Configurations[i]
		report := validation.ValidateSchema(&nc.Params)
		fmt.Printf("%s\n", nc.Name)
		if !report.Valid {
			printValidationReport(report)
			fmt.Println()
			continue
		}

		printLayers(net.Build(&nc.Params))
		fmt.Println()
	}
	return nil
}
