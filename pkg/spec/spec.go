package spec

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads a spiral project from a YAML file.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading spec file: %w", err)
	}

	var project Project
	if err := yaml.Unmarshal(data, &project); err != nil {
		return nil, fmt.Errorf("parsing spec YAML: %w", err)
	}

	if len(project.Configurations) == 0 {
		return nil, fmt.Errorf("spec %s contains no configurations", path)
	}

	return &project, nil
}

// LoadProject loads a spiral project from a project directory.
// It looks for spirals.yaml in the given directory.
func LoadProject(projectDir string) (*Project, error) {
	specPath := filepath.Join(projectDir, "spirals.yaml")
	return Load(specPath)
}
