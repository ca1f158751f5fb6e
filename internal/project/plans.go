package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/piwi3910/PatternCut/internal/model"
	"gopkg.in/yaml.v3"
)

// SavePlan writes a cutting plan to path. A .yaml or .yml extension selects
// YAML; anything else is written as indented JSON.
func SavePlan(path string, plan model.CuttingPlan) error {
	data, err := MarshalPlan(plan, formatForPath(path))
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create plan directory: %w", err)
		}
	}
	return os.WriteFile(path, data, 0644)
}

// LoadPlan reads a cutting plan written by SavePlan.
func LoadPlan(path string) (model.CuttingPlan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.CuttingPlan{}, err
	}
	var plan model.CuttingPlan
	if formatForPath(path) == FormatYAML {
		err = yaml.Unmarshal(data, &plan)
	} else {
		err = json.Unmarshal(data, &plan)
	}
	if err != nil {
		return model.CuttingPlan{}, fmt.Errorf("failed to parse plan: %w", err)
	}
	return plan, nil
}

// Output formats for plans.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// MarshalPlan encodes a plan as JSON or YAML.
func MarshalPlan(plan model.CuttingPlan, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case FormatYAML, "yml":
		data, err := yaml.Marshal(plan)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal plan as YAML: %w", err)
		}
		return data, nil
	case FormatJSON, "":
		data, err := json.MarshalIndent(plan, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal plan as JSON: %w", err)
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

func formatForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}
