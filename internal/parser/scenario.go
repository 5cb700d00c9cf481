// Package parser provides utilities for parsing the model's input
// data: trade tables, registry lookup tables, and scenario files.
package parser

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/tradegraph/core/internal/models"
)

// ParseScenario reads a scenario from a YAML mapping of country name
// to the fraction of exports retained, e.g.
//
//	Russian Federation: 0.9   # exports cut by 10%
//	India: 0.7                # exports cut by 30%
//
// An empty document yields an empty scenario, which evaluates to zero
// deficit everywhere. Range checking is left to the engine.
func ParseScenario(data []byte) (models.Scenario, error) {
	scenario := models.Scenario{}
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("failed to unmarshal scenario: %w", err)
	}
	return scenario, nil
}
