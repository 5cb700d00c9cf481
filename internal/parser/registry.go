// Package parser provides utilities for parsing the model's input
// data: trade tables, registry lookup tables, and scenario files.
package parser

import (
	"encoding/json"
	"fmt"

	"github.com/tradegraph/core/internal/models"
)

type registryFile struct {
	ISO       map[string]string     `json:"iso"`
	Centroids map[string][2]float64 `json:"centroids"`
}

// ParseRegistry reads the two country lookup tables from JSON of the
// form {"iso": {name: code}, "centroids": {name: [lon, lat]}}. Both
// tables are required.
func ParseRegistry(data []byte) (map[string]string, map[string]models.Coordinate, error) {
	if len(data) == 0 {
		return nil, nil, fmt.Errorf("empty registry data")
	}

	var file registryFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, nil, fmt.Errorf("failed to unmarshal registry: %w", err)
	}

	if len(file.ISO) == 0 {
		return nil, nil, fmt.Errorf("invalid registry: missing iso table")
	}
	if len(file.Centroids) == 0 {
		return nil, nil, fmt.Errorf("invalid registry: missing centroids table")
	}

	centroids := make(map[string]models.Coordinate, len(file.Centroids))
	for name, c := range file.Centroids {
		centroids[name] = models.Coordinate{Lon: c[0], Lat: c[1]}
	}

	return file.ISO, centroids, nil
}
