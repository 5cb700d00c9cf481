// Package models defines the core data structures of the trade model.
// It includes trade record, scenario, and deficit report definitions.
package models

// DeficitReport is the result of evaluating one scenario. It is the
// full contract with any downstream presenter: a flat mapping from
// country name to scalar fields plus two global scalars.
type DeficitReport struct {
	Countries          map[string]CountryDeficit `json:"countries"`
	TotalDeficit       float64                   `json:"total_deficit"`
	GlobalShortfallPct float64                   `json:"global_shortfall_pct"`
}

// CountryDeficit is the per-country slice of a report. Deficit is the
// absolute import volume lost; DeficitRelativePct expresses it as a
// percentage of the country's total imports.
type CountryDeficit struct {
	Name               string     `json:"name"`
	ISO                string     `json:"iso"`
	Centroid           Coordinate `json:"centroid"`
	Deficit            float64    `json:"deficit"`
	DeficitRelativePct float64    `json:"deficit_relative_pct"`
}
