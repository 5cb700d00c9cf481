// Package engine evaluates export-restriction scenarios against a
// trade graph, propagating import deficits to trading partners.
package engine

import (
	"errors"
	"fmt"

	"github.com/tradegraph/core/internal/graph"
	"github.com/tradegraph/core/internal/models"
)

// ErrValidation is returned when a scenario cannot be evaluated.
var ErrValidation = errors.New("invalid scenario")

// Evaluate computes per-country and global import deficits for a
// scenario. Scenario values are the fraction of exports retained, so a
// source with value v withholds 1-v of each outgoing flow and every
// importing partner loses amount*(1-v) of import capacity.
// Contributions from multiple restricting sources accumulate
// additively against the original edge amounts; restrictions are
// independent, never compounding.
//
// The whole scenario is validated before any state changes, so a
// validation failure leaves the graph exactly as it was. Deficit state
// on the graph is reset at the start of every call; no residue from a
// prior evaluation survives.
func Evaluate(g *graph.TradeGraph, scenario models.Scenario) (*models.DeficitReport, error) {
	for source, retained := range scenario {
		if _, ok := g.Country(source); !ok {
			return nil, fmt.Errorf("%w: %q is not in graph", ErrValidation, source)
		}
		if retained < 0 || retained > 1 {
			return nil, fmt.Errorf("%w: retained fraction %v for %q outside [0, 1]", ErrValidation, retained, source)
		}
	}

	g.ResetDeficits()

	for source, retained := range scenario {
		reduction := 1 - retained
		for partner, amount := range g.ExportMap(source) {
			c, _ := g.Country(partner)
			c.Deficit += amount * reduction
		}
	}

	report := &models.DeficitReport{
		Countries: make(map[string]models.CountryDeficit, g.NumCountries()),
	}

	for _, c := range g.Countries() {
		if imports := g.ImportSum(c.Name); imports > 0 {
			c.DeficitRelativePct = c.Deficit / imports * 100
		} else {
			// A country with no incoming trade has nothing to lose in
			// relative terms.
			c.DeficitRelativePct = 0
		}

		report.TotalDeficit += c.Deficit
		report.Countries[c.Name] = models.CountryDeficit{
			Name:               c.Name,
			ISO:                c.ISO,
			Centroid:           c.Centroid,
			Deficit:            c.Deficit,
			DeficitRelativePct: c.DeficitRelativePct,
		}
	}

	if total := g.SumOfTrade(); total > 0 {
		report.GlobalShortfallPct = report.TotalDeficit / total * 100
	}

	return report, nil
}
