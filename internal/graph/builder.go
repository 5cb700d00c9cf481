// Package graph builds and queries the directed weighted graph of
// bilateral trade flows between countries.
package graph

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/tradegraph/core/internal/models"
	"github.com/tradegraph/core/internal/registry"
)

// Build constructs the trade graph from raw records. Every distinct
// partner name becomes a node resolved through the registry; an
// unresolvable name aborts the build. Records with an unrecognized
// element or with reporter == partner are skipped with a warning.
// Records naming the unspecified-area sentinel are skipped silently.
func Build(records []models.TradeRecord, reg *registry.Registry, log *zap.Logger) (*TradeGraph, error) {
	if log == nil {
		log = zap.NewNop()
	}

	t := newTradeGraph()

	for _, rec := range records {
		for _, name := range []string{rec.Partner, rec.Reporter} {
			if name == models.UnspecifiedArea {
				continue
			}
			if _, ok := t.byName[name]; ok {
				continue
			}

			iso, centroid, err := reg.Resolve(name)
			if err != nil {
				return nil, fmt.Errorf("resolving %q: %w", name, err)
			}
			t.addCountry(name, iso, centroid)
		}
	}

	for _, rec := range records {
		if rec.Partner == models.UnspecifiedArea || rec.Reporter == models.UnspecifiedArea {
			continue
		}

		var source, destination string
		switch rec.Element {
		case models.ElementExport:
			source, destination = rec.Reporter, rec.Partner
		case models.ElementImport:
			source, destination = rec.Partner, rec.Reporter
		default:
			log.Warn("skipping record with unknown element",
				zap.String("element", rec.Element),
				zap.String("reporter", rec.Reporter),
				zap.String("partner", rec.Partner))
			continue
		}

		if source == destination {
			log.Warn("skipping self-trade record", zap.String("country", source))
			continue
		}

		t.setTrade(t.byName[source], t.byName[destination], rec.Value)
	}

	for _, c := range t.byName {
		for _, amount := range t.ExportMap(c.Name) {
			t.sumOfTrade += amount
		}
	}

	return t, nil
}
