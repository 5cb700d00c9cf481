// Package registry resolves country names to ISO alpha-3 codes and
// centroid coordinates, applying a fixed set of alias corrections.
package registry

import (
	"errors"
	"fmt"

	"github.com/tradegraph/core/internal/models"
)

// ErrUnknownCountry is returned by Resolve for names absent from both
// the base tables and the overrides.
var ErrUnknownCountry = errors.New("unknown country")

// Overrides patches the base lookup tables for names the trade dataset
// uses but the geographic reference data does not (historical names,
// territories, alternate spellings). Entries take precedence over the
// base tables.
type Overrides struct {
	ISO       map[string]string
	Centroids map[string]models.Coordinate
}

// DefaultOverrides returns the corrections required to reconcile the
// FAO trade dataset with the reference ISO and centroid tables. The
// set is exhaustive; resolution is reproducible given the same base
// tables.
func DefaultOverrides() Overrides {
	congo := models.Coordinate{Lon: 23.64396107, Lat: -2.87746289}
	return Overrides{
		ISO: map[string]string{
			"Pitcairn Islands":                          "PCN",
			"Wallis and Futuna Islands":                 "WLF",
			"Netherlands Antilles (former)":             "ANT",
			"French Southern and Antarctic Territories": "ATF",
		},
		Centroids: map[string]models.Coordinate{
			"Congo (Dem. Rep.)":                congo,
			"Democratic Republic of the Congo": congo,
			"Cote d'Ivoire":                    {Lon: -5.5692157, Lat: 7.6284262},
			"Laos":                             {Lon: 102.4954987, Lat: 19.8562698},
			"South Korea":                      {Lon: 127.83916086, Lat: 36.38523983},
			"Czech Republic":                   {Lon: 15.31240163, Lat: 49.73341233},
		},
	}
}

// Registry is an immutable name lookup built once at startup. Both
// input tables are copied, so later mutation of the caller's maps has
// no effect.
type Registry struct {
	iso       map[string]string
	centroids map[string]models.Coordinate
}

func New(iso map[string]string, centroids map[string]models.Coordinate, ov Overrides) *Registry {
	r := &Registry{
		iso:       make(map[string]string, len(iso)+len(ov.ISO)),
		centroids: make(map[string]models.Coordinate, len(centroids)+len(ov.Centroids)),
	}

	for name, code := range iso {
		r.iso[name] = code
	}
	for name, code := range ov.ISO {
		r.iso[name] = code
	}

	for name, c := range centroids {
		r.centroids[name] = c
	}
	for name, c := range ov.Centroids {
		r.centroids[name] = c
	}

	return r
}

// Resolve returns the ISO alpha-3 code and centroid for a country
// name. A name must be present in both tables to resolve.
func (r *Registry) Resolve(name string) (string, models.Coordinate, error) {
	code, ok := r.iso[name]
	if !ok {
		return "", models.Coordinate{}, fmt.Errorf("%w: no ISO code for %q", ErrUnknownCountry, name)
	}

	centroid, ok := r.centroids[name]
	if !ok {
		return "", models.Coordinate{}, fmt.Errorf("%w: no centroid for %q", ErrUnknownCountry, name)
	}

	return code, centroid, nil
}
