// Package models defines the core data structures of the trade model.
// It includes trade record, scenario, and deficit report definitions.
package models

// Element values recognized in trade records. Any other value marks an
// unusable record.
const (
	ElementImport = "Import Quantity"
	ElementExport = "Export Quantity"
)

// UnspecifiedArea is the sentinel counterpart name used by the source
// dataset for flows with no identifiable partner. Records naming it
// carry no usable identity and never enter the graph.
const UnspecifiedArea = "Unspecified Area"

// TradeRecord is one row of the bilateral trade table. The reporter is
// the country that submitted the statistic; the partner is the
// counterpart it names.
type TradeRecord struct {
	Partner  string  `json:"partner"`
	Reporter string  `json:"reporter"`
	Element  string  `json:"element"`
	Value    float64 `json:"value"`
}

// Scenario maps a restricting country to the fraction of its normal
// exports it retains, in [0, 1]. A value of 0.9 means exports are cut
// by 10%; 0 is a full embargo; 1 is a no-op. The engine derives the
// withheld share as 1 - retained.
type Scenario map[string]float64

// Coordinate is a country centroid in (longitude, latitude) order.
type Coordinate struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}
