// Package graph builds and queries the directed weighted graph of
// bilateral trade flows between countries.
package graph

import (
	"sort"

	"gonum.org/v1/gonum/graph/simple"

	"github.com/tradegraph/core/internal/models"
)

// Country is a node in the trade graph. Name is the unique key; ISO
// and Centroid are resolved once at build time and never change. The
// two deficit fields are per-evaluation state, zeroed by
// ResetDeficits before each run.
type Country struct {
	id int64

	Name     string
	ISO      string
	Centroid models.Coordinate

	Deficit            float64
	DeficitRelativePct float64
}

// ID implements gonum's graph.Node.
func (c *Country) ID() int64 { return c.id }

// TradeGraph is a directed weighted graph of trade flows. An edge
// source → destination with weight w means the source exports w units
// to the destination. Topology and weights are fixed after Build; only
// the per-country deficit fields mutate between evaluations.
type TradeGraph struct {
	g      *simple.WeightedDirectedGraph
	byName map[string]*Country

	sumOfTrade float64
}

func newTradeGraph() *TradeGraph {
	return &TradeGraph{
		g:      simple.NewWeightedDirectedGraph(0, 0),
		byName: make(map[string]*Country),
	}
}

// addCountry registers a new node. Callers must have checked that the
// name is not already present.
func (t *TradeGraph) addCountry(name, iso string, centroid models.Coordinate) *Country {
	c := &Country{
		id:       t.g.NewNode().ID(),
		Name:     name,
		ISO:      iso,
		Centroid: centroid,
	}
	t.g.AddNode(c)
	t.byName[name] = c
	return c
}

// setTrade records a flow from source to destination. If the directed
// edge already exists the two figures are conflicting reports for the
// same quantity (e.g. both sides of a trade reported it with different
// values) and the weight becomes the mean of the current value and the
// new one. With more than two reports this is a running pairwise mean,
// each report averaged against the value accumulated so far, not a
// true mean of all reports.
func (t *TradeGraph) setTrade(source, destination *Country, amount float64) {
	if e := t.g.WeightedEdge(source.id, destination.id); e != nil {
		amount = (e.Weight() + amount) / 2
	}
	t.g.SetWeightedEdge(simple.WeightedEdge{F: source, T: destination, W: amount})
}

// Country looks up a node by name.
func (t *TradeGraph) Country(name string) (*Country, bool) {
	c, ok := t.byName[name]
	return c, ok
}

// Countries returns all nodes sorted by name.
func (t *TradeGraph) Countries() []*Country {
	out := make([]*Country, 0, len(t.byName))
	for _, c := range t.byName {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// TradeAmount returns the flow from source to destination, if the edge
// exists.
func (t *TradeGraph) TradeAmount(source, destination string) (float64, bool) {
	u, ok := t.byName[source]
	if !ok {
		return 0, false
	}
	v, ok := t.byName[destination]
	if !ok {
		return 0, false
	}
	e := t.g.WeightedEdge(u.id, v.id)
	if e == nil {
		return 0, false
	}
	return e.Weight(), true
}

// ExportMap returns destination country → amount for every outgoing
// flow of the named country. Always read live from the edges.
func (t *TradeGraph) ExportMap(name string) map[string]float64 {
	c, ok := t.byName[name]
	if !ok {
		return nil
	}

	out := make(map[string]float64)
	to := t.g.From(c.id)
	for to.Next() {
		partner := to.Node().(*Country)
		out[partner.Name] = t.g.WeightedEdge(c.id, partner.id).Weight()
	}
	return out
}

// ImportMap returns source country → amount for every incoming flow of
// the named country.
func (t *TradeGraph) ImportMap(name string) map[string]float64 {
	c, ok := t.byName[name]
	if !ok {
		return nil
	}

	out := make(map[string]float64)
	from := t.g.To(c.id)
	for from.Next() {
		partner := from.Node().(*Country)
		out[partner.Name] = t.g.WeightedEdge(partner.id, c.id).Weight()
	}
	return out
}

// ExportSum is the country's total export volume.
func (t *TradeGraph) ExportSum(name string) float64 {
	var sum float64
	for _, amount := range t.ExportMap(name) {
		sum += amount
	}
	return sum
}

// ImportSum is the country's total import volume.
func (t *TradeGraph) ImportSum(name string) float64 {
	var sum float64
	for _, amount := range t.ImportMap(name) {
		sum += amount
	}
	return sum
}

// SumOfTrade is the total volume across all edges, fixed at build
// time. It is the denominator of the global shortfall percentage.
func (t *TradeGraph) SumOfTrade() float64 { return t.sumOfTrade }

// NumCountries is the node count.
func (t *TradeGraph) NumCountries() int { return len(t.byName) }

// NumFlows is the edge count after merging.
func (t *TradeGraph) NumFlows() int { return t.g.Edges().Len() }

// ResetDeficits zeroes the mutable deficit state on every node. It is
// idempotent and must run before each evaluation so no residue leaks
// between runs.
func (t *TradeGraph) ResetDeficits() {
	for _, c := range t.byName {
		c.Deficit = 0
		c.DeficitRelativePct = 0
	}
}
