// Package graph builds and queries the directed weighted graph of
// bilateral trade flows between countries.
package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradegraph/core/internal/models"
)

// wheatGraph builds a small fixture: Russia exports 100 to Egypt and
// 50 to Turkey, Turkey exports 30 to Egypt.
func wheatGraph(t *testing.T) *TradeGraph {
	t.Helper()

	records := []models.TradeRecord{
		{Partner: "Egypt", Reporter: "Russian Federation", Element: models.ElementExport, Value: 100},
		{Partner: "Turkey", Reporter: "Russian Federation", Element: models.ElementExport, Value: 50},
		{Partner: "Egypt", Reporter: "Turkey", Element: models.ElementExport, Value: 30},
	}

	g, err := Build(records, testRegistry(), nil)
	require.NoError(t, err)
	return g
}

func TestTradeGraphQueries(t *testing.T) {
	g := wheatGraph(t)

	t.Run("export map lists outgoing flows", func(t *testing.T) {
		assert.Equal(t, map[string]float64{
			"Egypt":  100,
			"Turkey": 50,
		}, g.ExportMap("Russian Federation"))
	})

	t.Run("import map lists incoming flows", func(t *testing.T) {
		assert.Equal(t, map[string]float64{
			"Russian Federation": 100,
			"Turkey":             30,
		}, g.ImportMap("Egypt"))
	})

	t.Run("sums follow the maps", func(t *testing.T) {
		assert.Equal(t, 150.0, g.ExportSum("Russian Federation"))
		assert.Equal(t, 130.0, g.ImportSum("Egypt"))
		assert.Zero(t, g.ImportSum("Russian Federation"))
		assert.Zero(t, g.ExportSum("Egypt"))
	})

	t.Run("unknown country yields nil maps and zero sums", func(t *testing.T) {
		assert.Nil(t, g.ExportMap("Atlantis"))
		assert.Nil(t, g.ImportMap("Atlantis"))
		assert.Zero(t, g.ExportSum("Atlantis"))
	})

	t.Run("countries are sorted by name", func(t *testing.T) {
		countries := g.Countries()
		require.Len(t, countries, 3)
		assert.Equal(t, "Egypt", countries[0].Name)
		assert.Equal(t, "Russian Federation", countries[1].Name)
		assert.Equal(t, "Turkey", countries[2].Name)
	})

	t.Run("trade amount reports missing edges", func(t *testing.T) {
		amount, ok := g.TradeAmount("Turkey", "Egypt")
		require.True(t, ok)
		assert.Equal(t, 30.0, amount)

		_, ok = g.TradeAmount("Egypt", "Turkey")
		assert.False(t, ok)
	})
}

func TestResetDeficits(t *testing.T) {
	g := wheatGraph(t)

	for _, c := range g.Countries() {
		c.Deficit = 42
		c.DeficitRelativePct = 7
	}

	g.ResetDeficits()
	g.ResetDeficits() // idempotent

	for _, c := range g.Countries() {
		assert.Zero(t, c.Deficit)
		assert.Zero(t, c.DeficitRelativePct)
	}
}
