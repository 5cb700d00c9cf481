// Package main provides the tradegraph CLI. It loads trade records,
// country lookup tables, and a scenario file, evaluates the scenario
// against the trade graph, and prints the deficit report as JSON.
package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradegraph/core/internal/models"
)

func writeFixtures(t *testing.T) (trade, reg, scenario string) {
	t.Helper()
	dir := t.TempDir()

	trade = filepath.Join(dir, "trade.csv")
	require.NoError(t, os.WriteFile(trade, []byte(
		"partner,reporter,element,value\n"+
			"Egypt,Russian Federation,Export Quantity,100\n"+
			"Turkey,Russian Federation,Export Quantity,50\n"), 0o644))

	reg = filepath.Join(dir, "registry.json")
	require.NoError(t, os.WriteFile(reg, []byte(`{
		"iso": {"Russian Federation": "RUS", "Egypt": "EGY", "Turkey": "TUR"},
		"centroids": {
			"Russian Federation": [96.68656, 61.98052],
			"Egypt": [29.86190, 26.49593],
			"Turkey": [35.16895, 39.06120]
		}
	}`), 0o644))

	scenario = filepath.Join(dir, "scenario.yaml")
	require.NoError(t, os.WriteFile(scenario, []byte("Russian Federation: 0.8\n"), 0o644))

	return trade, reg, scenario
}

func TestEvaluateCommand(t *testing.T) {
	t.Run("prints the deficit report as JSON", func(t *testing.T) {
		trade, reg, scenario := writeFixtures(t)

		var out bytes.Buffer
		cmd := newRootCmd()
		cmd.SetOut(&out)
		cmd.SetErr(&out)
		cmd.SetArgs([]string{"evaluate",
			"--trade", trade,
			"--registry", reg,
			"--scenario", scenario,
			"--pretty"})

		require.NoError(t, cmd.Execute())

		var report models.DeficitReport
		require.NoError(t, json.Unmarshal(out.Bytes(), &report))
		assert.Equal(t, 30.0, report.TotalDeficit)
		assert.Equal(t, 20.0, report.GlobalShortfallPct)
		assert.Equal(t, 20.0, report.Countries["Egypt"].Deficit)
		assert.Equal(t, "RUS", report.Countries["Russian Federation"].ISO)
	})

	t.Run("missing required flags fail", func(t *testing.T) {
		cmd := newRootCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{"evaluate"})

		assert.Error(t, cmd.Execute())
	})

	t.Run("scenario naming a country outside the graph fails", func(t *testing.T) {
		trade, reg, scenario := writeFixtures(t)
		require.NoError(t, os.WriteFile(scenario, []byte("India: 0.5\n"), 0o644))

		cmd := newRootCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{"evaluate",
			"--trade", trade,
			"--registry", reg,
			"--scenario", scenario})

		assert.Error(t, cmd.Execute())
	})
}
