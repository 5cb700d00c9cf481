// Package main provides the tradegraph CLI. It loads trade records,
// country lookup tables, and a scenario file, evaluates the scenario
// against the trade graph, and prints the deficit report as JSON.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tradegraph/core/internal/engine"
	"github.com/tradegraph/core/internal/graph"
	"github.com/tradegraph/core/internal/parser"
	"github.com/tradegraph/core/internal/registry"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "tradegraph",
		Short:        "Model the downstream effect of export restrictions on food imports",
		SilenceUsage: true,
	}
	root.AddCommand(newEvaluateCmd())
	return root
}

func newEvaluateCmd() *cobra.Command {
	var (
		tradePath    string
		registryPath string
		scenarioPath string
		pretty       bool
		verbose      bool
	)

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Evaluate an export-restriction scenario and print the deficit report",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(verbose)
			if err != nil {
				return err
			}
			defer logger.Sync()

			return runEvaluate(cmd, logger, tradePath, registryPath, scenarioPath, pretty)
		},
	}

	cmd.Flags().StringVar(&tradePath, "trade", "", "path to the trade records CSV")
	cmd.Flags().StringVar(&registryPath, "registry", "", "path to the country lookup tables JSON")
	cmd.Flags().StringVar(&scenarioPath, "scenario", "", "path to the scenario YAML")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "indent the JSON output")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "log at development verbosity")

	for _, flag := range []string{"trade", "registry", "scenario"} {
		cobra.CheckErr(cmd.MarkFlagRequired(flag))
	}

	return cmd
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func runEvaluate(cmd *cobra.Command, logger *zap.Logger, tradePath, registryPath, scenarioPath string, pretty bool) error {
	tradeData, err := os.ReadFile(tradePath)
	if err != nil {
		return fmt.Errorf("reading trade records: %w", err)
	}
	records, err := parser.ParseTradeCSV(tradeData)
	if err != nil {
		return err
	}

	registryData, err := os.ReadFile(registryPath)
	if err != nil {
		return fmt.Errorf("reading registry tables: %w", err)
	}
	iso, centroids, err := parser.ParseRegistry(registryData)
	if err != nil {
		return err
	}

	scenarioData, err := os.ReadFile(scenarioPath)
	if err != nil {
		return fmt.Errorf("reading scenario: %w", err)
	}
	scenario, err := parser.ParseScenario(scenarioData)
	if err != nil {
		return err
	}

	reg := registry.New(iso, centroids, registry.DefaultOverrides())

	g, err := graph.Build(records, reg, logger)
	if err != nil {
		return err
	}
	logger.Info("trade graph built",
		zap.Int("countries", g.NumCountries()),
		zap.Int("flows", g.NumFlows()),
		zap.Float64("sum_of_trade", g.SumOfTrade()))

	report, err := engine.Evaluate(g, scenario)
	if err != nil {
		return err
	}
	logger.Info("scenario evaluated",
		zap.Int("sources", len(scenario)),
		zap.Float64("total_deficit", report.TotalDeficit),
		zap.Float64("global_shortfall_pct", report.GlobalShortfallPct))

	encoder := json.NewEncoder(cmd.OutOrStdout())
	if pretty {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(report)
}
