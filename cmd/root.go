package cmd

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	cfgpkg "github.com/KaramelBytes/payscope-cli/internal/config"
)

var (
	// Global flags
	cfgFile string
	debug   bool

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "payscope",
	Short: "payscope: visualize department salary summaries",
	Long: `payscope renders a per-department salary summary CSV (average, min, max)
as a horizontal bar chart with min/max ranges shown as asymmetric error bars,
and can simulate illustrative salary distributions from those summaries.
Charts export as PNG images and standalone interactive HTML documents.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.payscope/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: every setting has a flag-level fallback
		pterm.Warning.Printfln("failed to load config: %v", err)
		cfg = defaults()
		return
	}
	cfg = c
}

func defaults() *cfgpkg.Global {
	return &cfgpkg.Global{
		Palette:        "Plotly",
		Sort:           "avg-desc",
		ErrorBars:      true,
		SamplesPerDept: 300,
		Seed:           42,
		PNGScale:       2.0,
		Title:          "Average Salary by Department",
		OutputDir:      ".",
	}
}

func ensureConfig() *cfgpkg.Global {
	if cfg == nil {
		cfg = defaults()
	}
	return cfg
}
