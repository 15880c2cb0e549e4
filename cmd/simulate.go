package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/KaramelBytes/payscope-cli/internal/chart"
	"github.com/KaramelBytes/payscope-cli/internal/export"
	"github.com/KaramelBytes/payscope-cli/internal/simulate"
)

var (
	simSamples int
	simSeed    int64
	simHTML    string
	simCSV     string
	simSort    string
	simPalette string
	simSelect  []string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [csv]",
	Short: "Simulate illustrative salary distributions and export a violin chart",
	Long: `Simulate draws per-department samples from a triangular distribution with
lower bound Min_Salary, mode Average_Salary and upper bound Max_Salary, then
exports the distributions as a horizontal violin chart. Departments with
missing values or inconsistent ranges are skipped.

Simulated data is for illustration only; it is not the real distribution.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := ensureConfig()
		samples := simSamples
		if !cmd.Flags().Changed("samples") {
			samples = c.SamplesPerDept
		}
		seed := simSeed
		if !cmd.Flags().Changed("seed") {
			seed = c.Seed
		}
		sortFlag := simSort
		if !cmd.Flags().Changed("sort") {
			sortFlag = c.Sort
		}
		palette := simPalette
		if !cmd.Flags().Changed("palette") {
			palette = c.Palette
		}

		tbl, err := prepareTable(csvArg(args), simSelect, sortFlag)
		if err != nil {
			return err
		}
		sampled, err := simulate.Run(tbl, samples, seed)
		if err != nil {
			return err
		}
		if sampled.Empty() {
			pterm.Warning.Println("Not enough valid Min/Average/Max ranges to simulate distributions.")
			return nil
		}

		if simCSV != "" {
			f, err := os.Create(simCSV)
			if err != nil {
				return fmt.Errorf("create sample csv: %w", err)
			}
			defer f.Close()
			if err := sampled.WriteCSV(f); err != nil {
				return err
			}
			pterm.Success.Printfln("Wrote %d samples to %s", len(sampled.Rows), simCSV)
		}

		spec, err := chart.BuildDistribution(sampled, chart.Options{Palette: palette})
		if err != nil {
			return err
		}
		htmlPath := simHTML
		if htmlPath == "" {
			htmlPath = filepath.Join(c.OutputDir, "simulated_violin.html")
		}
		doc, err := export.HTML(spec)
		if err != nil {
			return err
		}
		if err := os.WriteFile(htmlPath, doc, 0o644); err != nil {
			return fmt.Errorf("write html: %w", err)
		}
		pterm.Success.Printfln("Wrote %s", htmlPath)
		pterm.Info.Println("Simulation is illustrative only: use it when raw salary records are unavailable.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(simulateCmd)
	simulateCmd.Flags().IntVar(&simSamples, "samples", 300, "samples per department (50-2000 recommended)")
	simulateCmd.Flags().Int64Var(&simSeed, "seed", 42, "random seed; identical inputs reproduce identical samples")
	simulateCmd.Flags().StringVar(&simHTML, "html", "", "write the violin chart HTML to this path")
	simulateCmd.Flags().StringVar(&simCSV, "csv", "", "also write the long-form sample table as CSV")
	simulateCmd.Flags().StringVar(&simSort, "sort", "avg-desc", "row order: avg-desc | avg-asc | department")
	simulateCmd.Flags().StringVar(&simPalette, "palette", "Plotly", "color palette: Plotly | Blues | Viridis | Mako")
	simulateCmd.Flags().StringSliceVar(&simSelect, "select", nil, "departments to include (repeatable; empty = all)")
}
