package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/KaramelBytes/payscope-cli/internal/chart"
)

var (
	sumSort   string
	sumSelect []string
)

var summaryCmd = &cobra.Command{
	Use:   "summary [csv]",
	Short: "Print the current view as a table with summary statistics",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := ensureConfig()
		sortFlag := sumSort
		if !cmd.Flags().Changed("sort") {
			sortFlag = c.Sort
		}
		tbl, err := prepareTable(csvArg(args), sumSelect, sortFlag)
		if err != nil {
			return err
		}

		rows := pterm.TableData{{"Department", "Average", "Min", "Max"}}
		var (
			avgSum   float64
			avgCount int
			minOfMin *float64
			maxOfMax *float64
		)
		for _, r := range tbl.Records {
			row := []string{r.Department, "", "", ""}
			if r.Average != nil {
				row[1] = chart.Currency(*r.Average)
				avgSum += *r.Average
				avgCount++
			}
			if r.Min != nil {
				row[2] = chart.Currency(*r.Min)
				if minOfMin == nil || *r.Min < *minOfMin {
					v := *r.Min
					minOfMin = &v
				}
			}
			if r.Max != nil {
				row[3] = chart.Currency(*r.Max)
				if maxOfMax == nil || *r.Max > *maxOfMax {
					v := *r.Max
					maxOfMax = &v
				}
			}
			rows = append(rows, row)
		}
		if err := pterm.DefaultTable.WithHasHeader().WithData(rows).Render(); err != nil {
			return err
		}

		pterm.Printfln("Departments shown: %d", len(tbl.Records))
		if avgCount > 0 {
			pterm.Printfln("Mean of department averages: %s", chart.Currency(avgSum/float64(avgCount)))
		}
		if minOfMin != nil {
			pterm.Printfln("Min of mins: %s", chart.Currency(*minOfMin))
		}
		if maxOfMax != nil {
			pterm.Printfln("Max of maxes: %s", chart.Currency(*maxOfMax))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
	summaryCmd.Flags().StringVar(&sumSort, "sort", "avg-desc", "row order: avg-desc | avg-asc | department")
	summaryCmd.Flags().StringSliceVar(&sumSelect, "select", nil, "departments to include (repeatable; empty = all)")
}
