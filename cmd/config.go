package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	cfgpkg "github.com/KaramelBytes/payscope-cli/internal/config"
	"github.com/KaramelBytes/payscope-cli/internal/dataset"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set payscope configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := ensureConfig()
		fmt.Printf("palette: %s\n", c.Palette)
		fmt.Printf("sort: %s\n", c.Sort)
		fmt.Printf("error_bars: %v\n", c.ErrorBars)
		fmt.Printf("samples_per_dept: %d\n", c.SamplesPerDept)
		fmt.Printf("seed: %d\n", c.Seed)
		fmt.Printf("png_scale: %.2f\n", c.PNGScale)
		fmt.Printf("title: %s\n", c.Title)
		fmt.Printf("output_dir: %s\n", c.OutputDir)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		c := ensureConfig()
		switch key {
		case "palette":
			c.Palette = val
		case "sort":
			if _, ok := dataset.ParseSortKey(val); !ok {
				return fmt.Errorf("invalid sort: %s (use avg-desc|avg-asc|department)", val)
			}
			c.Sort = val
		case "error_bars":
			b, err := strconv.ParseBool(val)
			if err != nil {
				return fmt.Errorf("invalid bool for error_bars: %v", val)
			}
			c.ErrorBars = b
		case "samples_per_dept":
			i, err := strconv.Atoi(val)
			if err != nil || i < 1 {
				return fmt.Errorf("invalid int for samples_per_dept: %v", val)
			}
			c.SamplesPerDept = i
		case "seed":
			i, err := strconv.ParseInt(val, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid int for seed: %v", val)
			}
			c.Seed = i
		case "png_scale":
			f, err := strconv.ParseFloat(val, 64)
			if err != nil || f <= 0 {
				return fmt.Errorf("invalid float for png_scale: %v", val)
			}
			c.PNGScale = f
		case "title":
			c.Title = val
		case "output_dir":
			c.OutputDir = val
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := cfgpkg.Save(c, cfgFile); err != nil {
			return err
		}
		fmt.Println("Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
