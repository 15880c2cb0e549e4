package cmd

import (
	"fmt"
	"os"

	"github.com/KaramelBytes/payscope-cli/internal/dataset"
)

// prepareTable runs the shared data pipeline: load (file or embedded
// default), validate the schema, drop rows without a department, apply the
// department selection, and sort. Each invocation starts from a fresh load;
// nothing carries over between runs.
func prepareTable(path string, selected []string, sortFlag string) (*dataset.Table, error) {
	var tbl *dataset.Table
	if path == "" {
		t, err := dataset.Load(nil)
		if err != nil {
			return nil, err
		}
		tbl = t
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open csv: %w", err)
		}
		defer f.Close()
		t, err := dataset.Load(f)
		if err != nil {
			return nil, err
		}
		tbl = t
	}
	if err := tbl.Validate(); err != nil {
		return nil, err
	}
	key, ok := dataset.ParseSortKey(sortFlag)
	if !ok {
		return nil, fmt.Errorf("unsupported --sort: %s (use avg-desc|avg-asc|department)", sortFlag)
	}
	return tbl.Clean().Filter(selected).Sort(key), nil
}

// csvArg returns the optional positional CSV path.
func csvArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}
