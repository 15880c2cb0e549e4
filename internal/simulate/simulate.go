// Package simulate draws illustrative per-department salary samples from a
// triangular distribution parameterized by (min, average, max). The output is
// for visualization only, not statistical inference.
package simulate

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"math/rand"
	"strconv"

	"github.com/KaramelBytes/payscope-cli/internal/dataset"
)

// Sample is one simulated observation in long form.
type Sample struct {
	Department string
	Salary     float64
}

// Samples is a long-form sample table of size
// samplesPerDept x qualifying-department-count. A run with zero qualifying
// rows yields an empty (but never nil) Samples.
type Samples struct {
	Rows []Sample
}

// Columns returns the two column names of the long-form table. They are
// present even when the table holds no rows.
func (s *Samples) Columns() [2]string {
	return [2]string{"Department", "Salary"}
}

// Empty reports whether no department qualified for simulation.
func (s *Samples) Empty() bool { return len(s.Rows) == 0 }

// Departments returns the distinct department names in first-seen order.
func (s *Samples) Departments() []string {
	var names []string
	seen := map[string]bool{}
	for _, r := range s.Rows {
		if !seen[r.Department] {
			seen[r.Department] = true
			names = append(names, r.Department)
		}
	}
	return names
}

// WriteCSV writes the long-form table, header included, to w.
func (s *Samples) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	cols := s.Columns()
	if err := cw.Write(cols[:]); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range s.Rows {
		rec := []string{r.Department, strconv.FormatFloat(r.Salary, 'f', -1, 64)}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Run draws samplesPerDept values per qualifying department. A row qualifies
// when Min, Average and Max are all present, Min < Max, and the average lies
// within [Min, Max]; anything else is silently skipped. Identical
// (table, samplesPerDept, seed) inputs reproduce identical output: the
// generator is a math/rand source with a fixed seed and the draw order is the
// table's row order.
func Run(t *dataset.Table, samplesPerDept int, seed int64) (*Samples, error) {
	if samplesPerDept < 1 {
		return nil, fmt.Errorf("samples per department must be >= 1, got %d", samplesPerDept)
	}
	rng := rand.New(rand.NewSource(seed))
	out := &Samples{}
	for _, rec := range t.Records {
		if rec.Min == nil || rec.Average == nil || rec.Max == nil {
			continue
		}
		lo, mode, hi := *rec.Min, *rec.Average, *rec.Max
		if !(lo < hi) || mode < lo || mode > hi {
			continue
		}
		for i := 0; i < samplesPerDept; i++ {
			out.Rows = append(out.Rows, Sample{
				Department: rec.Department,
				Salary:     triangular(rng, lo, mode, hi),
			})
		}
	}
	return out, nil
}

// triangular draws one value via inverse transform sampling.
func triangular(rng *rand.Rand, lo, mode, hi float64) float64 {
	u := rng.Float64()
	cut := (mode - lo) / (hi - lo)
	if u < cut {
		return lo + math.Sqrt(u*(hi-lo)*(mode-lo))
	}
	return hi - math.Sqrt((1-u)*(hi-lo)*(hi-mode))
}
