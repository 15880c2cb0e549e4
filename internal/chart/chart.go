// Package chart turns prepared salary tables into renderer-agnostic chart
// specs. A Spec is ephemeral: built for one render/export and discarded.
package chart

import (
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/KaramelBytes/payscope-cli/internal/dataset"
	"github.com/KaramelBytes/payscope-cli/internal/simulate"
)

// ErrNoSamples signals that a distribution chart was requested over an empty
// sample table. It is a "not enough data" condition for the caller to
// surface, not a failure.
var ErrNoSamples = errors.New("no simulated samples to plot")

// Kind discriminates the two chart shapes this tool produces.
type Kind string

const (
	KindBar    Kind = "bar"
	KindViolin Kind = "violin"
)

// Row pixel height and the minimum row count the height calculation assumes,
// so short tables still leave room for legible labels.
const (
	rowHeight = 60
	minRows   = 4
)

// Bar is one horizontal bar with asymmetric whisker extents and preformatted
// hover values.
type Bar struct {
	Label   string
	Value   float64
	ErrLow  float64 // extent toward Min, clamped at 0
	ErrHigh float64 // extent toward Max, clamped at 0

	HoverAverage string
	HoverMin     string
	HoverMax     string
}

// Series is one named group of values; for violin specs, one per department.
type Series struct {
	Name   string
	Values []float64
}

// Spec is the derived chart description consumed by the exporters. The first
// bar or series is drawn at the top of the chart.
type Spec struct {
	Kind      Kind
	Title     string
	XTitle    string
	Palette   Palette
	ShowError bool
	Height    int
	Bars      []Bar
	Series    []Series
}

// Options configures bar chart construction. Unrecognized palette names fall
// back to the default rather than failing.
type Options struct {
	Palette   string
	ShowError bool
	Title     string
}

// BuildBar converts a prepared table into a horizontal bar chart spec. Bar
// length is the row's average salary (zero when missing); whisker extents are
// Average-Min and Max-Average clamped at 0, with missing bounds contributing
// no whisker on that side.
func BuildBar(t *dataset.Table, opt Options) *Spec {
	title := opt.Title
	if title == "" {
		title = "Average Salary by Department"
	}
	spec := &Spec{
		Kind:      KindBar,
		Title:     title,
		XTitle:    "Salary (USD)",
		Palette:   PaletteByName(opt.Palette),
		ShowError: opt.ShowError,
		Height:    chartHeight(len(t.Records)),
	}
	for _, r := range t.Records {
		avg := valueOrZero(r.Average)
		b := Bar{
			Label:        r.Department,
			Value:        avg,
			HoverAverage: Currency(avg),
			HoverMin:     Currency(valueOrZero(r.Min)),
			HoverMax:     Currency(valueOrZero(r.Max)),
		}
		if r.Average != nil && r.Min != nil {
			b.ErrLow = clampNonNegative(*r.Average - *r.Min)
		}
		if r.Average != nil && r.Max != nil {
			b.ErrHigh = clampNonNegative(*r.Max - *r.Average)
		}
		spec.Bars = append(spec.Bars, b)
	}
	return spec
}

// BuildDistribution converts a long-form sample table into a horizontal
// violin chart spec, one series per department with an overlaid box summary.
// An empty sample table returns ErrNoSamples.
func BuildDistribution(s *simulate.Samples, opt Options) (*Spec, error) {
	if s == nil || s.Empty() {
		return nil, ErrNoSamples
	}
	byDept := map[string][]float64{}
	order := s.Departments()
	for _, r := range s.Rows {
		byDept[r.Department] = append(byDept[r.Department], r.Salary)
	}
	title := opt.Title
	if title == "" {
		title = "Simulated Salary Distributions (illustrative)"
	}
	spec := &Spec{
		Kind:    KindViolin,
		Title:   title,
		XTitle:  "Salary (USD)",
		Palette: PaletteByName(opt.Palette),
		Height:  chartHeight(len(order)),
	}
	for _, name := range order {
		spec.Series = append(spec.Series, Series{Name: name, Values: byDept[name]})
	}
	return spec, nil
}

// Currency formats a salary as dollars with thousands separators and two
// decimal places, e.g. $28,560.18.
func Currency(v float64) string {
	return fmt.Sprintf("$%s", humanize.FormatFloat("#,###.##", v))
}

func chartHeight(rows int) int {
	if rows < minRows {
		rows = minRows
	}
	return rowHeight * rows
}

func valueOrZero(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

func clampNonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
