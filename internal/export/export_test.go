package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/KaramelBytes/payscope-cli/internal/chart"
	"github.com/KaramelBytes/payscope-cli/internal/dataset"
	"github.com/KaramelBytes/payscope-cli/internal/simulate"
)

func barSpec(t *testing.T) *chart.Spec {
	t.Helper()
	tbl, err := dataset.Load(nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return chart.BuildBar(tbl.Sort(dataset.AverageDesc), chart.Options{ShowError: true})
}

func TestPNGProducesRasterBytes(t *testing.T) {
	b, err := PNG(barSpec(t), 2)
	if err != nil {
		t.Fatalf("png: %v", err)
	}
	if !bytes.HasPrefix(b, []byte("\x89PNG\r\n\x1a\n")) {
		t.Fatalf("output is not a PNG (got %d bytes)", len(b))
	}
}

func TestPNGDefaultScale(t *testing.T) {
	b, err := PNG(barSpec(t), 0)
	if err != nil {
		t.Fatalf("png: %v", err)
	}
	if len(b) == 0 {
		t.Fatalf("empty png output")
	}
}

func TestPNGRejectsViolin(t *testing.T) {
	tbl := &dataset.Table{Records: []dataset.Record{
		{Department: "IT", Min: f(10), Average: f(20), Max: f(30)},
	}}
	samples, _ := simulate.Run(tbl, 10, 42)
	spec, err := chart.BuildDistribution(samples, chart.Options{})
	if err != nil {
		t.Fatalf("build distribution: %v", err)
	}
	if _, err := PNG(spec, 2); err == nil {
		t.Fatalf("expected error for violin raster export")
	}
}

func TestHTMLStandaloneDocument(t *testing.T) {
	out, err := HTML(barSpec(t))
	if err != nil {
		t.Fatalf("html: %v", err)
	}
	doc := string(out)
	for _, want := range []string{
		"<!DOCTYPE html>",
		plotlyCDN,
		`Plotly.newPlot`,
		`"type":"bar"`,
		`"orientation":"h"`,
		`"arrayminus"`,
		`"autorange":"reversed"`,
		`name="report-id"`,
	} {
		if !strings.Contains(doc, want) {
			t.Fatalf("document missing %q", want)
		}
	}
}

func TestHTMLOmitsErrorBarsWhenDisabled(t *testing.T) {
	tbl, _ := dataset.Load(nil)
	spec := chart.BuildBar(tbl, chart.Options{ShowError: false})
	out, err := HTML(spec)
	if err != nil {
		t.Fatalf("html: %v", err)
	}
	if strings.Contains(string(out), "error_x") {
		t.Fatalf("error_x present despite ShowError=false")
	}
}

func TestHTMLViolinDocument(t *testing.T) {
	tbl := &dataset.Table{Records: []dataset.Record{
		{Department: "IT", Min: f(10), Average: f(20), Max: f(30)},
		{Department: "HR", Min: f(5), Average: f(8), Max: f(12)},
	}}
	samples, _ := simulate.Run(tbl, 20, 42)
	spec, err := chart.BuildDistribution(samples, chart.Options{})
	if err != nil {
		t.Fatalf("build distribution: %v", err)
	}
	out, err := HTML(spec)
	if err != nil {
		t.Fatalf("html: %v", err)
	}
	doc := string(out)
	if !strings.Contains(doc, `"type":"violin"`) {
		t.Fatalf("violin trace missing")
	}
	if !strings.Contains(doc, `"box":{"visible":true}`) {
		t.Fatalf("box overlay missing")
	}
}

// The HTML path must not share any dependency with the raster backend: a
// violin spec that PNG refuses still exports as a document.
func TestHTMLIndependentOfRasterBackend(t *testing.T) {
	tbl := &dataset.Table{Records: []dataset.Record{
		{Department: "IT", Min: f(10), Average: f(20), Max: f(30)},
	}}
	samples, _ := simulate.Run(tbl, 5, 42)
	spec, _ := chart.BuildDistribution(samples, chart.Options{})
	if _, err := PNG(spec, 2); err == nil {
		t.Fatalf("expected raster refusal")
	}
	if _, err := HTML(spec); err != nil {
		t.Fatalf("html export must still succeed: %v", err)
	}
}

func f(v float64) *float64 { return &v }
