package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"time"

	"github.com/google/uuid"

	"github.com/KaramelBytes/payscope-cli/internal/chart"
)

// plotlyCDN pins the charting runtime referenced by exported documents.
const plotlyCDN = "https://cdn.plot.ly/plotly-2.35.2.min.js"

const hoverTemplate = "<b>%{y}</b><br>" +
	"Average: %{customdata[0]}<br>" +
	"Min: %{customdata[1]}<br>" +
	"Max: %{customdata[2]}<extra></extra>"

var docTemplate = template.Must(template.New("doc").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<meta name="generator" content="payscope">
<meta name="report-id" content="{{.ReportID}}">
<title>{{.Title}}</title>
<script src="{{.CDN}}" charset="utf-8"></script>
<style>
body { margin: 0; font-family: -apple-system, "Segoe UI", Roboto, sans-serif; }
#chart { width: 100%; }
footer { color: #6c757d; font-size: .75rem; padding: .5rem 1rem; }
</style>
</head>
<body>
<div id="chart"></div>
<script>
var figure = {{.Figure}};
Plotly.newPlot("chart", figure.data, figure.layout, {responsive: true});
</script>
<footer>Generated {{.Generated}} &middot; report {{.ReportID}}</footer>
</body>
</html>
`))

type barTrace struct {
	Type        string       `json:"type"`
	Orientation string       `json:"orientation"`
	X           []float64    `json:"x"`
	Y           []string     `json:"y"`
	Marker      traceMarker  `json:"marker"`
	CustomData  [][3]string  `json:"customdata"`
	HoverTmpl   string       `json:"hovertemplate"`
	ErrorX      *asymmetricX `json:"error_x,omitempty"`
}

type traceMarker struct {
	Color []string `json:"color"`
}

type asymmetricX struct {
	Type       string    `json:"type"`
	Symmetric  bool      `json:"symmetric"`
	Array      []float64 `json:"array"`
	ArrayMinus []float64 `json:"arrayminus"`
	Thickness  float64   `json:"thickness"`
	Width      float64   `json:"width"`
	Color      string    `json:"color"`
}

type violinTrace struct {
	Type        string    `json:"type"`
	Orientation string    `json:"orientation"`
	Name        string    `json:"name"`
	X           []float64 `json:"x"`
	Y0          string    `json:"y0"`
	Box         violinBox `json:"box"`
	Points      bool      `json:"points"`
	Line        traceLine `json:"line"`
}

type violinBox struct {
	Visible bool `json:"visible"`
}

type traceLine struct {
	Color string `json:"color"`
}

type axis struct {
	Title      *axisTitle `json:"title,omitempty"`
	TickFormat string     `json:"tickformat,omitempty"`
	AutoRange  string     `json:"autorange,omitempty"`
}

type axisTitle struct {
	Text string `json:"text"`
}

type margin struct {
	L int `json:"l"`
	R int `json:"r"`
	T int `json:"t"`
	B int `json:"b"`
}

type layout struct {
	Title        axisTitle `json:"title"`
	XAxis        axis      `json:"xaxis"`
	YAxis        axis      `json:"yaxis"`
	Margin       margin    `json:"margin"`
	Height       int       `json:"height"`
	PaperBGColor string    `json:"paper_bgcolor"`
	PlotBGColor  string    `json:"plot_bgcolor"`
}

type figure struct {
	Data   []any  `json:"data"`
	Layout layout `json:"layout"`
}

// HTML serializes a chart spec into a self-contained interactive document.
// The charting runtime is referenced from a CDN, so the document has no
// optional local dependency and this export succeeds for any valid spec.
func HTML(spec *chart.Spec) ([]byte, error) {
	fig, err := figureFor(spec)
	if err != nil {
		return nil, err
	}
	raw, err := json.Marshal(fig)
	if err != nil {
		return nil, fmt.Errorf("marshal figure: %w", err)
	}
	var buf bytes.Buffer
	err = docTemplate.Execute(&buf, struct {
		Title     string
		ReportID  string
		CDN       string
		Figure    template.JS
		Generated string
	}{
		Title:     spec.Title,
		ReportID:  uuid.NewString(),
		CDN:       plotlyCDN,
		Figure:    template.JS(raw),
		Generated: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return nil, fmt.Errorf("render document: %w", err)
	}
	return buf.Bytes(), nil
}

func figureFor(spec *chart.Spec) (*figure, error) {
	switch spec.Kind {
	case chart.KindBar:
		return barFigure(spec), nil
	case chart.KindViolin:
		return violinFigure(spec), nil
	}
	return nil, fmt.Errorf("unsupported chart kind: %q", spec.Kind)
}

func barFigure(spec *chart.Spec) *figure {
	tr := barTrace{
		Type:        "bar",
		Orientation: "h",
		HoverTmpl:   hoverTemplate,
	}
	for i, b := range spec.Bars {
		tr.X = append(tr.X, b.Value)
		tr.Y = append(tr.Y, b.Label)
		tr.Marker.Color = append(tr.Marker.Color, spec.Palette.Color(i))
		tr.CustomData = append(tr.CustomData, [3]string{b.HoverAverage, b.HoverMin, b.HoverMax})
	}
	if spec.ShowError {
		ex := &asymmetricX{
			Type:      "data",
			Thickness: 1.5,
			Width:     6,
			Color:     "rgba(0,0,0,0.7)",
		}
		for _, b := range spec.Bars {
			ex.Array = append(ex.Array, b.ErrHigh)
			ex.ArrayMinus = append(ex.ArrayMinus, b.ErrLow)
		}
		tr.ErrorX = ex
	}
	return &figure{
		Data: []any{tr},
		Layout: layout{
			Title:        axisTitle{Text: spec.Title},
			XAxis:        axis{Title: &axisTitle{Text: spec.XTitle}, TickFormat: ","},
			YAxis:        axis{AutoRange: "reversed"},
			Margin:       margin{L: 220, R: 40, T: 80, B: 40},
			Height:       spec.Height,
			PaperBGColor: "white",
			PlotBGColor:  "white",
		},
	}
}

func violinFigure(spec *chart.Spec) *figure {
	fig := &figure{
		Layout: layout{
			Title:        axisTitle{Text: spec.Title},
			XAxis:        axis{Title: &axisTitle{Text: spec.XTitle}, TickFormat: ","},
			Margin:       margin{L: 220, R: 40, T: 40, B: 40},
			Height:       spec.Height,
			PaperBGColor: "white",
			PlotBGColor:  "white",
		},
	}
	for i, s := range spec.Series {
		fig.Data = append(fig.Data, violinTrace{
			Type:        "violin",
			Orientation: "h",
			Name:        s.Name,
			X:           s.Values,
			Y0:          s.Name,
			Box:         violinBox{Visible: true},
			Line:        traceLine{Color: spec.Palette.Color(i)},
		})
	}
	return fig
}
