package export

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/KaramelBytes/payscope-cli/internal/chart"
)

// DefaultScale matches the original 2x raster export.
const DefaultScale = 2.0

// Base (unscaled) geometry. The margins mirror the interactive layout so the
// two artifacts line up visually.
const (
	baseWidth    = 900
	marginLeft   = 220
	marginRight  = 40
	marginTop    = 80
	marginBottom = 40
	barFraction  = 0.6
	xTicks       = 4
)

var (
	textColor    = drawing.Color{R: 42, G: 48, B: 60, A: 255}
	gridColor    = drawing.Color{R: 230, G: 232, B: 236, A: 255}
	whiskerColor = drawing.Color{R: 0, G: 0, B: 0, A: 180}
)

// PNG renders a bar chart spec to raster bytes at the given scale factor
// (scale <= 0 selects DefaultScale). A missing or unloadable rendering
// backend surfaces as *UnavailableError so the caller can skip this artifact
// and still produce the HTML document.
func PNG(spec *chart.Spec, scale float64) ([]byte, error) {
	if spec.Kind != chart.KindBar {
		return nil, fmt.Errorf("raster export supports bar charts only, got %q", spec.Kind)
	}
	if scale <= 0 {
		scale = DefaultScale
	}
	font, err := gochart.GetDefaultFont()
	if err != nil {
		return nil, &UnavailableError{Reason: "default font not loadable", Err: err}
	}
	px := func(v float64) int { return int(math.Round(v * scale)) }

	width := px(baseWidth)
	height := px(float64(spec.Height))
	r, err := gochart.PNG(width, height)
	if err != nil {
		return nil, &UnavailableError{Reason: "renderer init failed", Err: err}
	}
	r.SetDPI(gochart.DefaultDPI)
	r.SetFont(font)

	// Background.
	r.SetFillColor(drawing.ColorWhite)
	rect(r, 0, 0, width, height)
	r.Fill()

	plotLeft := px(marginLeft)
	plotRight := width - px(marginRight)
	plotTop := px(marginTop)
	plotBottom := height - px(marginBottom)
	plotWidth := plotRight - plotLeft

	maxX := 0.0
	for _, b := range spec.Bars {
		if v := b.Value + b.ErrHigh; v > maxX {
			maxX = v
		}
	}
	if maxX <= 0 {
		maxX = 1
	}
	maxX = niceCeil(maxX)
	xpos := func(v float64) int {
		return plotLeft + int(float64(plotWidth)*(v/maxX))
	}

	// Gridlines and tick labels.
	r.SetFontColor(textColor)
	r.SetFontSize(10 * scale)
	for i := 0; i <= xTicks; i++ {
		v := maxX * float64(i) / xTicks
		x := xpos(v)
		r.SetStrokeColor(gridColor)
		r.SetStrokeWidth(1 * scale)
		r.MoveTo(x, plotTop)
		r.LineTo(x, plotBottom)
		r.Stroke()
		label := humanize.CommafWithDigits(v, 0)
		tb := r.MeasureText(label)
		r.Text(label, x-tb.Width()/2, plotBottom+px(16))
	}

	// Title and axis title.
	r.SetFontSize(15 * scale)
	tb := r.MeasureText(spec.Title)
	r.Text(spec.Title, (width-tb.Width())/2, px(34))
	r.SetFontSize(12 * scale)
	tb = r.MeasureText(spec.XTitle)
	r.Text(spec.XTitle, plotLeft+(plotWidth-tb.Width())/2, height-px(8))

	n := len(spec.Bars)
	if n > 0 {
		rowH := float64(plotBottom-plotTop) / float64(n)
		barH := int(rowH * barFraction)
		for i, b := range spec.Bars {
			cy := plotTop + int(float64(i)*rowH+rowH/2)

			r.SetFillColor(colorFromHex(spec.Palette.Color(i)))
			rect(r, plotLeft, cy-barH/2, xpos(b.Value), cy+barH/2)
			r.Fill()

			r.SetFontSize(11 * scale)
			label := fitLabel(r, b.Label, plotLeft-px(16))
			lb := r.MeasureText(label)
			r.Text(label, plotLeft-px(10)-lb.Width(), cy+lb.Height()/2)

			if spec.ShowError && (b.ErrLow > 0 || b.ErrHigh > 0) {
				lo := xpos(math.Max(0, b.Value-b.ErrLow))
				hi := xpos(b.Value + b.ErrHigh)
				capHalf := px(3)
				r.SetStrokeColor(whiskerColor)
				r.SetStrokeWidth(1.5 * scale)
				r.MoveTo(lo, cy)
				r.LineTo(hi, cy)
				r.Stroke()
				for _, x := range []int{lo, hi} {
					r.MoveTo(x, cy-capHalf)
					r.LineTo(x, cy+capHalf)
					r.Stroke()
				}
			}
		}
	}

	// Plot frame.
	r.SetStrokeColor(gridColor)
	r.SetStrokeWidth(1 * scale)
	r.MoveTo(plotLeft, plotTop)
	r.LineTo(plotLeft, plotBottom)
	r.LineTo(plotRight, plotBottom)
	r.Stroke()

	var buf bytes.Buffer
	if err := r.Save(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func rect(r gochart.Renderer, x0, y0, x1, y1 int) {
	r.MoveTo(x0, y0)
	r.LineTo(x1, y0)
	r.LineTo(x1, y1)
	r.LineTo(x0, y1)
	r.Close()
}

// fitLabel trims a label until it fits the left margin, keeping an ellipsis.
func fitLabel(r gochart.Renderer, label string, maxWidth int) string {
	if r.MeasureText(label).Width() <= maxWidth {
		return label
	}
	runes := []rune(label)
	for len(runes) > 1 {
		runes = runes[:len(runes)-1]
		candidate := string(runes) + "…"
		if r.MeasureText(candidate).Width() <= maxWidth {
			return candidate
		}
	}
	return "…"
}

// niceCeil rounds up to 1, 2 or 5 times a power of ten.
func niceCeil(v float64) float64 {
	mag := math.Pow(10, math.Floor(math.Log10(v)))
	for _, m := range []float64{1, 2, 5, 10} {
		if v <= m*mag {
			return m * mag
		}
	}
	return 10 * mag
}

func colorFromHex(hex string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}
