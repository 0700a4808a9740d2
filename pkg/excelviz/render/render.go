// Package render draws chart descriptions to PNG or SVG images.
package render

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/ukaji3/excelviz-go/pkg/excelviz/chart"
	"github.com/ukaji3/excelviz-go/pkg/excelviz/models"
)

// ErrNothingToRender indicates a description without drawable values.
var ErrNothingToRender = errors.New("nothing to render")

// Format is an output image format.
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

// ParseFormat resolves a format name; empty means PNG.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case "":
		return FormatPNG, nil
	case FormatPNG, FormatSVG:
		return f, nil
	}
	return "", fmt.Errorf("unsupported image format: %s (must be png or svg)", name)
}

// ContentType returns the media type of images in format f.
func (f Format) ContentType() string {
	if f == FormatSVG {
		return "image/svg+xml"
	}
	return "image/png"
}

// Size is the image size in pixels.
type Size struct {
	Width  int
	Height int
}

// DefaultSize is used when a dimension is zero.
var DefaultSize = Size{Width: 1024, Height: 600}

func (s Size) orDefault() Size {
	if s.Width <= 0 {
		s.Width = DefaultSize.Width
	}
	if s.Height <= 0 {
		s.Height = DefaultSize.Height
	}
	return s
}

// Render draws desc to w.
func Render(w io.Writer, desc *models.ChartDescription, format Format, size Size) error {
	if desc == nil || len(desc.Series) == 0 {
		return ErrNothingToRender
	}
	size = size.orDefault()
	provider := gochart.PNG
	if format == FormatSVG {
		provider = gochart.SVG
	}

	switch desc.Kind {
	case models.KindBar:
		return barChart(desc, size).Render(provider, w)
	case models.KindPie, models.KindDoughnut:
		values, err := sliceValues(desc)
		if err != nil {
			return err
		}
		if desc.Kind == models.KindDoughnut {
			donut := gochart.DonutChart{Title: desc.Title, Width: size.Width, Height: size.Height, Values: values}
			return donut.Render(provider, w)
		}
		pie := gochart.PieChart{Title: desc.Title, Width: size.Width, Height: size.Height, Values: values}
		return pie.Render(provider, w)
	case models.KindLine, models.KindScatter:
		return xyChart(desc, size).Render(provider, w)
	}
	return fmt.Errorf("%w: %q", chart.ErrUnsupportedKind, desc.Kind)
}

func xyChart(desc *models.ChartDescription, size Size) *gochart.Chart {
	xs, ticks := xValues(desc.Labels)

	style := gochart.Style{
		StrokeColor: toColor(desc.Style.BorderColor),
		StrokeWidth: float64(desc.Style.BorderWidth),
	}
	if desc.Kind == models.KindScatter {
		style = gochart.Style{
			StrokeWidth: gochart.Disabled,
			DotColor:    toColor(desc.Style.BorderColor),
			DotWidth:    4,
		}
	}
	if len(xs) == 1 {
		style.DotColor = toColor(desc.Style.BorderColor)
		style.DotWidth = 4
	}

	graph := &gochart.Chart{
		Title:  desc.Title,
		Width:  size.Width,
		Height: size.Height,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 40, Left: 20},
		},
		XAxis: gochart.XAxis{
			Name:           desc.XAxis,
			Ticks:          ticks,
			Range:          spanRange(xs, false),
			GridMajorStyle: gridStyle(desc),
		},
		YAxis: gochart.YAxis{
			Name:           desc.YAxis,
			Range:          spanRange(desc.Series, beginAtZero(desc)),
			GridMajorStyle: gridStyle(desc),
		},
		Series: []gochart.Series{
			gochart.ContinuousSeries{
				Name:    desc.Style.Label,
				Style:   style,
				XValues: xs,
				YValues: desc.Series,
			},
		},
	}
	graph.Elements = []gochart.Renderable{gochart.Legend(graph)}
	return graph
}

func barChart(desc *models.ChartDescription, size Size) *gochart.BarChart {
	style := gochart.Style{
		StrokeColor: toColor(desc.Style.BorderColor),
		StrokeWidth: float64(desc.Style.BorderWidth),
	}
	if desc.Style.FillColor != nil {
		style.FillColor = toColor(*desc.Style.FillColor)
	}

	bars := make([]gochart.Value, len(desc.Series))
	for i, v := range desc.Series {
		bars[i] = gochart.Value{Label: chart.Label(desc.Labels[i]), Value: v, Style: style}
	}

	return &gochart.BarChart{
		Title:  desc.Title,
		Width:  size.Width,
		Height: size.Height,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 40},
		},
		YAxis: gochart.YAxis{
			Range: spanRange(desc.Series, beginAtZero(desc)),
		},
		Bars: bars,
	}
}

func sliceValues(desc *models.ChartDescription) ([]gochart.Value, error) {
	total := 0.0
	values := make([]gochart.Value, 0, len(desc.Series))
	for i, v := range desc.Series {
		if v <= 0 {
			continue
		}
		total += v
		color := chart.PaletteColor(i)
		if i < len(desc.Style.SliceColors) {
			color = desc.Style.SliceColors[i]
		}
		values = append(values, gochart.Value{
			Label: chart.Label(desc.Labels[i]),
			Value: v,
			Style: gochart.Style{FillColor: toColor(color), StrokeColor: drawing.ColorWhite},
		})
	}
	if total <= 0 {
		return nil, fmt.Errorf("%w: no positive values", ErrNothingToRender)
	}
	return values, nil
}

// xValues uses numeric labels as x positions, falling back to row indexes
// with the labels as ticks. A single point gets blank ticks on either side so
// the x range is never empty.
func xValues(labels []interface{}) ([]float64, []gochart.Tick) {
	if len(labels) == 1 {
		x := 0.0
		if v, ok := numericLabel(labels[0]); ok {
			x = v
		}
		return []float64{x}, []gochart.Tick{
			{Value: x - 1},
			{Value: x, Label: chart.Label(labels[0])},
			{Value: x + 1},
		}
	}

	xs := make([]float64, len(labels))
	numeric := true
	for i, l := range labels {
		v, ok := numericLabel(l)
		if !ok {
			numeric = false
			break
		}
		xs[i] = v
	}
	if numeric {
		return xs, nil
	}

	ticks := make([]gochart.Tick, len(labels))
	for i, l := range labels {
		xs[i] = float64(i)
		ticks[i] = gochart.Tick{Value: float64(i), Label: chart.Label(l)}
	}
	return xs, ticks
}

func numericLabel(l interface{}) (float64, bool) {
	switch v := l.(type) {
	case int64:
		return float64(v), true
	case int:
		return float64(v), true
	case float64:
		return v, true
	}
	return 0, false
}

// spanRange returns a range covering values that never has zero width.
func spanRange(values []float64, includeZero bool) *gochart.ContinuousRange {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if includeZero {
		lo = math.Min(lo, 0)
		hi = math.Max(hi, 0)
	}
	if hi <= lo {
		hi = lo + 1
	}
	return &gochart.ContinuousRange{Min: lo, Max: hi}
}

func beginAtZero(desc *models.ChartDescription) bool {
	return desc.Options.Axes != nil && desc.Options.Axes.Y.BeginAtZero
}

func gridStyle(desc *models.ChartDescription) gochart.Style {
	if desc.Options.Axes == nil {
		return gochart.Style{}
	}
	return gochart.Style{
		StrokeColor: toColor(desc.Options.Axes.Y.GridColor),
		StrokeWidth: 1,
	}
}

func toColor(c models.Color) drawing.Color {
	r, g, b, a := c.RGBA()
	return drawing.Color{R: r, G: g, B: b, A: a}
}
