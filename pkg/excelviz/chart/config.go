package chart

import (
	"fmt"

	"github.com/ukaji3/excelviz-go/pkg/excelviz/models"
)

const (
	borderWidth = 2
	lineTension = 0.4
)

// BuildChartConfig builds a 2D chart description from ds.
// Labels are the raw xAxis cells and the series is the yAxis cells passed
// through ToNumber. Pie and doughnut charts get one palette color per label
// and no cartesian axes; the other kinds get a single series color with a
// translucent fill.
//
// ds is never modified. Unless WithStrictAxes is given, axes are not checked.
func BuildChartConfig(kind models.ChartKind, ds *models.Dataset, xAxis, yAxis string, opts ...Option) (*models.ChartDescription, error) {
	if !IsKind(kind) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedKind, kind)
	}
	s := newSettings(opts)
	if s.strict {
		if err := ValidateAxes(ds, xAxis, yAxis); err != nil {
			return nil, err
		}
	}

	rows := rowsOf(ds)
	labels := make([]interface{}, len(rows))
	series := make([]float64, len(rows))
	for i, row := range rows {
		labels[i] = row[xAxis]
		series[i] = ToNumber(row[yAxis])
	}

	return &models.ChartDescription{
		Kind:    kind,
		Title:   s.titleFor(xAxis, yAxis),
		XAxis:   xAxis,
		YAxis:   yAxis,
		Labels:  labels,
		Series:  series,
		Style:   seriesStyle(kind, yAxis, len(rows)),
		Options: displayOptions(kind),
	}, nil
}

func seriesStyle(kind models.ChartKind, yAxis string, n int) models.SeriesStyle {
	style := models.SeriesStyle{
		Label:       yAxis,
		BorderColor: PaletteColor(0),
		BorderWidth: borderWidth,
	}
	if kind == models.KindLine {
		style.Tension = lineTension
	}
	if kind.IsRadial() {
		style.SliceColors = SliceColors(n)
	} else {
		fill := PaletteColor(0).WithAlpha(FillAlpha)
		style.FillColor = &fill
	}
	return style
}

func displayOptions(kind models.ChartKind) models.DisplayOptions {
	opts := models.DisplayOptions{
		Responsive:          true,
		MaintainAspectRatio: false,
		LegendPosition:      "top",
		ShowTitle:           true,
	}
	if !kind.IsRadial() {
		opts.Axes = &models.Axes{
			X: models.AxisOptions{GridColor: GridColor},
			Y: models.AxisOptions{BeginAtZero: true, GridColor: GridColor},
		}
	}
	return opts
}
