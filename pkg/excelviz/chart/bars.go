package chart

import (
	"github.com/montanaflynn/stats"
	"github.com/ukaji3/excelviz-go/pkg/excelviz/models"
)

// 3D layout constants.
const (
	MaxBarHeight = 5.0
	BarSpacing   = 1.0
	BarWidth     = 0.5
	BarDepth     = 0.5

	hueSweep       = 0.7
	barSaturation  = 0.7
	barLightness   = 0.5
	cameraHeight   = 5.0
	cameraDistance = 8.0
	lookAtHeight   = 2.0
)

// Build3DBars lays out one bar per row. The largest yAxis value reaches
// MaxBarHeight and the rest scale proportionally. When the largest value is
// not positive every bar has height 0. Hues sweep 0 to 0.7 across the rows.
//
// An empty dataset yields an empty slice.
func Build3DBars(ds *models.Dataset, xAxis, yAxis string, opts ...Option) ([]models.BarDescriptor, error) {
	s := newSettings(opts)
	if s.strict {
		if err := ValidateAxes(ds, xAxis, yAxis); err != nil {
			return nil, err
		}
	}

	rows := rowsOf(ds)
	n := len(rows)
	bars := make([]models.BarDescriptor, 0, n)
	if n == 0 {
		return bars, nil
	}

	values := make(stats.Float64Data, n)
	for i, row := range rows {
		values[i] = ToNumber(row[yAxis])
	}
	maxValue, err := stats.Max(values)
	if err != nil {
		return nil, err
	}

	for i, row := range rows {
		height := 0.0
		if maxValue > 0 {
			height = (values[i] / maxValue) * MaxBarHeight
		}
		bars = append(bars, models.BarDescriptor{
			Index:  i,
			Label:  row[xAxis],
			Value:  values[i],
			Height: height,
			Position: models.Vec3{
				X: (float64(i) - float64(n)/2) * BarSpacing,
				Y: height / 2,
				Z: 0,
			},
			Size: models.BarSize{Width: BarWidth, Depth: BarDepth},
			Color: models.Color{
				H: (float64(i) / float64(n)) * hueSweep,
				S: barSaturation,
				L: barLightness,
				A: 1,
			},
		})
	}
	return bars, nil
}

// BuildScene wraps Build3DBars with a title and a camera placed to frame the bars.
func BuildScene(ds *models.Dataset, xAxis, yAxis string, opts ...Option) (*models.BarScene, error) {
	bars, err := Build3DBars(ds, xAxis, yAxis, opts...)
	if err != nil {
		return nil, err
	}
	s := newSettings(opts)
	return &models.BarScene{
		Title:     s.titleFor(xAxis, yAxis),
		XAxis:     xAxis,
		YAxis:     yAxis,
		MaxHeight: MaxBarHeight,
		Bars:      bars,
		Camera: models.Camera{
			Position: models.Vec3{X: float64(len(bars)) * 0.5, Y: cameraHeight, Z: cameraDistance},
			LookAt:   models.Vec3{X: 0, Y: lookAtHeight, Z: 0},
		},
	}, nil
}
