package models

// ChartKind is one of the 2D chart kinds a description can be built for.
type ChartKind string

const (
	KindLine     ChartKind = "line"
	KindBar      ChartKind = "bar"
	KindPie      ChartKind = "pie"
	KindScatter  ChartKind = "scatter"
	KindDoughnut ChartKind = "doughnut"
)

// IsRadial reports whether the kind is drawn without cartesian axes.
func (k ChartKind) IsRadial() bool {
	return k == KindPie || k == KindDoughnut
}

// SeriesStyle holds the colors and stroke settings of the single data series.
type SeriesStyle struct {
	// Label is the series display name (the y-axis column).
	Label string `json:"label"`
	// BorderColor is the series stroke color.
	BorderColor Color `json:"border_color"`
	// FillColor is the translucent area/bar fill (cartesian kinds only).
	FillColor *Color `json:"fill_color,omitempty"`
	// SliceColors holds one color per label (pie and doughnut only).
	SliceColors []Color `json:"slice_colors,omitempty"`
	// BorderWidth is the stroke width in pixels.
	BorderWidth int `json:"border_width"`
	// Tension is the line curve tension (0 for straight segments).
	Tension float64 `json:"tension"`
}

// AxisOptions configures one cartesian axis.
type AxisOptions struct {
	// BeginAtZero forces the axis to include zero.
	BeginAtZero bool `json:"begin_at_zero,omitempty"`
	// GridColor is the grid line color.
	GridColor Color `json:"grid_color"`
}

// Axes holds cartesian axis options.
type Axes struct {
	X AxisOptions `json:"x"`
	Y AxisOptions `json:"y"`
}

// DisplayOptions holds renderer options independent of the data.
type DisplayOptions struct {
	// Responsive lets the renderer resize the chart with its container.
	Responsive bool `json:"responsive"`
	// MaintainAspectRatio keeps the renderer's default aspect ratio.
	MaintainAspectRatio bool `json:"maintain_aspect_ratio"`
	// LegendPosition is where the legend is placed ("top").
	LegendPosition string `json:"legend_position"`
	// ShowTitle displays the chart title.
	ShowTitle bool `json:"show_title"`
	// Axes is nil for pie and doughnut charts.
	Axes *Axes `json:"axes,omitempty"`
}

// ChartDescription is a renderer-agnostic 2D chart: labels, one numeric
// series, styling and display options.
type ChartDescription struct {
	// Kind is the chart kind.
	Kind ChartKind `json:"kind"`
	// Title is the chart title.
	Title string `json:"title"`
	// XAxis is the column the labels were taken from.
	XAxis string `json:"x_axis"`
	// YAxis is the column the series was taken from.
	YAxis string `json:"y_axis"`
	// Labels holds the raw x-axis cell values, parallel to Series.
	Labels []interface{} `json:"labels"`
	// Series holds the y-axis cell values coerced to numbers.
	Series []float64 `json:"series"`
	// Style is the series styling.
	Style SeriesStyle `json:"style"`
	// Options are display options.
	Options DisplayOptions `json:"options"`
}
