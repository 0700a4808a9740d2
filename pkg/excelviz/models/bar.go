package models

// Vec3 is a point in scene space.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// BarSize is the footprint of a bar solid.
type BarSize struct {
	Width float64 `json:"width"`
	Depth float64 `json:"depth"`
}

// BarDescriptor describes one solid bar of a 3D bar chart.
type BarDescriptor struct {
	// Index is the source row index.
	Index int `json:"index"`
	// Label is the raw x-axis cell value.
	Label interface{} `json:"label"`
	// Value is the y-axis cell value coerced to a number.
	Value float64 `json:"value"`
	// Height is Value scaled so the largest value reaches the scene's max height.
	Height float64 `json:"height"`
	// Position is the bar center.
	Position Vec3 `json:"position"`
	// Size is the bar footprint.
	Size BarSize `json:"size"`
	// Color is the bar color.
	Color Color `json:"color"`
}

// Camera is a viewpoint hint for the scene renderer.
type Camera struct {
	Position Vec3 `json:"position"`
	LookAt   Vec3 `json:"look_at"`
}

// BarScene bundles bars with the parameters they were laid out with.
type BarScene struct {
	// Title is the scene title.
	Title string `json:"title"`
	// XAxis is the label column.
	XAxis string `json:"x_axis"`
	// YAxis is the value column.
	YAxis string `json:"y_axis"`
	// MaxHeight is the height of the tallest bar.
	MaxHeight float64 `json:"max_height"`
	// Bars holds one descriptor per row.
	Bars []BarDescriptor `json:"bars"`
	// Camera is the suggested viewpoint.
	Camera Camera `json:"camera"`
}
