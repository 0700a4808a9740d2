package chart

import "github.com/ukaji3/excelviz-go/pkg/excelviz/models"

// FillAlpha is the opacity of the series fill on cartesian charts.
const FillAlpha = 32.0 / 255

var palette = [...]models.Color{
	models.HSL(207, 0.90, 0.54),
	models.HSL(24, 0.70, 0.56),
	models.HSL(142, 0.76, 0.47),
	models.HSL(38, 0.92, 0.50),
	models.HSL(271, 0.76, 0.53),
	models.HSL(184, 0.77, 0.34),
}

// GridColor is the cartesian grid line color.
var GridColor = models.HSL(0, 0, 0.90)

// Palette returns the six base colors.
func Palette() []models.Color {
	out := make([]models.Color, len(palette))
	copy(out, palette[:])
	return out
}

// PaletteColor returns the palette entry for index i, cycling every six.
func PaletteColor(i int) models.Color {
	n := len(palette)
	return palette[((i%n)+n)%n]
}

// SliceColors returns n colors cycling through the palette.
func SliceColors(n int) []models.Color {
	out := make([]models.Color, n)
	for i := range out {
		out[i] = PaletteColor(i)
	}
	return out
}
