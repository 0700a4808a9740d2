// Package chart maps a dataset and an (x, y) column pair to 2D chart
// descriptions and 3D bar layouts.
package chart

import (
	"fmt"
	"strings"

	"github.com/ukaji3/excelviz-go/pkg/excelviz/models"
)

var kinds = []models.ChartKind{
	models.KindLine,
	models.KindBar,
	models.KindPie,
	models.KindScatter,
	models.KindDoughnut,
}

// Kinds returns the supported 2D chart kinds in display order.
func Kinds() []models.ChartKind {
	out := make([]models.ChartKind, len(kinds))
	copy(out, kinds)
	return out
}

// ParseKind resolves a kind name, ignoring case and surrounding space.
// "donut" is accepted for doughnut.
func ParseKind(name string) (models.ChartKind, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "donut" {
		n = string(models.KindDoughnut)
	}
	k := models.ChartKind(n)
	if !IsKind(k) {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedKind, name)
	}
	return k, nil
}

// IsKind reports whether k is a supported 2D kind.
func IsKind(k models.ChartKind) bool {
	for _, known := range kinds {
		if k == known {
			return true
		}
	}
	return false
}
