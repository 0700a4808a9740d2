package chart

import (
	"fmt"

	"github.com/ukaji3/excelviz-go/pkg/excelviz/models"
)

type settings struct {
	title  string
	strict bool
}

// Option customizes a build.
type Option func(*settings)

// WithTitle overrides the default "<y> by <x>" title. An empty title keeps the default.
func WithTitle(title string) Option {
	return func(s *settings) {
		s.title = title
	}
}

// WithStrictAxes rejects axes that are unset or not dataset columns.
// Without it, a missing column yields nil labels and zero values.
func WithStrictAxes() Option {
	return func(s *settings) {
		s.strict = true
	}
}

func newSettings(opts []Option) settings {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

func (s settings) titleFor(xAxis, yAxis string) string {
	if s.title != "" {
		return s.title
	}
	return DefaultTitle(xAxis, yAxis)
}

// DefaultTitle returns "<yAxis> by <xAxis>".
func DefaultTitle(xAxis, yAxis string) string {
	return fmt.Sprintf("%s by %s", yAxis, xAxis)
}

// ValidateAxes checks that both axes name columns of ds.
func ValidateAxes(ds *models.Dataset, xAxis, yAxis string) error {
	for _, axis := range []string{xAxis, yAxis} {
		if axis == "" {
			return fmt.Errorf("%w: axis not selected", ErrUnknownColumn)
		}
		if ds == nil || !ds.HasColumn(axis) {
			return fmt.Errorf("%w: %q", ErrUnknownColumn, axis)
		}
	}
	return nil
}

func rowsOf(ds *models.Dataset) []models.Row {
	if ds == nil {
		return nil
	}
	return ds.Rows
}
