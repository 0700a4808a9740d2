// Package excelviz turns an uploaded spreadsheet into a tabular dataset and
// chart descriptions ready for a rendering surface.
package excelviz

// Mode controls how axis selections are checked.
type Mode string

const (
	// ModeLenient builds charts for any axis names; unknown columns yield zeros.
	ModeLenient Mode = "lenient"
	// ModeStrict rejects axes that are not dataset columns.
	ModeStrict Mode = "strict"
)

// DefaultPreviewRows is the number of rows shown in a data preview.
const DefaultPreviewRows = 10

// Options configures analysis behavior.
type Options struct {
	// Mode specifies axis checking (lenient, strict).
	Mode Mode
	// PreviewRows is the preview length.
	// If nil, defaults to DefaultPreviewRows.
	PreviewRows *int
}

// DefaultOptions returns default analysis options.
func DefaultOptions() Options {
	return Options{
		Mode: ModeLenient,
	}
}

// ShouldValidateAxes returns whether axes must be dataset columns.
func (o Options) ShouldValidateAxes() bool {
	return o.Mode == ModeStrict
}

// PreviewLimit returns the number of preview rows.
func (o Options) PreviewLimit() int {
	if o.PreviewRows != nil && *o.PreviewRows >= 0 {
		return *o.PreviewRows
	}
	return DefaultPreviewRows
}

// ParseMode resolves a mode name; unknown names are an error.
func ParseMode(name string) (Mode, error) {
	switch Mode(name) {
	case ModeLenient, ModeStrict:
		return Mode(name), nil
	case "":
		return ModeLenient, nil
	}
	return "", &AnalysisError{Stage: StageOptions, Err: errInvalidMode(name)}
}
