package excelviz

import (
	"fmt"

	"github.com/ukaji3/excelviz-go/pkg/excelviz/chart"
	"github.com/ukaji3/excelviz-go/pkg/excelviz/ingest"
)

// Errors returned by the ingestion and chart stages.
var (
	ErrFileTooLarge    = ingest.ErrFileTooLarge
	ErrUnsupportedType = ingest.ErrUnsupportedType
	ErrRead            = ingest.ErrRead
	ErrDecode          = ingest.ErrDecode
	ErrEmptyWorkbook   = ingest.ErrEmptyWorkbook
	ErrUnknownColumn   = chart.ErrUnknownColumn
	ErrUnsupportedKind = chart.ErrUnsupportedKind
)

// Stage names the pipeline step an AnalysisError came from.
type Stage string

const (
	StageOptions  Stage = "options"
	StageValidate Stage = "validate"
	StageParse    Stage = "parse"
	StageChart    Stage = "chart"
)

// AnalysisError represents an error during analysis.
type AnalysisError struct {
	File  string
	Stage Stage
	Err   error
}

func (e *AnalysisError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("%s: %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("%s %q: %v", e.Stage, e.File, e.Err)
}

func (e *AnalysisError) Unwrap() error {
	return e.Err
}

// NewAnalysisError creates a new AnalysisError.
func NewAnalysisError(file string, stage Stage, err error) *AnalysisError {
	return &AnalysisError{
		File:  file,
		Stage: stage,
		Err:   err,
	}
}

func errInvalidMode(name string) error {
	return fmt.Errorf("invalid mode: %s (must be lenient or strict)", name)
}
