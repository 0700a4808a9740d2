package excelviz

import (
	"context"
	"log/slog"

	"github.com/ukaji3/excelviz-go/pkg/excelviz/chart"
	"github.com/ukaji3/excelviz-go/pkg/excelviz/ingest"
	"github.com/ukaji3/excelviz-go/pkg/excelviz/logging"
	"github.com/ukaji3/excelviz-go/pkg/excelviz/models"
)

// Request selects the chart to build. With no axes the chart stage is skipped.
type Request struct {
	Kind   models.ChartKind
	XAxis  string
	YAxis  string
	Title  string
	ThreeD bool
}

// HasChart reports whether the request asks for a chart.
func (r Request) HasChart() bool {
	return r.XAxis != "" || r.YAxis != ""
}

// Result holds everything produced for one upload.
type Result struct {
	File    models.FileInfo          `json:"file"`
	Dataset *models.Dataset          `json:"-"`
	Preview models.Preview           `json:"preview"`
	Chart   *models.ChartDescription `json:"chart,omitempty"`
	Scene   *models.BarScene         `json:"scene,omitempty"`
}

// Analyze validates and parses src, then builds the requested chart.
// Errors are *AnalysisError wrapping the stage's sentinel error.
func Analyze(ctx context.Context, src ingest.Source, req Request, opts Options) (*Result, error) {
	ds, err := Load(ctx, src)
	if err != nil {
		return nil, err
	}

	res := &Result{
		File:    models.NewFileInfo(src.Name(), src.Size(), src.MIMEType()),
		Dataset: ds,
		Preview: ds.Preview(opts.PreviewLimit()),
	}
	if !req.HasChart() {
		return res, nil
	}

	if err := BuildChart(res, req, opts); err != nil {
		return nil, NewAnalysisError(src.Name(), StageChart, err)
	}
	return res, nil
}

// Load validates and parses src into a dataset.
func Load(ctx context.Context, src ingest.Source) (*models.Dataset, error) {
	log := logging.Logger().With(slog.String("file", src.Name()))

	if err := ingest.Validate(src); err != nil {
		log.Warn("rejected upload", slog.Int64("size", src.Size()), slog.String("type", src.MIMEType()), slog.Any("error", err))
		return nil, NewAnalysisError(src.Name(), StageValidate, err)
	}

	ds, err := ingest.Parse(ctx, src)
	if err != nil {
		log.Warn("parse failed", slog.Any("error", err))
		return nil, NewAnalysisError(src.Name(), StageParse, err)
	}

	log.Info("loaded dataset", slog.Int("columns", len(ds.Columns)), slog.Int("rows", ds.RowCount))
	return ds, nil
}

// BuildChart fills res.Chart, or res.Scene for a 3D request, from res.Dataset.
func BuildChart(res *Result, req Request, opts Options) error {
	chartOpts := []chart.Option{chart.WithTitle(req.Title)}
	if opts.ShouldValidateAxes() {
		chartOpts = append(chartOpts, chart.WithStrictAxes())
	}

	if req.ThreeD {
		scene, err := chart.BuildScene(res.Dataset, req.XAxis, req.YAxis, chartOpts...)
		if err != nil {
			return err
		}
		res.Scene = scene
		return nil
	}

	kind := req.Kind
	if kind == "" {
		kind = models.KindLine
	}
	desc, err := chart.BuildChartConfig(kind, res.Dataset, req.XAxis, req.YAxis, chartOpts...)
	if err != nil {
		return err
	}
	res.Chart = desc
	return nil
}
