// Package main provides the CLI entry point for excelviz-go.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ukaji3/excelviz-go/pkg/excelviz"
	"github.com/ukaji3/excelviz-go/pkg/excelviz/chart"
	"github.com/ukaji3/excelviz-go/pkg/excelviz/ingest"
	"github.com/ukaji3/excelviz-go/pkg/excelviz/logging"
	"github.com/ukaji3/excelviz-go/pkg/excelviz/models"
	"github.com/ukaji3/excelviz-go/pkg/excelviz/output"
	"github.com/ukaji3/excelviz-go/pkg/excelviz/render"
)

var (
	outputPath  string
	pretty      bool
	logLevel    string
	mimeType    string
	previewRows int
	kind        string
	xAxis       string
	yAxis       string
	title       string
	strict      bool
	mode        string
	format      string
	width       int
	height      int
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "excelviz",
		Short: "Turn spreadsheets into chart data",
		Long: `excelviz-go reads the first sheet of an Excel file as a table and
builds chart descriptions, 3D bar layouts and chart images from two of its columns.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogger(logLevel)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(newInspectCmd(), newChartCmd(), newBarsCmd(), newRenderCmd(), newServeCmd())
	return rootCmd
}

func setupLogger(level string) {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logging.ParseLevel(level)})
	logging.SetLogger(slog.New(handler))
}

func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&mimeType, "type", "", "Declared media type (default: detected from content)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
}

func addAxisFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&xAxis, "x", "", "Column for labels")
	cmd.Flags().StringVar(&yAxis, "y", "", "Column for values")
	cmd.Flags().StringVar(&title, "title", "", "Chart title (default: \"<y> by <x>\")")
	cmd.Flags().StringVar(&mode, "mode", string(excelviz.ModeLenient), "Axis checking: lenient, strict")
	cmd.Flags().BoolVar(&strict, "strict", false, "Shorthand for --mode strict")
	_ = cmd.MarkFlagRequired("x")
	_ = cmd.MarkFlagRequired("y")
}

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [input.xlsx]",
		Short: "Show file info, columns and a preview of the first sheet",
		Args:  cobra.ExactArgs(1),
		RunE:  runInspect,
	}
	addInputFlags(cmd)
	cmd.Flags().IntVar(&previewRows, "rows", excelviz.DefaultPreviewRows, "Number of preview rows")
	return cmd
}

func newChartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chart [input.xlsx]",
		Short: "Build a 2D chart description",
		Args:  cobra.ExactArgs(1),
		RunE:  runChart,
	}
	addInputFlags(cmd)
	addAxisFlags(cmd)
	cmd.Flags().StringVar(&kind, "kind", string(models.KindLine), "Chart kind: "+kindList())
	return cmd
}

func newBarsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bars [input.xlsx]",
		Short: "Build a 3D bar scene",
		Args:  cobra.ExactArgs(1),
		RunE:  runBars,
	}
	addInputFlags(cmd)
	addAxisFlags(cmd)
	return cmd
}

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [input.xlsx]",
		Short: "Render a 2D chart to a PNG or SVG image",
		Args:  cobra.ExactArgs(1),
		RunE:  runRender,
	}
	addInputFlags(cmd)
	addAxisFlags(cmd)
	cmd.Flags().StringVar(&kind, "kind", string(models.KindLine), "Chart kind: "+kindList())
	cmd.Flags().StringVar(&format, "format", "", "Image format: png, svg (default: from output extension)")
	cmd.Flags().IntVar(&width, "width", render.DefaultSize.Width, "Image width in pixels")
	cmd.Flags().IntVar(&height, "height", render.DefaultSize.Height, "Image height in pixels")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

type inspectView struct {
	File     models.FileInfo `json:"file"`
	Columns  []string        `json:"columns"`
	RowCount int             `json:"row_count"`
	Range    string          `json:"range,omitempty"`
	Preview  models.Preview  `json:"preview"`
}

func runInspect(cmd *cobra.Command, args []string) error {
	opts := excelviz.DefaultOptions()
	opts.PreviewRows = &previewRows

	res, err := analyze(cmd.Context(), args[0], excelviz.Request{}, opts)
	if err != nil {
		return err
	}
	return writeJSON(inspectView{
		File:     res.File,
		Columns:  res.Dataset.Columns,
		RowCount: res.Dataset.RowCount,
		Range:    res.Dataset.Range,
		Preview:  res.Preview,
	})
}

func runChart(cmd *cobra.Command, args []string) error {
	k, err := chart.ParseKind(kind)
	if err != nil {
		return err
	}
	opts, err := chartOptions()
	if err != nil {
		return err
	}
	res, err := analyze(cmd.Context(), args[0], chartRequest(k, false), opts)
	if err != nil {
		return err
	}
	return writeJSON(res.Chart)
}

func runBars(cmd *cobra.Command, args []string) error {
	opts, err := chartOptions()
	if err != nil {
		return err
	}
	res, err := analyze(cmd.Context(), args[0], chartRequest(models.KindBar, true), opts)
	if err != nil {
		return err
	}
	return writeJSON(res.Scene)
}

func runRender(cmd *cobra.Command, args []string) error {
	k, err := chart.ParseKind(kind)
	if err != nil {
		return err
	}
	name := format
	if name == "" {
		name = strings.TrimPrefix(filepath.Ext(outputPath), ".")
	}
	f, err := render.ParseFormat(name)
	if err != nil {
		return err
	}

	opts, err := chartOptions()
	if err != nil {
		return err
	}
	res, err := analyze(cmd.Context(), args[0], chartRequest(k, false), opts)
	if err != nil {
		return err
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	if err := render.Render(out, res.Chart, f, render.Size{Width: width, Height: height}); err != nil {
		out.Close()
		os.Remove(outputPath)
		return fmt.Errorf("render failed: %w", err)
	}
	return out.Close()
}

func chartRequest(k models.ChartKind, threeD bool) excelviz.Request {
	return excelviz.Request{Kind: k, XAxis: xAxis, YAxis: yAxis, Title: title, ThreeD: threeD}
}

func chartOptions() (excelviz.Options, error) {
	opts := excelviz.DefaultOptions()
	m, err := excelviz.ParseMode(mode)
	if err != nil {
		return opts, err
	}
	opts.Mode = m
	if strict {
		opts.Mode = excelviz.ModeStrict
	}
	return opts, nil
}

func analyze(ctx context.Context, path string, req excelviz.Request, opts excelviz.Options) (*excelviz.Result, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("file not found: %s", path)
	}
	src, err := ingest.OpenFile(path, mimeType)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	return excelviz.Analyze(ctx, src, req, opts)
}

func writeJSON(v interface{}) error {
	if outputPath != "" {
		if err := output.WriteFile(outputPath, v, pretty); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	data, err := output.ToJSON(v, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func kindList() string {
	names := make([]string, 0, len(chart.Kinds()))
	for _, k := range chart.Kinds() {
		names = append(names, string(k))
	}
	return strings.Join(names, ", ")
}
