package ingest

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"math"
	"strconv"

	"github.com/ukaji3/excelviz-go/pkg/excelviz/logging"
	"github.com/ukaji3/excelviz-go/pkg/excelviz/models"
	"github.com/xuri/excelize/v2"
)

// Parse reads src and decodes the first sheet of the workbook.
// Row 0 is the header row; the remaining rows become records.
// Sheets after the first are ignored. Parse does not retry.
func Parse(ctx context.Context, src Source) (*models.Dataset, error) {
	data, err := src.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}
	logging.Logger().Debug("read spreadsheet",
		slog.String("name", src.Name()),
		slog.Int("bytes", len(data)))
	return ParseBytes(data)
}

// ParseBytes decodes the first sheet of an in-memory workbook.
func ParseBytes(data []byte) (*models.Dataset, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyWorkbook
	}
	if len(sheets) > 1 {
		logging.Logger().Debug("ignoring sheets after the first",
			slog.String("sheet", sheets[0]),
			slog.Int("ignored", len(sheets)-1))
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: sheet %q: %w", ErrDecode, sheets[0], err)
	}

	ds := BuildDataset(rows)
	if len(ds.Columns) == 0 {
		return nil, ErrEmptyWorkbook
	}
	logging.Logger().Debug("decoded sheet",
		slog.String("sheet", sheets[0]),
		slog.Int("columns", len(ds.Columns)),
		slog.Int("rows", ds.RowCount))
	return ds, nil
}

// BuildDataset converts string rows into a Dataset. The table starts at the
// first non-empty row and column; its first row is the header. Blank header
// cells are skipped along with the cells beneath them. Cells missing from
// short rows become "". Cells beyond the header width are dropped. When
// headers repeat, the rightmost cell wins.
func BuildDataset(rows [][]string) *models.Dataset {
	table := trimToData(rows)
	if len(table) == 0 {
		return models.NewDataset([]string{}, nil)
	}

	type column struct {
		index int
		name  string
	}
	var columns []column
	headers := make([]string, 0, len(table[0]))
	for i, name := range table[0] {
		if name == "" {
			continue
		}
		columns = append(columns, column{index: i, name: name})
		headers = append(headers, name)
	}

	records := make([]models.Row, 0, len(table)-1)
	for _, row := range table[1:] {
		rec := make(models.Row, len(columns))
		for _, col := range columns {
			if col.index < len(row) {
				rec[col.name] = parseValue(row[col.index])
			} else {
				rec[col.name] = ""
			}
		}
		records = append(records, rec)
	}

	ds := models.NewDataset(headers, records)
	ds.Range = DataRange(rows)
	return ds
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
// Zero-padded codes and non-finite spellings stay strings.
func parseValue(s string) interface{} {
	if s == "" || hasLeadingZero(s) {
		return s
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
		return f
	}
	return s
}

// hasLeadingZero matches values like "007" but not "0" or "0.5".
func hasLeadingZero(s string) bool {
	if s[0] == '-' || s[0] == '+' {
		s = s[1:]
	}
	return len(s) > 1 && s[0] == '0' && s[1] >= '0' && s[1] <= '9'
}
