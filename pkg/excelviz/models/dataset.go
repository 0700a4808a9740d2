// Package models defines data structures for spreadsheet ingestion and chart building.
package models

// Row maps a column name to its raw cell value.
// Values are int64, float64, or string; a cell missing from a short row is "".
type Row map[string]interface{}

// Dataset represents the first sheet of a workbook as header columns plus row records.
type Dataset struct {
	// Columns lists header names in first-row order. Duplicates are kept.
	Columns []string `json:"columns"`
	// Rows contains one record per data row, keyed by column name.
	Rows []Row `json:"rows"`
	// RowCount is always len(Rows).
	RowCount int `json:"row_count"`
	// Range is the A1-style extent of the header and data block (e.g. "A1:C3").
	Range string `json:"range,omitempty"`
}

// NewDataset builds a Dataset and keeps RowCount in step with Rows.
func NewDataset(columns []string, rows []Row) *Dataset {
	if rows == nil {
		rows = []Row{}
	}
	return &Dataset{
		Columns:  columns,
		Rows:     rows,
		RowCount: len(rows),
	}
}

// HasColumn reports whether name is one of the dataset's columns.
func (d *Dataset) HasColumn(name string) bool {
	for _, c := range d.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Preview returns the first n rows of the dataset.
func (d *Dataset) Preview(n int) Preview {
	if n < 0 || n > len(d.Rows) {
		n = len(d.Rows)
	}
	return Preview{
		Columns:   d.Columns,
		Rows:      d.Rows[:n],
		TotalRows: d.RowCount,
	}
}

// Preview is a truncated view of a dataset for display.
type Preview struct {
	// Columns lists header names in order.
	Columns []string `json:"columns"`
	// Rows contains at most the requested number of leading rows.
	Rows []Row `json:"rows"`
	// TotalRows is the row count of the full dataset.
	TotalRows int `json:"total_rows"`
}
