package ingest

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// DataRange returns the A1-style bounding box of the non-empty cells in rows,
// or "" when every cell is empty.
func DataRange(rows [][]string) string {
	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return ""
	}

	startCell, err := excelize.CoordinatesToCellName(minCol+1, minRow+1)
	if err != nil {
		return ""
	}
	endCell, err := excelize.CoordinatesToCellName(maxCol+1, maxRow+1)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%s:%s", startCell, endCell)
}

// trimToData cuts rows down to the block between the first and last non-empty
// row, starting at the first non-empty column.
func trimToData(rows [][]string) [][]string {
	minRow, maxRow, minCol, _ := findDataBounds(rows)
	if minRow < 0 {
		return nil
	}

	table := make([][]string, 0, maxRow-minRow+1)
	for _, row := range rows[minRow : maxRow+1] {
		if minCol < len(row) {
			table = append(table, row[minCol:])
		} else {
			table = append(table, nil)
		}
	}
	return table
}

// findDataBounds finds the bounding box of non-empty cells.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if minRow < 0 {
				minRow = rowIdx
			}
			maxRow = rowIdx
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}
