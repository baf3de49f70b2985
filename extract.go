// Package sheetimport imports one worksheet of a spreadsheet
// as either an ordered key/value mapping or a slice of records.
//
// The extraction functions are agnostic of the underlying
// spreadsheet format. They consume the Sheet interface as
// cell access capability, so any backend that can answer
// 1-indexed cell reads can serve as source. The excelsheet
// and csvsheet packages provide backends for Excel workbooks
// and CSV data, the GridSheet type adapts in-memory grids.
//
// Example:
//
//	sheet := sheetimport.NewGridSheet("People", [][]any{
//	    {"Name", "Age"},
//	    {"Alice", 30},
//	    {"Bob", 25},
//	})
//	records := sheetimport.ExtractRecords(sheet, sheetimport.RecordParams{})
//	// records[0]["Name"] == "Alice"
package sheetimport

import "github.com/spf13/cast"

// KeyValue is one key/value pair of a mapping extraction.
type KeyValue struct {
	Key   any `json:"key"`
	Value any `json:"value"`
}

// Record maps header names read from the top row
// to the cell values of one data row.
type Record map[string]any

// MappingParams are the parameters for ExtractMapping.
type MappingParams struct {
	// TopRow is the 1-indexed row above the first data row.
	// Zero means that the top row is resolved as the smallest
	// row index that is not a member of SkipRows.
	// An explicitly set TopRow is used as is,
	// even if it is a member of SkipRows.
	TopRow int

	// KeyCol is the 1-indexed column that the keys
	// are read from, defaulting to 1 when zero.
	KeyCol int

	// ValueCol is the 1-indexed column that the values
	// are read from, defaulting to 2 when zero.
	// ValueCol may equal KeyCol.
	ValueCol int

	// SkipRows are 1-indexed rows excluded from extraction.
	SkipRows SkipSet
}

// RecordParams are the parameters for ExtractRecords.
type RecordParams struct {
	// TopRow is the 1-indexed row that the header names
	// are read from. Zero means that the top row is
	// resolved as the smallest row index that is not
	// a member of SkipRows.
	// An explicitly set TopRow is used as is,
	// even if it is a member of SkipRows.
	TopRow int

	// SkipRows are 1-indexed rows excluded from extraction.
	SkipRows SkipSet

	// SkipCols are 1-indexed columns excluded from extraction.
	SkipCols SkipSet
}

// ResolveTopRow returns explicit unchanged if it is greater
// than zero, without checking it against rowSkip.
// Otherwise it returns the smallest row index >= 1
// that is not a member of rowSkip.
//
// With a finite rowSkip the search always terminates
// because a SkipSet can only hold a finite number of indices.
func ResolveTopRow(explicit int, rowSkip SkipSet) int {
	if explicit > 0 {
		return explicit
	}
	row := 1
	for rowSkip.Contains(row) {
		row++
	}
	return row
}

// ExtractMapping extracts ordered key/value pairs from the
// rows below the top row of the sheet.
//
// A row is accepted when its key cell is not empty (CellIsEmpty),
// its key was not already accepted for a lower row,
// and the row is not a member of params.SkipRows.
// The first occurrence of a key wins, rows repeating
// an already accepted key are dropped silently.
// Pair order is the ascending row order of first acceptance.
//
// Keys are compared by Go equality of the cell values,
// which must be comparable scalars.
//
// Data rows range from the row below the top row to NumRows(),
// so the top row itself is never filtered as a data row:
// a SkipRows member equal to the top row only affects
// top row resolution.
//
// A top row at or beyond NumRows() yields an empty result.
func ExtractMapping(sheet Sheet, params MappingParams) []KeyValue {
	keyCol := params.KeyCol
	if keyCol <= 0 {
		keyCol = 1
	}
	valueCol := params.ValueCol
	if valueCol <= 0 {
		valueCol = 2
	}
	topRow := ResolveTopRow(params.TopRow, params.SkipRows)

	var pairs []KeyValue
	accepted := make(map[any]struct{})
	for row := topRow + 1; row <= sheet.NumRows(); row++ {
		key := sheet.Cell(row, keyCol)
		if CellIsEmpty(key) {
			continue
		}
		if _, duplicate := accepted[key]; duplicate {
			continue
		}
		if params.SkipRows.Contains(row) {
			continue
		}
		accepted[key] = struct{}{}
		pairs = append(pairs, KeyValue{Key: key, Value: sheet.Cell(row, valueCol)})
	}
	return pairs
}

// ExtractRecords extracts one Record per row below the
// top row of the sheet, with the header names read from
// the top row cells.
//
// A field is set on a record when the header cell of its
// column is not empty (CellIsEmpty), the record does not
// already have a field with that header name, the row is
// not a member of params.SkipRows, and the column is not
// a member of params.SkipCols. Duplicate header names
// collapse to the first column per record, re-evaluated
// independently for every row.
//
// A record is appended for every data row, even when all
// of its fields were rejected, so the number of records
// only depends on the row range, never on the filters.
func ExtractRecords(sheet Sheet, params RecordParams) []Record {
	topRow := ResolveTopRow(params.TopRow, params.SkipRows)
	numRows := sheet.NumRows()
	numCols := sheet.NumCols()

	var records []Record
	for row := topRow + 1; row <= numRows; row++ {
		record := make(Record, numCols)
		for col := 1; col <= numCols; col++ {
			header := sheet.Cell(topRow, col)
			if CellIsEmpty(header) {
				continue
			}
			name := cast.ToString(header)
			if _, exists := record[name]; exists {
				continue
			}
			if params.SkipRows.Contains(row) || params.SkipCols.Contains(col) {
				continue
			}
			record[name] = sheet.Cell(row, col)
		}
		records = append(records, record)
	}
	return records
}
