// Package excelsheet opens Excel workbooks (.xlsx, .xlsm, .xltm, .xltx)
// and adapts single worksheets to the sheetimport.Sheet interface.
//
// The package uses the excelize library (github.com/xuri/excelize/v2)
// to parse workbook files, including workbooks that are protected
// with an open password.
//
// The one-call import functions ImportMapping and ImportRecords
// open the workbook, select one worksheet, extract the requested
// shape, and close the workbook again on every exit path:
//
//	pairs, err := excelsheet.ImportMapping(
//	    fs.File("accounts.xlsx"), "Balances", nil,
//	    sheetimport.MappingParams{KeyCol: 1, ValueCol: 2},
//	)
//
// For more control open a Document directly and close it yourself.
package excelsheet

import (
	"errors"
	"fmt"

	"github.com/ungerik/go-fs"
	"github.com/xuri/excelize/v2"

	"github.com/domonda/go-sheetimport"
	"github.com/domonda/go-sheetimport/secret"
)

// Document is an open Excel workbook.
//
// Close must be called exactly once per opened Document.
type Document struct {
	file *excelize.File
	name string
}

// Open reads and parses the passed workbook file.
// The password is applied when it is not empty
// and is not retained by the returned Document.
//
// Errors opening the file or parsing the workbook
// are wrapped with the file name.
func Open(file fs.FileReader, password *secret.Text) (*Document, error) {
	reader, err := file.OpenReader()
	if err != nil {
		return nil, fmt.Errorf("can't open workbook file %s: %w", file.Name(), err)
	}
	defer reader.Close()

	var opts excelize.Options
	if !password.IsEmpty() {
		opts.Password = password.Expose()
	}
	f, err := excelize.OpenReader(reader, opts)
	if err != nil {
		return nil, fmt.Errorf("can't open workbook %s: %w", file.Name(), err)
	}
	return &Document{file: f, name: file.Name()}, nil
}

// Name returns the name of the workbook file.
func (doc *Document) Name() string { return doc.name }

// SheetNames returns the worksheet names of the workbook.
func (doc *Document) SheetNames() []string {
	return doc.file.GetSheetList()
}

// SelectSheet returns the worksheet with the passed name
// as sheetimport.SheetWithName.
// An empty name selects the active worksheet.
//
// Cell values are returned with the display formatting
// of the workbook applied, or as raw strings when
// rawCellValues is true.
//
// Returns ErrSheetNotExist when no worksheet has the
// passed name and ErrEmptySheet when the worksheet
// contains no used cells.
func (doc *Document) SelectSheet(name string, rawCellValues bool) (sheetimport.SheetWithName, error) {
	if name == "" {
		name = doc.file.GetSheetName(doc.file.GetActiveSheetIndex())
		if name == "" {
			name = doc.file.GetSheetName(0)
		}
		if name == "" {
			return nil, ErrSheetNotExist{SheetName: "<ActiveSheet>"} // Should never happen (?)
		}
	}
	rows, err := doc.file.GetRows(name, excelize.Options{RawCellValue: rawCellValues})
	if err != nil {
		return nil, err
	}
	numCols := 0
	for _, row := range rows {
		if len(row) > numCols {
			numCols = len(row)
		}
	}
	if len(rows) == 0 || numCols == 0 {
		return nil, fmt.Errorf("%w: %s in workbook %s", ErrEmptySheet, name, doc.name)
	}
	return &worksheet{name: name, rows: rows, numCols: numCols}, nil
}

// Close releases all resources of the workbook.
func (doc *Document) Close() error {
	return doc.file.Close()
}

// ImportMapping opens the workbook file, extracts ordered
// key/value pairs from the worksheet with the passed name
// (the active worksheet when empty), and closes the
// workbook again, also when sheet selection fails.
//
// See sheetimport.ExtractMapping for the extraction semantics.
func ImportMapping(file fs.FileReader, sheetName string, password *secret.Text, params sheetimport.MappingParams) (pairs []sheetimport.KeyValue, err error) {
	doc, e := Open(file, password)
	if e != nil {
		return nil, e
	}
	defer func() {
		err = errors.Join(err, doc.Close())
	}()
	sheet, err := doc.SelectSheet(sheetName, false)
	if err != nil {
		return nil, err
	}
	return sheetimport.ExtractMapping(sheet, params), nil
}

// ImportRecords opens the workbook file, extracts one record
// per data row from the worksheet with the passed name
// (the active worksheet when empty), and closes the
// workbook again, also when sheet selection fails.
//
// See sheetimport.ExtractRecords for the extraction semantics.
func ImportRecords(file fs.FileReader, sheetName string, password *secret.Text, params sheetimport.RecordParams) (records []sheetimport.Record, err error) {
	doc, e := Open(file, password)
	if e != nil {
		return nil, e
	}
	defer func() {
		err = errors.Join(err, doc.Close())
	}()
	sheet, err := doc.SelectSheet(sheetName, false)
	if err != nil {
		return nil, err
	}
	return sheetimport.ExtractRecords(sheet, params), nil
}

var _ sheetimport.SheetWithName = new(worksheet)

// worksheet holds the used range of one worksheet
// as string cells in memory.
type worksheet struct {
	name    string
	rows    [][]string
	numCols int
}

func (w *worksheet) Name() string { return w.name }
func (w *worksheet) NumRows() int { return len(w.rows) }
func (w *worksheet) NumCols() int { return w.numCols }

// Cell returns the string value at the 1-indexed coordinates,
// or nil for out of bounds coordinates and cells beyond
// the used width of their row.
func (w *worksheet) Cell(row, col int) any {
	if row < 1 || col < 1 || row > len(w.rows) || col > len(w.rows[row-1]) {
		return nil
	}
	return w.rows[row-1][col-1]
}
