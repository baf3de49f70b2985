package sheetimport

// Sheet is the cell access capability that the extraction
// functions consume. Rows and columns are 1-indexed,
// matching how spreadsheet applications count them.
//
// Implementations must remain valid for the duration of one
// extraction call and reads must be free of side effects,
// so that repeated extraction over the same Sheet with
// identical parameters yields identical results.
type Sheet interface {
	// NumRows returns the number of rows of the used range.
	NumRows() int

	// NumCols returns the number of columns of the used range.
	NumCols() int

	// Cell returns the value of the cell at the
	// 1-indexed row and column coordinates,
	// or nil if the coordinates are out of bounds.
	Cell(row, col int) any
}

// SheetWithName is a Sheet that knows the name of its worksheet.
type SheetWithName interface {
	Sheet

	// Name returns the worksheet name.
	Name() string
}
