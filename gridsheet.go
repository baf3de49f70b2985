package sheetimport

var _ SheetWithName = new(GridSheet)

// GridSheet is an in-memory Sheet implementation
// that holds its cells as slices of values with any type.
//
// GridSheet supports sparse data: a row can have fewer
// elements than the widest row of the grid, in which case
// nil is returned as value for the missing cells.
type GridSheet struct {
	// SheetName is returned by the Name() method.
	SheetName string

	// Rows contains the cell values of the grid
	// with the first slice index as row and the
	// second as column, both counted from zero.
	Rows [][]any
}

// NewGridSheet returns a GridSheet with the passed name and rows.
func NewGridSheet(name string, rows [][]any) *GridSheet {
	return &GridSheet{SheetName: name, Rows: rows}
}

func (g *GridSheet) Name() string { return g.SheetName }
func (g *GridSheet) NumRows() int { return len(g.Rows) }

// NumCols returns the length of the widest row of the grid.
func (g *GridSheet) NumCols() int {
	numCols := 0
	for _, row := range g.Rows {
		if len(row) > numCols {
			numCols = len(row)
		}
	}
	return numCols
}

// Cell returns the value at the 1-indexed row and column
// coordinates, or nil if the coordinates are out of bounds
// or the row is too short to contain the column.
func (g *GridSheet) Cell(row, col int) any {
	if row < 1 || col < 1 || row > len(g.Rows) || col > len(g.Rows[row-1]) {
		return nil
	}
	return g.Rows[row-1][col-1]
}
