package excelsheet

import (
	"errors"

	"github.com/xuri/excelize/v2"
)

// ErrEmptySheet indicates that a selected worksheet
// contains no used cells.
var ErrEmptySheet = errors.New("empty sheet")

// ErrSheetNotExist is re-exported from excelize and indicates
// that a requested sheet name does not exist in the workbook:
//
//	var sheetErr excelsheet.ErrSheetNotExist
//	if errors.As(err, &sheetErr) {
//	    fmt.Println("no sheet named", sheetErr.SheetName)
//	}
type ErrSheetNotExist = excelize.ErrSheetNotExist
