// Package csvsheet reads CSV data and adapts it to the
// sheetimport.Sheet interface, so delimited text files
// can be imported with the same extraction semantics
// as Excel worksheets.
//
// Character encodings other than UTF-8 are decoded with
// github.com/domonda/go-types/charset before parsing.
package csvsheet

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/domonda/go-types/charset"
	"github.com/ungerik/go-fs"

	"github.com/domonda/go-sheetimport"
)

// Format describes the encoding and separator of CSV data.
//
// A nil *Format is valid and means UTF-8 encoding
// with the separator detected from the data.
type Format struct {
	// Encoding is the name of the character encoding
	// of the data, treated as UTF-8 when empty.
	Encoding string

	// Separator is the field separator,
	// detected from the data when zero.
	Separator rune
}

// DetectSeparator returns the most frequent of the
// candidate separators comma, semicolon, and tab
// within the passed data, defaulting to comma.
func DetectSeparator(data []byte) rune {
	var (
		commas     = bytes.Count(data, []byte{','})
		semicolons = bytes.Count(data, []byte{';'})
		tabs       = bytes.Count(data, []byte{'\t'})
	)
	switch {
	case semicolons > commas && semicolons >= tabs:
		return ';'
	case tabs > commas && tabs > semicolons:
		return '\t'
	default:
		return ','
	}
}

// ReadGrid parses CSV data into an in-memory sheet
// with the passed name.
//
// The data is decoded according to format.Encoding first,
// with a leading UTF-8 BOM removed in the UTF-8 case.
// Rows may have different numbers of fields, shorter
// rows yield nil cells for their missing columns.
func ReadGrid(name string, data []byte, format *Format) (*sheetimport.GridSheet, error) {
	if format == nil {
		format = new(Format)
	}
	switch format.Encoding {
	case "", "UTF-8", "utf-8":
		data = charset.TrimBOM(data, charset.BOMUTF8)
	default:
		enc, err := charset.GetEncoding(format.Encoding)
		if err != nil {
			return nil, err
		}
		data, err = enc.Decode(data)
		if err != nil {
			return nil, fmt.Errorf("can't decode CSV data as %s: %w", format.Encoding, err)
		}
	}

	separator := format.Separator
	if separator == 0 {
		separator = DetectSeparator(data)
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = separator
	reader.FieldsPerRecord = -1 // allow variable length rows
	reader.LazyQuotes = true

	var rows [][]any
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("can't parse CSV data: %w", err)
		}
		row := make([]any, len(fields))
		for i, field := range fields {
			row[i] = field
		}
		rows = append(rows, row)
	}
	return sheetimport.NewGridSheet(name, rows), nil
}

// ReadFile reads and parses the passed CSV file.
// See ReadGrid for the format handling.
func ReadFile(file fs.FileReader, format *Format) (*sheetimport.GridSheet, error) {
	reader, err := file.OpenReader()
	if err != nil {
		return nil, fmt.Errorf("can't open CSV file %s: %w", file.Name(), err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("can't read CSV file %s: %w", file.Name(), err)
	}
	return ReadGrid(file.Name(), data, format)
}
