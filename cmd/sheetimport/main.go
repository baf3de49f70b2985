// Package main provides the sheetimport command that imports
// one worksheet of an Excel or CSV file as a key/value mapping
// or as record objects and prints the result as JSON.
package main

import (
	"fmt"
	"os"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"github.com/ungerik/go-fs"

	"github.com/domonda/go-sheetimport"
	"github.com/domonda/go-sheetimport/csvsheet"
	"github.com/domonda/go-sheetimport/excelsheet"
	"github.com/domonda/go-sheetimport/secret"
)

var (
	sheetName    string
	asRecords    bool
	topRow       int
	keyCol       int
	valueCol     int
	skipRows     string
	skipCols     string
	withPassword bool
	outputPath   string
	pretty       bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sheetimport [file.xlsx|file.csv]",
		Short: "Import a worksheet as a key/value mapping or as records",
		Long: `sheetimport reads one worksheet of an Excel workbook or a CSV file
and prints it as JSON, either as an ordered key/value mapping built
from two columns, or as one record object per data row with the
field names taken from the top row.`,
		Args:          cobra.ExactArgs(1),
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.Flags().StringVarP(&sheetName, "sheet", "s", "", "Worksheet name (default: active sheet, ignored for CSV)")
	rootCmd.Flags().BoolVar(&asRecords, "records", false, "Import as records instead of a key/value mapping")
	rootCmd.Flags().IntVar(&topRow, "top-row", 0, "1-indexed header row (default: first non-skipped row)")
	rootCmd.Flags().IntVar(&keyCol, "key-col", 0, "1-indexed key column for the mapping shape (default 1)")
	rootCmd.Flags().IntVar(&valueCol, "value-col", 0, "1-indexed value column for the mapping shape (default 2)")
	rootCmd.Flags().StringVar(&skipRows, "skip-rows", "", "Rows to skip, as list with ranges like 2,5-8")
	rootCmd.Flags().StringVar(&skipCols, "skip-cols", "", "Columns to skip for the records shape, like 3,7")
	rootCmd.Flags().BoolVar(&withPassword, "password", false, "Prompt for a workbook open password")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	file := fs.File(args[0])

	rowSkip, err := sheetimport.ParseSkipSet(skipRows)
	if err != nil {
		return err
	}
	colSkip, err := sheetimport.ParseSkipSet(skipCols)
	if err != nil {
		return err
	}

	var password *secret.Text
	if withPassword {
		password, err = secret.Prompt(cmd.ErrOrStderr(), "Password: ")
		if err != nil {
			return err
		}
		defer password.Destroy()
	}

	result, err := importFile(file, password, rowSkip, colSkip)
	if err != nil {
		return err
	}

	var out []byte
	if pretty {
		out, err = jsoniter.MarshalIndent(result, "", "  ")
	} else {
		out, err = jsoniter.Marshal(result)
	}
	if err != nil {
		return fmt.Errorf("can't marshal result: %w", err)
	}
	out = append(out, '\n')

	if outputPath != "" {
		return os.WriteFile(outputPath, out, 0o644)
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}

func importFile(file fs.File, password *secret.Text, rowSkip, colSkip sheetimport.SkipSet) (any, error) {
	mappingParams := sheetimport.MappingParams{
		TopRow:   topRow,
		KeyCol:   keyCol,
		ValueCol: valueCol,
		SkipRows: rowSkip,
	}
	recordParams := sheetimport.RecordParams{
		TopRow:   topRow,
		SkipRows: rowSkip,
		SkipCols: colSkip,
	}

	if strings.EqualFold(file.Ext(), ".csv") {
		grid, err := csvsheet.ReadFile(file, nil)
		if err != nil {
			return nil, err
		}
		if asRecords {
			return sheetimport.ExtractRecords(grid, recordParams), nil
		}
		return sheetimport.ExtractMapping(grid, mappingParams), nil
	}

	if asRecords {
		return excelsheet.ImportRecords(file, sheetName, password, recordParams)
	}
	return excelsheet.ImportMapping(file, sheetName, password, mappingParams)
}
