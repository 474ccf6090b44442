// =============================================================================
// Seed Users Converter - XLSX Source Parser
// =============================================================================
//
// The mailing list is maintained as a spreadsheet and normally exported to
// CSV before conversion. This module reads the spreadsheet directly so the
// export step can be skipped. The result has the same shape as the CSV
// parser's, so column offsets, mapping and validation are shared.
//
// SPREADSHEET VS. CSV:
//   excelize drops trailing empty cells of a row, while a CSV export keeps
//   them as empty fields. Data rows are therefore padded to the width of the
//   header row, otherwise a user with an empty salutation column would be
//   reported as a short row.
//
// =============================================================================

package xlsxparser

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/csv-to-seed-users/internal/types"
)

// Settings controls which part of the workbook is read.
type Settings struct {
	// Sheet is the worksheet name. Empty selects the first sheet.
	Sheet string

	// HeaderRows is the number of leading rows to discard.
	HeaderRows int
}

// IsWorkbook reports whether the path names an XLSX workbook.
func IsWorkbook(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return true
	default:
		return false
	}
}

// =============================================================================
// PARSER FUNCTIONS
// =============================================================================

// Parse reads the data rows of a worksheet.
//
// PARAMETERS:
//   - path: The path to the XLSX file.
//   - settings: Sheet and header settings.
//
// RETURNS:
//   - The rows, numbered like the spreadsheet (row 1 is the header).
//   - An error if the workbook or sheet cannot be read.
func Parse(path string, settings Settings) (*types.SourceData, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheetName := settings.Sheet
	if sheetName == "" {
		sheetName = f.GetSheetName(0)
		if sheetName == "" {
			return nil, fmt.Errorf("workbook has no sheets")
		}
	} else if idx, err := f.GetSheetIndex(sheetName); err != nil || idx < 0 {
		return nil, fmt.Errorf("sheet %q not found", sheetName)
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	if len(rows) == 0 && settings.HeaderRows > 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheetName)
	}

	headerRows := settings.HeaderRows
	if headerRows > len(rows) {
		headerRows = len(rows)
	}

	width := 0
	for _, header := range rows[:headerRows] {
		if len(header) > width {
			width = len(header)
		}
	}

	result := &types.SourceData{
		SourceFile: path,
		Headers:    rows[:headerRows],
		Rows:       make([]types.SourceRow, 0, len(rows)-headerRows),
	}

	for i := headerRows; i < len(rows); i++ {
		// Fully empty rows have no CSV counterpart.
		if len(rows[i]) == 0 {
			continue
		}

		result.Rows = append(result.Rows, types.SourceRow{
			Number: i + 1,
			Fields: padRow(rows[i], width),
		})
	}

	return result, nil
}

// padRow extends row with empty cells up to width.
func padRow(row []string, width int) []string {
	if len(row) >= width {
		return row
	}
	padded := make([]string, width)
	copy(padded, row)
	return padded
}
