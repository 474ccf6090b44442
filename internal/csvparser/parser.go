// =============================================================================
// Seed Users Converter - CSV Parser Module
// =============================================================================
//
// This module reads the delimited mailing export into positional rows. Values
// are returned untrimmed; trimming and column selection happen in the
// converter so that the warnings can refer to the raw row.
//
// FEATURES:
//   - Configurable delimiter (semicolon by default)
//   - Variable number of fields per row (short rows are reported, not fatal)
//   - UTF-8 with optional BOM, or a legacy single-byte code page
//
// =============================================================================

package csvparser

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/ginjaninja78/csv-to-seed-users/internal/config"
	"github.com/ginjaninja78/csv-to-seed-users/internal/types"
)

// ErrEmptyFile is returned when the file has no rows at all, not even a header.
var ErrEmptyFile = errors.New("CSV file is empty")

// Settings controls how the file is read.
type Settings struct {
	// Delimiter separates fields.
	Delimiter rune

	// Encoding is one of the names accepted by config.NormalizeEncoding.
	Encoding string

	// HeaderRows is the number of leading rows to discard.
	HeaderRows int
}

// SettingsFromConfig derives the parser settings from the run configuration.
func SettingsFromConfig(cfg *config.Config) Settings {
	return Settings{
		Delimiter:  cfg.DelimiterRune(),
		Encoding:   cfg.Encoding,
		HeaderRows: cfg.Headers(),
	}
}

// =============================================================================
// PARSER FUNCTIONS
// =============================================================================

// Parse reads a CSV file and returns its header and data rows.
//
// PARAMETERS:
//   - filePath: The path to the CSV file.
//   - settings: Delimiter, encoding and header settings.
//
// RETURNS:
//   - The parsed rows, numbered 1-based with the header counted.
//   - An error if the file cannot be opened, decoded or parsed.
func Parse(filePath string, settings Settings) (*types.SourceData, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	data, err := ParseReader(file, settings)
	if err != nil {
		return nil, err
	}
	data.SourceFile = filePath

	return data, nil
}

// ParseReader reads CSV data from r. See Parse.
func ParseReader(r io.Reader, settings Settings) (*types.SourceData, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	decoded, err := Decode(raw, settings.Encoding)
	if err != nil {
		return nil, err
	}

	csvReader := csv.NewReader(bytes.NewReader(decoded))
	configureReader(csvReader, settings)

	allRows, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	if len(allRows) == 0 && settings.HeaderRows > 0 {
		return nil, ErrEmptyFile
	}

	headerRows := settings.HeaderRows
	if headerRows > len(allRows) {
		headerRows = len(allRows)
	}

	result := &types.SourceData{
		Headers: allRows[:headerRows],
		Rows:    make([]types.SourceRow, 0, len(allRows)-headerRows),
	}

	for i := headerRows; i < len(allRows); i++ {
		result.Rows = append(result.Rows, types.SourceRow{
			Number: i + 1,
			Fields: allRows[i],
		})
	}

	return result, nil
}

// configureReader configures the CSV reader based on the settings.
func configureReader(reader *csv.Reader, settings Settings) {
	if settings.Delimiter != 0 {
		reader.Comma = settings.Delimiter
	} else {
		reader.Comma = ';'
	}

	// Short rows are handled by the converter.
	reader.FieldsPerRecord = -1

	// Spreadsheet exports are not always strict about quoting.
	reader.LazyQuotes = true
}

// =============================================================================
// DECODING
// =============================================================================

// Decode converts raw file bytes to UTF-8.
//
// A UTF-8 BOM is stripped. For UTF-8 input, invalid byte sequences are an
// error rather than being replaced, so that a mis-saved export is noticed.
func Decode(raw []byte, encoding string) ([]byte, error) {
	switch config.NormalizeEncoding(encoding) {
	case "utf-8":
		out, _, err := transform.Bytes(unicode.BOMOverride(transform.Nop), raw)
		if err != nil {
			return nil, fmt.Errorf("failed to decode UTF-8 input: %w", err)
		}
		if !utf8.Valid(out) {
			return nil, fmt.Errorf("input is not valid UTF-8 (set encoding in the config for legacy exports)")
		}
		return out, nil

	case "windows-1252":
		return decodeWith(raw, charmap.Windows1252.NewDecoder())

	case "iso-8859-1":
		return decodeWith(raw, charmap.ISO8859_1.NewDecoder())

	default:
		return nil, fmt.Errorf("unsupported encoding %q", encoding)
	}
}

func decodeWith(raw []byte, decoder transform.Transformer) ([]byte, error) {
	out, _, err := transform.Bytes(decoder, raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode input: %w", err)
	}
	return out, nil
}
