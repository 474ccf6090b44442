// =============================================================================
// Seed Users Converter - Converter Module
// =============================================================================
//
// This module contains the core conversion logic. It runs the whole pipeline
// for one export file, from reading the rows to writing the seed JSON.
//
// CONVERSION PIPELINE:
//   1. Check that the source file exists
//   2. Read the rows (CSV, or XLSX by extension)
//   3. Skip rows that are too short
//   4. Extract and map the configured columns
//   5. Skip rows missing Uid, FirstName or LastName
//   6. Write the seed document (unless this is a dry run)
//
// The pipeline is a single synchronous pass. Row order is preserved and
// duplicated Uids are passed through; merging into the existing store is the
// backend's job.
//
// =============================================================================

package converter

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ginjaninja78/csv-to-seed-users/internal/config"
	"github.com/ginjaninja78/csv-to-seed-users/internal/csvparser"
	"github.com/ginjaninja78/csv-to-seed-users/internal/jsonwriter"
	"github.com/ginjaninja78/csv-to-seed-users/internal/logging"
	"github.com/ginjaninja78/csv-to-seed-users/internal/types"
	"github.com/ginjaninja78/csv-to-seed-users/internal/validation"
	"github.com/ginjaninja78/csv-to-seed-users/internal/xlsxparser"
	"github.com/ginjaninja78/csv-to-seed-users/pkg/utils"
)

// =============================================================================
// ERRORS
// =============================================================================

// ErrSourceNotFound is returned when the input path does not exist. The
// output file is not touched in that case.
var ErrSourceNotFound = errors.New("source file not found")

// ConversionError wraps any read, parse or write failure of a run.
type ConversionError struct {
	// Op is the failed step: "read" or "write".
	Op string

	// Path is the file the step operated on.
	Path string

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ConversionError) Error() string {
	return fmt.Sprintf("conversion failed to %s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *ConversionError) Unwrap() error {
	return e.Err
}

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result represents the outcome of converting a single file.
type Result struct {
	// FilePath is the source file.
	FilePath string

	// OutputFile is the seed file. Empty for dry runs and failures.
	OutputFile string

	// Success indicates whether the run completed.
	Success bool

	// Error is ErrSourceNotFound (wrapped) or a *ConversionError.
	Error error

	// Skipped lists the dropped rows in source order.
	Skipped []validation.RowSkipped

	// Document is the generated seed document.
	Document *types.SeedDocument

	// Stats contains processing statistics.
	Stats ProcessingStats
}

// ProcessingStats contains statistics about the run.
type ProcessingStats struct {
	// RowsRead is the number of data rows (header excluded).
	RowsRead int

	// RecordsEmitted is the number of users written.
	RecordsEmitted int

	// RowsSkipped is the number of dropped rows.
	RowsSkipped int

	// NonGUIDUids counts emitted users whose Uid is not GUID-shaped.
	NonGUIDUids int

	// ProcessingTime is the time taken by the run.
	ProcessingTime time.Duration
}

// =============================================================================
// CONVERTER STRUCTURE
// =============================================================================

// Logger is the logging surface used by the converter.
// *logrus.Logger satisfies it.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// Converter converts one export file to a seed file.
type Converter struct {
	inputPath  string
	outputPath string
	cfg        *config.Config
	logger     Logger
	dryRun     bool
}

// New creates a new Converter. A nil cfg selects config.Default().
func New(inputPath, outputPath string, cfg *config.Config) *Converter {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Converter{
		inputPath:  inputPath,
		outputPath: outputPath,
		cfg:        cfg,
		logger:     logging.New(cfg.LogLevel, os.Stdout),
	}
}

// SetLogger replaces the logger.
func (c *Converter) SetLogger(logger Logger) *Converter {
	c.logger = logger
	return c
}

// SetDryRun disables writing the output file.
func (c *Converter) SetDryRun(dryRun bool) *Converter {
	c.dryRun = dryRun
	return c
}

// Convert converts inputPath to outputPath with the default configuration
// and returns the number of emitted users.
func Convert(inputPath, outputPath string) (int, error) {
	return New(inputPath, outputPath, nil).Convert()
}

// Convert runs the pipeline and returns the number of emitted users.
func (c *Converter) Convert() (int, error) {
	result := c.Run()
	if result.Error != nil {
		return 0, result.Error
	}
	return result.Stats.RecordsEmitted, nil
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// Run executes the conversion pipeline.
func (c *Converter) Run() (result Result) {
	startTime := time.Now()
	result = Result{FilePath: c.inputPath}
	defer func() {
		result.Stats.ProcessingTime = time.Since(startTime)
	}()

	// =========================================================================
	// STEP 1: CHECK SOURCE
	// =========================================================================

	if !utils.FileExists(c.inputPath) {
		result.Error = fmt.Errorf("%w: %s", ErrSourceNotFound, c.inputPath)
		return result
	}

	// =========================================================================
	// STEP 2: READ ROWS
	// =========================================================================

	data, err := c.readSource()
	if err != nil {
		result.Error = &ConversionError{Op: "read", Path: c.inputPath, Err: err}
		return result
	}

	result.Stats.RowsRead = len(data.Rows)
	c.logger.Debugf("Read %d data rows from %s", len(data.Rows), c.inputPath)

	// =========================================================================
	// STEPS 3-5: EXTRACT, MAP, VALIDATE
	// =========================================================================

	users, skipped := c.buildRecords(data.Rows, &result.Stats)
	result.Skipped = skipped
	result.Stats.RowsSkipped = len(skipped)
	result.Stats.RecordsEmitted = len(users)
	result.Document = types.NewSeedDocument(users)

	// =========================================================================
	// STEP 6: WRITE OUTPUT
	// =========================================================================

	if c.dryRun {
		c.logger.Infof("Dry run: %d users not written", len(users))
		result.Success = true
		return result
	}

	if err := jsonwriter.WriteFile(c.outputPath, result.Document); err != nil {
		result.Error = &ConversionError{Op: "write", Path: c.outputPath, Err: err}
		return result
	}

	result.OutputFile = c.outputPath
	result.Success = true
	c.logger.Debugf("Wrote %d users to %s", len(users), c.outputPath)

	return result
}

// readSource picks the parser by file extension.
func (c *Converter) readSource() (*types.SourceData, error) {
	if xlsxparser.IsWorkbook(c.inputPath) {
		return xlsxparser.Parse(c.inputPath, xlsxparser.Settings{
			Sheet:      c.cfg.Sheet,
			HeaderRows: c.cfg.Headers(),
		})
	}
	return csvparser.Parse(c.inputPath, csvparser.SettingsFromConfig(c.cfg))
}

// buildRecords turns source rows into seed records, dropping invalid rows.
func (c *Converter) buildRecords(rows []types.SourceRow, stats *ProcessingStats) ([]types.UserSeed, []validation.RowSkipped) {
	offsets := c.cfg.Offsets()
	required := c.cfg.RequiredColumns()

	users := make([]types.UserSeed, 0, len(rows))
	var skipped []validation.RowSkipped

	for _, row := range rows {
		if warning := validation.CheckColumns(row, required); warning != nil {
			c.logger.Warnf("%s", warning.Error())
			skipped = append(skipped, *warning)
			continue
		}

		record := ExtractRecord(row.Fields, offsets)

		if warning := validation.CheckRequired(row.Number, record); warning != nil {
			c.logger.Warnf("%s", warning.Error())
			skipped = append(skipped, *warning)
			continue
		}

		if c.cfg.WarnOnNonGUID() && !validation.IsGUID(record.Uid) {
			stats.NonGUIDUids++
			c.logger.Warnf("Row %d has a Uid that is not a GUID (%q), keeping it", row.Number, record.Uid)
		}

		users = append(users, record)
	}

	return users, skipped
}
