// =============================================================================
// Seed Users Converter - Conversion Run
// =============================================================================
//
// This file wires configuration, logging and the converter together for one
// run of the root command and prints the console summary.
//
// PROCESSING PIPELINE:
//   1. Load the configuration (optional file, defaults otherwise)
//   2. Resolve input and output paths
//   3. Run the converter
//   4. Print the summary and next steps
//
// =============================================================================

package cmd

import (
	"fmt"
	"io"

	"github.com/ginjaninja78/csv-to-seed-users/internal/config"
	"github.com/ginjaninja78/csv-to-seed-users/internal/converter"
	"github.com/ginjaninja78/csv-to-seed-users/internal/logging"
	"github.com/ginjaninja78/csv-to-seed-users/pkg/utils"
)

// runOptions collects the command-line settings of a run.
type runOptions struct {
	// ConfigFile is the --config value; empty selects the default location.
	ConfigFile string

	// ConfigFileSet is true when --config was given explicitly. A missing
	// explicit file is an error; a missing default file is not.
	ConfigFileSet bool

	// InputPath and OutputPath override the configured paths. Relative
	// values are taken as given (relative to the working directory).
	InputPath  string
	OutputPath string

	DryRun  bool
	Verbose bool

	// BaseDir anchors the configured relative paths. Empty selects the
	// directory of the executable.
	BaseDir string
}

// runConvert executes one conversion and writes the summary to out.
func runConvert(opts runOptions, out io.Writer) error {
	baseDir := opts.BaseDir
	if baseDir == "" {
		dir, err := utils.ToolDir()
		if err != nil {
			return err
		}
		baseDir = dir
	}

	// =========================================================================
	// STEP 1: LOAD CONFIGURATION
	// =========================================================================

	cfg, err := loadConfig(opts, baseDir)
	if err != nil {
		return err
	}

	level := cfg.LogLevel
	if opts.Verbose {
		level = "debug"
	}
	logger := logging.New(level, out)

	// =========================================================================
	// STEP 2: RESOLVE PATHS
	// =========================================================================

	input := utils.ResolveToolPath(baseDir, cfg.InputPath)
	if opts.InputPath != "" {
		input = opts.InputPath
	}

	output := utils.ResolveToolPath(baseDir, cfg.OutputPath)
	if opts.OutputPath != "" {
		output = opts.OutputPath
	}

	fmt.Fprintf(out, "Reading CSV from: %s\n", input)
	if opts.DryRun {
		fmt.Fprintln(out, "Dry run: no output will be written")
	} else {
		fmt.Fprintf(out, "Output will be written to: %s\n", output)
	}
	fmt.Fprintln(out)

	// =========================================================================
	// STEP 3: CONVERT
	// =========================================================================

	conv := converter.New(input, output, cfg).
		SetLogger(logger).
		SetDryRun(opts.DryRun)

	result := conv.Run()
	if result.Error != nil {
		return result.Error
	}

	// =========================================================================
	// STEP 4: PRINT SUMMARY
	// =========================================================================

	printSummary(out, result, opts.DryRun)

	return nil
}

// loadConfig reads the configuration file, falling back to defaults when the
// default file is absent.
func loadConfig(opts runOptions, baseDir string) (*config.Config, error) {
	if opts.ConfigFileSet {
		cfg, err := config.Load(opts.ConfigFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		return cfg, nil
	}

	path := opts.ConfigFile
	if path == "" {
		path = utils.ResolveToolPath(baseDir, config.DefaultConfigFile)
	}

	cfg, err := config.LoadOrDefault(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// printSummary prints the final console report.
func printSummary(out io.Writer, result converter.Result, dryRun bool) {
	stats := result.Stats

	fmt.Fprintln(out)
	if dryRun {
		fmt.Fprintf(out, "✓ Validated %d users (dry run)\n", stats.RecordsEmitted)
	} else {
		fmt.Fprintf(out, "✓ Successfully converted %d users\n", stats.RecordsEmitted)
		fmt.Fprintf(out, "✓ Output written to: %s\n", result.OutputFile)
	}

	fmt.Fprintf(out, "  Rows read:    %d\n", stats.RowsRead)
	fmt.Fprintf(out, "  Rows skipped: %d\n", stats.RowsSkipped)
	if stats.NonGUIDUids > 0 {
		fmt.Fprintf(out, "  Non-GUID Uids: %d\n", stats.NonGUIDUids)
	}
	fmt.Fprintf(out, "  Time elapsed: %s\n", stats.ProcessingTime)

	if dryRun {
		return
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "1. Review the generated seed-users.json file")
	fmt.Fprintln(out, "2. Restart the backend: dotnet run")
	fmt.Fprintln(out, "3. Check logs for successful merge")
	fmt.Fprintln(out, "4. Test with a sample UID from the CSV")
}
