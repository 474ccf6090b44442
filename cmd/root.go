// =============================================================================
// Seed Users Converter - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. Called without any
// arguments, the root command converts the mailing export next to the
// repository root into the server's seed-users.json.
//
// COBRA CLI STRUCTURE:
//   rootCmd (seedconv)      - run the conversion
//   └── versionCmd          - print version information
//
// EXIT CODES:
//   0 - conversion succeeded
//   1 - source file missing, or any read/parse/write failure
//
// =============================================================================

package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/csv-to-seed-users/internal/converter"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the optional configuration file.
var cfgFile string

// verbose enables debug logging.
var verbose bool

// dryRun reads and validates the export without writing the seed file.
var dryRun bool

// inputPath and outputPath override the configured paths.
var inputPath, outputPath string

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "seedconv",
	Short: "Convert the mailing CSV export into the server's seed-users.json",
	Long: `seedconv reads the semicolon-separated mailing export and writes the user
seed file that the puzzle server merges into its store at startup.

Columns are taken by position (UID, first name, last name, language,
salutation). Rows that are too short or miss a UID or name are skipped with
a warning. The seed file is replaced on every run.

Example Usage:
  seedconv                              # Convert using the default paths
  seedconv --dry-run                    # Validate the export only
  seedconv --input list.xlsx --output seed-users.json`,

	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,

	RunE: func(cmd *cobra.Command, args []string) error {
		opts := runOptions{
			ConfigFile:    cfgFile,
			ConfigFileSet: cmd.Flags().Changed("config"),
			InputPath:     inputPath,
			OutputPath:    outputPath,
			DryRun:        dryRun,
			Verbose:       verbose,
		}
		return runConvert(opts, cmd.OutOrStdout())
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute runs the root command. It is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printError(os.Stdout, err)
		os.Exit(1)
	}
}

// printError reports a fatal error in the same wording as the summary.
func printError(w io.Writer, err error) {
	var convErr *converter.ConversionError
	switch {
	case errors.Is(err, converter.ErrSourceNotFound):
		fmt.Fprintf(w, "Error: %v\n", err)
	case errors.As(err, &convErr):
		fmt.Fprintf(w, "Error during conversion: %v\n", convErr.Err)
	default:
		fmt.Fprintf(w, "Error: %v\n", err)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"",
		"Path to the configuration file (default is seedconv.yaml next to the executable)",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)

	rootCmd.Flags().BoolVar(
		&dryRun,
		"dry-run",
		false,
		"Read and validate the export without writing the seed file",
	)

	rootCmd.Flags().StringVar(
		&inputPath,
		"input",
		"",
		"Override the source export (CSV or XLSX)",
	)

	rootCmd.Flags().StringVar(
		&outputPath,
		"output",
		"",
		"Override the seed file to write",
	)
}
