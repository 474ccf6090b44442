// =============================================================================
// Seed Users Converter - Main Entry Point
// =============================================================================
//
// seedconv converts the mailing list export (semicolon-separated CSV, or the
// XLSX it was exported from) into the seed-users.json file that the puzzle
// server loads at startup.
//
// USAGE:
//   seedconv            - Convert using the default paths
//   seedconv version    - Display the application version
//
// ARCHITECTURE:
//   - cmd/       : CLI command definitions (Cobra)
//   - internal/  : Parsing, mapping, validation and JSON output
//   - pkg/       : Shared file utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/csv-to-seed-users/cmd"
)

func main() {
	cmd.Execute()
}
