// =============================================================================
// Seed Users Converter - Version Command
// =============================================================================
//
// This file defines the 'version' command, which displays the application
// version and build information.
//
// COMMAND USAGE:
//   seedconv version
//
// OUTPUT:
//   Seed Users Converter
//   Version:    0.1.0
//   Build Date: 2025-11-28
//   Go Version: go1.24.11
//   Platform:   linux/amd64
//
// =============================================================================

package cmd

import (
	"fmt"

	goversion "github.com/caarlos0/go-version"
	"github.com/spf13/cobra"
)

// =============================================================================
// VERSION INFORMATION
// =============================================================================
// These variables are set at build time using ldflags.
// Example build command:
//   go build -ldflags "-X 'github.com/ginjaninja78/csv-to-seed-users/cmd.Version=0.1.0'"

// Version is the application version.
// Set at build time using ldflags.
var Version = "0.1.0"

// Commit is the git commit the binary was built from.
var Commit = ""

// BuildDate is the date the application was built.
// Set at build time using ldflags.
var BuildDate = ""

// buildVersion merges the ldflags values over the module build info.
func buildVersion() goversion.Info {
	return goversion.GetVersionInfo(
		goversion.WithAppDetails("seedconv", "Seed Users Converter", ""),
		func(i *goversion.Info) {
			if Version != "" {
				i.GitVersion = Version
			}
			if Commit != "" {
				i.GitCommit = Commit
			}
			if BuildDate != "" {
				i.BuildDate = BuildDate
			}
		},
	)
}

// =============================================================================
// VERSION COMMAND DEFINITION
// =============================================================================

// versionCmd represents the 'version' command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display the application version",
	Long:  `Display the application version, commit, build date, and Go runtime version.`,
	Run: func(cmd *cobra.Command, args []string) {
		info := buildVersion()
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, info.Description)
		fmt.Fprintf(out, "Version:    %s\n", info.GitVersion)
		if info.GitCommit != "" {
			fmt.Fprintf(out, "Commit:     %s\n", info.GitCommit)
		}
		fmt.Fprintf(out, "Build Date: %s\n", info.BuildDate)
		fmt.Fprintf(out, "Go Version: %s\n", info.GoVersion)
		fmt.Fprintf(out, "Platform:   %s\n", info.Platform)
	},
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init registers the version command with the root command.
func init() {
	rootCmd.AddCommand(versionCmd)
}
