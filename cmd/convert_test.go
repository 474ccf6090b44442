package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/csv-to-seed-users/internal/config"
	"github.com/ginjaninja78/csv-to-seed-users/internal/converter"
)

// setupRepo lays out a repository with the tool in tools/ and the export at
// the root, and returns the tools directory.
func setupRepo(t *testing.T, export string) string {
	t.Helper()

	root := t.TempDir()
	toolsDir := filepath.Join(root, "tools")
	require.NoError(t, os.MkdirAll(toolsDir, 0755))

	if export != "" {
		require.NoError(t, os.WriteFile(filepath.Join(root, "Xmas_Mailing_2025_CSV.csv"), []byte(export), 0644))
	}
	return toolsDir
}

func exportLine(uid, first, last, language, salutation, sep string) string {
	fields := make([]string, 12)
	fields[0] = uid
	fields[4] = first
	fields[5] = last
	fields[9] = language
	fields[10] = salutation
	return strings.Join(fields, sep)
}

func TestRunConvertDefaultPaths(t *testing.T) {
	export := "header\n" +
		exportLine("g-123", "Max", "Müller", "Englisch", "Sie", ";") + "\n" +
		"too;short\n"
	toolsDir := setupRepo(t, export)

	var out bytes.Buffer
	err := runConvert(runOptions{BaseDir: toolsDir}, &out)
	require.NoError(t, err)

	seedPath := filepath.Join(toolsDir, config.DefaultOutputPath)
	assert.FileExists(t, seedPath)

	text := out.String()
	assert.Contains(t, text, "Reading CSV from: "+filepath.Join(toolsDir, config.DefaultInputPath))
	assert.Contains(t, text, "Output will be written to: "+seedPath)
	assert.Contains(t, text, "Row 3 has insufficient columns")
	assert.Contains(t, text, "✓ Successfully converted 1 users")
	assert.Contains(t, text, "✓ Output written to: "+seedPath)
	assert.Contains(t, text, "Next steps:")
	assert.Contains(t, text, "Non-GUID Uids: 1")
}

func TestRunConvertDryRun(t *testing.T) {
	toolsDir := setupRepo(t, "header\n"+exportLine("g-1", "Max", "Muster", "", "", ";")+"\n")

	var out bytes.Buffer
	err := runConvert(runOptions{BaseDir: toolsDir, DryRun: true}, &out)
	require.NoError(t, err)

	assert.NoFileExists(t, filepath.Join(toolsDir, config.DefaultOutputPath))
	assert.Contains(t, out.String(), "Dry run: no output will be written")
	assert.Contains(t, out.String(), "✓ Validated 1 users (dry run)")
	assert.NotContains(t, out.String(), "Next steps:")
}

func TestRunConvertFlagOverrides(t *testing.T) {
	toolsDir := setupRepo(t, "")
	dir := t.TempDir()

	input := filepath.Join(dir, "list.csv")
	require.NoError(t, os.WriteFile(input, []byte("header\n"+exportLine("g-1", "Max", "Muster", "", "", ";")+"\n"), 0644))
	output := filepath.Join(dir, "out", "seed.json")

	var out bytes.Buffer
	err := runConvert(runOptions{BaseDir: toolsDir, InputPath: input, OutputPath: output}, &out)
	require.NoError(t, err)
	assert.FileExists(t, output)
}

func TestRunConvertUsesConfigFile(t *testing.T) {
	toolsDir := setupRepo(t, "header\n"+exportLine("g-1", "Max", "Muster", "", "", ",")+"\n")
	require.NoError(t, os.WriteFile(
		filepath.Join(toolsDir, config.DefaultConfigFile),
		[]byte("delimiter: comma\nwarn_non_guid_uid: false\n"),
		0644,
	))

	var out bytes.Buffer
	err := runConvert(runOptions{BaseDir: toolsDir}, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "✓ Successfully converted 1 users")
	assert.NotContains(t, out.String(), "Non-GUID Uids")
}

func TestRunConvertExplicitConfigMissing(t *testing.T) {
	toolsDir := setupRepo(t, "header\n")

	var out bytes.Buffer
	err := runConvert(runOptions{
		BaseDir:       toolsDir,
		ConfigFile:    filepath.Join(toolsDir, "custom.yaml"),
		ConfigFileSet: true,
	}, &out)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRunConvertMissingSource(t *testing.T) {
	toolsDir := setupRepo(t, "")

	var out bytes.Buffer
	err := runConvert(runOptions{BaseDir: toolsDir}, &out)
	assert.ErrorIs(t, err, converter.ErrSourceNotFound)
	assert.NotContains(t, out.String(), "Successfully converted")
}

func TestPrintError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "source not found",
			err:  fmt.Errorf("%w: /repo/x.csv", converter.ErrSourceNotFound),
			want: "Error: source file not found: /repo/x.csv\n",
		},
		{
			name: "conversion error",
			err:  &converter.ConversionError{Op: "read", Path: "/repo/x.csv", Err: errors.New("CSV file is empty")},
			want: "Error during conversion: CSV file is empty\n",
		},
		{
			name: "other",
			err:  errors.New("boom"),
			want: "Error: boom\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			printError(&buf, tt.err)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "Seed Users Converter")
	assert.Contains(t, buf.String(), "Version:    "+Version)
}
