// =============================================================================
// Seed Users Converter - Configuration Module
// =============================================================================
//
// This module loads the optional YAML configuration of the converter. The tool
// runs without any arguments, so every setting has a default that reproduces
// the reference mailing export layout:
//
//   input_path:  ../Xmas_Mailing_2025_CSV.csv
//   output_path: ../src/Server/ChristmasPuzzle.Server/seed-users.json
//   delimiter:   ";"
//   columns:     uid=0 first_name=4 last_name=5 language=9 salutation=10
//
// Relative paths are resolved against the directory holding the executable,
// not the current working directory (see pkg/utils.ResolveToolPath).
//
// =============================================================================

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// DEFAULTS
// =============================================================================

const (
	// DefaultInputPath is the mailing export, a sibling of the tools directory.
	DefaultInputPath = "../Xmas_Mailing_2025_CSV.csv"

	// DefaultOutputPath is the seed file read by the server at startup.
	DefaultOutputPath = "../src/Server/ChristmasPuzzle.Server/seed-users.json"

	// DefaultConfigFile is looked up next to the executable.
	DefaultConfigFile = "seedconv.yaml"

	// DefaultMinColumns is the minimum number of fields of a data row.
	DefaultMinColumns = 12
)

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds all settings of a conversion run.
type Config struct {
	// InputPath is the CSV (or XLSX) export to read.
	InputPath string `yaml:"input_path"`

	// OutputPath is the seed JSON file to (over)write.
	OutputPath string `yaml:"output_path"`

	// Delimiter separates fields in the CSV. Must be a single character.
	// Default: ";"
	Delimiter string `yaml:"delimiter"`

	// Encoding of the CSV file.
	// Valid values: "utf-8", "windows-1252", "iso-8859-1"
	// Default: "utf-8"
	Encoding string `yaml:"encoding"`

	// HeaderRows is the number of leading rows to discard.
	// Default: 1
	HeaderRows *int `yaml:"header_rows"`

	// MinColumns is the minimum field count of a data row. Shorter rows are
	// skipped with a warning. The effective minimum is never below the highest
	// configured column offset plus one.
	// Default: 12
	MinColumns int `yaml:"min_columns"`

	// Sheet is the worksheet to read for XLSX sources. Empty means the first.
	Sheet string `yaml:"sheet,omitempty"`

	// LogLevel controls the verbosity of logging.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "info"
	LogLevel string `yaml:"log_level"`

	// WarnNonGUIDUid logs a warning for every Uid that is not GUID-shaped.
	// The row is still emitted.
	// Default: true
	WarnNonGUIDUid *bool `yaml:"warn_non_guid_uid"`

	// Columns holds the 0-based positions of the extracted fields.
	Columns Columns `yaml:"columns"`
}

// Columns defines which positional field holds which value.
// Positions are fixed offsets, not resolved from header names.
type Columns struct {
	UID        *int `yaml:"uid"`
	FirstName  *int `yaml:"first_name"`
	LastName   *int `yaml:"last_name"`
	Language   *int `yaml:"language"`
	Salutation *int `yaml:"salutation"`
}

// Offsets is the resolved, non-pointer form of Columns.
type Offsets struct {
	UID        int
	FirstName  int
	LastName   int
	Language   int
	Salutation int
}

// Max returns the highest referenced offset.
func (o Offsets) Max() int {
	m := o.UID
	for _, v := range []int{o.FirstName, o.LastName, o.Language, o.Salutation} {
		if v > m {
			m = v
		}
	}
	return m
}

// =============================================================================
// CONFIGURATION LOADING
// =============================================================================

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load reads the configuration from a YAML file.
//
// PARAMETERS:
//   - path: The path to the configuration file.
//
// RETURNS:
//   - The configuration with defaults applied.
//   - An error wrapping os.ErrNotExist if the file is missing, or a parse or
//     validation error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// LoadOrDefault behaves like Load but falls back to Default when the file
// does not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// applyDefaults sets default values for any unset option.
func applyDefaults(cfg *Config) {
	if cfg.InputPath == "" {
		cfg.InputPath = DefaultInputPath
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = DefaultOutputPath
	}
	if cfg.Delimiter == "" {
		cfg.Delimiter = ";"
	}
	if cfg.Encoding == "" {
		cfg.Encoding = "utf-8"
	}
	if cfg.HeaderRows == nil {
		cfg.HeaderRows = intPtr(1)
	}
	if cfg.MinColumns == 0 {
		cfg.MinColumns = DefaultMinColumns
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.WarnNonGUIDUid == nil {
		warn := true
		cfg.WarnNonGUIDUid = &warn
	}

	// Reference mapping of the mailing export.
	if cfg.Columns.UID == nil {
		cfg.Columns.UID = intPtr(0)
	}
	if cfg.Columns.FirstName == nil {
		cfg.Columns.FirstName = intPtr(4)
	}
	if cfg.Columns.LastName == nil {
		cfg.Columns.LastName = intPtr(5)
	}
	if cfg.Columns.Language == nil {
		cfg.Columns.Language = intPtr(9)
	}
	if cfg.Columns.Salutation == nil {
		cfg.Columns.Salutation = intPtr(10)
	}
}

// validate checks the configuration for values the converter cannot use.
func validate(cfg *Config) error {
	if utf8.RuneCountInString(DelimiterAlias(cfg.Delimiter)) != 1 {
		return fmt.Errorf("delimiter must be a single character, got %q", cfg.Delimiter)
	}

	if !IsKnownEncoding(cfg.Encoding) {
		return fmt.Errorf("unsupported encoding %q", cfg.Encoding)
	}

	if *cfg.HeaderRows < 0 {
		return fmt.Errorf("header_rows must not be negative")
	}

	if cfg.MinColumns < 0 {
		return fmt.Errorf("min_columns must not be negative")
	}

	offsets := map[string]int{
		"uid":        *cfg.Columns.UID,
		"first_name": *cfg.Columns.FirstName,
		"last_name":  *cfg.Columns.LastName,
		"language":   *cfg.Columns.Language,
		"salutation": *cfg.Columns.Salutation,
	}
	for name, offset := range offsets {
		if offset < 0 {
			return fmt.Errorf("column %s must not be negative, got %d", name, offset)
		}
	}

	switch strings.ToLower(cfg.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log_level %q", cfg.LogLevel)
	}

	return nil
}

// =============================================================================
// ACCESSORS
// =============================================================================

// Offsets returns the resolved column offsets.
func (c *Config) Offsets() Offsets {
	return Offsets{
		UID:        *c.Columns.UID,
		FirstName:  *c.Columns.FirstName,
		LastName:   *c.Columns.LastName,
		Language:   *c.Columns.Language,
		Salutation: *c.Columns.Salutation,
	}
}

// RequiredColumns is the field count below which a row is skipped.
func (c *Config) RequiredColumns() int {
	required := c.Offsets().Max() + 1
	if c.MinColumns > required {
		required = c.MinColumns
	}
	return required
}

// DelimiterRune returns the delimiter as a rune.
func (c *Config) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(DelimiterAlias(c.Delimiter))
	return r
}

// Headers returns the number of header rows to discard.
func (c *Config) Headers() int {
	return *c.HeaderRows
}

// WarnOnNonGUID reports whether non-GUID Uids are logged.
func (c *Config) WarnOnNonGUID() bool {
	return *c.WarnNonGUIDUid
}

// DelimiterAlias maps the delimiter names accepted in the config file to the
// actual character.
func DelimiterAlias(delimiter string) string {
	switch strings.ToLower(delimiter) {
	case "semicolon":
		return ";"
	case "comma":
		return ","
	case "tab", "\\t":
		return "\t"
	case "pipe":
		return "|"
	default:
		return delimiter
	}
}

// IsKnownEncoding reports whether the encoding name can be decoded.
func IsKnownEncoding(name string) bool {
	switch NormalizeEncoding(name) {
	case "utf-8", "windows-1252", "iso-8859-1":
		return true
	default:
		return false
	}
}

// NormalizeEncoding folds common spellings of the supported encodings.
func NormalizeEncoding(name string) string {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return "utf-8"
	case "windows-1252", "cp1252", "windows1252":
		return "windows-1252"
	case "iso-8859-1", "latin-1", "latin1", "iso8859-1":
		return "iso-8859-1"
	default:
		return strings.ToLower(name)
	}
}

func intPtr(v int) *int {
	return &v
}
