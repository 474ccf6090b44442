// =============================================================================
// Seed Users Converter - Shared Types
// =============================================================================
//
// This package contains the output schema shared by the converter and the
// JSON writer. The field names and enum values are fixed by the backend that
// loads the seed file at startup, so they must not be renamed.
//
// =============================================================================

package types

// =============================================================================
// ENUMS
// =============================================================================

// Language is the UI language of a seeded user.
type Language int

const (
	// LanguageGerman is the default when the source column is empty or unknown.
	LanguageGerman Language = 0

	// LanguageEnglish is selected by any value containing "eng".
	LanguageEnglish Language = 1
)

// String returns the readable name of the language.
func (l Language) String() string {
	if l == LanguageEnglish {
		return "English"
	}
	return "German"
}

// Salutation is the form of address used for a seeded user.
type Salutation int

const (
	// SalutationInformal ("du") is the default.
	SalutationInformal Salutation = 0

	// SalutationFormal ("Sie") is selected by any value containing "sie".
	SalutationFormal Salutation = 1
)

// String returns the readable name of the salutation.
func (s Salutation) String() string {
	if s == SalutationFormal {
		return "Formal"
	}
	return "Informal"
}

// =============================================================================
// SEED RECORDS
// =============================================================================

// UserSeed is a single user entry in the seed file.
// Every emitted UserSeed has a non-empty Uid, FirstName and LastName.
type UserSeed struct {
	Uid        string     `json:"Uid"`
	FirstName  string     `json:"FirstName"`
	LastName   string     `json:"LastName"`
	Language   Language   `json:"Language"`
	Salutation Salutation `json:"Salutation"`
}

// SeedDocument is the top-level object written to the seed file.
type SeedDocument struct {
	// Users holds the accepted records in input row order.
	// Duplicated Uids are passed through unchanged.
	Users []UserSeed `json:"Users"`
}

// NewSeedDocument returns a document with a non-nil Users slice so that an
// empty conversion serializes as {"Users": []} rather than null.
func NewSeedDocument(users []UserSeed) *SeedDocument {
	if users == nil {
		users = []UserSeed{}
	}
	return &SeedDocument{Users: users}
}

// =============================================================================
// SOURCE ROWS
// =============================================================================

// SourceRow is one data row of the export, as read by csvparser or xlsxparser.
type SourceRow struct {
	// Number is the 1-based row number in the source, counting header rows.
	// The first data row after a single header is row 2.
	Number int

	// Fields holds the raw positional values, untrimmed.
	Fields []string
}

// SourceData is a parsed export file.
type SourceData struct {
	// SourceFile is the path the data was read from.
	SourceFile string

	// Headers contains the discarded header rows.
	Headers [][]string

	// Rows contains the data rows in file order.
	Rows []SourceRow
}
