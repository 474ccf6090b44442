// =============================================================================
// Seed Users Converter - Field Transformations
// =============================================================================
//
// Maps the free-text columns of the export to the fixed integer enums of the
// seed schema. Both mappings are deliberately permissive: they look for a
// marker substring instead of parsing an exact value, because the mailing
// list is edited by hand ("English", "Englisch", "eng", "Sie", "per Sie").
//
//   Language:   contains "eng" -> English (1), anything else -> German (0)
//   Salutation: contains "sie" -> Formal (1),  anything else -> Informal (0)
//
// =============================================================================

package converter

import (
	"strings"

	"github.com/ginjaninja78/csv-to-seed-users/internal/config"
	"github.com/ginjaninja78/csv-to-seed-users/internal/types"
)

const (
	englishMarker = "eng"
	formalMarker  = "sie"
)

// MapLanguage maps a language cell to the Language enum.
func MapLanguage(raw string) types.Language {
	if containsFold(raw, englishMarker) {
		return types.LanguageEnglish
	}
	return types.LanguageGerman
}

// MapSalutation maps a salutation cell to the Salutation enum.
func MapSalutation(raw string) types.Salutation {
	if containsFold(raw, formalMarker) {
		return types.SalutationFormal
	}
	return types.SalutationInformal
}

// ExtractRecord builds a UserSeed from the positional fields of a row.
// The caller guarantees that fields reaches every offset.
func ExtractRecord(fields []string, offsets config.Offsets) types.UserSeed {
	return types.UserSeed{
		Uid:        strings.TrimSpace(fields[offsets.UID]),
		FirstName:  strings.TrimSpace(fields[offsets.FirstName]),
		LastName:   strings.TrimSpace(fields[offsets.LastName]),
		Language:   MapLanguage(fields[offsets.Language]),
		Salutation: MapSalutation(fields[offsets.Salutation]),
	}
}

// containsFold reports whether the trimmed, lowercased value contains marker.
func containsFold(value, marker string) bool {
	return strings.Contains(strings.ToLower(strings.TrimSpace(value)), marker)
}
