// =============================================================================
// Seed Users Converter - Validation Engine
// =============================================================================
//
// Row-level checks applied to every data row of the export:
//   1. Column count: the row must reach the highest configured offset and the
//      configured minimum width.
//   2. Presence: Uid, FirstName and LastName must be non-empty after trimming.
//   3. Uid shape (advisory): a Uid that is not a GUID is reported but kept.
//
// ERROR HANDLING:
//   Failures of checks 1 and 2 produce a RowSkipped warning and the row is
//   dropped. Nothing here aborts the run.
//
// =============================================================================

package validation

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/ginjaninja78/csv-to-seed-users/internal/types"
)

// =============================================================================
// WARNING TYPES
// =============================================================================

// Reason classifies why a row was skipped.
type Reason string

const (
	// ReasonInsufficientColumns marks rows shorter than the required width.
	ReasonInsufficientColumns Reason = "insufficient_columns"

	// ReasonMissingRequired marks rows with an empty Uid, FirstName or LastName.
	ReasonMissingRequired Reason = "missing_required"
)

// RowSkipped is a non-fatal, per-row warning. The row is excluded from the
// output and processing continues.
type RowSkipped struct {
	// Row is the 1-based source row number (header is row 1).
	Row int

	// Reason classifies the failure.
	Reason Reason

	// Message is a human-readable description.
	Message string
}

// Error implements the error interface.
func (w RowSkipped) Error() string {
	return fmt.Sprintf("Row %d %s, skipping", w.Row, w.Message)
}

// =============================================================================
// CHECKS
// =============================================================================

// CheckColumns returns a warning if the row has fewer than required fields.
func CheckColumns(row types.SourceRow, required int) *RowSkipped {
	if len(row.Fields) >= required {
		return nil
	}
	return &RowSkipped{
		Row:     row.Number,
		Reason:  ReasonInsufficientColumns,
		Message: fmt.Sprintf("has insufficient columns (%d of %d)", len(row.Fields), required),
	}
}

// CheckRequired returns a warning naming the empty required fields of a
// mapped record. Values are expected to be trimmed already.
func CheckRequired(rowNumber int, record types.UserSeed) *RowSkipped {
	var missing []string
	if record.Uid == "" {
		missing = append(missing, "UID")
	}
	if record.FirstName == "" {
		missing = append(missing, "FirstName")
	}
	if record.LastName == "" {
		missing = append(missing, "LastName")
	}

	if len(missing) == 0 {
		return nil
	}

	return &RowSkipped{
		Row:     rowNumber,
		Reason:  ReasonMissingRequired,
		Message: fmt.Sprintf("missing required fields (%s)", strings.Join(missing, "/")),
	}
}

// IsGUID reports whether uid parses as a UUID in any of the common textual
// forms (plain, braced, or urn-prefixed).
func IsGUID(uid string) bool {
	_, err := uuid.Parse(uid)
	return err == nil
}
