// =============================================================================
// Seed Users Converter - JSON Writer Module
// =============================================================================
//
// This module serializes the seed document. The backend reads the file with a
// plain JSON deserializer, so the layout is fixed:
//
//   {
//     "Users": [
//       {
//         "Uid": "...",
//         "FirstName": "Max",
//         "LastName": "Müller",
//         "Language": 1,
//         "Salutation": 1
//       }
//     ]
//   }
//
// Names are written literally (no \u escapes for umlauts) and the file is
// replaced on every run.
//
// =============================================================================

package jsonwriter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/ginjaninja78/csv-to-seed-users/internal/types"
	"github.com/ginjaninja78/csv-to-seed-users/pkg/utils"
)

// Indent is the indentation used for nested values.
const Indent = "  "

// =============================================================================
// GENERATION
// =============================================================================

// Generate returns the serialized document.
func Generate(doc *types.SeedDocument) ([]byte, error) {
	var buffer bytes.Buffer
	if err := Encode(&buffer, doc); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

// Encode writes the document to w.
//
// encoding/json never escapes non-ASCII runes; HTML escaping is switched off
// so that names such as "Smith & Sons" stay readable.
func Encode(w io.Writer, doc *types.SeedDocument) error {
	if doc == nil {
		doc = types.NewSeedDocument(nil)
	}
	if doc.Users == nil {
		doc = types.NewSeedDocument(nil)
	}

	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", Indent)

	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode seed document: %w", err)
	}
	return nil
}

// =============================================================================
// FILE OUTPUT
// =============================================================================

// WriteFile writes the document to path, truncating any existing file.
//
// The write is not atomic: a failure mid-write can leave a partial file.
func WriteFile(path string, doc *types.SeedDocument) (err error) {
	if err := utils.EnsureParentDir(path); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()

	return Encode(file, doc)
}
