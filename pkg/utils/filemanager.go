// =============================================================================
// Seed Users Converter - File Utilities
// =============================================================================
//
// Small helpers around the filesystem:
//   - Resolving the fixed default paths relative to the tool's own location
//   - Checking whether the source file exists
//   - Creating the output directory
//
// The tool lives in the repository's tools/ directory. The defaults are
// written relative to that directory, so the result does not depend on where
// the tool is started from.
//
// =============================================================================

package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// =============================================================================
// PATH RESOLUTION
// =============================================================================

// ToolDir returns the directory containing the running executable, with
// symlinks resolved.
func ToolDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}

	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}

	return filepath.Dir(exe), nil
}

// ResolveToolPath makes path absolute relative to baseDir. Absolute paths are
// returned cleaned but otherwise unchanged.
func ResolveToolPath(baseDir, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(baseDir, path)
}

// =============================================================================
// FILE CHECKS
// =============================================================================

// FileExists checks if a regular file (or symlink to one) exists at path.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// EnsureParentDir creates the directory that will contain path.
func EnsureParentDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}
