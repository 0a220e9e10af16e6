// Package shared provides common utility functions used across multiple
// packages in the pixi-envsync codebase.
package shared

import (
	"fmt"
	"strings"
)

// NormalizePipName lowercases a Python package name and replaces
// underscores and dots with hyphens, following PEP 503 normalization.
// Pip dependency sections are keyed on the normalized name so that
// "PyYAML" and "pyyaml" compare equal.
func NormalizePipName(value string) string {
	lower := strings.ToLower(strings.TrimSpace(value))
	replacer := strings.NewReplacer("_", "-", ".", "-")
	return replacer.Replace(lower)
}

// CommandError wraps a command execution error with its trimmed output
// for cleaner error messages.
func CommandError(output []byte, err error) error {
	return fmt.Errorf("%s: %w", strings.TrimSpace(string(output)), err)
}
