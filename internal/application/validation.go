package application

import (
	"fmt"
	"slices"
	"strings"
)

// StoreKinds lists the supported index store backends
var StoreKinds = []string{"json", "sqlite"}

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		displayName := formatFieldName(fieldName)
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", displayName),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "rootPath" -> "root path")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"rootPath":  "root path",
		"indexPath": "index path",
		"store":     "store",
		"target":    "target store",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}

	return fieldName
}

// ValidateStoreKind checks that a store name is one of StoreKinds
func ValidateStoreKind(fieldName, kind string) error {
	if !slices.Contains(StoreKinds, kind) {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("unknown %s %q (expected %s)", formatFieldName(fieldName), kind, strings.Join(StoreKinds, " or ")),
		}
	}
	return nil
}
