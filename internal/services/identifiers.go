package services

import (
	"regexp"
	"strings"
)

// isValidIdentifier checks if a string is a valid PostgreSQL identifier
func isValidIdentifier(name string) bool {
	if name == "" || len(name) > 63 {
		return false
	}
	// PostgreSQL identifiers: start with letter or underscore, followed by letters, digits, underscores, or dollar signs
	matched, _ := regexp.MatchString(`^[a-zA-Z_][a-zA-Z0-9_$]*$`, name)
	return matched
}

// isValidColumnType validates PostgreSQL column types against an allow-list
func isValidColumnType(colType string) bool {
	upper := strings.ToUpper(strings.TrimSpace(colType))
	validTypes := []string{
		"INT", "INTEGER", "BIGINT", "SMALLINT", "SERIAL", "BIGSERIAL",
		"DECIMAL", "NUMERIC", "REAL", "DOUBLE PRECISION",
		"BOOLEAN", "BOOL",
		"CHAR", "VARCHAR", "TEXT",
		"DATE", "TIME", "TIMESTAMP", "TIMESTAMPTZ", "INTERVAL",
		"UUID", "JSON", "JSONB", "BYTEA",
	}

	// Check exact match or parameterized types like VARCHAR(50)
	for _, valid := range validTypes {
		if upper == valid {
			return true
		}
		if strings.HasPrefix(upper, valid+"(") && strings.HasSuffix(upper, ")") {
			return true
		}
	}
	return false
}

// isValidDefault restricts column defaults to literals and a few functions so
// user input is never interpolated as free-form SQL.
func isValidDefault(def string) bool {
	trimmed := strings.TrimSpace(def)
	if trimmed == "" {
		return false
	}

	switch strings.ToUpper(trimmed) {
	case "NOW()", "CURRENT_TIMESTAMP", "CURRENT_DATE", "GEN_RANDOM_UUID()",
		"TRUE", "FALSE", "NULL":
		return true
	}

	// Numeric literal
	if matched, _ := regexp.MatchString(`^-?[0-9]+(\.[0-9]+)?$`, trimmed); matched {
		return true
	}

	// Single-quoted string without embedded quotes
	if matched, _ := regexp.MatchString(`^'[^']*'$`, trimmed); matched {
		return true
	}

	return false
}

// isValidReference accepts "table" or "table(column)" reference targets.
func isValidReference(ref string) bool {
	matched, _ := regexp.MatchString(
		`^[a-zA-Z_][a-zA-Z0-9_$]*(\([a-zA-Z_][a-zA-Z0-9_$]*\))?$`, ref)
	return matched
}
