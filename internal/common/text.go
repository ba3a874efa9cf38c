package common

import (
	"strings"
	"unicode"
)

// IndentOf returns the leading whitespace of a line.
func IndentOf(line string) string {
	return line[:len(line)-len(strings.TrimLeft(line, " \t"))]
}

// NormalizeEnumKey normalizes a symbolic enum member for lookup against the
// native member set: case-folded to lower with hyphens stripped.
// Example: "bgra8unorm-srgb" -> "bgra8unormsrgb".
func NormalizeEnumKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), "-", "")
}

// TitleNoSep converts an UPPER_SNAKE member key to the native TitleCase
// spelling. Example: "MAP_READ" -> "MapRead".
func TitleNoSep(s string) string {
	var sb strings.Builder

	sb.Grow(len(s))

	upper := true
	for _, r := range s {
		if r == '_' {
			upper = true

			continue
		}

		if upper {
			sb.WriteRune(unicode.ToUpper(r))
			upper = false
		} else {
			sb.WriteRune(unicode.ToLower(r))
		}
	}

	return sb.String()
}

// ToSnakeCase converts a CamelCase identifier to snake_case.
// Example: "PushConstants" -> "push_constants", "BGRA8UnormStorage" ->
// "bgra8_unorm_storage".
func ToSnakeCase(s string) string {
	tokens := tokenizeCamelCase(s)
	for i, t := range tokens {
		tokens[i] = strings.ToLower(t)
	}

	return strings.Join(tokens, "_")
}

// ToKebabCase converts a CamelCase identifier to kebab-case.
func ToKebabCase(s string) string {
	return strings.ReplaceAll(ToSnakeCase(s), "_", "-")
}

// tokenizeCamelCase splits a CamelCase or camelCase string into tokens.
// Examples:
//   - "OrderID" -> ["Order", "ID"]
//   - "XMLParser" -> ["XML", "Parser"]
func tokenizeCamelCase(s string) []string {
	if s == "" {
		return nil
	}

	var tokens []string

	var current strings.Builder

	runes := []rune(s)
	for i := range runes {
		r := runes[i]

		// Separators start a new token.
		if isSeparator(r) {
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}

			continue
		}

		if i == 0 {
			current.WriteRune(r)

			continue
		}

		if shouldStartNewToken(runes, i) {
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}
		}

		current.WriteRune(r)
	}

	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens
}

// isSeparator returns true if the rune is a common separator.
func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}

// shouldStartNewToken determines if a new token should start at position i.
func shouldStartNewToken(runes []rune, i int) bool {
	r := runes[i]
	prevRune := runes[i-1]
	isUpper := unicode.IsUpper(r)
	isPrevUpper := unicode.IsUpper(prevRune)
	isPrevSep := isSeparator(prevRune)

	// Transition from lowercase to uppercase: start new token
	// e.g., "backendType" -> split before 'T'
	if isUpper && !isPrevUpper && !isPrevSep {
		return true
	}

	// End of acronym: check if next character is lowercase
	// e.g., "BGRAFormat" -> "BGRA" + "Format", split before 'F'
	hasNextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
	if isUpper && isPrevUpper && hasNextLower {
		return true
	}

	return false
}
