// Package naming derives JavaScript identifiers from page and state names.
package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

func isBoundary(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}

// ToPascalCase drops `_`, `-` and space separators and upper-cases the first
// letter of every segment. Other characters keep their case.
func ToPascalCase(s string) string {
	return join(s, true)
}

// ToCamelCase behaves like ToPascalCase except that the first character of the
// result is left untouched, so "Hello" stays "Hello".
func ToCamelCase(s string) string {
	return join(s, false)
}

func join(s string, capitalizeFirst bool) string {
	var b strings.Builder
	b.Grow(len(s))

	capitalize := capitalizeFirst
	for _, r := range s {
		switch {
		case isBoundary(r):
			capitalize = true
		case capitalize:
			b.WriteRune(unicode.ToUpper(r))
			capitalize = false
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Binding is the accessor/mutator pair generated for a bound state field.
type Binding struct {
	Name     string
	Accessor string
	Mutator  string
}

// Bind derives the hook pair for a state name: accessor toCamelCase(name),
// mutator "set"+toPascalCase(name).
func Bind(name string) Binding {
	return Binding{
		Name:     name,
		Accessor: ToCamelCase(name),
		Mutator:  "set" + ToPascalCase(name),
	}
}

// FileStem lower-cases a component identifier for its module file name.
func FileStem(component string) string {
	return strings.ToLower(component)
}

// IsIdentifier reports whether s is usable as a JavaScript identifier.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	first, _ := utf8.DecodeRuneInString(s)
	if !(unicode.IsLetter(first) || first == '_' || first == '$') {
		return false
	}
	for _, r := range s {
		if !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '$') {
			return false
		}
	}
	return true
}
