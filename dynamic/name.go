package dynamic

import (
	"strings"
	"unicode"

	"github.com/scimkit/scimmodel/codec"
)

// internalName derives a dynamically generated field's Go-facing identifier
// from its wire name, per spec §4.5 step 2: camelCase converted to
// snake_case, with "$ref" special-cased to "ref" and a digit boundary
// (x509Certificates) getting its own underscore.
func internalName(wireName string) string {
	if override, ok := codec.InternalNameFor(wireName); ok {
		return override
	}

	var b strings.Builder
	runes := []rune(wireName)
	for i, r := range runes {
		if i > 0 && isBoundary(runes, i) {
			b.WriteByte('_')
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// isBoundary reports whether a snake_case underscore belongs before
// runes[i]: an upper-to-lower camelCase transition, or a letter-to-digit /
// digit-to-letter transition (the x509Certificates -> x_509_certificates
// case spec §4.5 names explicitly).
func isBoundary(runes []rune, i int) bool {
	prev, cur := runes[i-1], runes[i]
	if unicode.IsUpper(cur) && !unicode.IsUpper(prev) {
		return true
	}
	if unicode.IsDigit(cur) != unicode.IsDigit(prev) {
		return true
	}
	return false
}

// pascalCase derives a nested generated complex type's stable name from its
// owning attribute's wire name, per spec §4.5 step 3 (phoneNumbers ->
// PhoneNumbers).
func pascalCase(wireName string) string {
	if wireName == "" {
		return ""
	}
	r := []rune(wireName)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
