package style

import (
	"strings"
	"unicode"
)

// CSSName normalizes a style property name to the hyphenated lower case form
// used in style sheets. Property forms often deliver names in camel case, as
// scripting APIs do:
//
//     CSSName("backgroundColor")  // => "background-color"
//     CSSName(" Font-Size ")      // => "font-size"
//
// Names already in hyphenated form are returned unchanged (apart from
// trimming and lower-casing).
func CSSName(key string) string {
	key = strings.TrimSpace(key)
	if key == strings.ToLower(key) {
		return key
	}
	var b strings.Builder
	for i, r := range key {
		if unicode.IsUpper(r) {
			if i > 0 && key[i-1] != '-' {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	name := b.String()
	tracer().Debugf("style name %q normalized to %q", key, name)
	return name
}

// ValidName is a predicate wether key may be used as the name of an attribute
// or a style property. Names must be non-empty and must not contain
// whitespace, control characters, quotes, or any of the characters which
// delimit names in markup.
func ValidName(key string) bool {
	if key == "" {
		return false
	}
	for _, r := range key {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return false
		}
		switch r {
		case '"', '\'', '<', '>', '/', '=', ';', ':', '&':
			return false
		}
	}
	return true
}
