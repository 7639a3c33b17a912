// ctype.go
package bindgen

import (
	"regexp"
	"strings"
)

var arraySuffix = regexp.MustCompile(`\[[^\]]*\]`)

// ignoredSpecifiers do not change how a value crosses the cgo boundary
var ignoredSpecifiers = map[string]bool{
	"extern":   true,
	"static":   true,
	"inline":   true,
	"volatile": true,
	"restrict": true,
	"struct":   true,
	"register": true,
}

// parseCType reduces a C type spelling such as "const GLchar *const*" to its
// base type, constness and pointer depth.
func parseCType(spelling string) CType {
	spelling = arraySuffix.ReplaceAllString(spelling, "*")

	var t CType
	t.Pointers = strings.Count(spelling, "*")

	var words []string
	for _, word := range strings.Fields(strings.ReplaceAll(spelling, "*", " ")) {
		switch {
		case word == "const":
			t.Const = true
		case ignoredSpecifiers[word]:
		default:
			words = append(words, word)
		}
	}
	t.Base = strings.Join(words, " ")
	return t
}

// IsVoid reports whether t is a plain void (no pointers)
func (t CType) IsVoid() bool {
	return t.Pointers == 0 && voidTypes[t.Base]
}

// String returns a normalized C spelling of t
func (t CType) String() string {
	s := t.Base
	if t.Const {
		s = "const " + s
	}
	if t.Pointers > 0 {
		s += " " + strings.Repeat("*", t.Pointers)
	}
	return s
}
