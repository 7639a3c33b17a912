// source.go
package bindgen

import (
	"regexp"
	"strings"
)

var (
	// GL_APIENTRYP expands to "GL_APIENTRY*"
	pointerMacro = regexp.MustCompile(`\bGL_APIENTRYP\b`)

	// Calling convention and visibility macros that expand to attributes
	callMacros = regexp.MustCompile(`\b(GL_APICALL|GL_API|GL_APIENTRY|KHRONOS_APICALL|KHRONOS_APIENTRY)\b`)

	// Apple availability annotations such as OPENGLES_DEPRECATED(ios(3.0, 12.0))
	availabilityMacros = regexp.MustCompile(
		`\b[A-Z_][A-Z0-9_]*(?:DEPRECATED|AVAILABLE|UNAVAILABLE)[A-Z0-9_]*\s*\((?:[^()]|\([^()]*\))*\)`)
)

// stripSource removes the macros a C parser cannot see through without a
// preprocessor. Preprocessor lines are left alone so defines keep their
// spelling, and line numbers are preserved.
func stripSource(src []byte) []byte {
	lines := strings.Split(string(src), "\n")

	inDirective := false
	for i := 0; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])

		if !inDirective && isCPlusPlusGuard(trimmed) {
			if end, ok := linkageBlockEnd(lines, i); ok {
				for j := i; j <= end; j++ {
					lines[j] = ""
				}
				i = end
				continue
			}
		}

		directive := inDirective || strings.HasPrefix(trimmed, "#")
		inDirective = directive && strings.HasSuffix(trimmed, "\\")
		if directive {
			continue
		}

		line := pointerMacro.ReplaceAllString(lines[i], "*")
		line = callMacros.ReplaceAllString(line, "")
		line = availabilityMacros.ReplaceAllString(line, "")
		lines[i] = line
	}

	return []byte(strings.Join(lines, "\n"))
}

func isCPlusPlusGuard(line string) bool {
	switch strings.Join(strings.Fields(line), " ") {
	case "#ifdef __cplusplus", "#if defined(__cplusplus)", "#if defined __cplusplus":
		return true
	}
	return false
}

// linkageBlockEnd finds the #endif closing an `extern "C" {` or `}` guard
// that starts at start. Guards holding anything else are kept.
func linkageBlockEnd(lines []string, start int) (int, bool) {
	for j := start + 1; j < len(lines) && j <= start+3; j++ {
		t := strings.TrimSpace(lines[j])
		switch {
		case strings.HasPrefix(t, "#endif"):
			return j, true
		case t == "", t == "}", strings.HasPrefix(t, `extern "C"`):
		default:
			return 0, false
		}
	}
	return 0, false
}
