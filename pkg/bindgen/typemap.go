// typemap.go
package bindgen

import (
	"fmt"
	"strings"
)

// scalarTypes maps GL scalar typedefs to the Go type of the wrapper
var scalarTypes = map[string]string{
	"GLenum":     "uint32",
	"GLboolean":  "uint8",
	"GLbitfield": "uint32",
	"GLbyte":     "int8",
	"GLubyte":    "uint8",
	"GLshort":    "int16",
	"GLushort":   "uint16",
	"GLint":      "int32",
	"GLuint":     "uint32",
	"GLfixed":    "int32",
	"GLclampx":   "int32",
	"GLsizei":    "int32",
	"GLfloat":    "float32",
	"GLclampf":   "float32",
	"GLint64":    "int64",
	"GLuint64":   "uint64",
	"GLintptr":   "int",
	"GLsizeiptr": "int",
	"GLhalf":     "uint16",
	"GLchar":     "int8",
}

// handleTypes are opaque pointer typedefs
var handleTypes = map[string]bool{
	"GLsync":        true,
	"GLeglImageOES": true,
}

var voidTypes = map[string]bool{
	"void":   true,
	"GLvoid": true,
}

// goReserved cannot be used as parameter names without shadowing or breaking
// the generated conversions
var goReserved = map[string]bool{
	"break": true, "case": true, "chan": true, "const": true, "continue": true,
	"default": true, "defer": true, "else": true, "fallthrough": true, "for": true,
	"func": true, "go": true, "goto": true, "if": true, "import": true,
	"interface": true, "map": true, "package": true, "range": true, "return": true,
	"select": true, "struct": true, "switch": true, "type": true, "var": true,
	"bool": true, "byte": true, "cap": true, "len": true, "int": true, "int8": true,
	"int16": true, "int32": true, "int64": true, "uint": true, "uint8": true,
	"uint16": true, "uint32": true, "uint64": true, "float32": true, "float64": true,
	"string": true, "new": true, "make": true, "append": true, "copy": true,
	"C": true, "unsafe": true,
}

// mapParam returns the Go parameter type and the expression that converts
// the Go value named name into the C argument.
func mapParam(name string, t CType) (string, string, error) {
	if t.Pointers == 0 {
		switch {
		case scalarTypes[t.Base] != "":
			return scalarTypes[t.Base], "C." + t.Base + "(" + name + ")", nil
		case handleTypes[t.Base]:
			return "unsafe.Pointer", "C." + t.Base + "(" + name + ")", nil
		}
		return "", "", fmt.Errorf("no Go type for %s", t)
	}

	if voidTypes[t.Base] {
		if t.Pointers == 1 {
			return "unsafe.Pointer", name, nil
		}
		return "unsafe.Pointer", "(" + strings.Repeat("*", t.Pointers-1) + "unsafe.Pointer)(" + name + ")", nil
	}

	elem, err := cElem(t.Base)
	if err != nil {
		return "", "", err
	}
	return "unsafe.Pointer", "(" + strings.Repeat("*", t.Pointers) + elem + ")(" + name + ")", nil
}

// mapResult returns the Go result type and wraps the C call so it yields it.
// A void result returns an empty type and the bare call.
func mapResult(t CType, call string) (string, string, error) {
	switch {
	case t.IsVoid():
		return "", call, nil
	case t.Pointers > 0 || handleTypes[t.Base]:
		return "unsafe.Pointer", "return unsafe.Pointer(" + call + ")", nil
	case scalarTypes[t.Base] != "":
		goType := scalarTypes[t.Base]
		return goType, "return " + goType + "(" + call + ")", nil
	}
	return "", "", fmt.Errorf("no Go type for %s", t)
}

func cElem(base string) (string, error) {
	if scalarTypes[base] != "" || handleTypes[base] {
		return "C." + base, nil
	}
	if base == "char" {
		return "C.char", nil
	}
	return "", fmt.Errorf("no Go type for pointer to %s", base)
}

// paramName turns a C parameter name into a safe Go identifier
func paramName(name string, index int) string {
	if name == "" {
		return fmt.Sprintf("p%d", index)
	}
	if goReserved[name] {
		return name + "_"
	}
	return name
}
