// emit.go
package bindgen

import (
	"bytes"
	"fmt"
	"go/format"
	"path/filepath"
	"strings"
	"text/template"
)

var fileTemplate = template.Must(template.New("bindings").Parse(`// Code generated by glesbind from {{.Header}}. DO NOT EDIT.

package {{.Package}}

/*
{{- range .CFlags}}
#cgo CFLAGS: {{.}}
{{- end}}
{{- if .LDFlags}}
#cgo LDFLAGS: {{.LDFlags}}
{{- end}}
#include {{.Include}}
*/
import "C"
{{- if .UsesUnsafe}}

import "unsafe"
{{- end}}
{{- if .Constants}}

const (
{{- range .Constants}}
	{{.Name}} = {{.Value}}
{{- end}}
)
{{- end}}
{{- range .Functions}}

func {{.Name}}({{.Params}}){{if .Result}} {{.Result}}{{end}} {
	{{.Body}}
}
{{- end}}
`))

type fileData struct {
	Header     string
	Package    string
	CFlags     []string
	LDFlags    string
	Include    string
	UsesUnsafe bool
	Constants  []constDecl
	Functions  []funcDecl
}

type constDecl struct {
	Name  string
	Value string
}

type funcDecl struct {
	Name   string
	Params string
	Result string
	Body   string
}

// emitInput is everything the emitter needs from a scan
type emitInput struct {
	pkg         string
	outputDir   string
	rootHeader  string
	includeDirs []string
	linkFlags   []string
	constants   []Constant
	functions   []Function
}

// emit renders the cgo source. Functions whose types cannot be expressed are
// returned by name instead of being emitted.
func emit(in emitInput) ([]byte, []string, error) {
	header, include := includeDirective(in.rootHeader, in.includeDirs)

	data := fileData{
		Header:  header,
		Package: in.pkg,
		LDFlags: strings.Join(in.linkFlags, " "),
		Include: include,
	}
	for _, dir := range in.includeDirs {
		flag, err := includeFlag(dir, in.outputDir)
		if err != nil {
			return nil, nil, err
		}
		data.CFlags = append(data.CFlags, flag)
	}

	for _, c := range in.constants {
		data.Constants = append(data.Constants, constDecl{
			Name:  constName(c.Name),
			Value: c.Value,
		})
	}

	var skipped []string
	for _, f := range in.functions {
		decl, err := wrapFunction(f)
		if err != nil {
			skipped = append(skipped, fmt.Sprintf("%s: %v", f.Name, err))
			continue
		}
		data.Functions = append(data.Functions, decl)
		if strings.Contains(decl.Params+decl.Result+decl.Body, "unsafe.") {
			data.UsesUnsafe = true
		}
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, nil, fmt.Errorf("rendering bindings: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, nil, fmt.Errorf("formatting bindings: %w", err)
	}
	return src, skipped, nil
}

func wrapFunction(f Function) (funcDecl, error) {
	if f.Variadic {
		return funcDecl{}, fmt.Errorf("variadic functions are not supported")
	}

	params := make([]string, 0, len(f.Params))
	args := make([]string, 0, len(f.Params))
	for i, p := range f.Params {
		name := paramName(p.Name, i)
		goType, arg, err := mapParam(name, p.Type)
		if err != nil {
			return funcDecl{}, fmt.Errorf("parameter %s: %w", name, err)
		}
		params = append(params, name+" "+goType)
		args = append(args, arg)
	}

	call := "C." + f.Name + "(" + strings.Join(args, ", ") + ")"
	result, body, err := mapResult(f.Result, call)
	if err != nil {
		return funcDecl{}, fmt.Errorf("result: %w", err)
	}

	return funcDecl{
		Name:   funcName(f.Name),
		Params: strings.Join(params, ", "),
		Result: result,
		Body:   body,
	}, nil
}

// includeDirective returns the header as shown to readers and the #include
// operand. The header is named relative to the first include directory
// holding it so the preamble goes through the same search path.
func includeDirective(rootHeader string, includeDirs []string) (string, string) {
	for _, dir := range includeDirs {
		rel, err := filepath.Rel(dir, rootHeader)
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			continue
		}
		rel = filepath.ToSlash(rel)
		return rel, "<" + rel + ">"
	}
	abs := filepath.ToSlash(rootHeader)
	return filepath.Base(rootHeader), `"` + abs + `"`
}

// includeFlag returns the -I flag for dir as seen from the generated file.
// cgo runs the C compiler in the package directory, so a relative dir is
// rewritten against outputDir with a ${SRCDIR} prefix. Without an outputDir,
// or when no relative path exists, the absolute path is used.
func includeFlag(dir, outputDir string) (string, error) {
	if filepath.IsAbs(dir) {
		return "-I" + filepath.ToSlash(dir), nil
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving include dir %s: %w", dir, err)
	}
	if outputDir == "" {
		return "-I" + filepath.ToSlash(absDir), nil
	}

	absOut, err := filepath.Abs(outputDir)
	if err != nil {
		return "", fmt.Errorf("resolving output dir %s: %w", outputDir, err)
	}
	rel, err := filepath.Rel(absOut, absDir)
	if err != nil {
		return "-I" + filepath.ToSlash(absDir), nil
	}
	return "-I${SRCDIR}/" + filepath.ToSlash(rel), nil
}

// constName drops the GL_ prefix unless that would start the name with a digit
func constName(name string) string {
	short := strings.TrimPrefix(name, "GL_")
	if short == "" || (short[0] >= '0' && short[0] <= '9') {
		return name
	}
	return short
}

// funcName drops the gl prefix: glClearColor becomes ClearColor
func funcName(name string) string {
	return strings.TrimPrefix(name, "gl")
}
