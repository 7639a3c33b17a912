// types.go
package bindgen

import "log"

// Engine turns a root header and its include search path into binding source
type Engine interface {
	Generate(rootHeader string, includeDirs []string) (*Bindings, error)
}

// Config configures the generator
type Config struct {
	Package   string      // Package clause of the generated file (default: gles)
	OutputDir string      // Directory of the generated file; relative include dirs are rewritten against it
	LinkFlags []string    // Written to the #cgo LDFLAGS line
	Debug     bool        // Enable debug logging
	Logger    *log.Logger // Custom logger (optional)
}

// Generator is the tree-sitter backed Engine
type Generator struct {
	config *Config
	logger *log.Logger
}

// Bindings is the result of one generation run
type Bindings struct {
	Source    []byte     // gofmt'ed Go source
	Headers   []string   // Headers parsed, root first
	External  []string   // Includes left to the C toolchain
	Constants []Constant // GL_ constants, sorted by name
	Functions []Function // gl entry points, sorted by name
	Skipped   []string   // Entry points whose types have no Go mapping
}

// Constant is a numeric #define
type Constant struct {
	Name  string // C name (e.g., "GL_DEPTH_BUFFER_BIT")
	Value string // Literal with integer suffixes dropped
}

// Function is a C function prototype
type Function struct {
	Name     string
	Result   CType
	Params   []Param
	Variadic bool
}

// Param is one function parameter
type Param struct {
	Name string // May be empty for unnamed parameters
	Type CType
}

// CType is a C type reduced to what the wrappers need
type CType struct {
	Base     string // e.g. "GLenum", "void", "unsigned int"
	Const    bool
	Pointers int // Pointer and array levels
}
