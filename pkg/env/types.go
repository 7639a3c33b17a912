// pkg/env/types.go
package env

// LibraryKind tells the linker how to find a native library
type LibraryKind string

const (
	// KindFramework is an Apple framework bundle (-framework Name)
	KindFramework LibraryKind = "framework"
	// KindDylib is a plain shared library (-lName)
	KindDylib LibraryKind = "dylib"
)

// Library is a native library the final artifact must link against
type Library struct {
	Name string      // Library name (e.g., "GLESv3", "OpenGLES")
	Kind LibraryKind // How the linker resolves it
}

// Resolution is what a platform resolver hands to the emission driver.
// Resolvers build it once; nothing modifies it afterwards.
type Resolution struct {
	Target      string    // Target OS the resolution is for
	RootHeader  string    // The single header the generator parses
	IncludeDirs []string  // Search order matters, earlier entries shadow later ones
	Libraries   []Library // Native libraries to link
}

// CompilerFlags holds compiler and linker flags
type CompilerFlags struct {
	IncludeFlags []string // -I flags
	LinkFlags    []string // -l and -framework flags
}
