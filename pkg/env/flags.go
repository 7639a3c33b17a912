// pkg/env/flags.go
package env

import "strings"

// LinkFlag returns the flag the Go linker needs for l
func (l Library) LinkFlag() string {
	if l.Kind == KindFramework {
		return "-framework " + l.Name
	}
	return "-l" + l.Name
}

// Directive returns the link-lib directive value for l
func (l Library) Directive() string {
	if l.Kind == KindFramework {
		return string(KindFramework) + "=" + l.Name
	}
	return l.Name
}

// Flags derives compiler and linker flags from the resolution,
// keeping the include search order
func (r *Resolution) Flags() CompilerFlags {
	flags := CompilerFlags{
		IncludeFlags: make([]string, 0, len(r.IncludeDirs)),
		LinkFlags:    make([]string, 0, len(r.Libraries)),
	}
	for _, dir := range r.IncludeDirs {
		flags.IncludeFlags = append(flags.IncludeFlags, "-I"+dir)
	}
	for _, lib := range r.Libraries {
		flags.LinkFlags = append(flags.LinkFlags, lib.LinkFlag())
	}
	return flags
}

// CFlags joins the include flags the way a #cgo CFLAGS line expects
func (f CompilerFlags) CFlags() string {
	return strings.Join(f.IncludeFlags, " ")
}

// LDFlags joins the link flags the way a #cgo LDFLAGS line expects
func (f CompilerFlags) LDFlags() string {
	return strings.Join(f.LinkFlags, " ")
}

// LibraryNames returns the bare library names in declaration order
func (r *Resolution) LibraryNames() []string {
	names := make([]string, 0, len(r.Libraries))
	for _, lib := range r.Libraries {
		names = append(names, lib.Name)
	}
	return names
}
