// pkg/core/errors.go
package core

import "errors"

var (
	// ErrUnsupportedTarget indicates GOOS names neither supported mobile platform
	ErrUnsupportedTarget = errors.New("unsupported target OS, only ios and android are supported")

	// ErrUnsupportedHost indicates the build host has no known NDK toolchain
	ErrUnsupportedHost = errors.New("unsupported build host")

	// ErrWorkaround indicates the framework header link could not be created
	ErrWorkaround = errors.New("creating header visibility link")

	// ErrGeneration indicates the binding engine could not produce bindings
	ErrGeneration = errors.New("unable to generate bindings")
)
