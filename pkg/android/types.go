// types.go
package android

import "log"

// Config configures the NDK resolver. Each SDK field is optional.
type Config struct {
	SDKHome       string                 // Android SDK home (ANDROID_HOME)
	NDKRoot       string                 // NDK root (NDK_HOME), wins over everything else
	NDKIncludeDir string                 // Include directory used verbatim (NDK_INCLUDE_DIR)
	NDKVersion    string                 // Default: DefaultNDKVersion (NDK_VER)
	Toolchain     func() (string, error) // Host toolchain lookup, default: the detected host
	Debug         bool                   // Enable debug logging
	Logger        *log.Logger            // Custom logger (optional)
}

// Resolver computes the resolution for the NDK-based platform
type Resolver struct {
	config *Config
	logger *log.Logger
}
