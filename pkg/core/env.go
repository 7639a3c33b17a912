// pkg/core/env.go
package core

import "fmt"

// Environment variables recognized by glesbind
const (
	EnvSDKHome       = "ANDROID_HOME"
	EnvNDKRoot       = "NDK_HOME"
	EnvNDKIncludeDir = "NDK_INCLUDE_DIR"
	EnvNDKVersion    = "NDK_VER"
	EnvOutput        = "GLESBIND_OUTPUT"
	EnvDebug         = "GLESBIND_DEBUG"
	EnvTarget        = "GOOS"
)

type EnvVar struct {
	Name        string
	Value       string
	Description string
}

// EnvVars describes every recognized variable with its effective value in c
func (c *Config) EnvVars() []EnvVar {
	return []EnvVar{
		{EnvTarget, c.TargetOS, "Target operating system (ios or android), set by go generate"},
		{EnvSDKHome, c.SDKHome, "Android SDK home, used to build the default NDK include path"},
		{EnvNDKRoot, c.NDKRoot, "NDK root; include dir becomes <root>/sysroot/usr/include"},
		{EnvNDKIncludeDir, c.NDKIncludeDir, "NDK include directory, used verbatim"},
		{EnvNDKVersion, c.NDKVersion, "NDK version directory under <sdk>/ndk"},
		{EnvOutput, c.Output, "Path of the generated binding file"},
		{EnvDebug, fmt.Sprintf("%v", c.Debug), "Show debug logging (e.g. GLESBIND_DEBUG=1)"},
	}
}
