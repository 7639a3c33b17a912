// pkg/platform/detect.go
package platform

import (
	"fmt"
	"runtime"

	"github.com/arc-language/glesbind/pkg/core"
)

// Target is the operating system the bindings are generated for
type Target string

const (
	// TargetIOS is the framework-based platform
	TargetIOS Target = "ios"
	// TargetAndroid is the NDK-based platform
	TargetAndroid Target = "android"
)

// ParseTarget maps a GOOS value to a supported target
func ParseTarget(goos string) (Target, error) {
	switch Target(goos) {
	case TargetIOS, TargetAndroid:
		return Target(goos), nil
	case "":
		return "", fmt.Errorf("%w: GOOS is not set", core.ErrUnsupportedTarget)
	default:
		return "", fmt.Errorf("%w: %q", core.ErrUnsupportedTarget, goos)
	}
}

// String returns the string representation of the target
func (t Target) String() string {
	return string(t)
}

// Host is the machine running the build, not the one running the bindings
type Host struct {
	OS   string // linux, darwin, windows
	Arch string // amd64, arm64
}

// Detect describes the current build host
func Detect() Host {
	return Host{
		OS:   runtime.GOOS,
		Arch: runtime.GOARCH,
	}
}

// String returns a string representation of the host
func (h Host) String() string {
	return fmt.Sprintf("%s/%s", h.OS, h.Arch)
}
