// pkg/platform/host.go
package platform

import (
	"fmt"

	"github.com/arc-language/glesbind/pkg/core"
)

// ndkToolchains maps a build host OS to the NDK prebuilt toolchain directory.
// Google only ships x86_64 prebuilts; Apple silicon hosts run them translated.
var ndkToolchains = map[string]string{
	"linux":   "linux-x86_64",
	"darwin":  "darwin-x86_64",
	"windows": "windows-x86_64",
}

// symlinkHosts lists build hosts that can create symbolic links
var symlinkHosts = map[string]bool{
	"linux":   true,
	"darwin":  true,
	"freebsd": true,
	"netbsd":  true,
	"openbsd": true,
	"windows": false,
}

// Toolchain returns the NDK prebuilt toolchain identifier for the host
func (h Host) Toolchain() (string, error) {
	tc, ok := ndkToolchains[h.OS]
	if !ok {
		return "", fmt.Errorf("%w: no NDK toolchain for %s", core.ErrUnsupportedHost, h.OS)
	}
	return tc, nil
}

// CanSymlink reports whether the host can create symbolic links
func (h Host) CanSymlink() bool {
	return symlinkHosts[h.OS]
}
