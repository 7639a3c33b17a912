// resolver.go
package android

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/arc-language/glesbind/pkg/env"
	"github.com/arc-language/glesbind/pkg/platform"
)

// NewResolver creates a new NDK resolver
func NewResolver(cfg *Config) *Resolver {
	if cfg == nil {
		cfg = &Config{}
	}

	if cfg.Toolchain == nil {
		cfg.Toolchain = platform.Detect().Toolchain
	}

	logger := cfg.Logger
	if logger == nil {
		if cfg.Debug {
			logger = log.New(os.Stderr, "[ANDROID] ", log.LstdFlags)
		} else {
			logger = log.New(io.Discard, "", 0)
		}
	}

	return &Resolver{
		config: cfg,
		logger: logger,
	}
}

// Resolve returns the GLES 3.1 header inside the NDK sysroot. The path is not
// checked; a wrong one surfaces when the header fails to parse.
func (r *Resolver) Resolve() (*env.Resolution, error) {
	include, err := r.IncludeDir()
	if err != nil {
		return nil, err
	}
	r.logger.Printf("NDK include dir: %s", include)

	libs := make([]env.Library, 0, len(Libraries))
	for _, name := range Libraries {
		libs = append(libs, env.Library{Name: name, Kind: env.KindDylib})
	}

	return &env.Resolution{
		Target:      platform.TargetAndroid.String(),
		RootHeader:  filepath.Join(include, filepath.FromSlash(RootHeader)),
		IncludeDirs: []string{include},
		Libraries:   libs,
	}, nil
}

// IncludeDir locates the sysroot include directory.
//
// Priority:
// 1. NDK root: <root>/sysroot/usr/include
// 2. Include directory, verbatim
// 3. <sdk>/ndk/<version>/toolchains/llvm/prebuilt/<host>/sysroot/usr/include/
func (r *Resolver) IncludeDir() (string, error) {
	if r.config.NDKRoot != "" {
		r.logger.Printf("Using NDK root %s", r.config.NDKRoot)
		return filepath.Join(r.config.NDKRoot, "sysroot", "usr", "include"), nil
	}

	if r.config.NDKIncludeDir != "" {
		r.logger.Printf("Using NDK include dir override")
		return r.config.NDKIncludeDir, nil
	}

	version := r.config.NDKVersion
	if version == "" {
		version = DefaultNDKVersion
	}

	sdk := r.config.SDKHome
	if sdk == "" {
		sdk = DefaultSDKHome()
	}

	toolchain, err := r.config.Toolchain()
	if err != nil {
		return "", fmt.Errorf("selecting NDK toolchain: %w", err)
	}

	r.logger.Printf("Building NDK path from sdk=%s version=%s toolchain=%s", sdk, version, toolchain)

	dir := filepath.Join(sdk, "ndk", version, "toolchains", "llvm", "prebuilt", toolchain,
		"sysroot", "usr", "include")
	return dir + string(filepath.Separator), nil
}

// DefaultSDKHome is where Android Studio installs the SDK on a Mac
func DefaultSDKHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join("/usr", "local", "share", "android-sdk")
	}
	return filepath.Join(home, "Library", "Android", "sdk")
}
