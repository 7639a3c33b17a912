// pkg/core/config.go
package core

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultOutput is where generated bindings land, relative to the project root
	DefaultOutput = "gles/bindings.go"

	// DefaultWorkDir holds the framework header visibility link
	DefaultWorkDir = "temp"

	// DefaultPackage is the package clause of the generated file
	DefaultPackage = "gles"
)

// Config holds glesbind configuration.
//
// Empty SDK fields mean "not configured"; the platform resolvers apply their
// own fallbacks for those.
type Config struct {
	SDKHome       string `yaml:"sdk_home"`
	NDKRoot       string `yaml:"ndk_root"`
	NDKIncludeDir string `yaml:"ndk_include_dir"`
	NDKVersion    string `yaml:"ndk_version"`

	Output  string `yaml:"output"`
	WorkDir string `yaml:"work_dir"`
	Package string `yaml:"package"`
	Debug   bool   `yaml:"debug"`

	// TargetOS is the compilation target, taken from GOOS
	TargetOS string `yaml:"-"`

	// Logger for custom logging
	Logger *log.Logger `yaml:"-"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Output:  DefaultOutput,
		WorkDir: DefaultWorkDir,
		Package: DefaultPackage,
	}
}

// LoadConfig loads configuration from file. A missing file yields defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = filepath.Join(home, ".config", "glesbind", "config.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// ApplyEnv overrides configuration with values from the environment.
// Variables set to the empty string count as unset.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	set := func(dst *string, key string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}

	set(&c.SDKHome, EnvSDKHome)
	set(&c.NDKRoot, EnvNDKRoot)
	set(&c.NDKIncludeDir, EnvNDKIncludeDir)
	set(&c.NDKVersion, EnvNDKVersion)
	set(&c.Output, EnvOutput)
	set(&c.TargetOS, EnvTarget)

	if v, ok := lookup(EnvDebug); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Debug = b
		}
	}
}

// FromEnv loads the config file at path and applies the process environment
func FromEnv(path string) (*Config, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv(os.LookupEnv)
	return cfg, nil
}

// NewLogger returns the configured logger, or a default one
func (c *Config) NewLogger() *log.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	if c.Debug {
		return log.New(os.Stderr, "[GLESBIND] ", log.LstdFlags)
	}
	return log.New(io.Discard, "", 0)
}
