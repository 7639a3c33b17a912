// glesbind.go
package glesbind

import (
	"fmt"
	"io"
	"log"
	"path/filepath"

	"github.com/arc-language/glesbind/pkg/android"
	"github.com/arc-language/glesbind/pkg/bindgen"
	"github.com/arc-language/glesbind/pkg/core"
	"github.com/arc-language/glesbind/pkg/emit"
	"github.com/arc-language/glesbind/pkg/env"
	"github.com/arc-language/glesbind/pkg/ios"
	"github.com/arc-language/glesbind/pkg/platform"
)

// Re-export types for convenience
type (
	Config     = core.Config
	Resolution = env.Resolution
	Library    = env.Library
	Result     = emit.Result
)

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return core.DefaultConfig()
}

// EngineFactory builds the generation engine once the resolution is known
type EngineFactory func(res *env.Resolution) bindgen.Engine

// RunOptions configures a generation run
type RunOptions struct {
	Force      bool      // Regenerate even when the output is current
	Directives io.Writer // Receives rerun-if-changed and link-lib lines
}

// Manager resolves the target platform and drives binding generation
type Manager struct {
	config     *Config
	host       platform.Host
	dispatcher *platform.Dispatcher
	newEngine  EngineFactory
	logger     *log.Logger
}

// NewManager creates a manager for the current build host
func NewManager(config *Config) *Manager {
	return newManager(config, platform.Detect(), nil)
}

func newManager(config *Config, host platform.Host, factory EngineFactory) *Manager {
	if config == nil {
		config = core.DefaultConfig()
	}

	if factory == nil {
		factory = func(res *env.Resolution) bindgen.Engine {
			return bindgen.New(&bindgen.Config{
				Package:   config.Package,
				OutputDir: filepath.Dir(outputPath(config)),
				LinkFlags: res.Flags().LinkFlags,
				Debug:     config.Debug,
				Logger:    config.Logger,
			})
		}
	}

	dispatcher := &platform.Dispatcher{
		IOS: ios.NewResolver(&ios.Config{
			WorkDir:    config.WorkDir,
			CanSymlink: host.CanSymlink(),
			Debug:      config.Debug,
			Logger:     config.Logger,
		}),
		Android: android.NewResolver(&android.Config{
			SDKHome:       config.SDKHome,
			NDKRoot:       config.NDKRoot,
			NDKIncludeDir: config.NDKIncludeDir,
			NDKVersion:    config.NDKVersion,
			Toolchain:     host.Toolchain,
			Debug:         config.Debug,
			Logger:        config.Logger,
		}),
	}

	return &Manager{
		config:     config,
		host:       host,
		dispatcher: dispatcher,
		newEngine:  factory,
		logger:     config.NewLogger(),
	}
}

// Host returns the build host the manager resolves for
func (m *Manager) Host() platform.Host {
	return m.host
}

// Resolve runs the resolver for the configured target
func (m *Manager) Resolve() (*Resolution, error) {
	m.logger.Printf("Resolving target %q on host %s", m.config.TargetOS, m.host)

	res, err := m.dispatcher.Resolve(m.config.TargetOS)
	if err != nil {
		return nil, &Error{Op: "resolve", Target: m.config.TargetOS, Err: err}
	}

	m.logger.Printf("Root header: %s", res.RootHeader)
	for _, dir := range res.IncludeDirs {
		m.logger.Printf("Include dir: %s", dir)
	}
	return res, nil
}

// Run resolves the target, declares its libraries and generates bindings
func (m *Manager) Run(opts *RunOptions) (*Result, error) {
	if opts == nil {
		opts = &RunOptions{}
	}

	res, err := m.Resolve()
	if err != nil {
		return nil, err
	}

	directives := emit.NewDirectives(opts.Directives)
	for _, lib := range res.Libraries {
		directives.LinkLib(lib)
	}

	driver := emit.New(m.newEngine(res), &emit.Config{
		Output:     outputPath(m.config),
		Force:      opts.Force,
		Settings:   generatorSettings(m.config, res),
		Directives: opts.Directives,
		Debug:      m.config.Debug,
		Logger:     m.config.Logger,
	})

	result, err := driver.Emit(res.RootHeader, res.IncludeDirs)
	if err != nil {
		return nil, &Error{Op: "generate", Target: res.Target, Err: err}
	}
	return result, nil
}

func outputPath(config *Config) string {
	if config.Output == "" {
		return core.DefaultOutput
	}
	return config.Output
}

// generatorSettings lists the configuration the generated source depends on
// besides the headers, so changing any of it invalidates the stamp
func generatorSettings(config *Config, res *env.Resolution) string {
	pkg := config.Package
	if pkg == "" {
		pkg = core.DefaultPackage
	}
	return fmt.Sprintf("package=%s ldflags=%s", pkg, res.Flags().LDFlags())
}

// Run generates bindings for config on the current build host
func Run(config *Config, opts *RunOptions) (*Result, error) {
	return NewManager(config).Run(opts)
}
