// resolver.go
package ios

import (
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/arc-language/glesbind/pkg/core"
	"github.com/arc-language/glesbind/pkg/env"
	"github.com/arc-language/glesbind/pkg/platform"
)

// NewResolver creates a new framework resolver
func NewResolver(cfg *Config) *Resolver {
	if cfg == nil {
		cfg = &Config{}
	}

	if cfg.HeadersDir == "" {
		cfg.HeadersDir = DefaultHeadersDir
	}
	if cfg.WorkDir == "" {
		cfg.WorkDir = core.DefaultWorkDir
	}

	logger := cfg.Logger
	if logger == nil {
		if cfg.Debug {
			logger = log.New(os.Stderr, "[IOS] ", log.LstdFlags)
		} else {
			logger = log.New(io.Discard, "", 0)
		}
	}

	return &Resolver{
		config: cfg,
		logger: logger,
	}
}

// Resolve returns the ES3 header, the framework header directory followed by
// the work directory, and the OpenGLES framework.
func (r *Resolver) Resolve() (*env.Resolution, error) {
	headers := r.config.HeadersDir
	r.logger.Printf("Framework headers: %s", headers)

	if r.config.CanSymlink {
		linkPath := filepath.Join(r.config.WorkDir, LinkName)
		created, err := EnsureLink(headers, linkPath)
		if err != nil {
			return nil, err
		}
		if created {
			r.logger.Printf("Linked %s -> %s", linkPath, headers)
		} else {
			r.logger.Printf("Link %s already present", linkPath)
		}
	} else {
		r.logger.Printf("Host cannot create symbolic links, skipping %s", LinkName)
	}

	return &env.Resolution{
		Target:      platform.TargetIOS.String(),
		RootHeader:  filepath.Join(headers, filepath.FromSlash(RootHeader)),
		IncludeDirs: []string{headers, r.config.WorkDir},
		Libraries: []env.Library{
			{Name: FrameworkName, Kind: env.KindFramework},
		},
	}, nil
}
