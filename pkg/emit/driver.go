// driver.go
package emit

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/arc-language/glesbind/pkg/bindgen"
	"github.com/arc-language/glesbind/pkg/core"
	"github.com/arc-language/glesbind/pkg/stamp"
)

// New creates a driver around engine
func New(engine bindgen.Engine, cfg *Config) *Driver {
	if cfg == nil {
		cfg = &Config{}
	}

	if cfg.Output == "" {
		cfg.Output = core.DefaultOutput
	}

	logger := cfg.Logger
	if logger == nil {
		if cfg.Debug {
			logger = log.New(os.Stderr, "[EMIT] ", log.LstdFlags)
		} else {
			logger = log.New(io.Discard, "", 0)
		}
	}

	return &Driver{
		engine:     engine,
		config:     cfg,
		directives: NewDirectives(cfg.Directives),
		stamps:     stamp.New(cfg.Output),
		logger:     logger,
	}
}

// Emit generates bindings for rootHeader and writes them to the output path.
//
// The root header is declared as the rebuild trigger. When its content, the
// include dirs and the settings match the last recorded run and the output
// still exists, nothing is regenerated. On any failure the output file is
// left untouched.
func (d *Driver) Emit(rootHeader string, includeDirs []string) (*Result, error) {
	d.directives.RerunIfChanged(rootHeader)

	result := &Result{Output: d.config.Output}

	// An unreadable header is reported by the engine
	sum, hashErr := stamp.HashFile(rootHeader)
	current := &stamp.Stamp{
		Header:   rootHeader,
		SHA256:   sum,
		Includes: includeDirs,
		Settings: d.config.Settings,
	}

	if hashErr == nil && !d.config.Force {
		fresh, err := d.fresh(current)
		if err != nil {
			return nil, err
		}
		if fresh {
			d.logger.Printf("%s is up to date with %s", d.config.Output, rootHeader)
			return result, nil
		}
	}

	b, err := d.engine.Generate(rootHeader, includeDirs)
	if err != nil {
		return nil, err
	}
	if b == nil || len(b.Source) == 0 {
		return nil, fmt.Errorf("%w: engine returned no source", core.ErrGeneration)
	}

	if err := writeFileAtomic(d.config.Output, b.Source); err != nil {
		return nil, fmt.Errorf("writing bindings: %w", err)
	}
	d.logger.Printf("Wrote %s (%d bytes)", d.config.Output, len(b.Source))

	if hashErr == nil {
		current.Generated = time.Now().UTC().Format(time.RFC3339)
		if err := d.stamps.Save(current); err != nil {
			return nil, err
		}
	}

	result.Generated = true
	result.Bindings = b
	return result, nil
}

func (d *Driver) fresh(current *stamp.Stamp) (bool, error) {
	if _, err := os.Stat(d.config.Output); err != nil {
		return false, nil
	}

	st, err := d.stamps.Load()
	if err != nil {
		return false, err
	}
	return st.Matches(current), nil
}

// writeFileAtomic replaces path with data through a temporary file in the
// same directory, so a failed write never leaves a truncated file behind
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", tmp.Name(), err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("setting mode: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("renaming into place: %w", err)
	}
	return nil
}
