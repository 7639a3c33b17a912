// generator.go
package bindgen

import (
	"fmt"
	"io"
	"log"
	"os"
	"sort"

	"github.com/arc-language/glesbind/pkg/core"
)

// New creates a new Generator
func New(cfg *Config) *Generator {
	if cfg == nil {
		cfg = &Config{}
	}

	if cfg.Package == "" {
		cfg.Package = core.DefaultPackage
	}

	logger := cfg.Logger
	if logger == nil {
		if cfg.Debug {
			logger = log.New(os.Stderr, "[BINDGEN] ", log.LstdFlags)
		} else {
			logger = log.New(io.Discard, "", 0)
		}
	}

	return &Generator{
		config: cfg,
		logger: logger,
	}
}

// Generate parses rootHeader and everything it includes, searching
// includeDirs in order, and renders Go bindings. Every failure wraps
// core.ErrGeneration.
func (g *Generator) Generate(rootHeader string, includeDirs []string) (*Bindings, error) {
	for _, dir := range includeDirs {
		g.logger.Printf("Include dir: %s", dir)
	}

	if !isFile(rootHeader) {
		return nil, fmt.Errorf("%w: root header %s not found", core.ErrGeneration, rootHeader)
	}

	parser, err := newHeaderParser()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrGeneration, err)
	}
	defer parser.Close()

	s := newScanner(includeDirs, parser, g.logger)
	if err := s.scan(rootHeader); err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrGeneration, err)
	}

	if len(s.functions) == 0 {
		return nil, fmt.Errorf("%w: no GL entry points declared by %s", core.ErrGeneration, rootHeader)
	}

	b := &Bindings{
		Headers:   s.headers,
		External:  s.external,
		Constants: sortedConstants(s.constants),
		Functions: sortedFunctions(s.functions),
	}

	src, skipped, err := emit(emitInput{
		pkg:         g.config.Package,
		outputDir:   g.config.OutputDir,
		rootHeader:  rootHeader,
		includeDirs: includeDirs,
		linkFlags:   g.config.LinkFlags,
		constants:   b.Constants,
		functions:   b.Functions,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrGeneration, err)
	}
	b.Source = src
	b.Skipped = skipped

	for _, reason := range skipped {
		g.logger.Printf("Skipped %s", reason)
	}
	g.logger.Printf("Generated %d constants and %d functions from %d headers (%d skipped)",
		len(b.Constants), len(b.Functions)-len(skipped), len(b.Headers), len(skipped))

	return b, nil
}

func sortedConstants(m map[string]Constant) []Constant {
	out := make([]Constant, 0, len(m))
	for _, c := range m {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func sortedFunctions(m map[string]Function) []Function {
	out := make([]Function, 0, len(m))
	for _, f := range m {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
