// scanner.go
package bindgen

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// scanner follows #include directives from the root header through the
// include search path, parsing each header once.
type scanner struct {
	dirs   []string
	parser *headerParser
	logger *log.Logger

	seen      map[string]bool
	headers   []string
	external  []string
	constants map[string]Constant
	functions map[string]Function
}

func newScanner(dirs []string, parser *headerParser, logger *log.Logger) *scanner {
	return &scanner{
		dirs:      dirs,
		parser:    parser,
		logger:    logger,
		seen:      make(map[string]bool),
		constants: make(map[string]Constant),
		functions: make(map[string]Function),
	}
}

func (s *scanner) scan(path string) error {
	key := canonicalPath(path)
	if s.seen[key] {
		return nil
	}
	s.seen[key] = true

	h, err := s.parser.parseFile(path)
	if err != nil {
		return err
	}
	if h.hasError {
		s.logger.Printf("Recovered from syntax errors in %s", path)
	}
	s.headers = append(s.headers, path)
	s.logger.Printf("Parsed %s: %d constants, %d functions, %d includes",
		path, len(h.constants), len(h.functions), len(h.includes))

	for _, c := range h.constants {
		if _, ok := s.constants[c.Name]; !ok {
			s.constants[c.Name] = c
		}
	}
	for _, f := range h.functions {
		if _, ok := s.functions[f.Name]; !ok {
			s.functions[f.Name] = f
		}
	}

	for _, inc := range h.includes {
		found, ok := s.locate(inc, filepath.Dir(path))
		if !ok {
			// Bare system headers such as <stdint.h> come from the C toolchain
			if inc.system && filepath.Dir(filepath.FromSlash(inc.path)) == "." {
				s.logger.Printf("Leaving <%s> to the C toolchain", inc.path)
				s.external = append(s.external, inc.path)
				continue
			}
			return fmt.Errorf("%s: cannot find included header %q in %v", path, inc.path, s.dirs)
		}
		if err := s.scan(found); err != nil {
			return err
		}
	}

	return nil
}

// locate searches the include directories in order. Quoted includes try the
// including file's directory first.
func (s *scanner) locate(inc include, from string) (string, bool) {
	rel := filepath.FromSlash(inc.path)

	if !inc.system {
		if candidate := filepath.Join(from, rel); isFile(candidate) {
			return candidate, true
		}
	}
	for _, dir := range s.dirs {
		if candidate := filepath.Join(dir, rel); isFile(candidate) {
			return candidate, true
		}
	}
	return "", false
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// canonicalPath resolves links so a header reached through the framework
// link and through its real directory is parsed once
func canonicalPath(path string) string {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		path = resolved
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}
