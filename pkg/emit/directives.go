// directives.go
package emit

import (
	"fmt"
	"io"

	"github.com/arc-language/glesbind/pkg/env"
)

// Directives writes instructions for the build orchestrator, one per line
type Directives struct {
	w io.Writer
}

// NewDirectives writes to w, or nowhere when w is nil
func NewDirectives(w io.Writer) *Directives {
	if w == nil {
		w = io.Discard
	}
	return &Directives{w: w}
}

// RerunIfChanged declares that generation depends on path
func (d *Directives) RerunIfChanged(path string) {
	fmt.Fprintf(d.w, "rerun-if-changed=%s\n", path)
}

// LinkLib declares a native library the artifact links against
func (d *Directives) LinkLib(lib env.Library) {
	fmt.Fprintf(d.w, "link-lib=%s\n", lib.Directive())
}
