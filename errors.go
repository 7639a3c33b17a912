// errors.go
package glesbind

import (
	"fmt"

	"github.com/arc-language/glesbind/pkg/core"
)

// Re-export the sentinel errors so callers only need this package
var (
	ErrUnsupportedTarget = core.ErrUnsupportedTarget
	ErrUnsupportedHost   = core.ErrUnsupportedHost
	ErrWorkaround        = core.ErrWorkaround
	ErrGeneration        = core.ErrGeneration
)

// Error wraps an error with the step and target that produced it
type Error struct {
	Op     string // Step that failed (dispatch, resolve, generate)
	Target string // Target OS if known
	Err    error  // Underlying error
}

func (e *Error) Error() string {
	if e.Target != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Target, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
