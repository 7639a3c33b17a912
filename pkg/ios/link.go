// link.go
package ios

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/arc-language/glesbind/pkg/core"
)

// EnsureLink creates linkPath pointing at target unless something already
// exists at linkPath. It reports whether a link was created.
func EnsureLink(target, linkPath string) (bool, error) {
	if _, err := os.Lstat(linkPath); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("%w: %w", core.ErrWorkaround, err)
	}

	if err := os.MkdirAll(filepath.Dir(linkPath), 0755); err != nil {
		return false, fmt.Errorf("%w: %w", core.ErrWorkaround, err)
	}

	if err := os.Symlink(target, linkPath); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return false, nil
		}
		return false, fmt.Errorf("%w: %w", core.ErrWorkaround, err)
	}

	return true, nil
}
