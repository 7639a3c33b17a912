// types.go
package emit

import (
	"io"
	"log"

	"github.com/arc-language/glesbind/pkg/bindgen"
	"github.com/arc-language/glesbind/pkg/stamp"
)

// Config configures the emission driver
type Config struct {
	Output     string      // Default: gles/bindings.go
	Force      bool        // Regenerate even when the stamp is fresh
	Settings   string      // Generator settings the output depends on, recorded in the stamp
	Directives io.Writer   // Receives rerun-if-changed lines (optional)
	Debug      bool        // Enable debug logging
	Logger     *log.Logger // Custom logger (optional)
}

// Driver runs the engine and persists what it produces
type Driver struct {
	engine     bindgen.Engine
	config     *Config
	directives *Directives
	stamps     *stamp.Store
	logger     *log.Logger
}

// Result describes one driver run
type Result struct {
	Output    string            // Path of the binding file
	Generated bool              // False when the previous output was still current
	Bindings  *bindgen.Bindings // Nil when nothing was generated
}
