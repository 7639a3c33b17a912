// types.go
package ios

import "log"

// Config configures the framework resolver
type Config struct {
	HeadersDir string      // Default: DefaultHeadersDir
	WorkDir    string      // Default: temp
	CanSymlink bool        // Whether the build host can create symbolic links
	Debug      bool        // Enable debug logging
	Logger     *log.Logger // Custom logger (optional)
}

// Resolver computes the resolution for the framework-based platform
type Resolver struct {
	config *Config
	logger *log.Logger
}
