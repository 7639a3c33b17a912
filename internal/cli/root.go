// internal/cli/root.go
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arc-language/glesbind/pkg/core"
)

const version = "0.1.0"

var (
	cfgFile string
	debug   bool
	config  *core.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "glesbind",
	Short: "OpenGL ES binding generator for iOS and Android",
	Long: `glesbind - OpenGL ES binding generator

Locates the OpenGL ES headers of the iOS SDK or the Android NDK for the
target in $GOOS, and generates cgo bindings for the declared API.`,
	Version:      version,
	SilenceUsage: true,
}

// Execute executes the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/glesbind/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	// Add commands
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(envCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	var err error
	config, err = core.FromEnv(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		config = core.DefaultConfig()
		config.ApplyEnv(os.LookupEnv)
	}

	// Override config with flags
	if debug {
		config.Debug = true
	}
}
