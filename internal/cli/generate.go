// internal/cli/generate.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arc-language/glesbind"
)

var (
	generateForce  bool
	generateOutput string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate bindings for the target in $GOOS",
	Long: `Resolve the OpenGL ES headers for the target in $GOOS and write cgo bindings.

Usually run through go generate, which sets GOOS:
  //go:generate go run github.com/arc-language/glesbind/cmd/glesbind generate

Examples:
  GOOS=android glesbind generate
  GOOS=android NDK_HOME=/opt/ndk glesbind generate --force
  GOOS=ios glesbind generate --output gles/bindings.go`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().BoolVar(&generateForce, "force", false, "regenerate even if the root header is unchanged")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "path of the generated binding file")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if generateOutput != "" {
		config.Output = generateOutput
	}

	// stdout carries only directives for the build orchestrator
	status := cmd.ErrOrStderr()
	mgr := glesbind.NewManager(config)

	if config.Debug {
		fmt.Fprintf(status, "Host: %s\n", mgr.Host())
	}

	result, err := mgr.Run(&glesbind.RunOptions{
		Force:      generateForce,
		Directives: cmd.OutOrStdout(),
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(status, "Using target: %s\n", config.TargetOS)

	if !result.Generated {
		fmt.Fprintf(status, "✓ %s is up to date\n", result.Output)
		return nil
	}

	b := result.Bindings
	fmt.Fprintf(status, "✓ Generated %s (%d constants, %d functions, %d skipped)\n",
		result.Output, len(b.Constants), len(b.Functions)-len(b.Skipped), len(b.Skipped))
	return nil
}
