package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arc-language/glesbind/pkg/core"
)

func TestRootCommandHasSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"generate", "resolve", "env", "version"} {
		assert.True(t, names[want], "missing command %s", want)
	}
}

func TestGenerateFlags(t *testing.T) {
	assert.NotNil(t, generateCmd.Flags().Lookup("force"))
	output := generateCmd.Flags().Lookup("output")
	require.NotNil(t, output)
	assert.Equal(t, "o", output.Shorthand)
}

func TestVersionCommand(t *testing.T) {
	buf := &bytes.Buffer{}
	versionCmd.SetOut(buf)
	versionCmd.Run(versionCmd, nil)
	assert.Contains(t, buf.String(), "glesbind version "+version)
}

func TestEnvCommand(t *testing.T) {
	config = core.DefaultConfig()
	config.TargetOS = "android"
	config.NDKRoot = "/opt/ndk"

	buf := &bytes.Buffer{}
	envCmd.SetOut(buf)
	require.NoError(t, runEnv(envCmd, nil))

	out := buf.String()
	assert.Contains(t, out, "NDK_HOME")
	assert.Contains(t, out, "/opt/ndk")
	assert.Contains(t, out, "GOOS")
}

func TestResolveCommand(t *testing.T) {
	config = core.DefaultConfig()
	config.TargetOS = "android"
	config.NDKRoot = "/opt/ndk"

	buf := &bytes.Buffer{}
	resolveCmd.SetOut(buf)
	require.NoError(t, runResolve(resolveCmd, nil))

	out := buf.String()
	assert.Contains(t, out, "gl31.h")
	assert.Contains(t, out, "-lGLESv3")
	assert.Contains(t, out, "-landroid")
}

func TestResolveCommandUnsupportedTarget(t *testing.T) {
	config = core.DefaultConfig()
	config.TargetOS = "windows"

	err := runResolve(resolveCmd, nil)
	assert.ErrorIs(t, err, core.ErrUnsupportedTarget)
}

func TestGenerateCommandUnsupportedTarget(t *testing.T) {
	config = core.DefaultConfig()
	config.TargetOS = ""

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	generateCmd.SetOut(stdout)
	generateCmd.SetErr(stderr)
	t.Cleanup(func() {
		generateCmd.SetOut(nil)
		generateCmd.SetErr(nil)
	})

	err := runGenerate(generateCmd, nil)
	assert.ErrorIs(t, err, core.ErrUnsupportedTarget)
	assert.Empty(t, stdout.String())
	assert.Empty(t, stderr.String())
}

func TestGenerateCommandSeparatesDirectivesFromStatus(t *testing.T) {
	config = core.DefaultConfig()
	config.TargetOS = "android"
	config.NDKIncludeDir = filepath.Join("..", "..", "pkg", "bindgen", "testdata", "ndk", "include")
	config.Output = filepath.Join(t.TempDir(), "gles", "bindings.go")
	generateOutput = ""
	generateForce = false

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	generateCmd.SetOut(stdout)
	generateCmd.SetErr(stderr)
	t.Cleanup(func() {
		generateCmd.SetOut(nil)
		generateCmd.SetErr(nil)
	})

	require.NoError(t, runGenerate(generateCmd, nil))

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 4)
	for _, line := range lines {
		assert.True(t,
			strings.HasPrefix(line, "link-lib=") || strings.HasPrefix(line, "rerun-if-changed="),
			"unexpected stdout line %q", line)
	}

	assert.Contains(t, stderr.String(), "Using target: android")
	assert.Contains(t, stderr.String(), "✓ Generated "+config.Output)
}
