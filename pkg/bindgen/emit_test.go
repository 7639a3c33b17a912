package bindgen

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIncludeDirective(t *testing.T) {
	dirs := []string{"/sdk/Headers", "temp"}

	header, include := includeDirective("/sdk/Headers/ES3/gl.h", dirs)
	assert.Equal(t, "ES3/gl.h", header)
	assert.Equal(t, "<ES3/gl.h>", include)

	header, include = includeDirective(filepath.Join("temp", "OpenGLES", "ES3", "gl.h"), dirs)
	assert.Equal(t, "OpenGLES/ES3/gl.h", header)
	assert.Equal(t, "<OpenGLES/ES3/gl.h>", include)

	header, include = includeDirective("/elsewhere/gl.h", dirs)
	assert.Equal(t, "gl.h", header)
	assert.Equal(t, `"/elsewhere/gl.h"`, include)
}

func TestNames(t *testing.T) {
	assert.Equal(t, "DEPTH_BUFFER_BIT", constName("GL_DEPTH_BUFFER_BIT"))
	assert.Equal(t, "GL_2D", constName("GL_2D"))
	assert.Equal(t, "ClearColor", funcName("glClearColor"))
}

func TestWrapFunctionVariadic(t *testing.T) {
	_, err := wrapFunction(Function{Name: "glLog", Result: CType{Base: "void"}, Variadic: true})
	assert.Error(t, err)
}

func TestIncludeFlag(t *testing.T) {
	cwd, err := filepath.Abs(".")
	require.NoError(t, err)

	tests := []struct {
		name      string
		dir       string
		outputDir string
		want      string
	}{
		{
			name:      "absolute dir kept",
			dir:       "/sdk/Headers",
			outputDir: "gles",
			want:      "-I/sdk/Headers",
		},
		{
			name:      "work dir seen from output package",
			dir:       "temp",
			outputDir: "gles",
			want:      "-I${SRCDIR}/../temp",
		},
		{
			name:      "nested output",
			dir:       filepath.Join("third_party", "include"),
			outputDir: filepath.Join("internal", "gles"),
			want:      "-I${SRCDIR}/../../third_party/include",
		},
		{
			name:      "no output dir",
			dir:       "temp",
			outputDir: "",
			want:      "-I" + filepath.ToSlash(filepath.Join(cwd, "temp")),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := includeFlag(tt.dir, tt.outputDir)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEmitRewritesRelativeIncludeDirs(t *testing.T) {
	src, skipped, err := emit(emitInput{
		pkg:         "gles",
		outputDir:   "gles",
		rootHeader:  "/sdk/Headers/ES3/gl.h",
		includeDirs: []string{"/sdk/Headers", "temp"},
		linkFlags:   []string{"-framework OpenGLES"},
		functions:   []Function{{Name: "glFlush", Result: CType{Base: "void"}}},
	})
	require.NoError(t, err)
	assert.Empty(t, skipped)

	out := string(src)
	assert.Contains(t, out, "#cgo CFLAGS: -I/sdk/Headers\n#cgo CFLAGS: -I${SRCDIR}/../temp\n")
	assert.Contains(t, out, "#cgo LDFLAGS: -framework OpenGLES")
	assert.Contains(t, out, "#include <ES3/gl.h>")
	assert.NotContains(t, out, "-Itemp")
}
