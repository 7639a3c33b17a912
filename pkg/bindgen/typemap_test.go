package bindgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCType(t *testing.T) {
	tests := []struct {
		spelling string
		want     CType
	}{
		{"GLenum", CType{Base: "GLenum"}},
		{"const GLubyte *", CType{Base: "GLubyte", Const: true, Pointers: 1}},
		{"const GLchar *const*", CType{Base: "GLchar", Const: true, Pointers: 2}},
		{"GLfloat [4]", CType{Base: "GLfloat", Pointers: 1}},
		{"unsigned int", CType{Base: "unsigned int"}},
		{"extern void", CType{Base: "void"}},
	}

	for _, tt := range tests {
		t.Run(tt.spelling, func(t *testing.T) {
			assert.Equal(t, tt.want, parseCType(tt.spelling))
		})
	}
}

func TestCTypeString(t *testing.T) {
	assert.Equal(t, "const GLchar **", CType{Base: "GLchar", Const: true, Pointers: 2}.String())
	assert.Equal(t, "GLenum", CType{Base: "GLenum"}.String())
	assert.True(t, CType{Base: "GLvoid"}.IsVoid())
	assert.False(t, CType{Base: "void", Pointers: 1}.IsVoid())
}

func TestMapParam(t *testing.T) {
	tests := []struct {
		name     string
		param    string
		typ      CType
		wantType string
		wantArg  string
	}{
		{"scalar", "mode", CType{Base: "GLenum"}, "uint32", "C.GLenum(mode)"},
		{"float", "red", CType{Base: "GLfloat"}, "float32", "C.GLfloat(red)"},
		{"handle", "sync", CType{Base: "GLsync"}, "unsafe.Pointer", "C.GLsync(sync)"},
		{"void pointer", "data", CType{Base: "void", Const: true, Pointers: 1}, "unsafe.Pointer", "data"},
		{"void pointer pointer", "params", CType{Base: "void", Pointers: 2}, "unsafe.Pointer", "(*unsafe.Pointer)(params)"},
		{"scalar pointer", "size", CType{Base: "GLint", Pointers: 1}, "unsafe.Pointer", "(*C.GLint)(size)"},
		{"string array", "string_", CType{Base: "GLchar", Const: true, Pointers: 2}, "unsafe.Pointer", "(**C.GLchar)(string_)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			goType, arg, err := mapParam(tt.param, tt.typ)
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, goType)
			assert.Equal(t, tt.wantArg, arg)
		})
	}
}

func TestMapParamUnknown(t *testing.T) {
	_, _, err := mapParam("callback", CType{Base: "GLDEBUGPROC"})
	assert.Error(t, err)

	_, _, err = mapParam("p", CType{Base: "struct_thing", Pointers: 1})
	assert.Error(t, err)
}

func TestMapResult(t *testing.T) {
	tests := []struct {
		name     string
		typ      CType
		wantType string
		wantBody string
	}{
		{"void", CType{Base: "void"}, "", "C.glFlush()"},
		{"scalar", CType{Base: "GLboolean"}, "uint8", "return uint8(C.glFlush())"},
		{"pointer", CType{Base: "GLubyte", Const: true, Pointers: 1}, "unsafe.Pointer", "return unsafe.Pointer(C.glFlush())"},
		{"handle", CType{Base: "GLsync"}, "unsafe.Pointer", "return unsafe.Pointer(C.glFlush())"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			goType, body, err := mapResult(tt.typ, "C.glFlush()")
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, goType)
			assert.Equal(t, tt.wantBody, body)
		})
	}
}

func TestParamName(t *testing.T) {
	assert.Equal(t, "p2", paramName("", 2))
	assert.Equal(t, "type_", paramName("type", 0))
	assert.Equal(t, "len_", paramName("len", 0))
	assert.Equal(t, "mask", paramName("mask", 0))
}
